package workflow

import "github.com/floortrack/station/internal/model"

// ScanResult carries the counters returned by the record-scan mutation.
// Whether the scan opened or closed a unit is inferred from them.
type ScanResult struct {
	State          model.OperationState
	CommittedUnits int
	PartialUnits   int
}

// Backend is the floor-tracking API surface the scan station depends on.
// Lookups return nil (not an error) when nothing matches. Mutations either
// resolve with data or fail with a message suitable for direct operator
// display; no call retries automatically and none is cancelled once issued.
type Backend interface {
	LookupEmployee(badge string) (*model.Employee, error)
	LookupActiveSession(badge string) (*model.Session, error)
	LookupProcessOperation(workOrderCode, processID string) (*model.ProcessOperation, error)
	MachinesForProcess(processID string) ([]model.Machine, error)

	RecordScan(operationID, employeeID, machineID string) (ScanResult, error)
	SetPauseState(operationID string, opening bool, reason string) (model.OperationState, error)
	RecordScrap(sessionID, operationID, reason string) (model.OperationState, error)
	RecordProblem(sessionID, description string) (string, error)
	RecordCollaborator(sessionID, badge string) (string, error)
	RecordInventoryMove(operationID, material string, direction model.MoveDirection, quantity int) error

	FloorSummary() (*model.FloorSummary, error)
}
