package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/floortrack/station/internal/model"
)

// fakeNotifier records notices for assertions.
type fakeNotifier struct {
	infos     []string
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *fakeNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

// fakeBackend is an in-memory Backend with per-call counters.
type fakeBackend struct {
	employees  map[string]*model.Employee
	sessions   map[string]*model.Session
	operations map[string]*model.ProcessOperation // key: workOrder + "|" + processID
	machines   map[string][]model.Machine

	scanResult ScanResult
	scanErr    error
	pauseErr   error
	scrapErr   error

	employeeLookups  int
	sessionLookups   int
	operationLookups int
	scans            int
	pauseCalls       []bool
	scrapped         []string
	problems         []string
	collaborators    []string
	moves            []model.InventoryMove

	summary *model.FloorSummary
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		employees:  make(map[string]*model.Employee),
		sessions:   make(map[string]*model.Session),
		operations: make(map[string]*model.ProcessOperation),
		machines:   make(map[string][]model.Machine),
	}
}

func (f *fakeBackend) LookupEmployee(badge string) (*model.Employee, error) {
	f.employeeLookups++
	return f.employees[badge], nil
}

func (f *fakeBackend) LookupActiveSession(badge string) (*model.Session, error) {
	f.sessionLookups++
	return f.sessions[badge], nil
}

func (f *fakeBackend) LookupProcessOperation(workOrderCode, processID string) (*model.ProcessOperation, error) {
	f.operationLookups++
	return f.operations[workOrderCode+"|"+processID], nil
}

func (f *fakeBackend) MachinesForProcess(processID string) ([]model.Machine, error) {
	return f.machines[processID], nil
}

func (f *fakeBackend) RecordScan(operationID, employeeID, machineID string) (ScanResult, error) {
	f.scans++
	if machineID == "" {
		return ScanResult{}, errors.New("machine id missing")
	}
	return f.scanResult, f.scanErr
}

func (f *fakeBackend) SetPauseState(operationID string, opening bool, reason string) (model.OperationState, error) {
	f.pauseCalls = append(f.pauseCalls, opening)
	if f.pauseErr != nil {
		return "", f.pauseErr
	}
	if opening {
		return model.StatePaused, nil
	}
	return model.StateInProgress, nil
}

func (f *fakeBackend) RecordScrap(sessionID, operationID, reason string) (model.OperationState, error) {
	if f.scrapErr != nil {
		return "", f.scrapErr
	}
	f.scrapped = append(f.scrapped, reason)
	return model.StateScrap, nil
}

func (f *fakeBackend) RecordProblem(sessionID, description string) (string, error) {
	f.problems = append(f.problems, description)
	return fmt.Sprintf("pr-%d", len(f.problems)), nil
}

func (f *fakeBackend) RecordCollaborator(sessionID, badge string) (string, error) {
	f.collaborators = append(f.collaborators, badge)
	return "Collaborator " + badge, nil
}

func (f *fakeBackend) RecordInventoryMove(operationID, material string, direction model.MoveDirection, quantity int) error {
	f.moves = append(f.moves, model.InventoryMove{Material: material, Direction: direction, Quantity: quantity})
	return nil
}

func (f *fakeBackend) FloorSummary() (*model.FloorSummary, error) {
	return f.summary, nil
}

// Test data helpers

func testEmployee() *model.Employee {
	return &model.Employee{
		ID:          "emp-1",
		BadgeNumber: "1024",
		DisplayName: "A. Torres",
		ProcessID:   "proc-cnc",
		ProcessName: "Maquinado CNC",
	}
}

func testOperation(state model.OperationState, committed, partial, target int) *model.ProcessOperation {
	started := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &model.ProcessOperation{
		ID:             "op-1",
		WorkOrder:      "WO-0007",
		ProcessID:      "proc-cnc",
		ProcessName:    "Maquinado CNC",
		State:          state,
		StartedAt:      &started,
		CommittedUnits: committed,
		PartialUnits:   partial,
		TargetUnits:    target,
	}
}

func sessionWithOpenPause() *model.Session {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:        "sess-1",
		StartedAt: start,
		Pauses: []model.Pause{
			{ID: "pause-1", StartedAt: start.Add(time.Hour), Reason: "material wait"},
		},
	}
}
