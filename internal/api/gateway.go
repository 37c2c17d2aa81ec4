package api

import (
	"fmt"
	"time"

	"github.com/floortrack/station/internal/model"
	"github.com/floortrack/station/internal/workflow"
)

// Gateway adapts the GraphQL client to the workflow.Backend surface,
// mapping wire payloads into domain projections at the boundary.
type Gateway struct {
	client *Client
}

// NewGateway wraps a client.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

var _ workflow.Backend = (*Gateway)(nil)

// LookupEmployee resolves a badge number, nil when unknown.
func (g *Gateway) LookupEmployee(badge string) (*model.Employee, error) {
	emp, err := g.client.GetEmployeeByBadge(badge)
	if err != nil || emp == nil {
		return nil, err
	}
	return employeeFromWire(emp), nil
}

// LookupActiveSession resolves the employee's open session, nil when none.
func (g *Gateway) LookupActiveSession(badge string) (*model.Session, error) {
	sess, err := g.client.GetActiveSession(badge)
	if err != nil || sess == nil {
		return nil, err
	}
	out, err := sessionFromWire(sess)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LookupProcessOperation resolves a (work order, process) pair, nil when
// nothing matches.
func (g *Gateway) LookupProcessOperation(workOrderCode, processID string) (*model.ProcessOperation, error) {
	op, err := g.client.GetProcessOperation(workOrderCode, processID)
	if err != nil || op == nil {
		return nil, err
	}
	return operationFromWire(op)
}

// MachinesForProcess lists machines for a process.
func (g *Gateway) MachinesForProcess(processID string) ([]model.Machine, error) {
	machines, err := g.client.GetMachinesForProcess(processID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Machine, len(machines))
	for i, m := range machines {
		out[i] = model.Machine{ID: m.ID, Name: m.Name}
	}
	return out, nil
}

// RecordScan fires the scan mutation and returns the response counters.
func (g *Gateway) RecordScan(operationID, employeeID, machineID string) (workflow.ScanResult, error) {
	res, err := g.client.RecordScan(operationID, employeeID, machineID)
	if err != nil {
		return workflow.ScanResult{}, err
	}
	return workflow.ScanResult{
		State:          model.OperationState(res.State),
		CommittedUnits: res.CommittedUnits,
		PartialUnits:   res.PartialUnits,
	}, nil
}

// SetPauseState opens or closes a pause.
func (g *Gateway) SetPauseState(operationID string, opening bool, reason string) (model.OperationState, error) {
	state, err := g.client.SetPauseState(operationID, opening, reason)
	return model.OperationState(state), err
}

// RecordScrap marks an operation scrapped.
func (g *Gateway) RecordScrap(sessionID, operationID, reason string) (model.OperationState, error) {
	state, err := g.client.RecordScrap(sessionID, operationID, reason)
	return model.OperationState(state), err
}

// RecordProblem files a problem report.
func (g *Gateway) RecordProblem(sessionID, description string) (string, error) {
	return g.client.RecordProblem(sessionID, description)
}

// RecordCollaborator registers a collaborator by badge.
func (g *Gateway) RecordCollaborator(sessionID, badge string) (string, error) {
	return g.client.RecordCollaborator(sessionID, badge)
}

// RecordInventoryMove registers a stock movement.
func (g *Gateway) RecordInventoryMove(operationID, material string, direction model.MoveDirection, quantity int) error {
	return g.client.RecordInventoryMove(operationID, material, string(direction), quantity)
}

// FloorSummary fetches the dashboard aggregate snapshot.
func (g *Gateway) FloorSummary() (*model.FloorSummary, error) {
	summary, err := g.client.GetFloorSummary()
	if err != nil {
		return nil, err
	}

	out := &model.FloorSummary{
		Operations: make([]model.OperationSummary, len(summary.Operations)),
		Moves:      make([]model.InventoryMove, len(summary.Moves)),
	}
	for i, op := range summary.Operations {
		out.Operations[i] = model.OperationSummary{
			WorkOrder:      op.WorkOrder,
			ProcessName:    op.ProcessName,
			State:          model.OperationState(op.State),
			CommittedUnits: op.CommittedUnits,
			TargetUnits:    op.TargetUnits,
			WorkedMinutes:  op.WorkedMinutes,
			PausedMinutes:  op.PausedMinutes,
		}
	}
	for i, mv := range summary.Moves {
		out.Moves[i] = model.InventoryMove{
			Material:  mv.Material,
			Direction: model.MoveDirection(mv.Direction),
			Quantity:  mv.Quantity,
		}
	}
	return out, nil
}

func employeeFromWire(e *Employee) *model.Employee {
	out := &model.Employee{
		ID:          e.ID,
		BadgeNumber: e.BadgeNumber,
		DisplayName: e.DisplayName,
	}
	if e.Process != nil {
		out.ProcessID = e.Process.ID
		out.ProcessName = e.Process.Name
	}
	return out
}

func operationFromWire(op *ProcessOperation) (*model.ProcessOperation, error) {
	started, err := parseOptionalTime(op.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("operation %s startedAt: %w", op.ID, err)
	}

	out := &model.ProcessOperation{
		ID:             op.ID,
		WorkOrder:      op.WorkOrder,
		ProcessID:      op.ProcessID,
		ProcessName:    op.ProcessName,
		State:          model.OperationState(op.State),
		StartedAt:      started,
		CommittedUnits: op.CommittedUnits,
		PartialUnits:   op.PartialUnits,
		TargetUnits:    op.TargetUnits,
	}

	out.Sessions = make([]model.Session, 0, len(op.Sessions))
	for i := range op.Sessions {
		sess, err := sessionFromWire(&op.Sessions[i])
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", op.ID, err)
		}
		out.Sessions = append(out.Sessions, *sess)
	}
	return out, nil
}

func sessionFromWire(s *Session) (*model.Session, error) {
	started, err := parseTime(s.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("session %s startedAt: %w", s.ID, err)
	}
	ended, err := parseOptionalTime(s.EndedAt)
	if err != nil {
		return nil, fmt.Errorf("session %s endedAt: %w", s.ID, err)
	}

	out := &model.Session{
		ID:        s.ID,
		StartedAt: started,
		EndedAt:   ended,
		Pauses:    make([]model.Pause, 0, len(s.Pauses)),
	}
	for _, p := range s.Pauses {
		pauseStart, err := parseTime(p.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("pause %s startedAt: %w", p.ID, err)
		}
		pauseEnd, err := parseOptionalTime(p.EndedAt)
		if err != nil {
			return nil, fmt.Errorf("pause %s endedAt: %w", p.ID, err)
		}
		out.Pauses = append(out.Pauses, model.Pause{
			ID:        p.ID,
			StartedAt: pauseStart,
			EndedAt:   pauseEnd,
			Reason:    p.Reason,
		})
	}
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// parseOptionalTime maps an absent timestamp to nil.
func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
