package model

import "time"

// OperationState represents the server-side lifecycle state of a
// process-operation. The set is closed; done and scrap are terminal.
type OperationState string

const (
	StatePending    OperationState = "pending"
	StateInProgress OperationState = "in_progress"
	StatePaused     OperationState = "paused"
	StateDone       OperationState = "done"
	StateScrap      OperationState = "scrap"
)

// Terminal reports whether no further transitions are possible.
func (s OperationState) Terminal() bool {
	return s == StateDone || s == StateScrap
}

// Icon returns the icon for the operation state.
func (s OperationState) Icon() string {
	switch s {
	case StatePending:
		return "○"
	case StateInProgress:
		return "●"
	case StatePaused:
		return "◐"
	case StateDone:
		return "✓"
	case StateScrap:
		return "✗"
	default:
		return "○"
	}
}

// ProcessOperation is the unit of work tracked for one
// (work order, manufacturing process) pair. Everything here is a read-only
// projection of server state; fields may be stale until the next refetch.
type ProcessOperation struct {
	ID             string
	WorkOrder      string
	ProcessID      string
	ProcessName    string
	State          OperationState
	StartedAt      *time.Time
	CommittedUnits int // units fully finished and accepted
	PartialUnits   int // committed, plus one if a unit is currently open
	TargetUnits    int
	Sessions       []Session
}

// ActiveSession returns the session with no end timestamp, or nil.
func (o *ProcessOperation) ActiveSession() *Session {
	for i := range o.Sessions {
		if o.Sessions[i].Active() {
			return &o.Sessions[i]
		}
	}
	return nil
}

// Complete reports whether the target quantity has been reached with no
// unit left open. Checked independently of State because the snapshot may
// lag behind the server's own done transition.
func (o *ProcessOperation) Complete() bool {
	return o.TargetUnits > 0 &&
		o.CommittedUnits >= o.TargetUnits &&
		o.PartialUnits == o.CommittedUnits
}
