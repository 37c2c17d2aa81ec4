package workflow

import (
	"fmt"

	"github.com/floortrack/station/internal/model"
)

// Action identifies what the scan button does (or why it is disabled).
type Action int

const (
	ActionAwaitingScan    Action = iota // nothing resolved yet
	ActionScrapped                      // operation is in terminal scrap state
	ActionSessionPaused                 // an open pause holds the session
	ActionNeedsMachine                  // machine selection is mandatory
	ActionResume                        // close the pause on the operation
	ActionOrderFinished                 // target quantity reached
	ActionRecordScan                    // start or finish a unit
	ActionCounterMismatch               // counters violate the invariant
)

// Decision is the evaluated state of the composite scan button.
type Decision struct {
	Action  Action
	Enabled bool
	Label   string
}

// GateInput is everything the eligibility evaluation looks at: the latest
// server snapshot plus the local machine selection and the in-flight flag.
type GateInput struct {
	Operation *model.ProcessOperation
	// Session is the employee's active session when one was recovered
	// separately from the operation snapshot; nil falls back to the
	// snapshot's own active session.
	Session         *model.Session
	MachineSelected bool
	// Busy disables the button while a mutation is in flight, whatever
	// the action would otherwise be.
	Busy bool
}

// EvaluateGate computes the scan button state. The precedence ladder is
// strict and first-match-wins: scrap and pause are safety holds that beat
// any unit-progress affordance, and a missing machine id must never reach
// the server.
func EvaluateGate(in GateInput) Decision {
	dec := evaluate(in)
	if in.Busy {
		dec.Enabled = false
	}
	return dec
}

func evaluate(in GateInput) Decision {
	op := in.Operation
	if op == nil {
		return Decision{Action: ActionAwaitingScan, Label: "awaiting scan"}
	}

	if op.State == model.StateScrap {
		return Decision{Action: ActionScrapped, Label: "scrap"}
	}

	if sess := activeSession(in); sess != nil && sess.OpenPause() != nil {
		return Decision{Action: ActionSessionPaused, Label: "session paused"}
	}

	// A finished order is reported as such whether or not a machine has
	// been selected, and the check is independent of State: the snapshot
	// may not have caught up with the server's done transition, and a
	// complete order must be rejected here, before any mutation fires.
	if op.State == model.StateDone || op.Complete() {
		return Decision{Action: ActionOrderFinished, Label: "order finished"}
	}

	if !in.MachineSelected {
		return Decision{Action: ActionNeedsMachine, Label: "select machine"}
	}

	if op.State == model.StatePaused {
		return Decision{Action: ActionResume, Enabled: true, Label: "resume"}
	}

	progress, err := DeriveUnitProgress(op.CommittedUnits, op.PartialUnits)
	if err != nil {
		return Decision{Action: ActionCounterMismatch, Label: "counter mismatch"}
	}

	verb := "start"
	if progress.InProgress {
		verb = "finish"
	}
	return Decision{
		Action:  ActionRecordScan,
		Enabled: true,
		Label:   fmt.Sprintf("%s unit #%d", verb, progress.UnitNumber),
	}
}

func activeSession(in GateInput) *model.Session {
	if in.Session != nil {
		return in.Session
	}
	return in.Operation.ActiveSession()
}
