package workflow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/floortrack/station/internal/model"
)

// MinScrapReasonLength is the only business rule enforced ahead of the
// server: a scrap reason must be non-trivially long before the mutation
// fires.
const MinScrapReasonLength = 10

// ErrScrapReasonTooShort rejects a scrap submission before any round trip.
var ErrScrapReasonTooShort = fmt.Errorf("scrap reason must be at least %d characters", MinScrapReasonLength)

// Station is the action-dispatch glue: it fires exactly one mutation per
// operator action, interprets the response, routes notices, and refetches
// the operation so displayed state always comes from a fresh server
// snapshot rather than locally patched counters.
type Station struct {
	backend  Backend
	notifier Notifier
	log      *slog.Logger
}

// NewStation wires the dispatch glue. A nil logger discards logs.
func NewStation(backend Backend, notifier Notifier, log *slog.Logger) *Station {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Station{backend: backend, notifier: notifier, log: log}
}

// Act performs the single mutation the gate decision calls for and returns
// the refreshed operation. Disabled decisions are a no-op; the caller is
// expected not to reach here with one, but a stale click must not turn
// into a malformed request.
func (s *Station) Act(dec Decision, op *model.ProcessOperation, employeeID, machineID string) (*model.ProcessOperation, error) {
	if !dec.Enabled {
		return op, nil
	}

	switch dec.Action {
	case ActionResume:
		return s.Resume(op)
	case ActionRecordScan:
		return s.RecordScan(op, employeeID, machineID)
	default:
		return op, nil
	}
}

// RecordScan fires the start/finish-unit mutation and classifies the
// response by comparing the returned counters: a widened gap means a unit
// was opened, equality means the open unit was closed.
func (s *Station) RecordScan(op *model.ProcessOperation, employeeID, machineID string) (*model.ProcessOperation, error) {
	res, err := s.backend.RecordScan(op.ID, employeeID, machineID)
	if err != nil {
		return op, s.fail("record scan", op.ID, err)
	}

	event, err := ClassifyScan(res.CommittedUnits, res.PartialUnits)
	if err != nil {
		// Data-integrity anomaly: log and surface, never guess.
		s.log.Error("scan result counters invalid",
			"operation", op.ID,
			"committed", res.CommittedUnits,
			"partial", res.PartialUnits,
		)
		s.notifier.Error(err.Error())
		return s.refetch(op)
	}

	switch event {
	case ScanOpened:
		s.notifier.Info(fmt.Sprintf("unit #%d started, scan again to close it", res.PartialUnits))
	case ScanClosed:
		s.notifier.Success(fmt.Sprintf("unit #%d finished, progress %d/%d",
			res.CommittedUnits, res.CommittedUnits, op.TargetUnits))
	}

	s.log.Info("scan recorded",
		"operation", op.ID,
		"machine", machineID,
		"committed", res.CommittedUnits,
		"partial", res.PartialUnits,
	)
	return s.refetch(op)
}

// Resume closes the open pause on a paused operation. No unit counters
// change; the gate re-evaluates against the refetched snapshot.
func (s *Station) Resume(op *model.ProcessOperation) (*model.ProcessOperation, error) {
	if _, err := s.backend.SetPauseState(op.ID, false, ""); err != nil {
		return op, s.fail("resume", op.ID, err)
	}
	s.notifier.Success("session resumed")
	return s.refetch(op)
}

// Pause opens a pause on the operation with the given reason.
func (s *Station) Pause(op *model.ProcessOperation, reason string) (*model.ProcessOperation, error) {
	if _, err := s.backend.SetPauseState(op.ID, true, reason); err != nil {
		return op, s.fail("pause", op.ID, err)
	}
	s.notifier.Success("session paused")
	return s.refetch(op)
}

// Scrap marks the operation scrapped. The reason length is validated here,
// before the mutation fires.
func (s *Station) Scrap(op *model.ProcessOperation, sessionID, reason string) (*model.ProcessOperation, error) {
	if len(reason) < MinScrapReasonLength {
		s.notifier.Error(ErrScrapReasonTooShort.Error())
		return op, ErrScrapReasonTooShort
	}

	if _, err := s.backend.RecordScrap(sessionID, op.ID, reason); err != nil {
		return op, s.fail("scrap", op.ID, err)
	}
	s.notifier.Success("operation marked as scrap")
	return s.refetch(op)
}

// ReportProblem files a problem report against the active session.
func (s *Station) ReportProblem(sessionID, description string) error {
	id, err := s.backend.RecordProblem(sessionID, description)
	if err != nil {
		return s.fail("report problem", sessionID, err)
	}
	s.notifier.Success(fmt.Sprintf("problem reported (#%s)", id))
	return nil
}

// AddCollaborator registers a second operator on the active session by
// badge number.
func (s *Station) AddCollaborator(sessionID, badge string) error {
	name, err := s.backend.RecordCollaborator(sessionID, badge)
	if err != nil {
		return s.fail("add collaborator", sessionID, err)
	}
	s.notifier.Success(fmt.Sprintf("%s registered as collaborator", name))
	return nil
}

// MoveInventory records a stock movement against the operation.
func (s *Station) MoveInventory(op *model.ProcessOperation, material string, dir model.MoveDirection, qty int) error {
	if err := s.backend.RecordInventoryMove(op.ID, material, dir, qty); err != nil {
		return s.fail("inventory move", op.ID, err)
	}
	s.notifier.Success(fmt.Sprintf("%d x %s recorded (%s)", qty, material, dir))
	return nil
}

// Refetch re-reads the operation snapshot. Exposed so views can refresh
// after dialogs that mutate state outside the act button.
func (s *Station) Refetch(op *model.ProcessOperation) (*model.ProcessOperation, error) {
	return s.refetch(op)
}

// refetch is the source-of-truth discipline: after any mutation the
// operation is re-read in full instead of patching derived fields.
func (s *Station) refetch(op *model.ProcessOperation) (*model.ProcessOperation, error) {
	fresh, err := s.backend.LookupProcessOperation(op.WorkOrder, op.ProcessID)
	if err != nil {
		return op, s.fail("refetch", op.ID, err)
	}
	if fresh == nil {
		// The operation vanished between mutation and refetch. Drop to
		// the unresolved state rather than keep showing stale data.
		s.log.Warn("operation missing on refetch", "operation", op.ID)
		return nil, nil
	}
	return fresh, nil
}

// fail logs, notifies, and wraps one failed action. Errors never escalate
// past a dismissible notice; the station stays operable.
func (s *Station) fail(action, id string, err error) error {
	s.log.Error(action+" failed", "id", id, "error", err)
	s.notifier.Error(err.Error())
	return fmt.Errorf("%s: %w", action, err)
}

// IsBadgeTooShort reports whether an error is the keep-typing sentinel.
func IsBadgeTooShort(err error) bool {
	return errors.Is(err, ErrBadgeTooShort)
}
