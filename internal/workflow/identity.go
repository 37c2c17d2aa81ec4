package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/floortrack/station/internal/model"
)

// DefaultMinBadgeLength is the minimum badge length before a lookup is
// attempted, so a partial scan doesn't fire a lookup per keystroke.
const DefaultMinBadgeLength = 4

// ErrBadgeTooShort means the badge hasn't reached the minimum length yet.
// Callers treat it as "keep typing", not as a failure to report.
var ErrBadgeTooShort = errors.New("badge number too short")

// Resolver maps scanned badge numbers to employees and work-order codes to
// process-operations. Nothing is cached: every resolve is a fresh server
// round trip.
type Resolver struct {
	backend  Backend
	notifier Notifier
	minBadge int
}

// NewResolver creates a resolver with the default minimum badge length.
func NewResolver(backend Backend, notifier Notifier) *Resolver {
	return &Resolver{
		backend:  backend,
		notifier: notifier,
		minBadge: DefaultMinBadgeLength,
	}
}

// WithMinBadgeLength overrides the lookup threshold.
func (r *Resolver) WithMinBadgeLength(n int) *Resolver {
	r.minBadge = n
	return r
}

// ResolveEmployee resolves a badge number to an employee and, when one is
// open, their recovered active session. An unknown badge returns nils
// without error so dependent state stays "nothing resolved". A recovered
// session is surfaced as an informational notice, not an error.
func (r *Resolver) ResolveEmployee(badge string) (*model.Employee, *model.Session, error) {
	badge = strings.TrimSpace(badge)
	if len(badge) < r.minBadge {
		return nil, nil, ErrBadgeTooShort
	}

	emp, err := r.backend.LookupEmployee(badge)
	if err != nil {
		return nil, nil, fmt.Errorf("employee lookup: %w", err)
	}
	if emp == nil {
		return nil, nil, nil
	}

	sess, err := r.backend.LookupActiveSession(badge)
	if err != nil {
		return emp, nil, fmt.Errorf("session lookup: %w", err)
	}
	if sess != nil {
		r.notifier.Info(fmt.Sprintf("open session recovered for %s", emp.DisplayName))
	}

	return emp, sess, nil
}

// ResolveOperation resolves a work-order code against the employee's
// assigned process. Returns nil without error when nothing matches.
func (r *Resolver) ResolveOperation(workOrderCode string, emp *model.Employee) (*model.ProcessOperation, error) {
	workOrderCode = strings.TrimSpace(workOrderCode)
	if emp == nil || workOrderCode == "" {
		return nil, nil
	}

	op, err := r.backend.LookupProcessOperation(workOrderCode, emp.ProcessID)
	if err != nil {
		return nil, fmt.Errorf("operation lookup: %w", err)
	}
	return op, nil
}

// Machines lists the machines available to the employee's process.
func (r *Resolver) Machines(emp *model.Employee) ([]model.Machine, error) {
	if emp == nil {
		return nil, nil
	}
	return r.backend.MachinesForProcess(emp.ProcessID)
}
