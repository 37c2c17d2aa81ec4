package workflow

import (
	"strings"
	"testing"

	"github.com/floortrack/station/internal/model"
)

func TestResolveEmployee(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["1024"] = testEmployee()
	notifier := &fakeNotifier{}
	resolver := NewResolver(backend, notifier)

	emp, sess, err := resolver.ResolveEmployee("1024")
	if err != nil {
		t.Fatalf("ResolveEmployee error: %v", err)
	}
	if emp == nil || emp.DisplayName != "A. Torres" {
		t.Fatalf("employee = %+v, want A. Torres", emp)
	}
	if sess != nil {
		t.Errorf("session = %+v, want nil", sess)
	}
	if len(notifier.infos) != 0 {
		t.Errorf("no recovery notice expected, got %v", notifier.infos)
	}
}

func TestResolveEmployeeTrimsWhitespace(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["1024"] = testEmployee()
	resolver := NewResolver(backend, &fakeNotifier{})

	emp, _, err := resolver.ResolveEmployee("  1024 \n")
	if err != nil {
		t.Fatalf("ResolveEmployee error: %v", err)
	}
	if emp == nil {
		t.Fatal("trimmed badge should resolve")
	}
}

func TestResolveEmployeeTooShort(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["1024"] = testEmployee()
	resolver := NewResolver(backend, &fakeNotifier{})

	_, _, err := resolver.ResolveEmployee("102")
	if !IsBadgeTooShort(err) {
		t.Fatalf("error = %v, want ErrBadgeTooShort", err)
	}
	if backend.employeeLookups != 0 {
		t.Errorf("short badge must not hit the backend, got %d lookups", backend.employeeLookups)
	}
}

func TestResolveEmployeeCustomMinLength(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["77"] = &model.Employee{ID: "emp-2", BadgeNumber: "77", DisplayName: "B. Ruiz", ProcessID: "proc-weld"}
	resolver := NewResolver(backend, &fakeNotifier{}).WithMinBadgeLength(2)

	emp, _, err := resolver.ResolveEmployee("77")
	if err != nil || emp == nil {
		t.Fatalf("emp = %v, err = %v, want resolved employee", emp, err)
	}
}

func TestResolveEmployeeNotFound(t *testing.T) {
	backend := newFakeBackend()
	resolver := NewResolver(backend, &fakeNotifier{})

	emp, sess, err := resolver.ResolveEmployee("9999")
	if err != nil {
		t.Fatalf("unknown badge must not error, got %v", err)
	}
	if emp != nil || sess != nil {
		t.Errorf("emp = %v, sess = %v, want nils", emp, sess)
	}
	if backend.sessionLookups != 0 {
		t.Errorf("no session lookup expected for unknown badge, got %d", backend.sessionLookups)
	}
}

func TestResolveEmployeeRecoversSession(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["1024"] = testEmployee()
	backend.sessions["1024"] = sessionWithOpenPause()
	notifier := &fakeNotifier{}
	resolver := NewResolver(backend, notifier)

	emp, sess, err := resolver.ResolveEmployee("1024")
	if err != nil {
		t.Fatalf("ResolveEmployee error: %v", err)
	}
	if emp == nil || sess == nil {
		t.Fatalf("emp = %v, sess = %v, want both resolved", emp, sess)
	}
	if len(notifier.infos) != 1 || !strings.Contains(notifier.infos[0], "A. Torres") {
		t.Errorf("infos = %v, want one recovery notice naming the operator", notifier.infos)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("recovery is informational, got errors %v", notifier.errors)
	}
}

func TestResolveEmployeeEveryCallHitsServer(t *testing.T) {
	backend := newFakeBackend()
	backend.employees["1024"] = testEmployee()
	resolver := NewResolver(backend, &fakeNotifier{})

	for i := 0; i < 3; i++ {
		if _, _, err := resolver.ResolveEmployee("1024"); err != nil {
			t.Fatalf("ResolveEmployee error: %v", err)
		}
	}
	if backend.employeeLookups != 3 {
		t.Errorf("employeeLookups = %d, want 3 (no caching)", backend.employeeLookups)
	}
}

func TestResolveOperation(t *testing.T) {
	backend := newFakeBackend()
	backend.operations["WO-0007|proc-cnc"] = testOperation(model.StateInProgress, 3, 3, 10)
	resolver := NewResolver(backend, &fakeNotifier{})

	op, err := resolver.ResolveOperation(" WO-0007 ", testEmployee())
	if err != nil {
		t.Fatalf("ResolveOperation error: %v", err)
	}
	if op == nil || op.WorkOrder != "WO-0007" {
		t.Fatalf("operation = %+v, want WO-0007", op)
	}

	// Scoped to the employee's process: same code, other process, no match.
	other := testEmployee()
	other.ProcessID = "proc-weld"
	op, err = resolver.ResolveOperation("WO-0007", other)
	if err != nil || op != nil {
		t.Errorf("op = %v, err = %v, want nil match for other process", op, err)
	}
}

func TestResolveOperationRequiresEmployee(t *testing.T) {
	backend := newFakeBackend()
	backend.operations["WO-0007|proc-cnc"] = testOperation(model.StateInProgress, 3, 3, 10)
	resolver := NewResolver(backend, &fakeNotifier{})

	op, err := resolver.ResolveOperation("WO-0007", nil)
	if err != nil || op != nil {
		t.Errorf("op = %v, err = %v, want nils without an employee", op, err)
	}
	op, err = resolver.ResolveOperation("   ", testEmployee())
	if err != nil || op != nil {
		t.Errorf("op = %v, err = %v, want nils for blank code", op, err)
	}
	if backend.operationLookups != 0 {
		t.Errorf("operationLookups = %d, want 0", backend.operationLookups)
	}
}

func TestMachines(t *testing.T) {
	backend := newFakeBackend()
	backend.machines["proc-cnc"] = []model.Machine{
		{ID: "m-1", Name: "Haas VF-2"},
		{ID: "m-2", Name: "DMG Mori NLX"},
	}
	resolver := NewResolver(backend, &fakeNotifier{})

	machines, err := resolver.Machines(testEmployee())
	if err != nil {
		t.Fatalf("Machines error: %v", err)
	}
	if len(machines) != 2 {
		t.Fatalf("machines = %v, want 2", machines)
	}

	machines, err = resolver.Machines(nil)
	if err != nil || machines != nil {
		t.Errorf("machines = %v, err = %v, want nils without an employee", machines, err)
	}
}
