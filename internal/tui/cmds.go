package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floortrack/station/internal/model"
	"github.com/floortrack/station/internal/telemetry"
	"github.com/floortrack/station/internal/workflow"
)

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// pollCmd schedules the next dashboard refresh.
func (m Model) pollCmd() tea.Cmd {
	interval := time.Duration(m.cfg.PollSeconds) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m Model) resolveEmployeeCmd(badge string) tea.Cmd {
	resolver, notices := m.resolver, m.notices
	return func() tea.Msg {
		start := time.Now()
		emp, sess, err := resolver.ResolveEmployee(badge)
		telemetry.LookupDuration.WithLabelValues("employee").Observe(time.Since(start).Seconds())

		if err != nil && !workflow.IsBadgeTooShort(err) {
			notices.Error(err.Error())
		}
		return employeeResolvedMsg{badge: badge, employee: emp, session: sess, err: err}
	}
}

func (m Model) loadMachinesCmd(emp *model.Employee) tea.Cmd {
	resolver, notices := m.resolver, m.notices
	return func() tea.Msg {
		machines, err := resolver.Machines(emp)
		if err != nil {
			notices.Error(err.Error())
		}
		return machinesLoadedMsg{machines: machines, err: err}
	}
}

func (m Model) resolveOperationCmd(code string) tea.Cmd {
	resolver, notices, emp := m.resolver, m.notices, m.employee
	return func() tea.Msg {
		start := time.Now()
		op, err := resolver.ResolveOperation(code, emp)
		telemetry.LookupDuration.WithLabelValues("operation").Observe(time.Since(start).Seconds())

		if err != nil {
			notices.Error(err.Error())
		}
		return operationResolvedMsg{code: code, operation: op, err: err}
	}
}

// actCmd fires the gate's single mutation and refetches.
func (m Model) actCmd(dec workflow.Decision) tea.Cmd {
	station, op := m.station, m.operation
	employeeID := m.employee.ID
	machineID := m.selectedMachineID()

	return func() tea.Msg {
		fresh, err := station.Act(dec, op, employeeID, machineID)

		outcome := actOutcome(dec, err)
		telemetry.ScansRecorded.WithLabelValues(outcome).Inc()
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("scan").Inc()
		}
		return actDoneMsg{operation: fresh, err: err}
	}
}

func actOutcome(dec workflow.Decision, err error) string {
	if err != nil {
		return "error"
	}
	switch dec.Action {
	case workflow.ActionResume:
		return "resume"
	case workflow.ActionRecordScan:
		if strings.HasPrefix(dec.Label, "finish") {
			return "finish_unit"
		}
		return "start_unit"
	default:
		return "noop"
	}
}

func (m Model) pauseCmd(reason string) tea.Cmd {
	station, op := m.station, m.operation
	return func() tea.Msg {
		fresh, err := station.Pause(op, reason)
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("pause").Inc()
		}
		return dialogDoneMsg{operation: fresh, refreshed: err == nil, err: err}
	}
}

func (m Model) scrapCmd(sessionID, reason string) tea.Cmd {
	station, op := m.station, m.operation
	return func() tea.Msg {
		fresh, err := station.Scrap(op, sessionID, reason)
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("scrap").Inc()
		}
		return dialogDoneMsg{operation: fresh, refreshed: err == nil, err: err}
	}
}

func (m Model) problemCmd(sessionID, description string) tea.Cmd {
	station := m.station
	return func() tea.Msg {
		err := station.ReportProblem(sessionID, description)
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("problem").Inc()
		}
		return dialogDoneMsg{err: err}
	}
}

func (m Model) collaboratorCmd(sessionID, badge string) tea.Cmd {
	station := m.station
	return func() tea.Msg {
		err := station.AddCollaborator(sessionID, badge)
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("collaborator").Inc()
		}
		return dialogDoneMsg{err: err}
	}
}

func (m Model) inventoryCmd(material string, dir model.MoveDirection, qty int) tea.Cmd {
	station, op := m.station, m.operation
	return func() tea.Msg {
		err := station.MoveInventory(op, material, dir, qty)
		if err != nil {
			telemetry.MutationFailures.WithLabelValues("inventory").Inc()
		}
		return dialogDoneMsg{err: err}
	}
}

func (m Model) loadSummaryCmd() tea.Cmd {
	backend, notices := m.backend, m.notices
	return func() tea.Msg {
		summary, err := backend.FloorSummary()
		if err != nil {
			notices.Error(err.Error())
			telemetry.DashboardRefreshes.WithLabelValues("error").Inc()
		} else {
			telemetry.DashboardRefreshes.WithLabelValues("ok").Inc()
		}
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m Model) selectedMachineID() string {
	if !m.machineChosen || m.machineIdx < 0 || m.machineIdx >= len(m.machines) {
		return ""
	}
	return m.machines[m.machineIdx].ID
}
