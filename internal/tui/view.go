package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/floortrack/station/internal/aggregate"
	"github.com/floortrack/station/internal/workflow"
)

// View renders the current view
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var body string
	switch m.viewMode {
	case ViewModeHelp:
		body = m.helpView()
	case ViewModeDashboard:
		body = m.dashboardView()
	default:
		body = m.scanView()
	}

	if m.dialog != DialogNone {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.dialogView())
	}

	sections := []string{
		HeaderStyle.Render("FLOORTRACK · " + m.cfg.StationName),
		body,
	}
	if notices := m.noticesView(); notices != "" {
		sections = append(sections, notices)
	}
	sections = append(sections, m.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) scanView() string {
	var b strings.Builder

	// Operator
	b.WriteString(PanelTitleStyle.Render("Operator") + "\n")
	b.WriteString(m.badgeInput.View() + "\n")
	switch {
	case m.resolvingEmp:
		b.WriteString(DimStyle.Render(spinnerFrames[m.spinnerIndex]+" looking up badge...") + "\n")
	case m.employee != nil:
		b.WriteString(ValueStyle.Render(m.employee.DisplayName) +
			LabelStyle.Render(" · "+m.employee.ProcessName) + "\n")
	case m.empNotFound:
		b.WriteString(DimStyle.Render("no employee for that badge") + "\n")
	}
	b.WriteString("\n")

	// Work order
	b.WriteString(PanelTitleStyle.Render("Work order") + "\n")
	b.WriteString(m.orderInput.View() + "\n")
	switch {
	case m.resolvingOp:
		b.WriteString(DimStyle.Render(spinnerFrames[m.spinnerIndex]+" looking up work order...") + "\n")
	case m.operation != nil:
		b.WriteString(m.operationView() + "\n")
	case m.opNotFound:
		b.WriteString(DimStyle.Render("no operation for that work order and process") + "\n")
	}
	b.WriteString("\n")

	// Machines
	b.WriteString(PanelTitleStyle.Render("Machine") + "\n")
	if len(m.machines) == 0 {
		b.WriteString(DimStyle.Render("  (resolve a badge first)") + "\n")
	}
	for i, machine := range m.machines {
		cursor := "  "
		if m.focus == FocusMachine && i == m.machineIdx {
			cursor = "❯ "
		}
		marker := " "
		if m.machineChosen && i == m.machineIdx {
			marker = "✓"
		}
		line := fmt.Sprintf("%s%s %s", cursor, marker, machine.Name)
		if m.machineChosen && i == m.machineIdx {
			b.WriteString(MachineSelectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(MachineStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	// Act button
	b.WriteString(m.actButton() + "\n")

	return PanelStyle.Render(b.String())
}

func (m Model) operationView() string {
	op := m.operation
	var b strings.Builder

	b.WriteString(stateStyle(string(op.State)).Render(op.State.Icon()+" "+string(op.State)) +
		LabelStyle.Render(" · "+op.ProcessName))
	b.WriteString("\n")

	progress, err := workflow.DeriveUnitProgress(op.CommittedUnits, op.PartialUnits)
	if err != nil {
		b.WriteString(NoticeErrorStyle.Render(fmt.Sprintf(
			"counter mismatch: committed=%d partial=%d", op.CommittedUnits, op.PartialUnits)))
	} else if progress.InProgress {
		b.WriteString(ValueStyle.Render(fmt.Sprintf("unit #%d open · %d/%d closed",
			progress.UnitNumber, op.CommittedUnits, op.TargetUnits)))
	} else {
		b.WriteString(ValueStyle.Render(fmt.Sprintf("next unit #%d · %d/%d closed",
			progress.UnitNumber, op.CommittedUnits, op.TargetUnits)))
	}
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("elapsed ") +
		ElapsedStyle.Render(workflow.Elapsed(op, m.now)))
	return b.String()
}

func (m Model) actButton() string {
	dec := m.decision()

	if m.busy {
		return ActBusyStyle.Render(spinnerFrames[m.spinnerIndex] + " working...")
	}
	if dec.Enabled {
		return ActEnabledStyle.Render(dec.Label)
	}
	return ActDisabledStyle.Render(dec.Label)
}

func (m Model) dashboardView() string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Work order progress") + "\n")
	if m.loadingSummary && m.summary == nil {
		b.WriteString(DimStyle.Render(spinnerFrames[m.spinnerIndex]+" loading...") + "\n")
	} else {
		b.WriteString(m.dashTable.View() + "\n")
	}

	b.WriteString(SectionTitleStyle.Render("Labor efficiency") + "\n")
	for _, row := range m.efficiencyRows {
		b.WriteString(fmt.Sprintf("  %-20s net %4dm · %3d units · %3dm/unit\n",
			row.ProcessName, row.NetMinutes, row.CommittedUnits, row.MinutesPerUnit))
	}
	if len(m.efficiencyRows) == 0 {
		b.WriteString(DimStyle.Render("  no activity yet") + "\n")
	}

	b.WriteString(SectionTitleStyle.Render("Inventory") + "\n")
	for _, row := range m.inventoryRows {
		b.WriteString(fmt.Sprintf("  %-20s in %4d · out %4d · net %4d\n",
			row.Material, row.In, row.Out, row.Net))
	}
	if len(m.inventoryRows) == 0 {
		b.WriteString(DimStyle.Render("  no movements recorded") + "\n")
	}

	if !m.lastRefresh.IsZero() {
		b.WriteString("\n" + DimStyle.Render("refreshed "+m.lastRefresh.Format("15:04:05")))
	}

	return PanelStyle.Render(b.String())
}

func (m Model) dialogView() string {
	var title string
	switch m.dialog {
	case DialogPause:
		title = "Pause session"
	case DialogScrap:
		title = "Scrap operation"
	case DialogProblem:
		title = "Report problem"
	case DialogCollaborator:
		title = "Register collaborator"
	case DialogInventory:
		title = "Inventory move"
	}

	var b strings.Builder
	b.WriteString(DialogTitleStyle.Render(title) + "\n\n")
	b.WriteString(m.dialogInput.View() + "\n")

	if m.dialog == DialogInventory {
		b.WriteString(m.dialogQty.View() + "\n")
		b.WriteString(LabelStyle.Render("direction ") +
			ValueStyle.Render("◂ "+string(m.invDirection)+" ▸") + "\n")
	}

	b.WriteString("\n" + DimStyle.Render("enter submit · esc cancel"))
	return DialogStyle.Render(b.String())
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(HelpTitleStyle.Render("Keys") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				HelpKeyStyle.Render(fmt.Sprintf("%-8s", binding.Help().Key)),
				HelpDescStyle.Render(binding.Help().Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(DimStyle.Render("press any key to close"))
	return HelpStyle.Render(b.String())
}

func (m Model) noticesView() string {
	if len(m.visible) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.visible))
	for _, n := range m.visible {
		lines = append(lines, " "+n.render())
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusBar() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return StatusBarStyle.Render(strings.Join(parts, " · "))
}

func progressTableRows(rows []aggregate.ProgressRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		status := "running"
		if row.Done {
			status = "done"
		}
		if row.Scrapped {
			status = "scrap"
		}
		out = append(out, table.Row{
			row.WorkOrder,
			strconv.Itoa(row.CommittedUnits),
			strconv.Itoa(row.TargetUnits),
			strconv.Itoa(row.Percent),
			status,
		})
	}
	return out
}
