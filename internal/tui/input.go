package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floortrack/station/internal/model"
	"github.com/floortrack/station/internal/workflow"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits; plain q only outside text entry.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.viewMode == ViewModeHelp {
		m.viewMode = m.prevView
		return m, nil
	}

	if m.dialog != DialogNone {
		return m.handleDialogKey(msg)
	}

	if m.viewMode == ViewModeDashboard {
		return m.handleDashboardKey(msg)
	}

	return m.handleScanKey(msg)
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Dashboard):
		m.viewMode = ViewModeScan
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevView = m.viewMode
		m.viewMode = ViewModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loadingSummary = true
		return m, tea.Batch(m.loadSummaryCmd(), spinnerTickCmd())
	}

	var cmd tea.Cmd
	m.dashTable, cmd = m.dashTable.Update(msg)
	return m, cmd
}

func (m Model) handleScanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.focus == FocusBadge || m.focus == FocusWorkOrder

	if !typing {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.prevView = m.viewMode
			m.viewMode = ViewModeHelp
			return m, nil
		case key.Matches(msg, m.keys.Dashboard):
			return m.openDashboard()
		case key.Matches(msg, m.keys.Refresh):
			return m.refreshOperation()
		case key.Matches(msg, m.keys.Pause):
			return m.openDialog(DialogPause)
		case key.Matches(msg, m.keys.Scrap):
			return m.openDialog(DialogScrap)
		case key.Matches(msg, m.keys.Problem):
			return m.openDialog(DialogProblem)
		case key.Matches(msg, m.keys.Collaborator):
			return m.openDialog(DialogCollaborator)
		case key.Matches(msg, m.keys.Inventory):
			return m.openDialog(DialogInventory)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.stepBack()

	case key.Matches(msg, m.keys.NextField):
		return m.advanceFocus()

	case key.Matches(msg, m.keys.Up) && m.focus == FocusMachine:
		if m.machineIdx > 0 {
			m.machineIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down) && m.focus == FocusMachine:
		if m.machineIdx < len(m.machines)-1 {
			m.machineIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.handleEnter()
	}

	// Everything else goes to the focused text input.
	return m.updateFocusedInput(msg)
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusBadge:
		badge := strings.TrimSpace(m.badgeInput.Value())
		if len(badge) >= m.cfg.MinBadgeLen && badge != m.lastBadgeTried {
			m.lastBadgeTried = badge
			m.resolvingEmp = true
			return m, tea.Batch(m.resolveEmployeeCmd(badge), spinnerTickCmd())
		}
		if m.employee != nil {
			return m.setFocus(FocusWorkOrder)
		}
		return m, nil

	case FocusWorkOrder:
		code := strings.TrimSpace(m.orderInput.Value())
		if code != "" && m.employee != nil {
			m.resolvingOp = true
			newM, _ := m.setFocus(FocusMachine)
			return newM, tea.Batch(m.resolveOperationCmd(code), spinnerTickCmd())
		}
		return m, nil

	case FocusMachine:
		if len(m.machines) > 0 {
			m.machineChosen = true
			return m.setFocus(FocusAct)
		}
		return m, nil

	case FocusAct:
		dec := m.decision()
		if !dec.Enabled {
			return m, nil
		}
		// One mutation per click; the button stays locked until the
		// round trip (and refetch) resolves.
		m.busy = true
		return m, tea.Batch(m.actCmd(dec), spinnerTickCmd())
	}

	return m, nil
}

func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FocusBadge:
		before := strings.TrimSpace(m.badgeInput.Value())
		m.badgeInput, cmd = m.badgeInput.Update(msg)
		after := strings.TrimSpace(m.badgeInput.Value())
		if after != before {
			// Switching badges always re-resolves; dependent state drops
			// immediately so nothing stale stays actionable.
			m.employee = nil
			m.activeSession = nil
			m.empNotFound = false
			m.operation = nil
			m.opNotFound = false
			m.machines = nil
			m.machineChosen = false

			if len(after) >= m.cfg.MinBadgeLen && after != m.lastBadgeTried {
				m.lastBadgeTried = after
				m.resolvingEmp = true
				return m, tea.Batch(cmd, m.resolveEmployeeCmd(after), spinnerTickCmd())
			}
		}
		return m, cmd

	case FocusWorkOrder:
		before := strings.TrimSpace(m.orderInput.Value())
		m.orderInput, cmd = m.orderInput.Update(msg)
		if after := strings.TrimSpace(m.orderInput.Value()); after != before {
			m.operation = nil
			m.opNotFound = false
		}
		return m, cmd
	}

	return m, nil
}

// stepBack walks the scan flow backwards one level.
func (m Model) stepBack() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusAct:
		m.machineChosen = false
		return m.setFocus(FocusMachine)
	case FocusMachine:
		return m.setFocus(FocusWorkOrder)
	case FocusWorkOrder:
		return m.setFocus(FocusBadge)
	default:
		// Clear the whole scan session.
		m.badgeInput.SetValue("")
		m.orderInput.SetValue("")
		m.lastBadgeTried = ""
		m.employee = nil
		m.activeSession = nil
		m.empNotFound = false
		m.operation = nil
		m.opNotFound = false
		m.machines = nil
		m.machineChosen = false
		return m, nil
	}
}

func (m Model) advanceFocus() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusBadge:
		return m.setFocus(FocusWorkOrder)
	case FocusWorkOrder:
		return m.setFocus(FocusMachine)
	case FocusMachine:
		return m.setFocus(FocusAct)
	default:
		return m.setFocus(FocusBadge)
	}
}

func (m Model) setFocus(f ScanFocus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.badgeInput.Blur()
	m.orderInput.Blur()

	switch f {
	case FocusBadge:
		return m, m.badgeInput.Focus()
	case FocusWorkOrder:
		return m, m.orderInput.Focus()
	}
	return m, nil
}

func (m Model) openDashboard() (tea.Model, tea.Cmd) {
	m.viewMode = ViewModeDashboard
	m.loadingSummary = true
	return m, tea.Batch(m.loadSummaryCmd(), m.pollCmd(), spinnerTickCmd())
}

func (m Model) refreshOperation() (tea.Model, tea.Cmd) {
	code := strings.TrimSpace(m.orderInput.Value())
	if code == "" || m.employee == nil {
		return m, nil
	}
	m.resolvingOp = true
	return m, tea.Batch(m.resolveOperationCmd(code), spinnerTickCmd())
}

// Dialogs

func (m Model) openDialog(kind DialogKind) (tea.Model, tea.Cmd) {
	switch kind {
	case DialogPause, DialogScrap, DialogProblem, DialogCollaborator:
		if m.operation == nil {
			return m, nil
		}
	case DialogInventory:
		if m.operation == nil {
			return m, nil
		}
	}

	m.dialog = kind
	m.dialogField = 0
	m.dialogInput.SetValue("")
	m.dialogQty.SetValue("")
	m.dialogInput.Placeholder = dialogPlaceholder(kind)
	m.badgeInput.Blur()
	m.orderInput.Blur()
	return m, m.dialogInput.Focus()
}

func dialogPlaceholder(kind DialogKind) string {
	switch kind {
	case DialogPause:
		return "pause reason..."
	case DialogScrap:
		return "scrap reason (min 10 chars)..."
	case DialogProblem:
		return "describe the problem..."
	case DialogCollaborator:
		return "collaborator badge..."
	case DialogInventory:
		return "material..."
	default:
		return ""
	}
}

func (m *Model) closeDialog() {
	m.dialog = DialogNone
	m.dialogInput.Blur()
	m.dialogQty.Blur()
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Closing the dialog never rolls back an already-fired mutation.
		m.closeDialog()
		return m, nil

	case key.Matches(msg, m.keys.NextField) && m.dialog == DialogInventory:
		m.dialogField = (m.dialogField + 1) % 2
		if m.dialogField == 0 {
			m.dialogQty.Blur()
			return m, m.dialogInput.Focus()
		}
		m.dialogInput.Blur()
		return m, m.dialogQty.Focus()

	case msg.String() == "left" || msg.String() == "right":
		if m.dialog == DialogInventory {
			if m.invDirection == model.MoveIn {
				m.invDirection = model.MoveOut
			} else {
				m.invDirection = model.MoveIn
			}
			return m, nil
		}

	case key.Matches(msg, m.keys.Enter):
		return m.submitDialog()
	}

	var cmd tea.Cmd
	if m.dialog == DialogInventory && m.dialogField == 1 {
		m.dialogQty, cmd = m.dialogQty.Update(msg)
	} else {
		m.dialogInput, cmd = m.dialogInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitDialog() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	text := strings.TrimSpace(m.dialogInput.Value())
	sessionID := m.currentSessionID()

	switch m.dialog {
	case DialogPause:
		if text == "" {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.pauseCmd(text), spinnerTickCmd())

	case DialogScrap:
		if sessionID == "" {
			m.pushNotice(noticeError, "no active session to scrap against")
			return m, nil
		}
		// Length is validated again in the workflow layer; checking here
		// just avoids a doomed round trip on an obviously short reason.
		if len(text) < workflow.MinScrapReasonLength {
			m.pushNotice(noticeError, workflow.ErrScrapReasonTooShort.Error())
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.scrapCmd(sessionID, text), spinnerTickCmd())

	case DialogProblem:
		if sessionID == "" || text == "" {
			if sessionID == "" {
				m.pushNotice(noticeError, "no active session to report against")
			}
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.problemCmd(sessionID, text), spinnerTickCmd())

	case DialogCollaborator:
		if sessionID == "" || text == "" {
			if sessionID == "" {
				m.pushNotice(noticeError, "no active session to register against")
			}
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.collaboratorCmd(sessionID, text), spinnerTickCmd())

	case DialogInventory:
		qty, err := strconv.Atoi(strings.TrimSpace(m.dialogQty.Value()))
		if text == "" || err != nil || qty <= 0 {
			m.pushNotice(noticeError, "inventory move needs a material and a positive quantity")
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.inventoryCmd(text, m.invDirection, qty), spinnerTickCmd())
	}

	return m, nil
}

// currentSessionID prefers the freshest snapshot's active session and
// falls back to the session recovered at badge resolve time.
func (m Model) currentSessionID() string {
	if m.operation != nil {
		if sess := m.operation.ActiveSession(); sess != nil {
			return sess.ID
		}
	}
	if m.activeSession != nil {
		return m.activeSession.ID
	}
	return ""
}
