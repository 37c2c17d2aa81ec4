package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floortrack/station/internal/aggregate"
	"github.com/floortrack/station/internal/config"
	"github.com/floortrack/station/internal/model"
	"github.com/floortrack/station/internal/workflow"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeScan      ViewMode = iota // operator scan station
	ViewModeDashboard                 // manager aggregates
	ViewModeHelp                      // help overlay
)

// ScanFocus tracks which field of the scan flow owns the keyboard
type ScanFocus int

const (
	FocusBadge ScanFocus = iota
	FocusWorkOrder
	FocusMachine
	FocusAct
)

// DialogKind identifies the open modal dialog, if any
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogPause
	DialogScrap
	DialogProblem
	DialogCollaborator
	DialogInventory
)

// Messages
type employeeResolvedMsg struct {
	badge    string
	employee *model.Employee
	session  *model.Session
	err      error
}

type machinesLoadedMsg struct {
	machines []model.Machine
	err      error
}

type operationResolvedMsg struct {
	code      string
	operation *model.ProcessOperation
	err       error
}

// actDoneMsg is sent when the act button's single mutation (and the
// follow-up refetch) has finished.
type actDoneMsg struct {
	operation *model.ProcessOperation
	err       error
}

// dialogDoneMsg is sent when a dialog-driven mutation has finished.
// operation is nil for mutations that don't change the operation snapshot.
type dialogDoneMsg struct {
	operation *model.ProcessOperation
	refreshed bool
	err       error
}

type summaryLoadedMsg struct {
	summary *model.FloorSummary
	err     error
}

type tickMsg time.Time

// pollMsg drives the dashboard refresh interval. It is rescheduled only
// while the dashboard is visible, so leaving the view cancels the poll.
type pollMsg time.Time

type spinnerTickMsg struct{}

// Spinner animation frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// View state
	viewMode ViewMode
	prevView ViewMode // view to return to after help

	// Workflow
	cfg      *config.Config
	resolver *workflow.Resolver
	station  *workflow.Station
	backend  workflow.Backend
	notices  *noticeCollector

	// Scan flow
	focus          ScanFocus
	badgeInput     textinput.Model
	orderInput     textinput.Model
	lastBadgeTried string
	employee       *model.Employee
	activeSession  *model.Session
	empNotFound    bool
	operation      *model.ProcessOperation
	opNotFound     bool
	machines       []model.Machine
	machineIdx     int
	machineChosen  bool

	// Request state
	busy         bool // a mutation is in flight; the act button is locked
	resolvingEmp bool
	resolvingOp  bool
	spinnerIndex int

	// Dialogs
	dialog       DialogKind
	dialogInput  textinput.Model
	dialogQty    textinput.Model
	dialogField  int // 0 = main input, 1 = quantity (inventory only)
	invDirection model.MoveDirection

	// Dashboard
	summary        *model.FloorSummary
	progressRows   []aggregate.ProgressRow
	efficiencyRows []aggregate.EfficiencyRow
	inventoryRows  []aggregate.InventoryRow
	dashTable      table.Model
	loadingSummary bool
	lastRefresh    time.Time

	// Shared
	visible []notice
	now     time.Time
	keys    KeyMap
	ready   bool
}

// NewRootModel creates the root model around an already-wired backend.
func NewRootModel(cfg *config.Config, backend workflow.Backend, log *slog.Logger) Model {
	notices := &noticeCollector{}

	badge := textinput.New()
	badge.Placeholder = "scan badge..."
	badge.Prompt = "❯ "
	badge.PromptStyle = InputPromptStyle
	badge.CharLimit = 32
	badge.Width = 24
	badge.Focus()

	order := textinput.New()
	order.Placeholder = "scan work order..."
	order.Prompt = "❯ "
	order.PromptStyle = InputPromptStyle
	order.CharLimit = 32
	order.Width = 24

	dialogIn := textinput.New()
	dialogIn.Prompt = "❯ "
	dialogIn.PromptStyle = InputPromptStyle
	dialogIn.CharLimit = 200
	dialogIn.Width = 40

	qty := textinput.New()
	qty.Prompt = "qty: "
	qty.PromptStyle = InputPromptStyle
	qty.CharLimit = 6
	qty.Width = 8

	columns := []table.Column{
		{Title: "Work order", Width: 14},
		{Title: "Done", Width: 6},
		{Title: "Target", Width: 7},
		{Title: "%", Width: 5},
		{Title: "Status", Width: 10},
	}
	dash := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)

	return Model{
		viewMode:     ViewModeScan,
		cfg:          cfg,
		resolver:     workflow.NewResolver(backend, notices).WithMinBadgeLength(cfg.MinBadgeLen),
		station:      workflow.NewStation(backend, notices, log),
		backend:      backend,
		notices:      notices,
		badgeInput:   badge,
		orderInput:   order,
		dialogInput:  dialogIn,
		dialogQty:    qty,
		dashTable:    dash,
		machineIdx:   0,
		invDirection: model.MoveOut,
		now:          time.Now(),
		keys:         DefaultKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Notices raised inside command goroutines surface here.
	if fresh := m.notices.drain(); len(fresh) > 0 {
		m.visible = append(m.visible, fresh...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.expireNotices()
		return m, tickCmd()

	case spinnerTickMsg:
		if !m.busy && !m.resolvingEmp && !m.resolvingOp && !m.loadingSummary {
			return m, nil
		}
		m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
		return m, spinnerTickCmd()

	case pollMsg:
		if m.viewMode != ViewModeDashboard {
			return m, nil // leaving the view cancels the interval
		}
		m.loadingSummary = true
		return m, tea.Batch(m.loadSummaryCmd(), m.pollCmd(), spinnerTickCmd())

	case employeeResolvedMsg:
		return m.onEmployeeResolved(msg)

	case machinesLoadedMsg:
		if msg.err == nil {
			m.machines = msg.machines
			m.machineIdx = 0
			m.machineChosen = false
		}
		return m, nil

	case operationResolvedMsg:
		return m.onOperationResolved(msg)

	case actDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.setOperation(msg.operation)
		}
		return m, nil

	case dialogDoneMsg:
		return m.onDialogDone(msg)

	case summaryLoadedMsg:
		m.loadingSummary = false
		if msg.err == nil && msg.summary != nil {
			m.summary = msg.summary
			m.progressRows = aggregate.Progress(msg.summary.Operations)
			m.efficiencyRows = aggregate.Efficiency(msg.summary.Operations)
			m.inventoryRows = aggregate.Inventory(msg.summary.Moves)
			m.dashTable.SetRows(progressTableRows(m.progressRows))
			m.lastRefresh = m.now
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// decision evaluates the eligibility gate against current state.
func (m Model) decision() workflow.Decision {
	return workflow.EvaluateGate(workflow.GateInput{
		Operation:       m.operation,
		Session:         m.activeSession,
		MachineSelected: m.machineChosen,
		Busy:            m.busy,
	})
}

// setOperation installs a fresh operation snapshot and re-derives the
// active session from it, dropping any stale recovered session.
func (m *Model) setOperation(op *model.ProcessOperation) {
	m.operation = op
	if op != nil {
		if sess := op.ActiveSession(); sess != nil {
			m.activeSession = sess
		}
	}
}

// pushNotice surfaces a locally-raised notice immediately, without going
// through the collector used by command goroutines.
func (m *Model) pushNotice(level noticeLevel, text string) {
	m.visible = append(m.visible, notice{level: level, text: text, at: time.Now()})
}

func (m *Model) expireNotices() {
	kept := m.visible[:0]
	for _, n := range m.visible {
		if m.now.Sub(n.at) < noticeTTL {
			kept = append(kept, n)
		}
	}
	m.visible = kept
}

func (m Model) onEmployeeResolved(msg employeeResolvedMsg) (tea.Model, tea.Cmd) {
	m.resolvingEmp = false

	// A stale response for a badge the operator has since changed.
	if msg.badge != strings.TrimSpace(m.badgeInput.Value()) {
		return m, nil
	}

	if msg.err != nil {
		return m, nil // notice already raised by the command
	}

	m.empNotFound = msg.employee == nil
	m.employee = msg.employee
	m.activeSession = msg.session
	if m.employee == nil {
		return m, nil
	}

	cmds := []tea.Cmd{m.loadMachinesCmd(m.employee)}
	if code := strings.TrimSpace(m.orderInput.Value()); code != "" {
		m.resolvingOp = true
		cmds = append(cmds, m.resolveOperationCmd(code), spinnerTickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) onOperationResolved(msg operationResolvedMsg) (tea.Model, tea.Cmd) {
	m.resolvingOp = false

	if msg.code != strings.TrimSpace(m.orderInput.Value()) {
		return m, nil
	}
	if msg.err != nil {
		return m, nil
	}

	m.opNotFound = msg.operation == nil
	m.setOperation(msg.operation)
	return m, nil
}

func (m Model) onDialogDone(msg dialogDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		// Leave the dialog open so the operator can correct and retry.
		return m, nil
	}
	if msg.refreshed {
		m.setOperation(msg.operation)
	}
	m.closeDialog()
	return m, nil
}
