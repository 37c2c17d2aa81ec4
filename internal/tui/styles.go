package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	// Foreground colors
	ColorFgPrimary   = lipgloss.Color("#ABB2BF")
	ColorFgSecondary = lipgloss.Color("#828997")
	ColorFgMuted     = lipgloss.Color("#636B78")
	ColorFgComment   = lipgloss.Color("#5C6370")

	// Accent colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")
	ColorOrange  = lipgloss.Color("#D19A66")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			PaddingLeft(1)

	// Panel styles
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	// Field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	// Act button states
	ActEnabledStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 2)

	ActDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 2)

	ActBusyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Padding(0, 2)

	// Elapsed-time ticker
	ElapsedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	// Machine list
	MachineStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			PaddingLeft(2)

	MachineSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true).
				PaddingLeft(2)

	// Operation state styles
	StatePendingStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted)

	StateInProgressStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	StatePausedStyle = lipgloss.NewStyle().
				Foreground(ColorOrange)

	StateDoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StateScrapStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Input styles
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMagenta).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true)

	// Notice styles
	NoticeInfoStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	NoticeSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	NoticeErrorStyle = lipgloss.NewStyle().
				Foreground(ColorRed)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)

	// Help overlay styles
	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	// Dashboard styles
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true).
				MarginTop(1)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)

// stateStyle returns the style for an operation state string.
func stateStyle(state string) lipgloss.Style {
	switch state {
	case "in_progress":
		return StateInProgressStyle
	case "paused":
		return StatePausedStyle
	case "done":
		return StateDoneStyle
	case "scrap":
		return StateScrapStyle
	default:
		return StatePendingStyle
	}
}
