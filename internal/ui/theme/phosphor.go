package theme

import "github.com/charmbracelet/lipgloss"

// Monochrome phosphor palette for the home screen.
var (
	Base     = lipgloss.Color("#050805")
	Mantle   = lipgloss.Color("#0a120a")
	Surface0 = lipgloss.Color("#12301a")
	Surface1 = lipgloss.Color("#1f5a2e")
	Text     = lipgloss.Color("#33ff66")
	Subtext0 = lipgloss.Color("#1fa344")
	Bright   = lipgloss.Color("#b3ffc6")
	Amber    = lipgloss.Color("#ffb000")
	Red      = lipgloss.Color("#ff5555")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Text)

	Title = lipgloss.NewStyle().Foreground(Bright).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)
)
