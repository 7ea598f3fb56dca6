package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	statusdto "cyberdeck/internal/modules/status/dto"
	"cyberdeck/internal/ui/theme"
)

var (
	clockStyle = lipgloss.NewStyle().Foreground(theme.Bright).Bold(true)
	cellStyle  = lipgloss.NewStyle().Foreground(theme.Text).PaddingRight(3)
)

// Model holds the most recent status tick. It never samples on its own.
type Model struct {
	lines statusdto.StatusOutput
	width int
}

func New() Model {
	return Model{}
}

func (m *Model) Set(out statusdto.StatusOutput) { m.lines = out }

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Lines() statusdto.StatusOutput { return m.lines }

// View renders the clock row followed by the metric cells, wrapped to width.
func (m Model) View() string {
	if m.lines.Time == "" {
		return theme.Muted.Render("sampling…")
	}
	head := clockStyle.Render(m.lines.Time) + "  " + theme.Muted.Render(m.lines.Date)

	cells := m.lines.Lines()[2:]
	var rows []string
	var row []string
	rowW := 0
	for _, cell := range cells {
		rendered := cellStyle.Render(cell)
		w := lipgloss.Width(rendered)
		if m.width > 0 && rowW+w > m.width && len(row) > 0 {
			rows = append(rows, strings.Join(row, ""))
			row, rowW = nil, 0
		}
		row = append(row, rendered)
		rowW += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{head}, rows...)...)
}
