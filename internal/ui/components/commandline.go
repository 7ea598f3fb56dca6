package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cyberdeck/internal/ui/theme"
)

// CommandSubmitMsg is emitted when the user presses enter on the command line.
type CommandSubmitMsg struct{ Input string }

// CommandCancelMsg is emitted when the user presses esc.
type CommandCancelMsg struct{}

var (
	lineStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Surface1).
			Foreground(theme.Text).
			Padding(0, 1)

	lineFocusedStyle = lineStyle.BorderForeground(theme.Text)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// hints mirror the interpreter's help text.
var commandHints = []string{
	"help",
	"open <app>",
	"list",
	"reset",
	"exit",
	"time",
	"battery",
}

// CommandLine is the launcher prompt backed by bubbles/textinput. Unlike a
// palette it stays on screen while blurred; exit hides it until reopened.
type CommandLine struct {
	input  textinput.Model
	hidden bool
	width  int
}

func NewCommandLine() CommandLine {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type 'help' for commands"
	ti.CharLimit = 256
	ti.PromptStyle = theme.Title
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.PlaceholderStyle = theme.Muted
	return CommandLine{input: ti}
}

func (c CommandLine) Focused() bool { return c.input.Focused() }

func (c CommandLine) Hidden() bool { return c.hidden }

// Open shows and focuses the prompt with an empty input.
func (c *CommandLine) Open() tea.Cmd {
	c.hidden = false
	c.input.SetValue("")
	return c.input.Focus()
}

func (c *CommandLine) Blur() { c.input.Blur() }

// Hide blurs and removes the prompt from the layout.
func (c *CommandLine) Hide() {
	c.input.Blur()
	c.hidden = true
}

func (c *CommandLine) SetWidth(w int) { c.width = w }

func (c CommandLine) Update(msg tea.Msg) (CommandLine, tea.Cmd) {
	if !c.input.Focused() {
		return c, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			c.input.Blur()
			return c, func() tea.Msg { return CommandCancelMsg{} }
		case "enter":
			val := c.input.Value()
			c.input.SetValue("")
			return c, func() tea.Msg { return CommandSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c CommandLine) View() string {
	if c.hidden {
		return ""
	}
	w := c.width
	if w < 20 {
		w = 64
	}
	style := lineStyle
	if c.input.Focused() {
		style = lineFocusedStyle
	}
	body := c.input.View()
	if hint := c.hint(); hint != "" {
		body += "  " + hintStyle.Render(hint)
	}
	return style.Width(w - 2).Render(body)
}

// hint completes the verb being typed.
func (c CommandLine) hint() string {
	prefix := strings.ToLower(strings.TrimSpace(c.input.Value()))
	if !c.input.Focused() || prefix == "" || strings.Contains(prefix, " ") {
		return ""
	}
	for _, h := range commandHints {
		if strings.HasPrefix(h, prefix) && h != prefix {
			return h
		}
	}
	return ""
}
