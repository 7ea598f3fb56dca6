package apps

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	launcherdto "cyberdeck/internal/modules/launcher/dto"
	"cyberdeck/internal/ui/theme"
)

const (
	PinnedMarker = "[●]"
	AllMarker    = "[*]"
)

type appItem struct {
	app    launcherdto.AppOutput
	marker string
}

func (i appItem) Title() string       { return i.marker + " " + strings.ToLower(i.app.Name) }
func (i appItem) Description() string { return i.app.ID }
func (i appItem) FilterValue() string { return i.app.Name }

// Model is one application pane. Filtering is disabled; searching happens
// through the command line.
type Model struct {
	list   list.Model
	marker string
	focus  bool
	width  int
	height int
}

func New(title, marker string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(theme.Text)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Bright).BorderForeground(theme.Text)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return Model{list: l, marker: marker}
}

// SetApps replaces the pane contents, keeping the given order.
func (m *Model) SetApps(apps []launcherdto.AppOutput) tea.Cmd {
	items := make([]list.Item, len(apps))
	for i, app := range apps {
		items[i] = appItem{app: app, marker: m.marker}
	}
	return m.list.SetItems(items)
}

func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(max(w-4, 0), max(h-2, 0))
}

func (m *Model) SetFocus(focus bool) { m.focus = focus }

func (m Model) Focused() bool { return m.focus }

func (m Model) Len() int { return len(m.list.Items()) }

// Rows returns the rendered row labels in order.
func (m Model) Rows() []string {
	items := m.list.Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if it, ok := item.(appItem); ok {
			out = append(out, it.Title())
		}
	}
	return out
}

func (m Model) SelectedID() (string, bool) {
	if item, ok := m.list.SelectedItem().(appItem); ok {
		return item.app.ID, true
	}
	return "", false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focus {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	style := theme.Pane
	if m.focus {
		style = theme.PaneActive
	}
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = theme.Title.Render(m.list.Title) + "\n\n" + theme.Muted.Render("no applications")
	}
	return style.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(lipgloss.NewStyle().MaxHeight(max(m.height-2, 0)).Render(body))
}
