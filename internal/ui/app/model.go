package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	launcherdto "cyberdeck/internal/modules/launcher/dto"
	statusdto "cyberdeck/internal/modules/status/dto"
	"cyberdeck/internal/ui/components"
	"cyberdeck/internal/ui/theme"
	appsview "cyberdeck/internal/ui/views/apps"
	"cyberdeck/internal/ui/views/statusbar"
)

// TickInterval is the delay between status samples.
const TickInterval = time.Second

const changedHint = "applications changed, run reset"

// ─── ports ───────────────────────────────────────────────────────────────────

type statusPort interface {
	Tick(ctx context.Context) (statusdto.StatusOutput, error)
}

type launcherPort interface {
	Submit(ctx context.Context, line string) (launcherdto.SubmitOutput, error)
	Registry(ctx context.Context) (launcherdto.RegistryOutput, error)
	LaunchApp(ctx context.Context, id string) (launcherdto.SubmitOutput, error)
	WatchDirectory(ctx context.Context) (<-chan struct{}, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type watchStartedMsg struct {
	hints <-chan struct{}
	err   error
}

type directoryChangedMsg struct{}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Command key.Binding
	Switch  key.Binding
	Launch  key.Binding
	Blur    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Command: key.NewBinding(key.WithKeys(":", "/"), key.WithHelp(":", "command line")),
		Switch:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Launch:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
		Blur:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave command line")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Switch, k.Launch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Command, k.Blur},
		{k.Switch, k.Launch},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type pane int

const (
	panePinned pane = iota
	paneAll
)

// Model is the home screen. Status ticks and interpreter calls both run
// inside Update, so at most one of them executes at a time.
type Model struct {
	ctx      context.Context
	status   statusPort
	launcher launcherPort

	strip    statusbar.Model
	pinned   appsview.Model
	all      appsview.Model
	cmdline  components.CommandLine
	active   pane
	keys     keyMap
	help     help.Model
	showHelp bool

	hints        <-chan struct{}
	feedback     string
	feedbackKind string
	width        int
	height       int
}

func NewModel(ctx context.Context, status statusPort, launcher launcherPort) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:      ctx,
		status:   status,
		launcher: launcher,
		strip:    statusbar.New(),
		pinned:   appsview.New("Pinned", appsview.PinnedMarker),
		all:      appsview.New("All apps", appsview.AllMarker),
		cmdline:  components.NewCommandLine(),
		active:   panePinned,
		keys:     defaultKeys(),
		help:     help.New(),
	}
	m.pinned.SetFocus(true)
	m.reloadRegistry()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return tickMsg(time.Now()) },
		m.watchCmd(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tickMsg:
		m.sample()
		return m, tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })

	case tea.FocusMsg:
		// Extra sample on regaining focus; the tick schedule is unchanged.
		m.sample()
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.hints = msg.hints
		return m, waitForHint(m.hints)

	case directoryChangedMsg:
		m.setFeedback(changedHint, "info")
		return m, waitForHint(m.hints)

	case components.CommandSubmitMsg:
		m.submit(msg.Input)
		return m, nil

	case components.CommandCancelMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.cmdline.Focused() {
			var cmd tea.Cmd
			m.cmdline, cmd = m.cmdline.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "?":
			m.showHelp = true
			return m, nil
		case ":", "/":
			cmd := m.cmdline.Open()
			m.layout()
			return m, cmd
		case "tab", "shift+tab":
			m.switchPane()
			return m, nil
		case "enter":
			m.launchSelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.cmdline.Focused() {
		m.cmdline, cmd = m.cmdline.Update(msg)
		return m, cmd
	}
	if m.active == panePinned {
		m.pinned, cmd = m.pinned.Update(msg)
	} else {
		m.all, cmd = m.all.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	strip := m.strip.View()
	bottom := m.renderBottom()

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(m.listHeight()).
			Render(theme.Title.Render("Keys") + "\n\n" + m.help.View(m.keys))
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.pinned.View(), m.all.View())
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, strip, content, bottom))
}

func (m Model) renderBottom() string {
	var parts []string
	if m.feedback != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if m.feedbackKind == "error" {
			style = theme.Error
		}
		parts = append(parts, style.Render(m.feedback))
	}
	if line := m.cmdline.View(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ─── accessors ───────────────────────────────────────────────────────────────

// Feedback returns the last interpreter message.
func (m Model) Feedback() string { return m.feedback }

func (m Model) StatusLines() statusdto.StatusOutput { return m.strip.Lines() }

func (m Model) CommandLineFocused() bool { return m.cmdline.Focused() }

func (m Model) CommandLineHidden() bool { return m.cmdline.Hidden() }

func (m Model) PinnedRows() []string { return m.pinned.Rows() }

func (m Model) AllRows() []string { return m.all.Rows() }

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) sample() {
	if m.status == nil {
		return
	}
	out, err := m.status.Tick(m.ctx)
	if err != nil {
		return
	}
	m.strip.Set(out)
	m.layout()
}

func (m *Model) submit(line string) {
	if m.launcher == nil {
		return
	}
	out, err := m.launcher.Submit(m.ctx, line)
	if err != nil {
		m.setFeedback(err.Error(), "error")
		return
	}
	m.apply(out)
}

func (m *Model) launchSelected() {
	if m.launcher == nil {
		return
	}
	view := m.pinned
	if m.active == paneAll {
		view = m.all
	}
	id, ok := view.SelectedID()
	if !ok {
		return
	}
	out, err := m.launcher.LaunchApp(m.ctx, id)
	if err != nil {
		m.setFeedback(err.Error(), "error")
		return
	}
	m.apply(out)
}

func (m *Model) apply(out launcherdto.SubmitOutput) {
	if !out.Dispatched {
		return
	}
	if out.Dismiss {
		m.cmdline.Hide()
		m.setFeedback("", "")
		return
	}
	if out.RegistryRebuilt {
		m.reloadRegistry()
	}
	m.setFeedback(out.Message, out.Kind)
}

func (m *Model) reloadRegistry() {
	if m.launcher == nil {
		return
	}
	reg, err := m.launcher.Registry(m.ctx)
	if err != nil {
		m.setFeedback(err.Error(), "error")
		return
	}
	m.pinned.SetApps(reg.Pinned)
	m.all.SetApps(reg.All)
}

func (m *Model) setFeedback(msg, kind string) {
	m.feedback = strings.TrimRight(msg, "\n")
	m.feedbackKind = kind
	m.layout()
}

func (m *Model) switchPane() {
	if m.active == panePinned {
		m.active = paneAll
	} else {
		m.active = panePinned
	}
	m.pinned.SetFocus(m.active == panePinned)
	m.all.SetFocus(m.active == paneAll)
}

func (m Model) listHeight() int {
	used := lipgloss.Height(m.strip.View()) + lipgloss.Height(m.renderBottom())
	return max(m.height-used, 3)
}

func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.strip.SetWidth(m.width)
	m.cmdline.SetWidth(m.width)
	h := m.listHeight()
	pinnedW := m.width / 3
	m.pinned.SetSize(pinnedW, h)
	m.all.SetSize(m.width-pinnedW, h)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) watchCmd() tea.Cmd {
	if m.launcher == nil {
		return nil
	}
	return func() tea.Msg {
		hints, err := m.launcher.WatchDirectory(m.ctx)
		return watchStartedMsg{hints: hints, err: err}
	}
}

// waitForHint blocks on the watcher and re-arms itself from Update.
func waitForHint(hints <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-hints; !ok {
			return nil
		}
		return directoryChangedMsg{}
	}
}
