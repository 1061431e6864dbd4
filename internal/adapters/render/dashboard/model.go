package dashboard

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kugyai/kugy-cli/internal/application"
	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/kugyai/kugy-cli/internal/ports"
)

type Tab int

const (
	TabChat Tab = iota
	TabAgents
	TabImage
	TabSim
)

func (t Tab) label() string {
	switch t {
	case TabChat:
		return "AI Chat (1 credit)"
	case TabAgents:
		return "Multi-Agent (5 credits)"
	case TabImage:
		return "Image (3 credits)"
	case TabSim:
		return "VirtuSim"
	}
	return ""
}

type view int

const (
	viewResolving view = iota
	viewLogin
	viewDashboard
)

// Deps wires the dashboard to the orchestration layer. BindAuthLost, when
// set, registers a callback fired on any 401 so the model can drop back to
// the resolve gate.
type Deps struct {
	Controller   *application.SessionController
	Chat         *application.ChatPanel
	Agents       *application.AgentPanel
	Image        *application.ImagePanel
	Gateway      ports.Gateway
	BindAuthLost func(func())
}

type resolvedMsg struct {
	session domain.Session
}

type guestLoginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type chatDoneMsg struct {
	err error
}

type agentDoneMsg struct {
	err error
}

type imageDoneMsg struct {
	err error
}

type simDoneMsg struct {
	result domain.SimResult
	err    error
}

type authLostMsg struct{}

// Model is the interactive dashboard. The session controller stays the only
// writer of session state; the model reads it after every completed
// operation. One operation per panel is in flight at most, which the panels
// themselves enforce.
type Model struct {
	deps Deps

	view    view
	tab     Tab
	session domain.Session

	input   textinput.Model
	spin    spinner.Model
	loading bool
	notice  string
	sim     string

	googleURL string
	width     int
}

func NewModel(deps Deps) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message and press Enter"
	ti.CharLimit = 4000
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return &Model{
		deps:      deps,
		view:      viewResolving,
		session:   deps.Controller.Session(),
		input:     ti,
		spin:      sp,
		googleURL: deps.Controller.GoogleLoginURL(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.resolveCmd())
}

func (m *Model) resolveCmd() tea.Cmd {
	return func() tea.Msg {
		return resolvedMsg{session: m.deps.Controller.Resolve(context.Background())}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case resolvedMsg:
		m.session = msg.session
		m.loading = false
		if msg.session.Authenticated() {
			m.view = viewDashboard
			return m, m.refreshHistoryCmd()
		}
		m.view = viewLogin
		return m, nil

	case guestLoginDoneMsg:
		m.loading = false
		m.session = m.deps.Controller.Session()
		if msg.err != nil {
			m.notice = domain.FailureMessage(msg.err)
			return m, nil
		}
		m.view = viewDashboard
		return m, m.refreshHistoryCmd()

	case logoutDoneMsg:
		m.loading = false
		m.session = m.deps.Controller.Session()
		if msg.err != nil {
			m.notice = domain.FailureMessage(msg.err)
			return m, nil
		}
		m.view = viewLogin
		m.input.SetValue("")
		return m, nil

	case chatDoneMsg, agentDoneMsg, imageDoneMsg:
		return m.operationDone(msg), nil

	case simDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = domain.FailureMessage(msg.err)
			return m, nil
		}
		m.sim = string(msg.result.Raw)
		return m, nil

	case authLostMsg:
		// A 401 from the resolve probe itself just means "no identity";
		// resetting here would re-probe with the same stale credentials
		// in a loop. The pending resolvedMsg settles into the login view.
		if m.view == viewResolving {
			return m, nil
		}
		// Terminal analogue of the full page reload: discard everything
		// and re-resolve from scratch.
		m.deps.Controller.Reset()
		m.session = m.deps.Controller.Session()
		m.view = viewResolving
		m.loading = false
		m.notice = ""
		m.sim = ""
		m.input.SetValue("")
		return m, m.resolveCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// operationDone folds a finished panel operation back into shared state:
// session refresh, notice for blocking errors, input clear on success.
func (m *Model) operationDone(msg tea.Msg) *Model {
	m.loading = false
	m.session = m.deps.Controller.Session()

	var err error
	blocking := false
	switch done := msg.(type) {
	case chatDoneMsg:
		err = done.err
	case agentDoneMsg:
		err = done.err
	case imageDoneMsg:
		err = done.err
		blocking = true
	}

	switch {
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrBusy):
		// No-op submissions leave the draft and the display untouched.
	case err == nil:
		m.input.SetValue("")
	case errors.Is(err, domain.ErrInsufficientCredits), errors.Is(err, domain.ErrRateLimited):
		m.notice = domain.FailureMessage(err)
	case blocking:
		m.notice = "Image generation failed: " + domain.FailureMessage(err)
	}

	return m
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.notice != "" {
		// A blocking notice swallows the next keypress, like a native
		// alert dialog.
		m.notice = ""
		return m, nil
	}

	switch m.view {
	case viewResolving:
		return m, nil
	case viewLogin:
		return m.handleLoginKey(msg)
	default:
		return m.handleDashboardKey(msg)
	}
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "g":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			_, err := m.deps.Controller.GuestLogin(context.Background())
			return guestLoginDoneMsg{err: err}
		})
	}
	return m, nil
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		m.tab = (m.tab + 1) % 4
		if m.tab == TabSim && m.sim == "" {
			return m, m.simBalanceCmd()
		}
		return m, nil
	case tea.KeyShiftTab:
		m.tab = (m.tab + 3) % 4
		return m, nil
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyCtrlL:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return logoutDoneMsg{err: m.deps.Controller.Logout(context.Background())}
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input to the active tab's panel. Empty input
// and in-flight operations are no-ops; the panels return sentinel errors for
// both, which are dropped here without touching the display.
func (m *Model) submit() tea.Cmd {
	input := m.input.Value()

	switch m.tab {
	case TabChat:
		return m.panelCmd(func(ctx context.Context) error {
			return m.deps.Chat.Send(ctx, input)
		}, func(err error) tea.Msg { return chatDoneMsg{err: err} })
	case TabAgents:
		return m.panelCmd(func(ctx context.Context) error {
			return m.deps.Agents.Submit(ctx, input)
		}, func(err error) tea.Msg { return agentDoneMsg{err: err} })
	case TabImage:
		return m.panelCmd(func(ctx context.Context) error {
			return m.deps.Image.Generate(ctx, input)
		}, func(err error) tea.Msg { return imageDoneMsg{err: err} })
	case TabSim:
		// The sim flow has no panel behind it, so the in-flight guard
		// lives here.
		if m.loading {
			return nil
		}
		country := input
		if country == "" {
			country = "indonesia"
		}
		m.loading = true
		return tea.Batch(m.spin.Tick, func() tea.Msg {
			result, err := m.deps.Gateway.SimServices(context.Background(), country)
			return simDoneMsg{result: result, err: err}
		})
	}
	return nil
}

func (m *Model) panelCmd(op func(context.Context) error, done func(error) tea.Msg) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return done(op(context.Background()))
	})
}

func (m *Model) refreshHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.deps.Chat.RefreshHistory(context.Background())
		return chatDoneMsg{}
	}
}

func (m *Model) simBalanceCmd() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := m.deps.Gateway.SimBalance(context.Background())
		return simDoneMsg{result: result, err: err}
	})
}

// Run starts the dashboard program and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	model := NewModel(deps)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if deps.BindAuthLost != nil {
		deps.BindAuthLost(func() {
			program.Send(authLostMsg{})
		})
	}

	_, err := program.Run()
	return err
}
