package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusNone focus = iota
	focusPrompt
	focusEmail
	focusOldPassword
	focusNewPassword
)

type confirmDialog struct {
	prompt string
	kind   requestKind
	run    func(ctx context.Context, confirmer ports.Confirmer) error
}

// Model is the interactive shell: the auth gate, the Layout and the routed
// screens. Backend calls run as tea.Cmds; the controllers own all state.
type Model struct {
	ctx    context.Context
	studio *application.Studio
	styles screen.Styles
	now    func() time.Time

	booted   bool
	seq      uint64
	latest   map[requestKind]uint64
	inflight int
	spinner  spinner.Model
	notice   application.Notice
	confirm  *confirmDialog

	auth        authForm
	focus       focus
	quick       int
	prompt      textinput.Model
	email       textinput.Model
	oldPassword textinput.Model
	newPassword textinput.Model
	library     table.Model
	tiers       table.Model
}

type Option func(*Model)

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(ctx context.Context, studio *application.Studio, opts ...Option) Model {
	styles := screen.NewStyles()
	m := Model{
		ctx:    ctx,
		studio: studio,
		styles: styles,
		now:    time.Now,
		latest: make(map[requestKind]uint64),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.Focused),
		),
		auth:        newAuthForm(),
		prompt:      newInput("Describe your clipart", 300),
		email:       newInput("you@example.com", 254),
		oldPassword: newPasswordInput("Current password"),
		newPassword: newPasswordInput("New password"),
		library:     newLibraryTable(),
		tiers:       newTierTable(),
	}
	m.prompt.SetValue(studio.Generate.View().Prompt)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the interactive shell and blocks until the user quits.
func Run(ctx context.Context, studio *application.Studio, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, studio),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (m Model) Init() tea.Cmd {
	shell := m.studio.Shell
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return bootedMsg{err: shell.Boot(ctx)}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.booted || m.inflight > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case bootedMsg:
		m.booted = true
		if msg.err != nil {
			m.notice = application.ErrorNotice(msg.err)
		}
		if !m.authenticated() {
			if msg.err != nil {
				m.auth.notice = application.ErrorNotice(msg.err)
			}
			cmd := m.auth.focus()
			return m, cmd
		}
		cmd := m.enterRoute()
		return m, cmd
	case doneMsg:
		return m.handleDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	cmd := m.forward(msg)
	return m, cmd
}

func (m Model) authenticated() bool {
	return m.studio.Shell.Snapshot().Authenticated()
}

// dispatch runs fn off the event loop and reports back with a doneMsg.
func (m *Model) dispatch(kind requestKind, fn func(ctx context.Context) error) tea.Cmd {
	m.seq++
	seq := m.seq
	m.latest[kind] = seq
	m.inflight++

	ctx := m.ctx
	run := func() tea.Msg {
		return doneMsg{kind: kind, seq: seq, err: fn(ctx)}
	}
	if m.inflight == 1 {
		return tea.Batch(m.spinner.Tick, run)
	}
	return run
}

func (m Model) handleDone(msg doneMsg) (tea.Model, tea.Cmd) {
	if m.inflight > 0 {
		m.inflight--
	}
	if msg.seq != m.latest[msg.kind] || errors.Is(msg.err, domain.ErrStaleResponse) {
		return m, nil
	}

	m.syncTables()

	if !m.authenticated() {
		m.blurAll()
		m.confirm = nil
		switch {
		case msg.kind == reqDeleteAccount && msg.err == nil:
			m.auth.notice = application.InfoNotice("Account deleted.")
		case msg.kind == reqLogout:
			m.auth.notice = application.InfoNotice("Logged out.")
		case msg.err != nil:
			m.auth.notice = application.ErrorNotice(msg.err)
		}
		cmd := m.auth.focus()
		return m, cmd
	}

	switch msg.kind {
	case reqAuth:
		m.auth.reset()
		m.notice = application.Notice{}
		cmd := m.enterRoute()
		return m, cmd
	case reqGenerate:
		if errors.Is(msg.err, domain.ErrInsufficientCredits) {
			cmd := m.enterRoute()
			return m, cmd
		}
	case reqEmail:
		if msg.err == nil {
			m.email.SetValue(m.studio.Settings.Email())
		}
	case reqPassword:
		if msg.err == nil {
			m.oldPassword.Reset()
			m.newPassword.Reset()
		}
	case reqTheme:
		m.notice = application.ErrorNotice(msg.err)
	}
	return m, nil
}

// enterRoute prepares the current screen and loads its data.
func (m *Model) enterRoute() tea.Cmd {
	m.blurAll()
	studio := m.studio

	switch studio.Router.Current() {
	case domain.ScreenGenerate:
		m.prompt.SetValue(studio.Generate.View().Prompt)
		return nil
	case domain.ScreenLibrary:
		return m.dispatch(reqLibrary, func(ctx context.Context) error {
			_, err := studio.Library.Load(ctx)
			return err
		})
	case domain.ScreenBilling:
		return m.dispatch(reqHistory, func(ctx context.Context) error {
			_, err := studio.Billing.LoadHistory(ctx)
			return err
		})
	case domain.ScreenSettings:
		m.email.SetValue(studio.Settings.Email())
		return nil
	default:
		return m.dispatch(reqDashboard, func(ctx context.Context) error {
			_, err := studio.Dashboard.Load(ctx)
			return err
		})
	}
}

func (m *Model) navigate(path string) tea.Cmd {
	m.studio.Router.Navigate(path)
	return m.enterRoute()
}

func (m *Model) blurAll() {
	m.focus = focusNone
	m.prompt.Blur()
	m.email.Blur()
	m.oldPassword.Blur()
	m.newPassword.Blur()
}

func (m *Model) focusOn(target focus) tea.Cmd {
	m.blurAll()
	m.focus = target
	switch target {
	case focusPrompt:
		return m.prompt.Focus()
	case focusEmail:
		return m.email.Focus()
	case focusOldPassword:
		return m.oldPassword.Focus()
	case focusNewPassword:
		return m.newPassword.Focus()
	default:
		return nil
	}
}

// forward hands non-key messages (cursor blinks and the like) to whatever
// currently has focus.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if !m.booted {
		return nil
	}
	if !m.authenticated() {
		return m.auth.update(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusOldPassword:
		m.oldPassword, cmd = m.oldPassword.Update(msg)
	case focusNewPassword:
		m.newPassword, cmd = m.newPassword.Update(msg)
	}
	return cmd
}

func answer(yes bool) ports.Confirmer {
	if yes {
		return ports.Confirmed
	}
	return ports.ConfirmFunc(func(context.Context, string) (bool, error) {
		return false, nil
	})
}
