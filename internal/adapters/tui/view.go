package tui

import (
	"strings"

	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	globalHelp = "1 generate · 2 library · 3 billing · 4 settings · 5 dashboard · b back · t theme · L logout · q quit"
	authHelp   = "tab next field · enter submit · ctrl+n switch login/signup · ctrl+c quit"
)

var screenHelp = map[domain.Screen]string{
	domain.ScreenGenerate:  "i edit prompt · g generate · r regenerate · s save · p quick prompt",
	domain.ScreenLibrary:   "↑/↓ select · enter open · x delete · R reload",
	domain.ScreenBilling:   "↑/↓ select pack · enter buy · R reload history",
	domain.ScreenSettings:  "e edit email · p change password · X delete account",
	domain.ScreenDashboard: "R reload",
}

func (m Model) View() string {
	if !m.booted {
		return m.spinner.View() + " Loading ClipGen Studio..."
	}

	snapshot := m.studio.Shell.Snapshot()
	frame := screen.Frame{
		Snapshot: snapshot,
		Nav:      m.studio.Router.Nav(),
		Current:  m.studio.Router.Current(),
	}

	var body, help string
	if snapshot.Authenticated() {
		body = m.screenView(frame.Current)
		help = screenHelp[frame.Current] + "\n" + globalHelp
		if m.focus != focusNone {
			help = "enter submit · esc cancel"
		}
	} else {
		body = m.authView()
		help = authHelp
	}

	parts := []string{screen.RenderLayout(m.styles, frame, body)}
	if m.confirm != nil {
		parts = append(parts, m.styles.Dialog.Render(m.confirm.prompt+"\n\n[y] yes   [n] no"))
	}
	if m.inflight > 0 {
		parts = append(parts, m.spinner.View()+" Working...")
	}
	if notice := screen.RenderNotice(m.styles, m.notice); notice != "" && snapshot.Authenticated() {
		parts = append(parts, notice)
	}
	parts = append(parts, "", m.styles.Muted.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) screenView(current domain.Screen) string {
	s := m.styles
	now := m.now()

	switch current {
	case domain.ScreenGenerate:
		view := m.studio.Generate.View()
		view.Prompt = m.prompt.View()
		return screen.Body(s, screen.GeneratePage{View: view}, now)
	case domain.ScreenLibrary:
		return m.libraryView()
	case domain.ScreenBilling:
		return m.billingView()
	case domain.ScreenSettings:
		return m.settingsView()
	default:
		return screen.Body(s, screen.DashboardPage{View: m.studio.Dashboard.View()}, now)
	}
}

func (m Model) libraryView() string {
	s := m.styles
	view := m.studio.Library.View()

	lines := []string{s.Title.Render(domain.ScreenLibrary.Title()), ""}
	switch {
	case !view.Loaded && len(view.Items) == 0:
		lines = append(lines, s.Muted.Render("Loading library..."))
	case len(view.Items) == 0:
		lines = append(lines, s.Muted.Render("No saved images yet. Generate one and save it to your library."))
	default:
		lines = append(lines, m.library.View())
	}

	if view.Selected != nil {
		detail := lipgloss.JoinVertical(lipgloss.Left,
			s.Label.Render(string(view.Selected.ID)),
			s.Value.Render(view.Selected.Prompt),
			s.Muted.Render(view.Selected.URL),
		)
		lines = append(lines, "", s.Card.Render(detail))
	}

	return joinWithNotice(lines, screen.RenderNotice(s, view.Notice))
}

func (m Model) billingView() string {
	s := m.styles
	view := m.studio.Billing.View()

	lines := []string{
		s.Title.Render(domain.ScreenBilling.Title()),
		s.Subtitle.Render("Balance: ") + s.Credits.Render(view.Credits.String()),
		"",
		m.tiers.View(),
		"",
		s.Label.Render("Purchase history"),
	}
	if len(view.History) == 0 {
		lines = append(lines, s.Muted.Render("No purchases yet."))
	}
	for _, purchase := range view.History {
		lines = append(lines, s.Body.Render(purchase.CreatedAt.Format("02 Jan 2006")+"  "+purchase.TierLabel()+"  +"+purchase.CreditsAdded.String()))
	}

	return joinWithNotice(lines, screen.RenderNotice(s, view.Notice))
}

func (m Model) settingsView() string {
	s := m.styles
	view := m.studio.Settings.View()

	email := s.Value.Render(view.Email)
	if m.focus == focusEmail {
		email = m.email.View()
	}

	lines := []string{
		s.Title.Render(domain.ScreenSettings.Title()),
		"",
		s.Label.Render("Email"),
		email,
		"",
		s.Label.Render("Password"),
	}
	if m.focus == focusOldPassword || m.focus == focusNewPassword {
		lines = append(lines, m.oldPassword.View(), m.newPassword.View())
	} else {
		lines = append(lines, s.Value.Render("••••••••"))
	}
	lines = append(lines,
		"",
		s.Danger.Render("Danger zone"),
		s.Muted.Render("Deleting your account removes your library and credits for good."),
	)

	return joinWithNotice(lines, screen.RenderNotice(s, view.Notice))
}

func (m Model) authView() string {
	s := m.styles
	a := m.auth

	title, subtitle := "Welcome back", "Log in to keep creating."
	if a.signup {
		title, subtitle = "Create your account", "Sign up and start generating clipart."
	}

	lines := []string{s.Title.Render(title), s.Subtitle.Render(subtitle), ""}
	for _, field := range a.fields() {
		lines = append(lines, s.Label.Render(fieldLabel(field)), a.inputs[field].View(), "")
	}

	return joinWithNotice(lines, screen.RenderNotice(s, a.notice))
}

func fieldLabel(field int) string {
	switch field {
	case fieldName:
		return "Name"
	case fieldEmail:
		return "Email"
	default:
		return "Password"
	}
}

func joinWithNotice(lines []string, notice string) string {
	if notice != "" {
		lines = append(lines, "", notice)
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, lines...), "\n")
}
