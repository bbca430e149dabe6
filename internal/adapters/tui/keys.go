package tui

import (
	"context"

	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if !m.booted {
		return m, nil
	}
	if m.confirm != nil {
		cmd := m.handleConfirmKey(msg)
		return m, cmd
	}
	if !m.authenticated() {
		cmd := m.handleAuthKey(msg)
		return m, cmd
	}
	if m.focus != focusNone {
		cmd := m.handleInputKey(msg)
		return m, cmd
	}

	studio := m.studio
	var cmd tea.Cmd
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		cmd = m.navigate(domain.PathGenerate)
	case "2":
		cmd = m.navigate(domain.PathLibrary)
	case "3":
		cmd = m.navigate(domain.PathBilling)
	case "4":
		cmd = m.navigate(domain.PathSettings)
	case "5":
		cmd = m.navigate(domain.PathDashboard)
	case "b":
		studio.Router.Back()
		cmd = m.enterRoute()
	case "t":
		cmd = m.dispatch(reqTheme, func(ctx context.Context) error {
			_, err := studio.Shell.ToggleTheme(ctx)
			return err
		})
	case "L":
		cmd = m.dispatch(reqLogout, studio.Shell.Logout)
	default:
		cmd = m.handleScreenKey(msg)
	}
	return m, cmd
}

func (m *Model) handleScreenKey(msg tea.KeyMsg) tea.Cmd {
	switch m.studio.Router.Current() {
	case domain.ScreenGenerate:
		return m.handleGenerateKey(msg)
	case domain.ScreenLibrary:
		return m.handleLibraryKey(msg)
	case domain.ScreenBilling:
		return m.handleBillingKey(msg)
	case domain.ScreenSettings:
		return m.handleSettingsKey(msg)
	default:
		if msg.String() == "R" {
			return m.enterRoute()
		}
		return nil
	}
}

func (m *Model) handleGenerateKey(msg tea.KeyMsg) tea.Cmd {
	studio := m.studio
	switch msg.String() {
	case "i", "enter":
		return m.focusOn(focusPrompt)
	case "g":
		return m.generate()
	case "r":
		return m.dispatch(reqGenerate, func(ctx context.Context) error {
			_, err := studio.Generate.Regenerate(ctx)
			return err
		})
	case "s":
		return m.dispatch(reqSave, studio.Generate.Save)
	case "p":
		m.quick = m.quick%len(domain.QuickPrompts()) + 1
		if prompt, err := studio.Generate.UseQuickPrompt(m.quick); err == nil {
			m.prompt.SetValue(prompt)
		}
	}
	return nil
}

func (m *Model) generate() tea.Cmd {
	studio := m.studio
	prompt := m.prompt.Value()
	studio.Generate.SetPrompt(prompt)
	return m.dispatch(reqGenerate, func(ctx context.Context) error {
		_, err := studio.Generate.Generate(ctx, prompt)
		return err
	})
}

func (m *Model) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	studio := m.studio
	id := m.selectedItem()

	switch msg.String() {
	case "R":
		return m.enterRoute()
	case "enter":
		if id != "" {
			_, _ = studio.Library.Open(id)
		}
		return nil
	case "x":
		if id == "" {
			return nil
		}
		m.confirm = &confirmDialog{
			prompt: "Delete this image from your library?",
			kind:   reqDeleteItem,
			run: func(ctx context.Context, confirmer ports.Confirmer) error {
				return studio.Library.Delete(ctx, id, confirmer)
			},
		}
		return nil
	}

	var cmd tea.Cmd
	m.library, cmd = m.library.Update(msg)
	return cmd
}

func (m *Model) handleBillingKey(msg tea.KeyMsg) tea.Cmd {
	studio := m.studio

	switch msg.String() {
	case "R":
		return m.enterRoute()
	case "enter":
		row := m.tiers.SelectedRow()
		if len(row) == 0 {
			return nil
		}
		tier := row[0]
		return m.dispatch(reqBuy, func(ctx context.Context) error {
			_, err := studio.Billing.Buy(ctx, tier)
			return err
		})
	}

	var cmd tea.Cmd
	m.tiers, cmd = m.tiers.Update(msg)
	return cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	studio := m.studio

	switch msg.String() {
	case "e":
		m.email.SetValue(studio.Settings.Email())
		return m.focusOn(focusEmail)
	case "p":
		return m.focusOn(focusOldPassword)
	case "X":
		m.confirm = &confirmDialog{
			prompt: "Delete account? This cannot be undone.",
			kind:   reqDeleteAccount,
			run:    studio.Settings.DeleteAccount,
		}
	}
	return nil
}

// handleInputKey drives whichever text field has focus. Enter submits, esc
// leaves the field.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	studio := m.studio

	switch msg.Type {
	case tea.KeyEsc:
		m.blurAll()
		return nil
	case tea.KeyTab, tea.KeyShiftTab:
		switch m.focus {
		case focusOldPassword:
			return m.focusOn(focusNewPassword)
		case focusNewPassword:
			return m.focusOn(focusOldPassword)
		}
	case tea.KeyEnter:
		switch m.focus {
		case focusPrompt:
			m.blurAll()
			return m.generate()
		case focusEmail:
			email := m.email.Value()
			studio.Settings.SetEmail(email)
			m.blurAll()
			return m.dispatch(reqEmail, func(ctx context.Context) error {
				_, err := studio.Settings.UpdateEmail(ctx, email)
				return err
			})
		case focusOldPassword:
			return m.focusOn(focusNewPassword)
		case focusNewPassword:
			cmd := application.ChangePasswordCommand{
				OldPassword: m.oldPassword.Value(),
				NewPassword: m.newPassword.Value(),
			}
			m.blurAll()
			return m.dispatch(reqPassword, func(ctx context.Context) error {
				return studio.Settings.ChangePassword(ctx, cmd)
			})
		}
	}

	return m.forward(msg)
}

func (m *Model) handleAuthKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlN:
		return m.auth.toggle()
	case tea.KeyTab, tea.KeyDown:
		return m.auth.move(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.auth.move(-1)
	case tea.KeyEnter:
		if !m.auth.last() {
			return m.auth.move(1)
		}
		return m.submitAuth()
	}
	return m.auth.update(msg)
}

func (m *Model) submitAuth() tea.Cmd {
	shell := m.studio.Shell
	m.auth.notice = application.Notice{}

	if m.auth.signup {
		cmd := application.SignupCommand{
			Name:     m.auth.value(fieldName),
			Email:    m.auth.value(fieldEmail),
			Password: m.auth.value(fieldPassword),
		}
		return m.dispatch(reqAuth, func(ctx context.Context) error {
			return shell.Signup(ctx, cmd)
		})
	}

	cmd := application.LoginCommand{
		Email:    m.auth.value(fieldEmail),
		Password: m.auth.value(fieldPassword),
	}
	return m.dispatch(reqAuth, func(ctx context.Context) error {
		return shell.Login(ctx, cmd)
	})
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	var yes bool
	switch msg.String() {
	case "y", "Y", "enter":
		yes = true
	case "n", "N", "esc":
		yes = false
	default:
		return nil
	}

	dialog := m.confirm
	m.confirm = nil
	return m.dispatch(dialog.kind, func(ctx context.Context) error {
		return dialog.run(ctx, answer(yes))
	})
}
