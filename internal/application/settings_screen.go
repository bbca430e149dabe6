package application

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
)

const deleteAccountPrompt = "Delete account? This cannot be undone."

type SettingsScreen struct {
	shell   *Shell
	gateway ports.Gateway

	mu          sync.Mutex
	email       string
	emailEdited bool
	notice      Notice
}

func NewSettingsScreen(shell *Shell, gateway ports.Gateway) *SettingsScreen {
	return &SettingsScreen{shell: shell, gateway: gateway}
}

// Email is the value of the email field: what the user typed, or the cached
// user's address.
func (s *SettingsScreen) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.emailLocked()
}

func (s *SettingsScreen) emailLocked() string {
	if s.emailEdited {
		return s.email
	}
	if user, err := s.shell.User(); err == nil {
		return user.Email
	}
	return ""
}

func (s *SettingsScreen) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.email = email
	s.emailEdited = true
}

// UpdateEmail changes the address and replaces the shell's user with the one
// the backend returns.
func (s *SettingsScreen) UpdateEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, s.fail(domain.ErrMissingCredentials)
	}

	token, err := s.shell.Token()
	if err != nil {
		return domain.User{}, s.fail(err)
	}

	user, err := s.gateway.UpdateEmail(ctx, token, email)
	if err != nil {
		s.setNotice(ErrorNotice(err))
		return domain.User{}, s.shell.HandleError(ctx, err)
	}

	if err := s.shell.ReplaceUser(ctx, user); err != nil {
		return domain.User{}, s.fail(err)
	}

	s.mu.Lock()
	s.email = ""
	s.emailEdited = false
	s.notice = SuccessNotice("Email updated")
	s.mu.Unlock()

	return user, nil
}

func (s *SettingsScreen) ChangePassword(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.validate(); err != nil {
		return s.fail(err)
	}

	token, err := s.shell.Token()
	if err != nil {
		return s.fail(err)
	}

	if err := s.gateway.ChangePassword(ctx, token, cmd.OldPassword, cmd.NewPassword); err != nil {
		s.setNotice(ErrorNotice(err))
		return s.shell.HandleError(ctx, err)
	}

	s.setNotice(SuccessNotice("Password changed"))
	return nil
}

// DeleteAccount asks for confirmation, deletes the account remotely and then
// wipes every local key.
func (s *SettingsScreen) DeleteAccount(ctx context.Context, confirmer ports.Confirmer) error {
	token, err := s.shell.Token()
	if err != nil {
		return s.fail(err)
	}

	ok, err := confirmer.Confirm(ctx, deleteAccountPrompt)
	if err != nil {
		return s.fail(err)
	}
	if !ok {
		return s.fail(domain.ErrConfirmationDeclined)
	}

	if err := s.gateway.DeleteAccount(ctx, token); err != nil {
		s.setNotice(ErrorNotice(err))
		return s.shell.HandleError(ctx, err)
	}

	if err := s.shell.ClearAll(ctx); err != nil {
		return s.fail(err)
	}

	s.setNotice(SuccessNotice("Account deleted"))
	return nil
}

func (s *SettingsScreen) View() SettingsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SettingsView{Email: s.emailLocked(), Notice: s.notice}
}

func (s *SettingsScreen) fail(err error) error {
	s.setNotice(ErrorNotice(err))
	return err
}

func (s *SettingsScreen) setNotice(notice Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notice = notice
}
