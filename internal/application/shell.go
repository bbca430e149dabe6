package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"go.uber.org/zap"
)

// Shell owns the session: who is logged in and how many credits they have.
// Screens read it through Snapshot and never mutate it directly.
type Shell struct {
	store   *SessionStore
	gateway ports.Gateway
	clock   ports.Clock
	logger  *zap.Logger

	mu               sync.RWMutex
	state            SessionState
	token            string
	user             *domain.User
	credits          domain.Credits
	creditsUpdatedAt time.Time
	theme            domain.Theme

	creditsSeq Sequencer
}

func NewShell(store *SessionStore, gateway ports.Gateway, clock ports.Clock, logger *zap.Logger) *Shell {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shell{
		store:   store,
		gateway: gateway,
		clock:   clock,
		logger:  logger,
		state:   StateUnauthenticated,
		theme:   domain.DefaultTheme,
	}
}

// Boot restores the theme and the cached session. With a cached user the
// shell enters Authenticated and refreshes credits; a refresh failure is
// returned but does not undo the boot unless the backend rejects the token.
func (s *Shell) Boot(ctx context.Context) error {
	theme, err := s.store.LoadTheme(ctx)
	if err != nil {
		s.logger.Warn("load theme", zap.Error(err))
	}

	session, err := s.store.Session(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.theme = theme
	if session.Authenticated() {
		s.enterLocked(session.Token, *session.User)
	}
	s.mu.Unlock()

	if !session.Authenticated() {
		s.logger.Debug("boot without session")
		return nil
	}

	s.logger.Info("session restored", zap.String("user_id", string(session.User.ID)))
	if _, err := s.RefreshCredits(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Shell) Login(ctx context.Context, cmd LoginCommand) error {
	cmd, err := cmd.normalize()
	if err != nil {
		return err
	}

	result, err := s.gateway.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return err
	}
	return s.establish(ctx, "login", result)
}

func (s *Shell) Signup(ctx context.Context, cmd SignupCommand) error {
	cmd, err := cmd.normalize()
	if err != nil {
		return err
	}

	result, err := s.gateway.Signup(ctx, cmd.Name, cmd.Email, cmd.Password)
	if err != nil {
		return err
	}
	return s.establish(ctx, "signup", result)
}

func (s *Shell) establish(ctx context.Context, via string, result ports.AuthResult) error {
	user := result.User
	if err := s.store.SaveSession(ctx, domain.Session{Token: result.Token, User: &user}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.enterLocked(result.Token, user)
	s.mu.Unlock()

	s.logger.Info("authenticated", zap.String("via", via), zap.String("user_id", string(user.ID)))

	if _, err := s.RefreshCredits(ctx); err != nil {
		// A rejected token has already logged the session out again.
		if errors.Is(err, domain.ErrAuth) && !s.Snapshot().Authenticated() {
			return fmt.Errorf("%s: %w", via, err)
		}
		s.logger.Warn("refresh credits after "+via, zap.Error(err))
	}
	return nil
}

func (s *Shell) enterLocked(token string, user domain.User) {
	s.state = StateAuthenticated
	s.token = token
	s.user = &user
	s.credits = 0
	s.creditsUpdatedAt = time.Time{}
	s.creditsSeq.Invalidate()
}

// RefreshCredits replaces the cached balance with the backend's. An older
// refresh finishing after a newer one is discarded.
func (s *Shell) RefreshCredits(ctx context.Context) (domain.Credits, error) {
	token, err := s.Token()
	if err != nil {
		return 0, err
	}

	ticket := s.creditsSeq.Begin()
	credits, err := s.gateway.GetCredits(ctx, token)
	if err != nil {
		return 0, s.HandleError(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated || s.token != token {
		return 0, domain.ErrStaleResponse
	}
	if !s.creditsSeq.Accept(ticket) {
		return s.credits, domain.ErrStaleResponse
	}
	s.credits = credits
	s.creditsUpdatedAt = s.clock.Now()
	return credits, nil
}

// Logout removes token and user from the store and resets the in-memory
// session. Readers never observe a half cleared session.
func (s *Shell) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.ClearSession(ctx)
	s.resetLocked()
	s.logger.Info("logged out")

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ClearAll wipes the whole store, theme included. Used after the account is
// deleted.
func (s *Shell) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Clear(ctx)
	s.resetLocked()
	s.theme = domain.DefaultTheme
	s.logger.Info("local state cleared")

	if err != nil {
		return fmt.Errorf("clear local state: %w", err)
	}
	return nil
}

func (s *Shell) resetLocked() {
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
	s.credits = 0
	s.creditsUpdatedAt = time.Time{}
	s.creditsSeq.Invalidate()
}

func (s *Shell) ReplaceUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return domain.ErrNotAuthenticated
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.user = &user
	return nil
}

// HandleError forces a re-login when the backend rejects the session token.
// It always returns err so callers can write `return s.HandleError(ctx, err)`.
func (s *Shell) HandleError(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, domain.ErrAuth) {
		return err
	}

	s.mu.RLock()
	authenticated := s.state == StateAuthenticated
	s.mu.RUnlock()
	if !authenticated {
		return err
	}

	s.logger.Info("session rejected by backend, logging out", zap.Error(err))
	if logoutErr := s.Logout(ctx); logoutErr != nil {
		return errors.Join(err, logoutErr)
	}
	return err
}

func (s *Shell) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.store.SetTheme(ctx, theme); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

func (s *Shell) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next := s.Snapshot().Theme.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *Shell) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		State:            s.state,
		Credits:          s.credits,
		CreditsUpdatedAt: s.creditsUpdatedAt,
		Theme:            s.theme,
	}
	if s.user != nil {
		user := *s.user
		snapshot.User = &user
	}
	return snapshot
}

func (s *Shell) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated {
		return "", domain.ErrNotAuthenticated
	}
	return s.token, nil
}

func (s *Shell) User() (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated || s.user == nil {
		return domain.User{}, domain.ErrNotAuthenticated
	}
	return *s.user, nil
}
