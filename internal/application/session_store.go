package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"

	// TokenSecretKey is where the session token lives in the secret store.
	TokenSecretKey = "clipgen/session/token"
)

// SessionStore is the durable home of the session. The token goes to the
// secret store; the user and theme go to the key/value store.
type SessionStore struct {
	kv      ports.KeyValueStore
	secrets ports.SecretStore
	theme   ports.ThemeApplier
}

func NewSessionStore(kv ports.KeyValueStore, secrets ports.SecretStore, theme ports.ThemeApplier) *SessionStore {
	return &SessionStore{kv: kv, secrets: secrets, theme: theme}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == KeyToken {
		value, err := s.secrets.Get(ctx, TokenSecretKey)
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("read session token: %w", err)
		}
		return value, value != "", nil
	}

	value, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, ok, nil
}

// Set writes key. Writing the theme also applies it.
func (s *SessionStore) Set(ctx context.Context, key string, value string) error {
	switch key {
	case KeyToken:
		if err := s.secrets.Put(ctx, TokenSecretKey, value); err != nil {
			return fmt.Errorf("store session token: %w", err)
		}
		return nil
	case KeyTheme:
		theme, err := domain.ParseTheme(value)
		if err != nil {
			return err
		}
		if err := s.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
			return fmt.Errorf("store theme: %w", err)
		}
		s.apply(theme)
		return nil
	default:
		if err := s.kv.Set(ctx, key, value); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		return nil
	}
}

func (s *SessionStore) Remove(ctx context.Context, key string) error {
	if key == KeyToken {
		if err := s.secrets.Delete(ctx, TokenSecretKey); err != nil {
			return fmt.Errorf("delete session token: %w", err)
		}
		return nil
	}

	if err := s.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear wipes every key, theme included.
func (s *SessionStore) Clear(ctx context.Context) error {
	var errs error
	if err := s.secrets.Delete(ctx, TokenSecretKey); err != nil {
		errs = errors.Join(errs, fmt.Errorf("delete session token: %w", err))
	}
	if err := s.kv.Clear(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("clear state: %w", err))
	}
	s.apply(domain.DefaultTheme)
	return errs
}

// Session loads the cached session. A token without a user (or the reverse,
// or an unreadable user) is removed and reported as no session.
func (s *SessionStore) Session(ctx context.Context) (domain.Session, error) {
	token, hasToken, err := s.Get(ctx, KeyToken)
	if err != nil {
		return domain.Session{}, err
	}

	rawUser, hasUser, err := s.Get(ctx, KeyUser)
	if err != nil {
		return domain.Session{}, err
	}

	var user *domain.User
	if hasUser {
		var decoded domain.User
		if err := json.Unmarshal([]byte(rawUser), &decoded); err == nil {
			user = &decoded
		}
	}

	session := domain.Session{Token: token, User: user}
	if hasToken && user != nil {
		return session, nil
	}

	if hasToken || hasUser {
		if err := s.ClearSession(ctx); err != nil {
			return domain.Session{}, fmt.Errorf("repair partial session: %w", err)
		}
	}
	return domain.Session{}, nil
}

// SaveSession persists token and user together. If the user cannot be
// written the token is removed again.
func (s *SessionStore) SaveSession(ctx context.Context, session domain.Session) error {
	if !session.Authenticated() {
		return errors.New("save session: token and user are required")
	}

	encoded, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := s.Set(ctx, KeyToken, session.Token); err != nil {
		return err
	}

	if err := s.Set(ctx, KeyUser, string(encoded)); err != nil {
		if rollbackErr := s.Remove(ctx, KeyToken); rollbackErr != nil {
			return fmt.Errorf("save user and rollback token: %w", errors.Join(err, rollbackErr))
		}
		return err
	}

	return nil
}

func (s *SessionStore) SaveUser(ctx context.Context, user domain.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.Set(ctx, KeyUser, string(encoded))
}

// ClearSession removes token and user, leaving the theme in place.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	return errors.Join(s.Remove(ctx, KeyToken), s.Remove(ctx, KeyUser))
}

// Theme returns the stored theme, or the default when none (or garbage) is
// stored.
func (s *SessionStore) Theme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return domain.DefaultTheme, err
	}
	if !ok {
		return domain.DefaultTheme, nil
	}

	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (s *SessionStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.Set(ctx, KeyTheme, string(theme))
}

// LoadTheme reads the stored theme and applies it without writing.
func (s *SessionStore) LoadTheme(ctx context.Context) (domain.Theme, error) {
	theme, err := s.Theme(ctx)
	s.apply(theme)
	return theme, err
}

func (s *SessionStore) apply(theme domain.Theme) {
	if s.theme != nil {
		s.theme.ApplyTheme(theme)
	}
}
