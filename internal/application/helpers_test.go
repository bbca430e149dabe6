package application

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tomlrepo "github.com/bnema/clipgen-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/clipgen-cli/internal/adapters/secrets/file"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/bnema/clipgen-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

type recordingApplier struct {
	mu      sync.Mutex
	applied []domain.Theme
}

func (r *recordingApplier) ApplyTheme(theme domain.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applied = append(r.applied, theme)
}

func (r *recordingApplier) last() domain.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.applied) == 0 {
		return ""
	}
	return r.applied[len(r.applied)-1]
}

type testEnv struct {
	dir     string
	kv      *tomlrepo.Repository
	secrets *filestore.Store
	applier *recordingApplier
	store   *SessionStore
	gateway *mocks.MockGateway
	studio  *Studio
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, t.TempDir())
}

// newTestEnvAt builds a fresh process over the same on-disk state in dir.
func newTestEnvAt(t *testing.T, dir string) *testEnv {
	t.Helper()

	config := viper.New()
	config.Set(tomlrepo.StatePathKey, filepath.Join(dir, "state.toml"))
	kv, err := tomlrepo.NewRepository(config)
	require.NoError(t, err)

	secrets := filestore.NewStore(filepath.Join(dir, "secrets"))
	applier := &recordingApplier{}
	store := NewSessionStore(kv, secrets, applier)
	gateway := mocks.NewMockGateway(t)

	return &testEnv{
		dir:     dir,
		kv:      kv,
		secrets: secrets,
		applier: applier,
		store:   store,
		gateway: gateway,
		studio:  NewStudio(store, gateway, fixedClock{}, zaptest.NewLogger(t), "/"),
	}
}

var ann = domain.User{ID: "1", Name: "Ann", Email: "a@b.com"}

// loggedIn logs ann in with token t1 and the given balance.
func (e *testEnv) loggedIn(t *testing.T, credits domain.Credits) {
	t.Helper()

	e.gateway.EXPECT().Login(mock.Anything, "a@b.com", "x").Return(ports.AuthResult{Token: "t1", User: ann}, nil).Once()
	e.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(credits, nil).Once()
	require.NoError(t, e.studio.Shell.Login(context.Background(), LoginCommand{Email: "a@b.com", Password: "x"}))
}

func authErr(op string) error {
	return &domain.APIError{Op: op, Kind: domain.ErrorKindAuth, Status: 401, Detail: "Invalid or expired token"}
}

func validationErr(op string, detail string) error {
	return &domain.APIError{Op: op, Kind: domain.ErrorKindValidation, Status: 400, Detail: detail}
}
