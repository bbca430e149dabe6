package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/clipgen-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/clipgen-cli/internal/adapters/secrets/file"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/bnema/clipgen-cli/internal/ports/mocks"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	ann     = domain.User{ID: "1", Name: "Ann", Email: "a@b.com"}
)

type nopApplier struct{}

func (nopApplier) ApplyTheme(domain.Theme) {}

type harness struct {
	gateway *mocks.MockGateway
	studio  *application.Studio
	model   Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()
	config := viper.New()
	config.Set(tomlrepo.StatePathKey, filepath.Join(dir, "state.toml"))
	kv, err := tomlrepo.NewRepository(config)
	require.NoError(t, err)

	store := application.NewSessionStore(kv, filestore.NewStore(filepath.Join(dir, "secrets")), nopApplier{})
	gateway := mocks.NewMockGateway(t)
	studio := application.NewStudio(store, gateway, ports.SystemClock{}, zaptest.NewLogger(t), "/")

	h := &harness{
		gateway: gateway,
		studio:  studio,
		model:   New(context.Background(), studio, WithClock(func() time.Time { return testNow })),
	}
	h.model = drain(h.model, h.model.Init())
	return h
}

// drain runs cmd and feeds back the results of backend calls. Spinner ticks
// and other framework messages are dropped.
func drain(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(m, c)
		}
	case doneMsg, bootedMsg:
		next, cmd := m.Update(msg)
		m = drain(next.(Model), cmd)
	}
	return m
}

func (h *harness) press(keys ...string) {
	for _, key := range keys {
		h.model = h.send(keyMsg(key))
	}
}

func (h *harness) typeText(text string) {
	next, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	h.model = next.(Model)
}

func (h *harness) send(msg tea.Msg) Model {
	next, cmd := h.model.Update(msg)
	return drain(next.(Model), cmd)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func (h *harness) login(t *testing.T, credits domain.Credits) {
	t.Helper()

	h.gateway.EXPECT().Login(mock.Anything, "a@b.com", "x").Return(ports.AuthResult{Token: "t1", User: ann}, nil).Once()
	h.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(credits, nil).Once()

	h.typeText("a@b.com")
	h.press("tab")
	h.typeText("x")
	h.press("enter")
	require.True(t, h.studio.Shell.Snapshot().Authenticated())
}

func TestBootWithoutSessionShowsAuthForm(t *testing.T) {
	h := newHarness(t)

	view := h.model.View()
	assert.Contains(t, view, "Welcome back")
	assert.Contains(t, view, "Email")
	assert.NotContains(t, view, "My Library")

	h.press("ctrl+n")
	assert.Contains(t, h.model.View(), "Create your account")
	assert.Contains(t, h.model.View(), "Name")
}

func TestLoginShowsGenerateScreenInLayout(t *testing.T) {
	h := newHarness(t)
	h.login(t, 3)

	view := h.model.View()
	assert.Contains(t, view, "Generate clipart")
	assert.Contains(t, view, "3 credits")
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "My Library")
}

func TestFailedLoginShowsBackendDetail(t *testing.T) {
	h := newHarness(t)
	h.gateway.EXPECT().Login(mock.Anything, "a@b.com", "bad").
		Return(ports.AuthResult{}, &domain.APIError{Op: "login", Kind: domain.ErrorKindAuth, Status: 401, Detail: "Invalid credentials"}).Once()

	h.typeText("a@b.com")
	h.press("tab")
	h.typeText("bad")
	h.press("enter")

	assert.False(t, h.studio.Shell.Snapshot().Authenticated())
	assert.Contains(t, h.model.View(), "Invalid credentials")
}

func TestGenerateWithoutCreditsOpensBilling(t *testing.T) {
	h := newHarness(t)
	h.login(t, 0)
	h.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(nil, nil).Once()

	h.press("g")

	h.gateway.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, domain.PathBilling, h.studio.Router.Path())
	assert.Contains(t, h.model.View(), "No purchases yet.")
}

func TestGenerateFromEditedPrompt(t *testing.T) {
	h := newHarness(t)
	h.login(t, 2)
	h.gateway.EXPECT().Generate(mock.Anything, "t1", "smiling donut").Return("https://cdn/d.jpg", nil).Once()
	h.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()

	h.press("i")
	h.model.prompt.SetValue("")
	h.typeText("smiling donut")
	h.press("enter")

	view := h.model.View()
	assert.Contains(t, view, "https://cdn/d.jpg")
	assert.Contains(t, view, "1 credit")
}

func TestLibraryDeleteAsksFirst(t *testing.T) {
	h := newHarness(t)
	h.login(t, 1)
	items := []domain.LibraryItem{
		{ID: "img-1", Prompt: "kawaii robot", URL: "https://cdn/1.jpg"},
		{ID: "img-2", Prompt: "smiling donut", URL: "https://cdn/2.jpg"},
	}
	h.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return(items, nil).Once()

	h.press("2")
	assert.Contains(t, h.model.View(), "kawaii robot")
	assert.Equal(t, 0, h.model.library.Cursor())
	assert.Equal(t, domain.LibraryItemID("img-1"), h.model.selectedItem())

	h.press("x")
	assert.Contains(t, h.model.View(), "Delete this image from your library?")
	h.press("n")
	h.gateway.AssertNotCalled(t, "DeleteLibraryItem", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, h.studio.Library.View().Items, 2)

	h.gateway.EXPECT().DeleteLibraryItem(mock.Anything, "t1", domain.LibraryItemID("img-1")).Return(nil).Once()
	h.press("x", "y")

	assert.Len(t, h.studio.Library.View().Items, 1)
	assert.NotContains(t, h.model.View(), "kawaii robot")
	h.gateway.AssertNumberOfCalls(t, "DeleteLibraryItem", 1)
}

func TestLibrarySelectsFirstRowAfterEmptyLoad(t *testing.T) {
	h := newHarness(t)
	h.login(t, 1)
	h.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return(nil, nil).Once()

	h.press("2")
	assert.Equal(t, domain.LibraryItemID(""), h.model.selectedItem())

	h.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return([]domain.LibraryItem{
		{ID: "img-7", Prompt: "tiny camera with face", URL: "https://cdn/7.jpg"},
	}, nil).Once()
	h.press("R")

	assert.Equal(t, 0, h.model.library.Cursor())
	assert.Equal(t, domain.LibraryItemID("img-7"), h.model.selectedItem())

	h.press("enter")
	require.NotNil(t, h.studio.Library.View().Selected)
	assert.Equal(t, domain.LibraryItemID("img-7"), h.studio.Library.View().Selected.ID)
}

func TestBuySelectedTier(t *testing.T) {
	h := newHarness(t)
	h.login(t, 0)
	h.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(nil, nil).Once()
	h.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierCreator).Return(nil).Once()
	h.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(150), nil).Once()
	h.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").
		Return([]domain.Purchase{{ID: "pur-1", Tier: domain.TierCreator, CreditsAdded: 150, CreatedAt: testNow}}, nil).Once()

	h.press("3")
	h.model = h.send(tea.KeyMsg{Type: tea.KeyDown})
	h.press("enter")

	assert.Equal(t, domain.Credits(150), h.studio.Shell.Snapshot().Credits)
	assert.Contains(t, h.model.View(), "+150 credits")
}

func TestThemeToggle(t *testing.T) {
	h := newHarness(t)
	h.login(t, 1)

	h.press("4", "t")
	assert.Equal(t, domain.ThemeDark, h.studio.Shell.Snapshot().Theme)
	assert.Contains(t, h.model.View(), "dark")
}

func TestExpiredTokenReturnsToAuthForm(t *testing.T) {
	h := newHarness(t)
	h.login(t, 1)
	h.gateway.EXPECT().GetCredits(mock.Anything, "t1").
		Return(domain.Credits(0), &domain.APIError{Op: "credits", Kind: domain.ErrorKindAuth, Status: 401, Detail: "Invalid or expired token"}).Once()
	h.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return(nil, nil).Maybe()

	h.press("5")

	assert.False(t, h.studio.Shell.Snapshot().Authenticated())
	view := h.model.View()
	assert.Contains(t, view, "Welcome back")
	assert.Contains(t, view, "Invalid or expired token")
}

func TestLogoutShowsAuthForm(t *testing.T) {
	h := newHarness(t)
	h.login(t, 1)

	h.press("L")

	assert.False(t, h.studio.Shell.Snapshot().Authenticated())
	assert.Contains(t, h.model.View(), "Logged out.")
}

func TestStaleResultIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.model.latest[reqAuth] = 2
	h.model.inflight = 1

	h.model = h.send(doneMsg{kind: reqAuth, seq: 1, err: domain.ErrMissingCredentials})

	assert.Equal(t, 0, h.model.inflight)
	assert.NotContains(t, h.model.View(), "email and password are required")
}
