package application

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithZeroCreditsNavigatesToBillingWithoutRequest(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 0)

	_, err := env.studio.Generate.Generate(context.Background(), "kawaii robot")
	require.ErrorIs(t, err, domain.ErrInsufficientCredits)

	assert.Equal(t, domain.PathBilling, env.studio.Router.Path())
	assert.Equal(t, domain.ScreenBilling, env.studio.Router.Current())
	env.gateway.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, NoticeError, env.studio.Generate.View().Notice.Level)
}

func TestGenerateStoresImageAndRefreshesCredits(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "smiling donut").Return("https://cdn/x.jpg", nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()

	url, err := env.studio.Generate.Generate(context.Background(), "  smiling donut ")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.jpg", url)

	view := env.studio.Generate.View()
	assert.Equal(t, "https://cdn/x.jpg", view.ImageURL)
	assert.Equal(t, "smiling donut", view.LastPrompt)
	assert.Equal(t, domain.Credits(1), view.Credits)
	assert.False(t, view.Generating)
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)

	_, err := env.studio.Generate.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
}

func TestGenerateRefusesSecondRequestWhileOneIsInFlight(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)

	started := make(chan struct{})
	release := make(chan struct{})
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "kawaii robot").
		RunAndReturn(func(context.Context, string, string) (string, error) {
			close(started)
			<-release
			return "https://cdn/1.jpg", nil
		}).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := env.studio.Generate.Generate(context.Background(), "kawaii robot")
		done <- err
	}()
	<-started

	assert.True(t, env.studio.Generate.View().Generating)
	_, err := env.studio.Generate.Generate(context.Background(), "kawaii robot")
	assert.ErrorIs(t, err, domain.ErrGenerationInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestGenerateBackendRejectionIsSurfacedVerbatim(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "kawaii robot").Return("", validationErr("generate", "Prompt violates content policy")).Once()

	_, err := env.studio.Generate.Generate(context.Background(), "kawaii robot")
	require.Error(t, err)

	view := env.studio.Generate.View()
	assert.Equal(t, Notice{Level: NoticeError, Text: "Prompt violates content policy"}, view.Notice)
	assert.Empty(t, view.ImageURL)
	assert.True(t, env.studio.Shell.Snapshot().Authenticated())
}

func TestGenerateAuthErrorForcesRelogin(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "kawaii robot").Return("", authErr("generate")).Once()

	_, err := env.studio.Generate.Generate(context.Background(), "kawaii robot")
	assert.ErrorIs(t, err, domain.ErrAuth)
	assert.False(t, env.studio.Shell.Snapshot().Authenticated())
}

func TestGenerateSaveUsesImageDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "pastel space whale").Return("https://cdn/w.jpg", nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()
	env.gateway.EXPECT().SaveToLibrary(mock.Anything, "t1", domain.SaveRequest{
		UserID: "1",
		Prompt: "pastel space whale",
		URL:    "https://cdn/w.jpg",
		Format: "jpg",
		Width:  768,
		Height: 768,
	}).Return(nil).Once()

	prompt, err := env.studio.Generate.UseQuickPrompt(3)
	require.NoError(t, err)
	_, err = env.studio.Generate.Generate(context.Background(), prompt)
	require.NoError(t, err)

	require.NoError(t, env.studio.Generate.Save(context.Background()))
	view := env.studio.Generate.View()
	assert.True(t, view.Saved)
	assert.Equal(t, NoticeSuccess, view.Notice.Level)
}

func TestGenerateSaveWithoutImageFails(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)

	assert.ErrorIs(t, env.studio.Generate.Save(context.Background()), domain.ErrNoImage)
}

func TestRegenerateReusesLastPrompt(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 5)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "smiling donut").Return("https://cdn/a.jpg", nil).Once()
	env.gateway.EXPECT().Generate(mock.Anything, "t1", "smiling donut").Return("https://cdn/b.jpg", nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(4), nil).Twice()

	_, err := env.studio.Generate.Generate(context.Background(), "smiling donut")
	require.NoError(t, err)
	env.studio.Generate.SetPrompt("something else")

	url, err := env.studio.Generate.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/b.jpg", url)
}

func TestGenerateDownloadWritesImage(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 2)
	env.gateway.EXPECT().Generate(mock.Anything, "t1", domain.DefaultPrompt).Return("https://cdn/c.jpg", nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()
	env.gateway.EXPECT().Download(mock.Anything, "https://cdn/c.jpg", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, w io.Writer) (int64, error) {
			n, err := w.Write([]byte("jpeg"))
			return int64(n), err
		}).Once()

	_, err := env.studio.Generate.Generate(context.Background(), env.studio.Generate.View().Prompt)
	require.NoError(t, err)

	var out bytes.Buffer
	written, err := env.studio.Generate.Download(context.Background(), &out)
	require.NoError(t, err)
	assert.Equal(t, int64(4), written)
	assert.Equal(t, "jpeg", out.String())
}
