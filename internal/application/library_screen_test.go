package application

import (
	"context"
	"testing"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/bnema/clipgen-cli/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var libraryFixture = []domain.LibraryItem{
	{ID: "a", URL: "https://cdn/a.jpg", Prompt: "kawaii robot"},
	{ID: "b", URL: "https://cdn/b.jpg", Prompt: "smiling donut"},
	{ID: "c", URL: "https://cdn/c.jpg", Prompt: "pastel space whale"},
}

func loadedLibrary(t *testing.T) *testEnv {
	t.Helper()

	env := newTestEnv(t)
	env.loggedIn(t, 1)
	env.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return(libraryFixture, nil).Once()

	_, err := env.studio.Library.Load(context.Background())
	require.NoError(t, err)
	return env
}

func TestLibraryDeleteAfterConfirmationRemovesExactlyOneItem(t *testing.T) {
	env := loadedLibrary(t)
	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
	env.gateway.EXPECT().DeleteLibraryItem(mock.Anything, "t1", domain.LibraryItemID("b")).Return(nil).Once()

	require.NoError(t, env.studio.Library.Delete(context.Background(), "b", confirmer))

	want := []domain.LibraryItem{libraryFixture[0], libraryFixture[2]}
	if diff := cmp.Diff(want, env.studio.Library.View().Items); diff != "" {
		t.Fatalf("unexpected library (-want +got):\n%s", diff)
	}
	env.gateway.AssertNumberOfCalls(t, "DeleteLibraryItem", 1)
}

func TestLibraryDeleteDeclinedSendsNothing(t *testing.T) {
	env := loadedLibrary(t)
	declined := ports.ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })

	err := env.studio.Library.Delete(context.Background(), "b", declined)
	assert.ErrorIs(t, err, domain.ErrConfirmationDeclined)

	env.gateway.AssertNotCalled(t, "DeleteLibraryItem", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, env.studio.Library.View().Items, 3)
	assert.Equal(t, NoticeInfo, env.studio.Library.View().Notice.Level)
}

func TestLibraryDeleteFailureKeepsItem(t *testing.T) {
	env := loadedLibrary(t)
	env.gateway.EXPECT().DeleteLibraryItem(mock.Anything, "t1", domain.LibraryItemID("a")).Return(validationErr("delete", "Item not found")).Once()

	err := env.studio.Library.Delete(context.Background(), "a", ports.Confirmed)
	require.Error(t, err)

	view := env.studio.Library.View()
	assert.Len(t, view.Items, 3)
	assert.Equal(t, "Item not found", view.Notice.Text)
}

func TestLibraryStaleLoadDoesNotResurrectDeletedItem(t *testing.T) {
	env := loadedLibrary(t)

	started := make(chan struct{})
	release := make(chan struct{})
	env.gateway.EXPECT().ListLibrary(mock.Anything, "t1").
		RunAndReturn(func(context.Context, string) ([]domain.LibraryItem, error) {
			close(started)
			<-release
			return libraryFixture, nil
		}).Once()
	env.gateway.EXPECT().DeleteLibraryItem(mock.Anything, "t1", domain.LibraryItemID("a")).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := env.studio.Library.Load(context.Background())
		done <- err
	}()
	<-started

	require.NoError(t, env.studio.Library.Delete(context.Background(), "a", ports.Confirmed))
	close(release)

	assert.ErrorIs(t, <-done, domain.ErrStaleResponse)
	assert.Len(t, env.studio.Library.View().Items, 2)
}

func TestLibraryOutOfOrderLoadsKeepNewest(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	env.gateway.EXPECT().ListLibrary(mock.Anything, "t1").
		RunAndReturn(func(context.Context, string) ([]domain.LibraryItem, error) {
			close(started)
			<-release
			return libraryFixture, nil
		}).Once()
	env.gateway.EXPECT().ListLibrary(mock.Anything, "t1").Return(libraryFixture[:1], nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := env.studio.Library.Load(context.Background())
		done <- err
	}()
	<-started

	items, err := env.studio.Library.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	close(release)
	assert.ErrorIs(t, <-done, domain.ErrStaleResponse)
	assert.Len(t, env.studio.Library.View().Items, 1)
}

func TestLibraryOpen(t *testing.T) {
	env := loadedLibrary(t)

	item, err := env.studio.Library.Open("c")
	require.NoError(t, err)
	assert.Equal(t, "pastel space whale", item.Prompt)
	require.NotNil(t, env.studio.Library.View().Selected)
	assert.Equal(t, domain.LibraryItemID("c"), env.studio.Library.View().Selected.ID)

	_, err = env.studio.Library.Open("zzz")
	assert.ErrorIs(t, err, domain.ErrLibraryItemNotFound)
}

func TestLibraryLoadRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.studio.Library.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestLibrarySaveExistingImage(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	env.gateway.EXPECT().SaveToLibrary(mock.Anything, "t1", domain.NewSaveRequest("1", "kawaii robot", "https://cdn/k.jpg")).Return(nil).Once()

	require.NoError(t, env.studio.Library.Save(context.Background(), " kawaii robot ", "https://cdn/k.jpg"))
	assert.Equal(t, SuccessNotice("Saved to library"), env.studio.Library.View().Notice)

	assert.ErrorIs(t, env.studio.Library.Save(context.Background(), "kawaii robot", " "), domain.ErrNoImage)
}
