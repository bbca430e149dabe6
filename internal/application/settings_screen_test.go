package application

import (
	"context"
	"testing"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/bnema/clipgen-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdateEmailReplacesAndPersistsUser(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	updated := domain.User{ID: "1", Name: "Ann", Email: "ann@new.io"}
	env.gateway.EXPECT().UpdateEmail(mock.Anything, "t1", "ann@new.io").Return(updated, nil).Once()

	assert.Equal(t, "a@b.com", env.studio.Settings.Email())
	env.studio.Settings.SetEmail(" ann@new.io ")

	user, err := env.studio.Settings.UpdateEmail(context.Background(), env.studio.Settings.Email())
	require.NoError(t, err)
	assert.Equal(t, updated, user)
	assert.Equal(t, "ann@new.io", env.studio.Settings.View().Email)

	restarted := newTestEnvAt(t, env.dir)
	restarted.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(1), nil).Once()
	require.NoError(t, restarted.studio.Shell.Boot(context.Background()))
	assert.Equal(t, "ann@new.io", restarted.studio.Shell.Snapshot().User.Email)
}

func TestSettingsUpdateEmailRejected(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	env.gateway.EXPECT().UpdateEmail(mock.Anything, "t1", "taken@b.com").Return(domain.User{}, validationErr("update email", "Email already registered")).Once()

	_, err := env.studio.Settings.UpdateEmail(context.Background(), "taken@b.com")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", env.studio.Settings.View().Notice.Text)
	assert.Equal(t, "a@b.com", env.studio.Shell.Snapshot().User.Email)
}

func TestSettingsChangePassword(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	env.gateway.EXPECT().ChangePassword(mock.Anything, "t1", "x", "y").Return(nil).Once()

	require.NoError(t, env.studio.Settings.ChangePassword(context.Background(), ChangePasswordCommand{OldPassword: "x", NewPassword: "y"}))
	assert.Equal(t, SuccessNotice("Password changed"), env.studio.Settings.View().Notice)

	err := env.studio.Settings.ChangePassword(context.Background(), ChangePasswordCommand{OldPassword: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestSettingsDeleteAccountClearsEverything(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	require.NoError(t, env.studio.Shell.SetTheme(context.Background(), domain.ThemeDark))

	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, deleteAccountPrompt).Return(true, nil).Once()
	env.gateway.EXPECT().DeleteAccount(mock.Anything, "t1").Return(nil).Once()

	require.NoError(t, env.studio.Settings.DeleteAccount(context.Background(), confirmer))

	assert.False(t, env.studio.Shell.Snapshot().Authenticated())
	assert.Equal(t, domain.DefaultTheme, env.studio.Shell.Snapshot().Theme)
	for _, key := range []string{KeyUser, KeyTheme} {
		_, ok, err := env.kv.Get(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	_, err := env.secrets.Get(context.Background(), TokenSecretKey)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestSettingsDeleteAccountDeclined(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	declined := ports.ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })

	err := env.studio.Settings.DeleteAccount(context.Background(), declined)
	assert.ErrorIs(t, err, domain.ErrConfirmationDeclined)
	env.gateway.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
	assert.True(t, env.studio.Shell.Snapshot().Authenticated())
}

func TestSettingsDeleteAccountFailureKeepsSession(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 1)
	env.gateway.EXPECT().DeleteAccount(mock.Anything, "t1").Return(validationErr("delete account", "Try again later")).Once()

	err := env.studio.Settings.DeleteAccount(context.Background(), ports.Confirmed)
	require.Error(t, err)
	assert.True(t, env.studio.Shell.Snapshot().Authenticated())

	token, err := env.secrets.Get(context.Background(), TokenSecretKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
}
