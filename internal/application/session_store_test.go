package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := ann

	require.NoError(t, env.store.SaveSession(ctx, domain.Session{Token: "t1", User: &user}))

	session, err := env.store.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, &user, session.User)

	token, err := env.secrets.Get(ctx, TokenSecretKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	_, inKV, err := env.kv.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, inKV, "token must not be written to the plain state file")
}

func TestSessionStoreRepairsHalfSession(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, env *testEnv)
	}{
		{
			name: "token without user",
			setup: func(t *testing.T, env *testEnv) {
				require.NoError(t, env.store.Set(context.Background(), KeyToken, "t1"))
			},
		},
		{
			name: "user without token",
			setup: func(t *testing.T, env *testEnv) {
				require.NoError(t, env.store.Set(context.Background(), KeyUser, `{"id":1,"name":"Ann","email":"a@b.com"}`))
			},
		},
		{
			name: "unreadable user",
			setup: func(t *testing.T, env *testEnv) {
				require.NoError(t, env.store.Set(context.Background(), KeyToken, "t1"))
				require.NoError(t, env.store.Set(context.Background(), KeyUser, `{not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			tt.setup(t, env)

			session, err := env.store.Session(ctx)
			require.NoError(t, err)
			assert.False(t, session.Authenticated())
			assert.True(t, session.Valid())

			_, hasToken, err := env.store.Get(ctx, KeyToken)
			require.NoError(t, err)
			_, hasUser, err := env.store.Get(ctx, KeyUser)
			require.NoError(t, err)
			assert.False(t, hasToken)
			assert.False(t, hasUser)
		})
	}
}

func TestSessionStoreSaveSessionRollsBackTokenWhenUserWriteFails(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	secrets := mocks.NewMockSecretStore(t)
	store := NewSessionStore(kv, secrets, nil)
	user := ann

	secrets.EXPECT().Put(mock.Anything, TokenSecretKey, "t1").Return(nil).Once()
	kv.EXPECT().Set(mock.Anything, KeyUser, mock.AnythingOfType("string")).Return(errors.New("disk full")).Once()
	secrets.EXPECT().Delete(mock.Anything, TokenSecretKey).Return(nil).Once()

	err := store.SaveSession(context.Background(), domain.Session{Token: "t1", User: &user})
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
}

func TestSessionStoreRejectsIncompleteSession(t *testing.T) {
	env := newTestEnv(t)

	err := env.store.SaveSession(context.Background(), domain.Session{Token: "t1"})
	assert.Error(t, err)
}

func TestSessionStoreThemeWriteAppliesTheme(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	theme, err := env.store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	require.NoError(t, env.store.Set(ctx, KeyTheme, "dark"))
	assert.Equal(t, domain.ThemeDark, env.applier.last())

	theme, err = env.store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	assert.ErrorIs(t, env.store.Set(ctx, KeyTheme, "sepia"), domain.ErrInvalidTheme)
}

func TestSessionStoreClearSessionKeepsTheme(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := ann

	require.NoError(t, env.store.SetTheme(ctx, domain.ThemeDark))
	require.NoError(t, env.store.SaveSession(ctx, domain.Session{Token: "t1", User: &user}))
	require.NoError(t, env.store.ClearSession(ctx))

	theme, err := env.store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestSessionStoreClearRemovesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := ann

	require.NoError(t, env.store.SetTheme(ctx, domain.ThemeDark))
	require.NoError(t, env.store.SaveSession(ctx, domain.Session{Token: "t1", User: &user}))
	require.NoError(t, env.store.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser, KeyTheme} {
		_, ok, err := env.store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	assert.Equal(t, domain.ThemeLight, env.applier.last())
}
