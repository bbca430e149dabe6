package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBillingBuyShowsBackendBalance(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 0)
	history := []domain.Purchase{{ID: "pur-1", Tier: domain.TierCreator, CreditsAdded: 150, CreatedAt: fixedNow}}

	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierCreator).Return(nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(150), nil).Once()
	env.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(history, nil).Once()

	credits, err := env.studio.Billing.Buy(context.Background(), "creator")
	require.NoError(t, err)
	assert.Equal(t, domain.Credits(150), credits)

	view := env.studio.Billing.View()
	assert.Equal(t, domain.Credits(150), view.Credits)
	assert.Equal(t, history, view.History)
	assert.False(t, view.Purchasing)
	assert.Equal(t, NoticeSuccess, view.Notice.Level)
	assert.Contains(t, view.Notice.Text, "Creator")
}

func TestBillingBuyDoesNotAddCreditsLocally(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 10)

	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierStarter).Return(nil).Once()
	// The backend may apply the purchase later; whatever it reports wins.
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(10), nil).Once()
	env.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(nil, nil).Once()

	credits, err := env.studio.Billing.Buy(context.Background(), "starter")
	require.NoError(t, err)
	assert.Equal(t, domain.Credits(10), credits)
}

func TestBillingBuySucceedsWhenHistoryReloadFails(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 0)

	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierCreator).Return(nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(150), nil).Once()
	env.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(nil, validationErr("purchase history", "history service down")).Once()

	credits, err := env.studio.Billing.Buy(context.Background(), "creator")
	require.NoError(t, err)
	assert.Equal(t, domain.Credits(150), credits)

	view := env.studio.Billing.View()
	assert.Equal(t, domain.Credits(150), view.Credits)
	assert.Equal(t, NoticeWarning, view.Notice.Level)
	assert.Contains(t, view.Notice.Text, "Creator pack purchased")
	assert.Contains(t, view.Notice.Text, "history service down")
}

func TestBillingBuySucceedsWhenBalanceRefreshFails(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 3)

	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierStarter).Return(nil).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(0), validationErr("credits", "busy")).Once()

	credits, err := env.studio.Billing.Buy(context.Background(), "starter")
	require.NoError(t, err)
	assert.Equal(t, domain.Credits(3), credits)

	view := env.studio.Billing.View()
	assert.Equal(t, domain.Credits(3), view.Credits)
	assert.Equal(t, NoticeWarning, view.Notice.Level)
	assert.Contains(t, view.Notice.Text, "Starter pack purchased")
	assert.Contains(t, view.Notice.Text, "busy")
	env.gateway.AssertNotCalled(t, "GetPurchaseHistory", mock.Anything, mock.Anything)
}

func TestBillingUnknownTierSendsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 0)

	_, err := env.studio.Billing.Buy(context.Background(), "enterprise")
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
	env.gateway.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingCheckoutRejected(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 3)
	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierPro).Return(validationErr("checkout", "Payment declined")).Once()

	_, err := env.studio.Billing.Buy(context.Background(), "pro")
	require.Error(t, err)

	view := env.studio.Billing.View()
	assert.Equal(t, "Payment declined", view.Notice.Text)
	assert.Equal(t, domain.Credits(3), view.Credits)
}

func TestBillingRefusesConcurrentPurchase(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	env.gateway.EXPECT().Checkout(mock.Anything, "t1", domain.TierPro).
		RunAndReturn(func(context.Context, string, domain.TierID) error {
			close(started)
			<-release
			return nil
		}).Once()
	env.gateway.EXPECT().GetCredits(mock.Anything, "t1").Return(domain.Credits(500), nil).Once()
	env.gateway.EXPECT().GetPurchaseHistory(mock.Anything, "t1").Return(nil, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := env.studio.Billing.Buy(context.Background(), "pro")
		done <- err
	}()
	<-started

	assert.True(t, env.studio.Billing.View().Purchasing)
	_, err := env.studio.Billing.Buy(context.Background(), "pro")
	assert.ErrorIs(t, err, domain.ErrPurchaseInFlight)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("purchase did not finish")
	}
}

func TestBillingHistoryRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.studio.Billing.LoadHistory(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Len(t, env.studio.Billing.Tiers(), 3)
}
