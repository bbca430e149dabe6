package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
)

type BillingScreen struct {
	shell   *Shell
	gateway ports.Gateway
	seq     Sequencer

	mu         sync.Mutex
	history    []domain.Purchase
	purchasing bool
	notice     Notice
}

func NewBillingScreen(shell *Shell, gateway ports.Gateway) *BillingScreen {
	return &BillingScreen{shell: shell, gateway: gateway}
}

func (b *BillingScreen) Tiers() []domain.Tier {
	return domain.Tiers()
}

func (b *BillingScreen) LoadHistory(ctx context.Context) ([]domain.Purchase, error) {
	token, err := b.shell.Token()
	if err != nil {
		return nil, b.fail(err)
	}

	ticket := b.seq.Begin()
	history, err := b.gateway.GetPurchaseHistory(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.seq.Accept(ticket) {
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		b.notice = ErrorNotice(err)
		return nil, b.shell.HandleError(ctx, err)
	}
	b.history = history
	return append([]domain.Purchase(nil), history...), nil
}

// Buy checks out a tier. The balance shown afterwards is whatever the
// backend reports next; it is never incremented locally.
func (b *BillingScreen) Buy(ctx context.Context, rawTier string) (domain.Credits, error) {
	tier, err := domain.LookupTier(rawTier)
	if err != nil {
		return 0, b.fail(err)
	}

	token, err := b.shell.Token()
	if err != nil {
		return 0, b.fail(err)
	}

	b.mu.Lock()
	if b.purchasing {
		b.mu.Unlock()
		return 0, domain.ErrPurchaseInFlight
	}
	b.purchasing = true
	b.notice = Notice{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.purchasing = false
		b.mu.Unlock()
	}()

	if err := b.gateway.Checkout(ctx, token, tier.ID); err != nil {
		b.setNotice(ErrorNotice(err))
		return 0, b.shell.HandleError(ctx, err)
	}

	// From here on the purchase is done; follow-up failures only warn.
	purchased := tier.Name + " pack purchased"

	credits, err := b.shell.RefreshCredits(ctx)
	if isStale(err) {
		credits, err = b.shell.Snapshot().Credits, nil
	}
	if err != nil {
		b.setNotice(WarningNotice(fmt.Sprintf("%s. The balance could not be refreshed: %s", purchased, domain.UserMessage(err))))
		return b.shell.Snapshot().Credits, nil
	}

	if _, err := b.LoadHistory(ctx); err != nil && !isStale(err) {
		b.setNotice(WarningNotice(fmt.Sprintf("%s. Balance: %s. The purchase history could not be loaded: %s", purchased, credits, domain.UserMessage(err))))
		return credits, nil
	}

	b.setNotice(SuccessNotice(fmt.Sprintf("%s. Balance: %s", purchased, credits)))
	return credits, nil
}

func (b *BillingScreen) View() BillingView {
	snapshot := b.shell.Snapshot()

	b.mu.Lock()
	defer b.mu.Unlock()

	return BillingView{
		Tiers:      domain.Tiers(),
		History:    append([]domain.Purchase(nil), b.history...),
		Credits:    snapshot.Credits,
		Purchasing: b.purchasing,
		Notice:     b.notice,
	}
}

func (b *BillingScreen) fail(err error) error {
	b.setNotice(ErrorNotice(err))
	return err
}

func (b *BillingScreen) setNotice(notice Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notice = notice
}

func isStale(err error) bool {
	return errors.Is(err, domain.ErrStaleResponse)
}
