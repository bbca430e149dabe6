package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"golang.org/x/sync/errgroup"
)

const DashboardPlan = "Flexible"

var dashboardShortcuts = []NavEntry{
	{Screen: domain.ScreenGenerate, Path: domain.PathGenerate, Label: "Generate clipart"},
	{Screen: domain.ScreenLibrary, Path: domain.PathLibrary, Label: "Open library"},
	{Screen: domain.ScreenBilling, Path: domain.PathBilling, Label: "Buy credits"},
}

type DashboardScreen struct {
	shell   *Shell
	gateway ports.Gateway
	seq     Sequencer

	mu     sync.Mutex
	recent []domain.LibraryItem
	loaded bool
	notice Notice
}

func NewDashboardScreen(shell *Shell, gateway ports.Gateway) *DashboardScreen {
	return &DashboardScreen{shell: shell, gateway: gateway}
}

// Load refreshes credits and fetches recent creations concurrently. Both
// calls run to completion; the first error is returned.
func (d *DashboardScreen) Load(ctx context.Context) (DashboardView, error) {
	token, err := d.shell.Token()
	if err != nil {
		d.setNotice(ErrorNotice(err))
		return d.View(), err
	}

	ticket := d.seq.Begin()

	var (
		group errgroup.Group
		items []domain.LibraryItem
	)
	group.Go(func() error {
		_, err := d.shell.RefreshCredits(ctx)
		if isStale(err) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		var err error
		items, err = d.gateway.ListLibrary(ctx, token)
		return err
	})
	loadErr := group.Wait()

	d.mu.Lock()
	if !d.seq.Accept(ticket) {
		d.mu.Unlock()
		return DashboardView{}, domain.ErrStaleResponse
	}
	if items != nil {
		d.recent = domain.RecentItems(items, domain.RecentCreationsLimit)
		d.loaded = true
	}
	d.notice = ErrorNotice(loadErr)
	d.mu.Unlock()

	if loadErr != nil {
		return d.View(), d.shell.HandleError(ctx, loadErr)
	}
	return d.View(), nil
}

func (d *DashboardScreen) View() DashboardView {
	snapshot := d.shell.Snapshot()

	d.mu.Lock()
	defer d.mu.Unlock()

	welcome := "Welcome back"
	if snapshot.User != nil {
		if name := snapshot.User.DisplayName(); name != "" {
			welcome = fmt.Sprintf("Welcome back, %s", name)
		}
	}

	return DashboardView{
		Welcome:   welcome,
		Credits:   snapshot.Credits,
		Recent:    append([]domain.LibraryItem(nil), d.recent...),
		Plan:      DashboardPlan,
		Shortcuts: append([]NavEntry(nil), dashboardShortcuts...),
		Loaded:    d.loaded,
		Notice:    d.notice,
	}
}

func (d *DashboardScreen) setNotice(notice Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.notice = notice
}
