package application

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
)

const deleteItemPrompt = "Delete this image from your library?"

type LibraryScreen struct {
	shell   *Shell
	gateway ports.Gateway
	seq     Sequencer

	mu       sync.Mutex
	items    []domain.LibraryItem
	selected domain.LibraryItemID
	loaded   bool
	notice   Notice
}

func NewLibraryScreen(shell *Shell, gateway ports.Gateway) *LibraryScreen {
	return &LibraryScreen{shell: shell, gateway: gateway}
}

func (l *LibraryScreen) Load(ctx context.Context) ([]domain.LibraryItem, error) {
	token, err := l.shell.Token()
	if err != nil {
		return nil, l.fail(err)
	}

	ticket := l.seq.Begin()
	items, err := l.gateway.ListLibrary(ctx, token)

	l.mu.Lock()
	if !l.seq.Accept(ticket) {
		l.mu.Unlock()
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		l.notice = ErrorNotice(err)
		l.mu.Unlock()
		return nil, l.shell.HandleError(ctx, err)
	}
	l.items = items
	l.loaded = true
	l.notice = Notice{}
	l.mu.Unlock()

	return append([]domain.LibraryItem(nil), items...), nil
}

// Save stores an existing image URL in the library with the default format.
func (l *LibraryScreen) Save(ctx context.Context, prompt string, url string) error {
	user, err := l.shell.User()
	if err != nil {
		return l.fail(err)
	}
	token, err := l.shell.Token()
	if err != nil {
		return l.fail(err)
	}

	req := domain.NewSaveRequest(user.ID, strings.TrimSpace(prompt), strings.TrimSpace(url))
	if err := req.Validate(); err != nil {
		return l.fail(err)
	}

	if err := l.gateway.SaveToLibrary(ctx, token, req); err != nil {
		l.setNotice(ErrorNotice(err))
		return l.shell.HandleError(ctx, err)
	}

	l.setNotice(SuccessNotice("Saved to library"))
	return nil
}

// Delete asks for confirmation and then removes exactly one item, remotely
// and locally. Declining sends nothing.
func (l *LibraryScreen) Delete(ctx context.Context, id domain.LibraryItemID, confirmer ports.Confirmer) error {
	token, err := l.shell.Token()
	if err != nil {
		return l.fail(err)
	}

	ok, err := confirmer.Confirm(ctx, deleteItemPrompt)
	if err != nil {
		return l.fail(err)
	}
	if !ok {
		return l.fail(domain.ErrConfirmationDeclined)
	}

	if err := l.gateway.DeleteLibraryItem(ctx, token, id); err != nil {
		l.setNotice(ErrorNotice(err))
		return l.shell.HandleError(ctx, err)
	}

	l.mu.Lock()
	// A list fetched before the delete could still contain the item.
	l.seq.Invalidate()
	l.items = domain.WithoutItem(l.items, id)
	if l.selected == id {
		l.selected = ""
	}
	l.notice = SuccessNotice("Deleted")
	l.mu.Unlock()

	return nil
}

// Open selects an item for the detail view.
func (l *LibraryScreen) Open(id domain.LibraryItemID) (domain.LibraryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.findLocked(id)
	if !ok {
		return domain.LibraryItem{}, domain.ErrLibraryItemNotFound
	}
	l.selected = id
	return item, nil
}

func (l *LibraryScreen) Download(ctx context.Context, id domain.LibraryItemID, w io.Writer) (int64, error) {
	l.mu.Lock()
	item, ok := l.findLocked(id)
	l.mu.Unlock()
	if !ok {
		return 0, l.fail(domain.ErrLibraryItemNotFound)
	}

	written, err := l.gateway.Download(ctx, item.URL, w)
	if err != nil {
		return written, l.fail(err)
	}
	return written, nil
}

func (l *LibraryScreen) View() LibraryView {
	l.mu.Lock()
	defer l.mu.Unlock()

	view := LibraryView{
		Items:  append([]domain.LibraryItem(nil), l.items...),
		Loaded: l.loaded,
		Notice: l.notice,
	}
	if item, ok := l.findLocked(l.selected); ok {
		view.Selected = &item
	}
	return view
}

func (l *LibraryScreen) findLocked(id domain.LibraryItemID) (domain.LibraryItem, bool) {
	if id == "" {
		return domain.LibraryItem{}, false
	}
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.LibraryItem{}, false
}

func (l *LibraryScreen) fail(err error) error {
	l.setNotice(ErrorNotice(err))
	return err
}

func (l *LibraryScreen) setNotice(notice Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.notice = notice
}
