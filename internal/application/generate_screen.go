package application

import (
	"context"
	"io"
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
)

type GenerateScreen struct {
	shell   *Shell
	gateway ports.Gateway
	router  *Router
	seq     Sequencer

	mu         sync.Mutex
	prompt     string
	lastPrompt string
	imageURL   string
	generating bool
	saved      bool
	notice     Notice
}

func NewGenerateScreen(shell *Shell, gateway ports.Gateway, router *Router) *GenerateScreen {
	return &GenerateScreen{
		shell:   shell,
		gateway: gateway,
		router:  router,
		prompt:  domain.DefaultPrompt,
	}
}

func (g *GenerateScreen) SetPrompt(prompt string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompt = prompt
}

// UseQuickPrompt copies the n-th quick prompt (1-based) into the prompt field.
func (g *GenerateScreen) UseQuickPrompt(n int) (string, error) {
	prompt, err := domain.QuickPrompt(n)
	if err != nil {
		return "", err
	}
	g.SetPrompt(prompt)
	return prompt, nil
}

// Generate asks the backend for one image. With no credits left nothing is
// sent and the router moves to billing. Only one generation runs at a time.
func (g *GenerateScreen) Generate(ctx context.Context, prompt string) (string, error) {
	normalized, err := domain.NormalizePrompt(prompt)
	if err != nil {
		return "", g.fail(err)
	}

	snapshot := g.shell.Snapshot()
	if !snapshot.Authenticated() {
		return "", g.fail(domain.ErrNotAuthenticated)
	}
	if snapshot.Credits.Exhausted() {
		g.router.Navigate(domain.PathBilling)
		return "", g.fail(domain.ErrInsufficientCredits)
	}

	token, err := g.shell.Token()
	if err != nil {
		return "", g.fail(err)
	}

	g.mu.Lock()
	if g.generating {
		g.mu.Unlock()
		return "", domain.ErrGenerationInFlight
	}
	g.generating = true
	g.prompt = normalized
	g.notice = Notice{}
	g.mu.Unlock()

	ticket := g.seq.Begin()
	url, genErr := g.gateway.Generate(ctx, token, normalized)

	g.mu.Lock()
	g.generating = false
	if !g.seq.Accept(ticket) {
		g.mu.Unlock()
		return "", domain.ErrStaleResponse
	}
	if genErr != nil {
		g.notice = ErrorNotice(genErr)
		g.mu.Unlock()
		return "", g.shell.HandleError(ctx, genErr)
	}
	g.imageURL = url
	g.lastPrompt = normalized
	g.saved = false
	g.mu.Unlock()

	if _, err := g.shell.RefreshCredits(ctx); err != nil && !isStale(err) {
		g.setNotice(ErrorNotice(err))
	}

	return url, nil
}

// Regenerate reruns the last successful prompt, or the current one.
func (g *GenerateScreen) Regenerate(ctx context.Context) (string, error) {
	g.mu.Lock()
	prompt := g.lastPrompt
	if prompt == "" {
		prompt = g.prompt
	}
	g.mu.Unlock()

	return g.Generate(ctx, prompt)
}

// Save stores the current image in the library with the default format.
func (g *GenerateScreen) Save(ctx context.Context) error {
	g.mu.Lock()
	url, prompt := g.imageURL, g.lastPrompt
	g.mu.Unlock()

	user, err := g.shell.User()
	if err != nil {
		return g.fail(err)
	}
	token, err := g.shell.Token()
	if err != nil {
		return g.fail(err)
	}

	req := domain.NewSaveRequest(user.ID, prompt, url)
	if err := req.Validate(); err != nil {
		return g.fail(err)
	}

	if err := g.gateway.SaveToLibrary(ctx, token, req); err != nil {
		g.setNotice(ErrorNotice(err))
		return g.shell.HandleError(ctx, err)
	}

	g.mu.Lock()
	if g.imageURL == url {
		g.saved = true
	}
	g.notice = SuccessNotice("Saved to library")
	g.mu.Unlock()
	return nil
}

// Download writes the current image to w.
func (g *GenerateScreen) Download(ctx context.Context, w io.Writer) (int64, error) {
	g.mu.Lock()
	url := g.imageURL
	g.mu.Unlock()

	if url == "" {
		return 0, g.fail(domain.ErrNoImage)
	}

	written, err := g.gateway.Download(ctx, url, w)
	if err != nil {
		return written, g.fail(err)
	}
	return written, nil
}

func (g *GenerateScreen) View() GenerateView {
	snapshot := g.shell.Snapshot()

	g.mu.Lock()
	defer g.mu.Unlock()

	return GenerateView{
		Prompt:     g.prompt,
		LastPrompt: g.lastPrompt,
		ImageURL:   g.imageURL,
		Generating: g.generating,
		Saved:      g.saved,
		Credits:    snapshot.Credits,
		Notice:     g.notice,
	}
}

func (g *GenerateScreen) fail(err error) error {
	g.setNotice(ErrorNotice(err))
	return err
}

func (g *GenerateScreen) setNotice(notice Notice) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.notice = notice
}
