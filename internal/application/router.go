package application

import (
	"sync"

	"github.com/bnema/clipgen-cli/internal/domain"
)

const maxRouteHistory = 20

type NavEntry struct {
	Screen domain.Screen
	Path   string
	Label  string
}

var sideNav = []NavEntry{
	{Screen: domain.ScreenGenerate, Path: domain.PathGenerate, Label: "Generate"},
	{Screen: domain.ScreenLibrary, Path: domain.PathLibrary, Label: "My Library"},
	{Screen: domain.ScreenBilling, Path: domain.PathBilling, Label: "Billing"},
	{Screen: domain.ScreenSettings, Path: domain.PathSettings, Label: "Settings"},
}

// Router tracks the current path. It never fails: unknown paths resolve to
// the dashboard.
type Router struct {
	mu      sync.RWMutex
	path    string
	history []string
}

func NewRouter(initial string) *Router {
	return &Router{path: domain.NormalizePath(initial)}
}

func (r *Router) Resolve(path string) domain.Screen {
	return domain.ResolveScreen(path)
}

func (r *Router) Navigate(path string) domain.Screen {
	normalized := domain.NormalizePath(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if normalized != r.path {
		r.history = append(r.history, r.path)
		if len(r.history) > maxRouteHistory {
			r.history = r.history[len(r.history)-maxRouteHistory:]
		}
		r.path = normalized
	}
	return domain.ResolveScreen(normalized)
}

func (r *Router) Back() (domain.Screen, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return domain.ResolveScreen(r.path), false
	}
	r.path = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return domain.ResolveScreen(r.path), true
}

func (r *Router) Current() domain.Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.ResolveScreen(r.path)
}

func (r *Router) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.path
}

func (r *Router) Nav() []NavEntry {
	return append([]NavEntry(nil), sideNav...)
}
