package application

import (
	"github.com/bnema/clipgen-cli/internal/ports"
	"go.uber.org/zap"
)

// Studio wires the shell, the router and every screen around one gateway and
// one session store.
type Studio struct {
	Shell     *Shell
	Router    *Router
	Generate  *GenerateScreen
	Library   *LibraryScreen
	Billing   *BillingScreen
	Settings  *SettingsScreen
	Dashboard *DashboardScreen
}

func NewStudio(store *SessionStore, gateway ports.Gateway, clock ports.Clock, logger *zap.Logger, initialPath string) *Studio {
	shell := NewShell(store, gateway, clock, logger)
	router := NewRouter(initialPath)

	return &Studio{
		Shell:     shell,
		Router:    router,
		Generate:  NewGenerateScreen(shell, gateway, router),
		Library:   NewLibraryScreen(shell, gateway),
		Billing:   NewBillingScreen(shell, gateway),
		Settings:  NewSettingsScreen(shell, gateway),
		Dashboard: NewDashboardScreen(shell, gateway),
	}
}
