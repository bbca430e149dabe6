package application

import (
	"time"

	"github.com/bnema/clipgen-cli/internal/domain"
)

type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

// Snapshot is a read-only copy of the shell's state.
type Snapshot struct {
	State            SessionState
	User             *domain.User
	Credits          domain.Credits
	CreditsUpdatedAt time.Time
	Theme            domain.Theme
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

type GenerateView struct {
	Prompt     string
	LastPrompt string
	ImageURL   string
	Generating bool
	Saved      bool
	Credits    domain.Credits
	Notice     Notice
}

type LibraryView struct {
	Items    []domain.LibraryItem
	Selected *domain.LibraryItem
	Loaded   bool
	Notice   Notice
}

type BillingView struct {
	Tiers      []domain.Tier
	History    []domain.Purchase
	Credits    domain.Credits
	Purchasing bool
	Notice     Notice
}

type SettingsView struct {
	Email  string
	Notice Notice
}

type DashboardView struct {
	Welcome   string
	Credits   domain.Credits
	Recent    []domain.LibraryItem
	Plan      string
	Shortcuts []NavEntry
	Loaded    bool
	Notice    Notice
}
