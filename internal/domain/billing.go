package domain

import (
	"fmt"
	"strings"
	"time"
)

type TierID string

const (
	TierStarter TierID = "starter"
	TierCreator TierID = "creator"
	TierPro     TierID = "pro"
)

type Tier struct {
	ID      TierID
	Name    string
	Credits Credits
	Price   string
}

var tierCatalog = []Tier{
	{ID: TierStarter, Name: "Starter", Credits: 50, Price: "€5"},
	{ID: TierCreator, Name: "Creator", Credits: 150, Price: "€10"},
	{ID: TierPro, Name: "Pro", Credits: 500, Price: "€25"},
}

// Tiers returns a copy of the purchasable credit packs in display order.
func Tiers() []Tier {
	return append([]Tier(nil), tierCatalog...)
}

func LookupTier(raw string) (Tier, error) {
	id := TierID(strings.ToLower(strings.TrimSpace(raw)))
	for _, tier := range tierCatalog {
		if tier.ID == id {
			return tier, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: %q", ErrUnknownTier, raw)
}

type Purchase struct {
	ID           string    `json:"id"`
	Tier         TierID    `json:"tier"`
	CreditsAdded Credits   `json:"credits_added"`
	CreatedAt    time.Time `json:"created_at"`
}

// TierLabel capitalises the tier id for display.
func (p Purchase) TierLabel() string {
	for _, tier := range tierCatalog {
		if tier.ID == p.Tier {
			return tier.Name
		}
	}
	raw := strings.TrimSpace(string(p.Tier))
	if raw == "" {
		return "Unknown"
	}
	return strings.ToUpper(raw[:1]) + raw[1:]
}
