package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDDecodesNumbersAndStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want UserID
	}{
		{name: "number", raw: `{"id":1,"name":"Ann","email":"a@b.com"}`, want: "1"},
		{name: "string", raw: `{"id":"64f0c2","name":"Ann","email":"a@b.com"}`, want: "64f0c2"},
		{name: "null", raw: `{"id":null,"name":"Ann","email":"a@b.com"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user User
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &user))
			assert.Equal(t, tt.want, user.ID)
			assert.Equal(t, "a@b.com", user.Email)
		})
	}
}

func TestUserIDEncodesAsString(t *testing.T) {
	payload, err := json.Marshal(User{ID: "1", Name: "Ann", Email: "a@b.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Ann","email":"a@b.com"}`, string(payload))
}

func TestSessionValidity(t *testing.T) {
	user := &User{ID: "1"}

	assert.True(t, Session{}.Valid())
	assert.True(t, Session{Token: "t1", User: user}.Valid())
	assert.False(t, Session{Token: "t1"}.Valid())
	assert.False(t, Session{User: user}.Valid())
	assert.True(t, Session{Token: "t1", User: user}.Authenticated())
	assert.False(t, Session{Token: "  ", User: user}.Authenticated())
}

func TestResolveScreen(t *testing.T) {
	tests := []struct {
		path string
		want Screen
	}{
		{path: "/", want: ScreenGenerate},
		{path: "", want: ScreenGenerate},
		{path: "/library", want: ScreenLibrary},
		{path: "/library/", want: ScreenLibrary},
		{path: "library", want: ScreenLibrary},
		{path: "/billing", want: ScreenBilling},
		{path: " /settings ", want: ScreenSettings},
		{path: "/dashboard", want: ScreenDashboard},
		{path: "/nope", want: ScreenDashboard},
		{path: "/library/42", want: ScreenDashboard},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("path %q", tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveScreen(tt.path))
		})
	}
}

func TestThemeParseAndToggle(t *testing.T) {
	theme, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
	assert.Equal(t, ThemeLight, theme.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	_, err = ParseTheme("sepia")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestLookupTier(t *testing.T) {
	tier, err := LookupTier("Creator")
	require.NoError(t, err)
	assert.Equal(t, Tier{ID: TierCreator, Name: "Creator", Credits: 150, Price: "€10"}, tier)

	_, err = LookupTier("enterprise")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestTiersReturnsCopy(t *testing.T) {
	tiers := Tiers()
	tiers[0].Credits = 1

	assert.Equal(t, Credits(50), Tiers()[0].Credits)
}

func TestWithoutItemRemovesOnlyMatchingID(t *testing.T) {
	items := []LibraryItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := WithoutItem(items, "b")

	if diff := cmp.Diff([]LibraryItem{{ID: "a"}, {ID: "c"}}, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	assert.Len(t, items, 3)
}

func TestRecentItems(t *testing.T) {
	items := make([]LibraryItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, LibraryItem{ID: LibraryItemID(fmt.Sprint(i))})
	}

	assert.Len(t, RecentItems(items, RecentCreationsLimit), 6)
	assert.Equal(t, LibraryItemID("0"), RecentItems(items, RecentCreationsLimit)[0].ID)
	assert.Len(t, RecentItems(items[:2], RecentCreationsLimit), 2)
}

func TestNewSaveRequestDefaults(t *testing.T) {
	req := NewSaveRequest("1", "kawaii robot", "https://cdn/x.jpg")

	assert.Equal(t, "jpg", req.Format)
	assert.Equal(t, 768, req.Width)
	assert.Equal(t, 768, req.Height)
	require.NoError(t, req.Validate())
	assert.ErrorIs(t, NewSaveRequest("1", "p", "").Validate(), ErrNoImage)
}

func TestCreditsClampAndFormat(t *testing.T) {
	assert.Equal(t, Credits(0), ClampCredits(-3))
	assert.True(t, ClampCredits(0).Exhausted())
	assert.False(t, Credits(1).Exhausted())
	assert.Equal(t, "1 credit", Credits(1).String())
	assert.Equal(t, "150 credits", Credits(150).String())
	assert.Equal(t, "1.5k", Credits(1_500).Compact())
}

func TestAPIErrorKindMatching(t *testing.T) {
	err := fmt.Errorf("generate: %w", &APIError{Op: "generate", Kind: ErrorKindValidation, Status: 402, Detail: "Insufficient credits"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.Equal(t, "Insufficient credits", UserMessage(err))
}

func TestUserMessageFallbacks(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Contains(t, UserMessage(&APIError{Op: "credits", Kind: ErrorKindAuth, Status: 401}), "log in again")
	assert.Contains(t, UserMessage(&APIError{Op: "credits", Kind: ErrorKindNetwork, Err: errors.New("dial")}), "Could not reach")
	assert.Contains(t, UserMessage(ErrInsufficientCredits), "out of credits")
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}

func TestPurchaseTierLabel(t *testing.T) {
	assert.Equal(t, "Creator", Purchase{Tier: TierCreator}.TierLabel())
	assert.Equal(t, "Legacy", Purchase{Tier: "legacy"}.TierLabel())
	assert.Equal(t, "Unknown", Purchase{}.TierLabel())
}

func TestQuickPrompt(t *testing.T) {
	prompt, err := QuickPrompt(3)
	require.NoError(t, err)
	assert.Equal(t, "pastel space whale", prompt)

	_, err = QuickPrompt(0)
	assert.Error(t, err)

	_, err = NormalizePrompt("   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}
