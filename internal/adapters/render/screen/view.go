package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	brandName  = "ClipGen Studio"
	promptCols = 42
)

// Frame is the Layout around a routed screen: top bar and side navigation.
type Frame struct {
	Snapshot application.Snapshot
	Nav      []application.NavEntry
	Current  domain.Screen
}

type RenderOptions struct {
	Now time.Time
	// Frame wraps the page in the Layout. Nil renders the page alone.
	Frame *Frame
}

// Page is one renderable screen.
type Page interface {
	body(s Styles, now time.Time) string
}

type GeneratePage struct{ View application.GenerateView }

type LibraryPage struct{ View application.LibraryView }

type BillingPage struct{ View application.BillingView }

type SettingsPage struct{ View application.SettingsView }

type DashboardPage struct{ View application.DashboardView }

// AuthView is the state of the login/signup form.
type AuthView struct {
	Signup bool
	Name   string
	Email  string
	Notice application.Notice
}

type AuthPage struct{ View AuthView }

// TiersPage lists the credit packs; it needs no session.
type TiersPage struct{ Tiers []domain.Tier }

// AccountPage is the short summary printed by whoami and credits.
type AccountPage struct{ Snapshot application.Snapshot }

func (p GeneratePage) body(s Styles, _ time.Time) string { return renderGenerate(p.View, s) }
func (p LibraryPage) body(s Styles, now time.Time) string { return renderLibrary(p.View, now, s) }
func (p BillingPage) body(s Styles, now time.Time) string { return renderBilling(p.View, now, s) }
func (p SettingsPage) body(s Styles, _ time.Time) string { return renderSettings(p.View, s) }
func (p DashboardPage) body(s Styles, now time.Time) string {
	return renderDashboard(p.View, now, s)
}
func (p AuthPage) body(s Styles, _ time.Time) string { return renderAuth(p.View, s) }
func (p TiersPage) body(s Styles, _ time.Time) string { return renderTiers(p.Tiers, s) }
func (p AccountPage) body(s Styles, now time.Time) string { return renderAccount(p.Snapshot, now, s) }

// Body renders page without the Layout.
func Body(s Styles, page Page, now time.Time) string {
	return page.body(s, now)
}

func renderPage(page Page, opts RenderOptions, s Styles) string {
	content := page.body(s, opts.Now)
	if opts.Frame == nil {
		return content
	}
	return RenderLayout(s, *opts.Frame, content)
}

// RenderLayout frames content with the top bar and, once logged in, the side
// navigation. Logged out, only the content is shown.
func RenderLayout(s Styles, frame Frame, content string) string {
	if !frame.Snapshot.Authenticated() {
		return lipgloss.JoinVertical(lipgloss.Left, s.Topbar.Render(s.Brand.Render(brandName)), s.Content.Render(content))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.Topbar.Render(renderTopbar(frame.Snapshot, s)),
		lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(frame, s), s.Content.Render(content)),
	)
}

func renderTopbar(snapshot application.Snapshot, s Styles) string {
	parts := []string{
		s.Brand.Render(brandName),
		s.Credits.Render(snapshot.Credits.String()),
	}
	if snapshot.User != nil {
		parts = append(parts, s.Value.Render(snapshot.User.DisplayName()))
	}
	parts = append(parts, s.Muted.Render(themeLabel(snapshot.Theme)))

	return strings.Join(parts, s.Muted.Render("  ·  "))
}

func renderSidebar(frame Frame, s Styles) string {
	lines := make([]string, 0, len(frame.Nav))
	for _, entry := range frame.Nav {
		if entry.Screen == frame.Current {
			lines = append(lines, s.NavActive.Render("› "+entry.Label))
			continue
		}
		lines = append(lines, s.NavItem.Render("  "+entry.Label))
	}
	return s.Sidebar.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func themeLabel(theme domain.Theme) string {
	if theme.IsDark() {
		return "dark"
	}
	return "light"
}

// RenderNotice renders an inline notice, or nothing for an empty one.
func RenderNotice(s Styles, notice application.Notice) string {
	if notice.Empty() {
		return ""
	}
	switch notice.Level {
	case application.NoticeError:
		return s.Error.Render("✗ " + notice.Text)
	case application.NoticeSuccess:
		return s.Success.Render("✓ " + notice.Text)
	case application.NoticeWarning:
		return s.Danger.Render("! " + notice.Text)
	default:
		return s.Info.Render("• " + notice.Text)
	}
}

func withNotice(s Styles, lines []string, notice application.Notice) string {
	if rendered := RenderNotice(s, notice); rendered != "" {
		lines = append(lines, "", rendered)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGenerate(v application.GenerateView, s Styles) string {
	lines := []string{
		s.Title.Render("Generate clipart"),
		s.Subtitle.Render(fmt.Sprintf("Each image costs %s. You have %s.", domain.GenerationCost, v.Credits)),
		"",
		s.Label.Render("Prompt"),
		s.Value.Render(v.Prompt),
		"",
		s.Label.Render("Quick prompts"),
		renderQuickPrompts(s),
		"",
	}

	switch {
	case v.Generating:
		lines = append(lines, s.Info.Render("Generating..."))
	case v.ImageURL != "":
		image := []string{
			s.Label.Render("Image"),
			s.Value.Render(v.ImageURL),
			s.Muted.Render("Prompt: " + v.LastPrompt),
		}
		if v.Saved {
			image = append(image, s.Success.Render("Saved to library"))
		}
		lines = append(lines, s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, image...)))
	default:
		lines = append(lines, s.Muted.Render("Your clipart will appear here."))
	}

	if v.Credits.Exhausted() {
		lines = append(lines, "", s.Danger.Render("Out of credits. Buy a pack on the Billing screen."))
	}

	return withNotice(s, lines, v.Notice)
}

func renderQuickPrompts(s Styles) string {
	prompts := domain.QuickPrompts()
	items := make([]string, 0, len(prompts))
	for i, prompt := range prompts {
		items = append(items, fmt.Sprintf("%d) %s", i+1, prompt))
	}
	return s.Muted.Render(strings.Join(items, "   "))
}

func renderLibrary(v application.LibraryView, now time.Time, s Styles) string {
	lines := []string{
		s.Title.Render(domain.ScreenLibrary.Title()),
		s.Subtitle.Render(fmt.Sprintf("%d saved %s", len(v.Items), plural(len(v.Items), "image", "images"))),
		"",
	}

	if len(v.Items) == 0 {
		lines = append(lines, s.Muted.Render("No saved images yet. Generate one and save it to your library."))
		return withNotice(s, lines, v.Notice)
	}

	rows := make([][]string, 0, len(v.Items))
	for _, item := range v.Items {
		rows = append(rows, []string{
			string(item.ID),
			truncate(item.Prompt, promptCols),
			formatSize(item),
			formatDate(item.CreatedAt, now),
		})
	}
	lines = append(lines, renderTable(s, []string{"ID", "Prompt", "Size", "Created"}, rows))

	if v.Selected != nil {
		detail := []string{
			s.Label.Render("Selected " + string(v.Selected.ID)),
			s.Value.Render(v.Selected.Prompt),
			s.Muted.Render(v.Selected.URL),
		}
		lines = append(lines, "", s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, detail...)))
	}

	return withNotice(s, lines, v.Notice)
}

func renderBilling(v application.BillingView, now time.Time, s Styles) string {
	lines := []string{
		s.Title.Render(domain.ScreenBilling.Title()),
		s.Subtitle.Render("Balance: ") + s.Credits.Render(v.Credits.String()),
		"",
	}

	lines = append(lines, renderTiers(v.Tiers, s))

	if v.Purchasing {
		lines = append(lines, s.Info.Render("Processing purchase..."))
	}

	lines = append(lines, "", s.Label.Render("Purchase history"))
	if len(v.History) == 0 {
		lines = append(lines, s.Muted.Render("No purchases yet."))
		return withNotice(s, lines, v.Notice)
	}

	historyRows := make([][]string, 0, len(v.History))
	for _, purchase := range v.History {
		historyRows = append(historyRows, []string{
			formatDate(purchase.CreatedAt, now),
			purchase.TierLabel(),
			"+" + purchase.CreditsAdded.String(),
		})
	}
	lines = append(lines, renderTable(s, []string{"Date", "Pack", "Added"}, historyRows))

	return withNotice(s, lines, v.Notice)
}

func renderTiers(tiers []domain.Tier, s Styles) string {
	rows := make([][]string, 0, len(tiers))
	for _, tier := range tiers {
		rows = append(rows, []string{string(tier.ID), tier.Name, tier.Credits.String(), tier.Price})
	}
	return renderTable(s, []string{"ID", "Pack", "Credits", "Price"}, rows)
}

func renderSettings(v application.SettingsView, s Styles) string {
	lines := []string{
		s.Title.Render(domain.ScreenSettings.Title()),
		"",
		s.Label.Render("Email"),
		s.Value.Render(orDash(v.Email)),
		"",
		s.Label.Render("Password"),
		s.Value.Render("••••••••"),
		"",
		s.Danger.Render("Danger zone"),
		s.Muted.Render("Deleting your account removes your library and credits for good."),
	}
	return withNotice(s, lines, v.Notice)
}

func renderDashboard(v application.DashboardView, now time.Time, s Styles) string {
	stats := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, s.Label.Render("Credits"), s.Credits.Render(v.Credits.Compact()))),
		" ",
		s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, s.Label.Render("Creations"), s.Value.Render(fmt.Sprint(len(v.Recent))))),
		" ",
		s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, s.Label.Render("Plan"), s.Value.Render(v.Plan))),
	)

	shortcuts := make([]string, 0, len(v.Shortcuts))
	for _, entry := range v.Shortcuts {
		shortcuts = append(shortcuts, s.Button.Render("["+entry.Label+"]"))
	}

	lines := []string{
		s.Title.Render(v.Welcome),
		"",
		stats,
		"",
		strings.Join(shortcuts, " "),
		"",
		s.Label.Render("Recent creations"),
	}

	if len(v.Recent) == 0 {
		lines = append(lines, s.Muted.Render("Nothing yet. Your saved clipart shows up here."))
		return withNotice(s, lines, v.Notice)
	}
	for _, item := range v.Recent {
		lines = append(lines, fmt.Sprintf("%s  %s", s.Muted.Render(formatDate(item.CreatedAt, now)), s.Value.Render(truncate(item.Prompt, promptCols))))
	}
	return withNotice(s, lines, v.Notice)
}

func renderAuth(v AuthView, s Styles) string {
	title, subtitle := "Welcome back", "Log in to keep creating."
	if v.Signup {
		title, subtitle = "Create your account", "Sign up and start generating clipart."
	}

	lines := []string{s.Title.Render(title), s.Subtitle.Render(subtitle), ""}
	if v.Signup {
		lines = append(lines, s.Label.Render("Name"), s.Value.Render(orDash(v.Name)), "")
	}
	lines = append(lines, s.Label.Render("Email"), s.Value.Render(orDash(v.Email)))

	return withNotice(s, lines, v.Notice)
}

func renderAccount(snapshot application.Snapshot, now time.Time, s Styles) string {
	if !snapshot.Authenticated() {
		return s.Muted.Render("Not logged in. Run `clipgen login` to start.")
	}

	lines := []string{
		s.Label.Render("User    ") + s.Value.Render(snapshot.User.DisplayName()),
		s.Label.Render("Email   ") + s.Value.Render(snapshot.User.Email),
		s.Label.Render("Credits ") + s.Credits.Render(snapshot.Credits.String()),
	}
	if !snapshot.CreditsUpdatedAt.IsZero() {
		lines = append(lines, s.Muted.Render("updated "+formatDate(snapshot.CreditsUpdatedAt, now)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(s Styles, headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func formatDate(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if !now.IsZero() {
		yearA, monthA, dayA := now.Date()
		yearB, monthB, dayB := t.Date()
		if yearA == yearB && monthA == monthB && dayA == dayB {
			return "today " + t.Format("15:04")
		}
	}
	return t.Format("02 Jan 2006")
}

func formatSize(item domain.LibraryItem) string {
	if item.Width == 0 || item.Height == 0 {
		return "-"
	}
	format := strings.ToUpper(item.Format)
	if format == "" {
		format = "?"
	}
	return fmt.Sprintf("%dx%d %s", item.Width, item.Height, format)
}

func truncate(text string, width int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= width {
		return string(runes)
	}
	return string(runes[:width-1]) + "…"
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
