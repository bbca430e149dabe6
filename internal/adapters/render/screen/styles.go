package screen

import (
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorInk     = lipgloss.AdaptiveColor{Light: "#1f2335", Dark: "#e6e6f0"}
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#6b7089", Dark: "#8a8fa8"}
	colorBrand   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c4b5fd"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f9a8d4"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#d4d4e0", Dark: "#3b3f54"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#86efac"}
	colorError   = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#fca5a5"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#93c5fd"}
)

// Styles is the shared palette for one-shot pages and the interactive shell.
// Colors adapt to the background mode set by ThemeApplier.
type Styles struct {
	Brand     lipgloss.Style
	Topbar    lipgloss.Style
	Sidebar   lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Content   lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Credits   lipgloss.Style
	Card      lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Focused   lipgloss.Style
	Button    lipgloss.Style
	Dialog    lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Border    lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(colorBrand),
		Topbar:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorBorder).Padding(0, 1),
		Sidebar:   lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(colorBorder).Padding(0, 1).MarginRight(1),
		NavItem:   lipgloss.NewStyle().Foreground(colorSubtle),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(colorBrand),
		Content:   lipgloss.NewStyle().Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorInk),
		Subtitle:  lipgloss.NewStyle().Foreground(colorSubtle),
		Body:      lipgloss.NewStyle().Foreground(colorInk),
		Muted:     lipgloss.NewStyle().Faint(true),
		Label:     lipgloss.NewStyle().Foreground(colorSubtle),
		Value:     lipgloss.NewStyle().Foreground(colorInk),
		Credits:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		Danger:    lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Success:   lipgloss.NewStyle().Foreground(colorSuccess),
		Error:     lipgloss.NewStyle().Foreground(colorError),
		Info:      lipgloss.NewStyle().Foreground(colorInfo),
		Focused:   lipgloss.NewStyle().Foreground(colorBrand),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(colorBrand).Padding(0, 1),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorAccent).Padding(1, 2),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorSubtle).Padding(0, 1),
		Cell:      lipgloss.NewStyle().Foreground(colorInk).Padding(0, 1),
		Border:    lipgloss.NewStyle().Foreground(colorBorder),
	}
}

// ThemeApplier switches lipgloss between its light and dark palettes.
type ThemeApplier struct{}

func (ThemeApplier) ApplyTheme(theme domain.Theme) {
	lipgloss.SetHasDarkBackground(theme.IsDark())
}
