package ports

import "github.com/bnema/clipgen-cli/internal/domain"

// ThemeApplier switches the presentation mode process-wide.
type ThemeApplier interface {
	ApplyTheme(theme domain.Theme)
}
