package domain

import "strings"

type Screen string

const (
	ScreenGenerate  Screen = "generate"
	ScreenLibrary   Screen = "library"
	ScreenBilling   Screen = "billing"
	ScreenSettings  Screen = "settings"
	ScreenDashboard Screen = "dashboard"
)

const (
	PathGenerate  = "/"
	PathLibrary   = "/library"
	PathBilling   = "/billing"
	PathSettings  = "/settings"
	PathDashboard = "/dashboard"
)

// ResolveScreen maps a path to its screen. Unknown paths land on the
// dashboard.
func ResolveScreen(path string) Screen {
	switch NormalizePath(path) {
	case PathGenerate:
		return ScreenGenerate
	case PathLibrary:
		return ScreenLibrary
	case PathBilling:
		return ScreenBilling
	case PathSettings:
		return ScreenSettings
	default:
		return ScreenDashboard
	}
}

func NormalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return PathGenerate
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	if len(trimmed) > 1 {
		trimmed = strings.TrimRight(trimmed, "/")
		if trimmed == "" {
			trimmed = "/"
		}
	}
	return trimmed
}

func (s Screen) Title() string {
	switch s {
	case ScreenGenerate:
		return "Generate"
	case ScreenLibrary:
		return "My Library"
	case ScreenBilling:
		return "Billing"
	case ScreenSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}
