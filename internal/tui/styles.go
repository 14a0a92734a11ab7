package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/config"
)

// Styles holds the lipgloss styles derived from the configured color
// scheme. Built once in InitialModel and shared by every view.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Subtle   lipgloss.Style

	// Dialog boxes
	FormBox    lipgloss.Style
	DeleteBox  lipgloss.Style
	HelpBox    lipgloss.Style
	DetailBox  lipgloss.Style
	LoginBox   lipgloss.Style
	ErrorText  lipgloss.Style
	DirtyMark  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpAction lipgloss.Style

	// Toast banners
	InfoToast    lipgloss.Style
	WarningToast lipgloss.Style
	ErrorToast   lipgloss.Style
}

// NewStyles builds the style set for a color scheme
func NewStyles(scheme config.ColorScheme) Styles {
	accent := lipgloss.Color(scheme.Accent)
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)
	title := lipgloss.Color(scheme.Title)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(title),
		Subtitle: lipgloss.NewStyle().Foreground(subtle),
		Normal:   lipgloss.NewStyle().Foreground(normal),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),

		FormBox:   dialog.BorderForeground(accent),
		DeleteBox: dialog.BorderForeground(lipgloss.Color(scheme.Delete)),
		HelpBox:   dialog.BorderForeground(accent),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.TableBorder)).
			Padding(0, 1),
		LoginBox: dialog.BorderForeground(accent),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Bold(true),
		DirtyMark: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.WarningFg)).
			Bold(true),
		HelpKey:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		HelpAction: lipgloss.NewStyle().Foreground(normal),

		InfoToast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)).
			Background(lipgloss.Color(scheme.InfoBg)).
			Padding(0, 1),
		WarningToast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.WarningFg)).
			Background(lipgloss.Color(scheme.WarningBg)).
			Padding(0, 1),
		ErrorToast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Background(lipgloss.Color(scheme.ErrorBg)).
			Padding(0, 1),
	}
}

// toastStyle returns the banner style for a notification level
func (s Styles) toastStyle(level NotificationLevel) lipgloss.Style {
	switch level {
	case LevelWarning:
		return s.WarningToast
	case LevelError:
		return s.ErrorToast
	default:
		return s.InfoToast
	}
}

// toastIcon returns the banner icon for a notification level
func toastIcon(level NotificationLevel) string {
	switch level {
	case LevelWarning:
		return "⚠"
	case LevelError:
		return "✕"
	default:
		return "🔔"
	}
}
