package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width int

	// Backing file details
	Path    string
	SavedAt time.Time // zero when the file does not exist yet
	Size    int64
	Dirty   bool

	RightHint string

	Fg      string
	Bg      string
	DirtyFg string
}

// RenderStatusBar renders the persistence status line: backing file path
// and last-saved details on the left, key hints on the right.
func RenderStatusBar(props StatusBarProps) string {
	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.Fg)).
		Background(lipgloss.Color(props.Bg))
	dirtyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.DirtyFg)).
		Background(lipgloss.Color(props.Bg)).
		Bold(true)

	left := " " + props.Path
	if props.SavedAt.IsZero() {
		left += "  ∙  not saved yet"
	} else {
		left += "  ∙  saved " + props.SavedAt.Format("15:04:05") + " (" + formatSize(props.Size) + ")"
	}

	dirty := ""
	if props.Dirty {
		dirty = "  ● unsaved changes"
	}

	right := props.RightHint + " "

	gap := props.Width - lipgloss.Width(left) - lipgloss.Width(dirty) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return barStyle.Render(left) +
		dirtyStyle.Render(dirty) +
		barStyle.Render(strings.Repeat(" ", gap)) +
		barStyle.Render(right)
}

// formatSize renders a byte count in short human form
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
