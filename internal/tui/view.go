package tui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/tui/components"
)

// View renders the current state of the application.
// Required by the tea.Model interface.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.mode {
	case LoginMode:
		view.Content = m.viewLogin()
	case ConfigErrorMode:
		view.Content = m.viewConfigError()
	case ProjectDeleteConfirmMode:
		view.Content = m.viewProjectDeleteConfirm()
	case TaskDeleteConfirmMode:
		view.Content = m.viewTaskDeleteConfirm()
	case BackupPullConfirmMode:
		view.Content = m.viewBackupPullConfirm()
	case ProjectFormMode, TaskFormMode, HelpMode:
		view.Content = m.viewWithOverlay()
	default:
		view.Content = m.viewBase()
	}

	return view
}

// viewWithOverlay floats the active modal above the page it was opened
// from using a layer canvas
func (m Model) viewWithOverlay() string {
	base := m.viewBase()

	var modal string
	switch m.mode {
	case HelpMode:
		modal = m.viewHelpBox()
	default:
		modal = m.viewFormBox()
	}

	x := max(0, (m.width-lipgloss.Width(modal))/2)
	y := max(0, (m.height-lipgloss.Height(modal))/2)

	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(base),
		lipgloss.NewLayer(modal).X(x).Y(y),
	)
	return canvas.Render()
}

// viewBase renders the page beneath any overlay
func (m Model) viewBase() string {
	mode := m.mode
	if mode == HelpMode {
		mode = m.returnMode
	}

	switch mode {
	case TaskMode, TaskFormMode, TaskDeleteConfirmMode:
		return m.viewTaskPage()
	case BackupMode, BackupPullConfirmMode:
		return m.viewBackupPage()
	default:
		return m.viewDashboard()
	}
}

// renderPage pins the status bar to the bottom of the screen with any
// toast banners directly above it
func (m Model) renderPage(content string) string {
	statusBar := m.renderStatusBar()
	toasts := m.renderToasts()

	bodyHeight := m.height - lipgloss.Height(statusBar)
	if toasts != "" {
		bodyHeight -= lipgloss.Height(toasts)
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(max(bodyHeight, 1)).
		Render(content)

	if toasts != "" {
		return lipgloss.JoinVertical(lipgloss.Left, body, toasts, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// renderStatusBar builds the persistence status line from the store
func (m Model) renderStatusBar() string {
	records := m.app.Records()
	scheme := m.app.Config.ColorScheme

	props := components.StatusBarProps{
		Width:     m.width,
		Path:      records.Path(),
		Dirty:     records.HasUnsavedChanges(),
		RightHint: "? help  ∙  q quit",
		Fg:        scheme.StatusBarText,
		Bg:        scheme.StatusBarBg,
		DirtyFg:   scheme.WarningFg,
	}

	if info, err := os.Stat(records.Path()); err == nil {
		props.SavedAt = info.ModTime()
		props.Size = info.Size()
	}

	return components.RenderStatusBar(props)
}

// renderToasts renders pending notifications as banner lines
func (m Model) renderToasts() string {
	if !m.notifications.HasAny() {
		return ""
	}

	all := m.notifications.All()
	lines := make([]string, 0, len(all))
	for _, n := range all {
		lines = append(lines, m.styles.toastStyle(n.Level).Render(toastIcon(n.Level)+" "+n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
