package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// updateLogin drives the password gate. The text input sees every
// message so its cursor keeps blinking.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.passwordInput.Value() == m.password {
				m.loginError = ""
				m.passwordInput.SetValue("")
				m.passwordInput.Blur()
				m.mode = DashboardMode
				m.reloadProjects()
				return m, tea.ClearScreen
			}
			m.loginError = "Incorrect password. Please try again."
			m.passwordInput.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.passwordInput, cmd = m.passwordInput.Update(msg)
	return m, cmd
}

// updateConfigError handles the page shown when no password is set.
// There is nothing to do but leave.
func (m Model) updateConfigError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc", "enter":
		return m, tea.Quit
	}
	return m, nil
}

// viewLogin renders the centered password prompt
func (m Model) viewLogin() string {
	parts := []string{
		m.styles.Title.Render("Rumbo"),
		m.styles.Subtitle.Render("Personal project tracker"),
		"",
		m.styles.Normal.Render("Enter the password to continue"),
		m.passwordInput.View(),
	}
	if m.loginError != "" {
		parts = append(parts, "", m.styles.ErrorText.Render(m.loginError))
	}
	parts = append(parts, "", m.styles.Subtle.Render("enter: log in  ∙  ctrl+c: quit"))

	box := m.styles.LoginBox.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	return m.placeWithToasts(box)
}

// viewConfigError explains the missing password and how to fix it
func (m Model) viewConfigError() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ErrorText.Render("Configuration error"),
		"",
		m.styles.Normal.Render("No login password is configured."),
		"",
		m.styles.Subtle.Render("Set RUMBO_PASSWORD in the environment or in an"),
		m.styles.Subtle.Render(".env file next to the binary, then restart."),
		"",
		m.styles.Subtle.Render("press q to quit"),
	)

	box := m.styles.DeleteBox.Width(52).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// placeWithToasts centers content on the screen, keeping any pending
// toast banners visible along the top edge
func (m Model) placeWithToasts(content string) string {
	toasts := m.renderToasts()
	if toasts == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	height := max(1, m.height-lipgloss.Height(toasts))
	return lipgloss.JoinVertical(lipgloss.Left,
		toasts,
		lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content),
	)
}
