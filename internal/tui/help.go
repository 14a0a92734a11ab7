package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		m.mode = m.returnMode
		return m, tea.ClearScreen
	}
	return m, nil
}

// viewHelpBox lists every binding from the active key map, grouped the
// way the pages use them
func (m Model) viewHelpBox() string {
	km := m.app.Config.KeyMappings

	type binding struct {
		key    string
		action string
	}
	type section struct {
		title    string
		bindings []binding
	}

	sections := []section{
		{"Projects", []binding{
			{km.CreateProject, "new project"},
			{km.EditProject, "edit project"},
			{km.DeleteProject, "delete project"},
			{km.OpenProject, "open tasks"},
		}},
		{"Tasks", []binding{
			{km.AddTask, "add task"},
			{km.EditTask, "edit task"},
			{km.DeleteTask, "delete task"},
			{km.CycleStatus, "cycle status"},
			{"enter", "toggle notes"},
		}},
		{"Data", []binding{
			{km.SaveData, "save now"},
			{km.BackupPage, "backups"},
			{"p", "push snapshot (backup page)"},
			{"enter", "restore snapshot (backup page)"},
		}},
		{"Session", []binding{
			{km.PrevRow + "/" + km.NextRow, "move selection"},
			{km.Back, "back"},
			{"L", "log out"},
			{km.Quit, "quit"},
		}},
	}

	parts := []string{m.styles.Title.Render("Key Bindings"), ""}
	for _, sec := range sections {
		parts = append(parts, m.styles.Subtitle.Render(sec.title))
		for _, b := range sec.bindings {
			parts = append(parts,
				m.styles.HelpKey.Render("  "+padKey(b.key))+m.styles.HelpAction.Render(b.action))
		}
		parts = append(parts, "")
	}
	parts = append(parts, m.styles.Subtle.Render("esc: close"))

	return m.styles.HelpBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// padKey aligns action text across rows
func padKey(key string) string {
	const width = 10
	for len(key) < width {
		key += " "
	}
	return key
}
