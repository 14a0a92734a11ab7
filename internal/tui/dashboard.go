package tui

import (
	"context"
	"log"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/tui/components"
)

// updateDashboard handles keys on the projects table
func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notifications.Clear()

	key := msg.String()
	km := m.app.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		m.saveIfDirty()
		return m, tea.Quit

	case km.ShowHelp:
		m.returnMode = m.mode
		m.mode = HelpMode
		return m, nil

	case km.NextRow, "down":
		if m.selectedRow < len(m.projects)-1 {
			m.selectedRow++
		}
		return m, nil

	case km.PrevRow, "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case km.CreateProject:
		return m.openProjectCreateForm()

	case km.EditProject:
		return m.openProjectEditForm()

	case km.DeleteProject:
		if m.currentProject() != nil {
			m.mode = ProjectDeleteConfirmMode
		}
		return m, nil

	case km.OpenProject:
		project := m.currentProject()
		if project == nil {
			return m, nil
		}
		m.openProjectID = project.ID
		m.selectedTask = 0
		m.showNotes = false
		m.reloadTasks()
		m.mode = TaskMode
		return m, nil

	case km.BackupPage:
		m.selectedSnapshot = 0
		m.reloadSnapshots()
		m.mode = BackupMode
		return m, nil

	case km.SaveData:
		return m.saveNow()

	case "L":
		return m.logout()
	}

	return m, nil
}

// saveNow writes the backing file immediately
func (m Model) saveNow() (tea.Model, tea.Cmd) {
	if err := m.app.Records().Save(context.Background()); err != nil {
		log.Printf("Error saving data: %v", err)
		m.notifications.Add(LevelError, "Save failed: "+err.Error())
		return m, nil
	}
	m.notifications.Add(LevelInfo, "Data saved")
	return m, nil
}

// logout saves dirty data and returns to the password gate
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.saveIfDirty()
	m.resetSession()
	m.mode = LoginMode
	return m, m.passwordInput.Focus()
}

// viewDashboard renders the projects table with the detail pane for the
// selected row
func (m Model) viewDashboard() string {
	header := m.styles.Title.Render("Rumbo") + m.styles.Subtle.Render("  ∙  Projects")

	scheme := m.app.Config.ColorScheme

	descWidth := m.app.Config.Preferences.DescriptionWidth
	if maxDesc := m.width - 50; maxDesc < descWidth {
		descWidth = max(10, maxDesc)
	}

	rows := make([][]string, len(m.projects))
	for i, project := range m.projects {
		rows[i] = []string{
			project.ID,
			project.Name,
			project.Description,
			project.CreatedDate,
			strconv.Itoa(len(project.Tasks)),
			strconv.Itoa(project.Progress()) + "%",
		}
	}

	detail := m.viewProjectDetail()

	visibleRows := m.height - lipgloss.Height(detail) - 8
	scrollOffset := tableScrollOffset(m.selectedRow, len(rows), visibleRows)

	table := components.RenderTable(components.TableProps{
		Columns: []components.TableColumn{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 22},
			{Title: "Description", Width: descWidth},
			{Title: "Created", Width: 10},
			{Title: "Tasks", Width: 5},
			{Title: "Done", Width: 5},
		},
		Rows:         rows,
		Selected:     m.selectedRow,
		ScrollOffset: scrollOffset,
		VisibleRows:  visibleRows,
		EmptyMessage: "No projects yet. Press '" + m.app.Config.KeyMappings.CreateProject + "' to create one.",
		HeaderColor:  scheme.TableHeader,
		BorderColor:  scheme.TableBorder,
		NormalColor:  scheme.Normal,
		SelectedFg:   scheme.SelectedFg,
		SelectedBg:   scheme.SelectedBg,
		SubtleColor:  scheme.Subtle,
	})

	hint := m.styles.Subtle.Render("  n new  ∙  e edit  ∙  d delete  ∙  enter open  ∙  b backups  ∙  L log out")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", table, detail, hint)
	return m.renderPage(content)
}

// viewProjectDetail renders description, notes, and a task summary for
// the selected project
func (m Model) viewProjectDetail() string {
	project := m.currentProject()
	if project == nil {
		return ""
	}

	scheme := m.app.Config.ColorScheme
	width := max(40, m.width-6)

	parts := []string{
		m.styles.Subtitle.Render("Description"),
	}
	if project.Description != "" {
		parts = append(parts, m.styles.Normal.Render(project.Description))
	} else {
		parts = append(parts, m.styles.Subtle.Italic(true).Render("No description"))
	}

	parts = append(parts, "", m.styles.Subtitle.Render("Notes"))
	parts = append(parts, components.RenderMarkdown(components.MarkdownProps{
		Content:     project.Notes,
		Width:       width - 4,
		Empty:       "No notes",
		SubtleColor: scheme.Subtle,
	}))

	if len(project.Tasks) > 0 {
		parts = append(parts, "", m.styles.Subtitle.Render("Tasks"))
		const maxPreview = 4
		for i, task := range project.Tasks {
			if i == maxPreview {
				parts = append(parts, m.styles.Subtle.Render(
					"  … and "+strconv.Itoa(len(project.Tasks)-maxPreview)+" more"))
				break
			}
			line := "  " + strconv.Itoa(i+1) + ". " + task.Name + "  [" + task.Status.String() + "]"
			if task.DueDate != "" {
				line += "  due " + task.DueDate
			}
			parts = append(parts, m.styles.Normal.Render(components.Truncate(line, width-4)))
		}
	}

	return m.styles.DetailBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// tableScrollOffset keeps the selected row inside the visible window
func tableScrollOffset(selected, total, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if total <= visible {
		return 0
	}
	offset := selected - visible + 1
	if offset < 0 {
		return 0
	}
	return min(offset, total-visible)
}
