package tui

import (
	"context"
	"log"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/models"
	"github.com/thenoetrevino/rumbo/internal/tui/components"
)

// updateTaskPage handles keys on the task table of the open project
func (m Model) updateTaskPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notifications.Clear()

	key := msg.String()
	km := m.app.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		m.saveIfDirty()
		return m, tea.Quit

	case km.Back:
		m.openProjectID = ""
		m.tasks = nil
		m.showNotes = false
		m.mode = DashboardMode
		return m, nil

	case km.ShowHelp:
		m.returnMode = m.mode
		m.mode = HelpMode
		return m, nil

	case km.NextRow, "down":
		if m.selectedTask < len(m.tasks)-1 {
			m.selectedTask++
		}
		return m, nil

	case km.PrevRow, "up":
		if m.selectedTask > 0 {
			m.selectedTask--
		}
		return m, nil

	case km.AddTask:
		return m.openTaskCreateForm()

	case km.EditTask:
		return m.openTaskEditForm()

	case km.DeleteTask:
		if _, ok := m.currentTask(); ok {
			m.mode = TaskDeleteConfirmMode
		}
		return m, nil

	case km.CycleStatus:
		return m.cycleTaskStatus()

	case "enter":
		if _, ok := m.currentTask(); ok {
			m.showNotes = !m.showNotes
		}
		return m, nil

	case km.SaveData:
		return m.saveNow()
	}

	return m, nil
}

// cycleTaskStatus advances the selected task to the next status in the
// fixed ring
func (m Model) cycleTaskStatus() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	statuses := models.Statuses()
	next := statuses[0]
	for i, s := range statuses {
		if s == task.Status {
			next = statuses[(i+1)%len(statuses)]
			break
		}
	}

	err := m.app.TaskService.SetStatus(context.Background(), m.openProjectID, m.selectedTask, next)
	if err != nil {
		log.Printf("Error cycling status: %v", err)
		m.notifications.Add(LevelError, "Could not change status: "+err.Error())
		return m, nil
	}

	m.reloadTasks()
	return m, nil
}

// viewTaskPage renders the open project's header, progress, and task
// table, plus the notes pane when toggled
func (m Model) viewTaskPage() string {
	project := m.openProject()
	if project == nil {
		return m.styles.Subtle.Render("Project no longer exists. Press esc to go back.")
	}

	scheme := m.app.Config.ColorScheme

	header := m.styles.Title.Render(project.Name) +
		m.styles.Subtle.Render("  ∙  "+project.ID)

	done := 0
	for _, task := range project.Tasks {
		if task.Status == models.StatusCompleted {
			done++
		}
	}
	progress := m.styles.Normal.Render(
		strconv.Itoa(done) + " of " + strconv.Itoa(len(project.Tasks)) +
			" tasks done (" + strconv.Itoa(project.Progress()) + "%)")

	rows := make([][]string, len(m.tasks))
	for i, task := range m.tasks {
		notesMark := ""
		if task.Notes != "" {
			notesMark = "≡"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			task.Name,
			task.Status.String(),
			task.DueDate,
			notesMark,
		}
	}

	notes := ""
	if m.showNotes {
		if task, ok := m.currentTask(); ok {
			width := max(40, m.width-6)
			notes = m.styles.DetailBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Subtitle.Render("Notes: "+task.Name),
				components.RenderMarkdown(components.MarkdownProps{
					Content:     task.Notes,
					Width:       width - 4,
					Empty:       "No notes",
					SubtleColor: scheme.Subtle,
				}),
			))
		}
	}

	visibleRows := m.height - lipgloss.Height(notes) - 9
	scrollOffset := tableScrollOffset(m.selectedTask, len(rows), visibleRows)

	table := components.RenderTable(components.TableProps{
		Columns: []components.TableColumn{
			{Title: "#", Width: 3},
			{Title: "Name", Width: 30},
			{Title: "Status", Width: 12},
			{Title: "Due", Width: 10},
			{Title: " ", Width: 2},
		},
		Rows:         rows,
		Selected:     m.selectedTask,
		ScrollOffset: scrollOffset,
		VisibleRows:  visibleRows,
		EmptyMessage: "No tasks yet. Press '" + m.app.Config.KeyMappings.AddTask + "' to add one.",
		HeaderColor:  scheme.TableHeader,
		BorderColor:  scheme.TableBorder,
		NormalColor:  scheme.Normal,
		SelectedFg:   scheme.SelectedFg,
		SelectedBg:   scheme.SelectedBg,
		SubtleColor:  scheme.Subtle,
	})

	hint := m.styles.Subtle.Render("  a add  ∙  e edit  ∙  d delete  ∙  s status  ∙  enter notes  ∙  esc back")

	parts := []string{header, progress, "", table}
	if notes != "" {
		parts = append(parts, notes)
	}
	parts = append(parts, hint)

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.renderPage(content)
}
