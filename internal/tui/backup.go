package tui

import (
	"context"
	"fmt"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/tui/components"
)

// updateBackupPage handles keys on the snapshot table
func (m Model) updateBackupPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notifications.Clear()

	key := msg.String()
	km := m.app.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		m.saveIfDirty()
		return m, tea.Quit

	case km.Back:
		m.mode = DashboardMode
		return m, nil

	case km.ShowHelp:
		m.returnMode = m.mode
		m.mode = HelpMode
		return m, nil

	case km.NextRow, "down":
		if m.selectedSnapshot < len(m.snapshots)-1 {
			m.selectedSnapshot++
		}
		return m, nil

	case km.PrevRow, "up":
		if m.selectedSnapshot > 0 {
			m.selectedSnapshot--
		}
		return m, nil

	case "p":
		return m.pushSnapshot()

	case "r":
		m.reloadSnapshots()
		return m, nil

	case "enter":
		if _, ok := m.currentSnapshot(); ok {
			m.mode = BackupPullConfirmMode
		}
		return m, nil

	case km.SaveData:
		return m.saveNow()
	}

	return m, nil
}

// pushSnapshot uploads the current store state as a new snapshot
func (m Model) pushSnapshot() (tea.Model, tea.Cmd) {
	info, err := m.app.BackupService.Push(context.Background())
	if err != nil {
		log.Printf("Error pushing snapshot: %v", err)
		m.notifications.Add(LevelError, "Could not upload snapshot: "+err.Error())
		return m, nil
	}

	m.notifications.Add(LevelInfo, "Snapshot uploaded: "+info.Name)
	m.reloadSnapshots()
	return m, nil
}

// updateBackupPullConfirm waits for an explicit yes or no before the
// store is replaced with a snapshot
func (m Model) updateBackupPullConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		snapshot, ok := m.currentSnapshot()
		if ok {
			err := m.app.BackupService.Pull(context.Background(), snapshot.ID)
			if err != nil {
				if err == backup.ErrFileNotFound {
					m.notifications.Add(LevelWarning, "Snapshot no longer exists")
					m.reloadSnapshots()
				} else {
					log.Printf("Error restoring snapshot: %v", err)
					m.notifications.Add(LevelError, "Could not restore snapshot: "+err.Error())
				}
			} else {
				m.reloadProjects()
				m.selectedRow = 0
			}
		}
		m.mode = BackupMode
		return m, nil

	case "n", "N", "esc":
		m.mode = BackupMode
		return m, nil
	}

	return m, nil
}

// viewBackupPage renders the snapshot table
func (m Model) viewBackupPage() string {
	scheme := m.app.Config.ColorScheme

	header := m.styles.Title.Render("Backups") +
		m.styles.Subtle.Render("  ∙  "+m.app.Config.Preferences.BackupFolder)

	idWidth := max(12, m.width-60)

	rows := make([][]string, len(m.snapshots))
	for i, snapshot := range m.snapshots {
		rows[i] = []string{
			snapshot.Name,
			snapshot.ModifiedTime.Format("2006-01-02 15:04:05"),
			snapshot.ID,
		}
	}

	visibleRows := m.height - 8
	scrollOffset := tableScrollOffset(m.selectedSnapshot, len(rows), visibleRows)

	table := components.RenderTable(components.TableProps{
		Columns: []components.TableColumn{
			{Title: "Name", Width: 28},
			{Title: "Modified", Width: 19},
			{Title: "ID", Width: idWidth},
		},
		Rows:         rows,
		Selected:     m.selectedSnapshot,
		ScrollOffset: scrollOffset,
		VisibleRows:  visibleRows,
		EmptyMessage: "No snapshots yet. Press 'p' to push one.",
		HeaderColor:  scheme.TableHeader,
		BorderColor:  scheme.TableBorder,
		NormalColor:  scheme.Normal,
		SelectedFg:   scheme.SelectedFg,
		SelectedBg:   scheme.SelectedBg,
		SubtleColor:  scheme.Subtle,
	})

	hint := m.styles.Subtle.Render("  p push  ∙  enter restore  ∙  r refresh  ∙  esc back")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", table, hint)
	return m.renderPage(content)
}

func (m Model) viewBackupPullConfirm() string {
	snapshot, ok := m.currentSnapshot()
	if !ok {
		return m.viewBackupPage()
	}

	body := fmt.Sprintf("Restore snapshot '%s'?\nThis replaces ALL current data and saves the result.\n\n[y]es  [n]o",
		snapshot.Name)

	box := m.styles.DeleteBox.Width(58).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
