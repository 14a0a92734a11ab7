package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rumbo/internal/events"
	"github.com/thenoetrevino/rumbo/internal/models"
)

// ============================================================================
// DASHBOARD
// ============================================================================

func TestDashboard_RowNavigation(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "First")
	seedProject(t, m.app, "Second")
	m.reloadProjects()

	m, _ = pressKey(t, m, "j")
	if m.selectedRow != 1 {
		t.Errorf("Expected row 1 after j, got %d", m.selectedRow)
	}

	// Edge case: j at the last row stays put
	m, _ = pressKey(t, m, "j")
	if m.selectedRow != 1 {
		t.Errorf("Expected row 1 after j at bottom, got %d", m.selectedRow)
	}

	m, _ = pressKey(t, m, "k")
	if m.selectedRow != 0 {
		t.Errorf("Expected row 0 after k, got %d", m.selectedRow)
	}

	// Edge case: k at the first row stays put
	m, _ = pressKey(t, m, "k")
	if m.selectedRow != 0 {
		t.Errorf("Expected row 0 after k at top, got %d", m.selectedRow)
	}
}

func TestDashboard_OpenProjectSwitchesToTasks(t *testing.T) {
	m := loggedInModel(t)
	projectID := seedProject(t, m.app, "Has tasks")
	seedTask(t, m.app, projectID, "Only task")
	m.reloadProjects()

	m, _ = pressSpecial(t, m, tea.KeyEnter)

	if m.mode != TaskMode {
		t.Errorf("Expected TaskMode after enter, got %v", m.mode)
	}
	if m.openProjectID != projectID {
		t.Errorf("Expected open project %q, got %q", projectID, m.openProjectID)
	}
	if len(m.tasks) != 1 {
		t.Errorf("Expected 1 task loaded, got %d", len(m.tasks))
	}
}

// Edge case: enter on an empty dashboard must not open a task page for
// a project that does not exist
func TestDashboard_OpenWithNoProjectsIsNoOp(t *testing.T) {
	m := loggedInModel(t)

	m, _ = pressSpecial(t, m, tea.KeyEnter)

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode, got %v", m.mode)
	}
	if m.openProjectID != "" {
		t.Errorf("Expected no open project, got %q", m.openProjectID)
	}
}

func TestDashboard_DeleteWithNoProjectsIsNoOp(t *testing.T) {
	m := loggedInModel(t)

	m, _ = pressKey(t, m, "d")

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode with nothing to delete, got %v", m.mode)
	}
}

func TestDashboard_SaveClearsDirtyFlag(t *testing.T) {
	m := loggedInModel(t)
	if _, err := m.app.Records().CreateProject("Unsaved", "", ""); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	m.reloadProjects()

	if !m.app.Records().HasUnsavedChanges() {
		t.Fatal("Expected unsaved changes before save")
	}

	msg := tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	newModel, _ := m.Update(msg)
	m = newModel.(Model)

	if m.app.Records().HasUnsavedChanges() {
		t.Error("Expected dirty flag cleared after explicit save")
	}
	if !m.notifications.HasAny() {
		t.Error("Expected a confirmation toast after saving")
	}
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

func TestProjectDelete_ConfirmRemovesProject(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Doomed")
	m.reloadProjects()

	m, _ = pressKey(t, m, "d")
	if m.mode != ProjectDeleteConfirmMode {
		t.Fatalf("Expected ProjectDeleteConfirmMode, got %v", m.mode)
	}

	m, _ = pressKey(t, m, "y")

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode after confirm, got %v", m.mode)
	}
	if len(m.projects) != 0 {
		t.Errorf("Expected project deleted, %d remain", len(m.projects))
	}
}

func TestProjectDelete_DeclineKeepsProject(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Survivor")
	m.reloadProjects()

	m, _ = pressKey(t, m, "d")
	m, _ = pressKey(t, m, "n")

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode after decline, got %v", m.mode)
	}
	if len(m.projects) != 1 {
		t.Errorf("Expected project kept, got %d projects", len(m.projects))
	}
}

func TestProjectDelete_EscapeCancels(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Survivor")
	m.reloadProjects()

	m, _ = pressKey(t, m, "d")
	m, _ = pressSpecial(t, m, tea.KeyEsc)

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode after esc, got %v", m.mode)
	}
	if len(m.projects) != 1 {
		t.Errorf("Expected project kept, got %d projects", len(m.projects))
	}
}

// ============================================================================
// TASK PAGE
// ============================================================================

// openTaskPage drives the model from the dashboard onto a seeded project's
// task page
func openTaskPage(t *testing.T, m Model, taskNames ...string) Model {
	t.Helper()

	projectID := seedProject(t, m.app, "Workbench")
	for _, name := range taskNames {
		seedTask(t, m.app, projectID, name)
	}
	m.reloadProjects()

	m, _ = pressSpecial(t, m, tea.KeyEnter)
	if m.mode != TaskMode {
		t.Fatalf("Expected TaskMode after opening project, got %v", m.mode)
	}
	return m
}

func TestTaskPage_BackReturnsToDashboard(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "One")

	m, _ = pressSpecial(t, m, tea.KeyEsc)

	if m.mode != DashboardMode {
		t.Errorf("Expected DashboardMode after esc, got %v", m.mode)
	}
	if m.openProjectID != "" {
		t.Errorf("Expected open project cleared, got %q", m.openProjectID)
	}
}

func TestTaskPage_CycleStatusAdvances(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "Cycle me")

	m, _ = pressKey(t, m, "s")

	if len(m.tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(m.tasks))
	}
	if m.tasks[0].Status != models.StatusInProgress {
		t.Errorf("Expected status %q after one cycle, got %q", models.StatusInProgress, m.tasks[0].Status)
	}
}

// Edge case: cycling past the last status wraps back to the first
func TestTaskPage_CycleStatusWraps(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "Wrap me")

	for range models.Statuses() {
		m, _ = pressKey(t, m, "s")
	}

	if m.tasks[0].Status != models.DefaultStatus {
		t.Errorf("Expected status back at %q after a full cycle, got %q", models.DefaultStatus, m.tasks[0].Status)
	}
}

func TestTaskPage_DeleteConfirmRemovesTask(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "First", "Second")

	m, _ = pressKey(t, m, "j")
	m, _ = pressKey(t, m, "d")
	if m.mode != TaskDeleteConfirmMode {
		t.Fatalf("Expected TaskDeleteConfirmMode, got %v", m.mode)
	}

	m, _ = pressKey(t, m, "y")

	if m.mode != TaskMode {
		t.Errorf("Expected TaskMode after confirm, got %v", m.mode)
	}
	if len(m.tasks) != 1 {
		t.Fatalf("Expected 1 task remaining, got %d", len(m.tasks))
	}
	if m.tasks[0].Name != "First" {
		t.Errorf("Expected 'First' to survive, got %q", m.tasks[0].Name)
	}
	if m.selectedTask != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", m.selectedTask)
	}
}

func TestTaskPage_NotesToggle(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "Documented")

	m, _ = pressSpecial(t, m, tea.KeyEnter)
	if !m.showNotes {
		t.Error("Expected notes pane shown after enter")
	}

	m, _ = pressSpecial(t, m, tea.KeyEnter)
	if m.showNotes {
		t.Error("Expected notes pane hidden after second enter")
	}
}

// ============================================================================
// HELP OVERLAY
// ============================================================================

func TestHelp_RestoresPreviousMode(t *testing.T) {
	m := openTaskPage(t, loggedInModel(t), "One")

	m, _ = pressKey(t, m, "?")
	if m.mode != HelpMode {
		t.Fatalf("Expected HelpMode, got %v", m.mode)
	}
	if m.returnMode != TaskMode {
		t.Errorf("Expected return mode TaskMode, got %v", m.returnMode)
	}

	m, _ = pressSpecial(t, m, tea.KeyEsc)
	if m.mode != TaskMode {
		t.Errorf("Expected TaskMode restored after closing help, got %v", m.mode)
	}
}

// ============================================================================
// BACKUP PAGE
// ============================================================================

func TestBackupPage_PushListsSnapshot(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Snapshot me")
	m.reloadProjects()

	m, _ = pressKey(t, m, "b")
	if m.mode != BackupMode {
		t.Fatalf("Expected BackupMode, got %v", m.mode)
	}
	if len(m.snapshots) != 0 {
		t.Fatalf("Expected no snapshots yet, got %d", len(m.snapshots))
	}

	m, _ = pressKey(t, m, "p")

	if len(m.snapshots) != 1 {
		t.Fatalf("Expected 1 snapshot after push, got %d", len(m.snapshots))
	}
}

func TestBackupPage_RestoreRoundTrip(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Before snapshot")
	m.reloadProjects()

	m, _ = pressKey(t, m, "b")
	m, _ = pressKey(t, m, "p")

	// Mutate after the snapshot so the restore visibly rolls back
	seedProject(t, m.app, "After snapshot")
	m.reloadProjects()
	if len(m.projects) != 2 {
		t.Fatalf("Expected 2 projects before restore, got %d", len(m.projects))
	}

	m, _ = pressSpecial(t, m, tea.KeyEnter)
	if m.mode != BackupPullConfirmMode {
		t.Fatalf("Expected BackupPullConfirmMode, got %v", m.mode)
	}

	m, _ = pressKey(t, m, "y")

	if m.mode != BackupMode {
		t.Errorf("Expected BackupMode after restore, got %v", m.mode)
	}
	if len(m.projects) != 1 {
		t.Fatalf("Expected 1 project after restore, got %d", len(m.projects))
	}
	if m.projects[0].Name != "Before snapshot" {
		t.Errorf("Expected pre-snapshot project, got %q", m.projects[0].Name)
	}
}

func TestBackupPage_DeclineKeepsData(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Keep me")
	m.reloadProjects()

	m, _ = pressKey(t, m, "b")
	m, _ = pressKey(t, m, "p")
	seedProject(t, m.app, "Also keep me")
	m.reloadProjects()

	m, _ = pressSpecial(t, m, tea.KeyEnter)
	m, _ = pressKey(t, m, "n")

	if m.mode != BackupMode {
		t.Errorf("Expected BackupMode after decline, got %v", m.mode)
	}
	if len(m.projects) != 2 {
		t.Errorf("Expected both projects kept, got %d", len(m.projects))
	}
}

// ============================================================================
// MESSAGES
// ============================================================================

func TestUpdate_WindowSize(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("Expected size 120x40, got %dx%d", m.width, m.height)
	}
}

// A store event must refresh the dashboard, surface its message, and
// re-arm the subscription so later events still arrive.
func TestUpdate_StoreEventRefreshesAndRearms(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Out of band")

	newModel, cmd := m.Update(refreshMsg{event: events.Event{
		Type:    events.EventStoreChanged,
		Message: "Project created: P1",
	}})
	m = newModel.(Model)

	if len(m.projects) != 1 {
		t.Errorf("Expected projects refreshed, got %d", len(m.projects))
	}

	if !m.notifications.HasAny() {
		t.Error("Expected a toast for the event message")
	}

	if cmd == nil {
		t.Error("Expected the event subscription to be re-armed")
	}
}

// Edge case: events arriving before login must not leak data messages
// onto the password page
func TestUpdate_StoreEventSilentOnLoginPage(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(refreshMsg{event: events.Event{
		Type:    events.EventStoreChanged,
		Message: "Project created: P1",
	}})
	m = newModel.(Model)

	if m.notifications.HasAny() {
		t.Error("Expected no toast while on the login page")
	}
}

func TestUpdate_SaveFailureBecomesErrorToast(t *testing.T) {
	m := loggedInModel(t)

	newModel, _ := m.Update(refreshMsg{event: events.Event{
		Type:    events.EventSaveFailed,
		Message: "disk full",
	}})
	m = newModel.(Model)

	if !m.notifications.HasAny() {
		t.Fatal("Expected an error toast for the failed save")
	}
	got := m.notifications.All()[0]
	if got.Level != LevelError {
		t.Errorf("Expected error level, got %v", got.Level)
	}
}

// ============================================================================
// EVENT FLOW END TO END
// ============================================================================

// A mutation made by another part of the program reaches the TUI through
// the bus: Listen fires, handleStoreEvent reloads, the toast carries the
// service message.
func TestEventFlow_ServiceMutationReachesModel(t *testing.T) {
	m := loggedInModel(t)

	seedProject(t, m.app, "From elsewhere")

	// Drain one event the way the program loop would
	cmd := waitForEvent(m.eventCh)
	if cmd == nil {
		t.Fatal("Expected an armed event subscription")
	}

	msg := cmd()
	refresh, ok := msg.(refreshMsg)
	if !ok {
		t.Fatalf("Expected refreshMsg, got %T", msg)
	}

	if refresh.event.Type != events.EventStoreChanged {
		t.Errorf("Expected store change event, got %q", refresh.event.Type)
	}

	newModel, _ := m.Update(refresh)
	m = newModel.(Model)

	if len(m.projects) != 1 {
		t.Errorf("Expected dashboard refreshed from event, got %d projects", len(m.projects))
	}
}

func TestEventFlow_AutoSavePersistsMutation(t *testing.T) {
	m := loggedInModel(t)
	seedProject(t, m.app, "Persisted")

	if m.app.Records().HasUnsavedChanges() {
		t.Error("Expected auto-save to clear the dirty flag")
	}

	// A fresh load from the backing file sees the project
	found, err := m.app.Records().Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to reload backing file: %v", err)
	}
	if !found {
		t.Fatal("Expected the backing file to exist after auto-save")
	}
	if got := len(m.app.Records().Projects()); got != 1 {
		t.Errorf("Expected 1 project on disk, got %d", got)
	}
}
