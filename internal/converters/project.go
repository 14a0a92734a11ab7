package converters

import "github.com/thenoetrevino/rumbo/internal/models"

// ProjectView is the shape of a project in CLI output. The backing file keeps
// project IDs in map keys rather than on the record, so views re-attach them.
type ProjectView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	CreatedDate string `json:"created_date"`
	TaskCount   int    `json:"task_count"`
	Progress    int    `json:"progress"`
}

// ProjectToView converts a models.Project to its CLI view
func ProjectToView(project *models.Project) ProjectView {
	return ProjectView{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Notes:       project.Notes,
		CreatedDate: project.CreatedDate,
		TaskCount:   len(project.Tasks),
		Progress:    project.Progress(),
	}
}

// ProjectsToViews converts a slice of projects to CLI views
func ProjectsToViews(projects []*models.Project) []ProjectView {
	views := make([]ProjectView, len(projects))
	for i, project := range projects {
		views[i] = ProjectToView(project)
	}
	return views
}
