package models

import "math"

// DateFormat is the calendar-date layout used for created dates and due dates.
const DateFormat = "2006-01-02"

// Project represents a container for tasks and free-form notes
// Projects are the top-level organizational unit in Rumbo
type Project struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	CreatedDate string `json:"created_date"`
	Tasks       []Task `json:"tasks"`
}

// Progress returns the percentage of completed tasks rounded to the nearest
// whole number. A project with no tasks reports 0.
func (p *Project) Progress() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range p.Tasks {
		if t.Status == StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(p.Tasks)) * 100))
}

// Clone returns a deep copy so callers can read project state without
// sharing the underlying task slice.
func (p *Project) Clone() *Project {
	out := *p
	out.Tasks = make([]Task, len(p.Tasks))
	copy(out.Tasks, p.Tasks)
	return &out
}
