package vault

import (
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

// Filter specifications. Fields are independent and conjunctive: every
// supplied field must match, absent fields impose nothing. Filtering is
// pure and order-preserving.

// IdeaFilter narrows an idea listing.
type IdeaFilter struct {
	Status *models.IdeaStatus
	Tag    string
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	Status *models.ProjectStatus
	Tag    string
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	Status    *models.TaskStatus
	Priority  *models.TaskPriority
	Tag       string
	ProjectID *uuid.UUID
	IdeaID    *uuid.UUID
	Overdue   bool
}

// FilterIdeas returns the ideas matching f, in input order. An invalid
// status value fails before any scanning happens.
func FilterIdeas(ideas []models.Idea, f IdeaFilter) ([]models.Idea, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, errs.Validationf("invalid idea status %q", string(*f.Status))
	}
	out := []models.Idea{}
	for _, idea := range ideas {
		if f.Status != nil && idea.Status != *f.Status {
			continue
		}
		if f.Tag != "" && !hasTag(idea.Tags, f.Tag) {
			continue
		}
		out = append(out, idea)
	}
	return out, nil
}

// FilterProjects returns the projects matching f, in input order.
func FilterProjects(projects []models.Project, f ProjectFilter) ([]models.Project, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, errs.Validationf("invalid project status %q", string(*f.Status))
	}
	out := []models.Project{}
	for _, p := range projects {
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FilterTasks returns the tasks matching f, in input order. Overdue means
// the due date is set and strictly before today, and the task is not done
// or cancelled.
func FilterTasks(tasks []models.Task, f TaskFilter) ([]models.Task, error) {
	return filterTasksAt(tasks, f, time.Now().UTC())
}

func filterTasksAt(tasks []models.Task, f TaskFilter, now time.Time) ([]models.Task, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, errs.Validationf("invalid task status %q", string(*f.Status))
	}
	if f.Priority != nil && !f.Priority.Valid() {
		return nil, errs.Validationf("invalid task priority %q", string(*f.Priority))
	}
	out := []models.Task{}
	for _, t := range tasks {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Tag != "" && !hasTag(t.Tags, f.Tag) {
			continue
		}
		if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
			continue
		}
		if f.IdeaID != nil && (t.IdeaID == nil || *t.IdeaID != *f.IdeaID) {
			continue
		}
		if f.Overdue && !t.Overdue(now) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
