package vault

import (
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

// CreateTaskParams carries the optional fields a task can be created with.
// Zero values leave the constructor defaults in place. Project and idea
// references must point at existing entities.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
	ProjectID   *uuid.UUID
	IdeaID      *uuid.UUID
	Tags        []string
}

// CreateTask builds a new task, verifies its links resolve, appends it to
// the collection, and persists.
func (v *Vault) CreateTask(p CreateTaskParams) (*models.Task, error) {
	task, err := models.NewTask(p.Title)
	if err != nil {
		return nil, err
	}
	if p.Description != "" {
		task.WithDescription(p.Description)
	}
	if p.Status != "" {
		if !p.Status.Valid() {
			return nil, errs.Validationf("invalid task status %q", string(p.Status))
		}
		task.WithStatus(p.Status)
	}
	if p.Priority != "" {
		if !p.Priority.Valid() {
			return nil, errs.Validationf("invalid task priority %q", string(p.Priority))
		}
		task.WithPriority(p.Priority)
	}
	if p.DueDate != nil {
		task.WithDueDate(*p.DueDate)
	}
	if len(p.Tags) > 0 {
		task.WithTags(p.Tags)
	}

	if p.ProjectID != nil {
		projects, err := v.store.LoadProjects()
		if err != nil {
			return nil, err
		}
		if _, err := findProject(projects, *p.ProjectID); err != nil {
			return nil, err
		}
		task.WithProject(*p.ProjectID)
	}
	if p.IdeaID != nil {
		ideas, err := v.store.LoadIdeas()
		if err != nil {
			return nil, err
		}
		if _, err := findIdea(ideas, *p.IdeaID); err != nil {
			return nil, err
		}
		task.WithIdea(*p.IdeaID)
	}

	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, *task)
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask returns the task with the given id.
func (v *Vault) GetTask(id uuid.UUID) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// ListTasks returns tasks matching the filter, in stored order.
func (v *Vault) ListTasks(f TaskFilter) ([]models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	return FilterTasks(tasks, f)
}

// TaskUpdate describes a partial edit. Pointer fields are applied when
// non-nil; Clear names optional fields to blank. Clears run after sets.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
	Tags        []string
	AddTags     []string
	RemoveTags  []string
	Clear       []string
}

// UpdateTask applies a partial edit and persists the collection.
func (v *Vault) UpdateTask(id uuid.UUID, u TaskUpdate) (*models.Task, error) {
	if err := validateClear(u.Clear, "description", "tags", "due", "project", "idea"); err != nil {
		return nil, err
	}

	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	task := &tasks[i]

	if u.Title != nil {
		if err := task.SetTitle(*u.Title); err != nil {
			return nil, err
		}
	}
	if u.Description != nil {
		task.SetDescription(*u.Description)
	}
	if u.Status != nil {
		if err := task.SetStatus(*u.Status); err != nil {
			return nil, err
		}
	}
	if u.Priority != nil {
		if err := task.SetPriority(*u.Priority); err != nil {
			return nil, err
		}
	}
	if u.DueDate != nil {
		task.SetDueDate(*u.DueDate)
	}
	if u.Tags != nil {
		task.SetTags(u.Tags)
	}
	for _, tag := range u.AddTags {
		task.AddTag(tag)
	}
	for _, tag := range u.RemoveTags {
		task.RemoveTag(tag)
	}
	if clearRequested(u.Clear, "description") {
		task.SetDescription("")
	}
	if clearRequested(u.Clear, "tags") {
		task.SetTags(nil)
	}
	if clearRequested(u.Clear, "due") {
		task.ClearDueDate()
	}
	if clearRequested(u.Clear, "project") {
		task.ClearProject()
	}
	if clearRequested(u.Clear, "idea") {
		task.ClearIdea()
	}

	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return task, nil
}

// SetTaskStatus moves the task to a new status.
func (v *Vault) SetTaskStatus(id uuid.UUID, status models.TaskStatus) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	if err := tasks[i].SetStatus(status); err != nil {
		return nil, err
	}
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// SetTaskPriority changes the task's priority.
func (v *Vault) SetTaskPriority(id uuid.UUID, priority models.TaskPriority) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	if err := tasks[i].SetPriority(priority); err != nil {
		return nil, err
	}
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// SetTaskDueDate sets the task's due date; the time component is dropped.
func (v *Vault) SetTaskDueDate(id uuid.UUID, due time.Time) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	tasks[i].SetDueDate(due)
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// ClearTaskDueDate removes the task's due date.
func (v *Vault) ClearTaskDueDate(id uuid.UUID) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	tasks[i].ClearDueDate()
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// TagTask replaces the task's whole tag set.
func (v *Vault) TagTask(id uuid.UUID, tags []string) (*models.Task, error) {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}
	tasks[i].SetTags(tags)
	if err := v.store.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &tasks[i], nil
}

// DeleteTask removes the task. Nothing references tasks, so there is no
// cascade.
func (v *Vault) DeleteTask(id uuid.UUID) error {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return err
	}
	i, err := findTask(tasks, id)
	if err != nil {
		return err
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	return v.store.SaveTasks(tasks)
}
