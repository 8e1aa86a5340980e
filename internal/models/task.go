package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
)

// TaskStatus is the lifecycle stage of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "inprogress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// ParseTaskStatus maps user input to a TaskStatus, accepting short aliases.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(s) {
	case "todo", "t":
		return TaskTodo, nil
	case "inprogress", "in-progress", "progress", "ip":
		return TaskInProgress, nil
	case "blocked", "block", "b":
		return TaskBlocked, nil
	case "done", "complete", "d", "x":
		return TaskDone, nil
	case "cancelled", "cancel", "c":
		return TaskCancelled, nil
	default:
		return "", errs.Validationf("invalid task status %q, must be one of: todo, inprogress, blocked, done, cancelled", s)
	}
}

// Valid reports whether s is one of the recognized task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskBlocked, TaskDone, TaskCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the task's life (done or
// cancelled). Terminal tasks are never overdue.
func (s TaskStatus) Terminal() bool {
	return s == TaskDone || s == TaskCancelled
}

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// ParseTaskPriority maps user input to a TaskPriority, accepting short
// aliases.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	case "urgent", "u", "crit", "critical":
		return PriorityUrgent, nil
	default:
		return "", errs.Validationf("invalid task priority %q, must be one of: low, medium, high, urgent", s)
	}
}

// Valid reports whether p is one of the recognized priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank returns the priority as a sortable weight, urgent highest.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Task is a unit of work, optionally due on a calendar date and optionally
// linked to one project and one idea.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	ProjectID   *uuid.UUID   `json:"project_id,omitempty"`
	IdeaID      *uuid.UUID   `json:"idea_id,omitempty"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a task with a fresh id, status todo, priority medium, and
// created_at == updated_at.
func NewTask(title string) (*Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	ts := now()
	return &Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    TaskTodo,
		Priority:  PriorityMedium,
		Tags:      []string{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

func (t *Task) touch() {
	t.UpdatedAt = now()
}

// WithDescription sets the description during construction.
func (t *Task) WithDescription(description string) *Task {
	t.Description = description
	t.touch()
	return t
}

// WithPriority sets the priority during construction.
func (t *Task) WithPriority(priority TaskPriority) *Task {
	t.Priority = priority
	t.touch()
	return t
}

// WithStatus sets the status during construction.
func (t *Task) WithStatus(status TaskStatus) *Task {
	t.Status = status
	t.touch()
	return t
}

// WithTags sets the tag set during construction, collapsing duplicates.
func (t *Task) WithTags(tags []string) *Task {
	t.Tags = dedupeTags(tags)
	t.touch()
	return t
}

// WithDueDate sets the due date during construction.
func (t *Task) WithDueDate(due time.Time) *Task {
	d := DateOnly(due)
	t.DueDate = &d
	t.touch()
	return t
}

// WithProject links the task to a project during construction.
func (t *Task) WithProject(projectID uuid.UUID) *Task {
	id := projectID
	t.ProjectID = &id
	t.touch()
	return t
}

// WithIdea links the task to an idea during construction.
func (t *Task) WithIdea(ideaID uuid.UUID) *Task {
	id := ideaID
	t.IdeaID = &id
	t.touch()
	return t
}

// SetTitle replaces the title. Empty titles are rejected.
func (t *Task) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.Title = title
	t.touch()
	return nil
}

// SetDescription replaces the description. An empty string clears it.
func (t *Task) SetDescription(description string) {
	t.Description = description
	t.touch()
}

// SetStatus replaces the status, rejecting unrecognized values.
func (t *Task) SetStatus(status TaskStatus) error {
	if !status.Valid() {
		return errs.Validationf("invalid task status %q", string(status))
	}
	t.Status = status
	t.touch()
	return nil
}

// SetPriority replaces the priority, rejecting unrecognized values.
func (t *Task) SetPriority(priority TaskPriority) error {
	if !priority.Valid() {
		return errs.Validationf("invalid task priority %q", string(priority))
	}
	t.Priority = priority
	t.touch()
	return nil
}

// SetDueDate replaces the due date. The time component is discarded.
func (t *Task) SetDueDate(due time.Time) {
	d := DateOnly(due)
	t.DueDate = &d
	t.touch()
}

// ClearDueDate removes the due date.
func (t *Task) ClearDueDate() {
	t.DueDate = nil
	t.touch()
}

// SetTags replaces the whole tag set.
func (t *Task) SetTags(tags []string) {
	t.Tags = dedupeTags(tags)
	t.touch()
}

// AddTag appends a tag if not already present.
func (t *Task) AddTag(tag string) {
	if containsTag(t.Tags, tag) {
		return
	}
	t.Tags = append(t.Tags, tag)
	t.touch()
}

// RemoveTag drops a tag if present.
func (t *Task) RemoveTag(tag string) {
	tags, removed := removeTag(t.Tags, tag)
	if !removed {
		return
	}
	t.Tags = tags
	t.touch()
}

// SetProject links the task to a project, replacing any previous link.
func (t *Task) SetProject(projectID uuid.UUID) {
	id := projectID
	t.ProjectID = &id
	t.touch()
}

// ClearProject removes the project link.
func (t *Task) ClearProject() {
	t.ProjectID = nil
	t.touch()
}

// SetIdea links the task to an idea, replacing any previous link.
func (t *Task) SetIdea(ideaID uuid.UUID) {
	id := ideaID
	t.IdeaID = &id
	t.touch()
}

// ClearIdea removes the idea link.
func (t *Task) ClearIdea() {
	t.IdeaID = nil
	t.touch()
}

// Overdue reports whether the task's due date is strictly before today.
// Tasks in a terminal status are never overdue.
func (t *Task) Overdue(today time.Time) bool {
	if t.DueDate == nil || t.Status.Terminal() {
		return false
	}
	return t.DueDate.Before(DateOnly(today))
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
