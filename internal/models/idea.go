package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
)

// IdeaStatus is the lifecycle stage of an idea.
type IdeaStatus string

const (
	IdeaBrainstorming IdeaStatus = "Brainstorming"
	IdeaActive        IdeaStatus = "Active"
	IdeaCompleted     IdeaStatus = "Completed"
	IdeaArchived      IdeaStatus = "Archived"
)

// ParseIdeaStatus maps user input to an IdeaStatus, accepting short aliases.
// This is the single source of truth for idea status strings; the filter
// engine and the setters both go through it.
func ParseIdeaStatus(s string) (IdeaStatus, error) {
	switch strings.ToLower(s) {
	case "brainstorming", "brainstorm", "bs":
		return IdeaBrainstorming, nil
	case "active", "a":
		return IdeaActive, nil
	case "completed", "complete", "d":
		return IdeaCompleted, nil
	case "archived", "archive", "ar":
		return IdeaArchived, nil
	default:
		return "", errs.Validationf("invalid idea status %q, must be one of: brainstorming, active, completed, archived", s)
	}
}

// Valid reports whether s is one of the recognized idea statuses.
func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaBrainstorming, IdeaActive, IdeaCompleted, IdeaArchived:
		return true
	}
	return false
}

// Idea is a captured thought or concept, optionally linked to one project.
type Idea struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	Status      IdeaStatus `json:"status"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewIdea creates an idea with a fresh id, status Brainstorming, and
// created_at == updated_at.
func NewIdea(title string) (*Idea, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	ts := now()
	return &Idea{
		ID:        uuid.New(),
		Title:     title,
		Tags:      []string{},
		Status:    IdeaBrainstorming,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

func (i *Idea) touch() {
	i.UpdatedAt = now()
}

// WithDescription sets the description during construction.
func (i *Idea) WithDescription(description string) *Idea {
	i.Description = description
	i.touch()
	return i
}

// WithTags sets the tag set during construction, collapsing duplicates.
func (i *Idea) WithTags(tags []string) *Idea {
	i.Tags = dedupeTags(tags)
	i.touch()
	return i
}

// WithStatus sets the status during construction. Invalid values are left
// to SetStatus callers; builders receive parsed statuses.
func (i *Idea) WithStatus(status IdeaStatus) *Idea {
	i.Status = status
	i.touch()
	return i
}

// SetTitle replaces the title. Empty titles are rejected.
func (i *Idea) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	i.Title = title
	i.touch()
	return nil
}

// SetDescription replaces the description. An empty string clears it.
func (i *Idea) SetDescription(description string) {
	i.Description = description
	i.touch()
}

// SetStatus replaces the status, rejecting unrecognized values.
func (i *Idea) SetStatus(status IdeaStatus) error {
	if !status.Valid() {
		return errs.Validationf("invalid idea status %q", string(status))
	}
	i.Status = status
	i.touch()
	return nil
}

// SetTags replaces the whole tag set.
func (i *Idea) SetTags(tags []string) {
	i.Tags = dedupeTags(tags)
	i.touch()
}

// AddTag appends a tag if not already present.
func (i *Idea) AddTag(tag string) {
	if containsTag(i.Tags, tag) {
		return
	}
	i.Tags = append(i.Tags, tag)
	i.touch()
}

// RemoveTag drops a tag if present.
func (i *Idea) RemoveTag(tag string) {
	tags, removed := removeTag(i.Tags, tag)
	if !removed {
		return
	}
	i.Tags = tags
	i.touch()
}

// SetProject links the idea to a project.
func (i *Idea) SetProject(projectID uuid.UUID) {
	id := projectID
	i.ProjectID = &id
	i.touch()
}

// ClearProject removes the project link.
func (i *Idea) ClearProject() {
	i.ProjectID = nil
	i.touch()
}
