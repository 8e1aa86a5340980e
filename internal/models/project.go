package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "InProgress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "OnHold"
)

// ParseProjectStatus maps user input to a ProjectStatus, accepting short
// aliases.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(s) {
	case "planning", "plan", "p":
		return ProjectPlanning, nil
	case "inprogress", "in-progress", "progress", "ip":
		return ProjectInProgress, nil
	case "completed", "complete", "d":
		return ProjectCompleted, nil
	case "onhold", "on-hold", "hold", "h":
		return ProjectOnHold, nil
	default:
		return "", errs.Validationf("invalid project status %q, must be one of: planning, inprogress, completed, onhold", s)
	}
}

// Valid reports whether s is one of the recognized project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project groups ideas toward a goal. IdeaIDs holds the linked ideas in
// link order with no duplicates.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Milestone   string        `json:"milestone,omitempty"`
	URL         string        `json:"url,omitempty"`
	Repo        string        `json:"repo,omitempty"`
	Tags        []string      `json:"tags"`
	Status      ProjectStatus `json:"status"`
	IdeaIDs     []uuid.UUID   `json:"idea_ids"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewProject creates a project with a fresh id, status Planning, and
// created_at == updated_at.
func NewProject(title string) (*Project, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	ts := now()
	return &Project{
		ID:        uuid.New(),
		Title:     title,
		Tags:      []string{},
		Status:    ProjectPlanning,
		IdeaIDs:   []uuid.UUID{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

func (p *Project) touch() {
	p.UpdatedAt = now()
}

// WithDescription sets the description during construction.
func (p *Project) WithDescription(description string) *Project {
	p.Description = description
	p.touch()
	return p
}

// WithMilestone sets the milestone during construction.
func (p *Project) WithMilestone(milestone string) *Project {
	p.Milestone = milestone
	p.touch()
	return p
}

// WithURL sets the project URL during construction.
func (p *Project) WithURL(url string) *Project {
	p.URL = url
	p.touch()
	return p
}

// WithRepo sets the repository URL during construction.
func (p *Project) WithRepo(repo string) *Project {
	p.Repo = repo
	p.touch()
	return p
}

// WithTags sets the tag set during construction, collapsing duplicates.
func (p *Project) WithTags(tags []string) *Project {
	p.Tags = dedupeTags(tags)
	p.touch()
	return p
}

// WithStatus sets the status during construction.
func (p *Project) WithStatus(status ProjectStatus) *Project {
	p.Status = status
	p.touch()
	return p
}

// SetTitle replaces the title. Empty titles are rejected.
func (p *Project) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = title
	p.touch()
	return nil
}

// SetDescription replaces the description. An empty string clears it.
func (p *Project) SetDescription(description string) {
	p.Description = description
	p.touch()
}

// SetMilestone replaces the milestone. An empty string clears it.
func (p *Project) SetMilestone(milestone string) {
	p.Milestone = milestone
	p.touch()
}

// SetURL replaces the project URL. An empty string clears it.
func (p *Project) SetURL(url string) {
	p.URL = url
	p.touch()
}

// SetRepo replaces the repository URL. An empty string clears it.
func (p *Project) SetRepo(repo string) {
	p.Repo = repo
	p.touch()
}

// SetStatus replaces the status, rejecting unrecognized values.
func (p *Project) SetStatus(status ProjectStatus) error {
	if !status.Valid() {
		return errs.Validationf("invalid project status %q", string(status))
	}
	p.Status = status
	p.touch()
	return nil
}

// SetTags replaces the whole tag set.
func (p *Project) SetTags(tags []string) {
	p.Tags = dedupeTags(tags)
	p.touch()
}

// AddTag appends a tag if not already present.
func (p *Project) AddTag(tag string) {
	if containsTag(p.Tags, tag) {
		return
	}
	p.Tags = append(p.Tags, tag)
	p.touch()
}

// RemoveTag drops a tag if present.
func (p *Project) RemoveTag(tag string) {
	tags, removed := removeTag(p.Tags, tag)
	if !removed {
		return
	}
	p.Tags = tags
	p.touch()
}

// HasIdea reports whether the idea is in the linked set.
func (p *Project) HasIdea(ideaID uuid.UUID) bool {
	for _, id := range p.IdeaIDs {
		if id == ideaID {
			return true
		}
	}
	return false
}

// AddIdea links an idea. Linking an already-linked idea is a no-op, so the
// set never holds duplicates.
func (p *Project) AddIdea(ideaID uuid.UUID) {
	if p.HasIdea(ideaID) {
		return
	}
	p.IdeaIDs = append(p.IdeaIDs, ideaID)
	p.touch()
}

// RemoveIdea unlinks an idea if present.
func (p *Project) RemoveIdea(ideaID uuid.UUID) {
	for i, id := range p.IdeaIDs {
		if id == ideaID {
			p.IdeaIDs = append(p.IdeaIDs[:i], p.IdeaIDs[i+1:]...)
			p.touch()
			return
		}
	}
}

// IdeaCount returns how many ideas are linked.
func (p *Project) IdeaCount() int {
	return len(p.IdeaIDs)
}
