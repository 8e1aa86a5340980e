package vault

import (
	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

// CreateIdeaParams carries the optional fields an idea can be created with.
// Zero values leave the constructor defaults in place.
type CreateIdeaParams struct {
	Title       string
	Description string
	Tags        []string
	Status      models.IdeaStatus
}

// CreateIdea builds a new idea, appends it to the collection, and persists.
func (v *Vault) CreateIdea(p CreateIdeaParams) (*models.Idea, error) {
	idea, err := models.NewIdea(p.Title)
	if err != nil {
		return nil, err
	}
	if p.Description != "" {
		idea.WithDescription(p.Description)
	}
	if len(p.Tags) > 0 {
		idea.WithTags(p.Tags)
	}
	if p.Status != "" {
		if !p.Status.Valid() {
			return nil, errs.Validationf("invalid idea status %q", string(p.Status))
		}
		idea.WithStatus(p.Status)
	}

	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	ideas = append(ideas, *idea)
	if err := v.store.SaveIdeas(ideas); err != nil {
		return nil, err
	}
	return idea, nil
}

// GetIdea returns the idea with the given id.
func (v *Vault) GetIdea(id uuid.UUID) (*models.Idea, error) {
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	i, err := findIdea(ideas, id)
	if err != nil {
		return nil, err
	}
	return &ideas[i], nil
}

// ListIdeas returns ideas matching the filter, in stored order.
func (v *Vault) ListIdeas(f IdeaFilter) ([]models.Idea, error) {
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	return FilterIdeas(ideas, f)
}

// IdeaUpdate describes a partial edit. Pointer fields are applied when
// non-nil; Clear names optional fields to blank. Clears run after sets.
type IdeaUpdate struct {
	Title       *string
	Description *string
	Status      *models.IdeaStatus
	Tags        []string
	AddTags     []string
	RemoveTags  []string
	Clear       []string
}

// UpdateIdea applies a partial edit and persists the collection.
func (v *Vault) UpdateIdea(id uuid.UUID, u IdeaUpdate) (*models.Idea, error) {
	if err := validateClear(u.Clear, "description", "tags"); err != nil {
		return nil, err
	}

	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	i, err := findIdea(ideas, id)
	if err != nil {
		return nil, err
	}
	idea := &ideas[i]

	if u.Title != nil {
		if err := idea.SetTitle(*u.Title); err != nil {
			return nil, err
		}
	}
	if u.Description != nil {
		idea.SetDescription(*u.Description)
	}
	if u.Status != nil {
		if err := idea.SetStatus(*u.Status); err != nil {
			return nil, err
		}
	}
	if u.Tags != nil {
		idea.SetTags(u.Tags)
	}
	for _, tag := range u.AddTags {
		idea.AddTag(tag)
	}
	for _, tag := range u.RemoveTags {
		idea.RemoveTag(tag)
	}
	if clearRequested(u.Clear, "description") {
		idea.SetDescription("")
	}
	if clearRequested(u.Clear, "tags") {
		idea.SetTags(nil)
	}

	if err := v.store.SaveIdeas(ideas); err != nil {
		return nil, err
	}
	return idea, nil
}

// TagIdea replaces the idea's whole tag set.
func (v *Vault) TagIdea(id uuid.UUID, tags []string) (*models.Idea, error) {
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	i, err := findIdea(ideas, id)
	if err != nil {
		return nil, err
	}
	ideas[i].SetTags(tags)
	if err := v.store.SaveIdeas(ideas); err != nil {
		return nil, err
	}
	return &ideas[i], nil
}

// SetIdeaStatus moves the idea to a new status.
func (v *Vault) SetIdeaStatus(id uuid.UUID, status models.IdeaStatus) (*models.Idea, error) {
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	i, err := findIdea(ideas, id)
	if err != nil {
		return nil, err
	}
	if err := ideas[i].SetStatus(status); err != nil {
		return nil, err
	}
	if err := v.store.SaveIdeas(ideas); err != nil {
		return nil, err
	}
	return &ideas[i], nil
}

// DeleteIdea removes the idea and scrubs every reference to it: the linked
// set of any project and the idea link of any task. Delete and cascade are
// persisted together through SaveAll.
func (v *Vault) DeleteIdea(id uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	i, err := findIdea(s.ideas, id)
	if err != nil {
		return err
	}
	s.ideas = append(s.ideas[:i], s.ideas[i+1:]...)

	for p := range s.projects {
		s.projects[p].RemoveIdea(id)
	}
	for t := range s.tasks {
		if s.tasks[t].IdeaID != nil && *s.tasks[t].IdeaID == id {
			s.tasks[t].ClearIdea()
		}
	}
	return v.saveAll(s)
}
