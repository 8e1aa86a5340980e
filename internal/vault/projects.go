package vault

import (
	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

// CreateProjectParams carries the optional fields a project can be created
// with. Zero values leave the constructor defaults in place.
type CreateProjectParams struct {
	Title       string
	Description string
	Milestone   string
	URL         string
	Repo        string
	Tags        []string
	Status      models.ProjectStatus
}

// CreateProject builds a new project, appends it to the collection, and
// persists.
func (v *Vault) CreateProject(p CreateProjectParams) (*models.Project, error) {
	project, err := models.NewProject(p.Title)
	if err != nil {
		return nil, err
	}
	if p.Description != "" {
		project.WithDescription(p.Description)
	}
	if p.Milestone != "" {
		project.WithMilestone(p.Milestone)
	}
	if p.URL != "" {
		project.WithURL(p.URL)
	}
	if p.Repo != "" {
		project.WithRepo(p.Repo)
	}
	if len(p.Tags) > 0 {
		project.WithTags(p.Tags)
	}
	if p.Status != "" {
		if !p.Status.Valid() {
			return nil, errs.Validationf("invalid project status %q", string(p.Status))
		}
		project.WithStatus(p.Status)
	}

	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	projects = append(projects, *project)
	if err := v.store.SaveProjects(projects); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject returns the project with the given id.
func (v *Vault) GetProject(id uuid.UUID) (*models.Project, error) {
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	i, err := findProject(projects, id)
	if err != nil {
		return nil, err
	}
	return &projects[i], nil
}

// ListProjects returns projects matching the filter, in stored order.
func (v *Vault) ListProjects(f ProjectFilter) ([]models.Project, error) {
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	return FilterProjects(projects, f)
}

// ProjectIdeas returns the ideas linked to a project, in link order.
func (v *Vault) ProjectIdeas(id uuid.UUID) ([]models.Idea, error) {
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	i, err := findProject(projects, id)
	if err != nil {
		return nil, err
	}
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Idea, len(ideas))
	for _, idea := range ideas {
		byID[idea.ID] = idea
	}
	linked := []models.Idea{}
	for _, ideaID := range projects[i].IdeaIDs {
		if idea, ok := byID[ideaID]; ok {
			linked = append(linked, idea)
		}
	}
	return linked, nil
}

// ProjectUpdate describes a partial edit. Pointer fields are applied when
// non-nil; Clear names optional fields to blank. Clears run after sets.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Milestone   *string
	URL         *string
	Repo        *string
	Status      *models.ProjectStatus
	Tags        []string
	AddTags     []string
	RemoveTags  []string
	Clear       []string
}

// UpdateProject applies a partial edit and persists the collection.
func (v *Vault) UpdateProject(id uuid.UUID, u ProjectUpdate) (*models.Project, error) {
	if err := validateClear(u.Clear, "description", "milestone", "url", "repo", "tags"); err != nil {
		return nil, err
	}

	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	i, err := findProject(projects, id)
	if err != nil {
		return nil, err
	}
	project := &projects[i]

	if u.Title != nil {
		if err := project.SetTitle(*u.Title); err != nil {
			return nil, err
		}
	}
	if u.Description != nil {
		project.SetDescription(*u.Description)
	}
	if u.Milestone != nil {
		project.SetMilestone(*u.Milestone)
	}
	if u.URL != nil {
		project.SetURL(*u.URL)
	}
	if u.Repo != nil {
		project.SetRepo(*u.Repo)
	}
	if u.Status != nil {
		if err := project.SetStatus(*u.Status); err != nil {
			return nil, err
		}
	}
	if u.Tags != nil {
		project.SetTags(u.Tags)
	}
	for _, tag := range u.AddTags {
		project.AddTag(tag)
	}
	for _, tag := range u.RemoveTags {
		project.RemoveTag(tag)
	}
	if clearRequested(u.Clear, "description") {
		project.SetDescription("")
	}
	if clearRequested(u.Clear, "milestone") {
		project.SetMilestone("")
	}
	if clearRequested(u.Clear, "url") {
		project.SetURL("")
	}
	if clearRequested(u.Clear, "repo") {
		project.SetRepo("")
	}
	if clearRequested(u.Clear, "tags") {
		project.SetTags(nil)
	}

	if err := v.store.SaveProjects(projects); err != nil {
		return nil, err
	}
	return project, nil
}

// SetProjectStatus moves the project to a new status.
func (v *Vault) SetProjectStatus(id uuid.UUID, status models.ProjectStatus) (*models.Project, error) {
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	i, err := findProject(projects, id)
	if err != nil {
		return nil, err
	}
	if err := projects[i].SetStatus(status); err != nil {
		return nil, err
	}
	if err := v.store.SaveProjects(projects); err != nil {
		return nil, err
	}
	return &projects[i], nil
}

// TagProject replaces the project's whole tag set.
func (v *Vault) TagProject(id uuid.UUID, tags []string) (*models.Project, error) {
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	i, err := findProject(projects, id)
	if err != nil {
		return nil, err
	}
	projects[i].SetTags(tags)
	if err := v.store.SaveProjects(projects); err != nil {
		return nil, err
	}
	return &projects[i], nil
}

// DeleteProject removes the project and scrubs every reference to it: the
// project link of any idea and any task. Delete and cascade are persisted
// together through SaveAll.
func (v *Vault) DeleteProject(id uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	i, err := findProject(s.projects, id)
	if err != nil {
		return err
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)

	for idx := range s.ideas {
		if s.ideas[idx].ProjectID != nil && *s.ideas[idx].ProjectID == id {
			s.ideas[idx].ClearProject()
		}
	}
	for t := range s.tasks {
		if s.tasks[t].ProjectID != nil && *s.tasks[t].ProjectID == id {
			s.tasks[t].ClearProject()
		}
	}
	return v.saveAll(s)
}
