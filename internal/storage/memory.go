package storage

import (
	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/models"
)

// MemStore keeps everything in process memory. It exists for tests and for
// callers that want the engine without persistence. SaveErr, when set, makes
// every save fail with that error so callers can exercise storage-failure
// paths.
type MemStore struct {
	Ideas    []models.Idea
	Projects []models.Project
	Tasks    []models.Task
	SaveErr  error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func cloneUUIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneIdeas(ideas []models.Idea) []models.Idea {
	out := make([]models.Idea, len(ideas))
	for i, idea := range ideas {
		out[i] = idea
		out[i].Tags = append([]string{}, idea.Tags...)
		out[i].ProjectID = cloneUUIDPtr(idea.ProjectID)
	}
	return out
}

func cloneProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = p
		out[i].Tags = append([]string{}, p.Tags...)
		out[i].IdeaIDs = append([]uuid.UUID{}, p.IdeaIDs...)
	}
	return out
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t
		out[i].Tags = append([]string{}, t.Tags...)
		out[i].ProjectID = cloneUUIDPtr(t.ProjectID)
		out[i].IdeaID = cloneUUIDPtr(t.IdeaID)
		if t.DueDate != nil {
			d := *t.DueDate
			out[i].DueDate = &d
		}
	}
	return out
}

// LoadIdeas returns a copy of the stored ideas.
func (s *MemStore) LoadIdeas() ([]models.Idea, error) {
	return cloneIdeas(s.Ideas), nil
}

// SaveIdeas replaces the stored ideas.
func (s *MemStore) SaveIdeas(ideas []models.Idea) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Ideas = cloneIdeas(ideas)
	return nil
}

// LoadProjects returns a copy of the stored projects.
func (s *MemStore) LoadProjects() ([]models.Project, error) {
	return cloneProjects(s.Projects), nil
}

// SaveProjects replaces the stored projects.
func (s *MemStore) SaveProjects(projects []models.Project) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Projects = cloneProjects(projects)
	return nil
}

// LoadTasks returns a copy of the stored tasks.
func (s *MemStore) LoadTasks() ([]models.Task, error) {
	return cloneTasks(s.Tasks), nil
}

// SaveTasks replaces the stored tasks.
func (s *MemStore) SaveTasks(tasks []models.Task) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Tasks = cloneTasks(tasks)
	return nil
}

// SaveAll replaces all three collections; all or nothing.
func (s *MemStore) SaveAll(ideas []models.Idea, projects []models.Project, tasks []models.Task) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Ideas = cloneIdeas(ideas)
	s.Projects = cloneProjects(projects)
	s.Tasks = cloneTasks(tasks)
	return nil
}
