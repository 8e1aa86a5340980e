// Package storage persists the three entity collections. A Store loads and
// saves whole collections; callers treat a save as atomic and never observe
// a partially written collection.
package storage

import (
	"github.com/tgienger/ideavault/internal/models"
)

// Store is the persistence seam the vault engine is built against. Any
// conforming implementation is interchangeable: the JSON file store for
// normal use, SQLite as an alternate backend, the memory store for tests.
type Store interface {
	LoadIdeas() ([]models.Idea, error)
	SaveIdeas(ideas []models.Idea) error

	LoadProjects() ([]models.Project, error)
	SaveProjects(projects []models.Project) error

	LoadTasks() ([]models.Task, error)
	SaveTasks(tasks []models.Task) error

	// SaveAll persists all three collections as one logical transaction.
	// Link updates and cascading deletes go through here so either every
	// collection reflects the change or none does.
	SaveAll(ideas []models.Idea, projects []models.Project, tasks []models.Task) error
}
