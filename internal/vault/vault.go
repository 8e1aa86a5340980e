// Package vault is the engine behind every command: entity CRUD, the link
// manager, the filter engine, and free-text search. It holds no state of
// its own; each operation is one load, compute, persist cycle against the
// injected Store, and a failed operation leaves both memory and the store
// as they were.
package vault

import (
	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/storage"
)

// Vault exposes the core operations over a Store.
type Vault struct {
	store storage.Store
}

// New returns a vault backed by the given store.
func New(store storage.Store) *Vault {
	return &Vault{store: store}
}

// snapshot is an in-memory copy of all three collections, loaded together
// for operations that mutate across collections.
type snapshot struct {
	ideas    []models.Idea
	projects []models.Project
	tasks    []models.Task
}

func (v *Vault) loadAll() (*snapshot, error) {
	ideas, err := v.store.LoadIdeas()
	if err != nil {
		return nil, err
	}
	projects, err := v.store.LoadProjects()
	if err != nil {
		return nil, err
	}
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return nil, err
	}
	return &snapshot{ideas: ideas, projects: projects, tasks: tasks}, nil
}

func (v *Vault) saveAll(s *snapshot) error {
	return v.store.SaveAll(s.ideas, s.projects, s.tasks)
}

func findIdea(ideas []models.Idea, id uuid.UUID) (int, error) {
	for i := range ideas {
		if ideas[i].ID == id {
			return i, nil
		}
	}
	return -1, errs.NotFoundf("idea %s", id)
}

func findProject(projects []models.Project, id uuid.UUID) (int, error) {
	for i := range projects {
		if projects[i].ID == id {
			return i, nil
		}
	}
	return -1, errs.NotFoundf("project %s", id)
}

func findTask(tasks []models.Task, id uuid.UUID) (int, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return i, nil
		}
	}
	return -1, errs.NotFoundf("task %s", id)
}

// validateClear checks a --clear field list against the fields an update
// operation can blank. Failing here keeps unknown names from silently
// doing nothing.
func validateClear(clear []string, allowed ...string) error {
	for _, field := range clear {
		ok := false
		for _, a := range allowed {
			if field == a {
				ok = true
				break
			}
		}
		if !ok {
			return errs.Validationf("cannot clear %q, valid fields: %v", field, allowed)
		}
	}
	return nil
}

func clearRequested(clear []string, field string) bool {
	for _, f := range clear {
		if f == field {
			return true
		}
	}
	return false
}
