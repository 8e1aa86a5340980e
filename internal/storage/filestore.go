package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

const (
	ideasFile    = "ideas.json"
	projectsFile = "projects.json"
	tasksFile    = "tasks.json"
)

// FileStore keeps each collection in a pretty-printed JSON file under one
// data directory. Writes go to a temp file first and are moved into place
// with rename, so a crash mid-write leaves the previous state intact.
type FileStore struct {
	dataDir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errs.Storagef(err, "create data directory %s", dataDir)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// DataDir returns the directory the store writes into.
func (s *FileStore) DataDir() string {
	return s.dataDir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// loadFile decodes one collection file. A collection that has never been
// saved reads as empty, not as an error.
func loadFile[T any](path string) ([]T, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, errs.Storagef(err, "read %s", path)
	}
	var items []T
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, errs.Storagef(err, "parse %s", path)
	}
	return items, nil
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, errs.Storagef(err, "serialize collection")
	}
	return append(content, '\n'), nil
}

// stageFile writes content next to path and returns the temp name; the
// caller renames it into place.
func stageFile(path string, content []byte) (string, error) {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return "", errs.Storagef(err, "write %s", tmp)
	}
	return tmp, nil
}

func saveFile[T any](path string, items []T) error {
	content, err := encode(items)
	if err != nil {
		return err
	}
	tmp, err := stageFile(path, content)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errs.Storagef(err, "replace %s", path)
	}
	return nil
}

// LoadIdeas returns all persisted ideas in saved order.
func (s *FileStore) LoadIdeas() ([]models.Idea, error) {
	return loadFile[models.Idea](s.path(ideasFile))
}

// SaveIdeas replaces the persisted idea collection.
func (s *FileStore) SaveIdeas(ideas []models.Idea) error {
	return saveFile(s.path(ideasFile), ideas)
}

// LoadProjects returns all persisted projects in saved order.
func (s *FileStore) LoadProjects() ([]models.Project, error) {
	return loadFile[models.Project](s.path(projectsFile))
}

// SaveProjects replaces the persisted project collection.
func (s *FileStore) SaveProjects(projects []models.Project) error {
	return saveFile(s.path(projectsFile), projects)
}

// LoadTasks returns all persisted tasks in saved order.
func (s *FileStore) LoadTasks() ([]models.Task, error) {
	return loadFile[models.Task](s.path(tasksFile))
}

// SaveTasks replaces the persisted task collection.
func (s *FileStore) SaveTasks(tasks []models.Task) error {
	return saveFile(s.path(tasksFile), tasks)
}

// SaveAll stages all three collection files before renaming any of them,
// so an encoding or write failure leaves every collection untouched.
func (s *FileStore) SaveAll(ideas []models.Idea, projects []models.Project, tasks []models.Task) error {
	type staged struct {
		tmp, dst string
	}
	var pending []staged

	cleanup := func() {
		for _, f := range pending {
			os.Remove(f.tmp)
		}
	}

	stage := func(name string, content []byte) error {
		dst := s.path(name)
		tmp, err := stageFile(dst, content)
		if err != nil {
			return err
		}
		pending = append(pending, staged{tmp: tmp, dst: dst})
		return nil
	}

	ideasJSON, err := encode(ideas)
	if err != nil {
		return err
	}
	projectsJSON, err := encode(projects)
	if err != nil {
		return err
	}
	tasksJSON, err := encode(tasks)
	if err != nil {
		return err
	}

	for _, f := range []struct {
		name    string
		content []byte
	}{
		{ideasFile, ideasJSON},
		{projectsFile, projectsJSON},
		{tasksFile, tasksJSON},
	} {
		if err := stage(f.name, f.content); err != nil {
			cleanup()
			return err
		}
	}

	for _, f := range pending {
		if err := os.Rename(f.tmp, f.dst); err != nil {
			cleanup()
			return errs.Storagef(err, "replace %s", f.dst)
		}
	}
	return nil
}
