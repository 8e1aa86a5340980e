package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tgienger/ideavault/internal/models"
)

func TestFileStoreEmptyDir(t *testing.T) {
	t.Parallel()

	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	ideas, err := st.LoadIdeas()
	if err != nil {
		t.Fatalf("LoadIdeas: %v", err)
	}
	if ideas == nil || len(ideas) != 0 {
		t.Errorf("ideas = %v, want empty non-nil slice", ideas)
	}

	projects, err := st.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("projects = %v, want empty", projects)
	}

	tasks, err := st.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %v, want empty", tasks)
	}
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "vault")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	idea, err := models.NewIdea("persist me")
	if err != nil {
		t.Fatal(err)
	}
	idea.WithDescription("a longer body").WithTags([]string{"go", "storage"})

	if err := st.SaveIdeas([]models.Idea{*idea}); err != nil {
		t.Fatalf("SaveIdeas: %v", err)
	}

	// Re-open to prove it came off disk, not from memory.
	st2, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := st2.LoadIdeas()
	if err != nil {
		t.Fatalf("LoadIdeas: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d ideas, want 1", len(got))
	}
	if got[0].ID != idea.ID || got[0].Title != idea.Title {
		t.Errorf("round-trip mismatch: %+v", got[0])
	}
	if len(got[0].Tags) != 2 || got[0].Tags[0] != "go" {
		t.Errorf("tags = %v, want [go storage]", got[0].Tags)
	}
	if !got[0].CreatedAt.Equal(idea.CreatedAt) || !got[0].UpdatedAt.Equal(idea.UpdatedAt) {
		t.Error("timestamps did not survive the round trip")
	}
}

func TestFileStoreSaveAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	idea, _ := models.NewIdea("an idea")
	project, _ := models.NewProject("a project")
	task, _ := models.NewTask("a task")

	err = st.SaveAll(
		[]models.Idea{*idea},
		[]models.Project{*project},
		[]models.Task{*task},
	)
	if err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	for _, name := range []string{"ideas.json", "projects.json", "tasks.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	tasks, err := st.LoadTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("tasks = %+v, want the saved task", tasks)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ideas.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.LoadIdeas(); err == nil {
		t.Error("expected an error loading a corrupt file")
	}
}
