package vault

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/storage"
)

func newTestVault(t *testing.T) (*Vault, *storage.MemStore) {
	t.Helper()
	st := storage.NewMemStore()
	return New(st), st
}

func strPtr(s string) *string { return &s }

func TestCreateIdea(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{
		Title:       "Solar garden lights",
		Description: "cheap panels plus LEDs",
		Tags:        []string{"hardware", "garden"},
	})
	if err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}
	if idea.Status != models.IdeaBrainstorming {
		t.Errorf("status = %q, want default", idea.Status)
	}
	if len(st.Ideas) != 1 {
		t.Fatalf("store holds %d ideas, want 1", len(st.Ideas))
	}
	if st.Ideas[0].ID != idea.ID {
		t.Error("persisted idea does not match returned idea")
	}
}

func TestCreateIdeaInvalid(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	if _, err := v.CreateIdea(CreateIdeaParams{Title: "  "}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("blank title err = %v, want validation error", err)
	}
	if _, err := v.CreateIdea(CreateIdeaParams{Title: "ok", Status: "Dreaming"}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("bad status err = %v, want validation error", err)
	}
	if len(st.Ideas) != 0 {
		t.Errorf("store holds %d ideas after rejected creates, want 0", len(st.Ideas))
	}
}

func TestGetIdeaNotFound(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	if _, err := v.GetIdea(uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want not-found error", err)
	}
}

func TestUpdateIdea(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{
		Title:       "original",
		Description: "original body",
		Tags:        []string{"one"},
	})
	if err != nil {
		t.Fatal(err)
	}

	status := models.IdeaActive
	got, err := v.UpdateIdea(idea.ID, IdeaUpdate{
		Title:   strPtr("renamed"),
		Status:  &status,
		AddTags: []string{"two"},
	})
	if err != nil {
		t.Fatalf("UpdateIdea: %v", err)
	}
	if got.Title != "renamed" || got.Status != models.IdeaActive {
		t.Errorf("update not applied: %+v", got)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags = %v, want [one two]", got.Tags)
	}
}

func TestUpdateIdeaClear(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{
		Title:       "keep title",
		Description: "drop this",
		Tags:        []string{"a", "b"},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := v.UpdateIdea(idea.ID, IdeaUpdate{Clear: []string{"description"}})
	if err != nil {
		t.Fatalf("UpdateIdea: %v", err)
	}
	if got.Description != "" {
		t.Errorf("description = %q, want cleared", got.Description)
	}
	if got.Title != "keep title" || len(got.Tags) != 2 {
		t.Errorf("clear touched other fields: %+v", got)
	}
}

func TestUpdateIdeaClearBeatsSet(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "order check"})
	if err != nil {
		t.Fatal(err)
	}

	// Clears run after sets, so setting and clearing the same field in
	// one update ends with the field blank.
	got, err := v.UpdateIdea(idea.ID, IdeaUpdate{
		Description: strPtr("new body"),
		Clear:       []string{"description"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "" {
		t.Errorf("description = %q, want cleared", got.Description)
	}
}

func TestUpdateIdeaClearUnknownField(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "bad clear"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.UpdateIdea(idea.ID, IdeaUpdate{Clear: []string{"title"}}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("err = %v, want validation error for unclearable field", err)
	}
}

func TestDeleteIdeaCascades(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "doomed"})
	if err != nil {
		t.Fatal(err)
	}
	project, err := v.CreateProject(CreateProjectParams{Title: "survivor"})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
		t.Fatal(err)
	}
	task, err := v.CreateTask(CreateTaskParams{Title: "task on idea", IdeaID: &idea.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.DeleteIdea(idea.ID); err != nil {
		t.Fatalf("DeleteIdea: %v", err)
	}

	if len(st.Ideas) != 0 {
		t.Errorf("ideas = %+v, want empty", st.Ideas)
	}
	gotProject, err := v.GetProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotProject.HasIdea(idea.ID) {
		t.Error("project still references the deleted idea")
	}
	gotTask, err := v.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotTask.IdeaID != nil {
		t.Errorf("task idea link = %v, want nil", gotTask.IdeaID)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	project, err := v.CreateProject(CreateProjectParams{Title: "doomed"})
	if err != nil {
		t.Fatal(err)
	}
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "survivor"})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
		t.Fatal(err)
	}
	task, err := v.CreateTask(CreateTaskParams{Title: "task on project", ProjectID: &project.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.DeleteProject(project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	if len(st.Projects) != 0 {
		t.Errorf("projects = %+v, want empty", st.Projects)
	}
	gotIdea, err := v.GetIdea(idea.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotIdea.ProjectID != nil {
		t.Errorf("idea project link = %v, want nil", gotIdea.ProjectID)
	}
	gotTask, err := v.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotTask.ProjectID != nil {
		t.Errorf("task project link = %v, want nil", gotTask.ProjectID)
	}
}

func TestDeleteTaskNoCascade(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	project, err := v.CreateProject(CreateProjectParams{Title: "untouched"})
	if err != nil {
		t.Fatal(err)
	}
	task, err := v.CreateTask(CreateTaskParams{Title: "doomed", ProjectID: &project.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(st.Tasks) != 0 {
		t.Errorf("tasks = %+v, want empty", st.Tasks)
	}
	if _, err := v.GetProject(project.ID); err != nil {
		t.Errorf("project should survive task deletion: %v", err)
	}
}

func TestCreateTaskDanglingLink(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	missing := uuid.New()
	if _, err := v.CreateTask(CreateTaskParams{Title: "orphan", ProjectID: &missing}); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want not-found error", err)
	}
	if len(st.Tasks) != 0 {
		t.Errorf("store holds %d tasks after rejected create, want 0", len(st.Tasks))
	}
}

func TestSaveFailureLeavesStateAlone(t *testing.T) {
	t.Parallel()

	v, st := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "sticky"})
	if err != nil {
		t.Fatal(err)
	}

	st.SaveErr = errors.New("disk full")
	if _, err := v.UpdateIdea(idea.ID, IdeaUpdate{Title: strPtr("renamed")}); err == nil {
		t.Fatal("expected save failure to surface")
	}
	st.SaveErr = nil

	got, err := v.GetIdea(idea.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "sticky" {
		t.Errorf("title = %q after failed save, want original", got.Title)
	}
}
