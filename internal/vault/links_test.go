package vault

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
)

func TestLinkIdeaToProject(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "linked idea"})
	if err != nil {
		t.Fatal(err)
	}
	project, err := v.CreateProject(CreateProjectParams{Title: "linked project"})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
		t.Fatalf("LinkIdeaToProject: %v", err)
	}

	gotIdea, err := v.GetIdea(idea.ID)
	if err != nil {
		t.Fatal(err)
	}
	gotProject, err := v.GetProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotIdea.ProjectID == nil || *gotIdea.ProjectID != project.ID {
		t.Errorf("idea side = %v, want %v", gotIdea.ProjectID, project.ID)
	}
	if !gotProject.HasIdea(idea.ID) {
		t.Error("project side missing the idea")
	}

	// Linking the same pair again changes nothing.
	if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
		t.Fatalf("re-link: %v", err)
	}
	gotProject, err = v.GetProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotProject.IdeaCount() != 1 {
		t.Errorf("IdeaCount = %d after re-link, want 1", gotProject.IdeaCount())
	}
}

func TestLinkIdeaMovesBetweenProjects(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "wanderer"})
	if err != nil {
		t.Fatal(err)
	}
	first, err := v.CreateProject(CreateProjectParams{Title: "first home"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := v.CreateProject(CreateProjectParams{Title: "second home"})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.LinkIdeaToProject(first.ID, idea.ID); err != nil {
		t.Fatal(err)
	}
	if err := v.LinkIdeaToProject(second.ID, idea.ID); err != nil {
		t.Fatal(err)
	}

	gotFirst, err := v.GetProject(first.ID)
	if err != nil {
		t.Fatal(err)
	}
	gotSecond, err := v.GetProject(second.ID)
	if err != nil {
		t.Fatal(err)
	}
	gotIdea, err := v.GetIdea(idea.ID)
	if err != nil {
		t.Fatal(err)
	}

	if gotFirst.HasIdea(idea.ID) {
		t.Error("old project still holds the idea")
	}
	if !gotSecond.HasIdea(idea.ID) {
		t.Error("new project missing the idea")
	}
	if gotIdea.ProjectID == nil || *gotIdea.ProjectID != second.ID {
		t.Errorf("idea side = %v, want %v", gotIdea.ProjectID, second.ID)
	}
}

func TestLinkIdeaMissingEndpoint(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	project, err := v.CreateProject(CreateProjectParams{Title: "lonely"})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.LinkIdeaToProject(project.ID, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing idea err = %v, want not-found", err)
	}
	if err := v.LinkIdeaToProject(uuid.New(), uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing project err = %v, want not-found", err)
	}
}

func TestUnlinkIdeaFromProject(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	idea, err := v.CreateIdea(CreateIdeaParams{Title: "detachable"})
	if err != nil {
		t.Fatal(err)
	}
	project, err := v.CreateProject(CreateProjectParams{Title: "holder"})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
		t.Fatal(err)
	}

	if err := v.UnlinkIdeaFromProject(project.ID, idea.ID); err != nil {
		t.Fatalf("UnlinkIdeaFromProject: %v", err)
	}
	gotIdea, err := v.GetIdea(idea.ID)
	if err != nil {
		t.Fatal(err)
	}
	gotProject, err := v.GetProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gotIdea.ProjectID != nil || gotProject.HasIdea(idea.ID) {
		t.Error("link still present after unlink")
	}

	// Unlinking a pair that is not linked is a quiet no-op.
	if err := v.UnlinkIdeaFromProject(project.ID, idea.ID); err != nil {
		t.Errorf("repeat unlink: %v", err)
	}
}

func TestTaskLinksReplaceSilently(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	task, err := v.CreateTask(CreateTaskParams{Title: "mobile"})
	if err != nil {
		t.Fatal(err)
	}
	first, err := v.CreateProject(CreateProjectParams{Title: "p1"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := v.CreateProject(CreateProjectParams{Title: "p2"})
	if err != nil {
		t.Fatal(err)
	}

	if err := v.LinkTaskToProject(task.ID, first.ID); err != nil {
		t.Fatal(err)
	}
	if err := v.LinkTaskToProject(task.ID, second.ID); err != nil {
		t.Fatal(err)
	}

	got, err := v.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ProjectID == nil || *got.ProjectID != second.ID {
		t.Errorf("project link = %v, want %v", got.ProjectID, second.ID)
	}
}

func TestUnlinkTaskIdempotent(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	task, err := v.CreateTask(CreateTaskParams{Title: "loose"})
	if err != nil {
		t.Fatal(err)
	}

	// Nothing linked yet; both unlinks are no-ops.
	if err := v.UnlinkTaskFromProject(task.ID); err != nil {
		t.Errorf("UnlinkTaskFromProject: %v", err)
	}
	if err := v.UnlinkTaskFromIdea(task.ID); err != nil {
		t.Errorf("UnlinkTaskFromIdea: %v", err)
	}

	// But the task itself must exist.
	if err := v.UnlinkTaskFromProject(uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestProjectIdeasKeepsLinkOrder(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	project, err := v.CreateProject(CreateProjectParams{Title: "ordered"})
	if err != nil {
		t.Fatal(err)
	}

	titles := []string{"gamma", "alpha", "beta"}
	for _, title := range titles {
		idea, err := v.CreateIdea(CreateIdeaParams{Title: title})
		if err != nil {
			t.Fatal(err)
		}
		if err := v.LinkIdeaToProject(project.ID, idea.ID); err != nil {
			t.Fatal(err)
		}
	}

	got, err := v.ProjectIdeas(project.ID)
	if err != nil {
		t.Fatalf("ProjectIdeas: %v", err)
	}
	if len(got) != len(titles) {
		t.Fatalf("got %d ideas, want %d", len(got), len(titles))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("ideas[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}
