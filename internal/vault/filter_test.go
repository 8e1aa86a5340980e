package vault

import (
	"errors"
	"testing"
	"time"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

func mustIdea(t *testing.T, title string, status models.IdeaStatus, tags ...string) models.Idea {
	t.Helper()
	idea, err := models.NewIdea(title)
	if err != nil {
		t.Fatal(err)
	}
	idea.WithStatus(status).WithTags(tags)
	return *idea
}

func TestFilterIdeas(t *testing.T) {
	t.Parallel()

	ideas := []models.Idea{
		mustIdea(t, "one", models.IdeaActive, "go"),
		mustIdea(t, "two", models.IdeaBrainstorming, "go", "cli"),
		mustIdea(t, "three", models.IdeaActive, "rust"),
	}

	active := models.IdeaActive
	got, err := FilterIdeas(ideas, IdeaFilter{Status: &active})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "three" {
		t.Errorf("status filter = %v", titles(got))
	}

	got, err = FilterIdeas(ideas, IdeaFilter{Tag: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "two" {
		t.Errorf("tag filter = %v", titles(got))
	}

	// Conjunction: both must hold.
	got, err = FilterIdeas(ideas, IdeaFilter{Status: &active, Tag: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "one" {
		t.Errorf("conjunction = %v", titles(got))
	}

	// Tag matching is exact and case-sensitive.
	got, err = FilterIdeas(ideas, IdeaFilter{Tag: "GO"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("case-sensitive tag filter = %v, want none", titles(got))
	}
}

func titles(ideas []models.Idea) []string {
	out := make([]string, len(ideas))
	for i, idea := range ideas {
		out[i] = idea.Title
	}
	return out
}

func TestFilterIdeasInvalidStatus(t *testing.T) {
	t.Parallel()

	bogus := models.IdeaStatus("Percolating")
	if _, err := FilterIdeas(nil, IdeaFilter{Status: &bogus}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestFilterTasksOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)

	mk := func(title string, due *time.Time, status models.TaskStatus) models.Task {
		task, err := models.NewTask(title)
		if err != nil {
			t.Fatal(err)
		}
		task.Status = status
		if due != nil {
			task.SetDueDate(*due)
		}
		return *task
	}

	tasks := []models.Task{
		mk("late", &past, models.TaskTodo),
		mk("on time", &future, models.TaskTodo),
		mk("late but done", &past, models.TaskDone),
		mk("no due", nil, models.TaskTodo),
	}

	got, err := filterTasksAt(tasks, TaskFilter{Overdue: true}, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "late" {
		t.Errorf("overdue filter returned %d tasks: %+v", len(got), got)
	}
}

func TestFilterTasksByLink(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	project, err := v.CreateProject(CreateProjectParams{Title: "target"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateTask(CreateTaskParams{Title: "in", ProjectID: &project.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateTask(CreateTaskParams{Title: "out"}); err != nil {
		t.Fatal(err)
	}

	got, err := v.ListTasks(TaskFilter{ProjectID: &project.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "in" {
		t.Errorf("project filter returned %d tasks", len(got))
	}
}

func TestFilterTasksInvalidEnum(t *testing.T) {
	t.Parallel()

	badStatus := models.TaskStatus("waiting")
	if _, err := FilterTasks(nil, TaskFilter{Status: &badStatus}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("status err = %v, want validation error", err)
	}
	badPriority := models.TaskPriority("asap")
	if _, err := FilterTasks(nil, TaskFilter{Priority: &badPriority}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("priority err = %v, want validation error", err)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	ideas := []models.Idea{
		mustIdea(t, "z", models.IdeaActive),
		mustIdea(t, "a", models.IdeaActive),
		mustIdea(t, "m", models.IdeaActive),
	}
	got, err := FilterIdeas(ideas, IdeaFilter{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("order = %v, want %v", titles(got), want)
		}
	}
}
