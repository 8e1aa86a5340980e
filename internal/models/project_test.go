package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/errs"
)

func TestNewProject(t *testing.T) {
	t.Parallel()

	p, err := NewProject("Garden overhaul")
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if p.Status != ProjectPlanning {
		t.Errorf("status = %q, want %q", p.Status, ProjectPlanning)
	}
	if p.IdeaIDs == nil || len(p.IdeaIDs) != 0 {
		t.Errorf("idea ids = %v, want empty non-nil slice", p.IdeaIDs)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestProjectIdeaSet(t *testing.T) {
	t.Parallel()

	p, err := NewProject("idea set")
	if err != nil {
		t.Fatal(err)
	}
	a, b := uuid.New(), uuid.New()

	p.AddIdea(a)
	p.AddIdea(b)
	p.AddIdea(a) // duplicate, ignored
	if p.IdeaCount() != 2 {
		t.Fatalf("IdeaCount = %d, want 2", p.IdeaCount())
	}
	if !p.HasIdea(a) || !p.HasIdea(b) {
		t.Error("both ids should be present")
	}

	p.RemoveIdea(a)
	if p.HasIdea(a) {
		t.Error("a should be gone")
	}
	if p.IdeaCount() != 1 {
		t.Errorf("IdeaCount = %d, want 1", p.IdeaCount())
	}

	p.RemoveIdea(a) // already gone, no-op
	if p.IdeaCount() != 1 {
		t.Errorf("IdeaCount = %d after double remove, want 1", p.IdeaCount())
	}
}

func TestProjectBuilders(t *testing.T) {
	t.Parallel()

	p, err := NewProject("builders")
	if err != nil {
		t.Fatal(err)
	}
	p.WithDescription("a description").
		WithMilestone("v1").
		WithURL("https://example.com").
		WithRepo("https://example.com/repo.git")

	if p.Description != "a description" || p.Milestone != "v1" {
		t.Errorf("builders did not apply: %+v", p)
	}
	if p.URL != "https://example.com" || p.Repo != "https://example.com/repo.git" {
		t.Errorf("builders did not apply: %+v", p)
	}
}

func TestParseProjectStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want ProjectStatus
	}{
		{"planning", ProjectPlanning},
		{"plan", ProjectPlanning},
		{"p", ProjectPlanning},
		{"InProgress", ProjectInProgress},
		{"in-progress", ProjectInProgress},
		{"ip", ProjectInProgress},
		{"completed", ProjectCompleted},
		{"d", ProjectCompleted},
		{"onhold", ProjectOnHold},
		{"on-hold", ProjectOnHold},
		{"hold", ProjectOnHold},
		{"h", ProjectOnHold},
	}
	for _, tt := range tests {
		got, err := ParseProjectStatus(tt.in)
		if err != nil {
			t.Errorf("ParseProjectStatus(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProjectStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseProjectStatus("paused"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("ParseProjectStatus(paused) err = %v, want validation error", err)
	}
}
