package models

import (
	"errors"
	"testing"
	"time"

	"github.com/tgienger/ideavault/internal/errs"
)

func TestNewIdea(t *testing.T) {
	t.Parallel()

	idea, err := NewIdea("Build a birdhouse")
	if err != nil {
		t.Fatalf("NewIdea: %v", err)
	}
	if idea.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a non-zero id")
	}
	if idea.Status != IdeaBrainstorming {
		t.Errorf("status = %q, want %q", idea.Status, IdeaBrainstorming)
	}
	if idea.Tags == nil || len(idea.Tags) != 0 {
		t.Errorf("tags = %v, want empty non-nil slice", idea.Tags)
	}
	if !idea.CreatedAt.Equal(idea.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", idea.CreatedAt, idea.UpdatedAt)
	}
	if idea.CreatedAt.Location() != time.UTC {
		t.Errorf("created_at location = %v, want UTC", idea.CreatedAt.Location())
	}
}

func TestNewIdeaEmptyTitle(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := NewIdea(title); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("NewIdea(%q) err = %v, want validation error", title, err)
		}
	}
}

func TestIdeaSetStatusTouches(t *testing.T) {
	t.Parallel()

	idea, err := NewIdea("touch check")
	if err != nil {
		t.Fatal(err)
	}
	created := idea.CreatedAt
	before := idea.UpdatedAt
	time.Sleep(time.Millisecond)

	// Setting the same value still counts as a modification.
	if err := idea.SetStatus(IdeaBrainstorming); err != nil {
		t.Fatal(err)
	}
	if !idea.UpdatedAt.After(before) {
		t.Errorf("updated_at %v not after %v", idea.UpdatedAt, before)
	}
	if !idea.CreatedAt.Equal(created) {
		t.Error("created_at must not move")
	}
}

func TestIdeaSetStatusInvalid(t *testing.T) {
	t.Parallel()

	idea, err := NewIdea("status check")
	if err != nil {
		t.Fatal(err)
	}
	if err := idea.SetStatus("Sleeping"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
	if idea.Status != IdeaBrainstorming {
		t.Errorf("status changed to %q after rejected set", idea.Status)
	}
}

func TestIdeaTags(t *testing.T) {
	t.Parallel()

	idea, err := NewIdea("tag check")
	if err != nil {
		t.Fatal(err)
	}

	idea.SetTags([]string{"go", "cli", "go", "CLI"})
	want := []string{"go", "cli", "CLI"}
	if len(idea.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", idea.Tags, want)
	}
	for i := range want {
		if idea.Tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", idea.Tags, want)
		}
	}

	before := idea.UpdatedAt
	time.Sleep(time.Millisecond)
	idea.AddTag("go") // already present, no-op
	if !idea.UpdatedAt.Equal(before) {
		t.Error("adding an existing tag must not touch updated_at")
	}
	idea.RemoveTag("rust") // absent, no-op
	if !idea.UpdatedAt.Equal(before) {
		t.Error("removing an absent tag must not touch updated_at")
	}

	idea.AddTag("terminal")
	if !containsTag(idea.Tags, "terminal") {
		t.Errorf("tags = %v, want terminal present", idea.Tags)
	}
	if !idea.UpdatedAt.After(before) {
		t.Error("adding a new tag must touch updated_at")
	}
}

func TestParseIdeaStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want IdeaStatus
	}{
		{"brainstorming", IdeaBrainstorming},
		{"brainstorm", IdeaBrainstorming},
		{"bs", IdeaBrainstorming},
		{"Active", IdeaActive},
		{"a", IdeaActive},
		{"completed", IdeaCompleted},
		{"complete", IdeaCompleted},
		{"d", IdeaCompleted},
		{"ARCHIVED", IdeaArchived},
		{"archive", IdeaArchived},
		{"ar", IdeaArchived},
	}
	for _, tt := range tests {
		got, err := ParseIdeaStatus(tt.in)
		if err != nil {
			t.Errorf("ParseIdeaStatus(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIdeaStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseIdeaStatus("bogus"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("ParseIdeaStatus(bogus) err = %v, want validation error", err)
	}
}
