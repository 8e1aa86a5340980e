package vault

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/tgienger/ideavault/internal/models"
)

func seedSearchVault(t *testing.T) *Vault {
	t.Helper()
	v, _ := newTestVault(t)

	if _, err := v.CreateIdea(CreateIdeaParams{
		Title:       "Garden automation",
		Description: "drip irrigation on a timer",
		Tags:        []string{"garden", "hardware"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateIdea(CreateIdeaParams{
		Title: "Learn woodworking",
		Tags:  []string{"craft"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateProject(CreateProjectParams{
		Title:     "Garden overhaul",
		Milestone: "raised beds built",
		Tags:      []string{"garden"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateTask(CreateTaskParams{
		Title:       "Order garden soil",
		Description: "two cubic yards",
	}); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSearchGroupsByKind(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)
	results, err := v.Search("garden", SearchOptions{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantKinds := []models.Kind{models.KindIdea, models.KindProject, models.KindTask}
	for i, want := range wantKinds {
		if results[i].Kind != want {
			t.Errorf("results[%d].Kind = %q, want %q", i, results[i].Kind, want)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)
	for _, q := range []string{"GARDEN", "Garden", "gArDeN"} {
		results, err := v.Search(q, SearchOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 3 {
			t.Errorf("Search(%q) = %d results, want 3", q, len(results))
		}
	}
}

func TestSearchScopes(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)

	results, err := v.Search("garden", SearchOptions{Scope: ScopeIdeas})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != models.KindIdea {
		t.Errorf("ideas scope = %+v", results)
	}

	results, err = v.Search("garden", SearchOptions{Scope: ScopeProjects})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != models.KindProject {
		t.Errorf("projects scope = %+v", results)
	}

	// Tags scope ignores titles and descriptions: the task matches on
	// title only, so it drops out.
	results, err = v.Search("garden", SearchOptions{Scope: ScopeTags})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("tags scope = %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Kind == models.KindTask {
			t.Error("tags scope matched a task with no garden tag")
		}
	}
}

func TestSearchEmptyQueryFilters(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)

	// No query and no filters returns everything.
	results, err := v.Search("", SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Errorf("got %d results, want all 4", len(results))
	}

	// No query with a tag filter is pure filtering.
	results, err = v.Search("", SearchOptions{WithTags: []string{"garden"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2 tagged garden", len(results))
	}
}

func TestSearchStatusSubstring(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)

	// "brain" matches Brainstorming case-insensitively.
	results, err := v.Search("", SearchOptions{Scope: ScopeIdeas, Status: "brain"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want both brainstorming ideas", len(results))
	}
}

func TestSearchDateRange(t *testing.T) {
	t.Parallel()

	v := seedSearchVault(t)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	results, err := v.Search("", SearchOptions{From: &past, To: &future})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Errorf("in-range window = %d results, want 4", len(results))
	}

	results, err = v.Search("", SearchOptions{To: &past})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("out-of-range window = %d results, want 0", len(results))
	}
}

func TestSearchScoresAndSnippets(t *testing.T) {
	t.Parallel()

	v, _ := newTestVault(t)
	if _, err := v.CreateIdea(CreateIdeaParams{Title: "garden"}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateIdea(CreateIdeaParams{Title: "garden tools"}); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateIdea(CreateIdeaParams{Title: "my garden plan"}); err != nil {
		t.Fatal(err)
	}

	results, err := v.Search("garden", SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Exact > prefix > substring, but order stays by storage position.
	if !(results[0].Score > results[1].Score && results[1].Score > results[2].Score) {
		t.Errorf("scores = %v, %v, %v; want strictly decreasing here",
			results[0].Score, results[1].Score, results[2].Score)
	}
	for _, r := range results {
		if !strings.Contains(strings.ToLower(r.Snippet), "garden") {
			t.Errorf("snippet %q does not show the match", r.Snippet)
		}
	}
}

func TestMakeSnippetMultibyte(t *testing.T) {
	t.Parallel()

	// A match past the window size, preceded by multi-byte runes: the
	// window must cut on rune boundaries.
	text := strings.Repeat("é", 60) + "garden beds " + strings.Repeat("ü", 60)
	got := makeSnippet(text, "garden")
	if !utf8.ValidString(got) {
		t.Fatalf("snippet is not valid UTF-8: %q", got)
	}
	if !strings.Contains(got, "garden") {
		t.Errorf("snippet %q does not contain the match", got)
	}
	if !strings.HasPrefix(got, "...") {
		t.Errorf("snippet %q should be elided at the front", got)
	}

	// Case-folded match inside multi-byte text.
	got = makeSnippet("Früher GARTEN später", "garten")
	if !strings.Contains(got, "GARTEN") {
		t.Errorf("snippet %q lost the original-case match", got)
	}

	// A fold that changes length falls back to the whole text rather
	// than slicing at a misaligned offset.
	got = makeSnippet("İstanbul", strings.ToLower("İstanbul"))
	if !utf8.ValidString(got) {
		t.Errorf("snippet is not valid UTF-8: %q", got)
	}
}
