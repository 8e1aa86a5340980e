package vault

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/models"
)

// Scope selects which entity kinds a search looks at. ScopeTags matches
// against tag text only but still considers every kind.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeIdeas
	ScopeProjects
	ScopeTasks
	ScopeTags
)

// SearchOptions filter search hits independently of the query text. Both
// the query match and every supplied filter must hold.
type SearchOptions struct {
	Scope Scope

	// Status narrows by lifecycle stage, matched as a case-insensitive
	// substring of the entity's status name.
	Status string

	// WithTags requires the entity's tag set to contain every listed tag.
	WithTags []string

	// From and To bound the creation timestamp, inclusive at both ends.
	// Either side may be nil to leave that side open.
	From *time.Time
	To   *time.Time
}

// SearchResult is one hit. Score and Snippet exist for display; they never
// affect result order.
type SearchResult struct {
	Kind        models.Kind
	ID          uuid.UUID
	Title       string
	Description string
	Status      string
	Tags        []string
	CreatedAt   time.Time
	Score       float64
	Snippet     string
}

// Search returns all entities in scope whose title, description, or tags
// contain the query, case-insensitively. An empty query matches everything
// in scope, turning the call into pure filtering. Results are grouped by
// kind (ideas, then projects, then tasks) and keep stored creation order
// within each group.
func (v *Vault) Search(query string, opts SearchOptions) ([]SearchResult, error) {
	results := []SearchResult{}

	if opts.Scope == ScopeAll || opts.Scope == ScopeIdeas || opts.Scope == ScopeTags {
		ideas, err := v.store.LoadIdeas()
		if err != nil {
			return nil, err
		}
		for _, idea := range ideas {
			if !matchesOptions(string(idea.Status), idea.Tags, idea.CreatedAt, opts) {
				continue
			}
			doc := document{title: idea.Title, desc: idea.Description, tags: idea.Tags}
			score, snippet, ok := scoreDocument(doc, query, opts.Scope == ScopeTags)
			if !ok {
				continue
			}
			results = append(results, SearchResult{
				Kind:        models.KindIdea,
				ID:          idea.ID,
				Title:       idea.Title,
				Description: idea.Description,
				Status:      string(idea.Status),
				Tags:        idea.Tags,
				CreatedAt:   idea.CreatedAt,
				Score:       score,
				Snippet:     snippet,
			})
		}
	}

	if opts.Scope == ScopeAll || opts.Scope == ScopeProjects || opts.Scope == ScopeTags {
		projects, err := v.store.LoadProjects()
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			if !matchesOptions(string(p.Status), p.Tags, p.CreatedAt, opts) {
				continue
			}
			doc := document{title: p.Title, desc: p.Description, milestone: p.Milestone, tags: p.Tags}
			score, snippet, ok := scoreDocument(doc, query, opts.Scope == ScopeTags)
			if !ok {
				continue
			}
			results = append(results, SearchResult{
				Kind:        models.KindProject,
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Status:      string(p.Status),
				Tags:        p.Tags,
				CreatedAt:   p.CreatedAt,
				Score:       score,
				Snippet:     snippet,
			})
		}
	}

	if opts.Scope == ScopeAll || opts.Scope == ScopeTasks || opts.Scope == ScopeTags {
		tasks, err := v.store.LoadTasks()
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if !matchesOptions(string(t.Status), t.Tags, t.CreatedAt, opts) {
				continue
			}
			doc := document{title: t.Title, desc: t.Description, tags: t.Tags}
			score, snippet, ok := scoreDocument(doc, query, opts.Scope == ScopeTags)
			if !ok {
				continue
			}
			results = append(results, SearchResult{
				Kind:        models.KindTask,
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Status:      string(t.Status),
				Tags:        t.Tags,
				CreatedAt:   t.CreatedAt,
				Score:       score,
				Snippet:     snippet,
			})
		}
	}

	return results, nil
}

// document is the searchable text of one entity.
type document struct {
	title     string
	desc      string
	milestone string
	tags      []string
}

// scoreDocument reports whether the query hits the document and how
// strongly. Weights follow the relevance model: exact title 100, title
// prefix 80, title substring 60, description 40, milestone 30, each tag
// 20. An empty query matches with score zero.
func scoreDocument(doc document, query string, tagsOnly bool) (float64, string, bool) {
	if query == "" {
		return 0, "", true
	}
	q := strings.ToLower(query)
	score := 0.0
	snippet := ""

	if !tagsOnly {
		title := strings.ToLower(doc.title)
		if strings.Contains(title, q) {
			switch {
			case title == q:
				score += 100
			case strings.HasPrefix(title, q):
				score += 80
			default:
				score += 60
			}
			snippet = makeSnippet(doc.title, q)
		}
		if doc.desc != "" && strings.Contains(strings.ToLower(doc.desc), q) {
			score += 40
			if snippet == "" {
				snippet = makeSnippet(doc.desc, q)
			}
		}
		if doc.milestone != "" && strings.Contains(strings.ToLower(doc.milestone), q) {
			score += 30
			if snippet == "" {
				snippet = fmt.Sprintf("Milestone: %s", doc.milestone)
			}
		}
	}
	for _, tag := range doc.tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += 20
			if snippet == "" {
				snippet = fmt.Sprintf("Tag: %s", tag)
			}
		}
	}

	return score, snippet, score > 0
}

// makeSnippet extracts a window of text around the first match. It works
// in runes, lowered one rune at a time so positions in the folded text
// line up with positions in the original.
func makeSnippet(text, queryLower string) string {
	textRunes := []rune(text)
	lowered := make([]rune, len(textRunes))
	for i, r := range textRunes {
		lowered[i] = unicode.ToLower(r)
	}

	pos := runeIndex(lowered, []rune(queryLower))
	if pos < 0 {
		return text
	}
	start := max(pos-50, 0)
	end := min(pos+len([]rune(queryLower))+50, len(textRunes))
	snippet := string(textRunes[start:end])
	if start > 0 {
		return "..." + snippet
	}
	return snippet
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func matchesOptions(status string, tags []string, createdAt time.Time, opts SearchOptions) bool {
	if opts.Status != "" &&
		!strings.Contains(strings.ToLower(status), strings.ToLower(opts.Status)) {
		return false
	}
	for _, want := range opts.WithTags {
		if !hasTag(tags, want) {
			return false
		}
	}
	if opts.From != nil && createdAt.Before(*opts.From) {
		return false
	}
	if opts.To != nil && createdAt.After(*opts.To) {
		return false
	}
	return true
}
