package models

import (
	"strings"
	"time"

	"github.com/tgienger/ideavault/internal/errs"
)

// Kind identifies which collection an entity belongs to.
type Kind string

const (
	KindIdea    Kind = "idea"
	KindProject Kind = "project"
	KindTask    Kind = "task"
)

func now() time.Time {
	return time.Now().UTC()
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Validationf("title must not be empty")
	}
	return nil
}

// dedupeTags collapses duplicates while keeping first-seen order. Tags are
// case-sensitive. Always returns a non-nil slice so collections round-trip
// through JSON unchanged.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func removeTag(tags []string, tag string) ([]string, bool) {
	for i, t := range tags {
		if t == tag {
			return append(tags[:i], tags[i+1:]...), true
		}
	}
	return tags, false
}
