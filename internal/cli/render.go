package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tgienger/ideavault/internal/config"
	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/vault"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

// disableColors swaps every style for a plain one.
func disableColors() {
	plain := lipgloss.NewStyle()
	titleStyle = plain
	dimStyle = plain
	tagStyle = plain
	warnStyle = plain
	overdueStyle = plain
}

// dateFormats mirrors the accepted input formats for --due, --from, --to.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04:05",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, errs.Validationf("unable to parse date %q, expected formats: YYYY-MM-DD, YYYY/MM/DD, MM/DD/YYYY", s)
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.Validationf("invalid id %q", s)
	}
	return id, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tagStyle.Render("[" + strings.Join(tags, ", ") + "]")
}

func renderTimestamps(createdAt, updatedAt time.Time) string {
	if !cfg.Output.Timestamps {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("created %s, updated %s",
		createdAt.Local().Format("2006-01-02 15:04"),
		updatedAt.Local().Format("2006-01-02 15:04")))
}

func printIdeaSummary(idea *models.Idea) {
	fmt.Printf("%s %s %s %s\n",
		dimStyle.Render(shortID(idea.ID)),
		titleStyle.Render(idea.Title),
		dimStyle.Render("("+string(idea.Status)+")"),
		renderTags(idea.Tags))
}

func printIdeaFull(idea *models.Idea) {
	fmt.Println(titleStyle.Render(idea.Title))
	fmt.Println(dimStyle.Render("ID: " + idea.ID.String()))
	fmt.Println("Status:", idea.Status)
	if idea.Description != "" {
		fmt.Println("Description:", idea.Description)
	}
	if len(idea.Tags) > 0 {
		fmt.Println("Tags:", strings.Join(idea.Tags, ", "))
	}
	if idea.ProjectID != nil {
		fmt.Println("Project:", idea.ProjectID.String())
	}
	if ts := renderTimestamps(idea.CreatedAt, idea.UpdatedAt); ts != "" {
		fmt.Println(ts)
	}
}

func printProjectSummary(p *models.Project) {
	extra := ""
	if n := p.IdeaCount(); n > 0 {
		extra = dimStyle.Render(fmt.Sprintf("%d idea(s)", n))
	}
	fmt.Printf("%s %s %s %s %s\n",
		dimStyle.Render(shortID(p.ID)),
		titleStyle.Render(p.Title),
		dimStyle.Render("("+string(p.Status)+")"),
		renderTags(p.Tags),
		extra)
}

func printProjectFull(p *models.Project) {
	fmt.Println(titleStyle.Render(p.Title))
	fmt.Println(dimStyle.Render("ID: " + p.ID.String()))
	fmt.Println("Status:", p.Status)
	if p.Description != "" {
		fmt.Println("Description:", p.Description)
	}
	if p.Milestone != "" {
		fmt.Println("Milestone:", p.Milestone)
	}
	if p.URL != "" {
		fmt.Println("URL:", p.URL)
	}
	if p.Repo != "" {
		fmt.Println("Repo:", p.Repo)
	}
	if len(p.Tags) > 0 {
		fmt.Println("Tags:", strings.Join(p.Tags, ", "))
	}
	fmt.Printf("Ideas: %d linked\n", p.IdeaCount())
	if ts := renderTimestamps(p.CreatedAt, p.UpdatedAt); ts != "" {
		fmt.Println(ts)
	}
}

func printTaskSummary(t *models.Task) {
	due := ""
	if t.DueDate != nil {
		label := "due " + t.DueDate.Format("2006-01-02")
		if t.Overdue(time.Now()) {
			due = overdueStyle.Render(label + " (overdue)")
		} else {
			due = warnStyle.Render(label)
		}
	}
	fmt.Printf("%s %s %s %s %s\n",
		dimStyle.Render(shortID(t.ID)),
		titleStyle.Render(t.Title),
		dimStyle.Render("("+string(t.Status)+"/"+string(t.Priority)+")"),
		renderTags(t.Tags),
		due)
}

func printTaskFull(t *models.Task) {
	fmt.Println(titleStyle.Render(t.Title))
	fmt.Println(dimStyle.Render("ID: " + t.ID.String()))
	fmt.Println("Status:", t.Status)
	fmt.Println("Priority:", t.Priority)
	if t.Description != "" {
		fmt.Println("Description:", t.Description)
	}
	if t.DueDate != nil {
		fmt.Println("Due:", t.DueDate.Format("2006-01-02"))
	}
	if t.ProjectID != nil {
		fmt.Println("Project:", t.ProjectID.String())
	}
	if t.IdeaID != nil {
		fmt.Println("Idea:", t.IdeaID.String())
	}
	if len(t.Tags) > 0 {
		fmt.Println("Tags:", strings.Join(t.Tags, ", "))
	}
	if ts := renderTimestamps(t.CreatedAt, t.UpdatedAt); ts != "" {
		fmt.Println(ts)
	}
}

func printSearchResults(results []vault.SearchResult) {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}
	fmt.Printf("Found %d result(s):\n\n", len(results))
	for i, r := range results {
		fmt.Printf("%d. %s %s %s\n", i+1,
			titleStyle.Render(r.Title),
			dimStyle.Render("["+string(r.Kind)+"]"),
			dimStyle.Render("(ID: "+r.ID.String()[:8]+")"))
		if r.Description != "" {
			fmt.Println("   " + dimStyle.Render(truncate(r.Description, 70)))
		}
		fmt.Printf("   Status: %s | Created: %s | Score: %.1f\n",
			r.Status, r.CreatedAt.Format("2006-01-02 15:04"), r.Score)
		if r.Snippet != "" {
			fmt.Println("   Match: " + truncate(r.Snippet, 70))
		}
		if len(r.Tags) > 0 {
			fmt.Println("   Tags: " + strings.Join(r.Tags, ", "))
		}
		fmt.Println()
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// limitItems caps list output per the configured maximum.
func limit[T any](items []T) []T {
	if cfg.MaxListItems > 0 && len(items) > cfg.MaxListItems {
		return items[:cfg.MaxListItems]
	}
	return items
}

func tableOutput() bool {
	return cfg.Output.Format != config.FormatJSON
}
