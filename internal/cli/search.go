package cli

import (
	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/vault"
)

var (
	searchIdeas    bool
	searchProjects bool
	searchTasks    bool
	searchTagsOnly bool
	searchStatus   string
	searchWithTags string
	searchFrom     string
	searchTo       string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search across ideas, projects, and tasks",
	Long: `Search matches the query case-insensitively against titles,
descriptions, and tags. With no query it lists everything that passes the
filters. Results are grouped: ideas first, then projects, then tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		opts := vault.SearchOptions{
			Scope:    vault.ScopeAll,
			Status:   searchStatus,
			WithTags: splitTags(searchWithTags),
		}
		switch {
		case searchIdeas:
			opts.Scope = vault.ScopeIdeas
		case searchProjects:
			opts.Scope = vault.ScopeProjects
		case searchTasks:
			opts.Scope = vault.ScopeTasks
		case searchTagsOnly:
			opts.Scope = vault.ScopeTags
		}
		if searchFrom != "" {
			from, err := parseDate(searchFrom)
			if err != nil {
				return err
			}
			opts.From = &from
		}
		if searchTo != "" {
			to, err := parseDate(searchTo)
			if err != nil {
				return err
			}
			opts.To = &to
		}

		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		results, err := v.Search(query, opts)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(results)
		}
		printSearchResults(results)
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchIdeas, "ideas", false, "Search ideas only")
	searchCmd.Flags().BoolVar(&searchProjects, "projects", false, "Search projects only")
	searchCmd.Flags().BoolVar(&searchTasks, "tasks", false, "Search tasks only")
	searchCmd.Flags().BoolVar(&searchTagsOnly, "tags", false, "Match tag text only, across every kind")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "Filter by status")
	searchCmd.Flags().StringVar(&searchWithTags, "with-tags", "", "Require all of these tags (comma-separated)")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "Created on or after this date")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "Created on or before this date")
}
