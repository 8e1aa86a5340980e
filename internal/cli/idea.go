package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/vault"
)

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Manage ideas",
}

func init() {
	ideaCmd.AddCommand(ideaNewCmd)
	ideaCmd.AddCommand(ideaListCmd)
	ideaCmd.AddCommand(ideaShowCmd)
	ideaCmd.AddCommand(ideaUpdateCmd)
	ideaCmd.AddCommand(ideaTagCmd)
	ideaCmd.AddCommand(ideaStatusCmd)
	ideaCmd.AddCommand(ideaDeleteCmd)
}

var (
	ideaNewDesc   string
	ideaNewTags   string
	ideaNewStatus string
)

var ideaNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Capture a new idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		params := vault.CreateIdeaParams{
			Title:       args[0],
			Description: ideaNewDesc,
			Tags:        splitTags(ideaNewTags),
		}
		if ideaNewStatus != "" {
			status, err := models.ParseIdeaStatus(ideaNewStatus)
			if err != nil {
				return err
			}
			params.Status = status
		}

		idea, err := v.CreateIdea(params)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(idea)
		}
		fmt.Println("Created idea:")
		printIdeaSummary(idea)
		return nil
	},
}

var (
	ideaListStatus string
	ideaListTag    string
)

var ideaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ideas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		var f vault.IdeaFilter
		if ideaListStatus != "" {
			status, err := models.ParseIdeaStatus(ideaListStatus)
			if err != nil {
				return err
			}
			f.Status = &status
		}
		f.Tag = ideaListTag

		ideas, err := v.ListIdeas(f)
		if err != nil {
			return err
		}
		ideas = limit(ideas)
		if !tableOutput() {
			return emitJSON(ideas)
		}
		if len(ideas) == 0 {
			fmt.Println("No ideas found.")
			return nil
		}
		for i := range ideas {
			printIdeaSummary(&ideas[i])
		}
		return nil
	},
}

var ideaShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one idea in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		idea, err := v.GetIdea(id)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(idea)
		}
		printIdeaFull(idea)
		return nil
	},
}

var (
	ideaUpdTitle      string
	ideaUpdDesc       string
	ideaUpdStatus     string
	ideaUpdTags       string
	ideaUpdAddTags    string
	ideaUpdRemoveTags string
	ideaUpdClear      []string
)

var ideaUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit fields of an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		var u vault.IdeaUpdate
		if cmd.Flags().Changed("title") {
			u.Title = &ideaUpdTitle
		}
		if cmd.Flags().Changed("desc") {
			u.Description = &ideaUpdDesc
		}
		if cmd.Flags().Changed("status") {
			status, err := models.ParseIdeaStatus(ideaUpdStatus)
			if err != nil {
				return err
			}
			u.Status = &status
		}
		if cmd.Flags().Changed("tags") {
			u.Tags = splitTags(ideaUpdTags)
		}
		u.AddTags = splitTags(ideaUpdAddTags)
		u.RemoveTags = splitTags(ideaUpdRemoveTags)
		u.Clear = ideaUpdClear

		idea, err := v.UpdateIdea(id, u)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(idea)
		}
		fmt.Println("Updated idea:")
		printIdeaSummary(idea)
		return nil
	},
}

var ideaTagCmd = &cobra.Command{
	Use:   "tag <id> <tags...>",
	Short: "Replace an idea's tags",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		idea, err := v.TagIdea(id, args[1:])
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(idea)
		}
		fmt.Printf("Tagged idea %s: %s\n", shortID(idea.ID), strings.Join(idea.Tags, ", "))
		return nil
	},
}

var ideaStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change an idea's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := models.ParseIdeaStatus(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		idea, err := v.SetIdeaStatus(id, status)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(idea)
		}
		fmt.Printf("Idea %s is now %s\n", shortID(idea.ID), idea.Status)
		return nil
	},
}

var ideaDeleteForce bool

var ideaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an idea and scrub links to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if !ideaDeleteForce {
			idea, err := v.GetIdea(id)
			if err != nil {
				return err
			}
			fmt.Printf("Delete idea %q? This cannot be undone. Re-run with --force to confirm.\n", idea.Title)
			return nil
		}
		if err := v.DeleteIdea(id); err != nil {
			return err
		}
		fmt.Printf("Deleted idea %s\n", shortID(id))
		return nil
	},
}

func init() {
	ideaNewCmd.Flags().StringVar(&ideaNewDesc, "desc", "", "Description")
	ideaNewCmd.Flags().StringVar(&ideaNewTags, "tags", "", "Comma-separated tags")
	ideaNewCmd.Flags().StringVar(&ideaNewStatus, "status", "", "Initial status")

	ideaListCmd.Flags().StringVar(&ideaListStatus, "status", "", "Filter by status")
	ideaListCmd.Flags().StringVar(&ideaListTag, "tag", "", "Filter by tag")

	ideaUpdateCmd.Flags().StringVar(&ideaUpdTitle, "title", "", "New title")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdDesc, "desc", "", "New description")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdStatus, "status", "", "New status")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdTags, "tags", "", "Replace tags (comma-separated)")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdAddTags, "add-tags", "", "Tags to add (comma-separated)")
	ideaUpdateCmd.Flags().StringVar(&ideaUpdRemoveTags, "remove-tags", "", "Tags to remove (comma-separated)")
	ideaUpdateCmd.Flags().StringArrayVar(&ideaUpdClear, "clear", nil, "Optional field to clear (description, tags)")

	ideaDeleteCmd.Flags().BoolVar(&ideaDeleteForce, "force", false, "Skip confirmation")
}
