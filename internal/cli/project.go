package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/vault"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

func init() {
	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectStatusCmd)
	projectCmd.AddCommand(projectTagCmd)
	projectCmd.AddCommand(projectLinkCmd)
	projectCmd.AddCommand(projectUnlinkCmd)
	projectCmd.AddCommand(projectIdeasCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

var (
	projectNewDesc      string
	projectNewMilestone string
	projectNewURL       string
	projectNewRepo      string
	projectNewTags      string
	projectNewStatus    string
)

var projectNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Start a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		params := vault.CreateProjectParams{
			Title:       args[0],
			Description: projectNewDesc,
			Milestone:   projectNewMilestone,
			URL:         projectNewURL,
			Repo:        projectNewRepo,
			Tags:        splitTags(projectNewTags),
		}
		if projectNewStatus != "" {
			status, err := models.ParseProjectStatus(projectNewStatus)
			if err != nil {
				return err
			}
			params.Status = status
		}

		project, err := v.CreateProject(params)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(project)
		}
		fmt.Println("Created project:")
		printProjectSummary(project)
		return nil
	},
}

var (
	projectListStatus string
	projectListTag    string
)

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		var f vault.ProjectFilter
		if projectListStatus != "" {
			status, err := models.ParseProjectStatus(projectListStatus)
			if err != nil {
				return err
			}
			f.Status = &status
		}
		f.Tag = projectListTag

		projects, err := v.ListProjects(f)
		if err != nil {
			return err
		}
		projects = limit(projects)
		if !tableOutput() {
			return emitJSON(projects)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		for i := range projects {
			printProjectSummary(&projects[i])
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one project in full",
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

		project, err := v.GetProject(id)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(project)
		}
		printProjectFull(project)
		return nil
	},
}

var (
	projUpdTitle      string
	projUpdDesc       string
	projUpdMilestone  string
	projUpdURL        string
	projUpdRepo       string
	projUpdStatus     string
	projUpdTags       string
	projUpdAddTags    string
	projUpdRemoveTags string
	projUpdClear      []string
)

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit fields of a project",
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

		var u vault.ProjectUpdate
		if cmd.Flags().Changed("title") {
			u.Title = &projUpdTitle
		}
		if cmd.Flags().Changed("desc") {
			u.Description = &projUpdDesc
		}
		if cmd.Flags().Changed("milestone") {
			u.Milestone = &projUpdMilestone
		}
		if cmd.Flags().Changed("url") {
			u.URL = &projUpdURL
		}
		if cmd.Flags().Changed("repo") {
			u.Repo = &projUpdRepo
		}
		if cmd.Flags().Changed("status") {
			status, err := models.ParseProjectStatus(projUpdStatus)
			if err != nil {
				return err
			}
			u.Status = &status
		}
		if cmd.Flags().Changed("tags") {
			u.Tags = splitTags(projUpdTags)
		}
		u.AddTags = splitTags(projUpdAddTags)
		u.RemoveTags = splitTags(projUpdRemoveTags)
		u.Clear = projUpdClear

		project, err := v.UpdateProject(id, u)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(project)
		}
		fmt.Println("Updated project:")
		printProjectSummary(project)
		return nil
	},
}

var projectStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a project's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := models.ParseProjectStatus(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		project, err := v.SetProjectStatus(id, status)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(project)
		}
		fmt.Printf("Project %s is now %s\n", shortID(project.ID), project.Status)
		return nil
	},
}

var projectTagCmd = &cobra.Command{
	Use:   "tag <id> <tags...>",
	Short: "Replace a project's tags",
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

		project, err := v.TagProject(id, args[1:])
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(project)
		}
		fmt.Printf("Tagged project %s: %s\n", shortID(project.ID), strings.Join(project.Tags, ", "))
		return nil
	},
}

var projectLinkCmd = &cobra.Command{
	Use:   "link <project-id> <idea-id>",
	Short: "Link an idea to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}
		ideaID, err := parseID(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := v.LinkIdeaToProject(projectID, ideaID); err != nil {
			return err
		}
		fmt.Printf("Linked idea %s to project %s\n", shortID(ideaID), shortID(projectID))
		return nil
	},
}

var projectUnlinkCmd = &cobra.Command{
	Use:   "unlink <project-id> <idea-id>",
	Short: "Unlink an idea from a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}
		ideaID, err := parseID(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := v.UnlinkIdeaFromProject(projectID, ideaID); err != nil {
			return err
		}
		fmt.Printf("Unlinked idea %s from project %s\n", shortID(ideaID), shortID(projectID))
		return nil
	},
}

var projectIdeasCmd = &cobra.Command{
	Use:   "ideas <id>",
	Short: "List the ideas linked to a project",
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

		ideas, err := v.ProjectIdeas(id)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(ideas)
		}
		if len(ideas) == 0 {
			fmt.Println("No ideas linked.")
			return nil
		}
		for i := range ideas {
			printIdeaSummary(&ideas[i])
		}
		return nil
	},
}

var projectDeleteForce bool

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and scrub links to it",
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

		if !projectDeleteForce {
			project, err := v.GetProject(id)
			if err != nil {
				return err
			}
			if n := project.IdeaCount(); n > 0 {
				fmt.Printf("Project %q has %d linked idea(s); links will be removed.\n", project.Title, n)
			}
			fmt.Printf("Delete project %q? This cannot be undone. Re-run with --force to confirm.\n", project.Title)
			return nil
		}
		if err := v.DeleteProject(id); err != nil {
			return err
		}
		fmt.Printf("Deleted project %s\n", shortID(id))
		return nil
	},
}

func init() {
	projectNewCmd.Flags().StringVar(&projectNewDesc, "desc", "", "Description")
	projectNewCmd.Flags().StringVar(&projectNewMilestone, "milestone", "", "Current milestone")
	projectNewCmd.Flags().StringVar(&projectNewURL, "url", "", "Project URL")
	projectNewCmd.Flags().StringVar(&projectNewRepo, "repo", "", "Repository URL")
	projectNewCmd.Flags().StringVar(&projectNewTags, "tags", "", "Comma-separated tags")
	projectNewCmd.Flags().StringVar(&projectNewStatus, "status", "", "Initial status")

	projectListCmd.Flags().StringVar(&projectListStatus, "status", "", "Filter by status")
	projectListCmd.Flags().StringVar(&projectListTag, "tag", "", "Filter by tag")

	projectUpdateCmd.Flags().StringVar(&projUpdTitle, "title", "", "New title")
	projectUpdateCmd.Flags().StringVar(&projUpdDesc, "desc", "", "New description")
	projectUpdateCmd.Flags().StringVar(&projUpdMilestone, "milestone", "", "New milestone")
	projectUpdateCmd.Flags().StringVar(&projUpdURL, "url", "", "New project URL")
	projectUpdateCmd.Flags().StringVar(&projUpdRepo, "repo", "", "New repository URL")
	projectUpdateCmd.Flags().StringVar(&projUpdStatus, "status", "", "New status")
	projectUpdateCmd.Flags().StringVar(&projUpdTags, "tags", "", "Replace tags (comma-separated)")
	projectUpdateCmd.Flags().StringVar(&projUpdAddTags, "add-tags", "", "Tags to add (comma-separated)")
	projectUpdateCmd.Flags().StringVar(&projUpdRemoveTags, "remove-tags", "", "Tags to remove (comma-separated)")
	projectUpdateCmd.Flags().StringArrayVar(&projUpdClear, "clear", nil, "Optional field to clear (description, milestone, url, repo, tags)")

	projectDeleteCmd.Flags().BoolVar(&projectDeleteForce, "force", false, "Skip confirmation")
}
