package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/vault"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

func init() {
	taskCmd.AddCommand(taskNewCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskStatusCmd)
	taskCmd.AddCommand(taskPriorityCmd)
	taskCmd.AddCommand(taskDueCmd)
	taskCmd.AddCommand(taskTagCmd)
	taskCmd.AddCommand(taskLinkProjectCmd)
	taskCmd.AddCommand(taskLinkIdeaCmd)
	taskCmd.AddCommand(taskUnlinkProjectCmd)
	taskCmd.AddCommand(taskUnlinkIdeaCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

var (
	taskNewDesc     string
	taskNewPriority string
	taskNewStatus   string
	taskNewDue      string
	taskNewProject  string
	taskNewIdea     string
	taskNewTags     string
)

var taskNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		params := vault.CreateTaskParams{
			Title:       args[0],
			Description: taskNewDesc,
			Tags:        splitTags(taskNewTags),
		}
		if taskNewPriority != "" {
			priority, err := models.ParseTaskPriority(taskNewPriority)
			if err != nil {
				return err
			}
			params.Priority = priority
		}
		if taskNewStatus != "" {
			status, err := models.ParseTaskStatus(taskNewStatus)
			if err != nil {
				return err
			}
			params.Status = status
		}
		if taskNewDue != "" {
			due, err := parseDate(taskNewDue)
			if err != nil {
				return err
			}
			params.DueDate = &due
		}
		if taskNewProject != "" {
			projectID, err := parseID(taskNewProject)
			if err != nil {
				return err
			}
			params.ProjectID = &projectID
		}
		if taskNewIdea != "" {
			ideaID, err := parseID(taskNewIdea)
			if err != nil {
				return err
			}
			params.IdeaID = &ideaID
		}

		task, err := v.CreateTask(params)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Println("Created task:")
		printTaskSummary(task)
		return nil
	},
}

var (
	taskListStatus   string
	taskListPriority string
	taskListTag      string
	taskListProject  string
	taskListIdea     string
	taskListOverdue  bool
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		var f vault.TaskFilter
		if taskListStatus != "" {
			status, err := models.ParseTaskStatus(taskListStatus)
			if err != nil {
				return err
			}
			f.Status = &status
		}
		if taskListPriority != "" {
			priority, err := models.ParseTaskPriority(taskListPriority)
			if err != nil {
				return err
			}
			f.Priority = &priority
		}
		f.Tag = taskListTag
		if taskListProject != "" {
			projectID, err := parseID(taskListProject)
			if err != nil {
				return err
			}
			f.ProjectID = &projectID
		}
		if taskListIdea != "" {
			ideaID, err := parseID(taskListIdea)
			if err != nil {
				return err
			}
			f.IdeaID = &ideaID
		}
		f.Overdue = taskListOverdue

		tasks, err := v.ListTasks(f)
		if err != nil {
			return err
		}
		tasks = limit(tasks)
		if !tableOutput() {
			return emitJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}
		for i := range tasks {
			printTaskSummary(&tasks[i])
		}
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in full",
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

		task, err := v.GetTask(id)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		printTaskFull(task)
		return nil
	},
}

var (
	taskUpdTitle      string
	taskUpdDesc       string
	taskUpdStatus     string
	taskUpdPriority   string
	taskUpdDue        string
	taskUpdTags       string
	taskUpdAddTags    string
	taskUpdRemoveTags string
	taskUpdClear      []string
)

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit fields of a task",
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

		var u vault.TaskUpdate
		if cmd.Flags().Changed("title") {
			u.Title = &taskUpdTitle
		}
		if cmd.Flags().Changed("desc") {
			u.Description = &taskUpdDesc
		}
		if cmd.Flags().Changed("status") {
			status, err := models.ParseTaskStatus(taskUpdStatus)
			if err != nil {
				return err
			}
			u.Status = &status
		}
		if cmd.Flags().Changed("priority") {
			priority, err := models.ParseTaskPriority(taskUpdPriority)
			if err != nil {
				return err
			}
			u.Priority = &priority
		}
		if cmd.Flags().Changed("due") {
			due, err := parseDate(taskUpdDue)
			if err != nil {
				return err
			}
			u.DueDate = &due
		}
		if cmd.Flags().Changed("tags") {
			u.Tags = splitTags(taskUpdTags)
		}
		u.AddTags = splitTags(taskUpdAddTags)
		u.RemoveTags = splitTags(taskUpdRemoveTags)
		u.Clear = taskUpdClear

		task, err := v.UpdateTask(id, u)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Println("Updated task:")
		printTaskSummary(task)
		return nil
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a task's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := models.ParseTaskStatus(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		task, err := v.SetTaskStatus(id, status)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Printf("Task %s is now %s\n", shortID(task.ID), task.Status)
		return nil
	},
}

var taskPriorityCmd = &cobra.Command{
	Use:   "priority <id> <priority>",
	Short: "Change a task's priority",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		priority, err := models.ParseTaskPriority(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		task, err := v.SetTaskPriority(id, priority)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Printf("Task %s priority is now %s\n", shortID(task.ID), task.Priority)
		return nil
	},
}

var taskDueCmd = &cobra.Command{
	Use:   "due <id> <date|clear>",
	Short: "Set or clear a task's due date",
	Args:  cobra.ExactArgs(2),
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

		if strings.EqualFold(args[1], "clear") {
			task, err := v.ClearTaskDueDate(id)
			if err != nil {
				return err
			}
			if !tableOutput() {
				return emitJSON(task)
			}
			fmt.Printf("Cleared due date on task %s\n", shortID(task.ID))
			return nil
		}

		due, err := parseDate(args[1])
		if err != nil {
			return err
		}
		task, err := v.SetTaskDueDate(id, due)
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Printf("Task %s due %s\n", shortID(task.ID), task.DueDate.Format("2006-01-02"))
		return nil
	},
}

var taskTagCmd = &cobra.Command{
	Use:   "tag <id> <tags...>",
	Short: "Replace a task's tags",
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

		task, err := v.TagTask(id, args[1:])
		if err != nil {
			return err
		}
		if !tableOutput() {
			return emitJSON(task)
		}
		fmt.Printf("Tagged task %s: %s\n", shortID(task.ID), strings.Join(task.Tags, ", "))
		return nil
	},
}

var taskLinkProjectCmd = &cobra.Command{
	Use:   "link-project <task-id> <project-id>",
	Short: "Point a task at a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		projectID, err := parseID(args[1])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := v.LinkTaskToProject(taskID, projectID); err != nil {
			return err
		}
		fmt.Printf("Linked task %s to project %s\n", shortID(taskID), shortID(projectID))
		return nil
	},
}

var taskLinkIdeaCmd = &cobra.Command{
	Use:   "link-idea <task-id> <idea-id>",
	Short: "Point a task at an idea",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
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

		if err := v.LinkTaskToIdea(taskID, ideaID); err != nil {
			return err
		}
		fmt.Printf("Linked task %s to idea %s\n", shortID(taskID), shortID(ideaID))
		return nil
	},
}

var taskUnlinkProjectCmd = &cobra.Command{
	Use:   "unlink-project <task-id>",
	Short: "Clear a task's project reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := v.UnlinkTaskFromProject(taskID); err != nil {
			return err
		}
		fmt.Printf("Unlinked task %s from its project\n", shortID(taskID))
		return nil
	},
}

var taskUnlinkIdeaCmd = &cobra.Command{
	Use:   "unlink-idea <task-id>",
	Short: "Clear a task's idea reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		v, closeStore, err := openVault()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := v.UnlinkTaskFromIdea(taskID); err != nil {
			return err
		}
		fmt.Printf("Unlinked task %s from its idea\n", shortID(taskID))
		return nil
	},
}

var taskDeleteForce bool

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
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

		if !taskDeleteForce {
			task, err := v.GetTask(id)
			if err != nil {
				return err
			}
			fmt.Printf("Delete task %q? This cannot be undone. Re-run with --force to confirm.\n", task.Title)
			return nil
		}
		if err := v.DeleteTask(id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", shortID(id))
		return nil
	},
}

func init() {
	taskNewCmd.Flags().StringVar(&taskNewDesc, "desc", "", "Description")
	taskNewCmd.Flags().StringVar(&taskNewPriority, "priority", "", "Priority (low, medium, high, urgent)")
	taskNewCmd.Flags().StringVar(&taskNewStatus, "status", "", "Initial status")
	taskNewCmd.Flags().StringVar(&taskNewDue, "due", "", "Due date (YYYY-MM-DD)")
	taskNewCmd.Flags().StringVar(&taskNewProject, "project", "", "Project id to link to")
	taskNewCmd.Flags().StringVar(&taskNewIdea, "idea", "", "Idea id to link to")
	taskNewCmd.Flags().StringVar(&taskNewTags, "tags", "", "Comma-separated tags")

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().StringVar(&taskListPriority, "priority", "", "Filter by priority")
	taskListCmd.Flags().StringVar(&taskListTag, "tag", "", "Filter by tag")
	taskListCmd.Flags().StringVar(&taskListProject, "project", "", "Filter by linked project id")
	taskListCmd.Flags().StringVar(&taskListIdea, "idea", "", "Filter by linked idea id")
	taskListCmd.Flags().BoolVar(&taskListOverdue, "overdue", false, "Show overdue tasks only")

	taskUpdateCmd.Flags().StringVar(&taskUpdTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVar(&taskUpdDesc, "desc", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskUpdStatus, "status", "", "New status")
	taskUpdateCmd.Flags().StringVar(&taskUpdPriority, "priority", "", "New priority")
	taskUpdateCmd.Flags().StringVar(&taskUpdDue, "due", "", "New due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringVar(&taskUpdTags, "tags", "", "Replace tags (comma-separated)")
	taskUpdateCmd.Flags().StringVar(&taskUpdAddTags, "add-tags", "", "Tags to add (comma-separated)")
	taskUpdateCmd.Flags().StringVar(&taskUpdRemoveTags, "remove-tags", "", "Tags to remove (comma-separated)")
	taskUpdateCmd.Flags().StringArrayVar(&taskUpdClear, "clear", nil, "Optional field to clear (description, tags, due, project, idea)")

	taskDeleteCmd.Flags().BoolVar(&taskDeleteForce, "force", false, "Skip confirmation")
}
