package views

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/ui/keys"
	"github.com/tgienger/ideavault/internal/ui/styles"
	"github.com/tgienger/ideavault/internal/vault"
)

type taskItem struct {
	task models.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title }

type taskDelegate struct {
	styles *styles.Styles
	width  int
}

func (d taskDelegate) Height() int                               { return 2 }
func (d taskDelegate) Spacing() int                              { return 1 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, metaStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		metaStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		metaStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}

	meta := fmt.Sprintf("%s • %s", it.task.Status, it.task.Priority)
	if it.task.DueDate != nil {
		due := "due " + it.task.DueDate.Format("2006-01-02")
		if it.task.Overdue(time.Now().UTC()) {
			due = d.styles.Overdue.Render(due + " (overdue)")
		}
		meta += "  " + due
	}
	if tags := joinTags(it.task.Tags); tags != "" {
		meta += "  " + tags
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(it.task.Title), metaStyle.Render(meta))
}

// TaskListView lists tasks with filtering and status cycling
type TaskListView struct {
	vault    *vault.Vault
	list     list.Model
	delegate *taskDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
	loaded   bool
	err      error
}

func NewTaskListView(v *vault.Vault) *TaskListView {
	s := styles.NewStyles()
	delegate := &taskDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &TaskListView{
		vault:    v,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.Default,
	}
}

func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

// Filtering reports whether the list's filter input is capturing keys.
func (v *TaskListView) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

func (v *TaskListView) loadTasks() tea.Msg {
	tasks, err := v.vault.ListTasks(vault.TaskFilter{})
	if err != nil {
		return errMsg{err: err}
	}
	return tasksLoadedMsg{tasks: tasks}
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case tasksLoadedMsg:
		items := make([]list.Item, len(msg.tasks))
		for i, t := range msg.tasks {
			items[i] = taskItem{task: t}
		}
		v.list.SetItems(items)
		v.loaded = true
		v.err = nil
		return v, nil

	case errMsg:
		v.err = msg.err
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		if v.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Refresh):
			return v, v.loadTasks
		case key.Matches(msg, v.keys.CycleStatus):
			if item, ok := v.list.SelectedItem().(taskItem); ok {
				return v, v.cycleStatus(item.task)
			}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *TaskListView) cycleStatus(t models.Task) tea.Cmd {
	return func() tea.Msg {
		if _, err := v.vault.SetTaskStatus(t.ID, nextTaskStatus(t.Status)); err != nil {
			return errMsg{err: err}
		}
		return v.loadTasks()
	}
}

func (v *TaskListView) View() string {
	if v.err != nil {
		return v.styles.TitleMuted.Render("Error: " + v.err.Error())
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	if len(v.list.Items()) == 0 {
		return v.renderEmpty()
	}

	content := v.list.View() + "\n" + v.renderHelp()
	return styles.CenterView(content, v.width, v.height)
}

func (v *TaskListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Tasks"),
		"",
		s.TitleMuted.Render("Add one with 'ideavault task new'"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s cycle status • %s refresh • %s filter • %s quit",
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("q"),
		),
	)
}
