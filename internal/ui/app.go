package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ideavault/internal/ui/keys"
	"github.com/tgienger/ideavault/internal/ui/styles"
	"github.com/tgienger/ideavault/internal/ui/views"
	"github.com/tgienger/ideavault/internal/vault"
)

// Currently active view
type View int

const (
	ViewIdeas View = iota
	ViewProjects
	ViewTasks
)

var tabLabels = []string{"Ideas", "Projects", "Tasks"}

type App struct {
	vault       *vault.Vault
	currentView View
	ideaList    *views.IdeaListView
	projectList *views.ProjectListView
	taskList    *views.TaskListView
	styles      *styles.Styles
	keys        keys.KeyMap
	width       int
	height      int
}

// Creates a new application
func NewApp(v *vault.Vault) *App {
	return &App{
		vault:       v,
		currentView: ViewIdeas,
		ideaList:    views.NewIdeaListView(v),
		projectList: views.NewProjectListView(v),
		taskList:    views.NewTaskListView(v),
		styles:      styles.NewStyles(),
		keys:        keys.Default,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.ideaList.Init(),
		a.projectList.Init(),
		a.taskList.Init(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// All views persist, so all track the window size
		sized := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		a.ideaList.Update(sized)
		a.projectList.Update(sized)
		a.taskList.Update(sized)
		return a, nil

	case tea.KeyMsg:
		// While a list filter is capturing input every rune belongs to
		// the filter, including the h/l tab aliases.
		if a.filtering() {
			break
		}
		switch {
		case key.Matches(msg, a.keys.NextTab):
			a.currentView = (a.currentView + 1) % 3
			return a, a.refreshCurrent()
		case key.Matches(msg, a.keys.PrevTab):
			a.currentView = (a.currentView + 2) % 3
			return a, a.refreshCurrent()
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewIdeas:
		_, cmd = a.ideaList.Update(msg)
	case ViewProjects:
		_, cmd = a.projectList.Update(msg)
	case ViewTasks:
		_, cmd = a.taskList.Update(msg)
	}

	return a, cmd
}

func (a *App) filtering() bool {
	switch a.currentView {
	case ViewProjects:
		return a.projectList.Filtering()
	case ViewTasks:
		return a.taskList.Filtering()
	default:
		return a.ideaList.Filtering()
	}
}

// refreshCurrent reloads the newly focused view so cross-entity
// changes (cascades, links) show up when switching tabs
func (a *App) refreshCurrent() tea.Cmd {
	switch a.currentView {
	case ViewIdeas:
		return a.ideaList.Init()
	case ViewProjects:
		return a.projectList.Init()
	case ViewTasks:
		return a.taskList.Init()
	}
	return nil
}

func (a *App) View() string {
	var body string
	switch a.currentView {
	case ViewProjects:
		body = a.projectList.View()
	case ViewTasks:
		body = a.taskList.View()
	default:
		body = a.ideaList.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), body)
}

func (a *App) renderTabs() string {
	tabs := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if View(i) == a.currentView {
			tabs[i] = a.styles.TabActive.Render(label)
		} else {
			tabs[i] = a.styles.Tab.Render(label)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styles.CenterView(row, a.width, 1)
}
