package views

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ideavault/internal/models"
	"github.com/tgienger/ideavault/internal/ui/keys"
	"github.com/tgienger/ideavault/internal/ui/styles"
	"github.com/tgienger/ideavault/internal/vault"
)

type projectItem struct {
	project models.Project
}

func (i projectItem) Title() string       { return i.project.Title }
func (i projectItem) Description() string { return i.project.Description }
func (i projectItem) FilterValue() string { return i.project.Title }

type projectDelegate struct {
	styles *styles.Styles
	width  int
}

func (d projectDelegate) Height() int                               { return 2 }
func (d projectDelegate) Spacing() int                              { return 1 }
func (d projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(projectItem)
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

	meta := string(it.project.Status)
	if it.project.Milestone != "" {
		meta += "  → " + it.project.Milestone
	}
	if n := it.project.IdeaCount(); n > 0 {
		meta += fmt.Sprintf("  %d idea(s)", n)
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(it.project.Title), metaStyle.Render(meta))
}

// ProjectListView lists projects with filtering and status cycling
type ProjectListView struct {
	vault    *vault.Vault
	list     list.Model
	delegate *projectDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
	loaded   bool
	err      error
}

func NewProjectListView(v *vault.Vault) *ProjectListView {
	s := styles.NewStyles()
	delegate := &projectDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Projects"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &ProjectListView{
		vault:    v,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.Default,
	}
}

func (v *ProjectListView) Init() tea.Cmd {
	return v.loadProjects
}

// Filtering reports whether the list's filter input is capturing keys.
func (v *ProjectListView) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

func (v *ProjectListView) loadProjects() tea.Msg {
	projects, err := v.vault.ListProjects(vault.ProjectFilter{})
	if err != nil {
		return errMsg{err: err}
	}
	return projectsLoadedMsg{projects: projects}
}

type projectsLoadedMsg struct {
	projects []models.Project
}

func (v *ProjectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case projectsLoadedMsg:
		items := make([]list.Item, len(msg.projects))
		for i, p := range msg.projects {
			items[i] = projectItem{project: p}
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
			return v, v.loadProjects
		case key.Matches(msg, v.keys.CycleStatus):
			if item, ok := v.list.SelectedItem().(projectItem); ok {
				return v, v.cycleStatus(item.project)
			}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *ProjectListView) cycleStatus(p models.Project) tea.Cmd {
	return func() tea.Msg {
		if _, err := v.vault.SetProjectStatus(p.ID, nextProjectStatus(p.Status)); err != nil {
			return errMsg{err: err}
		}
		return v.loadProjects()
	}
}

func (v *ProjectListView) View() string {
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

func (v *ProjectListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Projects"),
		"",
		s.TitleMuted.Render("Start one with 'ideavault project new'"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s cycle status • %s refresh • %s filter • %s quit",
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("q"),
		),
	)
}
