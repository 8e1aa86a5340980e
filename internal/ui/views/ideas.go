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

type ideaItem struct {
	idea models.Idea
}

func (i ideaItem) Title() string       { return i.idea.Title }
func (i ideaItem) Description() string { return i.idea.Description }
func (i ideaItem) FilterValue() string { return i.idea.Title }

type ideaDelegate struct {
	styles *styles.Styles
	width  int
}

func (d ideaDelegate) Height() int                               { return 2 }
func (d ideaDelegate) Spacing() int                              { return 1 }
func (d ideaDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d ideaDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(ideaItem)
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

	meta := string(it.idea.Status)
	if tags := joinTags(it.idea.Tags); tags != "" {
		meta += "  " + tags
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(it.idea.Title), metaStyle.Render(meta))
}

// IdeaListView lists ideas with filtering and status cycling
type IdeaListView struct {
	vault    *vault.Vault
	list     list.Model
	delegate *ideaDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
	loaded   bool
	err      error
}

func NewIdeaListView(v *vault.Vault) *IdeaListView {
	s := styles.NewStyles()
	delegate := &ideaDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Ideas"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &IdeaListView{
		vault:    v,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.Default,
	}
}

func (v *IdeaListView) Init() tea.Cmd {
	return v.loadIdeas
}

// Filtering reports whether the list's filter input is capturing keys.
func (v *IdeaListView) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

func (v *IdeaListView) loadIdeas() tea.Msg {
	ideas, err := v.vault.ListIdeas(vault.IdeaFilter{})
	if err != nil {
		return errMsg{err: err}
	}
	return ideasLoadedMsg{ideas: ideas}
}

type ideasLoadedMsg struct {
	ideas []models.Idea
}

func (v *IdeaListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case ideasLoadedMsg:
		items := make([]list.Item, len(msg.ideas))
		for i, idea := range msg.ideas {
			items[i] = ideaItem{idea: idea}
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
			return v, v.loadIdeas
		case key.Matches(msg, v.keys.CycleStatus):
			if item, ok := v.list.SelectedItem().(ideaItem); ok {
				return v, v.cycleStatus(item.idea)
			}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *IdeaListView) cycleStatus(idea models.Idea) tea.Cmd {
	return func() tea.Msg {
		if _, err := v.vault.SetIdeaStatus(idea.ID, nextIdeaStatus(idea.Status)); err != nil {
			return errMsg{err: err}
		}
		return v.loadIdeas()
	}
}

func (v *IdeaListView) View() string {
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

func (v *IdeaListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Ideas"),
		"",
		s.TitleMuted.Render("Capture one with 'ideavault idea new'"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *IdeaListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s cycle status • %s refresh • %s filter • %s quit",
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("q"),
		),
	)
}
