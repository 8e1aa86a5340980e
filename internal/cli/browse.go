package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the vault interactively",
	Long:  "Open a full-screen terminal UI with tabbed lists of ideas, projects, and tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, closer, err := openVault()
		if err != nil {
			return err
		}
		defer closer()

		app := ui.NewApp(v)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
