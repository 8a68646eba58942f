package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"labkit/internal/layout"
	"labkit/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the project layout interactively",
	Long: `Open an interactive view of the project layout showing each
directory, whether it exists and how many entries it holds.

Example:
  labkit-cli browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := layout.Validate(rootPath)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewBrowser(reg), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
