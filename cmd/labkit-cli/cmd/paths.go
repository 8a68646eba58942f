package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"labkit/internal/layout"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [name]",
	Short: "Print the directories of the project layout",
	Long: `Print every logical name of the layout with its absolute directory,
or the directory of a single name.

Examples:
  labkit-cli paths
  labkit-cli paths processed`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := layout.Validate(rootPath)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			dir, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		}

		for _, name := range reg.Names() {
			dir, err := reg.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %s\n", name, dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
