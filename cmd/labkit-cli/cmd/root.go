package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"labkit/internal/config"
)

var rootPath string

var rootCmd = &cobra.Command{
	Use:   "labkit-cli",
	Short: "Bootstrap the directory layout and logging of a project workspace",
	Long: `labkit-cli prepares the filesystem context an analysis project runs
inside: a fixed set of data, report and log directories under a single
project root, plus size-rotated file logging anchored at the logs
directory.

The root is taken from --root, the LABKIT_ROOT environment variable, or
detected by walking up from the working directory.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.LoadDotenv()
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.Root(), "project root path")
}
