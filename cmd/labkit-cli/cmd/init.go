package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"labkit/internal/layout"
	"labkit/internal/logging"
)

var (
	dryRun   bool
	logLevel string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project directory layout",
	Long: `Create every missing directory of the project layout under the root
and record the run in the project log.

Running init on an already initialized root is a no-op.

Examples:
  labkit-cli init
  labkit-cli init --root /tmp/proj --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			reg, err := layout.Validate(rootPath)
			if err != nil {
				return err
			}
			missing, err := reg.Missing()
			if err != nil {
				return err
			}
			if len(missing) == 0 {
				fmt.Println("nothing to create")
				return nil
			}
			for _, dir := range missing {
				fmt.Printf("would create %s\n", dir)
			}
			return nil
		}

		reg, err := layout.Resolve(rootPath)
		if err != nil {
			return err
		}

		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		logsDir, err := reg.Get(layout.Logs)
		if err != nil {
			return err
		}

		boot := logging.New()
		defer boot.Close()
		h, err := boot.GetLogger("labkit", logsDir, logging.Options{
			Level:       level,
			MaxBytes:    logging.DefaultMaxBytes,
			BackupCount: logging.DefaultBackupCount,
		})
		if err != nil && !errors.Is(err, logging.ErrLogInit) {
			return err
		}
		h.Logger.Info("project layout initialized", "root", reg.Root(), "directories", len(reg.Names()))

		fmt.Printf("initialized project layout at %s\n", reg.Root())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the directories that would be created without creating them")
	initCmd.Flags().StringVar(&logLevel, "log-level", "INFO", "minimum severity recorded in the project log (DEBUG, INFO, WARNING, ERROR)")
	rootCmd.AddCommand(initCmd)
}
