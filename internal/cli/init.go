package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .sieve/config.yaml",
	Long: `Creates .sieve/config.yaml in the working directory with the default
maximum candidate, grid size and log level. Values given with --max, --rows
and --cols are written instead of the defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if flagMax != "" {
		v, err := config.ParseMax(flagMax)
		if err != nil {
			return err
		}
		cfg.Max = v
	}
	if flagRows != 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := config.WriteConfig(dir, &cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
