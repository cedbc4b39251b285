package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/config"
	"github.com/thruflo/sieve/internal/logging"
	"github.com/thruflo/sieve/internal/primetable"
)

// Persistent flags shared by every command. Empty/zero means "not set" so
// the config file value applies.
var (
	flagMax      string
	flagRows     int
	flagCols     int
	flagLogLevel string
	flagVerbose  bool
	flagNoColor  bool
)

// workDir is the directory .sieve/config.yaml is read from.
// Empty means the current working directory; tests override it.
var workDir string

func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&flagMax, "max", "m", "", fmt.Sprintf("maximum checking number (default %d, at most %d)", config.DefaultMax, primetable.MaxN))
	flags.IntVar(&flagRows, "rows", 0, fmt.Sprintf("grid rows (default %d)", config.DefaultGridRows))
	flags.IntVar(&flagCols, "cols", 0, fmt.Sprintf("grid columns (default %d)", config.DefaultGridCols))
	flags.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&flagNoColor, "no-color", false, "never colour the grid")
}

func resolveWorkDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// runSettings is the resolved configuration for one command invocation.
type runSettings struct {
	Max  uint64
	Grid config.Grid
	Log  *logging.Logger
}

// loadSettings merges .sieve/config.yaml with the persistent flags.
func loadSettings(cmd *cobra.Command) (*runSettings, error) {
	dir, err := resolveWorkDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagMax != "" {
		v, err := config.ParseMax(flagMax)
		if err != nil {
			return nil, err
		}
		cfg.Max = v
	}
	if flagRows != 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Grid.Cols = flagCols
	}
	if err := config.ValidateGrid(cfg.Grid); err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, config.ValidationError{Field: "log_level", Message: err.Error()}
	}
	if flagVerbose {
		level = logging.LevelDebug
	}

	return &runSettings{
		Max:  cfg.Max,
		Grid: cfg.Grid,
		Log:  logging.NewWriter(cmd.ErrOrStderr(), level).With("cmd", cmd.Name()),
	}, nil
}

// buildTable constructs the prime table and logs its footprint.
func buildTable(log *logging.Logger, n uint64) *primetable.PrimeTable {
	start := time.Now()
	table := primetable.New(n)
	log.Info("table created",
		"max", table.N(),
		"words", table.Words(),
		"bytes", table.SizeBytes(),
		"primes", table.Count(),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)
	return table
}
