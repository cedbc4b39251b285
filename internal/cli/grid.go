package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/tui"
)

var gridFrame bool

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the primality grid and exit",
	Long: `Prints rows x cols cells in row-major order starting at 0: ■ for primes,
□ for everything else. Cells past --max are left blank.`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().BoolVar(&gridFrame, "frame", false, "draw a box and legend around the grid")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Only the cells on screen need sieving unless --max says otherwise.
	bound := settings.Max
	if flagMax == "" {
		bound = gridBound(settings.Grid.Rows, settings.Grid.Cols, settings.Max)
	}

	table := buildTable(settings.Log, bound)
	out := cmd.OutOrStdout()
	printGrid(out, table, settings.Grid.Rows, settings.Grid.Cols, gridFrame)
	if gridFrame {
		fmt.Fprintln(out, tui.Legend(settings.Grid.Rows, settings.Grid.Cols))
	}
	return nil
}

// gridBound returns the last candidate a rows x cols grid shows, capped at limit.
func gridBound(rows, cols int, limit uint64) uint64 {
	last := uint64(rows)*uint64(cols) - 1
	if last > limit {
		return limit
	}
	return last
}
