package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/primetable"
	"github.com/thruflo/sieve/internal/repl"
	"github.com/thruflo/sieve/internal/tui"
)

var sessionNoGrid bool

func init() {
	rootCmd.Flags().BoolVar(&sessionNoGrid, "no-grid", false, "skip the startup grid")
}

// runSession builds the table, shows the grid and hands stdin to the REPL.
func runSession(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "max candidates: %d\n", settings.Max)
	table := buildTable(settings.Log, settings.Max)
	fmt.Fprintln(out, "Table created.")

	if !sessionNoGrid {
		printGrid(out, table, settings.Grid.Rows, settings.Grid.Cols, false)
	}

	loop := &repl.Loop{
		In:    cmd.InOrStdin(),
		Out:   out,
		Table: table,
		Log:   settings.Log,
	}
	return loop.Run(commandContext(cmd))
}

// printGrid writes the rows x cols grid, coloured when out is a terminal.
func printGrid(out io.Writer, q primetable.Querier, rows, cols int, frame bool) {
	style := tui.GridStyle{Color: !flagNoColor && tui.IsTerminal(out)}
	lines := tui.Grid(q, rows, cols, style)
	if frame {
		lines = tui.BoxWithContent(lines)
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
