package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/config"
	"github.com/thruflo/sieve/internal/primetable"
)

var (
	listFrom uint64
	listTo   uint64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the primes in a range, one per line",
	Long: `Prints every prime p with from <= p <= to. --to defaults to --max and
sizes the table when given.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Uint64Var(&listFrom, "from", 0, "lowest candidate to print")
	listCmd.Flags().Uint64Var(&listTo, "to", 0, "highest candidate to print (default --max)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	to := settings.Max
	if cmd.Flags().Changed("to") {
		if listTo > primetable.MaxN {
			return config.ValidationError{Field: "to", Message: fmt.Sprintf("must not exceed %d", primetable.MaxN)}
		}
		to = listTo
	}
	if listFrom > to {
		return config.ValidationError{Field: "from", Message: fmt.Sprintf("%d is greater than %d", listFrom, to)}
	}

	table := buildTable(settings.Log, to)
	primes := table.Bitmap(listFrom, to)

	w := bufio.NewWriter(cmd.OutOrStdout())
	it := primes.Iterator()
	for it.HasNext() {
		fmt.Fprintln(w, it.Next())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write primes: %w", err)
	}

	settings.Log.Debug("listed primes", "from", listFrom, "to", to, "count", primes.GetCardinality())
	return nil
}
