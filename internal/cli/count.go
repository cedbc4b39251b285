package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/config"
)

var countFrom uint64

var countCmd = &cobra.Command{
	Use:   "count [X]",
	Short: "Print how many primes are <= X",
	Long: `Prints π(X), the number of primes p <= X. X defaults to --max.
With --from, only primes p >= from are counted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	countCmd.Flags().Uint64Var(&countFrom, "from", 0, "lowest candidate to count")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	upper := settings.Max
	if len(args) == 1 {
		upper, err = config.ParseMax(args[0])
		if err != nil {
			return fmt.Errorf("invalid argument %q: %w", args[0], err)
		}
	}

	table := buildTable(settings.Log, upper)

	var count uint64
	if countFrom == 0 {
		count = table.Count()
	} else {
		count = table.Bitmap(countFrom, upper).GetCardinality()
	}

	fmt.Fprintln(cmd.OutOrStdout(), count)
	return nil
}
