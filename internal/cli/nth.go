package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/repl"
)

var nthCmd = &cobra.Command{
	Use:   "nth K",
	Short: "Print the K-th prime (1-based) within --max",
	Args:  cobra.ExactArgs(1),
	RunE:  runNth,
}

func init() {
	rootCmd.AddCommand(nthCmd)
}

func runNth(cmd *cobra.Command, args []string) error {
	k, err := repl.ParseCandidate(args[0])
	if err != nil {
		return fmt.Errorf("invalid argument %q: %w", args[0], err)
	}
	if k == 0 {
		return fmt.Errorf("invalid argument %q: primes are numbered from 1", args[0])
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	table := buildTable(settings.Log, settings.Max)
	primes := table.Bitmap(0, table.N())
	if k > primes.GetCardinality() {
		return fmt.Errorf("only %d primes are <= %d; raise --max", primes.GetCardinality(), table.N())
	}

	p, err := primes.Select(uint32(k - 1))
	if err != nil {
		return fmt.Errorf("failed to select prime %d: %w", k, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
