package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/sieve/internal/config"
	"github.com/thruflo/sieve/internal/primetable"
	"github.com/thruflo/sieve/internal/repl"
)

var checkCmd = &cobra.Command{
	Use:   "check N...",
	Short: "Report whether each argument is prime",
	Long: `Checks each argument without entering the interactive prompt.

Without --max the table is sized to the largest argument. With --max,
arguments above it are reported as out of range.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	candidates := make([]uint64, len(args))
	var largest uint64
	for i, arg := range args {
		k, err := repl.ParseCandidate(arg)
		if err != nil {
			return fmt.Errorf("invalid argument %q: %w", arg, err)
		}
		candidates[i] = k
		if k > largest {
			largest = k
		}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	bound := settings.Max
	if flagMax == "" {
		if largest > primetable.MaxN {
			return config.ValidationError{Field: "max", Message: fmt.Sprintf("%d exceeds %d", largest, primetable.MaxN)}
		}
		bound = largest
	}

	table := buildTable(settings.Log, bound)
	out := cmd.OutOrStdout()
	for _, k := range candidates {
		if !table.Contains(k) {
			fmt.Fprintf(out, "%d is over than max candidate %d\n", k, table.N())
			continue
		}
		fmt.Fprintf(out, "%d is prime? : %t\n", k, table.IsPrime(k))
	}
	return nil
}
