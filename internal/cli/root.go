package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sieve",
	Short: "Bit-packed sieve of Eratosthenes with interactive primality lookups",
	Long: `Sieve builds a bit-packed primality table over [0, max] once, prints a
grid of the first candidates, then answers "is N prime?" questions read
from standard input until EOF or "quit".

Settings come from .sieve/config.yaml in the working directory when present;
flags override them.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sieve version {{.Version}}\n")
	addSettingsFlags(rootCmd)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context so the interactive loop returns cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// commandContext returns the command's context, or Background when the
// command is run directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
