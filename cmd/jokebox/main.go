// Jokebox fetches a random joke from the Official Joke API and prints it
// in a styled terminal panel.
//
// Usage:
//
//	jokebox [command]
//
// Running without arguments performs one fetch-and-display cycle. Failures
// are shown in an error panel; the process still exits 0. Set
// JOKEBOX_LOG_LEVEL=debug to see request logs on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/jokebox/internal/app"
	"github.com/muurk/jokebox/internal/joke"
	"github.com/muurk/jokebox/internal/logging"
	"github.com/muurk/jokebox/internal/version"
)

// newFetcher is replaced in tests to avoid the public endpoint
var newFetcher = func() app.Fetcher {
	return joke.NewClient()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jokebox",
		Short: "Print a random joke",
		Long: `Fetch a random joke from the Official Joke API and print it
in a styled terminal panel.

A failed fetch is reported in a red error panel and does not change
the exit status.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runJoke,
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jokebox %s\n", version.Full())
		},
	}
}

func runJoke(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; logging disabled\n", err)
	}
	defer logging.Sync()

	// Fetch failures are reported in the error panel
	_ = app.Run(cmd.Context(), cmd.OutOrStdout(), newFetcher())
	return nil
}
