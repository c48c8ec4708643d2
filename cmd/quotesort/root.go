package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/quotesort/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quotesort",
	Short: "quotesort keeps public/quotes.json ordered by author",
	Long: `quotesort reads public/quotes.json, sorts the quotes by author (stable, ascending)
and rewrites the file with four-space indentation. Run without a command to sort.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalOptions reads the persistent flags shared by every command.
func globalOptions(cmd *cobra.Command) cli.Options {
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{Dir: dir, Debug: debug}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Project directory containing public/quotes.json")
	// The quotes path is fixed for users; --dir only relocates the project root for tests and scripts.
	_ = rootCmd.PersistentFlags().MarkHidden("dir")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
