package main

import (
	"github.com/aretw0/quotesort/internal/cli"
	"github.com/spf13/cobra"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the quotes by author and rewrite the file",
	Long:  `Loads public/quotes.json, orders the entries by their second element and overwrites the file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return cli.RunSort(cmd.Context(), globalOptions(cmd), verbose, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().BoolP("verbose", "v", false, "Print a summary after sorting")

	// Sorting is the default when no command is provided.
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cli.RunSort(cmd.Context(), globalOptions(cmd), false, cmd.OutOrStdout())
	}
}
