package main

import (
	"github.com/aretw0/quotesort/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the quotes are sorted",
	Long:  `Reports the first entry out of author order and exits non-zero. The file is never written.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCheck(cmd.Context(), globalOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
