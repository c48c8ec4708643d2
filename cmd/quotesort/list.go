package main

import (
	"github.com/aretw0/quotesort/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the quotes in file order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		author, _ := cmd.Flags().GetString("author")
		format, _ := cmd.Flags().GetString("format")

		return cli.RunList(cmd.Context(), cli.ListOptions{
			Options: globalOptions(cmd),
			Author:  author,
			Format:  format,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("author", "a", "", "Only list quotes attributed to this author")
	listCmd.Flags().StringP("format", "f", cli.FormatText, "Output format (text, json, yaml)")
}
