package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/quotesort/internal/cli"
	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/spf13/cobra"
)

var qotdCmd = &cobra.Command{
	Use:   "qotd",
	Short: "Print the quote of the day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		index, _ := cmd.Flags().GetInt("index")
		plain, _ := cmd.Flags().GetBool("plain")

		return cli.RunQOTD(cmd.Context(), cli.QOTDOptions{
			Options: globalOptions(cmd),
			Mode:    mode,
			Index:   index,
			Plain:   plain,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(qotdCmd)

	modes := make([]string, 0, len(domain.Modes()))
	for _, m := range domain.Modes() {
		modes = append(modes, string(m))
	}

	qotdCmd.Flags().StringP("mode", "m", string(domain.ModeRandom), fmt.Sprintf("Selection mode (%s)", strings.Join(modes, ", ")))
	qotdCmd.Flags().Int("index", domain.DefaultPickIndex, "Entry index used by --mode pick")
	qotdCmd.Flags().Bool("plain", false, "Print plain text even on a terminal")
}
