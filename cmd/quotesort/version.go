package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/quotesort"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quotesort",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quotesort version %s\n", strings.TrimSpace(quotesort.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
