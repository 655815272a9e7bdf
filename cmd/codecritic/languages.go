package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/codecritic/internal/lang"
	"github.com/dshills/codecritic/internal/ruleset"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their builtin rule sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range lang.All() {
				builtin := "no builtin rules"
				if ruleset.HasBuiltin(l.Key) {
					builtin = "builtin rules"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-12s %-20s %s\n",
					l.DisplayName, l.Key, strings.Join(l.Extensions, " "), builtin)
			}
			return nil
		},
	}
}
