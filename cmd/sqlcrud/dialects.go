package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/sqlcrud/dialect"
	"github.com/syssam/sqlcrud/statement"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the known dialects and their placeholder prefixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DIALECT\tPREFIX\tEXAMPLE")
		for _, name := range dialect.Names() {
			prefix, err := dialect.Prefix(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, prefix, statement.Placeholder(prefix, 1))
		}
		return tw.Flush()
	},
}
