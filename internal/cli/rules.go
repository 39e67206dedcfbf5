package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/ui/pretty"
	"github.com/yaklabco/marklint/pkg/rules"
)

func newRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long:  `List every built-in rule with its ID, name, and default severity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			out := cmd.OutOrStdout()
			for _, rule := range rules.NewRegistry().Rules() {
				fixable := " "
				if rule.CanFix() {
					fixable = styles.Success.Render("*")
				}
				fmt.Fprintf(out, "%s %s %s  %s\n",
					styles.Bold.Render(rule.ID()),
					fixable,
					styles.Dim.Render(rule.Name()),
					rule.Description(),
				)
			}
			fmt.Fprintln(out, styles.Dim.Render("\n* = fixable"))
			return nil
		},
	}

	return cmd
}
