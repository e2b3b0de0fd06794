package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bibtidy/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage title-case rule sets",
	Long: `List, inspect and create the rule sets that drive cleaning.

A rule set holds the acronyms kept in capitals, the minor words kept in
lower case, the entry title fields, the default fields to remove and the
macro used for uppercase surnames. User rule sets live in
~/.bibtidy/rules (or $BIBTIDY_CONFIG_DIR/rules).`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rule sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := rules.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available rule sets:")
		for _, name := range names {
			rs, err := rules.Resolve(name)
			if err != nil {
				fmt.Fprintf(out, "  %s (invalid: %v)\n", name, err)
				continue
			}
			desc := ""
			if rs.Description != "" {
				desc = " - " + rs.Description
			}
			fmt.Fprintf(out, "  %s%s\n", name, desc)
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-set]",
	Short: "Show rule set details",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := rules.DefaultName
		if len(args) == 1 {
			ref = args[0]
		}

		rs, err := rules.Resolve(ref)
		if err != nil {
			return err
		}

		// Print as YAML
		out, err := yaml.Marshal(rs)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var rulesInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a user rule set from the defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := rules.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nUse it with: bibtidy --rules %s <input> <output>\n", path, args[0])
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesInitCmd)
}
