package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareGuards bool

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two terms, or two guards with --guard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, spec, err := openSession(cmd)
		if err != nil {
			return err
		}
		ts, err := parseTerms(spec, args)
		if err != nil {
			return err
		}
		if compareGuards {
			fmt.Fprintln(cmd.OutOrStdout(), session.CompareGuard(ts[0], ts[1]))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.CompareTerm(ts[0], ts[1]))
		return nil
	},
}

var lpoCmd = &cobra.Command{
	Use:   "lpo A B",
	Short: "Report whether A is greater than B in the recursive path ordering",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, spec, err := openSession(cmd)
		if err != nil {
			return err
		}
		ts, err := parseTerms(spec, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.LPOGreater(ts[0], ts[1]))
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareGuards, "guard", false, "Compare as guards instead of terms")
}
