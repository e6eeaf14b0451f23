package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/guardorder/internal/order"
)

var orderJSONOutput bool

var (
	variableStyle = color.New(color.FgGreen, color.Bold)
	equalityStyle = color.New(color.FgCyan, color.Bold)
	otherStyle    = color.New(color.FgYellow)
)

func classStyle(c order.GuardClass) *color.Color {
	switch c {
	case order.ClassVariable, order.ClassVariableEquality:
		return variableStyle
	case order.ClassEquality:
		return equalityStyle
	default:
		return otherStyle
	}
}

type orderedGuard struct {
	Guard string `json:"guard"`
	Class string `json:"class"`
}

var orderCmd = &cobra.Command{
	Use:   "order guards...",
	Short: "Print guards in case-split order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, spec, err := openSession(cmd)
		if err != nil {
			return err
		}
		guards, err := parseTerms(spec, args)
		if err != nil {
			return err
		}

		sorted := session.SortGuards(guards)
		result := make([]orderedGuard, len(sorted))
		classes := make([]order.GuardClass, len(sorted))
		for i, g := range sorted {
			classes[i] = session.GuardClass(g)
			result[i] = orderedGuard{Guard: g.String(), Class: classes[i].String()}
		}

		out := cmd.OutOrStdout()
		if orderJSONOutput {
			d, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("error marshalling guards to JSON: %w", err)
			}
			fmt.Fprintln(out, string(d))
			return nil
		}
		for i, g := range result {
			fmt.Fprintf(out, "%s %s\n", classStyle(classes[i]).Sprintf("%-18s", g.Class), g.Guard)
		}
		return nil
	},
}

func init() {
	orderCmd.Flags().BoolVar(&orderJSONOutput, "json", false, "Output guards in JSON format")
}
