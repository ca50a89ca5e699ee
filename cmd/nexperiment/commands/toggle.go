package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexperiment/nexperiment-go/internal/cli"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <key>",
	Short: "Evaluate a feature toggle",
	Long: `Evaluate a boolean feature toggle for the current context.

Examples:
  nexperiment toggle dark-mode
  nexperiment toggle dark-mode --attr userId=u-42 --attr beta=true`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		toggle, err := client.GetToggle(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("failed to get toggle: %w", err)
		}

		return cli.Print(cmd.OutOrStdout(), cli.Result{
			Key:           key,
			ObjectID:      toggle.ObjectID,
			AppliedRuleID: toggle.AppliedRuleID,
			Value:         toggle.Value,
		}, cli.OutputFormat(format))
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
