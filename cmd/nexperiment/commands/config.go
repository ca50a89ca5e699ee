package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexperiment/nexperiment-go"
	"github.com/nexperiment/nexperiment-go/internal/cli"
)

var configCmd = &cobra.Command{
	Use:   "config <key>",
	Short: "Evaluate a remote config",
	Long: `Evaluate a remote config for the current context and print its
decoded value.

Examples:
  nexperiment config limits
  nexperiment config banner --context-file ctx.yaml --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		cfg, err := nexperiment.GetConfig[any](cmd.Context(), client, key)
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		return cli.Print(cmd.OutOrStdout(), cli.Result{
			Key:           key,
			ObjectID:      cfg.ObjectID,
			AppliedRuleID: cfg.AppliedRuleID,
			Value:         cfg.Value,
		}, cli.OutputFormat(format))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
