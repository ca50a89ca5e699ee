package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexperiment/nexperiment-go"
	"github.com/nexperiment/nexperiment-go/internal/cli"
	"github.com/nexperiment/nexperiment-go/internal/logger"
)

var (
	// Global flags
	baseURL     string
	apiKey      string
	apiSecret   string
	attrs       []string
	contextFile string
	format      string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nexperiment",
	Short: "Evaluate feature toggles and remote configs",
	Long: `nexperiment authenticates against a nexperiment service and evaluates
feature toggles and remote configs for a given context.

Credentials are read from NEXPERIMENT_BASE_URL, NEXPERIMENT_API_KEY and
NEXPERIMENT_API_SECRET unless given as flags.

Examples:
  nexperiment toggle dark-mode --attr userId=u-42
  nexperiment config limits --context-file ctx.yaml --format yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the nexperiment API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for authentication")
	rootCmd.PersistentFlags().StringVar(&apiSecret, "api-secret", "", "API secret for authentication")
	rootCmd.PersistentFlags().StringArrayVar(&attrs, "attr", nil, "Context attribute as key=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&contextFile, "context-file", "", "YAML or JSON file with the evaluation context")
	rootCmd.PersistentFlags().StringVar(&format, "format", string(cli.FormatJSON), "Output format (json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// newClient builds an authenticated client with the evaluation context
// from --context-file and --attr applied
func newClient(cmd *cobra.Command) (*nexperiment.Client, error) {
	cfg, err := cli.LoadConfig(cli.Overrides{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		APISecret: apiSecret,
		Verbose:   verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	evalCtx, err := cli.BuildContext(contextFile, attrs)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := logger.NewConsole(cmd.ErrOrStderr(), level)

	client, err := nexperiment.New(
		nexperiment.WithTimeout(cfg.Timeout),
		nexperiment.WithLogger(log.Logger),
	)
	if err != nil {
		return nil, err
	}

	if err := client.Init(cmd.Context(), cfg.BaseURL, cfg.APIKey, cfg.APISecret); err != nil {
		return nil, err
	}
	client.SetContext(evalCtx)

	return client, nil
}
