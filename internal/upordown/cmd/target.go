package cmd

import (
	"VCS_Status_Microservice/internal/status-service/graphite"
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/internal/status-service/publisher"
	"VCS_Status_Microservice/internal/status-service/repository"
	"VCS_Status_Microservice/internal/status-service/service"
	"VCS_Status_Microservice/pkg/logger"
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func envOrDefault(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newTargetCmd(opts *outputOptions) *cobra.Command {
	var (
		graphiteURL string
		proxyURL    string
		from        string
		until       string
		logLevel    string
		timeout     time.Duration
	)
	targetCmd := &cobra.Command{
		Use:   "target NAME",
		Short: "Fetch a graphite target and classify its datapoints",
		Long: `Fetch a graphite target and classify its datapoints. A target that cannot be
fetched is reported DOWN, the reason is logged to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zapLogger := logger.NewLogger(logLevel, nil)
			defer zapLogger.Sync()

			graphiteClient := graphite.NewClient(graphite.ClientConfig{
				BaseURL:        graphiteURL,
				ProxyURL:       proxyURL,
				MaxRetries:     3,
				InitialBackoff: 500 * time.Millisecond,
				RequestTimeout: timeout,
			})
			statusService := service.NewStatusService(graphiteClient, repository.NewMemoryVerdictRepository(0), publisher.NewNoopPublisher(), zapLogger, from, until)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*timeout+5*time.Second)
			defer cancel()
			evaluation, err := statusService.EvaluateTarget(ctx, model.Target{Name: args[0]})
			if err != nil {
				return err
			}
			printEvaluation(cmd.OutOrStdout(), opts, evaluation)
			return nil
		},
	}
	targetCmd.Flags().StringVar(&graphiteURL, "graphite-url", os.Getenv("GRAPHITE_URL"), "Graphite base URL")
	targetCmd.Flags().StringVar(&proxyURL, "proxy-url", os.Getenv("GRAPHITE_PROXY_URL"), "VPC helper proxy URL, takes precedence over --graphite-url")
	targetCmd.Flags().StringVar(&from, "from", envOrDefault("GRAPHITE_FROM", "-90d"), "Start of the window")
	targetCmd.Flags().StringVar(&until, "until", envOrDefault("GRAPHITE_UNTIL", "-30d"), "End of the window")
	targetCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level for diagnostics on stderr")
	targetCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Per request timeout")
	return targetCmd
}
