package cli

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/internal/api"
	"github.com/dmitrymomot/validkit/internal/demo"
	"github.com/dmitrymomot/validkit/pkg/clientip"
	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/requestid"
	"github.com/dmitrymomot/validkit/pkg/schema"
)

// NewServeCmd starts the HTTP adapter with configuration from the environment.
func NewServeCmd() *cobra.Command {
	var envFiles []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo schemas over HTTP",
		Long: `Start an HTTP server exposing POST /signup, POST /validate/{schema},
GET /schemas, GET /healthz and GET /metrics.

Settings come from HTTP_*, LOG_* and VALIDATION_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.AppConfig
			var err error
			if len(envFiles) > 0 {
				err = config.Parse(&cfg, envFiles...)
			} else {
				err = config.Load(&cfg)
			}
			if err != nil {
				return err
			}
			if err := cfg.Check(); err != nil {
				return err
			}

			log, err := logger.FromConfig(cfg.Log,
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LogExtractor, clientip.LogExtractor),
			)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			collector := metrics.NewCollector(metrics.DefaultNamespace, registry)

			catalog := demo.NewCatalog(
				schema.WithLogger(log),
				schema.WithObserver(collector),
				schema.WithParallelFields(cfg.Validation.ParallelFields),
			)

			router := api.NewRouter(api.Options{
				Catalog:     catalog,
				Metrics:     collector,
				Logger:      log,
				MaxBodySize: cfg.Validation.MaxBodySize,
			})

			log.InfoContext(cmd.Context(), "starting validkit",
				slog.String("version", Version),
				slog.Any("schemas", catalog.Names()),
			)
			return httpserver.New(cfg.HTTP, router, log).Run(cmd.Context())
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	return cmd
}
