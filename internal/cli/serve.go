package cli

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autgroup/internal/server"
	"github.com/matzehuels/autgroup/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP API until the
// process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		workers int
		timeout time.Duration
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve automorphism group computation over HTTP.

  POST /api/autgroup   compute the group of a JSON graph descriptor
  GET  /healthz        liveness probe
  GET  /version        build information
  GET  /metrics        Prometheus metrics

Results are cached in the configured backend; set cache.backend = "redis" in
the config file to share the cache between several instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := c.Config.pipelineOptions()
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("timeout") {
				opts.Timeout = timeout
			}
			check := opts
			if err := check.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			hooks := observability.NewPrometheusHooks(reg)
			observability.SetSearchHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
			defer observability.Reset()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, server.Config{
				Addr:         addr,
				MaxBodyBytes: c.Config.Server.MaxBodyBytes,
				Options:      opts,
				Gatherer:     reg,
				Logger:       c.Logger,
			})
			c.Logger.Info("serving", "addr", addr, "workers", check.Workers, "timeout", check.Timeout)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel subtree workers per search")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request search time limit")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}
