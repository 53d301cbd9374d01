package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/charm/internal/inspect"
	"github.com/vango-dev/charm/pkg/scope"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry inspection API",
		Long: `Register the configured components and serve a read-only view of
the registry, the icon set and Prometheus metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, false)
			if err != nil {
				return err
			}

			promReg := prometheus.NewRegistry()
			promReg.MustRegister(collectors.NewGoCollector())
			metrics := scope.NewMetrics(scope.WithRegisterer(promReg))

			s, err := a.newScope(scope.WithMetrics(metrics))
			if err != nil {
				return err
			}

			if addr == "" {
				addr = a.cfg.Address()
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           inspect.New(a.registry, a.project, inspect.WithGatherer(promReg), inspect.WithLogger(a.logger)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			out := cmd.OutOrStdout()
			success(out, "Serving %d tags for scope %q", len(a.registry.Tags()), s.Suffix())
			info(out, "http://%s/tags", addr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.logger.Info("shutting down inspection server")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: serve.host:serve.port)")

	return cmd
}
