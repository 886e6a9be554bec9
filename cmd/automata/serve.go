package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/automata"
	httpAdapter "github.com/aretw0/automata/pkg/adapters/http"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Exposes the stored definitions over a JSON API: run, determinize, compile and graph export.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
			}

			var (
				extra       []automata.Option
				handlerOpts []httpAdapter.Option
			)
			if cfg.HTTP.Metrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				metrics, err := observability.NewMetrics(reg)
				if err != nil {
					return err
				}
				extra = append(extra, automata.WithMetrics(metrics))
				handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(reg))
			}

			engine, closeStore, err := newEngine(cmd, cfg, extra...)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           httpAdapter.NewHandler(engine, handlerOpts...),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)

			go func() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Starting Automata Server on %s (store: %s)\n", srv.Addr, cfg.Store.Driver)
				serverErrors <- srv.ListenAndServe()
			}()

			// Channel to listen for interrupt or terminate signals.
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			// Blocking main and waiting for shutdown.
			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)

			case sig := <-shutdown:
				fmt.Fprintf(cmd.ErrOrStderr(), "\nStart shutdown... Signal: %v\n", sig)

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("killing server: %w", err)
					}
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Automata Server stopped gracefully")
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Address to listen on (default from config, :8080)")
	return cmd
}
