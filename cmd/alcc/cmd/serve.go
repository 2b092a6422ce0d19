package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/internal/playground"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var allowAllOrigins bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the WebSocket playground",
		Long: `Starts an HTTP server with a WebSocket endpoint for experiments.

Endpoints:
  /ws       - WebSocket; messages {"type": "tokenize|parse|eval|ping", "id": "...", "payload": {"source": "..."}}
  /healthz  - liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := playground.DefaultConfig()
			cfg.Addr = a.cfg.GetString("serve.addr", cfg.Addr)
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			cfg.AllowAllOrigins = allowAllOrigins

			srv := playground.New(a.engine, a.logger, cfg)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "rlang playground listening on ws://%s/ws\n", srv.Address())

			// Wait for shutdown signal
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				a.logger.Info("Shutdown signal received, stopping playground")
			}

			// Graceful shutdown with timeout
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Stop(ctx); err != nil {
				a.logger.ErrorWithErr("Error during shutdown", err)
				return err
			}

			a.logger.Info("Playground stopped", alcclog.Fields{"addr": srv.Address()})
			return nil
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default: serve.addr from config)")
	serveCmd.Flags().BoolVar(&allowAllOrigins, "allow-all-origins", false, "accept WebSocket upgrades from any origin")
	return serveCmd
}
