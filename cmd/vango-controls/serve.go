package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/controls/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery as a live page",
		Long: `Serve the gallery over HTTP. Every page view gets its own live
session; clicks and measurements travel over a websocket and the
server answers with re-rendered HTML.

Examples:
  vango-controls serve
  vango-controls serve --port=8080
  vango-controls serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}
			if err := a.validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from controls.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from controls.yaml)")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("Gallery:  %s", a.cfg.URL())
	info("Metrics:  %s%s", a.cfg.URL(), a.cfg.Server.MetricsPath)
	fmt.Println()

	srv := server.New(a.cfg, server.WithLogger(a.logger))
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	success("Stopped")
	return nil
}
