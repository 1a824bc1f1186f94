package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/habitcal/internal/schedule"
	"github.com/ramanasai/habitcal/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			ctx, cancel := signal.NotifyContext(background(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if a.cfg.Generate.Daily {
				if _, err := a.generate(a.now()); err != nil {
					return err
				}
				go schedule.RunDaily(ctx, a.cfg.Generate.Time, a.loc, func(t time.Time) {
					if _, err := a.generate(t); err != nil {
						a.log.Error("daily generation failed", zap.Error(err))
					}
				})
			}

			srv := server.New(a.store, a.layout, a.theme, a.now, a.log)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// background is the context used when cobra has none.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
