package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/server"
	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/internal/web"
)

// storageProbe writes a small marker object.
func storageProbe(store storage.Storage) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := store.Put(ctx, ".ready", []byte("ok"), "text/plain")
		return err
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := a.storage(ctx)
			if err != nil {
				return err
			}
			gen, err := a.generator(store)
			if err != nil {
				return err
			}

			h, err := web.New(
				web.WithBaseURL(a.cfg.BaseURL),
				web.WithLogger(a.logger),
				web.WithGenerator(gen),
				web.WithReadinessCheck("storage", storageProbe(store)),
			)
			if err != nil {
				return err
			}

			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}
			srv, err := server.NewFromConfig(cfg, server.WithLogger(a.logger))
			if err != nil {
				return err
			}

			a.logger.InfoContext(ctx, "starting",
				logger.Component("cli"),
				slog.String("addr", cfg.Addr),
				slog.String("base_url", a.cfg.BaseURL),
				slog.String("storage", a.cfg.Storage.Driver),
				slog.Int("routes", len(h.Routes())),
			)

			g, ctx := errgroup.WithContext(ctx)
			g.Go(srv.Run(ctx, h))
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides SERVER_ADDR")
	return cmd
}
