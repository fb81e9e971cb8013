package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nakhla/datesqr/core/config"
	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/integration/storage/s3"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// app is the state shared by all commands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg      Config
	logLevel string
	logger   *slog.Logger
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.AppName),
		logger.WithOutput(cmd.ErrOrStderr()),
	}

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if level != "" {
		lvl, err := logger.ParseLevel(level)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}

	a.logger = logger.New(opts...)
	return nil
}

// storage opens the configured backend.
func (a *app) storage(ctx context.Context) (storage.Storage, error) {
	switch a.cfg.Storage.Driver {
	case "", "local":
		var opts []storage.LocalOption
		if a.cfg.Storage.LocalBaseURL != "" {
			opts = append(opts, storage.WithBaseURL(a.cfg.Storage.LocalBaseURL))
		}
		return storage.NewLocal(a.cfg.Storage.LocalDir, opts...)
	case "s3":
		return s3.New(ctx, a.cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, a.cfg.Storage.Driver)
	}
}

// generator builds a Generator with the configured render defaults followed
// by extra. store may be nil.
func (a *app) generator(store storage.Storage, extra ...qrcode.Option) (*productqr.Generator, error) {
	render, err := a.cfg.QR.Options()
	if err != nil {
		return nil, fmt.Errorf("qr config: %w", err)
	}

	opts := []productqr.GeneratorOption{
		productqr.WithRenderOptions(append(render, extra...)...),
		productqr.WithLogger(a.logger),
	}
	if store != nil {
		opts = append(opts, productqr.WithStorage(store))
	}
	return productqr.NewGenerator(opts...), nil
}
