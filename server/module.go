package server

import (
	"context"

	"github.com/netkv/netkv/engine"
	"github.com/netkv/netkv/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the TCP server wired with fx, on top of the engine. The
// engine's lifecycle hook registers first so fx stops it last: teardown
// runs listener, then handlers, then the command loop.
func Module() fx.Option {
	return fx.Options(
		engine.Module(),
		fx.Provide(New),
		fx.Invoke(RegisterHooks),
		fx.Invoke(registerMetricsHooks),
	)
}

// RegisterHooks starts and stops the server using the fx Lifecycle. The
// bind happens during OnStart so a bad address aborts startup.
func RegisterHooks(lc fx.Lifecycle, srv *Server, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := srv.Start(cfg.Addr); err != nil {
				return err
			}
			logger.Info("Starting netkv key-value store",
				zap.String("addr", cfg.Addr),
				zap.String("storage", cfg.StoragePath))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping netkv server")
			return srv.Stop()
		},
	})
}
