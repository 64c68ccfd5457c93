package engine

import (
	"context"

	"github.com/netkv/netkv/store"
	"go.uber.org/fx"
)

// Module provides the DB on top of the loaded Store and ties the command
// loop to the application lifecycle.
func Module() fx.Option {
	return fx.Options(
		store.Module,
		fx.Provide(NewDB),
		fx.Invoke(registerHooks),
	)
}

func registerHooks(lc fx.Lifecycle, db *DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
}
