package store

import (
	"github.com/netkv/netkv/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Store, loaded from the configured snapshot path.
var Module = fx.Provide(Open)

// Open loads the Store from the configured snapshot path. Load failure is
// not fatal: the server starts with an empty store and a warning rather
// than refusing to start.
func Open(logger *zap.Logger, cfg *config.Config) *Store {
	s, err := Load(cfg.StoragePath)
	if err != nil {
		logger.Warn("Could not load snapshot, starting empty",
			zap.String("path", cfg.StoragePath), zap.Error(err))
		return New()
	}
	if s.Len() > 0 {
		logger.Info("Loaded snapshot",
			zap.String("path", cfg.StoragePath), zap.Int("keys", s.Len()))
	}
	return s
}
