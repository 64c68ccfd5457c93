package config

import "go.uber.org/fx"

// Module provides the Config loaded from environment and file.
func Module() fx.Option {
	return fx.Provide(Load)
}
