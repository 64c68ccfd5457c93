package main

import (
	"flag"

	"github.com/netkv/netkv/pkg/config"
	"github.com/netkv/netkv/pkg/logger"
	"github.com/netkv/netkv/server"
	"go.uber.org/fx"
)

func main() {
	addr := flag.String("addr", "", "listen address (host:port)")
	storage := flag.String("storage", "", "snapshot file path")
	metricsAddr := flag.String("metrics-addr", "", "metrics endpoint address, disabled when empty")
	flag.Parse()

	app := fx.New(
		logger.Module("netkv-server"),
		config.Module(),
		// Command-line flags take precedence over environment and file
		fx.Decorate(func(cfg *config.Config) *config.Config {
			if *addr != "" {
				cfg.Addr = *addr
			}
			if *storage != "" {
				cfg.StoragePath = *storage
			}
			if *metricsAddr != "" {
				cfg.MetricsAddr = *metricsAddr
			}
			return cfg
		}),
		server.Module(),
	)

	app.Run()
}
