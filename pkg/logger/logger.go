package logger

import (
	"go.uber.org/zap"
)

// New builds the production zap logger used by both binaries, tagged with
// the service name.
func New(service string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("service", service)), nil
}
