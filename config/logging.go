package config

import (
	"go.uber.org/zap"

	"github.com/biit/biit-api/logging"
)

// setLogger picks the zap logger for the given environment
func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}
