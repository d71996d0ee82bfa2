package logutils

import (
	"go.uber.org/zap"
)

// NewLogger builds the logger for env: "prod" logs JSON at info, "quiet" logs
// nothing, anything else logs human readable output at debug.
func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case "prod":
		return zap.NewProduction()
	case "quiet":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}
