package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Production encoding is
// used when APP_ENV=production, the readable development encoder
// otherwise.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
