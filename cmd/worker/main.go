package main

import (
	"github.com/RahimovIlhom/personnel-management/internal/app"
	"github.com/RahimovIlhom/personnel-management/internal/bootstrap"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Outbox relay: polls the outbox table and publishes pending personnel
// lifecycle events to Kafka.
func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
