package main

import (
	"github.com/RahimovIlhom/personnel-management/internal/app"
	"github.com/RahimovIlhom/personnel-management/internal/bootstrap"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Lifecycle audit consumer: reads personnel lifecycle events from Kafka
// and records them through the audit sink.
func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
