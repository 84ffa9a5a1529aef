package app

import (
	"context"
	"os"

	"github.com/RahimovIlhom/personnel-management/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	// SyncRefData upserts the embedded region registry at startup.
	SyncRefData bool
}

func BuildApp(router *gin.Engine, opts Options) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	if err := registerModules(router, gormDB, redisClient); err != nil {
		return err
	}

	if opts.SyncRefData {
		if err := syncRefData(context.Background(), gormDB, redisClient); err != nil {
			return err
		}
	}

	return nil
}
