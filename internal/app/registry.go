package app

import (
	"context"

	"github.com/RahimovIlhom/personnel-management/internal/auth"
	"github.com/RahimovIlhom/personnel-management/internal/department"
	"github.com/RahimovIlhom/personnel-management/internal/messaging/kafka"
	"github.com/RahimovIlhom/personnel-management/internal/personnel"
	"github.com/RahimovIlhom/personnel-management/internal/position"
	"github.com/RahimovIlhom/personnel-management/internal/refdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	refdataRepo := refdata.NewRepository(gormDB)
	personnelRepo := personnel.NewRepository(gormDB)
	historyRepo := personnel.NewHistoryRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(gormDB, departmentRepo, logger)
	positionService := position.NewService(gormDB, positionRepo, logger)
	refdataService := refdata.NewService(refdataRepo, rdb, logger)
	personnelService := personnel.NewServiceWithOutbox(
		gormDB,
		personnelRepo,
		historyRepo,
		outboxRepo,
		rdb,
		logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService, logger)
	positionHandler := position.NewHandler(positionService, logger)
	refdataHandler := refdata.NewHandler(refdataService, logger)
	personnelHandler := personnel.NewHandler(personnelService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, logger)
		position.RegisterRoutes(api, positionHandler, logger)
		refdata.RegisterRoutes(api, refdataHandler, logger)
		personnel.RegisterRoutes(api, personnelHandler, logger)
	}

	return nil
}

func syncRefData(ctx context.Context, gormDB *gorm.DB, rdb *redis.Client) error {
	svc := refdata.NewService(refdata.NewRepository(gormDB), rdb)
	return svc.SyncSeedData(ctx)
}
