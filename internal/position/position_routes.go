package position

import (
	"github.com/RahimovIlhom/personnel-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	positions.Use(middleware.ContextLogger(logger))
	{
		positions.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)
		positions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
		positions.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)
		positions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		positions.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Delete,
		)
	}
}
