package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)
		departments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
		departments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)
		departments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		departments.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Delete,
		)
	}
}
