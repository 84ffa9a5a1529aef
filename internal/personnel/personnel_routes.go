package personnel

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
	// Two read views over the one personnel table, split by kind.
	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetCandidates,
		)
		candidates.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.CreateCandidate,
		)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetEmployees,
		)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.CreateEmployee,
		)
	}

	personnel := r.Group("/personnel")
	personnel.Use(middleware.AuthMiddleware())
	personnel.Use(middleware.ContextLogger(logger))
	{
		personnel.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)

		personnel.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		personnel.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateFields,
		)

		personnel.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateStatus,
		)

		personnel.POST("/:id/convert",
			middleware.RateLimitByUser(0.2, 1),
			handler.Convert,
		)

		personnel.GET("/:id/history",
			middleware.RateLimitByUser(3, 10),
			handler.GetHistory,
		)
	}
}
