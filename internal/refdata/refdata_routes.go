package refdata

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
	refs := r.Group("/refdata")
	refs.Use(middleware.AuthMiddleware())
	refs.Use(middleware.ContextLogger(logger))
	refs.Use(middleware.RateLimitByUser(5, 20))
	{
		refs.GET("/regions", handler.GetRegions)
		refs.GET("/districts", handler.GetDistricts)
		refs.GET("/nations", handler.GetNations)
		refs.GET("/education-levels", handler.GetEducationLevels)
		refs.GET("/academic-degrees", handler.GetAcademicDegrees)
		refs.GET("/academic-specializations", handler.GetAcademicSpecializations)
		refs.GET("/academic-titles", handler.GetAcademicTitles)
	}
}
