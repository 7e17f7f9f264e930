package team

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	permService middleware.PermissionService,
) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", middleware.Authorize(permService, "team", "read"), handler.GetAll)
		teams.GET("/:id", middleware.Authorize(permService, "team", "read"), handler.GetById)
		teams.POST("", middleware.Authorize(permService, "team", "manage"), handler.Create)
		teams.PUT("/:id", middleware.Authorize(permService, "team", "manage"), handler.Update)
		teams.DELETE("/:id", middleware.Authorize(permService, "team", "manage"), handler.Delete)
	}
}
