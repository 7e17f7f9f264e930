package teamboard

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	permService middleware.PermissionService,
) {
	board := r.Group("/teamboard")
	board.Use(middleware.AuthMiddleware())
	{
		board.GET("", middleware.Authorize(permService, "task", "read"), handler.Overview)
	}
}
