package user

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	permService middleware.PermissionService,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ExtractUserID())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(rate.Limit(3), 10),
			middleware.Authorize(permService, "user", "read"),
			handler.GetAll,
		)
		users.GET("/:id",
			middleware.RateLimitByUser(rate.Limit(3), 10),
			middleware.Authorize(permService, "user", "read"),
			handler.GetById,
		)
		users.PUT("/:id",
			middleware.RateLimitByUser(rate.Limit(0.5), 2),
			middleware.Authorize(permService, "user", "manage"),
			handler.Update,
		)
	}
}
