package task

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	permService middleware.PermissionService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ExtractUserID())
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("",
			middleware.RateLimitByUser(rate.Limit(3), 10),
			middleware.Authorize(permService, "task", "read"),
			handler.List,
		)
		tasks.GET("/:id",
			middleware.RateLimitByUser(rate.Limit(5), 20),
			middleware.Authorize(permService, "task", "read"),
			handler.GetById,
		)
		tasks.POST("",
			middleware.RateLimitByUser(rate.Limit(1), 5),
			middleware.Authorize(permService, "task", "write"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		tasks.PUT("/:id",
			middleware.RateLimitByUser(rate.Limit(1), 5),
			middleware.Authorize(permService, "task", "write"),
			handler.Update,
		)
		tasks.DELETE("/:id",
			middleware.RateLimitByUser(rate.Limit(0.5), 2),
			middleware.Authorize(permService, "task", "write"),
			handler.Delete,
		)
	}
}
