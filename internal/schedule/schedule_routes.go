package schedule

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	permService middleware.PermissionService,
	rdb *redis.Client,
) {
	sched := r.Group("/schedule")
	sched.Use(middleware.AuthMiddleware())
	sched.Use(middleware.ExtractUserID())
	{
		sched.GET("/week", middleware.Authorize(permService, "schedule", "read"), handler.GetWeek)
		sched.PUT("/week", middleware.Authorize(permService, "schedule", "write"), handler.SaveWeek)
		sched.POST("/plans",
			middleware.Authorize(permService, "schedule", "write"),
			middleware.Idempotency(rdb),
			handler.CreatePlan,
		)
		sched.POST("/assignments", middleware.Authorize(permService, "schedule", "write"), handler.AssignShift)
	}
}
