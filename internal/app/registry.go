package app

import (
	"database/sql"
	"path/filepath"

	"go-taskboard/internal/auth"
	"go-taskboard/internal/messaging/kafka"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/permission/infra"
	"go-taskboard/internal/schedule"
	"go-taskboard/internal/task"
	"go-taskboard/internal/team"
	"go-taskboard/internal/teamboard"
	"go-taskboard/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	permRepo := permission.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Permission Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "permission", "infra", "model.conf"))
	if err != nil {
		return err
	}
	decisionCache := permission.NewDecisionCache(rdb)
	permService := permission.NewService(permRepo, enforcer, decisionCache)

	// --- Services ---
	authService := auth.NewService(authRepo, permService)
	userService := user.NewService(db, userRepo)
	teamService := team.NewService(db, teamRepo, rdb)
	taskService := task.NewService(db, taskRepo, permService, outboxRepo)
	teamboardService := teamboard.NewService(teamRepo, userRepo, taskRepo, permService)
	scheduleService := schedule.NewService(db, scheduleRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	teamHandler := team.NewHandler(teamService)
	taskHandler := task.NewHandler(taskService)
	teamboardHandler := teamboard.NewHandler(teamboardService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	permHandler := permission.NewHandler(permService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, permService, logger)
		team.RegisterRoutes(api, teamHandler, permService)
		task.RegisterRoutes(api, taskHandler, permService, rdb, logger)
		teamboard.RegisterRoutes(api, teamboardHandler, permService)
		schedule.RegisterRoutes(api, scheduleHandler, permService, rdb)
		permission.RegisterRoutes(api, permHandler)
	}

	return nil
}
