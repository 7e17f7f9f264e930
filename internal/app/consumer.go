package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-taskboard/internal/events"
	"go-taskboard/internal/messaging/kafka/consumer"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/permission/infra"
	"go-taskboard/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer nghe sự kiện thay đổi công việc và xoá cache quyết định
// phân quyền tương ứng trong Redis.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "permission", "infra", "model.conf"))
	if err != nil {
		return err
	}
	permRepo := permission.NewRepository(gormDB)
	permService := permission.NewService(permRepo, enforcer, permission.NewDecisionCache(redisClient))

	reader := connection.NewKafkaReader(kafkaBroker, events.TaskChangedTopic, "go-taskboard-permission-cache")
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeTaskChanged(ctx, reader, permService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
