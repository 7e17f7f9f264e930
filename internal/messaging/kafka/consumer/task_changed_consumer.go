package consumer

import (
	"context"
	"encoding/json"

	"go-taskboard/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PermissionInvalidator là phần duy nhất của permission service
// mà consumer cần chạm tới.
type PermissionInvalidator interface {
	InvalidateTask(ctx context.Context, taskID string)
}

// ConsumeTaskChanged nghe topic task thay đổi và xoá cache quyết định
// quyền của task đó trên mọi instance. Không có bước này, instance khác
// có thể trả lời "được xem" dựa trên snapshot cũ tới hết TTL.
func ConsumeTaskChanged(
	ctx context.Context,
	reader *kafkago.Reader,
	invalidator PermissionInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.task_changed")
	log.Info("task changed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("task changed consumer stopped")
				return
			}
			log.Error("fetch task changed message failed", zap.Error(err))
			continue
		}

		var event events.TaskChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode task changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.TaskID != "" {
			invalidator.InvalidateTask(ctx, event.TaskID)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit task changed message failed", zap.Error(err))
			continue
		}

		log.Info("permission cache invalidated from event",
			zap.String("task_id", event.TaskID),
			zap.String("event_type", event.EventType),
		)
	}
}
