package permission

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	decisionTTL = 10 * time.Minute

	taskDecisionKeyPrefix = "perm:task:"
)

func taskDecisionKey(taskID, userID string) string {
	return fmt.Sprintf("%s%s:%s", taskDecisionKeyPrefix, taskID, userID)
}

func taskDecisionPattern(taskID string) string {
	return fmt.Sprintf("%s%s:*", taskDecisionKeyPrefix, taskID)
}

// DecisionCache giữ kết quả xét quyền theo từng task id trên Redis.
// Kết quả phụ thuộc các trường mutable của task (share_scope, assigned_to)
// nên mọi mutation trên task phải gọi InvalidateTask.
type DecisionCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewDecisionCache(rdb *redis.Client, logger ...*zap.Logger) *DecisionCache {
	l := zap.L().Named("permission.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.cache")
	}
	return &DecisionCache{rdb: rdb, logger: l}
}

// Get trả về (decision, found).
func (c *DecisionCache) Get(ctx context.Context, taskID, userID string) (bool, bool) {
	if c == nil || c.rdb == nil {
		return false, false
	}

	val, err := c.rdb.Get(ctx, taskDecisionKey(taskID, userID)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (c *DecisionCache) Set(ctx context.Context, taskID, userID string, allowed bool) {
	if c == nil || c.rdb == nil {
		return
	}

	val := "0"
	if allowed {
		val = "1"
	}
	if err := c.rdb.Set(ctx, taskDecisionKey(taskID, userID), val, decisionTTL).Err(); err != nil {
		c.logger.Error("set permission decision failed", zap.String("task_id", taskID), zap.Error(err))
	}
}

// InvalidateTask xoá mọi quyết định đã cache của một task, cho tất cả user.
func (c *DecisionCache) InvalidateTask(ctx context.Context, taskID string) {
	if c == nil || c.rdb == nil {
		return
	}

	var cursor uint64
	pattern := taskDecisionPattern(taskID)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			c.logger.Error("scan permission decisions failed", zap.String("task_id", taskID), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.logger.Error("delete permission decisions failed", zap.String("task_id", taskID), zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
