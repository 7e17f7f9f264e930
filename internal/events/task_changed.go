package events

import "time"

const TaskChangedTopic = "taskboard.task.changed.v1"

const (
	TaskEventCreated = "task_created"
	TaskEventUpdated = "task_updated"
	TaskEventDeleted = "task_deleted"
)

// TaskChangedEvent phát mỗi khi một task sinh ra, đổi nội dung hoặc bị xoá.
// Consumer dùng nó để xoá cache quyết định quyền theo task.
type TaskChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TaskID     string    `json:"task_id"`
	TeamID     string    `json:"team_id,omitempty"`
	Location   string    `json:"location"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
