package task_test

import (
	"testing"
	"time"

	"go-taskboard/internal/task"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeTask(name, status, priority string, workTypes []string, due *time.Time) task.Task {
	return task.Task{
		ID:        uuid.New(),
		Name:      name,
		Status:    status,
		Priority:  priority,
		WorkTypes: task.WorkTypeList(workTypes),
		DueDate:   due,
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local),
	}
}

func TestApplyFilters(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.Local) // thứ Tư

	today := time.Date(2026, 3, 18, 23, 30, 0, 0, time.Local)
	nextWeek := time.Date(2026, 3, 25, 8, 0, 0, 0, time.Local)
	lastMonth := time.Date(2026, 2, 10, 8, 0, 0, 0, time.Local)

	tasks := []task.Task{
		makeTask("Báo giá khách A", task.StatusNewRequests, task.PriorityHigh, []string{task.WorkTypeQuoteNew}, &today),
		makeTask("Gặp kiến trúc sư", task.StatusApproved, task.PriorityNormal, []string{task.WorkTypeArchitectNew}, &nextWeek),
		makeTask("Chăm sóc đại lý cũ", task.StatusLive, task.PriorityLow, []string{task.WorkTypePartnerOld}, &lastMonth),
	}

	t.Run("khong loc - giu nguyen tat ca", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{}, now)
		assert.Len(t, out, 3)
	})

	t.Run("search khong phan biet hoa thuong", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{SearchTerm: "  báo GIÁ "}, now)
		assert.Len(t, out, 1)
		assert.Equal(t, "Báo giá khách A", out[0].Name)
	})

	t.Run("loc theo ngay hom nay", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{DateFilter: task.DateFilterToday}, now)
		assert.Len(t, out, 1)
		assert.Equal(t, "Báo giá khách A", out[0].Name)
	})

	t.Run("loc theo tuan - tuan sau bi loai", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{DateFilter: task.DateFilterWeek}, now)
		assert.Len(t, out, 1)
		assert.Equal(t, "Báo giá khách A", out[0].Name)
	})

	t.Run("loc theo thang", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{DateFilter: task.DateFilterMonth}, now)
		assert.Len(t, out, 2)
	})

	t.Run("loc theo loai viec", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{WorkType: task.WorkTypePartnerOld}, now)
		assert.Len(t, out, 1)
		assert.Equal(t, "Chăm sóc đại lý cũ", out[0].Name)
	})

	t.Run("loai viec la duoc quy ve other", func(t *testing.T) {
		other := makeTask("Việc linh tinh", task.StatusNewRequests, task.PriorityNormal, []string{"ABC-123"}, nil)
		out := task.ApplyFilters([]task.Task{other}, task.Filters{WorkType: "khong-ton-tai"}, now)
		// filter lạ -> other, task có work type lạ cũng đã chuẩn về other khi Scan
		assert.Len(t, out, 0)
	})

	t.Run("cac dieu kien la AND", func(t *testing.T) {
		out := task.ApplyFilters(tasks, task.Filters{
			SearchTerm: "báo giá",
			Priority:   task.PriorityLow,
		}, now)
		assert.Empty(t, out)
	})

	t.Run("task khong co ngay dung created_at", func(t *testing.T) {
		noDates := makeTask("Không hạn", task.StatusNewRequests, task.PriorityNormal, nil, nil)
		out := task.ApplyFilters([]task.Task{noDates}, task.Filters{DateFilter: task.DateFilterToday}, now)
		assert.Empty(t, out)
	})
}

func TestGroupByStatus(t *testing.T) {
	t.Run("thu tu nhom co dinh, nhom rong bi loai", func(t *testing.T) {
		tasks := []task.Task{
			makeTask("C", task.StatusLive, task.PriorityLow, nil, nil),
			makeTask("A", task.StatusNewRequests, task.PriorityHigh, nil, nil),
			makeTask("B", task.StatusNewRequests, task.PriorityNormal, nil, nil),
		}

		groups := task.GroupByStatus(tasks)

		assert.Len(t, groups, 2)
		assert.Equal(t, task.StatusNewRequests, groups[0].Key)
		assert.Equal(t, "Chưa bắt đầu", groups[0].Label)
		assert.Len(t, groups[0].Tasks, 2)
		assert.Equal(t, task.StatusLive, groups[1].Key)
		assert.Equal(t, "Hoàn thành", groups[1].Label)
	})

	t.Run("trang thai la don ve nhom chua bat dau", func(t *testing.T) {
		tasks := []task.Task{
			makeTask("X", "archived", task.PriorityNormal, nil, nil),
		}

		groups := task.GroupByStatus(tasks)

		assert.Len(t, groups, 1)
		assert.Equal(t, task.StatusNewRequests, groups[0].Key)
	})

	t.Run("khong co task - khong co nhom", func(t *testing.T) {
		assert.Empty(t, task.GroupByStatus(nil))
	})
}
