package task

import (
	"strings"
	"time"

	"go-taskboard/internal/shared/dateutil"
)

const (
	DateFilterAll   = "all"
	DateFilterToday = "today"
	DateFilterWeek  = "week"
	DateFilterMonth = "month"
)

// Filters là bộ lọc người dùng đang bật. Mọi điều kiện là AND:
// một task phải qua hết các predicate đang bật mới được giữ lại.
type Filters struct {
	SearchTerm string
	DateFilter string // all|today|week|month, rỗng = all
	WorkType   string // rỗng hoặc "all" = bỏ qua
	Priority   string // rỗng hoặc "all" = bỏ qua
}

// ApplyFilters lọc tuần tự: search -> khoảng ngày -> loại việc -> ưu tiên.
func ApplyFilters(tasks []Task, f Filters, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesSearch(t, f.SearchTerm) {
			continue
		}
		if !matchesDate(t, f.DateFilter, now) {
			continue
		}
		if !matchesWorkType(t, f.WorkType) {
			continue
		}
		if !matchesPriority(t, f.Priority) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t Task, term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}

	haystacks := []string{t.Name, t.Description}
	if t.Creator != nil {
		haystacks = append(haystacks, t.Creator.Name)
	}
	if t.Assignee != nil {
		haystacks = append(haystacks, t.Assignee.Name)
	}

	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	return false
}

// relevantDate chọn mốc thời gian để lọc: ưu tiên hạn chót,
// rồi ngày bắt đầu, cuối cùng là ngày tạo.
func relevantDate(t Task) time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	if t.StartDate != nil {
		return *t.StartDate
	}
	return t.CreatedAt
}

func matchesDate(t Task, dateFilter string, now time.Time) bool {
	switch dateFilter {
	case "", DateFilterAll:
		return true
	case DateFilterToday:
		return dateutil.SameLocalDate(relevantDate(t), now)
	case DateFilterWeek:
		return dateutil.WithinDays(relevantDate(t), dateutil.StartOfWeek(now), dateutil.EndOfWeek(now))
	case DateFilterMonth:
		return dateutil.WithinDays(relevantDate(t), dateutil.StartOfMonth(now), dateutil.EndOfMonth(now))
	}
	return true
}

func matchesWorkType(t Task, workType string) bool {
	if workType == "" || workType == "all" {
		return true
	}
	return t.WorkTypes.Contains(NormalizeWorkType(workType))
}

func matchesPriority(t Task, priority string) bool {
	if priority == "" || priority == "all" {
		return true
	}
	return t.Priority == priority
}

// statusOrder cố định thứ tự render: chưa bắt đầu -> đang làm -> hoàn thành.
var statusOrder = []struct {
	key   string
	label string
}{
	{StatusNewRequests, "Chưa bắt đầu"},
	{StatusApproved, "Đang thực hiện"},
	{StatusLive, "Hoàn thành"},
}

// GroupByStatus chia task đã lọc vào đúng một nhóm trạng thái.
// Trạng thái lạ được dồn về nhóm "chưa bắt đầu" để không mất task.
// Nhóm rỗng bị loại khỏi kết quả.
func GroupByStatus(tasks []Task) []StatusGroup {
	buckets := make(map[string][]TaskResponse, len(statusOrder))
	for _, t := range tasks {
		key := t.Status
		if !validStatus(key) {
			key = StatusNewRequests
		}
		buckets[key] = append(buckets[key], mapToResponse(t))
	}

	groups := make([]StatusGroup, 0, len(statusOrder))
	for _, st := range statusOrder {
		if len(buckets[st.key]) == 0 {
			continue
		}
		groups = append(groups, StatusGroup{
			Key:   st.key,
			Label: st.label,
			Tasks: buckets[st.key],
		})
	}
	return groups
}

func validStatus(s string) bool {
	for _, st := range statusOrder {
		if st.key == s {
			return true
		}
	}
	return false
}
