package schedule

type CreatePlanRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	ScheduledTime *string `json:"scheduled_time"`
	TaskID        *string `json:"task_id" binding:"omitempty,uuid"`
}

type PlanResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	ScheduledDate string  `json:"scheduled_date"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	TaskID        string  `json:"task_id,omitempty"`
	CreatedBy     string  `json:"created_by"`
	Location      string  `json:"location"`
}

// WeekQuery nhận một ngày bất kỳ trong tuần cần xem, tuần được neo về
// thứ Hai phía server.
type WeekQuery struct {
	Date string `form:"date" binding:"required"`
}

type AssignmentInput struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Slot       string `json:"slot" binding:"required"`
	Location   string `json:"location" binding:"required,oneof=hanoi hcm"`
}

// SaveWeekRequest là thao tác lưu cả tuần: bộ assignment gửi lên
// thay thế toàn bộ assignment đã lưu trong khoảng tuần đó.
type SaveWeekRequest struct {
	Date        string            `json:"date" binding:"required"`
	Assignments []AssignmentInput `json:"assignments" binding:"dive"`
}

type AssignShiftRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	Date           string `json:"date" binding:"required"`
	Slot           string `json:"slot" binding:"required"`
	Location       string `json:"location" binding:"required,oneof=hanoi hcm"`
	ConfirmReplace bool   `json:"confirm_replace"`
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Location   string `json:"location"`
}

// WeekGridResponse là lưới tuần: ngày theo thứ tự Thứ Hai -> Chủ Nhật,
// assignment và kế hoạch gom theo khoá ngày địa phương.
type WeekGridResponse struct {
	WeekStart   string                          `json:"week_start"`
	WeekEnd     string                          `json:"week_end"`
	Days        []string                        `json:"days"`
	Assignments map[string][]AssignmentResponse `json:"assignments"`
	Plans       map[string][]PlanResponse       `json:"plans"`
}
