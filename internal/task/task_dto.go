package task

type CreateTaskRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	WorkTypes   []string `json:"work_types"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low normal high"`
	ShareScope  string   `json:"share_scope" binding:"omitempty,oneof=private team public"`
	AssignedTo  *string  `json:"assigned_to"`
	StartDate   *string  `json:"start_date"`
	DueDate     *string  `json:"due_date"`
}

type UpdateTaskRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	WorkTypes   []string `json:"work_types"`
	Priority    string   `json:"priority" binding:"required,oneof=low normal high"`
	Status      string   `json:"status" binding:"required,oneof=new-requests approved live"`
	ShareScope  string   `json:"share_scope" binding:"required,oneof=private team public"`
	AssignedTo  *string  `json:"assigned_to"`
	StartDate   *string  `json:"start_date"`
	DueDate     *string  `json:"due_date"`
}

// ListTasksQuery là toàn bộ input của thao tác liệt kê:
// tab đang mở + toggle khu vực + bộ lọc.
type ListTasksQuery struct {
	Tab        string `form:"tab" binding:"required,oneof=my-tasks team-tasks department-tasks"`
	Location   string `form:"location" binding:"omitempty,oneof=hanoi hcm"`
	TeamID     string `form:"team_id" binding:"omitempty,uuid"`
	Search     string `form:"search"`
	DateFilter string `form:"date_filter" binding:"omitempty,oneof=all today week month"`
	WorkType   string `form:"work_type"`
	Priority   string `form:"priority" binding:"omitempty,oneof=low normal high"`
}

type TaskResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	WorkTypes    []string `json:"work_types"`
	Priority     string   `json:"priority"`
	Status       string   `json:"status"`
	ShareScope   string   `json:"share_scope"`
	CreatedBy    string   `json:"created_by"`
	CreatorName  string   `json:"creator_name,omitempty"`
	AssignedTo   string   `json:"assigned_to,omitempty"`
	AssigneeName string   `json:"assignee_name,omitempty"`
	TeamID       string   `json:"team_id,omitempty"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date,omitempty"`
	DueDate      string   `json:"due_date,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// StatusGroup là một nhóm trạng thái trong kết quả render.
type StatusGroup struct {
	Key   string         `json:"key"`
	Label string         `json:"label"`
	Tasks []TaskResponse `json:"tasks"`
}
