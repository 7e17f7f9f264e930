package teamboard

import "go-taskboard/internal/task"

// OverviewQuery là input của màn hình tổng quan theo nhóm.
// team_id và location chỉ có tác dụng với người có quyền chọn nhóm chéo.
type OverviewQuery struct {
	Location string `form:"location" binding:"omitempty,oneof=hanoi hcm"`
	TeamID   string `form:"team_id" binding:"omitempty,uuid"`
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
}

type MemberSummary struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	TaskCount int    `json:"task_count"`
}

type TeamBoard struct {
	TeamID     string             `json:"team_id"`
	TeamName   string             `json:"team_name"`
	Location   string             `json:"location"`
	TaskCount  int                `json:"task_count"`
	TaskGroups []task.StatusGroup `json:"task_groups"`
	Members    []MemberSummary    `json:"members"`
}
