package permission

import (
	"go-taskboard/internal/domain"
	permissionerrors "go-taskboard/internal/permission/errors"
)

const (
	ScopePrivate = "private"
	ScopeTeam    = "team"
	ScopePublic  = "public"
)

// TaskView là phần dữ liệu của task mà các luật hiển thị cần tới.
// Package task truyền bản chiếu này sang để tránh import vòng.
type TaskView struct {
	ID         string
	CreatedBy  string
	AssignedTo string
	TeamID     string
	Location   string
	ShareScope string
}

// DecideView là luật hiển thị thuần, không cache:
//   - người tạo hoặc người được giao luôn thấy
//   - share_scope=team: cùng nhóm
//   - share_scope=public: cùng khu vực (toàn phòng)
//   - retail_director thấy tất cả
func DecideView(u domain.CurrentUser, t TaskView) (bool, error) {
	if u.IsZero() {
		return false, permissionerrors.ErrUnauthenticated
	}

	if u.Role == domain.RoleRetailDirector {
		return true, nil
	}

	if t.CreatedBy == u.ID || t.AssignedTo == u.ID {
		return true, nil
	}

	switch t.ShareScope {
	case ScopeTeam:
		return t.TeamID != "" && t.TeamID == u.TeamID, nil
	case ScopePublic:
		return t.Location == u.Location, nil
	}

	// private: chỉ creator/assignee, đã xét ở trên
	return false, nil
}

// DecideEdit: sửa/xoá chặt hơn xem.
//   - người tạo và người được giao sửa được
//   - team_leader sửa được task trong nhóm mình
//   - retail_director sửa tất cả
func DecideEdit(u domain.CurrentUser, t TaskView) (bool, error) {
	if u.IsZero() {
		return false, permissionerrors.ErrUnauthenticated
	}

	if u.Role == domain.RoleRetailDirector {
		return true, nil
	}

	if t.CreatedBy == u.ID || t.AssignedTo == u.ID {
		return true, nil
	}

	if u.Role == domain.RoleTeamLeader && t.TeamID != "" && t.TeamID == u.TeamID {
		return true, nil
	}

	return false, nil
}
