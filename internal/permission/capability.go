package permission

import (
	"go-taskboard/internal/domain"
	permissionerrors "go-taskboard/internal/permission/errors"
)

// Capabilities mô tả những gì UI được phép bày ra cho một người dùng:
// tab nào, có toggle khu vực không, có chọn nhóm chéo không.
type Capabilities struct {
	CanSeeLocationTabs bool     `json:"can_see_location_tabs"`
	CanSeeTeamSelector bool     `json:"can_see_team_selector"`
	DefaultLocation    string   `json:"default_location"`
	AllowedTabs        []string `json:"allowed_tabs"`
}

// ResolveCapabilities là hàm thuần: chỉ nhìn vào role và location của phiên,
// không đọc bất kỳ state toàn cục nào.
//
// Quyền admin đi theo role retail_director, không bao giờ so sánh theo
// tên/email của một cá nhân cụ thể.
func ResolveCapabilities(u domain.CurrentUser) (Capabilities, error) {
	if u.IsZero() {
		return Capabilities{}, permissionerrors.ErrUnauthenticated
	}

	switch u.Role {
	case domain.RoleRetailDirector:
		return Capabilities{
			CanSeeLocationTabs: true,
			CanSeeTeamSelector: true,
			DefaultLocation:    u.Location,
			AllowedTabs: []string{
				domain.TabMyTasks,
				domain.TabTeamTasks,
				domain.TabDepartmentTasks,
			},
		}, nil

	case domain.RoleTeamLeader:
		return Capabilities{
			CanSeeLocationTabs: false,
			CanSeeTeamSelector: false,
			DefaultLocation:    u.Location,
			AllowedTabs: []string{
				domain.TabMyTasks,
				domain.TabTeamTasks,
				domain.TabDepartmentTasks,
			},
		}, nil

	case domain.RoleEmployee:
		return Capabilities{
			CanSeeLocationTabs: false,
			CanSeeTeamSelector: false,
			DefaultLocation:    u.Location,
			AllowedTabs: []string{
				domain.TabMyTasks,
				domain.TabDepartmentTasks,
			},
		}, nil
	}

	return Capabilities{}, permissionerrors.ErrUnknownRole
}

// CanUseTab kiểm tra một tab có nằm trong capabilities không.
func (c Capabilities) CanUseTab(tab string) bool {
	for _, t := range c.AllowedTabs {
		if t == tab {
			return true
		}
	}
	return false
}
