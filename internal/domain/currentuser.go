package domain

const (
	RoleEmployee       = "employee"
	RoleTeamLeader     = "team_leader"
	RoleRetailDirector = "retail_director"
)

const (
	LocationHanoi = "hanoi"
	LocationHCM   = "hcm"
)

const (
	TabMyTasks         = "my-tasks"
	TabTeamTasks       = "team-tasks"
	TabDepartmentTasks = "department-tasks"
)

// CurrentUser là giá trị phiên được truyền tường minh xuống service,
// không đọc từ session store toàn cục.
type CurrentUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamID   string `json:"team_id"`
	Location string `json:"location"`
}

func (u CurrentUser) IsZero() bool {
	return u.ID == ""
}

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleTeamLeader, RoleRetailDirector:
		return true
	}
	return false
}

func ValidLocation(location string) bool {
	return location == LocationHanoi || location == LocationHCM
}

// LocationLabel trả về tên hiển thị tiếng Việt của khu vực.
func LocationLabel(location string) string {
	switch location {
	case LocationHanoi:
		return "Hà Nội"
	case LocationHCM:
		return "Hồ Chí Minh"
	default:
		return location
	}
}
