package user

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamID   string `json:"team_id,omitempty"`
	Location string `json:"location"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required,oneof=employee team_leader retail_director"`
	TeamID   *string `json:"team_id"`
	Location string  `json:"location" binding:"required,oneof=hanoi hcm"`
}
