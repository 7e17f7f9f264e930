package team

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required,oneof=hanoi hcm"`
}

type UpdateTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required,oneof=hanoi hcm"`
}

type TeamResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
