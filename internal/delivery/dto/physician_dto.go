package dto

// Response DTOs

type PhysicianResponse struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type PhysicianListResponse struct {
	Physicians []PhysicianResponse `json:"physicians"`
	Total      int                 `json:"total"`
}
