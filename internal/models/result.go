package models

type RecommendRequest struct {
	Skills []string `json:"skills" validate:"required,min=1"`
}

type SkillsPlacementRequest struct {
	Skills []string `json:"skills" validate:"required,min=1"`
}

type RecommendationResponse struct {
	Recommendations []string `json:"recommendations"`
}

type PlacementResponse struct {
	PlacementProbability float64 `json:"placement_probability"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type DownstreamStatus struct {
	Service ServiceName `json:"service"`
	BaseURL string      `json:"base_url"`
	Healthy bool        `json:"healthy"`
	Error   string      `json:"error,omitempty"`
	Latency string      `json:"latency"`
}

type DownstreamHealthResponse struct {
	Status   string             `json:"status"`
	Services []DownstreamStatus `json:"services"`
}
