package models

type ServiceName string

const (
	ServiceExtraction     ServiceName = "extraction"
	ServiceRecommendation ServiceName = "recommendation"
	ServicePlacement      ServiceName = "placement"
)

// ServiceNames lists every downstream service in a stable order.
var ServiceNames = []ServiceName{
	ServiceExtraction,
	ServiceRecommendation,
	ServicePlacement,
}

// ServiceTarget pairs a downstream service with its configured location.
// An empty ConfiguredValue means nothing was configured.
type ServiceTarget struct {
	Name            ServiceName `json:"name"`
	ConfiguredValue string      `json:"configured_value,omitempty"`
	BaseURL         string      `json:"base_url"`
}
