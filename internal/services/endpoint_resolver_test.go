package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/career-gateway/internal/config"
	"alfredoptarigan/career-gateway/internal/models"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		service    models.ServiceName
		configured string
		want       string
	}{
		{name: "extraction default", service: models.ServiceExtraction, want: "http://localhost:8001"},
		{name: "recommendation default", service: models.ServiceRecommendation, want: "http://localhost:8002"},
		{name: "placement default", service: models.ServicePlacement, want: "http://localhost:8003"},
		{name: "blank counts as absent", service: models.ServicePlacement, configured: "   ", want: "http://localhost:8003"},
		{name: "host and port without scheme", service: models.ServiceExtraction, configured: "nlp:9001", want: "http://nlp:9001"},
		{name: "bare host", service: models.ServiceRecommendation, configured: "cf.internal", want: "http://cf.internal"},
		{name: "http kept", service: models.ServiceRecommendation, configured: "http://cf:8002", want: "http://cf:8002"},
		{name: "https kept", service: models.ServicePlacement, configured: "https://placement.example.com", want: "https://placement.example.com"},
		{name: "unrecognized scheme passes through", service: models.ServicePlacement, configured: "grpc://placement:50051", want: "grpc://placement:50051"},
		{name: "trailing slash trimmed", service: models.ServiceExtraction, configured: "https://nlp.example.com/", want: "https://nlp.example.com"},
		{name: "trailing slash trimmed after scheme patch", service: models.ServiceExtraction, configured: "nlp:8001//", want: "http://nlp:8001"},
		{name: "path prefix kept", service: models.ServiceExtraction, configured: "gateway.local/nlp", want: "http://gateway.local/nlp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.service, tt.configured))
		})
	}
}

func TestEndpointResolver_DistinctDefaults(t *testing.T) {
	r := NewEndpointResolver(config.ServicesConfig{})

	seen := map[string]bool{}
	for _, name := range models.ServiceNames {
		seen[r.Resolve(name)] = true
	}
	assert.Len(t, seen, 3)
}

func TestEndpointResolver_Targets(t *testing.T) {
	r := NewEndpointResolver(config.ServicesConfig{
		ExtractionURL: "nlp:8001",
		PlacementURL:  "https://placement",
	})

	targets := r.Targets()
	assert.Equal(t, []models.ServiceTarget{
		{Name: models.ServiceExtraction, ConfiguredValue: "nlp:8001", BaseURL: "http://nlp:8001"},
		{Name: models.ServiceRecommendation, BaseURL: "http://localhost:8002"},
		{Name: models.ServicePlacement, ConfiguredValue: "https://placement", BaseURL: "https://placement"},
	}, targets)
	assert.Empty(t, r.Resolve(models.ServiceName("unknown")))
}
