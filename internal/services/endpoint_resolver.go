package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/career-gateway/internal/config"
	"alfredoptarigan/career-gateway/internal/models"
)

// Well-known locations used when a service location is not configured.
var defaultBaseURLs = map[models.ServiceName]string{
	models.ServiceExtraction:     "http://localhost:8001",
	models.ServiceRecommendation: "http://localhost:8002",
	models.ServicePlacement:      "http://localhost:8003",
}

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

type EndpointResolver interface {
	Resolve(name models.ServiceName) string
	Targets() []models.ServiceTarget
}

type endpointResolver struct {
	targets map[models.ServiceName]models.ServiceTarget
}

// NewEndpointResolver resolves every service location once. The result is
// immutable and safe for concurrent reads.
func NewEndpointResolver(cfg config.ServicesConfig) EndpointResolver {
	configured := map[models.ServiceName]string{
		models.ServiceExtraction:     cfg.ExtractionURL,
		models.ServiceRecommendation: cfg.RecommendationURL,
		models.ServicePlacement:      cfg.PlacementURL,
	}

	targets := make(map[models.ServiceName]models.ServiceTarget, len(configured))
	for _, name := range models.ServiceNames {
		targets[name] = models.ServiceTarget{
			Name:            name,
			ConfiguredValue: configured[name],
			BaseURL:         ResolveBaseURL(name, configured[name]),
		}
	}

	return &endpointResolver{targets: targets}
}

// Resolve implements EndpointResolver. Unknown names resolve to "".
func (r *endpointResolver) Resolve(name models.ServiceName) string {
	return r.targets[name].BaseURL
}

// Targets implements EndpointResolver.
func (r *endpointResolver) Targets() []models.ServiceTarget {
	out := make([]models.ServiceTarget, 0, len(r.targets))
	for _, name := range models.ServiceNames {
		out = append(out, r.targets[name])
	}
	return out
}

// ResolveBaseURL never fails: an absent value falls back to the service
// default, a value with any scheme is used as is, and a value without one
// gets http:// prepended. Unrecognized schemes are not rejected.
func ResolveBaseURL(name models.ServiceName, configured string) string {
	value := strings.TrimSpace(configured)
	if value == "" {
		return defaultBaseURLs[name]
	}

	if !schemePattern.MatchString(value) {
		value = "http://" + value
	}

	return strings.TrimRight(value, "/")
}
