package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"alfredoptarigan/career-gateway/internal/models"
)

const predictPlacementPath = "/predict-placement"

type PlacementForwarder interface {
	Predict(ctx context.Context, query models.PlacementQuery) (float64, error)
}

type placementForwarder struct {
	client *downstreamClient
}

func NewPlacementForwarder(deps ForwarderDeps, timeout time.Duration) PlacementForwarder {
	return &placementForwarder{
		client: deps.client(models.ServicePlacement, timeout),
	}
}

// Predict implements PlacementForwarder. The returned probability is passed
// through as received, without clamping.
func (f *placementForwarder) Predict(ctx context.Context, query models.PlacementQuery) (float64, error) {
	var payload any

	switch q := query.(type) {
	case models.PlacementByFeatures:
		features := q.Features
		if features == nil {
			features = map[string]any{}
		}
		payload = features
	case models.PlacementBySkills:
		if q.Skills.IsEmpty() {
			return 0, &InputError{Field: "skills", Message: "skills array required"}
		}
		payload = map[string][]string{"skills": q.Skills.Values()}
	default:
		return 0, fmt.Errorf("unsupported placement query %T", query)
	}

	data, err := f.client.postJSON(ctx, predictPlacementPath, nil, payload)
	if err != nil {
		return 0, err
	}

	op := http.MethodPost + " " + predictPlacementPath
	var resp struct {
		PlacementProbability *float64 `json:"placement_probability"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, f.client.contractError(op, "invalid placement response: %v", err)
	}
	if resp.PlacementProbability == nil {
		return 0, f.client.contractError(op, "placement_probability field missing")
	}

	return *resp.PlacementProbability, nil
}
