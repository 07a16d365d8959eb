package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"alfredoptarigan/career-gateway/internal/models"
)

const recommendationsPath = "/recommendations"

type RecommendationForwarder interface {
	Recommend(ctx context.Context, query models.RecommendationQuery) (models.RecommendationResult, error)
}

type recommendationForwarder struct {
	client *downstreamClient
}

func NewRecommendationForwarder(deps ForwarderDeps, timeout time.Duration) RecommendationForwarder {
	return &recommendationForwarder{
		client: deps.client(models.ServiceRecommendation, timeout),
	}
}

// Recommend implements RecommendationForwarder. A student lookup is a GET on
// the student resource; an ad hoc skill set has no resource identifier and
// is sent as a POST body.
func (f *recommendationForwarder) Recommend(ctx context.Context, query models.RecommendationQuery) (models.RecommendationResult, error) {
	var (
		op   string
		data []byte
		err  error
	)

	switch q := query.(type) {
	case models.RecommendByStudent:
		if strings.TrimSpace(q.StudentID) == "" {
			return nil, &InputError{Field: "studentId", Message: "student id required"}
		}
		path := recommendationsPath + "/" + url.PathEscape(q.StudentID)
		op = http.MethodGet + " " + path
		data, err = f.client.getJSON(ctx, path, topNQuery(q.Limit()))
	case models.RecommendBySkills:
		if q.Skills.IsEmpty() {
			return nil, &InputError{Field: "skills", Message: "skills array required"}
		}
		op = http.MethodPost + " " + recommendationsPath
		data, err = f.client.postJSON(ctx, recommendationsPath, topNQuery(q.Limit()), map[string][]string{
			"skills": q.Skills.Values(),
		})
	default:
		return nil, fmt.Errorf("unsupported recommendation query %T", query)
	}
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations *[]string       `json:"recommendations"`
		Error           json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, f.client.contractError(op, "invalid recommendations response: %v", err)
	}

	if payload.Recommendations == nil {
		if len(payload.Error) > 0 {
			// The recommendation service reports unknown students in a 2xx body.
			return nil, &DownstreamError{
				Service: models.ServiceRecommendation,
				Op:      op,
				Payload: data,
				Err:     fmt.Errorf("downstream reported an error"),
			}
		}
		return nil, f.client.contractError(op, "recommendations field missing")
	}

	return models.RecommendationResult(*payload.Recommendations), nil
}

func topNQuery(n int) url.Values {
	return url.Values{"top_n": []string{strconv.Itoa(n)}}
}
