package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-gateway/internal/config"
	"alfredoptarigan/career-gateway/internal/models"
)

func TestRecommendationForwarder_ByStudent(t *testing.T) {
	stub := newStubDownstream(t, jsonResponse(http.StatusOK, `{"recommendations":["jobC","jobA","jobB"]}`))
	forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), time.Second)

	result, err := forwarder.Recommend(context.Background(), models.RecommendByStudent{StudentID: "student1", TopN: 3})
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationResult{"jobC", "jobA", "jobB"}, result)

	last := stub.Last()
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/recommendations/student1", last.Path)
	assert.Equal(t, "top_n=3", last.Query)
}

func TestRecommendationForwarder_ByStudentDefaultsTopN(t *testing.T) {
	stub := newStubDownstream(t, jsonResponse(http.StatusOK, `{"recommendations":[]}`))
	forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), time.Second)

	result, err := forwarder.Recommend(context.Background(), models.RecommendByStudent{StudentID: "a b"})
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Equal(t, "/recommendations/a b", stub.Last().Path)
	assert.Equal(t, "top_n=5", stub.Last().Query)
}

func TestRecommendationForwarder_BySkillsIsStable(t *testing.T) {
	stub := newStubDownstream(t, jsonResponse(http.StatusOK, `{"recommendations":["Data Engineer","Backend Engineer","Data Engineer"]}`))
	forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), time.Second)

	query := models.RecommendBySkills{Skills: models.NewSkillSet([]string{"SQL", "Python"}), TopN: 2}

	first, err := forwarder.Recommend(context.Background(), query)
	require.NoError(t, err)
	second, err := forwarder.Recommend(context.Background(), query)
	require.NoError(t, err)

	want := models.RecommendationResult{"Data Engineer", "Backend Engineer", "Data Engineer"}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)

	last := stub.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/recommendations", last.Path)
	assert.Equal(t, "top_n=2", last.Query)
	assert.JSONEq(t, `{"skills":["SQL","Python"]}`, string(last.Body))
}

func TestRecommendationForwarder_EmptySkillsRejected(t *testing.T) {
	stub := newStubDownstream(t, jsonResponse(http.StatusOK, `{"recommendations":[]}`))
	forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), time.Second)

	_, err := forwarder.Recommend(context.Background(), models.RecommendBySkills{Skills: models.NewSkillSet([]string{" ", ""})})
	require.Error(t, err)
	assert.True(t, IsInputError(err))
	assert.Zero(t, stub.Calls())
}

func TestRecommendationForwarder_Failures(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		wantContract bool
	}{
		{name: "server error", handler: jsonResponse(http.StatusInternalServerError, `{"detail":"boom"}`)},
		{name: "student not found body", handler: jsonResponse(http.StatusOK, `{"error":"student not found"}`)},
		{name: "missing field", handler: jsonResponse(http.StatusOK, `{"jobs":["A"]}`), wantContract: true},
		{name: "not json", handler: jsonResponse(http.StatusOK, `<html>`), wantContract: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStubDownstream(t, tt.handler)
			forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), time.Second)

			_, err := forwarder.Recommend(context.Background(), models.RecommendByStudent{StudentID: "student9"})
			require.Error(t, err)

			var downstreamErr *DownstreamError
			assert.True(t, errors.As(err, &downstreamErr))
			assert.Equal(t, tt.wantContract, errors.Is(err, ErrContractViolation))
		})
	}
}

func TestRecommendationForwarder_Timeout(t *testing.T) {
	stub := newStubDownstream(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	forwarder := NewRecommendationForwarder(testDeps(config.ServicesConfig{RecommendationURL: stub.URL}), 50*time.Millisecond)

	start := time.Now()
	_, err := forwarder.Recommend(context.Background(), models.RecommendByStudent{StudentID: "student1"})
	require.Error(t, err)

	var downstreamErr *DownstreamError
	require.True(t, errors.As(err, &downstreamErr))
	assert.True(t, downstreamErr.Timeout())
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, stub.Calls())
}
