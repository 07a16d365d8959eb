package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/career-gateway/internal/models"
)

const healthPath = "/health"

type HealthChecker interface {
	Check(ctx context.Context) []models.DownstreamStatus
}

type healthChecker struct {
	clients []*downstreamClient
}

// NewHealthChecker probes the /health endpoint of every downstream service.
// Probes are not counted in the downstream metrics.
func NewHealthChecker(deps ForwarderDeps, timeout time.Duration) HealthChecker {
	deps.Metrics = nil

	clients := make([]*downstreamClient, 0, len(models.ServiceNames))
	for _, name := range models.ServiceNames {
		clients = append(clients, deps.client(name, timeout))
	}

	return &healthChecker{clients: clients}
}

// Check implements HealthChecker. All services are probed concurrently and
// the result keeps the order of models.ServiceNames.
func (h *healthChecker) Check(ctx context.Context) []models.DownstreamStatus {
	statuses := make([]models.DownstreamStatus, len(h.clients))

	var g errgroup.Group
	for i, client := range h.clients {
		i, client := i, client
		g.Go(func() error {
			start := time.Now()
			_, err := client.getJSON(ctx, healthPath, nil)

			status := models.DownstreamStatus{
				Service: client.service,
				BaseURL: client.baseURL,
				Healthy: err == nil,
				Latency: time.Since(start).Round(time.Millisecond).String(),
			}
			if err != nil {
				status.Error = err.Error()
			}
			statuses[i] = status
			return nil
		})
	}
	_ = g.Wait()

	return statuses
}

// AllHealthy reports whether every probed service answered successfully.
func AllHealthy(statuses []models.DownstreamStatus) bool {
	for _, s := range statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
