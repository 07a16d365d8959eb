package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

type HealthHandler struct {
	checker services.HealthChecker
}

func NewHealthHandler(checker services.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// HandleHealth is a liveness check only; it never calls downstream.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}

// HandleDownstream handles GET /health/downstream
func (h *HealthHandler) HandleDownstream(c *fiber.Ctx) error {
	statuses := h.checker.Check(c.UserContext())

	if !services.AllHealthy(statuses) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.DownstreamHealthResponse{
			Status:   "degraded",
			Services: statuses,
		})
	}

	return c.JSON(models.DownstreamHealthResponse{
		Status:   "ok",
		Services: statuses,
	})
}
