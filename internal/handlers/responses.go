package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

const (
	msgSkillsRequired = "skills array required"
	msgInvalidJSON    = "invalid JSON body"
	msgInvalidTopN    = "top_n must be a non-negative integer"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: message})
}

// MethodNotAllowed answers browser navigation to a write-only route with a
// hint on how to call it instead of forwarding anything.
func MethodNotAllowed(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{
			Error:   "Method Not Allowed",
			Message: message,
		})
	}
}

// parseTopN treats an absent, non-numeric or zero value as the default and
// rejects negative values.
func parseTopN(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultTopN, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return models.DefaultTopN, nil
	}
	if n < 0 {
		return 0, errors.New(msgInvalidTopN)
	}

	return n, nil
}

// downstreamDetail exposes what the downstream sent back, or the failure
// message when nothing was received.
func downstreamDetail(err error) any {
	var downstreamErr *services.DownstreamError
	if errors.As(err, &downstreamErr) {
		return downstreamErr.Detail()
	}
	return err.Error()
}
