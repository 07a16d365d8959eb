package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

const (
	msgPlacementFailed = "Failed to predict placement"
	PlacementGuidance  = "Use POST /placement with JSON body {\"skills\": [...]} or a student feature object"
)

type PlacementHandler struct {
	forwarder services.PlacementForwarder
	skills    *skillsDecoder
	logger    *zap.Logger
}

func NewPlacementHandler(forwarder services.PlacementForwarder, logger *zap.Logger) *PlacementHandler {
	return &PlacementHandler{
		forwarder: forwarder,
		skills:    newSkillsDecoder(),
		logger:    logger,
	}
}

// HandlePredict handles POST /placement. A body with a "skills" key is a
// skills query; any other JSON object is a feature bag passed through as is.
func (h *PlacementHandler) HandlePredict(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return badRequest(c, msgInvalidJSON)
	}

	var query models.PlacementQuery
	if _, ok := fields["skills"]; ok {
		var req models.SkillsPlacementRequest
		set, msg := h.skills.decode(body, &req, func() []string { return req.Skills })
		if msg != "" {
			return badRequest(c, msg)
		}
		query = models.PlacementBySkills{Skills: set}
	} else {
		features, err := decodeFeatures(body)
		if err != nil {
			return badRequest(c, msgInvalidJSON)
		}
		query = models.PlacementByFeatures{Features: features}
	}

	probability, err := h.forwarder.Predict(c.UserContext(), query)
	if err != nil {
		if services.IsInputError(err) {
			return badRequest(c, msgSkillsRequired)
		}

		h.logger.Error("placement prediction failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: msgPlacementFailed,
		})
	}

	return c.JSON(models.PlacementResponse{PlacementProbability: probability})
}

// decodeFeatures keeps numbers as json.Number so they are forwarded
// exactly as the client wrote them.
func decodeFeatures(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var features map[string]any
	if err := dec.Decode(&features); err != nil {
		return nil, err
	}
	return features, nil
}
