package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

const (
	msgRecommendationFailed = "Failed to fetch recommendations"
	RecommendGuidance       = "Use GET /jobs/recommend/{studentId} or POST /jobs/recommend with JSON body {\"skills\": [...]}"
)

type RecommendationHandler struct {
	forwarder services.RecommendationForwarder
	skills    *skillsDecoder
	logger    *zap.Logger
}

func NewRecommendationHandler(forwarder services.RecommendationForwarder, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		forwarder: forwarder,
		skills:    newSkillsDecoder(),
		logger:    logger,
	}
}

// HandleByStudent handles GET /jobs/recommend/:studentId
func (h *RecommendationHandler) HandleByStudent(c *fiber.Ctx) error {
	topN, err := parseTopN(c.Query("top_n"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	query := models.RecommendByStudent{
		StudentID: c.Params("studentId"),
		TopN:      topN,
	}
	return h.recommend(c, query)
}

// HandleBySkills handles POST /jobs/recommend
func (h *RecommendationHandler) HandleBySkills(c *fiber.Ctx) error {
	topN, err := parseTopN(c.Query("top_n"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req models.RecommendRequest
	set, msg := h.skills.decode(c.Body(), &req, func() []string { return req.Skills })
	if msg != "" {
		return badRequest(c, msg)
	}

	return h.recommend(c, models.RecommendBySkills{Skills: set, TopN: topN})
}

func (h *RecommendationHandler) recommend(c *fiber.Ctx, query models.RecommendationQuery) error {
	result, err := h.forwarder.Recommend(c.UserContext(), query)
	if err != nil {
		if services.IsInputError(err) {
			return badRequest(c, msgSkillsRequired)
		}

		h.logger.Error("recommendation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: msgRecommendationFailed,
		})
	}

	return c.JSON(models.RecommendationResponse{Recommendations: result})
}
