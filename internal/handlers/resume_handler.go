package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

const (
	resumeField          = "resume"
	ResumeUploadGuidance = "Use POST /resumes/upload with multipart/form-data and field name 'resume'"
)

type ResumeHandler struct {
	forwarder services.ResumeForwarder
	logger    *zap.Logger
}

func NewResumeHandler(forwarder services.ResumeForwarder, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		forwarder: forwarder,
		logger:    logger,
	}
}

// HandleUpload handles POST /resumes/upload
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(resumeField)
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return badRequest(c, "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to parse resume",
			Details: "failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to parse resume",
			Details: "failed to read uploaded file",
		})
	}

	result, err := h.forwarder.Parse(c.UserContext(), data, fileHeader.Filename)
	if err != nil {
		if services.IsInputError(err) {
			return badRequest(c, "No file uploaded")
		}

		h.logger.Error("resume parsing failed",
			zap.String("file", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to parse resume",
			Details: downstreamDetail(err),
		})
	}

	return c.JSON(result)
}
