package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/models"
)

const (
	parsePath      = "/parse"
	parseFileField = "file"
)

type ResumeForwarder interface {
	Parse(ctx context.Context, fileBytes []byte, fileName string) (*models.ExtractionResult, error)
}

type resumeForwarder struct {
	client     *downstreamClient
	pdfText    PDFTextExtractor
	convertPDF bool
}

func NewResumeForwarder(deps ForwarderDeps, timeout time.Duration, convertPDF bool) ResumeForwarder {
	return &resumeForwarder{
		client:     deps.client(models.ServiceExtraction, timeout),
		pdfText:    NewPDFTextExtractor(),
		convertPDF: convertPDF,
	}
}

// Parse implements ResumeForwarder. The file is held in memory for the
// duration of the call only; no upload limit is applied here.
func (f *resumeForwarder) Parse(ctx context.Context, fileBytes []byte, fileName string) (*models.ExtractionResult, error) {
	if len(fileBytes) == 0 {
		return nil, &InputError{Field: "resume", Message: "file is empty"}
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, &InputError{Field: "resume", Message: "file name is required"}
	}

	fileBytes, fileName = f.prepareUpload(fileBytes, fileName)

	body, contentType, err := buildMultipart(fileBytes, fileName)
	if err != nil {
		return nil, &DownstreamError{Service: models.ServiceExtraction, Op: http.MethodPost + " " + parsePath, Err: err}
	}

	data, err := f.client.do(ctx, http.MethodPost, parsePath, nil, body, contentType)
	if err != nil {
		return nil, err
	}

	result, err := NormalizeExtraction(data)
	if err != nil {
		return nil, f.client.contractError(http.MethodPost+" "+parsePath, "%v", err)
	}

	return result, nil
}

// prepareUpload optionally swaps a PDF for its plain text, since the
// extraction service reads uploads as UTF-8 text. Any conversion failure
// leaves the original upload untouched.
func (f *resumeForwarder) prepareUpload(fileBytes []byte, fileName string) ([]byte, string) {
	if !f.convertPDF || !IsPDF(fileBytes) {
		return fileBytes, fileName
	}

	text, err := f.pdfText.ExtractText(fileBytes)
	if err != nil {
		f.client.logger.Warn("pdf conversion failed, forwarding original upload",
			zap.String("file", fileName),
			zap.Error(err),
		)
		return fileBytes, fileName
	}

	converted := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".txt"
	f.client.logger.Debug("converted pdf upload to text",
		zap.String("file", fileName),
		zap.Int("bytes", len(text)),
	)
	return []byte(text), converted
}

func buildMultipart(fileBytes []byte, fileName string) (*bytes.Buffer, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	part, err := w.CreateFormFile(parseFileField, fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := part.Write(fileBytes); err != nil {
		return nil, "", fmt.Errorf("failed to write multipart file field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &b, w.FormDataContentType(), nil
}

// NormalizeExtraction accepts both extraction contracts: a bare JSON array of
// skills, or an object with optional skills and projects. Missing fields
// become empty slices; skills are not deduplicated or reordered.
func NormalizeExtraction(data []byte) (*models.ExtractionResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty extraction response")
	}

	result := &models.ExtractionResult{}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &result.Skills); err != nil {
			return nil, fmt.Errorf("invalid skills list: %w", err)
		}
	case '{':
		var payload struct {
			Skills   []string         `json:"skills"`
			Projects []models.Project `json:"projects"`
		}
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("invalid extraction object: %w", err)
		}
		result.Skills = payload.Skills
		result.Projects = payload.Projects
	default:
		return nil, fmt.Errorf("unexpected extraction response shape")
	}

	if result.Skills == nil {
		result.Skills = []string{}
	}
	if result.Projects == nil {
		result.Projects = []models.Project{}
	}

	return result, nil
}
