package server

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"briefgen/internal/catalog"
	"briefgen/internal/domain"
	"briefgen/internal/gemini"
	"briefgen/internal/history"
	"briefgen/internal/prompt"
	"briefgen/internal/report"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	service *report.Service
	store   *history.Store // nil disables the history endpoints' data
}

// NewHandlers creates a new handlers instance.
func NewHandlers(service *report.Service, store *history.Store) *Handlers {
	return &Handlers{service: service, store: store}
}

// CatalogHandler handles GET /api/catalog.
func (h *Handlers) CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"clients":       catalog.Clients,
		"taskGroups":    catalog.GroupTemplate,
		"internalTasks": catalog.InternalTasks,
	})
}

// GenerateHandler handles POST /api/generate.
func (h *Handlers) GenerateHandler(c *gin.Context) {
	var params domain.GenerationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidModes[string(params.Mode)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be one of daily, weekly, meeting"})
		return
	}

	text, err := h.service.Generate(c.Request.Context(), params)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": text})
}

type ocrRequest struct {
	Images []ocrImage `json:"images"`
}

type ocrImage struct {
	Name     string `json:"name"`
	Data     string `json:"data"` // base64
	MIMEType string `json:"mimeType"`
}

// OCRHandler handles POST /api/ocr.
func (h *Handlers) OCRHandler(c *gin.Context) {
	var req ocrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Images) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": prompt.ErrEmptyInput.Error()})
		return
	}

	files := make([]report.OCRFile, 0, len(req.Images))
	for _, img := range req.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "images must be base64 encoded"})
			return
		}
		files = append(files, report.OCRFile{Name: img.Name, Data: data, MIMEType: img.MIMEType})
	}

	text, err := h.service.BatchOCR(c.Request.Context(), files, nil)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

type reportResponse struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	ReportDate string `json:"reportDate"`
	Content    string `json:"content"`
	Model      string `json:"model"`
	CreatedAt  string `json:"createdAt"`
}

// ListReportsHandler handles GET /api/reports.
func (h *Handlers) ListReportsHandler(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"reports": []reportResponse{}})
		return
	}

	reports, err := h.store.List(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// GetReportHandler handles GET /api/reports/:id.
func (h *Handlers) GetReportHandler(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": history.ErrNotFound.Error()})
		return
	}

	r, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toReportResponse(r))
}

func toReportResponse(r *history.Report) reportResponse {
	return reportResponse{
		ID:         r.ID,
		Mode:       string(r.Mode),
		ReportDate: r.ReportDate,
		Content:    r.Content,
		Model:      r.Model,
		CreatedAt:  r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// statusFor maps service errors to HTTP statuses. Every error collapses
// to one human-readable message for the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, prompt.ErrEmptyInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, report.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, gemini.ErrUnreachable), errors.Is(err, gemini.ErrTimeout), errors.Is(err, gemini.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
