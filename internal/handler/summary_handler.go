package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/model"
	"kotoba/backend/internal/service"
)

type SummaryHandler struct {
	service service.SummaryService
}

func NewSummaryHandler(service service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

type summaryResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Date      string             `json:"date"`
	Content   string             `json:"content"`
	Vocab     []model.VocabEntry `json:"vocab"`
	CreatedAt string             `json:"createdAt"`
}

type sendEmailRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	SummaryID idParam `json:"summaryId,omitempty" validate:"omitempty,numeric" swaggertype:"string"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *SummaryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/summaries/generate", h.Generate)
	g.GET("/summaries", h.List)
	g.POST("/summaries/send-email", h.SendEmail)
}

// Generate creates a summary of today's translations.
// @Summary Generate today's summary
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 201 {object} summaryResponse
// @Success 200 {object} messageResponse "No translations today"
// @Failure 500 {object} errorResponse
// @Router /summaries/generate [post]
func (h *SummaryHandler) Generate(c echo.Context) error {
	summary, err := h.service.Generate(c.Request().Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNoTranslations) {
			return c.JSON(http.StatusOK, messageResponse{Message: "No translations today to summarize."})
		}
		if errors.Is(err, service.ErrAIUnavailable) {
			return writeServiceError(c, err)
		}
		logger.Error("generate summary failed", "module", "handler", "action", "create", "resource", "summary", "result", "failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to generate summary"})
	}
	return c.JSON(http.StatusCreated, toSummaryResponse(summary))
}

// List returns the user's summaries, newest first.
// @Summary List summaries
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} summaryResponse
// @Failure 500 {object} errorResponse
// @Router /summaries [get]
func (h *SummaryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]summaryResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, toSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

// SendEmail mails a summary.
// @Summary Email a summary
// @Description Send the given summary, or the latest one, to an address
// @Tags summaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body sendEmailRequest true "Recipient and optional summary id"
// @Success 200 {object} sendEmailResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /summaries/send-email [post]
func (h *SummaryHandler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "a valid email is required"})
	}

	var summaryID *int64
	if req.SummaryID != "" {
		id, err := parseID(string(req.SummaryID))
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid summary id"})
		}
		summaryID = &id
	}

	_, err := h.service.SendEmail(c.Request().Context(), currentUserID(c), req.Email, summaryID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, sendEmailResponse{Success: true, Message: "Summary sent successfully!"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "summary not found"})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "a valid email is required"})
	case errors.Is(err, service.ErrEmailSend):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to send email"})
	default:
		logger.Error("summary request failed", "module", "handler", "action", "request", "resource", "summary", "result", "failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to send summary email"})
	}
}

func toSummaryResponse(s model.Summary) summaryResponse {
	vocab := s.Vocab
	if vocab == nil {
		vocab = []model.VocabEntry{}
	}
	return summaryResponse{
		ID:        idToString(s.ID),
		UserID:    s.UserID,
		Date:      s.Date.UTC().Format(time.RFC3339),
		Content:   s.Content,
		Vocab:     vocab,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
