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

type TranslationHandler struct {
	service service.TranslationService
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	OriginalText string `json:"originalText"`
	Japanese     string `json:"japanese"`
	English      string `json:"english"`
	Romaji       string `json:"romaji"`
	CreatedAt    string `json:"createdAt"`
}

type dailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translations", h.Create)
	g.GET("/translations", h.ListToday)
	g.GET("/translations/history", h.History)
	g.GET("/translations/date/:date", h.ListByDate)
}

// Create translates text and records it.
// @Summary Translate text
// @Description Translate between Japanese and English and save the result
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body translateRequest true "Text to translate"
// @Success 201 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translations [post]
func (h *TranslationHandler) Create(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	created, err := h.service.Translate(c.Request().Context(), currentUserID(c), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
		}
		if errors.Is(err, service.ErrAIUnavailable) {
			return writeServiceError(c, err)
		}
		logger.Error("translate failed", "module", "handler", "action", "create", "resource", "translation", "result", "failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to translate"})
	}
	return c.JSON(http.StatusCreated, toTranslationResponse(created))
}

// ListToday returns today's translations.
// @Summary List today's translations
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} translationResponse
// @Failure 500 {object} errorResponse
// @Router /translations [get]
func (h *TranslationHandler) ListToday(c echo.Context) error {
	items, err := h.service.ListToday(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponses(items))
}

// ListByDate returns the translations recorded on a date.
// @Summary List translations by date
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translations/date/{date} [get]
func (h *TranslationHandler) ListByDate(c echo.Context) error {
	items, err := h.service.ListByDate(c.Request().Context(), currentUserID(c), c.Param("date"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponses(items))
}

// History returns translation counts per day.
// @Summary Translation history
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dailyCountResponse
// @Failure 500 {object} errorResponse
// @Router /translations/history [get]
func (h *TranslationHandler) History(c echo.Context) error {
	history, err := h.service.History(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]dailyCountResponse, 0, len(history))
	for _, d := range history {
		resp = append(resp, dailyCountResponse{Date: d.Date, Count: d.Count})
	}
	return c.JSON(http.StatusOK, resp)
}

func toTranslationResponse(t model.Translation) translationResponse {
	return translationResponse{
		ID:           idToString(t.ID),
		UserID:       t.UserID,
		OriginalText: t.OriginalText,
		Japanese:     t.Japanese,
		English:      t.English,
		Romaji:       t.Romaji,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTranslationResponses(items []model.Translation) []translationResponse {
	resp := make([]translationResponse, 0, len(items))
	for _, t := range items {
		resp = append(resp, toTranslationResponse(t))
	}
	return resp
}
