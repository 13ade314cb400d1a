package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kotoba/backend/internal/handler"
	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
	"kotoba/backend/internal/service"
	"kotoba/backend/internal/service/mock"
)

func TestTranslationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().Translate(gomock.Any(), testUserID, "Hello").Return(model.Translation{
		ID:           1234567890123456789,
		UserID:       testUserID,
		OriginalText: "Hello",
		Japanese:     "こんにちは",
		English:      "Hello",
		Romaji:       "konnichiwa",
		CreatedAt:    time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
	}, nil)

	rec := doRequest(e, http.MethodPost, "/api/translations", `{"text":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "1234567890123456789", body["id"])
	require.Equal(t, "Hello", body["originalText"])
	require.Equal(t, "konnichiwa", body["romaji"])
	require.Equal(t, "2025-03-10T11:00:00Z", body["createdAt"])
}

func TestTranslationHandler_Create_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().Translate(gomock.Any(), testUserID, "").Return(model.Translation{}, service.ErrInvalid)

	rec := doRequest(e, http.MethodPost, "/api/translations", `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Create_ProviderNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().Translate(gomock.Any(), testUserID, "Hello").Return(model.Translation{}, service.ErrAIUnavailable)

	rec := doRequest(e, http.MethodPost, "/api/translations", `{"text":"Hello"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTranslationHandler_Create_AIFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().Translate(gomock.Any(), testUserID, "cat").Return(model.Translation{}, errors.New("upstream"))

	rec := doRequest(e, http.MethodPost, "/api/translations", `{"text":"cat"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"failed to translate"}`, rec.Body.String())
}

func TestTranslationHandler_ListTodayEmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().ListToday(gomock.Any(), testUserID).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/api/translations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestTranslationHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().History(gomock.Any(), testUserID).Return([]repository.DailyCount{
		{Date: "2025-03-10", Count: 2},
		{Date: "2025-03-09", Count: 1},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/translations/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"date":"2025-03-10","count":2},{"date":"2025-03-09","count":1}]`, rec.Body.String())
}

func TestTranslationHandler_ListByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockTranslationService(ctrl)
	e := newTestServer(handler.NewTranslationHandler(svc))

	svc.EXPECT().ListByDate(gomock.Any(), testUserID, "2025-03-10").Return([]model.Translation{{ID: 1}}, nil)
	rec := doRequest(e, http.MethodGet, "/api/translations/date/2025-03-10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	svc.EXPECT().ListByDate(gomock.Any(), testUserID, "yesterday").Return(nil, service.ErrInvalid)
	rec = doRequest(e, http.MethodGet, "/api/translations/date/yesterday", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
