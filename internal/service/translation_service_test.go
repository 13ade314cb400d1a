package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
	repomock "kotoba/backend/internal/repository/mock"
	"kotoba/backend/internal/service"
	"kotoba/backend/internal/service/ai"
	"kotoba/backend/internal/service/mock"
)

func mustTokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestTranslationService_Translate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockTranslationRepository(ctrl)
	translator := mock.NewMockTranslator(ctrl)
	svc := service.NewTranslationService(repo, translator, mustTokyo(t))
	ctx := context.Background()

	translator.EXPECT().Translate(ctx, "Hello").
		Return(ai.TranslationOutput{Japanese: "こんにちは", English: "Hello", Romaji: "konnichiwa"}, nil)
	repo.EXPECT().Create(ctx, model.Translation{
		UserID:       "u1",
		OriginalText: "Hello",
		Japanese:     "こんにちは",
		English:      "Hello",
		Romaji:       "konnichiwa",
	}).DoAndReturn(func(_ context.Context, tr model.Translation) (model.Translation, error) {
		tr.ID = 99
		return tr, nil
	})

	created, err := svc.Translate(ctx, "u1", "  Hello ")
	require.NoError(t, err)
	require.Equal(t, int64(99), created.ID)
}

func TestTranslationService_Translate_EmptyTextSkipsAI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewTranslationService(repomock.NewMockTranslationRepository(ctrl), mock.NewMockTranslator(ctrl), nil)

	_, err := svc.Translate(context.Background(), "u1", "   ")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_Translate_AIErrorNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	translator := mock.NewMockTranslator(ctrl)
	svc := service.NewTranslationService(repomock.NewMockTranslationRepository(ctrl), translator, nil)

	translator.EXPECT().Translate(gomock.Any(), "cat").Return(ai.TranslationOutput{}, ai.ErrMalformedOutput)

	_, err := svc.Translate(context.Background(), "u1", "cat")
	require.ErrorIs(t, err, ai.ErrMalformedOutput)
}

func TestTranslationService_ListToday_UsesLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokyo := mustTokyo(t)
	repo := repomock.NewMockTranslationRepository(ctrl)
	svc := service.NewTranslationService(repo, mock.NewMockTranslator(ctrl), tokyo)

	repo.EXPECT().ListByDay(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, day time.Time) ([]model.Translation, error) {
			require.Equal(t, tokyo, day.Location())
			return []model.Translation{{ID: 1}}, nil
		})

	items, err := svc.ListToday(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestTranslationService_ListByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokyo := mustTokyo(t)
	repo := repomock.NewMockTranslationRepository(ctrl)
	svc := service.NewTranslationService(repo, mock.NewMockTranslator(ctrl), tokyo)
	ctx := context.Background()

	repo.EXPECT().ListByDay(ctx, "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, day time.Time) ([]model.Translation, error) {
			require.True(t, day.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, tokyo)))
			return nil, nil
		})
	_, err := svc.ListByDate(ctx, "u1", "2025-03-10")
	require.NoError(t, err)

	_, err = svc.ListByDate(ctx, "u1", "10/03/2025")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokyo := mustTokyo(t)
	repo := repomock.NewMockTranslationRepository(ctrl)
	svc := service.NewTranslationService(repo, mock.NewMockTranslator(ctrl), tokyo)

	want := []repository.DailyCount{{Date: "2025-03-10", Count: 3}}
	repo.EXPECT().History(gomock.Any(), "u1", tokyo).Return(want, nil)

	got, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	repo.EXPECT().History(gomock.Any(), "u1", tokyo).Return(nil, errors.New("db"))
	_, err = svc.History(context.Background(), "u1")
	require.Error(t, err)
}
