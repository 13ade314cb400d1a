package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
)

//go:generate mockgen -source=translation_service.go -destination=mock/translation_service_mock.go -package=mock

type TranslationService interface {
	// Translate translates text and records the result for the user.
	Translate(ctx context.Context, userID, text string) (model.Translation, error)
	// ListToday returns the user's translations for the current day.
	ListToday(ctx context.Context, userID string) ([]model.Translation, error)
	// ListByDate returns the user's translations for a YYYY-MM-DD date.
	ListByDate(ctx context.Context, userID, date string) ([]model.Translation, error)
	// History returns per-day translation counts, newest day first.
	History(ctx context.Context, userID string) ([]repository.DailyCount, error)
}

type translationService struct {
	repo       repository.TranslationRepository
	translator Translator
	loc        *time.Location
	now        func() time.Time
}

// NewTranslationService creates a translation service. Calendar days are
// computed in loc.
func NewTranslationService(repo repository.TranslationRepository, translator Translator, loc *time.Location) TranslationService {
	if loc == nil {
		loc = time.Local
	}
	return &translationService{repo: repo, translator: translator, loc: loc, now: time.Now}
}

func (s *translationService) Translate(ctx context.Context, userID, text string) (model.Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Translation{}, ErrInvalid
	}

	out, err := s.translator.Translate(ctx, text)
	if err != nil {
		logger.Warn("translate failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "error", err)
		return model.Translation{}, err
	}

	created, err := s.repo.Create(ctx, model.Translation{
		UserID:       userID,
		OriginalText: text,
		Japanese:     out.Japanese,
		English:      out.English,
		Romaji:       out.Romaji,
	})
	if err != nil {
		return model.Translation{}, fmt.Errorf("save translation: %w", err)
	}
	logger.Info("translation created", "module", "service", "action", "create", "resource", "translation", "result", "ok", "id", created.ID)
	return created, nil
}

func (s *translationService) ListToday(ctx context.Context, userID string) ([]model.Translation, error) {
	return s.repo.ListByDay(ctx, userID, s.now().In(s.loc))
}

func (s *translationService) ListByDate(ctx context.Context, userID, date string) ([]model.Translation, error) {
	day, err := time.ParseInLocation(time.DateOnly, date, s.loc)
	if err != nil {
		return nil, ErrInvalid
	}
	return s.repo.ListByDay(ctx, userID, day)
}

func (s *translationService) History(ctx context.Context, userID string) ([]repository.DailyCount, error) {
	return s.repo.History(ctx, userID, s.loc)
}
