package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
)

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock

// SummaryMailer delivers a rendered summary. It reports success instead of
// returning an error; failures are logged by the implementation.
type SummaryMailer interface {
	SendSummary(ctx context.Context, to, markdown string) bool
}

type SummaryService interface {
	// Generate creates and stores a summary of today's translations.
	// Returns ErrNoTranslations when there is nothing to summarize.
	Generate(ctx context.Context, userID string) (model.Summary, error)
	// List returns the user's summaries, most recent date first.
	List(ctx context.Context, userID string) ([]model.Summary, error)
	// FindForDay returns the first stored summary whose date falls on day's
	// calendar date, or nil.
	FindForDay(ctx context.Context, userID string, day time.Time) (*model.Summary, error)
	// SendEmail mails the given summary, or the most recent one when summaryID is nil.
	SendEmail(ctx context.Context, userID, to string, summaryID *int64) (model.Summary, error)
}

type summaryService struct {
	summaries    repository.SummaryRepository
	translations repository.TranslationRepository
	generator    SummaryGenerator
	mailer       SummaryMailer
	validate     *validator.Validate
	loc          *time.Location
	now          func() time.Time
}

// NewSummaryService creates a summary service. Calendar days are computed in loc.
func NewSummaryService(
	summaries repository.SummaryRepository,
	translations repository.TranslationRepository,
	generator SummaryGenerator,
	mailer SummaryMailer,
	loc *time.Location,
) SummaryService {
	if loc == nil {
		loc = time.Local
	}
	return &summaryService{
		summaries:    summaries,
		translations: translations,
		generator:    generator,
		mailer:       mailer,
		validate:     validator.New(),
		loc:          loc,
		now:          time.Now,
	}
}

func (s *summaryService) Generate(ctx context.Context, userID string) (model.Summary, error) {
	now := s.now()
	items, err := s.translations.ListByDay(ctx, userID, now.In(s.loc))
	if err != nil {
		return model.Summary{}, fmt.Errorf("list translations: %w", err)
	}
	if len(items) == 0 {
		return model.Summary{}, ErrNoTranslations
	}

	out, err := s.generator.Generate(ctx, items)
	if err != nil {
		return model.Summary{}, err
	}

	created, err := s.summaries.Create(ctx, model.Summary{
		UserID:  userID,
		Date:    now,
		Content: out.Content,
		Vocab:   out.Vocab,
	})
	if err != nil {
		return model.Summary{}, fmt.Errorf("save summary: %w", err)
	}
	logger.Info("summary generated", "module", "service", "action", "create", "resource", "summary", "result", "ok",
		"id", created.ID, "translations", len(items), "vocab", len(created.Vocab))
	return created, nil
}

func (s *summaryService) List(ctx context.Context, userID string) ([]model.Summary, error) {
	return s.summaries.ListByUser(ctx, userID)
}

func (s *summaryService) FindForDay(ctx context.Context, userID string, day time.Time) (*model.Summary, error) {
	items, err := s.summaries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	today := repository.StartOfDay(day.In(s.loc))
	for i := range items {
		if repository.StartOfDay(items[i].Date.In(s.loc)).Equal(today) {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (s *summaryService) SendEmail(ctx context.Context, userID, to string, summaryID *int64) (model.Summary, error) {
	to = strings.TrimSpace(to)
	if err := s.validate.Var(to, "required,email"); err != nil {
		return model.Summary{}, ErrInvalid
	}

	var summary *model.Summary
	if summaryID != nil {
		found, err := s.summaries.GetByID(ctx, userID, *summaryID)
		if err != nil {
			return model.Summary{}, fmt.Errorf("get summary: %w", err)
		}
		summary = found
	} else {
		items, err := s.summaries.ListByUser(ctx, userID)
		if err != nil {
			return model.Summary{}, fmt.Errorf("list summaries: %w", err)
		}
		if len(items) > 0 {
			summary = &items[0]
		}
	}
	if summary == nil {
		return model.Summary{}, ErrNotFound
	}

	if !s.mailer.SendSummary(ctx, to, summary.Content) {
		return model.Summary{}, ErrEmailSend
	}
	return *summary, nil
}
