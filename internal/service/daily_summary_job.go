package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
)

// ErrNoRecipient is returned when neither the job nor the user has an email address.
var ErrNoRecipient = errors.New("no recipient email")

// Outcome of one daily summary run.
const (
	OutcomeSent       = "sent"
	OutcomeSendFailed = "send_failed"
	OutcomeSkipped    = "skipped"
	OutcomeFailed     = "failed"
)

// RunResult describes what a daily summary run did.
type RunResult struct {
	RunID     string
	Outcome   string
	Summary   *model.Summary
	Generated bool // a new summary was created by this run
	Sent      bool
}

// DailySummarySettings configures the single-tenant daily job.
type DailySummarySettings struct {
	UserID   string
	Email    string // overrides the stored user email
	Location *time.Location
}

// DailySummaryJob reuses or generates today's summary and emails it.
type DailySummaryJob struct {
	summaries SummaryService
	users     repository.UserRepository
	mailer    SummaryMailer
	settings  DailySummarySettings
	now       func() time.Time
}

func NewDailySummaryJob(summaries SummaryService, users repository.UserRepository, mailer SummaryMailer, settings DailySummarySettings) *DailySummaryJob {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &DailySummaryJob{
		summaries: summaries,
		users:     users,
		mailer:    mailer,
		settings:  settings,
		now:       time.Now,
	}
}

// Run performs one pass. A day without translations is skipped without error.
// Generation, persistence and lookup errors are returned; a failed send is
// reported through the result only.
func (j *DailySummaryJob) Run(ctx context.Context) (RunResult, error) {
	runID := uuid.NewString()
	userID := j.settings.UserID
	today := repository.StartOfDay(j.now().In(j.settings.Location))
	attrs := func(result string, args ...any) []any {
		base := []any{"module", "job", "action", "daily_summary", "resource", "summary", "result", result,
			"run_id", runID, "user_id", userID, "day", today.Format(time.DateOnly)}
		return append(base, args...)
	}
	log := func(msg, result string, args ...any) {
		logger.Info(msg, attrs(result, args...)...)
	}
	// fail logs err with the stage it came from and ends the run.
	fail := func(res RunResult, stage string, err error) (RunResult, error) {
		logger.Error("daily summary failed", attrs("failed", "stage", stage, "error", err)...)
		res.RunID = runID
		res.Outcome = OutcomeFailed
		return res, err
	}

	if userID == "" {
		return fail(RunResult{}, "config", fmt.Errorf("%w: job user id is not set", ErrInvalid))
	}
	log("daily summary started", "started")

	summary, err := j.summaries.FindForDay(ctx, userID, today)
	if err != nil {
		return fail(RunResult{}, "lookup", err)
	}

	result := RunResult{RunID: runID}
	if summary != nil {
		log("reusing existing summary", "ok", "summary_id", summary.ID)
	} else {
		created, err := j.summaries.Generate(ctx, userID)
		if errors.Is(err, ErrNoTranslations) {
			log("no translations today, skipping", "skipped")
			return RunResult{RunID: runID, Outcome: OutcomeSkipped}, nil
		}
		if err != nil {
			return fail(result, "generate", err)
		}
		summary = &created
		result.Generated = true
		log("summary generated", "ok", "summary_id", summary.ID)
	}
	result.Summary = summary

	to, err := j.recipient(ctx)
	if err != nil {
		return fail(result, "recipient", err)
	}

	if !j.mailer.SendSummary(ctx, to, summary.Content) {
		log("daily summary email failed", "failed", "to", to)
		result.Outcome = OutcomeSendFailed
		return result, nil
	}
	log("daily summary email sent", "ok", "to", to)
	result.Outcome = OutcomeSent
	result.Sent = true
	return result, nil
}

func (j *DailySummaryJob) recipient(ctx context.Context) (string, error) {
	if j.settings.Email != "" {
		return j.settings.Email, nil
	}
	user, err := j.users.Get(ctx, j.settings.UserID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if user == nil || user.Email == "" {
		return "", ErrNoRecipient
	}
	return user.Email, nil
}
