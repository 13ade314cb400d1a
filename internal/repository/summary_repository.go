package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/snowflake"
)

//go:generate mockgen -source=summary_repository.go -destination=mock/summary_repository_mock.go -package=mock

type SummaryRepository interface {
	Create(ctx context.Context, s model.Summary) (model.Summary, error)
	// ListByUser returns the user's summaries, most recent date first.
	ListByUser(ctx context.Context, userID string) ([]model.Summary, error)
	// GetByID returns nil when the summary does not exist or belongs to another user.
	GetByID(ctx context.Context, userID string, id int64) (*model.Summary, error)
}

type summaryRepository struct {
	db dbtx
}

func NewSummaryRepository(db dbtx) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, s model.Summary) (model.Summary, error) {
	s.ID = snowflake.NextID()
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.Date.IsZero() {
		s.Date = now
	}
	if s.Vocab == nil {
		s.Vocab = []model.VocabEntry{}
	}

	vocab, err := model.EncodeVocab(s.Vocab)
	if err != nil {
		return model.Summary{}, fmt.Errorf("encode vocab: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO summaries (id, user_id, date, content, vocab, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, formatTime(s.Date), s.Content, vocab, formatTime(s.CreatedAt),
	)
	if err != nil {
		return model.Summary{}, err
	}
	return s, nil
}

func (r *summaryRepository) ListByUser(ctx context.Context, userID string) ([]model.Summary, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, date, content, vocab, created_at
		 FROM summaries WHERE user_id = ? ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *summaryRepository) GetByID(ctx context.Context, userID string, id int64) (*model.Summary, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, date, content, vocab, created_at
		 FROM summaries WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	s, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (model.Summary, error) {
	var s model.Summary
	var date, createdAt string
	var vocab sql.NullString
	if err := row.Scan(&s.ID, &s.UserID, &date, &s.Content, &vocab, &createdAt); err != nil {
		return model.Summary{}, err
	}
	s.Date, _ = parseTime(date)
	s.CreatedAt, _ = parseTime(createdAt)

	entries, err := model.DecodeVocab(vocab.String)
	if err != nil {
		return model.Summary{}, fmt.Errorf("decode vocab for summary %d: %w", s.ID, err)
	}
	s.Vocab = entries
	return s, nil
}
