package repository

import (
	"context"
	"database/sql"
	"time"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/snowflake"
)

//go:generate mockgen -source=translation_repository.go -destination=mock/translation_repository_mock.go -package=mock

type TranslationRepository interface {
	Create(ctx context.Context, t model.Translation) (model.Translation, error)
	ListByUser(ctx context.Context, userID string) ([]model.Translation, error)
	// ListByDay returns the translations created on day's calendar date, in day's location.
	ListByDay(ctx context.Context, userID string, day time.Time) ([]model.Translation, error)
	// History counts translations per calendar day in loc, newest day first.
	History(ctx context.Context, userID string, loc *time.Location) ([]DailyCount, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Create(ctx context.Context, t model.Translation) (model.Translation, error) {
	t.ID = snowflake.NextID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (id, user_id, original_text, japanese, english, romaji, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.OriginalText, t.Japanese, t.English, t.Romaji, formatTime(t.CreatedAt),
	)
	if err != nil {
		return model.Translation{}, err
	}
	return t, nil
}

func (r *translationRepository) ListByUser(ctx context.Context, userID string) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, original_text, japanese, english, romaji, created_at
		 FROM translations WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTranslations(rows)
}

func (r *translationRepository) ListByDay(ctx context.Context, userID string, day time.Time) ([]model.Translation, error) {
	start, end := dayRange(day)
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, original_text, japanese, english, romaji, created_at
		 FROM translations WHERE user_id = ? AND created_at >= ? AND created_at < ?
		 ORDER BY created_at ASC`,
		userID, formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTranslations(rows)
}

func (r *translationRepository) History(ctx context.Context, userID string, loc *time.Location) ([]DailyCount, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT created_at FROM translations WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// SQLite has no timezone support, so bucket by day here.
	var times []time.Time
	for rows.Next() {
		var createdAt string
		if err := rows.Scan(&createdAt); err != nil {
			return nil, err
		}
		t, err := parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return CountByDay(times, loc), nil
}

func scanTranslations(rows *sql.Rows) ([]model.Translation, error) {
	var result []model.Translation
	for rows.Next() {
		var t model.Translation
		var japanese, english, romaji sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.UserID, &t.OriginalText, &japanese, &english, &romaji, &createdAt); err != nil {
			return nil, err
		}
		t.Japanese = japanese.String
		t.English = english.String
		t.Romaji = romaji.String
		t.CreatedAt, _ = parseTime(createdAt)
		result = append(result, t)
	}
	return result, rows.Err()
}
