package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
	"kotoba/backend/internal/snowflake"
)

type translationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) repository.TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Create(ctx context.Context, t model.Translation) (model.Translation, error) {
	t.ID = snowflake.NextID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	rec := toTranslationRecord(t)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.Translation{}, err
	}
	return t, nil
}

func (r *translationRepository) ListByUser(ctx context.Context, userID string) ([]model.Translation, error) {
	var recs []translationRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return fromTranslationRecords(recs), nil
}

func (r *translationRepository) ListByDay(ctx context.Context, userID string, day time.Time) ([]model.Translation, error) {
	start := repository.StartOfDay(day)
	end := start.AddDate(0, 0, 1)

	var recs []translationRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return fromTranslationRecords(recs), nil
}

func (r *translationRepository) History(ctx context.Context, userID string, loc *time.Location) ([]repository.DailyCount, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).
		Model(&translationRecord{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, err
	}
	return repository.CountByDay(times, loc), nil
}

func toTranslationRecord(t model.Translation) translationRecord {
	return translationRecord{
		ID:           t.ID,
		UserID:       t.UserID,
		OriginalText: t.OriginalText,
		Japanese:     t.Japanese,
		English:      t.English,
		Romaji:       t.Romaji,
		CreatedAt:    t.CreatedAt,
	}
}

func fromTranslationRecords(recs []translationRecord) []model.Translation {
	result := make([]model.Translation, 0, len(recs))
	for _, rec := range recs {
		result = append(result, model.Translation{
			ID:           rec.ID,
			UserID:       rec.UserID,
			OriginalText: rec.OriginalText,
			Japanese:     rec.Japanese,
			English:      rec.English,
			Romaji:       rec.Romaji,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return result
}
