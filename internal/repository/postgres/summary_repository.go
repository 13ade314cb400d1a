package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
	"kotoba/backend/internal/snowflake"
)

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
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

	rec, err := toSummaryRecord(s)
	if err != nil {
		return model.Summary{}, err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.Summary{}, err
	}
	return s, nil
}

func (r *summaryRepository) ListByUser(ctx context.Context, userID string) ([]model.Summary, error) {
	var recs []summaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.Summary, 0, len(recs))
	for _, rec := range recs {
		s, err := fromSummaryRecord(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *summaryRepository) GetByID(ctx context.Context, userID string, id int64) (*model.Summary, error) {
	var rec summaryRecord
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s, err := fromSummaryRecord(rec)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func toSummaryRecord(s model.Summary) (summaryRecord, error) {
	vocab, err := model.EncodeVocab(s.Vocab)
	if err != nil {
		return summaryRecord{}, fmt.Errorf("encode vocab: %w", err)
	}
	return summaryRecord{
		ID:        s.ID,
		UserID:    s.UserID,
		Date:      s.Date,
		Content:   s.Content,
		Vocab:     datatypes.JSON(vocab),
		CreatedAt: s.CreatedAt,
	}, nil
}

func fromSummaryRecord(rec summaryRecord) (model.Summary, error) {
	vocab, err := model.DecodeVocab(string(rec.Vocab))
	if err != nil {
		return model.Summary{}, fmt.Errorf("decode vocab for summary %d: %w", rec.ID, err)
	}
	return model.Summary{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Date:      rec.Date,
		Content:   rec.Content,
		Vocab:     vocab,
		CreatedAt: rec.CreatedAt,
	}, nil
}
