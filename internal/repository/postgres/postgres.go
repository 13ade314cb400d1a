// Package postgres provides gorm-backed implementations of the repository
// interfaces for deployments that set a DATABASE_URL.
package postgres

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type userRecord struct {
	ID           string `gorm:"primaryKey"`
	Email        string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type translationRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	UserID       string `gorm:"not null;index:idx_translations_user_created,priority:1"`
	OriginalText string `gorm:"not null"`
	Japanese     string
	English      string
	Romaji       string
	CreatedAt    time.Time `gorm:"not null;index:idx_translations_user_created,priority:2"`
}

func (translationRecord) TableName() string { return "translations" }

type summaryRecord struct {
	ID        int64          `gorm:"primaryKey;autoIncrement:false"`
	UserID    string         `gorm:"not null;index:idx_summaries_user_date,priority:1"`
	Date      time.Time      `gorm:"not null;index:idx_summaries_user_date,priority:2"`
	Content   string         `gorm:"not null"`
	Vocab     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (summaryRecord) TableName() string { return "summaries" }

// Open connects to Postgres and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables. It is safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &translationRecord{}, &summaryRecord{}); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}
