package model

import "time"

// Translation is one AI translation requested by a user. Rows are never updated.
type Translation struct {
	ID           int64
	UserID       string
	OriginalText string
	Japanese     string
	English      string
	Romaji       string
	CreatedAt    time.Time
}
