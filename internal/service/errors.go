package service

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalid   = errors.New("invalid")
	ErrEmailSend = errors.New("email send failed")

	// ErrNoTranslations is returned when a summary is requested for a day without translations.
	ErrNoTranslations = errors.New("no translations for today")
	// ErrAIUnavailable is returned when no AI provider is configured.
	ErrAIUnavailable = errors.New("AI provider not configured")
)
