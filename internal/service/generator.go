package service

import (
	"context"
	"fmt"
	"strings"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/service/ai"
)

//go:generate mockgen -source=generator.go -destination=mock/generator_mock.go -package=mock

// SummaryGenerator turns a day's translations into a learning summary.
type SummaryGenerator interface {
	Generate(ctx context.Context, translations []model.Translation) (ai.SummaryOutput, error)
}

// Translator translates text between Japanese and English.
type Translator interface {
	Translate(ctx context.Context, text string) (ai.TranslationOutput, error)
}

// BuildSummaryInput serializes translations into the generator's user message,
// one line per translation in the given order.
func BuildSummaryInput(translations []model.Translation) string {
	lines := make([]string, 0, len(translations))
	for _, t := range translations {
		lines = append(lines, fmt.Sprintf("Original: %s | JP: %s | EN: %s", t.OriginalText, t.Japanese, t.English))
	}
	return strings.Join(lines, "\n")
}

type aiGenerator struct {
	provider    ai.Provider
	rateLimiter *ai.RateLimiter
}

// NewSummaryGenerator returns a generator backed by provider. A nil provider
// yields ErrAIUnavailable on every call.
func NewSummaryGenerator(provider ai.Provider, rateLimiter *ai.RateLimiter) SummaryGenerator {
	return &aiGenerator{provider: provider, rateLimiter: rateLimiter}
}

func (g *aiGenerator) Generate(ctx context.Context, translations []model.Translation) (ai.SummaryOutput, error) {
	if g.provider == nil {
		return ai.SummaryOutput{}, ErrAIUnavailable
	}
	if g.rateLimiter != nil {
		if err := g.rateLimiter.Wait(ctx); err != nil {
			return ai.SummaryOutput{}, fmt.Errorf("rate limit: %w", err)
		}
	}

	text, err := g.provider.CompleteJSON(ctx, ai.SummaryPrompt, BuildSummaryInput(translations))
	if err != nil {
		return ai.SummaryOutput{}, fmt.Errorf("generate summary: %w", err)
	}
	return ai.ParseSummary(text)
}

type aiTranslator struct {
	provider    ai.Provider
	rateLimiter *ai.RateLimiter
}

// NewTranslator returns a translator backed by provider.
func NewTranslator(provider ai.Provider, rateLimiter *ai.RateLimiter) Translator {
	return &aiTranslator{provider: provider, rateLimiter: rateLimiter}
}

func (t *aiTranslator) Translate(ctx context.Context, text string) (ai.TranslationOutput, error) {
	if t.provider == nil {
		return ai.TranslationOutput{}, ErrAIUnavailable
	}
	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			return ai.TranslationOutput{}, fmt.Errorf("rate limit: %w", err)
		}
	}

	reply, err := t.provider.CompleteJSON(ctx, ai.TranslatePrompt, text)
	if err != nil {
		return ai.TranslationOutput{}, fmt.Errorf("translate: %w", err)
	}
	return ai.ParseTranslation(reply)
}
