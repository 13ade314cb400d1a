package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kotoba/backend/internal/model"
)

var (
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("no response from AI")
	// ErrMalformedOutput is returned when the model text is not the expected JSON object.
	ErrMalformedOutput = errors.New("malformed AI output")
)

// SummaryOutput is the decoded result of a summary generation.
type SummaryOutput struct {
	Content string             `json:"content"`
	Vocab   []model.VocabEntry `json:"vocab"`
}

// TranslationOutput is the decoded result of a translation.
type TranslationOutput struct {
	Japanese string `json:"japanese"`
	English  string `json:"english"`
	Romaji   string `json:"romaji"`
}

// ParseSummary decodes the generator's JSON reply. A missing or empty content field is malformed;
// a missing vocab list decodes as empty.
func ParseSummary(text string) (SummaryOutput, error) {
	var out SummaryOutput
	if err := decodeObject(text, &out); err != nil {
		return SummaryOutput{}, err
	}
	if strings.TrimSpace(out.Content) == "" {
		return SummaryOutput{}, fmt.Errorf("%w: missing content", ErrMalformedOutput)
	}
	if out.Vocab == nil {
		out.Vocab = []model.VocabEntry{}
	}
	return out, nil
}

// ParseTranslation decodes the translator's JSON reply.
func ParseTranslation(text string) (TranslationOutput, error) {
	var out TranslationOutput
	if err := decodeObject(text, &out); err != nil {
		return TranslationOutput{}, err
	}
	if out.Japanese == "" && out.English == "" {
		return TranslationOutput{}, fmt.Errorf("%w: missing translation", ErrMalformedOutput)
	}
	return out, nil
}

func decodeObject(text string, v any) error {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	return nil
}

// stripCodeFence removes a surrounding ```json fence some models add despite instructions.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		return ""
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
