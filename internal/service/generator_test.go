package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/service"
	"kotoba/backend/internal/service/ai"
)

type fakeProvider struct {
	reply  string
	err    error
	system string
	input  string
	calls  int
}

func (p *fakeProvider) Test(context.Context) (string, error) { return "ok", nil }
func (p *fakeProvider) Name() string                         { return "fake" }

func (p *fakeProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return p.CompleteJSON(ctx, systemPrompt, content)
}

func (p *fakeProvider) CompleteJSON(_ context.Context, systemPrompt, content string) (string, error) {
	p.calls++
	p.system = systemPrompt
	p.input = content
	return p.reply, p.err
}

func TestBuildSummaryInput(t *testing.T) {
	input := service.BuildSummaryInput([]model.Translation{
		{OriginalText: "Good morning", Japanese: "おはよう", English: "Good morning"},
		{OriginalText: "猫", Japanese: "猫", English: "cat"},
	})
	require.Equal(t, "Original: Good morning | JP: おはよう | EN: Good morning\nOriginal: 猫 | JP: 猫 | EN: cat", input)
	require.Empty(t, service.BuildSummaryInput(nil))
}

func TestSummaryGenerator_Generate(t *testing.T) {
	p := &fakeProvider{reply: `{"content":"# Today","vocab":[{"word":"猫","reading":"ねこ","meaning":"cat"}]}`}
	gen := service.NewSummaryGenerator(p, ai.NewRateLimiter(10))

	out, err := gen.Generate(context.Background(), []model.Translation{{OriginalText: "cat", Japanese: "猫", English: "cat"}})
	require.NoError(t, err)
	require.Equal(t, "# Today", out.Content)
	require.Equal(t, "ねこ", out.Vocab[0].Reading)
	require.Equal(t, ai.SummaryPrompt, p.system)
	require.Equal(t, "Original: cat | JP: 猫 | EN: cat", p.input)
}

func TestSummaryGenerator_Errors(t *testing.T) {
	ctx := context.Background()
	items := []model.Translation{{OriginalText: "x"}}

	_, err := service.NewSummaryGenerator(nil, nil).Generate(ctx, items)
	require.ErrorIs(t, err, service.ErrAIUnavailable)

	_, err = service.NewSummaryGenerator(&fakeProvider{reply: ""}, nil).Generate(ctx, items)
	require.ErrorIs(t, err, ai.ErrEmptyResponse)

	_, err = service.NewSummaryGenerator(&fakeProvider{reply: "sorry, no"}, nil).Generate(ctx, items)
	require.ErrorIs(t, err, ai.ErrMalformedOutput)

	upstream := errors.New("upstream down")
	p := &fakeProvider{err: upstream}
	_, err = service.NewSummaryGenerator(p, nil).Generate(ctx, items)
	require.ErrorIs(t, err, upstream)
	require.Equal(t, 1, p.calls)
}

func TestTranslator_Translate(t *testing.T) {
	p := &fakeProvider{reply: `{"japanese":"こんにちは","english":"Hello","romaji":"konnichiwa"}`}
	out, err := service.NewTranslator(p, nil).Translate(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "konnichiwa", out.Romaji)
	require.Equal(t, ai.TranslatePrompt, p.system)
	require.Equal(t, "Hello", p.input)
}
