package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/model"
)

func TestSummaryRecord_VocabRoundTrip(t *testing.T) {
	s := model.Summary{
		ID:      42,
		UserID:  "u1",
		Date:    time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
		Content: "# Today",
		Vocab: []model.VocabEntry{
			{Word: "水", Reading: "みず", Meaning: "water"},
			model.PlainVocab("猫 - cat"),
		},
	}

	rec, err := toSummaryRecord(s)
	require.NoError(t, err)
	require.JSONEq(t, `[{"word":"水","reading":"みず","meaning":"water"},"猫 - cat"]`, string(rec.Vocab))

	back, err := fromSummaryRecord(rec)
	require.NoError(t, err)
	require.Equal(t, s.Vocab, back.Vocab)
	require.Equal(t, s.Content, back.Content)
}

func TestSummaryRecord_NilVocabStoredAsEmptyArray(t *testing.T) {
	rec, err := toSummaryRecord(model.Summary{ID: 1, UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, "[]", string(rec.Vocab))

	back, err := fromSummaryRecord(summaryRecord{ID: 1})
	require.NoError(t, err)
	require.NotNil(t, back.Vocab)
	require.Empty(t, back.Vocab)
}

func TestTranslationRecord_Conversion(t *testing.T) {
	tr := model.Translation{ID: 7, UserID: "u1", OriginalText: "cat", Japanese: "猫", English: "cat", Romaji: "neko", CreatedAt: time.Unix(1700000000, 0)}
	recs := []translationRecord{toTranslationRecord(tr)}
	require.Equal(t, []model.Translation{tr}, fromTranslationRecords(recs))
}

func TestTableNames(t *testing.T) {
	require.Equal(t, "users", userRecord{}.TableName())
	require.Equal(t, "translations", translationRecord{}.TableName())
	require.Equal(t, "summaries", summaryRecord{}.TableName())
}
