package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/model"
)

func TestVocabEntry_MixedList(t *testing.T) {
	raw := `["食べる (taberu) - to eat", {"word":"水","reading":"みず","meaning":"water"}]`

	vocab, err := model.DecodeVocab(raw)
	require.NoError(t, err)
	require.Len(t, vocab, 2)

	require.True(t, vocab[0].IsPlain())
	require.Equal(t, "食べる (taberu) - to eat", vocab[0].Text)

	require.False(t, vocab[1].IsPlain())
	require.Equal(t, "水", vocab[1].Word)
	require.Equal(t, "みず", vocab[1].Reading)
	require.Equal(t, "water", vocab[1].Meaning)

	encoded, err := model.EncodeVocab(vocab)
	require.NoError(t, err)
	require.JSONEq(t, raw, encoded)
}

func TestEncodeVocab_NilIsEmptyArray(t *testing.T) {
	encoded, err := model.EncodeVocab(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", encoded)

	vocab, err := model.DecodeVocab("")
	require.NoError(t, err)
	require.Empty(t, vocab)
}

func TestVocabEntry_RejectsNumbers(t *testing.T) {
	var entry model.VocabEntry
	require.Error(t, json.Unmarshal([]byte(`42`), &entry))
}

func TestVocabEntry_EmptyStringKeepsShape(t *testing.T) {
	raw := `["", "猫", {"word":"","reading":"","meaning":""}]`

	vocab, err := model.DecodeVocab(raw)
	require.NoError(t, err)
	require.True(t, vocab[0].IsPlain())
	require.True(t, vocab[1].IsPlain())
	require.False(t, vocab[2].IsPlain())

	encoded, err := model.EncodeVocab(vocab)
	require.NoError(t, err)
	require.JSONEq(t, raw, encoded)
}
