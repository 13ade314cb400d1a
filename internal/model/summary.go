package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Summary is a generated learning summary for one user and one calendar day.
// Nothing enforces one summary per day; callers check before creating.
type Summary struct {
	ID        int64
	UserID    string
	Date      time.Time
	Content   string // markdown
	Vocab     []VocabEntry
	CreatedAt time.Time
}

// VocabEntry is either a structured word or a plain string, mirroring what the
// generator may return. It encodes back to the form it was decoded from.
type VocabEntry struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`

	// Text holds the entry when it was given as a bare string.
	Text string `json:"-"`

	plain bool
}

// PlainVocab returns an entry that encodes as the bare string text.
func PlainVocab(text string) VocabEntry {
	return VocabEntry{Text: text, plain: true}
}

// IsPlain reports whether the entry is a bare string. Decoded entries keep the
// shape they were read in, even an empty string.
func (v VocabEntry) IsPlain() bool {
	return v.plain || (v.Text != "" && v.Word == "" && v.Reading == "" && v.Meaning == "")
}

func (v *VocabEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = PlainVocab(s)
		return nil
	}

	type object VocabEntry
	var p object
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = VocabEntry(p)
	return nil
}

func (v VocabEntry) MarshalJSON() ([]byte, error) {
	if v.IsPlain() {
		return json.Marshal(v.Text)
	}
	type object VocabEntry
	return json.Marshal(object(v))
}

// EncodeVocab serializes a vocab list for storage. A nil list is stored as "[]".
func EncodeVocab(vocab []VocabEntry) (string, error) {
	if vocab == nil {
		vocab = []VocabEntry{}
	}
	b, err := json.Marshal(vocab)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeVocab parses a stored vocab list. Empty input yields an empty list.
func DecodeVocab(raw string) ([]VocabEntry, error) {
	if raw == "" || raw == "null" {
		return []VocabEntry{}, nil
	}
	var vocab []VocabEntry
	if err := json.Unmarshal([]byte(raw), &vocab); err != nil {
		return nil, err
	}
	return vocab, nil
}
