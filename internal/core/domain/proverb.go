package domain

import "strings"

// DefaultCategory is stored whenever a record's category is blank after
// trimming. The store never holds an empty category string.
const DefaultCategory = "Uncategorized"

// Proverb is a single proverb record.
// It is the canonical representation after normalisation.
type Proverb struct {
	// ID is the opaque identifier assigned by the store.
	// Empty until the record has been persisted.
	ID string `json:"id"`

	// Text is the proverb itself, in Sesotho. Required.
	// Its trimmed, lowercased form is the uniqueness key.
	Text string `json:"text"`

	// Meaning is the explanation in Sesotho. Required on the admin path.
	Meaning string `json:"meaning"`

	// Translation is an optional English translation.
	Translation string `json:"translation,omitempty"`

	// Category is a free-text label, never stored empty.
	Category string `json:"category"`

	// Keywords is derived from Text on every create and update:
	// the lowercase whitespace-split tokens. Not independently editable.
	Keywords []string `json:"keywords"`
}

// Input carries raw field values before normalisation, as entered by an
// admin or read from an import file. Missing import fields stay "".
type Input struct {
	Text        string `json:"text"`
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
	Category    string `json:"category"`
}

// Normalize produces a canonical record from raw input without validating
// required fields. Text, meaning, translation and category are trimmed,
// a blank category becomes DefaultCategory, and keywords are derived from
// the whitespace split of the original text.
func Normalize(in Input) Proverb {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	return Proverb{
		Text:        strings.TrimSpace(in.Text),
		Meaning:     strings.TrimSpace(in.Meaning),
		Translation: strings.TrimSpace(in.Translation),
		Category:    category,
		Keywords:    DeriveKeywords(in.Text),
	}
}

// New normalises raw input and validates it for the interactive admin
// path: both text and meaning are required. The import path is more
// lenient and uses Normalize directly, rejecting only empty text.
func New(in Input) (Proverb, error) {
	p := Normalize(in)
	if p.Text == "" {
		return Proverb{}, ErrTextRequired
	}
	if p.Meaning == "" {
		return Proverb{}, ErrMeaningRequired
	}
	return p, nil
}

// DeriveKeywords returns the lowercase whitespace-split tokens of text.
func DeriveKeywords(text string) []string {
	fields := strings.Fields(text)
	keywords := make([]string, len(fields))
	for i, w := range fields {
		keywords[i] = strings.ToLower(w)
	}
	return keywords
}

// Key returns the uniqueness key for a proverb text: trimmed and
// lowercased. Plain lowercasing only; no Unicode case folding and no
// diacritic folding.
func Key(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Key returns the record's uniqueness key.
func (p Proverb) Key() string {
	return Key(p.Text)
}

// IsDuplicate reports whether text collides with any record in existing.
// The comparison is on uniqueness keys. excludeID names a record to skip,
// so an edit can keep its own text unchanged; pass "" to exclude nothing.
func IsDuplicate(text string, existing []Proverb, excludeID string) bool {
	key := Key(text)
	for _, p := range existing {
		if excludeID != "" && p.ID == excludeID {
			continue
		}
		if p.Key() == key {
			return true
		}
	}
	return false
}
