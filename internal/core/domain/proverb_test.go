package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TrimsFields(t *testing.T) {
	p := Normalize(Input{
		Text:        "  Khomo ke thota  ",
		Meaning:     " tlhaloso ",
		Translation: " a cow is wealth ",
		Category:    " Wisdom ",
	})

	assert.Equal(t, "Khomo ke thota", p.Text)
	assert.Equal(t, "tlhaloso", p.Meaning)
	assert.Equal(t, "a cow is wealth", p.Translation)
	assert.Equal(t, "Wisdom", p.Category)
}

func TestNormalize_EqualForTrimmedAndUntrimmedText(t *testing.T) {
	raw := Normalize(Input{Text: "  Tau e rora  ", Meaning: "m"})
	trimmed := Normalize(Input{Text: "Tau e rora", Meaning: "m"})

	assert.Equal(t, trimmed, raw)
}

func TestNormalize_BlankCategoryBecomesDefault(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"empty", "", DefaultCategory},
		{"whitespace only", "   ", DefaultCategory},
		{"preserved verbatim after trim", " Wisdom ", "Wisdom"},
		{"mixed case kept", "animals", "animals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(Input{Text: "x", Category: tt.category})
			assert.Equal(t, tt.want, p.Category)
		})
	}
}

func TestNormalize_DerivesKeywords(t *testing.T) {
	p := Normalize(Input{Text: "  Khomo KE  Thota "})

	assert.Equal(t, []string{"khomo", "ke", "thota"}, p.Keywords)
}

func TestDeriveKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Khomo ke thota", []string{"khomo", "ke", "thota"}},
		{"uppercase", "TAU E RORA", []string{"tau", "e", "rora"}},
		{"extra whitespace", "  ntja \t e loma\n", []string{"ntja", "e", "loma"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveKeywords(tt.text))
		})
	}
}

func TestNew_RequiresTextAndMeaning(t *testing.T) {
	_, err := New(Input{Text: "   ", Meaning: "m"})
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = New(Input{Text: "Khomo ke thota", Meaning: "  "})
	assert.ErrorIs(t, err, ErrMeaningRequired)

	p, err := New(Input{Text: "Khomo ke thota", Meaning: "tlhaloso"})
	require.NoError(t, err)
	assert.Equal(t, "Khomo ke thota", p.Text)
	assert.Empty(t, p.ID)
}

func TestKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, Key("Khomo"), Key("  khomo "))
	assert.Equal(t, "khomo ke thota", Key("  Khomo KE Thota\t"))
}

func TestIsDuplicate(t *testing.T) {
	existing := []Proverb{
		{ID: "a", Text: "Khomo ke thota"},
		{ID: "b", Text: "Tau e rora"},
	}

	assert.True(t, IsDuplicate("  khomo ke thota ", existing, ""))
	assert.False(t, IsDuplicate("Ntja e loma", existing, ""))
}

func TestIsDuplicate_ExcludesRecordBeingEdited(t *testing.T) {
	existing := []Proverb{
		{ID: "a", Text: "Khomo ke thota"},
		{ID: "b", Text: "Tau e rora"},
	}

	// A record may keep its own text unchanged.
	assert.False(t, IsDuplicate("Khomo ke thota", existing, "a"))
	// But it may not take another record's text.
	assert.True(t, IsDuplicate("Tau e rora", existing, "a"))
}
