package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/core/domain"
)

func testProverbs() []domain.Proverb {
	return []domain.Proverb{
		{ID: "1", Text: "Khomo ke thota", Meaning: "leruo", Translation: "Cattle are wealth", Category: "Animals"},
		{ID: "2", Text: "Metsi ke bophelo", Meaning: "bohlokoa", Category: "Nature"},
	}
}

func TestView_ProverbsLoaded(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view.Update(messages.ProverbsLoaded{Title: "All proverbs", Proverbs: testProverbs()})

	assert.Equal(t, "All proverbs", view.Title())
	assert.Len(t, view.Proverbs(), 2)
	assert.Equal(t, 0, view.Selected())
}

func TestView_RandomPicked(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view.Update(messages.RandomPicked{Proverb: testProverbs()[0]})

	require.Len(t, view.Proverbs(), 1)
	assert.Equal(t, "Khomo ke thota", view.Proverbs()[0].Text)
}

func TestView_RandomPicked_EmptyCollection(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view.Update(messages.RandomPicked{Err: domain.ErrEmptyCollection})

	assert.ErrorIs(t, view.Err(), domain.ErrEmptyCollection)
	assert.Contains(t, view.View(), "no proverbs available")
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetProverbs("All", testProverbs())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	// Boundary: cannot go past the last proverb.
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())
}

func TestView_LanguageToggle(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetProverbs("All", testProverbs())

	assert.Equal(t, Sesotho, view.Language())
	assert.Contains(t, view.View(), "leruo")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})

	assert.Equal(t, English, view.Language())
	out := view.View()
	assert.Contains(t, out, "Cattle are wealth")
	// Missing translation shows a placeholder, never an empty line.
	assert.Contains(t, out, "(no English translation)")
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Empty(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetProverbs("Category: Weather", nil)

	assert.Contains(t, view.View(), "No proverbs to show.")
	assert.Nil(t, view.SelectedProverb())
}
