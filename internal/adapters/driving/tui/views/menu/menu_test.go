package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 7)
	assert.Equal(t, 0, view.selected)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())

	// Boundary: cannot go before the first item.
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter_Search(t *testing.T) {
	view := NewView(nil)
	view.selected = 0 // Search

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, changed.View)
}

func TestView_Update_Enter_Random(t *testing.T) {
	view := NewView(nil)
	view.selected = 2 // Random proverb

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.RandomRequested)
	assert.True(t, ok)
}

func TestView_Update_Enter_ViewAll(t *testing.T) {
	view := NewView(nil)
	view.selected = 3 // View all

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.BrowseAllRequested)
	assert.True(t, ok)
}

func TestView_Update_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = len(view.items) - 1 // Quit

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "Maele a Basotho")
	assert.Contains(t, output, "Search")
	assert.Contains(t, output, "Categories")
	assert.Contains(t, output, "Random proverb")
	assert.Contains(t, output, "View all")
	assert.Contains(t, output, "Admin")
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, ">")
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Contains(t, view.View(), "Initialising")
}
