package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maele-app/maele-cli/internal/adapters/driven/storage/memory"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/services"
)

func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	store := memory.NewProverbStore()
	for _, in := range []domain.Input{
		{Text: "Khomo ke thota", Meaning: "leruo", Category: "Animals"},
		{Text: "Metsi ke bophelo", Meaning: "bohlokoa", Category: "Nature"},
	} {
		_, err := store.Add(context.Background(), domain.Normalize(in))
		require.NoError(t, err)
	}

	return &Ports{
		Catalog: services.NewCatalogService(store),
		Admin:   services.NewAdminService(store, "sekoti"),
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts(t))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_MissingCatalog(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingCatalogService)
	assert.Nil(t, app)
}

func TestNewApp_NilPorts(t *testing.T) {
	app, err := NewApp(nil)

	assert.ErrorIs(t, err, ErrInvalidPorts)
	assert.Nil(t, app)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_BrowseAll(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.BrowseAllRequested{})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewBrowse, app.CurrentView())

	loaded, ok := cmd().(messages.ProverbsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Proverbs, 2)

	app.Update(loaded)
	assert.Contains(t, app.View(), "Khomo ke thota")
}

func TestApp_Update_Random(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.RandomRequested{})
	require.NotNil(t, cmd)

	picked, ok := cmd().(messages.RandomPicked)
	require.True(t, ok)
	require.NoError(t, picked.Err)
	assert.NotEmpty(t, picked.Proverb.Text)
}

func TestApp_Update_CategoryRequested(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.CategoryRequested{Category: "Animals"})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewBrowse, app.CurrentView())

	loaded := cmd().(messages.ProverbsLoaded)
	require.NoError(t, loaded.Err)
	require.Len(t, loaded.Proverbs, 1)
	assert.Equal(t, "Khomo ke thota", loaded.Proverbs[0].Text)
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
}

func TestApp_HelpView(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Contains(t, app.View(), "Suggested keywords")

	// Esc returns to the menu.
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_MenuToSearchFlow(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	// Enter on the first menu item opens search.
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Contains(t, app.View(), "Search")
}
