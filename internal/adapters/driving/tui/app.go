package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/styles"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/views/admin"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/views/browse"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/views/categories"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/views/menu"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the keyword search view.
	searchView *search.View

	// categoriesView is the category picker.
	categoriesView *categories.View

	// browseView shows proverb lists: all, one category, or a random pick.
	browseView *browse.View

	// adminView is the password-gated admin area.
	adminView *admin.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		searchView:     search.NewView(s, ports.Catalog),
		categoriesView: categories.NewView(s, ports.Catalog),
		browseView:     browse.NewView(s),
		adminView:      admin.NewView(s, ports.Catalog, ports.Admin),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.categoriesView.WithContext(ctx)
	a.adminView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("maele - Basotho Proverbs"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.categoriesView.SetDimensions(msg.Width, msg.Height)
		a.browseView.SetDimensions(msg.Width, msg.Height)
		a.adminView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewCategories:
			return a, a.categoriesView.Init()
		case messages.ViewAdmin:
			a.adminView.Reset()
			return a, a.adminView.Init()
		case messages.ViewMenu, messages.ViewBrowse, messages.ViewHelp:
			// No initialisation needed.
		}
		return a, nil

	case messages.BrowseAllRequested:
		a.currentView = messages.ViewBrowse
		return a, func() tea.Msg {
			proverbs, err := a.ports.Catalog.All(a.ctx)
			return messages.ProverbsLoaded{Title: "Maele oohle - All proverbs", Proverbs: proverbs, Err: err}
		}

	case messages.RandomRequested:
		a.currentView = messages.ViewBrowse
		return a, func() tea.Msg {
			p, err := a.ports.Catalog.Random(a.ctx)
			return messages.RandomPicked{Proverb: p, Err: err}
		}

	case messages.CategoryRequested:
		a.currentView = messages.ViewBrowse
		category := msg.Category
		return a, func() tea.Msg {
			proverbs, err := a.ports.Catalog.ByCategory(a.ctx, category)
			return messages.ProverbsLoaded{Title: "Category: " + category, Proverbs: proverbs, Err: err}
		}

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		return a, tea.Quit

	case messages.ProverbsLoaded, messages.RandomPicked:
		// Routed by active view: the admin pick list also loads proverbs.
		return a.forward(msg)
	}

	return a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewCategories:
		a.categoriesView, cmd = a.categoriesView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewAdmin:
		a.adminView, cmd = a.adminView.Update(msg)
	case messages.ViewHelp:
		// Help has no internal state.
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewCategories:
		return a.categoriesView.View()
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewAdmin:
		return a.adminView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter a keyword
  1-7         Suggested keywords
  enter       Submit search
  m           Toggle searching meanings
  t           Toggle Sesotho/English
  n           New search

Browse:
  j/k, ↑/↓    Navigate proverbs
  t           Toggle Sesotho/English

Admin:
  (password)  Unlock with the admin password
  tab/enter   Move through form fields; enter on the last submits

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.categoriesView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
	a.adminView.SetDimensions(width, height)
}
