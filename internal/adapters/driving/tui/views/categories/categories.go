// Package categories provides the category picker view for the TUI.
package categories

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/styles"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

// View represents the category picker.
type View struct {
	styles  *styles.Styles
	catalog driving.CatalogService
	ctx     context.Context

	categories []string
	selected   int
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new categories view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		catalog: catalog,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the category list.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		categories, err := v.catalog.Categories(v.ctx)
		return messages.CategoriesLoaded{Categories: categories, Err: err}
	}
}

// Update handles messages for the categories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.CategoriesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.categories = msg.Categories
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}

		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.categories)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.categories) == 0 {
				return v, nil
			}
			category := v.categories[v.selected]
			return v, func() tea.Msg {
				return messages.CategoryRequested{Category: category}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the category picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Mefuta - Categories"),
		"",
	}

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.categories) == 0:
		sections = append(sections, v.styles.Muted.Render("No categories yet."))
	default:
		sections = append(sections, v.styles.Muted.Render(fmt.Sprintf("%d categories", len(v.categories))), "")
		for i, c := range v.categories {
			cursor := "  "
			style := v.styles.Normal
			if i == v.selected {
				cursor = "> "
				style = v.styles.Subtitle
			}
			sections = append(sections, cursor+style.Render(c))
		}
	}

	sections = append(sections, "",
		v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [esc] Menu"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Categories returns the loaded category list.
func (v *View) Categories() []string {
	return v.categories
}

// Selected returns the selected category index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
