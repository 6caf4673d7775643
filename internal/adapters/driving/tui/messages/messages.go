// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/maele-app/maele-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the keyword search view.
	ViewSearch
	// ViewCategories is the category picker.
	ViewCategories
	// ViewBrowse shows a list of proverbs (all, one category, or a
	// single random pick).
	ViewBrowse
	// ViewAdmin is the password-gated admin area.
	ViewAdmin
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewCategories:
		return "categories"
	case ViewBrowse:
		return "browse"
	case ViewAdmin:
		return "admin"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// BrowseAllRequested asks for the full collection in the browse view.
type BrowseAllRequested struct{}

// RandomRequested asks for a single random proverb in the browse view.
type RandomRequested struct{}

// CategoryRequested asks for one category's proverbs in the browse view.
type CategoryRequested struct {
	Category string
}

// SearchCompleted carries keyword search results back to the model.
type SearchCompleted struct {
	Keyword string
	Results []domain.Proverb
	Err     error
}

// ProverbsLoaded carries a titled slice of proverbs for the browse view.
type ProverbsLoaded struct {
	Title    string
	Proverbs []domain.Proverb
	Err      error
}

// CategoriesLoaded carries the sorted category list.
type CategoriesLoaded struct {
	Categories []string
	Err        error
}

// RandomPicked carries a single random proverb.
type RandomPicked struct {
	Proverb domain.Proverb
	Err     error
}

// ProverbSaved signals an admin add or edit completed.
type ProverbSaved struct {
	Proverb domain.Proverb
	Err     error
}

// ProverbDeleted signals an admin delete completed.
type ProverbDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
