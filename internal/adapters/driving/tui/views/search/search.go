// Package search provides the keyword search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/styles"
	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

// SuggestedKeywords are common proverb themes offered as one-key
// shortcuts below the input.
var SuggestedKeywords = []string{
	"Khomo", "Tau", "Ntja", "Metsi", "Phiri", "Nonyana", "Lerato",
}

// View represents the search view with input and result list.
type View struct {
	styles  *styles.Styles
	input   textinput.Model
	catalog driving.CatalogService
	ctx     context.Context

	keyword    string
	results    []domain.Proverb
	selected   int
	inMeanings bool
	searched   bool
	english    bool
	err        error

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Ngola lentsoe... (type a keyword)"
	ti.CharLimit = 80
	ti.Width = 40
	ti.Focus()

	return &View{
		styles:     s,
		input:      ti,
		catalog:    catalog,
		ctx:        context.Background(),
		inMeanings: true,
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to the menu.
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter submits the current keyword.
	if msg.Type == tea.KeyEnter {
		keyword := strings.TrimSpace(v.input.Value())
		if keyword == "" {
			return v, nil
		}
		v.focusInput = false
		v.input.Blur()
		return v, v.performSearch(keyword)
	}

	// Number keys pick a suggested keyword, unless the user is mid-word
	// in the input (digits must still be typable).
	if !v.focusInput || v.input.Value() == "" {
		if n := suggestionIndex(msg.String()); n >= 0 && n < len(SuggestedKeywords) {
			keyword := SuggestedKeywords[n]
			v.input.SetValue(keyword)
			v.focusInput = false
			v.input.Blur()
			return v, v.performSearch(keyword)
		}
	}

	// Input mode: remaining keys go to the text input.
	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode.
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.results)-1 {
			v.selected++
		}
	case "t":
		v.english = !v.english
	case "m":
		v.inMeanings = !v.inMeanings
		if v.keyword != "" {
			return v, v.performSearch(v.keyword)
		}
	case "n":
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, textinput.Blink
	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// suggestionIndex maps keys 1..7 to a suggested keyword index.
func suggestionIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}

// performSearch runs the keyword search off the update loop.
func (v *View) performSearch(keyword string) tea.Cmd {
	return func() tea.Msg {
		results, err := v.catalog.Search(v.ctx, keyword, domain.SearchOptions{
			InMeanings: v.inMeanings,
		})
		return messages.SearchCompleted{Keyword: keyword, Results: results, Err: err}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		return
	}
	v.err = nil
	v.keyword = msg.Keyword
	v.results = msg.Results
	v.selected = 0
	v.searched = true
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Batla Maele - Search"),
		"",
		v.input.View(),
		"",
		v.renderSuggestions(),
		"",
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.searched && v.err == nil {
		sections = append(sections, v.renderResults(), "")
	}

	scope := "text only"
	if v.inMeanings {
		scope = "text + meanings"
	}
	sections = append(sections, v.styles.Help.Render(
		fmt.Sprintf("[Enter] Search (%s)  [1-7] Suggested  [m] Scope  [t] Language  [n] New  [esc] Menu", scope)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSuggestions renders the numbered quick keywords.
func (v *View) renderSuggestions() string {
	parts := make([]string, 0, len(SuggestedKeywords))
	for i, kw := range SuggestedKeywords {
		parts = append(parts, fmt.Sprintf("[%d] %s", i+1, kw))
	}
	return v.styles.Muted.Render(strings.Join(parts, "  "))
}

// renderResults renders the result list.
func (v *View) renderResults() string {
	if len(v.results) == 0 {
		return v.styles.Muted.Render(fmt.Sprintf("No proverbs found for %q.", v.keyword))
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Found %d proverb(s):", len(v.results))))
	b.WriteString("\n\n")

	for i, p := range v.results {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}

		b.WriteString(cursor + style.Render(p.Text))
		b.WriteString("\n")

		explanation := p.Meaning
		if v.english {
			explanation = p.Translation
			if explanation == "" {
				explanation = "(no English translation)"
			}
		}
		b.WriteString("    " + v.styles.Muted.Render(explanation))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to its initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.keyword = ""
	v.results = nil
	v.selected = 0
	v.searched = false
	v.err = nil
}

// Keyword returns the last submitted keyword.
func (v *View) Keyword() string {
	return v.keyword
}

// Results returns the current search results.
func (v *View) Results() []domain.Proverb {
	return v.results
}

// Selected returns the selected result index.
func (v *View) Selected() int {
	return v.selected
}

// InMeanings reports whether meanings are searched too.
func (v *View) InMeanings() bool {
	return v.inMeanings
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
