// Package browse provides the proverb list view for the TUI.
// It renders any titled slice of proverbs: the full collection, one
// category, or a single random pick, with a Sesotho/English toggle for
// the explanation line.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/messages"
	"github.com/maele-app/maele-cli/internal/adapters/driving/tui/styles"
	"github.com/maele-app/maele-cli/internal/core/domain"
)

// Language selects which explanation line the proverb cards show.
type Language int

const (
	// Sesotho shows the meaning in Sesotho.
	Sesotho Language = iota
	// English shows the English translation.
	English
)

// View represents the browse view.
type View struct {
	styles   *styles.Styles
	title    string
	proverbs []domain.Proverb
	selected int
	language Language
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new browse view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the browse view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetProverbs replaces the displayed slice and resets the selection.
func (v *View) SetProverbs(title string, proverbs []domain.Proverb) {
	v.title = title
	v.proverbs = proverbs
	v.selected = 0
	v.err = nil
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ProverbsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.SetProverbs(msg.Title, msg.Proverbs)
		return v, nil

	case messages.RandomPicked:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.SetProverbs("Random proverb", []domain.Proverb{msg.Proverb})
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
			if v.selected < len(v.proverbs)-1 {
				v.selected++
			}
			return v, nil

		case "t":
			v.ToggleLanguage()
			return v, nil

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render(v.title),
		"",
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
		sections = append(sections, v.styles.Help.Render("[esc] Menu"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if len(v.proverbs) == 0 {
		sections = append(sections, v.styles.Muted.Render("No proverbs to show."), "")
		sections = append(sections, v.styles.Help.Render("[esc] Menu"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		v.styles.Muted.Render(fmt.Sprintf("%d proverb(s)  ·  showing %s", len(v.proverbs), v.languageLabel())),
		"")

	for i, p := range v.proverbs {
		sections = append(sections, v.renderCard(p, i == v.selected))
	}

	sections = append(sections, "",
		v.styles.Help.Render("[j/k] Navigate  [t] Toggle Sesotho/English  [esc] Menu"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard renders one proverb entry.
func (v *View) renderCard(p domain.Proverb, selected bool) string {
	cursor := "  "
	textStyle := v.styles.Normal
	if selected {
		cursor = "> "
		textStyle = v.styles.Subtitle
	}

	var b strings.Builder
	b.WriteString(cursor + textStyle.Render(p.Text))
	b.WriteString("\n")

	explanation := v.explanation(p)
	b.WriteString("    " + v.styles.Muted.Render(explanation))
	b.WriteString("\n")
	b.WriteString("    " + v.styles.Help.Render("Category: "+p.Category))

	return b.String()
}

// explanation picks the meaning or translation per the language toggle.
func (v *View) explanation(p domain.Proverb) string {
	if v.language == English {
		if p.Translation == "" {
			return "(no English translation)"
		}
		return p.Translation
	}
	return p.Meaning
}

// ToggleLanguage flips between Sesotho and English.
func (v *View) ToggleLanguage() {
	if v.language == Sesotho {
		v.language = English
	} else {
		v.language = Sesotho
	}
}

func (v *View) languageLabel() string {
	if v.language == English {
		return "English"
	}
	return "Sesotho"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Title returns the current list title.
func (v *View) Title() string {
	return v.title
}

// Proverbs returns the displayed slice.
func (v *View) Proverbs() []domain.Proverb {
	return v.proverbs
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedProverb returns the currently selected proverb, or nil.
func (v *View) SelectedProverb() *domain.Proverb {
	if len(v.proverbs) == 0 {
		return nil
	}
	return &v.proverbs[v.selected]
}

// Language returns the active explanation language.
func (v *View) Language() Language {
	return v.language
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
