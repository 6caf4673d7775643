// Package admin provides the password-gated admin view for the TUI:
// adding, editing and deleting proverbs.
package admin

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

// mode tracks which admin screen is active.
type mode int

const (
	modeUnavailable mode = iota
	modePassword
	modeMenu
	modePick
	modeForm
	modeConfirmDelete
)

// action is the pending admin operation.
type action int

const (
	actionAdd action = iota
	actionEdit
	actionDelete
)

// form field indices.
const (
	fieldText = iota
	fieldMeaning
	fieldTranslation
	fieldCategory
	fieldCount
)

// menu options inside the admin area.
var menuOptions = []string{"Add proverb", "Edit proverb", "Delete proverb", "Back to menu"}

// View represents the admin view.
type View struct {
	styles  *styles.Styles
	catalog driving.CatalogService
	admin   driving.AdminService
	ctx     context.Context

	mode     mode
	action   action
	password textinput.Model
	form     [fieldCount]textinput.Model
	focus    int

	menuIndex int
	proverbs  []domain.Proverb
	pickIndex int
	editing   *domain.Proverb

	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new admin view.
func NewView(s *styles.Styles, catalog driving.CatalogService, admin driving.AdminService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	password := textinput.New()
	password.Placeholder = "Admin password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 80
	password.Width = 30

	var form [fieldCount]textinput.Model
	labels := [fieldCount]string{
		"Proverb text (Sesotho)",
		"Meaning (Sesotho)",
		"English translation (optional)",
		"Category (optional)",
	}
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 300
		ti.Width = 60
		form[i] = ti
	}

	v := &View{
		styles:   s,
		catalog:  catalog,
		admin:    admin,
		ctx:      context.Background(),
		password: password,
		form:     form,
		width:    80,
		height:   24,
	}
	if admin == nil {
		v.mode = modeUnavailable
	} else {
		v.mode = modePassword
	}
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the admin view.
func (v *View) Init() tea.Cmd {
	if v.mode == modePassword {
		v.password.Focus()
		return textinput.Blink
	}
	return nil
}

// Reset returns the view to the password gate, clearing all state.
func (v *View) Reset() {
	if v.admin == nil {
		v.mode = modeUnavailable
		return
	}
	v.mode = modePassword
	v.password.SetValue("")
	v.password.Focus()
	v.clearForm()
	v.menuIndex = 0
	v.proverbs = nil
	v.pickIndex = 0
	v.editing = nil
	v.status = ""
	v.err = nil
}

func (v *View) clearForm() {
	for i := range v.form {
		v.form[i].SetValue("")
		v.form[i].Blur()
	}
	v.focus = 0
}

// Update handles messages for the admin view.
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
			v.mode = modeMenu
			return v, nil
		}
		v.proverbs = msg.Proverbs
		v.pickIndex = 0
		v.mode = modePick
		return v, nil

	case messages.ProverbSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.mode = modeForm
			return v, v.focusField(v.focus)
		}
		v.err = nil
		v.status = fmt.Sprintf("Saved: %s", msg.Proverb.Text)
		v.clearForm()
		v.editing = nil
		v.mode = modeMenu
		return v, nil

	case messages.ProverbDeleted:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.status = "Proverb deleted."
		}
		v.mode = modeMenu
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeUnavailable:
		if msg.Type == tea.KeyEsc {
			return v, v.backToMenu()
		}
		return v, nil

	case modePassword:
		return v.handlePasswordKey(msg)

	case modeMenu:
		return v.handleMenuKey(msg)

	case modePick:
		return v.handlePickKey(msg)

	case modeForm:
		return v.handleFormKey(msg)

	case modeConfirmDelete:
		return v.handleConfirmKey(msg)
	}
	return v, nil
}

func (v *View) backToMenu() tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewMenu}
	}
}

func (v *View) handlePasswordKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return v, v.backToMenu()

	case tea.KeyEnter:
		if err := v.admin.Authenticate(v.password.Value()); err != nil {
			v.err = err
			v.password.SetValue("")
			return v, nil
		}
		v.err = nil
		v.password.Blur()
		v.mode = modeMenu
		return v, nil
	}

	var cmd tea.Cmd
	v.password, cmd = v.password.Update(msg)
	return v, cmd
}

func (v *View) handleMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, v.backToMenu()

	case "up", "k":
		if v.menuIndex > 0 {
			v.menuIndex--
		}

	case "down", "j":
		if v.menuIndex < len(menuOptions)-1 {
			v.menuIndex++
		}

	case "enter":
		v.status = ""
		v.err = nil
		switch v.menuIndex {
		case 0: // Add
			v.action = actionAdd
			v.clearForm()
			v.mode = modeForm
			return v, v.focusField(0)
		case 1: // Edit
			v.action = actionEdit
			return v, v.loadProverbs()
		case 2: // Delete
			v.action = actionDelete
			return v, v.loadProverbs()
		case 3: // Back
			return v, v.backToMenu()
		}

	case "q":
		return v, tea.Quit
	}
	return v, nil
}

func (v *View) loadProverbs() tea.Cmd {
	return func() tea.Msg {
		proverbs, err := v.catalog.All(v.ctx)
		return messages.ProverbsLoaded{Title: "Pick a proverb", Proverbs: proverbs, Err: err}
	}
}

func (v *View) handlePickKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeMenu
		return v, nil

	case "up", "k":
		if v.pickIndex > 0 {
			v.pickIndex--
		}

	case "down", "j":
		if v.pickIndex < len(v.proverbs)-1 {
			v.pickIndex++
		}

	case "enter":
		if len(v.proverbs) == 0 {
			v.mode = modeMenu
			return v, nil
		}
		p := v.proverbs[v.pickIndex]
		if v.action == actionDelete {
			v.editing = &p
			v.mode = modeConfirmDelete
			return v, nil
		}
		// Edit: prefill the form.
		v.editing = &p
		v.form[fieldText].SetValue(p.Text)
		v.form[fieldMeaning].SetValue(p.Meaning)
		v.form[fieldTranslation].SetValue(p.Translation)
		v.form[fieldCategory].SetValue(p.Category)
		v.mode = modeForm
		return v, v.focusField(0)
	}
	return v, nil
}

// focusField moves input focus to field i.
func (v *View) focusField(i int) tea.Cmd {
	v.focus = i
	for j := range v.form {
		if j == i {
			v.form[j].Focus()
		} else {
			v.form[j].Blur()
		}
	}
	return textinput.Blink
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.clearForm()
		v.editing = nil
		v.mode = modeMenu
		return v, nil

	case tea.KeyTab, tea.KeyDown:
		return v, v.focusField((v.focus + 1) % fieldCount)

	case tea.KeyShiftTab, tea.KeyUp:
		return v, v.focusField((v.focus + fieldCount - 1) % fieldCount)

	case tea.KeyEnter:
		// Enter advances; on the last field it submits.
		if v.focus < fieldCount-1 {
			return v, v.focusField(v.focus + 1)
		}
		return v, v.submitForm()
	}

	var cmd tea.Cmd
	v.form[v.focus], cmd = v.form[v.focus].Update(msg)
	return v, cmd
}

// submitForm persists the form through the admin service.
func (v *View) submitForm() tea.Cmd {
	in := domain.Input{
		Text:        v.form[fieldText].Value(),
		Meaning:     v.form[fieldMeaning].Value(),
		Translation: v.form[fieldTranslation].Value(),
		Category:    v.form[fieldCategory].Value(),
	}
	editing := v.editing

	return func() tea.Msg {
		var (
			p   domain.Proverb
			err error
		)
		if editing != nil {
			p, err = v.admin.Update(v.ctx, editing.ID, in)
		} else {
			p, err = v.admin.Add(v.ctx, in)
		}
		return messages.ProverbSaved{Proverb: p, Err: err}
	}
}

func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p := v.editing
		v.editing = nil
		return v, func() tea.Msg {
			err := v.admin.Delete(v.ctx, p.ID)
			return messages.ProverbDeleted{ID: p.ID, Err: err}
		}
	case "n", "N", "esc":
		v.editing = nil
		v.mode = modeMenu
	}
	return v, nil
}

// View renders the admin view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Tsamaiso - Admin"),
		"",
	}

	if v.status != "" {
		sections = append(sections, v.styles.Success.Render(v.status), "")
	}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	switch v.mode {
	case modeUnavailable:
		sections = append(sections,
			v.styles.Muted.Render("Administration is not available: no admin service configured."),
			"",
			v.styles.Help.Render("[esc] Menu"))

	case modePassword:
		sections = append(sections,
			v.styles.Normal.Render("Enter the admin password:"),
			"",
			v.password.View(),
			"",
			v.styles.Help.Render("[Enter] Unlock  [esc] Menu"))

	case modeMenu:
		for i, opt := range menuOptions {
			cursor := "  "
			style := v.styles.Normal
			if i == v.menuIndex {
				cursor = "> "
				style = v.styles.Subtitle
			}
			sections = append(sections, cursor+style.Render(opt))
		}
		sections = append(sections, "",
			v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [esc] Menu"))

	case modePick:
		if len(v.proverbs) == 0 {
			sections = append(sections, v.styles.Muted.Render("No proverbs to pick from."))
		}
		for i, p := range v.proverbs {
			cursor := "  "
			style := v.styles.Normal
			if i == v.pickIndex {
				cursor = "> "
				style = v.styles.Subtitle
			}
			sections = append(sections, cursor+style.Render(p.Text))
		}
		sections = append(sections, "",
			v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [esc] Back"))

	case modeForm:
		title := "Add a proverb"
		if v.editing != nil {
			title = "Edit proverb"
		}
		sections = append(sections, v.styles.Subtitle.Render(title), "")
		for i := range v.form {
			sections = append(sections, v.form[i].View())
		}
		sections = append(sections, "",
			v.styles.Help.Render("[Tab] Next field  [Enter] Next/Submit  [esc] Cancel"))

	case modeConfirmDelete:
		text := ""
		if v.editing != nil {
			text = v.editing.Text
		}
		sections = append(sections,
			v.styles.Error.Render("Delete this proverb?"),
			"",
			v.styles.Normal.Render("  "+text),
			"",
			v.styles.Help.Render("[y] Delete  [n/esc] Cancel"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, trimEmptyTail(sections)...)
}

// trimEmptyTail drops trailing blank lines.
func trimEmptyTail(sections []string) []string {
	for len(sections) > 0 && strings.TrimSpace(sections[len(sections)-1]) == "" {
		sections = sections[:len(sections)-1]
	}
	return sections
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Unlocked reports whether the password gate has been passed.
func (v *View) Unlocked() bool {
	return v.mode != modePassword && v.mode != modeUnavailable
}

// Status returns the last status message.
func (v *View) Status() string {
	return v.status
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
