package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/internal/tui/theme"
	"github.com/studio-ormeau/folio/pkg/api"
)

// Skill form field order. Category is a fixed-set picker, not free text.
const (
	skillFieldName = iota
	skillFieldLevel
	skillFieldCategory
	skillFieldCount
)

// SkillFormView creates or edits a single skill.
type SkillFormView struct {
	name  textinput.Model
	level textinput.Model

	categories    []string
	categoryIndex int
	focus         int

	state       FormState
	editingID   int
	errText     string
	fieldErrors map[int]string

	width  int
	height int
}

// NewSkillFormView creates the form screen.
func NewSkillFormView() *SkillFormView {
	name := textinput.New()
	name.CharLimit = 50
	name.Width = 40

	level := textinput.New()
	level.CharLimit = 3
	level.Width = 6
	level.Placeholder = "1-100"

	return &SkillFormView{
		name:        name,
		level:       level,
		categories:  models.ValidCategories(),
		fieldErrors: map[int]string{},
	}
}

// State returns the form lifecycle state.
func (v *SkillFormView) State() FormState {
	return v.state
}

// EditingID returns the skill being edited, or 0 when creating.
func (v *SkillFormView) EditingID() int {
	return v.editingID
}

// SetSize updates the rendering area.
func (v *SkillFormView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// StartCreate opens an empty form.
func (v *SkillFormView) StartCreate() {
	v.reset()
	v.editingID = 0
	v.state = FormEditing
}

// StartEdit opens the form prefilled from the cached record. Skills are
// small enough that the cache copy is authoritative.
func (v *SkillFormView) StartEdit(skill api.Skill) {
	v.reset()
	v.editingID = skill.ID
	v.name.SetValue(skill.Name)
	v.level.SetValue(strconv.Itoa(skill.Level))
	for i, c := range v.categories {
		if c == skill.Category {
			v.categoryIndex = i
			break
		}
	}
	v.state = FormEditing
}

func (v *SkillFormView) reset() {
	v.name.Reset()
	v.level.Reset()
	v.name.Focus()
	v.level.Blur()
	v.categoryIndex = 0
	v.focus = skillFieldName
	v.errText = ""
	v.fieldErrors = map[int]string{}
}

// HandleSaveResult moves the form out of the submitting state.
func (v *SkillFormView) HandleSaveResult(err error) {
	if v.state != FormSubmitting {
		return
	}
	v.state = FormEditing
	if err != nil {
		v.errText = api.Message(err)
	}
}

// Payload builds the request body from the current fields.
func (v *SkillFormView) Payload() api.SkillPayload {
	level, _ := strconv.Atoi(strings.TrimSpace(v.level.Value()))
	return api.SkillPayload{
		Name:     strings.TrimSpace(v.name.Value()),
		Level:    level,
		Category: v.categories[v.categoryIndex],
	}
}

func (v *SkillFormView) validate() bool {
	v.fieldErrors = map[int]string{}
	if strings.TrimSpace(v.name.Value()) == "" {
		v.fieldErrors[skillFieldName] = "required"
	}
	level, err := strconv.Atoi(strings.TrimSpace(v.level.Value()))
	if err != nil || level < 1 || level > 100 {
		v.fieldErrors[skillFieldLevel] = "must be 1-100"
	}
	return len(v.fieldErrors) == 0
}

func (v *SkillFormView) setFocus(focus int) {
	v.focus = focus
	v.name.Blur()
	v.level.Blur()
	switch focus {
	case skillFieldName:
		v.name.Focus()
	case skillFieldLevel:
		v.level.Focus()
	}
}

// Update handles a key press and returns the resulting action.
func (v *SkillFormView) Update(msg tea.KeyMsg) (FormAction, tea.Cmd) {
	if v.state == FormSubmitting {
		if msg.String() == "esc" {
			return FormActionCancel, nil
		}
		return FormActionNone, nil
	}

	switch msg.String() {
	case "esc":
		return FormActionCancel, nil
	case "tab", "down":
		v.setFocus((v.focus + 1) % skillFieldCount)
		return FormActionNone, nil
	case "shift+tab", "up":
		v.setFocus((v.focus + skillFieldCount - 1) % skillFieldCount)
		return FormActionNone, nil
	case "left":
		if v.focus == skillFieldCategory {
			v.categoryIndex = (v.categoryIndex + len(v.categories) - 1) % len(v.categories)
			return FormActionNone, nil
		}
	case "right":
		if v.focus == skillFieldCategory {
			v.categoryIndex = (v.categoryIndex + 1) % len(v.categories)
			return FormActionNone, nil
		}
	case "enter":
		v.setFocus((v.focus + 1) % skillFieldCount)
		return FormActionNone, nil
	case "ctrl+s":
		if !v.validate() {
			v.errText = "Fix the highlighted fields"
			return FormActionNone, nil
		}
		v.errText = ""
		v.state = FormSubmitting
		return FormActionSubmit, nil
	}

	var cmd tea.Cmd
	switch v.focus {
	case skillFieldName:
		v.name, cmd = v.name.Update(msg)
	case skillFieldLevel:
		v.level, cmd = v.level.Update(msg)
	}
	return FormActionNone, cmd
}

// View renders the form.
func (v *SkillFormView) View() string {
	t := theme.Current
	var b strings.Builder

	title := "New Skill"
	if v.editingID != 0 {
		title = fmt.Sprintf("Edit Skill #%d", v.editingID)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Error)

	line := label.Render("Name")
	if msg, ok := v.fieldErrors[skillFieldName]; ok {
		line += "  " + errStyle.Render(msg)
	}
	b.WriteString(line + "\n" + v.name.View() + "\n\n")

	line = label.Render("Level")
	if msg, ok := v.fieldErrors[skillFieldLevel]; ok {
		line += "  " + errStyle.Render(msg)
	}
	b.WriteString(line + "\n" + v.level.View() + "\n\n")

	categoryStyle := label
	if v.focus == skillFieldCategory {
		categoryStyle = lipgloss.NewStyle().Foreground(t.TextHighlight).Bold(true)
	}
	b.WriteString(label.Render("Category (left/right to change)") + "\n")
	b.WriteString(categoryStyle.Render("◂ "+v.categories[v.categoryIndex]+" ▸") + "\n\n")

	switch {
	case v.state == FormSubmitting:
		b.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render("Saving..."))
	case v.errText != "":
		b.WriteString(errStyle.Render(v.errText))
	default:
		b.WriteString(label.Render("ctrl+s save · esc cancel · tab next field"))
	}

	return b.String()
}
