package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/tui/theme"
	"github.com/studio-ormeau/folio/pkg/api"
)

// FormState tracks the lifecycle of a resource form.
type FormState int

const (
	FormIdle FormState = iota
	FormLoading
	FormEditing
	FormSubmitting

	// FormFailed is terminal: the record to edit could not be fetched, so
	// there is nothing safe to submit. Only esc leaves it.
	FormFailed
)

// FormAction tells the app what to do after a form key press.
type FormAction int

const (
	FormActionNone FormAction = iota
	FormActionCancel
	FormActionSubmit
)

// Project form field order.
const (
	fieldTitle = iota
	fieldDescription
	fieldImage
	fieldDemoURL
	fieldRepoURL
	fieldTags
	fieldFeatured
	projectFieldCount
)

var projectFieldLabels = [projectFieldCount]string{
	"Title", "Description", "Image URL", "Demo URL", "Repo URL", "Tags (comma separated)", "Featured",
}

// ProjectFormView creates or edits a single project.
type ProjectFormView struct {
	inputs   [fieldFeatured]textinput.Model
	featured bool
	focus    int

	state       FormState
	editingID   int // 0 = create
	errText     string
	fieldErrors map[int]string

	// Known tag names for suggestions under the tags field
	knownTags []string

	width  int
	height int
}

// NewProjectFormView creates the form screen.
func NewProjectFormView() *ProjectFormView {
	v := &ProjectFormView{fieldErrors: map[int]string{}}
	for i := range v.inputs {
		ti := textinput.New()
		ti.CharLimit = 500
		ti.Width = 60
		v.inputs[i] = ti
	}
	v.inputs[fieldTitle].CharLimit = 100
	return v
}

// State returns the form lifecycle state.
func (v *ProjectFormView) State() FormState {
	return v.state
}

// EditingID returns the project being edited, or 0 when creating.
func (v *ProjectFormView) EditingID() int {
	return v.editingID
}

// SetTags updates the tag names used for suggestions.
func (v *ProjectFormView) SetTags(tags []api.Tag) {
	v.knownTags = v.knownTags[:0]
	for _, t := range tags {
		v.knownTags = append(v.knownTags, t.Name)
	}
}

// SetSize updates the rendering area.
func (v *ProjectFormView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// StartCreate opens an empty form.
func (v *ProjectFormView) StartCreate() {
	v.reset()
	v.editingID = 0
	v.state = FormEditing
}

// StartEdit opens the form in loading state while the record is
// fetched fresh from the backend.
func (v *ProjectFormView) StartEdit(id int) {
	v.reset()
	v.editingID = id
	v.state = FormLoading
}

func (v *ProjectFormView) reset() {
	for i := range v.inputs {
		v.inputs[i].Reset()
		v.inputs[i].Blur()
	}
	v.featured = false
	v.focus = fieldTitle
	v.inputs[fieldTitle].Focus()
	v.errText = ""
	v.fieldErrors = map[int]string{}
}

// HandleLoaded fills the form once the fetched record arrives.
func (v *ProjectFormView) HandleLoaded(project api.Project, err error) {
	if v.state != FormLoading {
		return
	}
	if err != nil {
		v.state = FormFailed
		v.errText = api.Message(err)
		return
	}
	v.inputs[fieldTitle].SetValue(project.Title)
	v.inputs[fieldDescription].SetValue(project.Description)
	v.inputs[fieldImage].SetValue(project.Image)
	if project.DemoURL != nil {
		v.inputs[fieldDemoURL].SetValue(*project.DemoURL)
	}
	if project.RepoURL != nil {
		v.inputs[fieldRepoURL].SetValue(*project.RepoURL)
	}
	v.inputs[fieldTags].SetValue(strings.Join(project.Tags, ", "))
	v.featured = project.Featured
	v.state = FormEditing
}

// HandleSaveResult moves the form out of the submitting state. On
// success the app closes the form, so only failure matters here.
func (v *ProjectFormView) HandleSaveResult(err error) {
	if v.state != FormSubmitting {
		return
	}
	v.state = FormEditing
	if err != nil {
		v.errText = api.Message(err)
	}
}

// Payload builds the request body from the current fields.
func (v *ProjectFormView) Payload() api.ProjectPayload {
	var demo, repo *string
	if s := strings.TrimSpace(v.inputs[fieldDemoURL].Value()); s != "" {
		demo = &s
	}
	if s := strings.TrimSpace(v.inputs[fieldRepoURL].Value()); s != "" {
		repo = &s
	}

	var tags []string
	seen := map[string]bool{}
	for _, raw := range strings.Split(v.inputs[fieldTags].Value(), ",") {
		name := strings.TrimSpace(raw)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		tags = append(tags, name)
	}

	return api.ProjectPayload{
		Title:       strings.TrimSpace(v.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(v.inputs[fieldDescription].Value()),
		Image:       strings.TrimSpace(v.inputs[fieldImage].Value()),
		DemoURL:     demo,
		RepoURL:     repo,
		Featured:    v.featured,
		Tags:        tags,
	}
}

// validate fills fieldErrors and reports whether the form can submit.
func (v *ProjectFormView) validate() bool {
	v.fieldErrors = map[int]string{}
	if strings.TrimSpace(v.inputs[fieldTitle].Value()) == "" {
		v.fieldErrors[fieldTitle] = "required"
	}
	if strings.TrimSpace(v.inputs[fieldDescription].Value()) == "" {
		v.fieldErrors[fieldDescription] = "required"
	}
	for _, field := range []int{fieldDemoURL, fieldRepoURL} {
		if s := strings.TrimSpace(v.inputs[field].Value()); s != "" && !validURL(s) {
			v.fieldErrors[field] = "must be an http(s) URL"
		}
	}
	return len(v.fieldErrors) == 0
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (v *ProjectFormView) setFocus(focus int) {
	v.focus = focus
	for i := range v.inputs {
		if i == focus {
			v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
}

// Update handles a key press and returns the resulting action. A
// FormActionSubmit moves the form into FormSubmitting; the app owns
// firing the save command.
func (v *ProjectFormView) Update(msg tea.KeyMsg) (FormAction, tea.Cmd) {
	if v.state == FormLoading || v.state == FormSubmitting || v.state == FormFailed {
		if msg.String() == "esc" {
			return FormActionCancel, nil
		}
		return FormActionNone, nil
	}

	switch msg.String() {
	case "esc":
		return FormActionCancel, nil
	case "tab", "down":
		v.setFocus((v.focus + 1) % projectFieldCount)
		return FormActionNone, nil
	case "shift+tab", "up":
		v.setFocus((v.focus + projectFieldCount - 1) % projectFieldCount)
		return FormActionNone, nil
	case " ":
		if v.focus == fieldFeatured {
			v.featured = !v.featured
			return FormActionNone, nil
		}
	case "enter":
		if v.focus == fieldFeatured {
			v.featured = !v.featured
			return FormActionNone, nil
		}
		v.setFocus((v.focus + 1) % projectFieldCount)
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

	if v.focus < fieldFeatured {
		var cmd tea.Cmd
		v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
		return FormActionNone, cmd
	}
	return FormActionNone, nil
}

// tagSuggestions returns known tags matching the token being typed.
func (v *ProjectFormView) tagSuggestions() []string {
	parts := strings.Split(v.inputs[fieldTags].Value(), ",")
	token := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if token == "" {
		return nil
	}
	var out []string
	for _, name := range v.knownTags {
		if strings.HasPrefix(strings.ToLower(name), token) && !strings.EqualFold(name, token) {
			out = append(out, name)
		}
	}
	return out
}

// View renders the form.
func (v *ProjectFormView) View() string {
	t := theme.Current
	var b strings.Builder

	title := "New Project"
	if v.editingID != 0 {
		title = fmt.Sprintf("Edit Project #%d", v.editingID)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	if v.state == FormLoading {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render("Loading project..."))
		return b.String()
	}

	if v.state == FormFailed {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render("Could not load project: " + v.errText))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("esc back"))
		return b.String()
	}

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Error)

	for i := range v.inputs {
		line := label.Render(projectFieldLabels[i])
		if msg, ok := v.fieldErrors[i]; ok {
			line += "  " + errStyle.Render(msg)
		}
		b.WriteString(line + "\n")
		b.WriteString(v.inputs[i].View() + "\n")

		if i == fieldTags {
			if suggestions := v.tagSuggestions(); len(suggestions) > 0 {
				b.WriteString(lipgloss.NewStyle().Foreground(t.Tag).
					Render("  " + strings.Join(suggestions, "  ")))
				b.WriteString("\n")
			}
		}
	}

	check := "[ ]"
	if v.featured {
		check = "[x]"
	}
	featuredStyle := label
	if v.focus == fieldFeatured {
		featuredStyle = lipgloss.NewStyle().Foreground(t.TextHighlight).Bold(true)
	}
	b.WriteString(featuredStyle.Render(fmt.Sprintf("%s %s", check, projectFieldLabels[fieldFeatured])))
	b.WriteString("\n\n")

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
