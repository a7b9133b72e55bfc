package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/parser"
	"github.com/temirbekov/flowdeck/internal/store"
)

// FormStep represents the current step in the post wizard
type FormStep int

const (
	StepTitle FormStep = iota
	StepContent
	StepPlatform
	StepSchedule
	StepTags
	StepStatus
	StepSave
	StepComplete
)

var formSteps = []string{"Title", "Content", "Platform", "Schedule", "Tags", "Status", "Save"}

var statusChoices = []models.PostStatus{models.StatusDraft, models.StatusScheduled, models.StatusPublished}

// PostFormModel is the step wizard for creating and editing posts.
type PostFormModel struct {
	store       *store.PostStore
	currentStep FormStep
	inputs      []textinput.Model
	width       int
	height      int

	platformIdx int
	statusIdx   int

	// Edit mode
	isEditMode bool
	editPost   models.Post

	// Slot pre-fill from the calendar
	defaultTime time.Time

	// State
	err       error
	completed bool
	cancelled bool
	saved     models.Post
}

// inputs indexes; platform and status are selectors, not text inputs.
const (
	inputTitle = iota
	inputContent
	inputSchedule
	inputTags
	inputCount
)

// NewPostFormModel builds the wizard. prefilled may seed title, content,
// platform, schedule and tags; defaultTime seeds the schedule when the
// form was opened from a calendar slot.
func NewPostFormModel(postStore *store.PostStore, prefilled map[string]string, defaultTime time.Time) PostFormModel {
	m := PostFormModel{
		store:       postStore,
		inputs:      make([]textinput.Model, inputCount),
		defaultTime: defaultTime,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.CharLimit = 0
		m.inputs[i] = in
	}
	m.inputs[inputTitle].Placeholder = "Post title"
	m.inputs[inputContent].Placeholder = "What do you want to say?"
	m.inputs[inputSchedule].Placeholder = "dd/mm/yyyy hh:mm, today/tomorrow, or '2 days'"
	m.inputs[inputTags].Placeholder = "tag1, tag2"

	if v, ok := prefilled["title"]; ok {
		m.inputs[inputTitle].SetValue(v)
	}
	if v, ok := prefilled["content"]; ok {
		m.inputs[inputContent].SetValue(v)
	}
	if v, ok := prefilled["schedule"]; ok {
		m.inputs[inputSchedule].SetValue(v)
	}
	if v, ok := prefilled["tags"]; ok {
		m.inputs[inputTags].SetValue(v)
	}
	if v, ok := prefilled["platform"]; ok {
		for i, p := range models.Platforms {
			if string(p) == v {
				m.platformIdx = i
			}
		}
	}
	if !defaultTime.IsZero() && m.inputs[inputSchedule].Value() == "" {
		m.inputs[inputSchedule].SetValue(defaultTime.Format("02/01/2006 15:04"))
	}

	m.inputs[inputTitle].Focus()
	return m
}

// NewEditPostFormModel builds the wizard pre-filled from an existing post.
func NewEditPostFormModel(postStore *store.PostStore, post models.Post) PostFormModel {
	prefilled := map[string]string{
		"title":    post.Title,
		"content":  post.Content,
		"platform": string(post.Platform),
		"tags":     strings.Join(post.Tags, ", "),
	}
	if !post.ScheduledTime.IsZero() {
		prefilled["schedule"] = post.ScheduledTime.Format("02/01/2006 15:04")
	}
	m := NewPostFormModel(postStore, prefilled, time.Time{})
	m.isEditMode = true
	m.editPost = post
	for i, s := range statusChoices {
		if s == post.Status {
			m.statusIdx = i
		}
	}
	return m
}

// Saved returns the post written on completion.
func (m PostFormModel) Saved() (models.Post, bool) {
	return m.saved, m.completed
}

// Cancelled reports whether the user backed out.
func (m PostFormModel) Cancelled() bool { return m.cancelled }

// Err returns the save error, if any.
func (m PostFormModel) Err() error { return m.err }

func (m PostFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// inputForStep maps a wizard step to its text input, or -1 for selectors.
func inputForStep(step FormStep) int {
	switch step {
	case StepTitle:
		return inputTitle
	case StepContent:
		return inputContent
	case StepSchedule:
		return inputSchedule
	case StepTags:
		return inputTags
	default:
		return -1
	}
}

func (m PostFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.currentStep == StepTitle {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.prevStep(), nil
		case "enter":
			return m.nextStep()
		case "shift+tab":
			if m.currentStep > StepTitle {
				return m.prevStep(), nil
			}
			return m, nil
		case "left", "right":
			if m.currentStep == StepPlatform {
				m.platformIdx = cycle(m.platformIdx, len(models.Platforms), msg.String() == "right")
				return m, nil
			}
			if m.currentStep == StepStatus {
				m.statusIdx = cycle(m.statusIdx, len(statusChoices), msg.String() == "right")
				return m, nil
			}
		}
	}

	if idx := inputForStep(m.currentStep); idx >= 0 {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func cycle(idx, length int, forward bool) int {
	if forward {
		return (idx + 1) % length
	}
	return (idx + length - 1) % length
}

func (m PostFormModel) prevStep() PostFormModel {
	if idx := inputForStep(m.currentStep); idx >= 0 {
		m.inputs[idx].Blur()
	}
	m.currentStep--
	if idx := inputForStep(m.currentStep); idx >= 0 {
		m.inputs[idx].Focus()
	}
	m.err = nil
	return m
}

func (m PostFormModel) nextStep() (tea.Model, tea.Cmd) {
	// Title is the only required field.
	if m.currentStep == StepTitle && strings.TrimSpace(m.inputs[inputTitle].Value()) == "" {
		m.err = fmt.Errorf("title is required")
		return m, nil
	}
	if m.currentStep == StepSave {
		return m.save()
	}
	if idx := inputForStep(m.currentStep); idx >= 0 {
		m.inputs[idx].Blur()
	}
	m.currentStep++
	if idx := inputForStep(m.currentStep); idx >= 0 {
		m.inputs[idx].Focus()
	}
	m.err = nil
	return m, nil
}

func (m PostFormModel) save() (tea.Model, tea.Cmd) {
	now := time.Now()
	at, err := parser.ParseSchedule(m.inputs[inputSchedule].Value(), now)
	if err != nil {
		m.err = err
		return m, nil
	}
	if at.IsZero() {
		if !m.defaultTime.IsZero() {
			at = m.defaultTime
		} else {
			at = now
		}
	}

	var tags []string
	for _, tag := range strings.Split(m.inputs[inputTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	post := models.Post{
		Title:         strings.TrimSpace(m.inputs[inputTitle].Value()),
		Content:       m.inputs[inputContent].Value(),
		Platform:      models.Platforms[m.platformIdx],
		ScheduledTime: at,
		Status:        statusChoices[m.statusIdx],
		Tags:          tags,
	}

	if m.isEditMode {
		post.ID = m.editPost.ID
		m.saved, err = m.store.Update(post)
	} else {
		m.saved, err = m.store.Add(post)
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.completed = true
	m.currentStep = StepComplete
	return m, tea.Quit
}

func (m PostFormModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	header := "✏️  New post"
	if m.isEditMode {
		header = "✏️  Edit post"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("step %d of %d", int(m.currentStep)+1, len(formSteps))))
	b.WriteString("\n\n")

	switch m.currentStep {
	case StepPlatform:
		b.WriteString(labelStyle.Render("Platform") + "\n")
		b.WriteString(renderSelector(platformNames(), m.platformIdx))
	case StepStatus:
		b.WriteString(labelStyle.Render("Status") + "\n")
		b.WriteString(renderSelector(statusNames(), m.statusIdx))
	case StepSave, StepComplete:
		b.WriteString(m.renderSummary())
	default:
		idx := inputForStep(m.currentStep)
		b.WriteString(labelStyle.Render(formSteps[m.currentStep]) + "\n")
		b.WriteString(m.inputs[idx].View())
	}

	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errStyle.Render("✗ "+m.err.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("enter next · esc back · ctrl+c cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func platformNames() []string {
	names := make([]string, len(models.Platforms))
	for i, p := range models.Platforms {
		names[i] = string(p)
	}
	return names
}

func statusNames() []string {
	names := make([]string, len(statusChoices))
	for i, s := range statusChoices {
		names[i] = string(s)
	}
	return names
}

func renderSelector(choices []string, selected int) string {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 1)

	parts := make([]string, len(choices))
	for i, choice := range choices {
		if i == selected {
			parts[i] = active.Render(choice)
		} else {
			parts[i] = inactive.Render(choice)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m PostFormModel) renderSummary() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	at, err := parser.ParseSchedule(m.inputs[inputSchedule].Value(), time.Now())
	schedule := m.inputs[inputSchedule].Value()
	if err == nil && !at.IsZero() {
		schedule = at.Format("02/01/2006 15:04")
	}

	rows := [][2]string{
		{"Title", m.inputs[inputTitle].Value()},
		{"Platform", string(models.Platforms[m.platformIdx])},
		{"Schedule", schedule},
		{"Status", string(statusChoices[m.statusIdx])},
		{"Tags", m.inputs[inputTags].Value()},
	}
	var b strings.Builder
	b.WriteString(val.Render("Ready to save, press enter") + "\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", dim.Render(fmt.Sprintf("%-10s", row[0]+":")), val.Render(row[1])))
	}
	return b.String()
}
