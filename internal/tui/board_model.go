package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/store"
)

// BoardModel is the kanban board for one project: the four fixed columns
// with a keyboard move gesture standing in for drag-and-drop.
type BoardModel struct {
	store   *store.ProjectStore
	project models.Project

	width  int
	height int

	cursorCol  int
	cursorTask int

	// moving holds the picked-up task and its source column while the
	// user picks a destination.
	moving     *models.Task
	fromColumn string

	// Inline new-task entry at the top of the cursor column.
	adding    bool
	taskInput textinput.Model

	status string
}

// NewBoardModel opens the board of the given project.
func NewBoardModel(projectStore *store.ProjectStore, project models.Project) BoardModel {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	return BoardModel{
		store:     projectStore,
		project:   project,
		taskInput: input,
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

// refresh re-reads the project after a mutation.
func (m *BoardModel) refresh() {
	if project, err := m.store.Get(m.project.ID); err == nil {
		m.project = project
	}
	m.clampCursor()
}

func (m *BoardModel) clampCursor() {
	m.cursorCol = clamp(m.cursorCol, 0, len(m.project.Columns)-1)
	tasks := m.project.Columns[m.cursorCol].Tasks
	m.cursorTask = clamp(m.cursorTask, 0, maxInt(len(tasks)-1, 0))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (m BoardModel) currentTask() *models.Task {
	tasks := m.project.Columns[m.cursorCol].Tasks
	if len(tasks) == 0 {
		return nil
	}
	task := tasks[clamp(m.cursorTask, 0, len(tasks)-1)]
	return &task
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKeys(msg)
		}
		m.status = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.moving != nil {
				m.moving = nil
				m.status = "move cancelled"
				return m, nil
			}
			return m, tea.Quit

		case "left", "h":
			m.cursorCol = clamp(m.cursorCol-1, 0, len(m.project.Columns)-1)
			m.clampCursor()
		case "right", "l":
			m.cursorCol = clamp(m.cursorCol+1, 0, len(m.project.Columns)-1)
			m.clampCursor()
		case "up", "k":
			m.cursorTask = clamp(m.cursorTask-1, 0, maxInt(len(m.project.Columns[m.cursorCol].Tasks)-1, 0))
		case "down", "j":
			m.cursorTask = clamp(m.cursorTask+1, 0, maxInt(len(m.project.Columns[m.cursorCol].Tasks)-1, 0))

		case "n":
			m.adding = true
			m.taskInput.SetValue("")
			return m, m.taskInput.Focus()

		case "g":
			if task := m.currentTask(); task != nil {
				m.moving = task
				m.fromColumn = m.project.Columns[m.cursorCol].ID
				m.status = fmt.Sprintf("moving %q: pick a column and press enter", task.Title)
			}

		case "enter":
			if m.moving == nil {
				return m, nil
			}
			to := m.project.Columns[m.cursorCol].ID
			err := m.store.MoveTask(m.project.ID, m.moving.ID, m.fromColumn, to)
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("moved %q to %s", m.moving.Title, m.project.Columns[m.cursorCol].Title)
			}
			m.moving = nil
			m.refresh()

		case "x":
			if task := m.currentTask(); task != nil {
				column := m.project.Columns[m.cursorCol].ID
				if err := m.store.RemoveTask(m.project.ID, column, task.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted %q", task.Title)
				}
				m.refresh()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m BoardModel) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.taskInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.taskInput.Value())
		m.adding = false
		m.taskInput.Blur()
		if title == "" {
			return m, nil
		}
		column := m.project.Columns[m.cursorCol].ID
		if _, err := m.store.AddTask(m.project.ID, column, models.Task{Title: title}); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("added %q", title)
		}
		m.refresh()
		return m, nil
	default:
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		return m, cmd
	}
}

func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	colWidth := clamp((m.width-8)/4, 18, 36)
	var columns []string
	for i, column := range m.project.Columns {
		columns = append(columns, m.renderColumn(column, i, colWidth))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		board,
		"",
		m.renderStatusBar(),
		m.renderHelpBar(),
	)
}

func (m BoardModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1).
		Render("📋 " + m.project.Name)
	count := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("%d tasks", m.project.TaskCount()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", count)
}

func (m BoardModel) renderColumn(column models.Column, index, width int) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(column.Color)).Render("●")
	head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).
		Render(fmt.Sprintf("%s %s (%d)", dot, column.Title, len(column.Tasks)))

	var cards []string
	cards = append(cards, head)

	if m.adding && index == m.cursorCol {
		cards = append(cards, m.taskInput.View())
	}

	for i, task := range column.Tasks {
		selected := index == m.cursorCol && i == m.cursorTask && !m.adding
		cards = append(cards, m.renderTaskCard(task, selected, width))
	}
	if len(column.Tasks) == 0 {
		cards = append(cards, lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("  —"))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Padding(0, 1).
		MarginRight(1)
	if index == m.cursorCol {
		border = border.BorderForeground(lipgloss.Color(ColorAccentMain))
	}
	return border.Render(strings.Join(cards, "\n\n"))
}

func (m BoardModel) renderTaskCard(task models.Task, selected bool, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	if selected {
		titleStyle = titleStyle.Bold(true).Background(lipgloss.Color(ColorAccentMain))
	}
	if m.moving != nil && m.moving.ID == task.ID {
		titleStyle = titleStyle.Foreground(lipgloss.Color(ColorWarning))
	}

	lines := []string{titleStyle.Render(truncateTitle(task.Title, width-4))}
	if task.Tag.Name != "" {
		tag := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Tag.Color)).Render("▪ " + task.Tag.Name)
		lines = append(lines, tag)
	}
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("💬 %d  ⏱ %dh  👤 %d", task.Comments, task.TimeEstimate, len(task.Assignees)))
	lines = append(lines, meta)
	return strings.Join(lines, "\n")
}

func (m BoardModel) renderStatusBar() string {
	if m.status == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Padding(0, 1).Render(m.status)
}

func (m BoardModel) renderHelpBar() string {
	help := "←↓↑→ move · g grab · enter drop · n new task · x delete · q quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Padding(0, 1).Render(help)
}
