package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/temirbekov/flowdeck/internal/calendar"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/preview"
	"github.com/temirbekov/flowdeck/internal/store"
)

// CalendarModel is the scheduling calendar: day/week/month grids over the
// post store, with a keyboard move gesture standing in for drag-and-drop.
type CalendarModel struct {
	store    *store.PostStore
	identity preview.Identity

	width  int
	height int

	mode calendar.ViewMode
	date time.Time // reference date for the visible period

	// Cursor position. Day view uses hour; week view uses day+hour;
	// month view uses week+weekday.
	cursorDay  int
	cursorHour int
	cursorWeek int

	// hourTop is the first visible hourly row (day/week views scroll).
	hourTop int

	posts []models.Post // snapshot, re-read after every mutation

	moving      *models.Post // post picked up for rescheduling
	showPreview bool
	status      string

	form *PostFormModel // non-nil while the create/edit dialog is open
}

// NewCalendarModel opens the calendar on date in the given view.
func NewCalendarModel(postStore *store.PostStore, identity preview.Identity, mode calendar.ViewMode, date time.Time) CalendarModel {
	m := CalendarModel{
		store:      postStore,
		identity:   identity,
		mode:       mode,
		date:       calendar.StartOfDay(date),
		cursorHour: 9,
		hourTop:    7,
	}
	m.posts = postStore.Posts()
	if mode == calendar.ViewWeek {
		m.cursorDay = int(date.Weekday()+6) % 7
	}
	return m
}

func (m CalendarModel) Init() tea.Cmd {
	return nil
}

// slot returns the bucket under the cursor.
func (m CalendarModel) slot() calendar.Slot {
	switch m.mode {
	case calendar.ViewDay:
		return calendar.Slot{Day: calendar.StartOfDay(m.date), Hour: m.cursorHour, HasHour: true}
	case calendar.ViewWeek:
		day := calendar.StartOfWeek(m.date).AddDate(0, 0, m.cursorDay)
		return calendar.Slot{Day: day, Hour: m.cursorHour, HasHour: true}
	default:
		grid := calendar.BuildMonth(m.date, nil, time.Now())
		week := clamp(m.cursorWeek, 0, len(grid.Weeks)-1)
		return grid.Weeks[week][m.cursorDay].Slot()
	}
}

// postsAt returns the posts bucketed in the cursor slot.
func (m CalendarModel) postsAt() []models.Post {
	now := time.Now()
	switch m.mode {
	case calendar.ViewDay:
		grid := calendar.BuildDay(m.date, m.posts, now)
		return grid.Hours[m.cursorHour].Posts
	case calendar.ViewWeek:
		grid := calendar.BuildWeek(m.date, m.posts, now)
		return grid.Days[m.cursorDay].Hours[m.cursorHour].Posts
	default:
		grid := calendar.BuildMonth(m.date, m.posts, now)
		week := clamp(m.cursorWeek, 0, len(grid.Weeks)-1)
		return grid.Weeks[week][m.cursorDay].Posts
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The open dialog owns all input until it closes.
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
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

		case "d":
			m.mode = calendar.ViewDay
		case "w":
			m.mode = calendar.ViewWeek
		case "m":
			m.mode = calendar.ViewMonth
			m.cursorWeek = 0
			m.cursorDay = clamp(m.cursorDay, 0, 6)

		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)

		case "[", "pgup":
			m.date = calendar.Step(m.date, m.mode, -1)
		case "]", "pgdown":
			m.date = calendar.Step(m.date, m.mode, 1)
		case "t":
			m.date = calendar.StartOfDay(time.Now())

		case "n":
			return m.openCreateForm(), nil

		case "enter":
			return m.handleEnter()

		case "g":
			if posts := m.postsAt(); len(posts) > 0 {
				picked := posts[0]
				m.moving = &picked
				m.status = fmt.Sprintf("moving %q: pick a slot and press enter", picked.Title)
			}

		case "e":
			if posts := m.postsAt(); len(posts) > 0 {
				form := NewEditPostFormModel(m.store, posts[0])
				m.form = &form
			}

		case "x":
			if posts := m.postsAt(); len(posts) > 0 {
				if err := m.store.Delete(posts[0].ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted %q", posts[0].Title)
					m.posts = m.store.Posts()
				}
			}

		case "p":
			m.showPreview = !m.showPreview
		}
		return m, nil
	}
	return m, nil
}

// handleEnter drops the held post, or opens a dialog: creation when the
// bucket is empty (pre-filled with its date/hour), edit otherwise.
func (m CalendarModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.moving != nil {
		moved := calendar.Drop(*m.moving, m.slot())
		if _, err := m.store.Update(moved); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("rescheduled %q to %s", moved.Title, moved.ScheduledTime.Format("02/01 15:04"))
			m.posts = m.store.Posts()
		}
		m.moving = nil
		return m, nil
	}
	if posts := m.postsAt(); len(posts) > 0 {
		form := NewEditPostFormModel(m.store, posts[0])
		m.form = &form
		return m, form.Init()
	}
	return m.openCreateForm(), nil
}

func (m CalendarModel) openCreateForm() CalendarModel {
	form := NewPostFormModel(m.store, nil, m.slot().Time())
	m.form = &form
	return m
}

func (m CalendarModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window sizes still matter to the host.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	next, cmd := m.form.Update(msg)
	form, ok := next.(PostFormModel)
	if !ok {
		return m, cmd
	}
	if saved, done := form.Saved(); done {
		m.form = nil
		m.posts = m.store.Posts()
		m.status = fmt.Sprintf("saved %q", saved.Title)
		return m, nil // swallow the form's quit
	}
	if form.Cancelled() {
		m.form = nil
		return m, nil
	}
	m.form = &form
	return m, cmd
}

func (m *CalendarModel) moveCursor(dx, dy int) {
	switch m.mode {
	case calendar.ViewDay:
		m.cursorHour = clamp(m.cursorHour+dy, 0, 23)
		if dx != 0 {
			m.date = m.date.AddDate(0, 0, dx)
		}
	case calendar.ViewWeek:
		m.cursorHour = clamp(m.cursorHour+dy, 0, 23)
		day := m.cursorDay + dx
		if day < 0 {
			m.date = calendar.Step(m.date, calendar.ViewWeek, -1)
			day = 6
		} else if day > 6 {
			m.date = calendar.Step(m.date, calendar.ViewWeek, 1)
			day = 0
		}
		m.cursorDay = day
	default:
		grid := calendar.BuildMonth(m.date, nil, time.Now())
		m.cursorDay = clamp(m.cursorDay+dx, 0, 6)
		m.cursorWeek = clamp(m.cursorWeek+dy, 0, len(grid.Weeks)-1)
	}
	m.scrollHours()
}

// scrollHours keeps the cursor hour inside the visible row window.
func (m *CalendarModel) scrollHours() {
	visible := m.visibleHours()
	if m.cursorHour < m.hourTop {
		m.hourTop = m.cursorHour
	}
	if m.cursorHour >= m.hourTop+visible {
		m.hourTop = m.cursorHour - visible + 1
	}
	m.hourTop = clamp(m.hourTop, 0, 24-visible)
}

func (m CalendarModel) visibleHours() int {
	// header(2) + title(1) + status(1) + help(1) + margins
	rows := m.height - 8
	return clamp(rows, 4, 24)
}

func (m CalendarModel) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var grid string
	switch m.mode {
	case calendar.ViewDay:
		grid = m.renderDayView()
	case calendar.ViewWeek:
		grid = m.renderWeekView()
	default:
		grid = m.renderMonthView()
	}

	if m.showPreview {
		if pane := m.renderPreviewPane(); pane != "" {
			grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", pane)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		grid,
		"",
		m.renderStatusBar(),
		m.renderHelpBar(),
	)
}

func (m CalendarModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1)
	title := titleStyle.Render("📅 " + calendar.Title(m.date, m.mode))

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Padding(0, 1)
	activeTab := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1)

	var tabs []string
	for _, mode := range []calendar.ViewMode{calendar.ViewDay, calendar.ViewWeek, calendar.ViewMonth} {
		if mode == m.mode {
			tabs = append(tabs, activeTab.Render(mode.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderDayView lists the visible hourly buckets with their posts.
func (m CalendarModel) renderDayView() string {
	grid := calendar.BuildDay(m.date, m.posts, time.Now())
	hourStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(7)
	selectedStyle := lipgloss.NewStyle().Background(lipgloss.Color(ColorAccentMain)).Foreground(lipgloss.Color(ColorPrimaryText))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	visible := m.visibleHours()
	var b strings.Builder
	for h := m.hourTop; h < m.hourTop+visible && h < 24; h++ {
		cell := grid.Hours[h]
		label := hourStyle.Render(fmt.Sprintf("%02d:00", h))

		var body string
		if len(cell.Posts) == 0 {
			body = emptyStyle.Render("·")
		} else {
			var entries []string
			for _, post := range cell.Posts {
				entries = append(entries, m.renderPostChip(post))
			}
			body = strings.Join(entries, "  ")
		}
		if h == m.cursorHour {
			body = selectedStyle.Render(" " + stripIfEmpty(body, cell.Posts) + " ")
		}
		b.WriteString(label + " " + body + "\n")
	}
	return b.String()
}

func stripIfEmpty(body string, posts []models.Post) string {
	if len(posts) == 0 {
		return "·"
	}
	return body
}

// renderWeekView draws the 7-column hourly grid.
func (m CalendarModel) renderWeekView() string {
	grid := calendar.BuildWeek(m.date, m.posts, time.Now())
	colWidth := clamp((m.width-9)/7, 6, 14)

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Width(colWidth).Align(lipgloss.Center)
	todayStyle := headStyle.Foreground(lipgloss.Color(ColorAccentBright))
	hourStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(7)
	cellStyle := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center)
	selectedStyle := cellStyle.Background(lipgloss.Color(ColorAccentMain)).Foreground(lipgloss.Color(ColorPrimaryText))
	emptyStyle := cellStyle.Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(hourStyle.Render(""))
	for d := 0; d < 7; d++ {
		day := grid.Days[d].Date
		style := headStyle
		if calendar.SameDay(day, time.Now()) {
			style = todayStyle
		}
		b.WriteString(style.Render(day.Format("Mon 2")))
	}
	b.WriteString("\n")

	visible := m.visibleHours()
	for h := m.hourTop; h < m.hourTop+visible && h < 24; h++ {
		b.WriteString(hourStyle.Render(fmt.Sprintf("%02d:00", h)))
		for d := 0; d < 7; d++ {
			cell := grid.Days[d].Hours[h]
			content := "·"
			if len(cell.Posts) == 1 {
				content = platformGlyph(cell.Posts[0].Platform)
			} else if len(cell.Posts) > 1 {
				content = fmt.Sprintf("●%d", len(cell.Posts))
			}
			switch {
			case d == m.cursorDay && h == m.cursorHour:
				b.WriteString(selectedStyle.Render(content))
			case len(cell.Posts) == 0:
				b.WriteString(emptyStyle.Render(content))
			default:
				b.WriteString(cellStyle.Foreground(lipgloss.Color(PlatformColor(string(cell.Posts[0].Platform)))).Render(content))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMonthView draws the padded month grid with per-day post counts.
func (m CalendarModel) renderMonthView() string {
	grid := calendar.BuildMonth(m.date, m.posts, time.Now())
	colWidth := clamp((m.width-4)/7, 8, 14)

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Width(colWidth).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center)
	outStyle := cellStyle.Foreground(lipgloss.Color(ColorDisabledText))
	selectedStyle := cellStyle.Background(lipgloss.Color(ColorAccentMain)).Foreground(lipgloss.Color(ColorPrimaryText))

	var b strings.Builder
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(headStyle.Render(name))
	}
	b.WriteString("\n")

	for w, week := range grid.Weeks {
		for d, cell := range week {
			label := fmt.Sprintf("%2d", cell.Date.Day())
			if len(cell.Posts) > 0 {
				label = fmt.Sprintf("%2d ●%d", cell.Date.Day(), len(cell.Posts))
			}
			switch {
			case w == m.cursorWeek && d == m.cursorDay:
				b.WriteString(selectedStyle.Render(label))
			case !cell.InMonth:
				b.WriteString(outStyle.Render(label))
			default:
				b.WriteString(cellStyle.Render(label))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m CalendarModel) renderPostChip(post models.Post) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PlatformColor(string(post.Platform)))).
		Render(platformGlyph(post.Platform))
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(truncateTitle(post.Title, 24))
	status := lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(string(post.Status)))).Render(string(post.Status))
	return fmt.Sprintf("%s %s [%s]", badge, title, status)
}

func (m CalendarModel) renderPreviewPane() string {
	posts := m.postsAt()
	if len(posts) == 0 {
		return ""
	}
	return preview.Render(posts[0], m.identity, 42)
}

func (m CalendarModel) renderStatusBar() string {
	if m.moving != nil && m.status == "" {
		m.status = fmt.Sprintf("moving %q: pick a slot and press enter", m.moving.Title)
	}
	if m.status == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Padding(0, 1).Render(m.status)
}

func (m CalendarModel) renderHelpBar() string {
	help := "←↓↑→ move · [/] period · d/w/m view · enter open/drop · n new · g grab · e edit · x delete · p preview · q quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Padding(0, 1).Render(help)
}

func platformGlyph(platform models.Platform) string {
	switch platform {
	case models.PlatformTwitter:
		return "𝕏"
	case models.PlatformFacebook:
		return "f"
	case models.PlatformInstagram:
		return "◉"
	case models.PlatformLinkedIn:
		return "in"
	default:
		return "●"
	}
}

func truncateTitle(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
