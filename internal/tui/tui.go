package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/temirbekov/flowdeck/internal/calendar"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/preview"
	"github.com/temirbekov/flowdeck/internal/store"
)

// RunCalendarTUI starts the interactive scheduling calendar
func RunCalendarTUI(postStore *store.PostStore, identity preview.Identity, mode calendar.ViewMode, date time.Time) error {
	model := NewCalendarModel(postStore, identity, mode, date)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunBoardTUI starts the interactive kanban board for a project
func RunBoardTUI(projectStore *store.ProjectStore, project models.Project) error {
	model := NewBoardModel(projectStore, project)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunPostFormTUI starts the interactive post wizard
func RunPostFormTUI(postStore *store.PostStore, prefilled map[string]string) error {
	model := NewPostFormModel(postStore, prefilled, time.Time{})
	return runPostForm(model)
}

// RunEditPostFormTUI starts the wizard pre-filled from an existing post
func RunEditPostFormTUI(postStore *store.PostStore, post models.Post) error {
	model := NewEditPostFormModel(postStore, post)
	return runPostForm(model)
}

func runPostForm(model PostFormModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(PostFormModel); ok {
		if m.Cancelled() {
			fmt.Println("❌ Post cancelled.")
		} else if saved, done := m.Saved(); done {
			fmt.Printf("✅ Post %q saved - ID: %s\n", saved.Title, shortID(saved.ID))
		} else if m.Err() != nil {
			fmt.Printf("❌ Error: %v\n", m.Err())
		}
	}

	return nil
}

// shortID abbreviates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
