package models

import (
	"time"
)

// ProjectIcon is the glyph family shown next to a project name.
type ProjectIcon string

const (
	IconDesign ProjectIcon = "design"
	IconCode   ProjectIcon = "code"
	IconDocs   ProjectIcon = "docs"
	IconVideo  ProjectIcon = "video"
)

// ProjectIcons lists the supported icons in display order.
var ProjectIcons = []ProjectIcon{IconDesign, IconCode, IconDocs, IconVideo}

// IsValid reports whether i names a supported icon.
func (i ProjectIcon) IsValid() bool {
	for _, known := range ProjectIcons {
		if i == known {
			return true
		}
	}
	return false
}

// Column identifiers. Every board has exactly these four columns,
// created once when the project is created.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

// ColumnOrder is the fixed left-to-right board layout.
var ColumnOrder = []string{ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone}

// Project owns a fixed four-column kanban board.
type Project struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description,omitempty"`
	Icon        ProjectIcon `gorm:"default:design" json:"icon"`
	IsActive    bool        `gorm:"default:false" json:"is_active"`

	Columns []Column `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"columns"`
}

// Column is a named bucket of tasks within a board. The (ProjectID, ID)
// pair is the identity; the four ids are fixed per board.
type Column struct {
	ProjectID string `gorm:"primaryKey" json:"-"`
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Color     string `json:"color,omitempty"`
	Position  int    `json:"position"`

	Tasks []Task `gorm:"foreignKey:ProjectID,ColumnID;references:ProjectID,ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"tasks"`
}

// TaskTag is the colored label attached to a task.
type TaskTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Task belongs to exactly one column of exactly one project.
type Task struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID string `gorm:"index;not null" json:"-"`
	ColumnID  string `gorm:"index;not null" json:"-"`
	Position  int    `json:"position"`

	Title        string   `gorm:"not null" json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Tag          TaskTag  `gorm:"embedded;embeddedPrefix:tag_" json:"tag"`
	Assignees    []string `gorm:"serializer:json" json:"assignees"`
	Comments     int      `json:"comments"`
	TimeEstimate int      `json:"time_estimate"` // hours
}

// Merge overlays the non-zero fields of other onto a copy of t.
// Identity and placement (id, project, column) never change here;
// moving between columns is its own operation.
func (t Task) Merge(other Task) Task {
	merged := t
	if other.Title != "" {
		merged.Title = other.Title
	}
	if other.Description != "" {
		merged.Description = other.Description
	}
	if other.Image != "" {
		merged.Image = other.Image
	}
	if other.Tag.Name != "" || other.Tag.Color != "" {
		merged.Tag = other.Tag
	}
	if other.Assignees != nil {
		merged.Assignees = other.Assignees
	}
	if other.Comments != 0 {
		merged.Comments = other.Comments
	}
	if other.TimeEstimate != 0 {
		merged.TimeEstimate = other.TimeEstimate
	}
	return merged
}

// NewBoard returns the four fixed empty columns for a new project.
func NewBoard(projectID string) []Column {
	titles := map[string]string{
		ColumnTodo:       "To-Do",
		ColumnInProgress: "In Progress",
		ColumnReview:     "To be Review",
		ColumnDone:       "Done",
	}
	colors := map[string]string{
		ColumnTodo:       "#FF4A4A",
		ColumnInProgress: "#3E7BFA",
		ColumnReview:     "#5B5FED",
		ColumnDone:       "#00B884",
	}
	columns := make([]Column, 0, len(ColumnOrder))
	for i, id := range ColumnOrder {
		columns = append(columns, Column{
			ProjectID: projectID,
			ID:        id,
			Title:     titles[id],
			Color:     colors[id],
			Position:  i,
			Tasks:     []Task{},
		})
	}
	return columns
}

// TaskCount sums the tasks across all columns of the project.
func (p Project) TaskCount() int {
	total := 0
	for _, column := range p.Columns {
		total += len(column.Tasks)
	}
	return total
}

// ColumnByID returns the column with the given id, or nil.
func (p *Project) ColumnByID(id string) *Column {
	for i := range p.Columns {
		if p.Columns[i].ID == id {
			return &p.Columns[i]
		}
	}
	return nil
}
