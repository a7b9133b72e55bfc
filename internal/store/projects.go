package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/temirbekov/flowdeck/internal/models"
)

var (
	// ErrProjectNotFound is returned when a project id has no matching entry.
	ErrProjectNotFound = errors.New("project not found")
	// ErrColumnNotFound is returned when a board has no such column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrTaskNotFound is returned when a column has no such task.
	ErrTaskNotFound = errors.New("task not found")
)

// cloneProjects deep-copies the project list so transitions never alias
// the previous state.
func cloneProjects(projects []models.Project) []models.Project {
	next := make([]models.Project, len(projects))
	for i, project := range projects {
		next[i] = project
		next[i].Columns = make([]models.Column, len(project.Columns))
		for j, column := range project.Columns {
			next[i].Columns[j] = column
			next[i].Columns[j].Tasks = append([]models.Task(nil), column.Tasks...)
		}
	}
	return next
}

// AddProject appends a project with a fresh empty four-column board.
// The first project becomes active automatically.
func AddProject(projects []models.Project, project models.Project) []models.Project {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.Columns = models.NewBoard(project.ID)
	if len(projects) == 0 {
		project.IsActive = true
	}
	next := cloneProjects(projects)
	return append(next, project)
}

// SetActiveProject re-derives the whole list so that exactly the named
// project carries the active flag.
func SetActiveProject(projects []models.Project, id string) ([]models.Project, error) {
	found := false
	next := cloneProjects(projects)
	for i := range next {
		next[i].IsActive = next[i].ID == id
		if next[i].IsActive {
			found = true
		}
	}
	if !found {
		return projects, fmt.Errorf("activate %s: %w", id, ErrProjectNotFound)
	}
	return next, nil
}

// RemoveProject drops the project. If it was active, the first remaining
// project (if any) becomes active so the single-active invariant holds.
func RemoveProject(projects []models.Project, id string) ([]models.Project, error) {
	next := make([]models.Project, 0, len(projects))
	wasActive := false
	found := false
	for _, project := range cloneProjects(projects) {
		if project.ID == id {
			found = true
			wasActive = project.IsActive
			continue
		}
		next = append(next, project)
	}
	if !found {
		return projects, fmt.Errorf("remove %s: %w", id, ErrProjectNotFound)
	}
	if wasActive && len(next) > 0 {
		next[0].IsActive = true
	}
	return next, nil
}

// UpdateProject shallow-merges name, description and icon over the
// matching project. The board is untouched.
func UpdateProject(projects []models.Project, id string, patch models.Project) ([]models.Project, error) {
	next := cloneProjects(projects)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Name != "" {
			next[i].Name = patch.Name
		}
		if patch.Description != "" {
			next[i].Description = patch.Description
		}
		if patch.Icon != "" {
			next[i].Icon = patch.Icon
		}
		return next, nil
	}
	return projects, fmt.Errorf("update %s: %w", id, ErrProjectNotFound)
}

// AddTask appends a task with a generated id to the named column. Unknown
// project or column ids mutate nothing.
func AddTask(projects []models.Project, projectID, columnID string, task models.Task) ([]models.Project, models.Task, error) {
	next := cloneProjects(projects)
	for i := range next {
		if next[i].ID != projectID {
			continue
		}
		column := next[i].ColumnByID(columnID)
		if column == nil {
			return projects, models.Task{}, fmt.Errorf("add task to %s/%s: %w", projectID, columnID, ErrColumnNotFound)
		}
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		task.ProjectID = projectID
		task.ColumnID = columnID
		task.Position = len(column.Tasks)
		column.Tasks = append(column.Tasks, task)
		return next, task, nil
	}
	return projects, models.Task{}, fmt.Errorf("add task to %s: %w", projectID, ErrProjectNotFound)
}

// MoveTask removes the task from the source column and appends it to the
// destination in one transition. If the task is not in the source column
// the whole operation aborts and no column changes, so a task can never
// be observed in zero or two columns.
func MoveTask(projects []models.Project, projectID, taskID, fromColumnID, toColumnID string) ([]models.Project, error) {
	next := cloneProjects(projects)
	for i := range next {
		if next[i].ID != projectID {
			continue
		}
		from := next[i].ColumnByID(fromColumnID)
		to := next[i].ColumnByID(toColumnID)
		if from == nil || to == nil {
			return projects, fmt.Errorf("move %s from %s to %s: %w", taskID, fromColumnID, toColumnID, ErrColumnNotFound)
		}
		for j, task := range from.Tasks {
			if task.ID != taskID {
				continue
			}
			from.Tasks = append(from.Tasks[:j], from.Tasks[j+1:]...)
			task.ColumnID = toColumnID
			task.Position = len(to.Tasks)
			to.Tasks = append(to.Tasks, task)
			return next, nil
		}
		return projects, fmt.Errorf("move %s from %s: %w", taskID, fromColumnID, ErrTaskNotFound)
	}
	return projects, fmt.Errorf("move in %s: %w", projectID, ErrProjectNotFound)
}

// UpdateTask shallow-merges patch over the task at (project, column, task).
func UpdateTask(projects []models.Project, projectID, columnID, taskID string, patch models.Task) ([]models.Project, error) {
	next := cloneProjects(projects)
	for i := range next {
		if next[i].ID != projectID {
			continue
		}
		column := next[i].ColumnByID(columnID)
		if column == nil {
			return projects, fmt.Errorf("update task in %s/%s: %w", projectID, columnID, ErrColumnNotFound)
		}
		for j, task := range column.Tasks {
			if task.ID == taskID {
				column.Tasks[j] = task.Merge(patch)
				return next, nil
			}
		}
		return projects, fmt.Errorf("update %s: %w", taskID, ErrTaskNotFound)
	}
	return projects, fmt.Errorf("update task in %s: %w", projectID, ErrProjectNotFound)
}

// RemoveTask filters the task out of its column.
func RemoveTask(projects []models.Project, projectID, columnID, taskID string) ([]models.Project, error) {
	next := cloneProjects(projects)
	for i := range next {
		if next[i].ID != projectID {
			continue
		}
		column := next[i].ColumnByID(columnID)
		if column == nil {
			return projects, fmt.Errorf("remove task in %s/%s: %w", projectID, columnID, ErrColumnNotFound)
		}
		for j, task := range column.Tasks {
			if task.ID == taskID {
				column.Tasks = append(column.Tasks[:j], column.Tasks[j+1:]...)
				return next, nil
			}
		}
		return projects, fmt.Errorf("remove %s: %w", taskID, ErrTaskNotFound)
	}
	return projects, fmt.Errorf("remove task in %s: %w", projectID, ErrProjectNotFound)
}

// ActiveProject returns the single project flagged active.
func ActiveProject(projects []models.Project) (models.Project, bool) {
	for _, project := range projects {
		if project.IsActive {
			return project, true
		}
	}
	return models.Project{}, false
}

// ProjectStore owns the project list and persists it after every board
// mutation through the saver it was constructed with.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []models.Project
	save     func([]models.Project) error
}

// NewProjectStore wraps an initial project list. save may be nil for a
// purely in-memory store (tests).
func NewProjectStore(projects []models.Project, save func([]models.Project) error) *ProjectStore {
	return &ProjectStore{projects: cloneProjects(projects), save: save}
}

// Projects returns a copy of the current list.
func (s *ProjectStore) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

// Active returns the active project.
func (s *ProjectStore) Active() (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ActiveProject(s.projects)
}

// Get returns a project by id.
func (s *ProjectStore) Get(id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, project := range s.projects {
		if project.ID == id {
			return cloneProjects([]models.Project{project})[0], nil
		}
	}
	return models.Project{}, fmt.Errorf("get %s: %w", id, ErrProjectNotFound)
}

// FindByName resolves a project by exact name, then by unique prefix.
func (s *ProjectStore) FindByName(name string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []models.Project
	for _, project := range s.projects {
		if project.Name == name || project.ID == name {
			return cloneProjects([]models.Project{project})[0], nil
		}
		if len(name) > 0 && len(project.Name) >= len(name) && project.Name[:len(name)] == name {
			matches = append(matches, project)
		}
	}
	if len(matches) == 1 {
		return cloneProjects(matches)[0], nil
	}
	if len(matches) > 1 {
		return models.Project{}, fmt.Errorf("find %q: %w", name, ErrAmbiguousID)
	}
	return models.Project{}, fmt.Errorf("find %q: %w", name, ErrProjectNotFound)
}

func (s *ProjectStore) flush() error {
	if s.save == nil {
		return nil
	}
	return s.save(s.projects)
}

// AddProject appends and persists, returning the stored project.
func (s *ProjectStore) AddProject(project models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = AddProject(s.projects, project)
	added := s.projects[len(s.projects)-1]
	return added, s.flush()
}

// SetActive flips the single active flag and persists.
func (s *ProjectStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := SetActiveProject(s.projects, id)
	if err != nil {
		return err
	}
	s.projects = next
	return s.flush()
}

// RemoveProject drops a project and persists.
func (s *ProjectStore) RemoveProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := RemoveProject(s.projects, id)
	if err != nil {
		return err
	}
	s.projects = next
	return s.flush()
}

// AddTask appends a task and persists.
func (s *ProjectStore) AddTask(projectID, columnID string, task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, added, err := AddTask(s.projects, projectID, columnID, task)
	if err != nil {
		return models.Task{}, err
	}
	s.projects = next
	return added, s.flush()
}

// MoveTask relocates a task between columns and persists.
func (s *ProjectStore) MoveTask(projectID, taskID, fromColumnID, toColumnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := MoveTask(s.projects, projectID, taskID, fromColumnID, toColumnID)
	if err != nil {
		return err
	}
	s.projects = next
	return s.flush()
}

// UpdateTask merges a patch and persists.
func (s *ProjectStore) UpdateTask(projectID, columnID, taskID string, patch models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := UpdateTask(s.projects, projectID, columnID, taskID, patch)
	if err != nil {
		return err
	}
	s.projects = next
	return s.flush()
}

// RemoveTask deletes a task and persists.
func (s *ProjectStore) RemoveTask(projectID, columnID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := RemoveTask(s.projects, projectID, columnID, taskID)
	if err != nil {
		return err
	}
	s.projects = next
	return s.flush()
}
