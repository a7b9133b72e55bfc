package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/temirbekov/flowdeck/internal/models"
)

func boardStore(t *testing.T) (*ProjectStore, models.Project) {
	t.Helper()
	s := NewProjectStore(nil, nil)
	project, err := s.AddProject(models.Project{Name: "Design and Prototype", Icon: models.IconDesign})
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	return s, project
}

func TestAddProjectCreatesFixedBoard(t *testing.T) {
	_, project := boardStore(t)

	if len(project.Columns) != 4 {
		t.Fatalf("board has %d columns, want 4", len(project.Columns))
	}
	for i, id := range models.ColumnOrder {
		if project.Columns[i].ID != id {
			t.Errorf("column %d = %q, want %q", i, project.Columns[i].ID, id)
		}
		if len(project.Columns[i].Tasks) != 0 {
			t.Errorf("column %q not empty at creation", id)
		}
	}
	if !project.IsActive {
		t.Error("first project did not become active")
	}
}

func TestSecondProjectIsNotActive(t *testing.T) {
	s, _ := boardStore(t)
	second, err := s.AddProject(models.Project{Name: "Documentation", Icon: models.IconDocs})
	if err != nil {
		t.Fatal(err)
	}
	if second.IsActive {
		t.Error("second project stole the active flag")
	}
}

func TestSetActiveKeepsExactlyOneActive(t *testing.T) {
	s, first := boardStore(t)
	second, _ := s.AddProject(models.Project{Name: "Documentation"})

	if err := s.SetActive(second.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.SetActive(first.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.SetActive(second.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	active := 0
	for _, project := range s.Projects() {
		if project.IsActive {
			active++
			if project.ID != second.ID {
				t.Errorf("active project is %q, want %q", project.ID, second.ID)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d projects active, want exactly 1", active)
	}
}

func TestSetActiveUnknownProject(t *testing.T) {
	s, _ := boardStore(t)
	if err := s.SetActive("ghost"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestMoveTaskConservesCount(t *testing.T) {
	s, project := boardStore(t)
	task, err := s.AddTask(project.ID, models.ColumnTodo, models.Task{
		Title:        "Designing a Portfolio",
		Description:  "Create several options.",
		Tag:          models.TaskTag{Name: "Design", Color: "#3E7BFA"},
		Assignees:    []string{"user1", "user2"},
		Comments:     8,
		TimeEstimate: 24,
	})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddTask(project.ID, models.ColumnTodo, models.Task{Title: "second"}); err != nil {
		t.Fatal(err)
	}

	if err := s.MoveTask(project.ID, task.ID, models.ColumnTodo, models.ColumnInProgress); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}

	got, err := s.Get(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TaskCount() != 2 {
		t.Errorf("task count = %d, want 2", got.TaskCount())
	}
	for _, task2 := range got.ColumnByID(models.ColumnTodo).Tasks {
		if task2.ID == task.ID {
			t.Error("task still present in source column")
		}
	}
	dest := got.ColumnByID(models.ColumnInProgress).Tasks
	if len(dest) != 1 || dest[0].ID != task.ID {
		t.Errorf("destination column = %+v", dest)
	}
	if dest[0].Comments != 8 || dest[0].TimeEstimate != 24 {
		t.Errorf("move altered task fields: %+v", dest[0])
	}
}

func TestMoveTaskMissingFromSourceAborts(t *testing.T) {
	s, project := boardStore(t)
	task, _ := s.AddTask(project.ID, models.ColumnTodo, models.Task{Title: "t"})

	// Wrong source column: the task lives in todo.
	err := s.MoveTask(project.ID, task.ID, models.ColumnReview, models.ColumnDone)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}

	got, _ := s.Get(project.ID)
	if got.TaskCount() != 1 {
		t.Errorf("task count = %d after aborted move, want 1", got.TaskCount())
	}
	if len(got.ColumnByID(models.ColumnTodo).Tasks) != 1 {
		t.Error("aborted move disturbed the source column")
	}
	if len(got.ColumnByID(models.ColumnDone).Tasks) != 0 {
		t.Error("aborted move inserted into the destination column")
	}
}

func TestAddTaskUnknownColumn(t *testing.T) {
	s, project := boardStore(t)
	before := s.Projects()

	_, err := s.AddTask(project.ID, "backlog", models.Task{Title: "t"})
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
	if !reflect.DeepEqual(before, s.Projects()) {
		t.Error("failed add mutated state")
	}
}

func TestUpdateTaskMerges(t *testing.T) {
	s, project := boardStore(t)
	task, _ := s.AddTask(project.ID, models.ColumnTodo, models.Task{Title: "draft", TimeEstimate: 4})

	if err := s.UpdateTask(project.ID, models.ColumnTodo, task.ID, models.Task{Title: "final"}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	got, _ := s.Get(project.ID)
	updated := got.ColumnByID(models.ColumnTodo).Tasks[0]
	if updated.Title != "final" || updated.TimeEstimate != 4 {
		t.Errorf("updated task = %+v", updated)
	}
}

func TestRemoveTask(t *testing.T) {
	s, project := boardStore(t)
	task, _ := s.AddTask(project.ID, models.ColumnTodo, models.Task{Title: "t"})

	if err := s.RemoveTask(project.ID, models.ColumnTodo, task.ID); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	got, _ := s.Get(project.ID)
	if got.TaskCount() != 0 {
		t.Errorf("task count = %d after remove", got.TaskCount())
	}

	if err := s.RemoveTask(project.ID, models.ColumnTodo, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second remove err = %v, want ErrTaskNotFound", err)
	}
}

func TestRemoveActiveProjectPromotesNext(t *testing.T) {
	s, first := boardStore(t)
	second, _ := s.AddProject(models.Project{Name: "Documentation"})

	if err := s.RemoveProject(first.ID); err != nil {
		t.Fatalf("RemoveProject: %v", err)
	}
	active, ok := s.Active()
	if !ok || active.ID != second.ID {
		t.Errorf("active after removal = %+v, %v", active, ok)
	}
}

func TestTransitionsDoNotAliasInput(t *testing.T) {
	projects := AddProject(nil, models.Project{Name: "p"})
	next, task, err := AddTask(projects, projects[0].ID, models.ColumnTodo, models.Task{Title: "t"})
	if err != nil {
		t.Fatal(err)
	}
	if len(projects[0].Columns[0].Tasks) != 0 {
		t.Error("AddTask mutated its input state")
	}
	moved, err := MoveTask(next, projects[0].ID, task.ID, models.ColumnTodo, models.ColumnDone)
	if err != nil {
		t.Fatal(err)
	}
	if len(next[0].Columns[0].Tasks) != 1 {
		t.Error("MoveTask mutated its input state")
	}
	if len(moved[0].ColumnByID(models.ColumnDone).Tasks) != 1 {
		t.Error("move did not land in destination")
	}
}
