package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/store"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage board tasks",
	Long:  "Add and move tasks on a project's kanban board without opening the TUI.",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task to a board column",
	Args:  cobra.MinimumNArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()

		var projectArgs []string
		if name, _ := cmd.Flags().GetString("project"); name != "" {
			projectArgs = []string{name}
		}
		project, err := resolveProject(projects, projectArgs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		columnID, _ := cmd.Flags().GetString("column")
		if columnID == "" {
			columnID = models.ColumnTodo
		}

		task := models.Task{Title: strings.Join(args, " ")}
		if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
			task.Tag = models.TaskTag{Name: tag}
		}
		task.TimeEstimate, _ = cmd.Flags().GetInt("estimate")

		created, err := projects.AddTask(project.ID, columnID, task)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Created task %s in %s/%s: %s\n",
			shortPostID(created.ID), project.Name, columnID, created.Title)
	}),
}

var taskMoveCmd = &cobra.Command{
	Use:   "move [task-id] [column]",
	Short: "Move a task to another column",
	Long:  "Move a task to one of: todo, in-progress, review, done.",
	Args:  cobra.ExactArgs(2),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()
		moveTask(projects, args[0], args[1])
	}),
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Move a task to the done column",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()
		moveTask(projects, args[0], models.ColumnDone)
	}),
}

// moveTask locates a task by id prefix across all projects and moves it.
func moveTask(projects *store.ProjectStore, idPrefix, toColumn string) {
	project, fromColumn, task, err := findTask(projects, idPrefix)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if fromColumn == toColumn {
		fmt.Printf("Task %s is already in %s\n", shortPostID(task.ID), toColumn)
		return
	}
	if err := projects.MoveTask(project.ID, task.ID, fromColumn, toColumn); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("✅ Moved %s to %s: %s\n", shortPostID(task.ID), toColumn, task.Title)
}

// findTask resolves a task id prefix to its project, column, and task.
func findTask(projects *store.ProjectStore, idPrefix string) (models.Project, string, models.Task, error) {
	var (
		foundProject models.Project
		foundColumn  string
		foundTask    models.Task
		matches      int
	)
	for _, project := range projects.Projects() {
		for _, column := range project.Columns {
			for _, task := range column.Tasks {
				if strings.HasPrefix(task.ID, idPrefix) {
					foundProject = project
					foundColumn = column.ID
					foundTask = task
					matches++
				}
			}
		}
	}
	switch matches {
	case 0:
		return models.Project{}, "", models.Task{}, fmt.Errorf("find %q: %w", idPrefix, store.ErrTaskNotFound)
	case 1:
		return foundProject, foundColumn, foundTask, nil
	default:
		return models.Project{}, "", models.Task{}, fmt.Errorf("find %q: %w", idPrefix, store.ErrAmbiguousID)
	}
}

func init() {
	taskAddCmd.Flags().StringP("project", "p", "", "Project name (default: active project)")
	taskAddCmd.Flags().StringP("column", "c", "", "Column: todo, in-progress, review, done")
	taskAddCmd.Flags().StringP("tag", "t", "", "Label for the task")
	taskAddCmd.Flags().IntP("estimate", "", 0, "Time estimate in hours")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskDoneCmd)
}
