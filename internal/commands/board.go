package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/models"
	"github.com/temirbekov/flowdeck/internal/store"
	"github.com/temirbekov/flowdeck/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board [project]",
	Short: "Open the kanban board",
	Long: `Open the interactive kanban board for a project.

With no argument the active project is used. Grab a task with 'g' and
drop it on another column to move it.`,
	Args: cobra.ArbitraryArgs,
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()

		project, err := resolveProject(projects, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := tui.RunBoardTUI(projects, project); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// resolveProject picks the named project, or the active one with no args.
func resolveProject(projects *store.ProjectStore, args []string) (models.Project, error) {
	if len(args) > 0 {
		return projects.FindByName(strings.Join(args, " "))
	}
	project, ok := projects.Active()
	if !ok {
		return models.Project{}, fmt.Errorf("no projects yet; run 'flowdeck project add' first")
	}
	return project, nil
}
