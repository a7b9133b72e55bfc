package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/models"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  "Create and switch between projects, each with its own kanban board.",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new project",
	Args:  cobra.MinimumNArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()

		icon, _ := cmd.Flags().GetString("icon")
		project := models.Project{
			Name: strings.Join(args, " "),
			Icon: models.ProjectIcon(icon),
		}
		if icon != "" && !project.Icon.IsValid() {
			fmt.Printf("❌ Unknown icon %q (use design, code, docs, or video)\n", icon)
			return
		}
		if icon == "" {
			project.Icon = models.IconDesign
		}

		created, err := projects.AddProject(project)
		if err != nil {
			fmt.Printf("Error creating project: %v\n", err)
			return
		}

		fmt.Printf("Created project %s: %s\n", shortPostID(created.ID), created.Name)
		if created.IsActive {
			fmt.Println("  Now the active project")
		}
	}),
}

var projectListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()
		all := projects.Projects()

		if len(all) == 0 {
			fmt.Println("No projects yet. Use 'flowdeck project add \"name\"' to create one.")
			return
		}

		fmt.Printf("%-10s %-24s %-8s %-6s %s\n", "ID", "NAME", "ICON", "TASKS", "ACTIVE")
		fmt.Println(strings.Repeat("-", 58))
		for _, project := range all {
			active := ""
			if project.IsActive {
				active = "●"
			}
			name := project.Name
			if len(name) > 22 {
				name = name[:19] + "..."
			}
			fmt.Printf("%-10s %-24s %-8s %-6d %s\n",
				shortPostID(project.ID),
				name,
				project.Icon,
				project.TaskCount(),
				active)
		}
	}),
}

var projectUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switch the active project",
	Args:  cobra.MinimumNArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()

		project, err := projects.FindByName(strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := projects.SetActive(project.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Active project: %s\n", project.Name)
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Aliases: []string{"rm"},
	Short:   "Delete a project and its board",
	Args:    cobra.MinimumNArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		projects := openProjectStore()

		project, err := projects.FindByName(strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := projects.RemoveProject(project.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted project %s and its %d task(s)\n", project.Name, project.TaskCount())
	}),
}

func init() {
	projectAddCmd.Flags().StringP("icon", "", "", "Project icon: design, code, docs, video")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUseCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
