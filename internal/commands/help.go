package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for flowdeck",
	Long:  `Display detailed help for all flowdeck commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██╗      ██████╗ ██╗    ██╗██████╗ ███████╗ ██████╗██╗  ██╗
██╔════╝██║     ██╔═══██╗██║    ██║██╔══██╗██╔════╝██╔════╝██║ ██╔╝
█████╗  ██║     ██║   ██║██║ █╗ ██║██║  ██║█████╗  ██║     █████╔╝
██╔══╝  ██║     ██║   ██║██║███╗██║██║  ██║██╔══╝  ██║     ██╔═██╗
██║     ███████╗╚██████╔╝╚███╔███╔╝██████╔╝███████╗╚██████╗██║  ██╗
╚═╝     ╚══════╝ ╚═════╝  ╚══╝╚══╝ ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝

flowdeck - Social media content planner

ACCOUNT:

  signup <email>          Create an account (prompts for password)
    -n, --name            Display name
  login <email>           Sign in
  logout                  Sign out
  whoami                  Show the signed-in account

POSTS:

  dashboard               Post counts, today's schedule, platform breakdown
  post add <title>        Create a post with smart parsing
    -p, --platform        twitter|facebook|instagram|linkedin
    -t, --tags            Comma-separated tags
    --at                  Schedule (today, tomorrow, dd/mm/yyyy, X days)
    -c, --content         Post body
    -e, --editor          Write the body in $EDITOR
    -i, --interactive     Open the post form

    Smart syntax:
      #tag1,tag2    Tags
      @platform     Platform
      at:tomorrow   Schedule (optional hh:mm)

    Example:
      flowdeck post add "Launch teaser #launch @twitter at:tomorrow 9:00"

  post ls                 List posts
    -s, --status          Filter: draft|scheduled|published
    -p, --platform        Filter by platform
  post show <id>          Show a post in full
  post edit <id>          Edit in the form (-e for $EDITOR)
  post delete <id>        Delete a post

CALENDAR:

  calendar                Open the scheduling calendar
    -v, --view            day|week|month
    -d, --date            Initial date (dd/mm/yyyy)

    Keys:
      d/w/m         Switch view
      h/j/k/l       Move the cursor
      [ / ]         Previous / next period
      g             Grab the post under the cursor
      enter         Drop the grabbed post on the slot
      n             New post in the slot
      p             Toggle the preview pane
      t             Jump to today

PROJECTS & BOARD:

  project add <name>      Create a project (--icon design|code|docs|video)
  project ls              List projects
  project use <name>      Switch the active project
  project delete <name>   Delete a project
  board [project]         Open the kanban board

    Keys:
      h/j/k/l       Move between columns and tasks
      g             Grab a task
      enter         Drop it on the focused column
      n             New task in the column
      x             Delete the task

  task add <title>        Add a task (-c column, -p project, -t tag)
  task move <id> <col>    Move a task: todo|in-progress|review|done
  task done <id>          Move a task to done

PREVIEW:

  preview <id>            Render a platform mockup with character count
    -p, --platform        Preview on a different platform
    -w, --width           Card width

OTHER:

  version                 Show version information
  help                    Show this help

Config lives at ~/.config/flowdeck/config.toml, data at ~/.flowdeck/.
`)
}
