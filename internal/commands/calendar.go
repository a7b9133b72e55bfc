package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/calendar"
	"github.com/temirbekov/flowdeck/internal/tui"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Open the scheduling calendar",
	Long: `Open the interactive calendar of scheduled posts.

Views: day (hourly), week (7 days x hours), month (full grid).
Grab a post with 'g' and drop it on another slot to reschedule.`,
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()

		viewFlag, _ := cmd.Flags().GetString("view")
		if viewFlag == "" {
			viewFlag = cfg.DefaultView()
		}
		mode, err := calendar.ParseViewMode(viewFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		date := time.Now()
		if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
			parsed, err := time.ParseInLocation("02/01/2006", dateFlag, time.Local)
			if err != nil {
				fmt.Printf("Error: invalid date %q (want dd/mm/yyyy)\n", dateFlag)
				return
			}
			date = parsed
		}

		if err := tui.RunCalendarTUI(posts, accountIdentity(), mode, date); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	calendarCmd.Flags().StringP("view", "v", "", "Initial view: day, week, month")
	calendarCmd.Flags().StringP("date", "d", "", "Initial date (dd/mm/yyyy)")
}
