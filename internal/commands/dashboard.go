package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/temirbekov/flowdeck/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"stats"},
	Short:   "Show the content plan at a glance",
	Long:    "Show headline post counts, today's schedule, and the per-platform breakdown.",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		posts := openPostStore()
		all := posts.Posts()
		now := time.Now()

		stats := store.CountStats(all, now)
		fmt.Printf("📊 Dashboard: %s\n\n", now.Format("Monday, 2 January 2006"))
		fmt.Printf("  Total posts:      %d\n", stats.Total)
		fmt.Printf("  Today's posts:    %d\n", stats.Today)
		fmt.Printf("  Scheduled posts:  %d\n", stats.Scheduled)
		fmt.Printf("  Published posts:  %d\n", stats.Published)

		fmt.Printf("\nToday's posts\n")
		todays := store.TodaysPosts(all, now)
		if len(todays) == 0 {
			fmt.Println("  No posts scheduled for today")
		} else {
			for _, post := range todays {
				fmt.Printf("  %s  %-11s %-32s [%s]\n",
					post.ScheduledTime.Format("15:04"),
					post.Platform,
					truncateLine(post.Title, 30),
					post.Status)
			}
		}

		shares := store.PlatformBreakdown(all)
		if len(shares) > 0 {
			fmt.Printf("\nPlatform breakdown\n")
			for _, share := range shares {
				bar := strings.Repeat("█", (share.Percent+4)/5)
				fmt.Printf("  %-11s %3d%%  %s\n", share.Platform, share.Percent, bar)
			}
		}
	}),
}

func truncateLine(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
