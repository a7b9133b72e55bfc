package store

import (
	"sort"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

// PostStats are the headline counts shown on the dashboard.
type PostStats struct {
	Total     int
	Today     int // scheduled on the current calendar day
	Scheduled int
	Published int
}

// CountStats derives the dashboard counts from a post list.
func CountStats(posts []models.Post, now time.Time) PostStats {
	stats := PostStats{Total: len(posts)}
	for _, post := range posts {
		if sameDay(post.ScheduledTime, now) {
			stats.Today++
		}
		switch post.Status {
		case models.StatusScheduled:
			stats.Scheduled++
		case models.StatusPublished:
			stats.Published++
		}
	}
	return stats
}

// TodaysPosts returns the posts scheduled on now's calendar day, earliest
// first.
func TodaysPosts(posts []models.Post, now time.Time) []models.Post {
	var todays []models.Post
	for _, post := range posts {
		if sameDay(post.ScheduledTime, now) {
			todays = append(todays, post)
		}
	}
	sort.Slice(todays, func(i, j int) bool {
		return todays[i].ScheduledTime.Before(todays[j].ScheduledTime)
	})
	return todays
}

// PlatformShare is one platform's slice of the post list.
type PlatformShare struct {
	Platform models.Platform
	Count    int
	Percent  int // rounded to the nearest whole percent
}

// PlatformBreakdown counts posts per platform, largest share first.
// Platforms with no posts are omitted.
func PlatformBreakdown(posts []models.Post) []PlatformShare {
	counts := make(map[models.Platform]int)
	for _, post := range posts {
		counts[post.Platform]++
	}

	var shares []PlatformShare
	for platform, count := range counts {
		shares = append(shares, PlatformShare{
			Platform: platform,
			Count:    count,
			Percent:  (count*100 + len(posts)/2) / len(posts),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Platform < shares[j].Platform
	})
	return shares
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
