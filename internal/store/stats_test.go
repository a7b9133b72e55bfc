package store

import (
	"testing"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

func statsFixture(now time.Time) []models.Post {
	return []models.Post{
		{ID: "a", Title: "morning", Platform: models.PlatformTwitter, Status: models.StatusScheduled, ScheduledTime: now.Add(2 * time.Hour)},
		{ID: "b", Title: "early", Platform: models.PlatformTwitter, Status: models.StatusPublished, ScheduledTime: now.Add(-3 * time.Hour)},
		{ID: "c", Title: "next week", Platform: models.PlatformInstagram, Status: models.StatusScheduled, ScheduledTime: now.AddDate(0, 0, 7)},
		{ID: "d", Title: "idea", Platform: models.PlatformLinkedIn, Status: models.StatusDraft, ScheduledTime: now.AddDate(0, 0, 1)},
	}
}

func TestCountStats(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.Local)
	posts := statsFixture(now)

	tests := []struct {
		name  string
		posts []models.Post
		want  PostStats
	}{
		{"empty", nil, PostStats{}},
		{"mixed", posts, PostStats{Total: 4, Today: 2, Scheduled: 2, Published: 1}},
		{"single draft", posts[3:], PostStats{Total: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountStats(tt.posts, now); got != tt.want {
				t.Errorf("CountStats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTodaysPostsSortedByTime(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.Local)
	todays := TodaysPosts(statsFixture(now), now)

	if len(todays) != 2 {
		t.Fatalf("len = %d, want 2", len(todays))
	}
	if todays[0].ID != "b" || todays[1].ID != "a" {
		t.Errorf("order = %s,%s, want b,a", todays[0].ID, todays[1].ID)
	}
}

func TestPlatformBreakdown(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.Local)
	shares := PlatformBreakdown(statsFixture(now))

	want := []PlatformShare{
		{Platform: models.PlatformTwitter, Count: 2, Percent: 50},
		{Platform: models.PlatformInstagram, Count: 1, Percent: 25},
		{Platform: models.PlatformLinkedIn, Count: 1, Percent: 25},
	}
	if len(shares) != len(want) {
		t.Fatalf("len = %d, want %d", len(shares), len(want))
	}
	for i := range want {
		if shares[i] != want[i] {
			t.Errorf("share[%d] = %+v, want %+v", i, shares[i], want[i])
		}
	}
}

func TestPlatformBreakdownRounding(t *testing.T) {
	posts := []models.Post{
		{Platform: models.PlatformTwitter},
		{Platform: models.PlatformTwitter},
		{Platform: models.PlatformFacebook},
	}
	shares := PlatformBreakdown(posts)
	if shares[0].Percent != 67 || shares[1].Percent != 33 {
		t.Errorf("percents = %d,%d, want 67,33", shares[0].Percent, shares[1].Percent)
	}
}

func TestPlatformBreakdownEmpty(t *testing.T) {
	if shares := PlatformBreakdown(nil); len(shares) != 0 {
		t.Errorf("shares = %v, want none", shares)
	}
}
