package calendar

import (
	"testing"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2024, time.January, 22, 15), date(2024, time.January, 22, 0)},
		{"sunday maps back six days", date(2024, time.January, 21, 0), date(2024, time.January, 15, 0)},
		{"wednesday", date(2024, time.February, 14, 9), date(2024, time.February, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek(%v) fell on %v", tt.in, got.Weekday())
			}
		})
	}
}

func TestBuildDayBucketsByDateAndHour(t *testing.T) {
	now := date(2024, time.January, 20, 12)
	posts := []models.Post{
		{ID: "a", ScheduledTime: date(2024, time.January, 20, 10)},
		{ID: "b", ScheduledTime: date(2024, time.January, 20, 10).Add(45 * time.Minute)},
		{ID: "c", ScheduledTime: date(2024, time.January, 21, 10)}, // other day
		{ID: "d", ScheduledTime: date(2024, time.January, 20, 23)},
	}
	grid := BuildDay(date(2024, time.January, 20, 17), posts, now)

	if len(grid.Hours[10].Posts) != 2 {
		t.Fatalf("hour 10 has %d posts, want 2", len(grid.Hours[10].Posts))
	}
	if len(grid.Hours[23].Posts) != 1 || grid.Hours[23].Posts[0].ID != "d" {
		t.Errorf("hour 23 = %+v, want post d", grid.Hours[23].Posts)
	}
	total := 0
	for _, cell := range grid.Hours {
		total += len(cell.Posts)
	}
	if total != 3 {
		t.Errorf("day grid holds %d posts, want 3", total)
	}
}

func TestBuildDayRecoversInvalidSchedule(t *testing.T) {
	now := date(2024, time.March, 5, 9)
	posts := []models.Post{{ID: "bad"}} // zero ScheduledTime
	grid := BuildDay(now, posts, now)
	if len(grid.Hours[9].Posts) != 1 {
		t.Fatalf("invalid-schedule post not bucketed at now: %+v", grid.Hours[9].Posts)
	}
}

func TestBuildWeekSpansMondayToSunday(t *testing.T) {
	now := date(2024, time.January, 20, 0)
	posts := []models.Post{
		{ID: "mon", ScheduledTime: date(2024, time.January, 15, 8)},
		{ID: "sun", ScheduledTime: date(2024, time.January, 21, 20)},
		{ID: "out", ScheduledTime: date(2024, time.January, 22, 8)},
	}
	grid := BuildWeek(date(2024, time.January, 17, 0), posts, now)

	if !grid.Start.Equal(date(2024, time.January, 15, 0)) {
		t.Fatalf("week start = %v", grid.Start)
	}
	if len(grid.Days[0].Hours[8].Posts) != 1 || grid.Days[0].Hours[8].Posts[0].ID != "mon" {
		t.Errorf("monday 08:00 = %+v", grid.Days[0].Hours[8].Posts)
	}
	if len(grid.Days[6].Hours[20].Posts) != 1 || grid.Days[6].Hours[20].Posts[0].ID != "sun" {
		t.Errorf("sunday 20:00 = %+v", grid.Days[6].Hours[20].Posts)
	}
	for d := range grid.Days {
		for h := range grid.Days[d].Hours {
			for _, p := range grid.Days[d].Hours[h].Posts {
				if p.ID == "out" {
					t.Errorf("post outside the week bucketed at day %d hour %d", d, h)
				}
			}
		}
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"february leap year", 2024, time.February},
		{"month starting monday", 2024, time.January},
		{"month starting sunday", 2024, time.September},
		{"december", 2023, time.December},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonth(date(tt.year, tt.month, 10, 0), nil, time.Now())

			cells := 0
			seen := map[string]int{}
			for _, week := range grid.Weeks {
				for _, cell := range week {
					cells++
					if cell.InMonth {
						seen[cell.Date.Format("2006-01-02")]++
					} else if cell.Date.Month() == tt.month {
						t.Errorf("day %v marked out of month", cell.Date)
					}
				}
			}
			if cells%7 != 0 {
				t.Errorf("cell count %d is not a multiple of 7", cells)
			}
			daysInMonth := time.Date(tt.year, tt.month+1, 0, 0, 0, 0, 0, time.Local).Day()
			if len(seen) != daysInMonth {
				t.Errorf("grid contains %d distinct in-month days, want %d", len(seen), daysInMonth)
			}
			for day, count := range seen {
				if count != 1 {
					t.Errorf("day %s appears %d times", day, count)
				}
			}
			if grid.Weeks[0][0].Date.Weekday() != time.Monday {
				t.Errorf("grid starts on %v", grid.Weeks[0][0].Date.Weekday())
			}
		})
	}
}

func TestBuildMonthBucketsIgnoreTimeOfDay(t *testing.T) {
	posts := []models.Post{
		{ID: "early", ScheduledTime: date(2024, time.January, 20, 0)},
		{ID: "late", ScheduledTime: date(2024, time.January, 20, 23).Add(59 * time.Minute)},
	}
	grid := BuildMonth(date(2024, time.January, 1, 0), posts, time.Now())
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if SameDay(cell.Date, date(2024, time.January, 20, 0)) {
				if len(cell.Posts) != 2 {
					t.Fatalf("jan 20 cell holds %d posts, want 2", len(cell.Posts))
				}
				return
			}
		}
	}
	t.Fatal("jan 20 not present in month grid")
}

func TestDropOntoHourSlot(t *testing.T) {
	post := models.Post{
		ID:            "p1",
		Title:         "Launch",
		Platform:      models.PlatformTwitter,
		ScheduledTime: date(2024, time.January, 20, 10),
		Status:        models.StatusDraft,
	}
	slot := Slot{Day: date(2024, time.January, 21, 0), Hour: 14, HasHour: true}

	moved := Drop(post, slot)

	if !moved.ScheduledTime.Equal(date(2024, time.January, 21, 14)) {
		t.Errorf("scheduled time = %v, want 2024-01-21 14:00", moved.ScheduledTime)
	}
	if moved.Title != post.Title || moved.Platform != post.Platform {
		t.Error("drop touched fields other than the schedule")
	}
	if moved.Status != models.StatusDraft {
		t.Errorf("drop promoted status to %q", moved.Status)
	}
}

func TestDropOntoDaySlotKeepsHour(t *testing.T) {
	post := models.Post{ID: "p1", ScheduledTime: date(2024, time.January, 3, 16).Add(30 * time.Minute)}
	moved := Drop(post, Slot{Day: date(2024, time.February, 9, 0)})
	if !moved.ScheduledTime.Equal(date(2024, time.February, 9, 16)) {
		t.Errorf("scheduled time = %v, want 2024-02-09 16:00", moved.ScheduledTime)
	}
}

func TestStep(t *testing.T) {
	ref := date(2024, time.January, 31, 0)
	if got := Step(ref, ViewDay, 1); !got.Equal(date(2024, time.February, 1, 0)) {
		t.Errorf("day step = %v", got)
	}
	if got := Step(ref, ViewWeek, -1); !got.Equal(date(2024, time.January, 24, 0)) {
		t.Errorf("week step = %v", got)
	}
	if got := Step(ref, ViewMonth, 1); got.Month() != time.March {
		// Jan 31 + 1 month normalizes to March 2; Go's AddDate behavior.
		t.Errorf("month step = %v", got)
	}
}

func TestParseViewMode(t *testing.T) {
	for _, mode := range []ViewMode{ViewDay, ViewWeek, ViewMonth} {
		parsed, err := ParseViewMode(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("round trip of %v failed: %v %v", mode, parsed, err)
		}
	}
	if _, err := ParseViewMode("fortnight"); err == nil {
		t.Error("expected error for unknown view mode")
	}
}
