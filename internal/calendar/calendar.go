// Package calendar computes the day/week/month grids that the scheduling
// views render, and applies slot drops back onto posts.
package calendar

import (
	"fmt"
	"os"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

// ViewMode selects which grid shape the calendar renders.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewMonth
)

// String returns the mode's wire/flag form.
func (v ViewMode) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	default:
		return "unknown"
	}
}

// ParseViewMode converts a flag value to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "day":
		return ViewDay, nil
	case "week":
		return ViewWeek, nil
	case "month":
		return ViewMonth, nil
	default:
		return ViewWeek, fmt.Errorf("invalid view %q: use day, week, or month", s)
	}
}

// Slot addresses a single bucket in the grid: a day, and an hour when the
// view has hourly rows. Dialogs are pre-filled from it and drops target it.
type Slot struct {
	Day     time.Time // midnight, local
	Hour    int       // 0-23, meaningful only when HasHour
	HasHour bool
}

// Time returns the concrete timestamp the slot stands for.
func (s Slot) Time() time.Time {
	if s.HasHour {
		return s.Day.Add(time.Duration(s.Hour) * time.Hour)
	}
	return s.Day
}

// HourCell is one hourly bucket in the day and week views.
type HourCell struct {
	Day   time.Time
	Hour  int
	Posts []models.Post
}

// Slot returns the cell's address.
func (c HourCell) Slot() Slot {
	return Slot{Day: c.Day, Hour: c.Hour, HasHour: true}
}

// DayGrid is 24 one-hour buckets for a single date.
type DayGrid struct {
	Date  time.Time
	Hours [24]HourCell
}

// WeekGrid is 7 Monday-start day columns of 24 hourly rows.
type WeekGrid struct {
	Start time.Time // Monday, midnight
	Days  [7]DayGrid
}

// MonthCell is one calendar day in the month view. InMonth is false for
// the leading/trailing padding days pulled from adjacent months.
type MonthCell struct {
	Date    time.Time
	InMonth bool
	Posts   []models.Post
}

// Slot returns the cell's address. Month cells have no hour.
func (c MonthCell) Slot() Slot {
	return Slot{Day: c.Date}
}

// MonthGrid covers every full Monday-start week that overlaps the month,
// so len(Weeks)*7 cells, always a multiple of 7.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]MonthCell
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday midnight on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// scheduleOf returns the post's scheduled time, substituting now for
// invalid (zero) values so one bad record never breaks a grid build.
func scheduleOf(post models.Post, now time.Time) time.Time {
	if post.ScheduledTime.IsZero() {
		fmt.Fprintf(os.Stderr, "warning: post %s has an invalid scheduled time, treating as now\n", post.ID)
		return now
	}
	return post.ScheduledTime
}

// BuildDay buckets posts into 24 hourly cells for selected's date.
// A post lands in hour h iff its schedule matches the date and the hour.
func BuildDay(selected time.Time, posts []models.Post, now time.Time) DayGrid {
	grid := DayGrid{Date: StartOfDay(selected)}
	for h := 0; h < 24; h++ {
		grid.Hours[h] = HourCell{Day: grid.Date, Hour: h}
	}
	for _, post := range posts {
		at := scheduleOf(post, now)
		if !SameDay(at, grid.Date) {
			continue
		}
		h := at.Hour()
		grid.Hours[h].Posts = append(grid.Hours[h].Posts, post)
	}
	return grid
}

// BuildWeek buckets posts into the Monday-start week containing selected.
func BuildWeek(selected time.Time, posts []models.Post, now time.Time) WeekGrid {
	start := StartOfWeek(selected)
	grid := WeekGrid{Start: start}
	for d := 0; d < 7; d++ {
		grid.Days[d] = BuildDay(start.AddDate(0, 0, d), posts, now)
	}
	return grid
}

// BuildMonth builds the padded month grid for selected's month. Membership
// is by date only; time-of-day is ignored.
func BuildMonth(selected time.Time, posts []models.Post, now time.Time) MonthGrid {
	monthStart := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	first := StartOfWeek(monthStart)
	last := StartOfWeek(monthEnd).AddDate(0, 0, 6)

	grid := MonthGrid{Year: selected.Year(), Month: selected.Month()}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 7) {
		var week [7]MonthCell
		for i := 0; i < 7; i++ {
			date := day.AddDate(0, 0, i)
			week[i] = MonthCell{Date: date, InMonth: date.Month() == selected.Month()}
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	for _, post := range posts {
		at := scheduleOf(post, now)
		for w := range grid.Weeks {
			for i := range grid.Weeks[w] {
				if SameDay(at, grid.Weeks[w][i].Date) {
					grid.Weeks[w][i].Posts = append(grid.Weeks[w][i].Posts, post)
				}
			}
		}
	}
	return grid
}

// Drop reschedules post onto slot, leaving every other field untouched.
// Hourly slots zero the minutes; date-only slots (month view) keep the
// post's original hour. Status is deliberately not promoted.
func Drop(post models.Post, slot Slot) models.Post {
	moved := post
	if slot.HasHour {
		moved.ScheduledTime = slot.Time()
		return moved
	}
	hour := 0
	if !post.ScheduledTime.IsZero() {
		hour = post.ScheduledTime.Hour()
	}
	moved.ScheduledTime = slot.Day.Add(time.Duration(hour) * time.Hour)
	return moved
}

// Step moves the reference date one period forward or back for the mode.
func Step(date time.Time, mode ViewMode, direction int) time.Time {
	switch mode {
	case ViewDay:
		return date.AddDate(0, 0, direction)
	case ViewWeek:
		return date.AddDate(0, 0, 7*direction)
	default:
		return date.AddDate(0, direction, 0)
	}
}

// Title renders the header label for the current mode and date.
func Title(date time.Time, mode ViewMode) string {
	switch mode {
	case ViewDay:
		return date.Format("Monday, 2 January 2006")
	case ViewWeek:
		start := StartOfWeek(date)
		end := start.AddDate(0, 0, 6)
		if start.Month() == end.Month() {
			return fmt.Sprintf("%s – %s", start.Format("2"), end.Format("2 January 2006"))
		}
		return fmt.Sprintf("%s – %s", start.Format("2 Jan"), end.Format("2 Jan 2006"))
	default:
		return date.Format("January 2006")
	}
}
