package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultHour is the publishing hour assumed when a schedule names a day
// but no time.
const DefaultHour = 9

// ParseSchedule parses the schedule formats accepted everywhere a post
// time is entered:
//   - "now"
//   - "today", "tomorrow" (optionally followed by hh:mm)
//   - dd/mm/yyyy (optionally followed by hh:mm)
//   - "X hours", "X days", "X weeks" relative to now
//
// A dash may stand in for the space ("tomorrow-9:00") so schedules can
// travel as a single token in quick-add syntax. Empty input returns the
// zero time; callers substitute their own default (usually now or the
// clicked calendar slot).
func ParseSchedule(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(strings.ReplaceAll(input, "-", " ")))
	if input == "" {
		return time.Time{}, nil
	}
	if input == "now" {
		return now, nil
	}

	if at, err := parseNamedDay(input, now); err == nil {
		return at, nil
	}
	if at, err := parseAbsolute(input, now.Location()); err == nil {
		return at, nil
	}
	if at, err := parseRelative(input, now); err == nil {
		return at, nil
	}
	return time.Time{}, fmt.Errorf("invalid schedule %q: use dd/mm/yyyy [hh:mm], today/tomorrow [hh:mm], or X hours/days/weeks", input)
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// splitClock pulls a trailing hh:mm off the input, defaulting to
// DefaultHour when absent.
func splitClock(input string) (rest string, hour, minute int, err error) {
	hour = DefaultHour
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return input, hour, 0, nil
	}
	last := fields[len(fields)-1]
	matches := clockPattern.FindStringSubmatch(last)
	if matches == nil {
		return input, hour, 0, nil
	}
	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return input, 0, 0, fmt.Errorf("invalid time %q", last)
	}
	return strings.Join(fields[:len(fields)-1], " "), hour, minute, nil
}

func parseNamedDay(input string, now time.Time) (time.Time, error) {
	rest, hour, minute, err := splitClock(input)
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch rest {
	case "today":
	case "tomorrow":
		day = day.AddDate(0, 0, 1)
	default:
		return time.Time{}, fmt.Errorf("not a named day")
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

func parseAbsolute(input string, loc *time.Location) (time.Time, error) {
	rest, hour, minute, err := splitClock(input)
	if err != nil {
		return time.Time{}, err
	}
	matches := datePattern.FindStringSubmatch(strings.TrimSpace(rest))
	if matches == nil {
		return time.Time{}, fmt.Errorf("not an absolute date")
	}
	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q", rest)
	}
	at := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// Rejects normalized overflow such as 31/02.
	if at.Day() != day || at.Month() != time.Month(month) || at.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", rest)
	}
	return at, nil
}

var relativePattern = regexp.MustCompile(`^(\d+)\s+(hour|hours|day|days|week|weeks)$`)

func parseRelative(input string, now time.Time) (time.Time, error) {
	matches := relativePattern.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, fmt.Errorf("not a relative schedule")
	}
	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return time.Time{}, fmt.Errorf("invalid amount %q", matches[1])
	}
	switch matches[2] {
	case "hour", "hours":
		return now.Add(time.Duration(amount) * time.Hour), nil
	case "day", "days":
		return now.AddDate(0, 0, amount), nil
	default:
		return now.AddDate(0, 0, amount*7), nil
	}
}

// FormatSchedule renders a schedule for table display: relative words for
// near dates, the full date otherwise.
func FormatSchedule(at, now time.Time) string {
	if at.IsZero() {
		return "unscheduled"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	diff := int(day.Sub(today).Hours() / 24)
	clock := at.Format("15:04")
	switch {
	case diff == 0:
		return "today " + clock
	case diff == 1:
		return "tomorrow " + clock
	case diff == -1:
		return "yesterday " + clock
	default:
		return at.Format("02/01/2006 15:04")
	}
}
