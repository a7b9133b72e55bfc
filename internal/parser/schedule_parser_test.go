package parser

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, time.January, 20, 12, 30, 0, 0, time.Local)

func TestParseScheduleFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"now", "now", testNow},
		{"today default hour", "today", time.Date(2024, 1, 20, 9, 0, 0, 0, time.Local)},
		{"tomorrow with clock", "tomorrow 9:15", time.Date(2024, 1, 21, 9, 15, 0, 0, time.Local)},
		{"tomorrow dashed", "tomorrow-18:00", time.Date(2024, 1, 21, 18, 0, 0, 0, time.Local)},
		{"absolute date", "15/02/2024", time.Date(2024, 2, 15, 9, 0, 0, 0, time.Local)},
		{"absolute with clock", "15/02/2024 14:00", time.Date(2024, 2, 15, 14, 0, 0, 0, time.Local)},
		{"relative hours", "3 hours", testNow.Add(3 * time.Hour)},
		{"relative days", "2 days", testNow.AddDate(0, 0, 2)},
		{"relative weeks", "1 week", testNow.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSchedule(tt.input, testNow)
			if err != nil {
				t.Fatalf("ParseSchedule(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseSchedule(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseScheduleEmpty(t *testing.T) {
	got, err := ParseSchedule("", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("empty schedule = %v, want zero", got)
	}
}

func TestParseScheduleInvalid(t *testing.T) {
	for _, input := range []string{"31/02/2024", "someday", "25:00 today", "today 25:00", "0 days"} {
		if _, err := ParseSchedule(input, testNow); err == nil {
			t.Errorf("ParseSchedule(%q) accepted invalid input", input)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, "unscheduled"},
		{"today", time.Date(2024, 1, 20, 15, 0, 0, 0, time.Local), "today 15:00"},
		{"tomorrow", time.Date(2024, 1, 21, 8, 30, 0, 0, time.Local), "tomorrow 08:30"},
		{"far", time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), "01/03/2024 10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSchedule(tt.at, testNow); got != tt.want {
				t.Errorf("FormatSchedule = %q, want %q", got, tt.want)
			}
		})
	}
}
