package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

func TestParsePostFullSyntax(t *testing.T) {
	got := ParsePost("Launch day post #launch,news @twitter at:tomorrow 9:00", testNow)

	if got.Title != "Launch day post" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Platform != models.PlatformTwitter {
		t.Errorf("platform = %q", got.Platform)
	}
	if !reflect.DeepEqual(got.Tags, []string{"launch", "news"}) {
		t.Errorf("tags = %v", got.Tags)
	}
	want := time.Date(2024, 1, 21, 9, 0, 0, 0, time.Local)
	if got.At == nil || !got.At.Equal(want) {
		t.Errorf("at = %v, want %v", got.At, want)
	}
	if len(got.Errors) != 0 {
		t.Errorf("errors = %v", got.Errors)
	}
}

func TestParsePostPlainTitle(t *testing.T) {
	got := ParsePost("Just a simple title", testNow)
	if got.Title != "Just a simple title" || got.Platform != "" || got.At != nil || len(got.Tags) != 0 {
		t.Errorf("plain title parsed as %+v", got)
	}
}

func TestParsePostUnknownPlatform(t *testing.T) {
	got := ParsePost("Hello @myspace", testNow)
	if got.Platform != "" {
		t.Errorf("platform = %q, want empty", got.Platform)
	}
	if len(got.Errors) == 0 {
		t.Error("expected an error for unknown platform")
	}
	if got.Title != "Hello" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestParsePostBadSchedule(t *testing.T) {
	got := ParsePost("Hello at:someday", testNow)
	if got.At != nil {
		t.Errorf("at = %v, want nil", got.At)
	}
	if len(got.Errors) == 0 {
		t.Error("expected an error for bad schedule")
	}
}

func TestParsePostSeparateTags(t *testing.T) {
	got := ParsePost("Post #one #two", testNow)
	if !reflect.DeepEqual(got.Tags, []string{"one", "two"}) {
		t.Errorf("tags = %v", got.Tags)
	}
}
