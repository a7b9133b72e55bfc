package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

func TestCharacterLimits(t *testing.T) {
	tests := []struct {
		platform models.Platform
		limit    int
	}{
		{models.PlatformTwitter, 280},
		{models.PlatformFacebook, 63206},
		{models.PlatformInstagram, 2200},
		{models.PlatformLinkedIn, 3000},
	}
	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			cfg, ok := ConfigFor(tt.platform)
			if !ok {
				t.Fatalf("platform %q unknown", tt.platform)
			}
			if cfg.CharacterLimit != tt.limit {
				t.Errorf("limit = %d, want %d", cfg.CharacterLimit, tt.limit)
			}
		})
	}
}

func TestAnalyzeOverLimitBoundary(t *testing.T) {
	exactly := strings.Repeat("a", 280)
	if res := Analyze(models.PlatformTwitter, exactly); res.OverLimit {
		t.Errorf("280 characters flagged over limit (count=%d)", res.CharacterCount)
	}
	over := strings.Repeat("a", 281)
	if res := Analyze(models.PlatformTwitter, over); !res.OverLimit {
		t.Errorf("281 characters not flagged over limit (count=%d)", res.CharacterCount)
	}
}

func TestAnalyzeCountsPlainTextNotMarkup(t *testing.T) {
	content := "<p><strong>" + strings.Repeat("a", 280) + "</strong></p>"
	res := Analyze(models.PlatformTwitter, content)
	if res.CharacterCount != 280 {
		t.Errorf("count = %d, want 280 (markup must not count)", res.CharacterCount)
	}
	if res.OverLimit {
		t.Error("markup pushed the count over the limit")
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"html tags", "<p>hello <b>world</b></p>", "hello world"},
		{"entities", "fish &amp; chips", "fish & chips"},
		{"markdown emphasis", "**bold** and _quiet_ and `code`", "bold and quiet and code"},
		{"plain text untouched", "just text #tag", "just text #tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnknownPlatformFallsBackToTwitterLimit(t *testing.T) {
	cfg, ok := ConfigFor(models.Platform("myspace"))
	if ok {
		t.Error("unknown platform reported as known")
	}
	if cfg.CharacterLimit != 280 {
		t.Errorf("fallback limit = %d, want 280", cfg.CharacterLimit)
	}
}

func TestRenderUnknownPlatformShowsPlaceholder(t *testing.T) {
	post := models.Post{Platform: "myspace", Content: "hi", ScheduledTime: time.Now()}
	out := Render(post, Identity{}, 0)
	if !strings.Contains(out, "Preview not available") {
		t.Errorf("missing not-available placeholder:\n%s", out)
	}
	if !strings.Contains(out, "2/280 characters") {
		t.Errorf("missing twitter-limit character footer:\n%s", out)
	}
}

func TestRenderEachPlatform(t *testing.T) {
	post := models.Post{
		Title:         "Launch",
		Content:       "Big news #launch https://example.com/x",
		ScheduledTime: time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC),
	}
	id := Identity{Name: "Flow Deck", Handle: "flowdeck"}
	for platform := range Configs {
		post.Platform = platform
		out := Render(post, id, 0)
		if out == "" {
			t.Errorf("%s: empty render", platform)
		}
		if !strings.Contains(out, "characters") {
			t.Errorf("%s: missing character-count footer:\n%s", platform, out)
		}
		if strings.Contains(out, "Error rendering preview") {
			t.Errorf("%s: render fell into the error box", platform)
		}
	}
}

func TestRenderOverLimitIndicator(t *testing.T) {
	post := models.Post{
		Platform:      models.PlatformTwitter,
		Content:       strings.Repeat("x", 281),
		ScheduledTime: time.Now(),
	}
	out := Render(post, Identity{}, 0)
	if !strings.Contains(out, "over limit") {
		t.Errorf("missing over-limit indicator:\n%s", out)
	}
}
