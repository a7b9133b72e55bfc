// Package preview renders read-only, platform-styled mocks of a post and
// reports character-limit feedback against each platform's limit.
package preview

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/temirbekov/flowdeck/internal/models"
)

// Config carries the per-platform rendering parameters.
type Config struct {
	Name           string
	CharacterLimit int
	Accent         string // hashtag/handle color
	Width          int    // card inner width
}

// Configs maps each supported platform to its rendering parameters.
// The character limits mirror the real platforms.
var Configs = map[models.Platform]Config{
	models.PlatformTwitter:   {Name: "Twitter", CharacterLimit: 280, Accent: "#1D9BF0", Width: 50},
	models.PlatformFacebook:  {Name: "Facebook", CharacterLimit: 63206, Accent: "#1877F2", Width: 50},
	models.PlatformInstagram: {Name: "Instagram", CharacterLimit: 2200, Accent: "#C13584", Width: 40},
	models.PlatformLinkedIn:  {Name: "LinkedIn", CharacterLimit: 3000, Accent: "#0A66C2", Width: 50},
}

// ConfigFor returns the platform's config. Unknown platforms get the
// twitter treatment for limit purposes; ok is false so render paths can
// substitute the not-available placeholder.
func ConfigFor(platform models.Platform) (Config, bool) {
	cfg, ok := Configs[platform]
	if !ok {
		return Configs[models.PlatformTwitter], false
	}
	return cfg, true
}

// Identity is who the mock pretends is posting.
type Identity struct {
	Name   string
	Handle string
}

func (id Identity) name() string {
	if id.Name == "" {
		return "Your Name"
	}
	return id.Name
}

func (id Identity) handle() string {
	if id.Handle == "" {
		return "username"
	}
	return strings.TrimPrefix(id.Handle, "@")
}

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	emphasisPattern = regexp.MustCompile("[*_`]+")
	hashtagPattern  = regexp.MustCompile(`#\w+`)
	urlPattern      = regexp.MustCompile(`https?://\S+`)
)

// StripMarkup reduces editor markup (HTML tags, entities, markdown
// emphasis) to the plain text a reader would see. Character counting
// runs against this form.
func StripMarkup(content string) string {
	plain := tagPattern.ReplaceAllString(content, "")
	plain = html.UnescapeString(plain)
	plain = emphasisPattern.ReplaceAllString(plain, "")
	return strings.TrimSpace(plain)
}

// Result is the character-limit analysis for one platform.
type Result struct {
	Platform       models.Platform
	PlainText      string
	CharacterCount int
	CharacterLimit int
	OverLimit      bool
}

// Analyze strips content and checks it against the platform's limit.
// A count equal to the limit is not over; one past it is.
func Analyze(platform models.Platform, content string) Result {
	cfg, _ := ConfigFor(platform)
	plain := StripMarkup(content)
	count := len([]rune(plain))
	return Result{
		Platform:       platform,
		PlainText:      plain,
		CharacterCount: count,
		CharacterLimit: cfg.CharacterLimit,
		OverLimit:      count > cfg.CharacterLimit,
	}
}

// Render produces the platform mock for post. Never panics outward: any
// rendering failure collapses into an inline error box.
func Render(post models.Post, identity Identity, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "warning: preview render failed: %v\n", r)
			out = errorBox(width)
		}
	}()

	cfg, known := ConfigFor(post.Platform)
	if width <= 0 || width > cfg.Width {
		width = cfg.Width
	}
	if !known {
		// No mock template, but limit feedback still applies (twitter's).
		return placeholderBox("Preview not available for this platform", width) +
			"\n" + characterCount(post.Platform, post.Content)
	}

	body := formatBody(post.Content, cfg, width-4)
	var card string
	switch post.Platform {
	case models.PlatformTwitter:
		card = twitterCard(post, identity, cfg, body, width)
	case models.PlatformFacebook:
		card = facebookCard(post, identity, cfg, body, width)
	case models.PlatformInstagram:
		card = instagramCard(post, identity, cfg, body, width)
	case models.PlatformLinkedIn:
		card = linkedinCard(post, identity, cfg, body, width)
	}
	return card + "\n" + characterCount(post.Platform, post.Content)
}

// formatBody strips markup, re-applies hashtag highlighting and swaps
// URLs for a link-preview placeholder, then wraps to the card width.
func formatBody(content string, cfg Config, width int) string {
	plain := StripMarkup(content)

	var links []string
	plain = urlPattern.ReplaceAllStringFunc(plain, func(url string) string {
		links = append(links, url)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent)).Underline(true).Render(url)
	})
	highlighted := hashtagPattern.ReplaceAllStringFunc(plain, func(tag string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent)).Render(tag)
	})

	body := wordwrap.String(highlighted, width)
	for _, link := range links {
		body += "\n" + linkPreviewBox(link, width)
	}
	return body
}

func cardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3A3F55")).
		Padding(0, 1).
		Width(width)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#6D7383"))
}

func boldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func twitterCard(post models.Post, identity Identity, cfg Config, body string, width int) string {
	header := fmt.Sprintf("%s %s · %s",
		boldStyle().Render(identity.name()),
		mutedStyle().Render("@"+identity.handle()),
		mutedStyle().Render(post.ScheduledTime.Format("Jan 2")),
	)
	return cardStyle(width).Render(header + "\n\n" + body)
}

func facebookCard(post models.Post, identity Identity, cfg Config, body string, width int) string {
	header := boldStyle().Render(identity.name()) + "\n" +
		mutedStyle().Render(post.ScheduledTime.Format("January 2, 2006"))
	return cardStyle(width).Render(header + "\n\n" + body)
}

func instagramCard(post models.Post, identity Identity, cfg Config, body string, width int) string {
	handle := boldStyle().Render(identity.handle())
	photo := placeholderBox("[ Photo will appear here ]", width-4)
	actions := "♥  💬  ➤"
	caption := handle + "  " + body
	date := mutedStyle().Render(post.ScheduledTime.Format("January 2, 2006"))
	return cardStyle(width).Render(strings.Join([]string{handle, photo, actions, caption, date}, "\n"))
}

func linkedinCard(post models.Post, identity Identity, cfg Config, body string, width int) string {
	header := boldStyle().Render(identity.name()) + "\n" +
		mutedStyle().Render("Content Planner") + "\n" +
		mutedStyle().Render(post.ScheduledTime.Format("Jan 2, 2006"))
	return cardStyle(width).Render(header + "\n\n" + body)
}

func linkPreviewBox(url string, width int) string {
	inner := mutedStyle().Render(truncate(url, width-4)) + "\n" +
		mutedStyle().Render("[ Link preview will appear here ]")
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#3A3F55")).
		Width(width - 2).
		Render(inner)
}

func placeholderBox(label string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#3A3F55")).
		Foreground(lipgloss.Color("#6D7383")).
		Align(lipgloss.Center).
		Width(width).
		Render(label)
}

func errorBox(width int) string {
	if width <= 0 {
		width = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#EF4444")).
		Foreground(lipgloss.Color("#EF4444")).
		Align(lipgloss.Center).
		Width(width).
		Render("Error rendering preview")
}

// characterCount renders the "123/280 characters" footer line.
func characterCount(platform models.Platform, content string) string {
	res := Analyze(platform, content)
	line := fmt.Sprintf("%d/%d characters", res.CharacterCount, res.CharacterLimit)
	if res.OverLimit {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render(line + " (over limit)")
	}
	return mutedStyle().Render(line)
}

func truncate(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
