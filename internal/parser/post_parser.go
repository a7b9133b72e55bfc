package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

// ParsedPost is a post parsed from quick-add natural syntax.
type ParsedPost struct {
	Title    string
	Platform models.Platform
	Tags     []string
	At       *time.Time
	Errors   []string
}

var (
	postTagPattern      = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	postPlatformPattern = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	postAtPattern       = regexp.MustCompile(`\bat:(\S+)( \d{1,2}:\d{2})?`)
)

// ParsePost extracts metadata from a quick-add line.
// Syntax: "Post title #tag1,tag2 @platform at:tomorrow 9:00"
func ParsePost(input string, now time.Time) ParsedPost {
	result := ParsedPost{Tags: []string{}, Errors: []string{}}

	// Schedule first so its trailing clock is not mistaken for title text.
	if matches := postAtPattern.FindStringSubmatch(input); matches != nil {
		raw := strings.TrimSpace(matches[1] + matches[2])
		at, err := ParseSchedule(raw, now)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else if !at.IsZero() {
			result.At = &at
		}
		input = postAtPattern.ReplaceAllString(input, "")
	}

	for _, match := range postTagPattern.FindAllStringSubmatch(input, -1) {
		for _, tag := range strings.Split(match[1], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				result.Tags = append(result.Tags, tag)
			}
		}
	}
	input = postTagPattern.ReplaceAllString(input, "")

	if matches := postPlatformPattern.FindStringSubmatch(input); matches != nil {
		platform := models.Platform(strings.ToLower(matches[1]))
		if platform.IsValid() {
			result.Platform = platform
		} else {
			result.Errors = append(result.Errors, "unknown platform '"+matches[1]+"': use twitter, facebook, instagram, or linkedin")
		}
		input = postPlatformPattern.ReplaceAllString(input, "")
	}

	result.Title = strings.Join(strings.Fields(input), " ")
	return result
}
