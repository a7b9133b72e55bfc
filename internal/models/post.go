package models

import (
	"time"
)

// Platform identifies a publishing target for a post.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{
	PlatformTwitter,
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedIn,
}

// IsValid reports whether p names a supported platform.
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// PostStatus tracks where a post is in its lifecycle.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
)

// Post represents a piece of scheduled content
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"` // may contain markup
	Platform      Platform   `json:"platform"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	Status        PostStatus `json:"status"`
	Tags          []string   `json:"tags,omitempty"`
}

// Merge overlays the non-zero fields of other onto a copy of p.
// The id never changes; a zero scheduled time in other is ignored.
func (p Post) Merge(other Post) Post {
	merged := p
	if other.Title != "" {
		merged.Title = other.Title
	}
	if other.Content != "" {
		merged.Content = other.Content
	}
	if other.Platform != "" {
		merged.Platform = other.Platform
	}
	if !other.ScheduledTime.IsZero() {
		merged.ScheduledTime = other.ScheduledTime
	}
	if other.Status != "" {
		merged.Status = other.Status
	}
	if other.Tags != nil {
		merged.Tags = other.Tags
	}
	return merged
}
