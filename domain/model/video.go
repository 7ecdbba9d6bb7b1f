package model

import (
	"fmt"
	"strings"
)

// Visibility is the publication state of an upload on the hosting platform
type Visibility int

const (
	VisibilityUnknown Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityUnlisted
)

// ParseVisibility maps the platform privacy status string to a Visibility
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return VisibilityPublic, nil
	case "private":
		return VisibilityPrivate, nil
	case "unlisted":
		return VisibilityUnlisted, nil
	default:
		return VisibilityUnknown, fmt.Errorf("unknown visibility: %q", s)
	}
}

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityUnlisted:
		return "unlisted"
	default:
		return "unknown"
	}
}

// VideoSummary is a read-only snapshot of an upload as reported by the hosting API
type VideoSummary struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   string     `json:"category_id"`
	ChannelTitle string     `json:"channel_title"`
	Tags         []string   `json:"tags"`
	Visibility   Visibility `json:"visibility"`
}

// UpdatePayload is the metadata sent in the single update call of a run.
type UpdatePayload struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   string     `json:"category_id"`
	ChannelTitle string     `json:"channel_title"`
	Tags         []string   `json:"tags"`
	Visibility   Visibility `json:"visibility"`
	MadeForKids  bool       `json:"made_for_kids"`
	Embeddable   bool       `json:"embeddable"`
	License      string     `json:"license"`
}

// LicenseStandard is the platform default license
const LicenseStandard = "youtube"

// WatchURL returns the short watch link for a video
func WatchURL(videoID string) string {
	return "https://youtu.be/" + videoID
}
