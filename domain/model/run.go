package model

import "time"

// Outcome describes how a run ended
type Outcome string

const (
	OutcomeNothingToPublish Outcome = "nothing_to_publish"
	OutcomePublished        Outcome = "published"
	OutcomeDryRun           Outcome = "dry_run"
	OutcomeFailed           Outcome = "failed"
)

// RunReport summarizes a single pass for the top-level dispatcher
type RunReport struct {
	RunID         string   `json:"run_id"`
	Outcome       Outcome  `json:"outcome"`
	VideoID       string   `json:"video_id,omitempty"`
	OriginalTitle string   `json:"original_title,omitempty"`
	Title         string   `json:"title,omitempty"`
	TitleReplaced bool     `json:"title_replaced"`
	Tags          []string `json:"tags,omitempty"`
	Notified      bool     `json:"notified"`
}

// NotificationMessage carries what the operator announcement is rendered from
type NotificationMessage struct {
	ChannelDisplayName string
	VideoID            string
}

// PublishRecord is an audit row written once per run that selected a target.
// It is never read back by the publishing logic.
type PublishRecord struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Outcome   Outcome   `json:"outcome"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishedEvent is broadcast after a successful update
type PublishedEvent struct {
	RunID       string    `json:"runId"`
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}
