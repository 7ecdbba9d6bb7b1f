package repository

import (
	"context"

	"yt-autopublish/domain/model"
)

// IYouTube defines the hosting API operations a publishing run needs
type IYouTube interface {
	// ListRecentUploads returns the authenticated channel's uploads, most recent first
	ListRecentUploads(ctx context.Context, limit int64) ([]model.VideoSummary, error)
	GetVideoDetails(ctx context.Context, videoID string) (*model.VideoSummary, error)
	UpdateVideo(ctx context.Context, payload *model.UpdatePayload) (*model.VideoSummary, error)
}
