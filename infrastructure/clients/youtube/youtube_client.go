package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"yt-autopublish/domain/model"
	"yt-autopublish/domain/repository"
	"yt-autopublish/infrastructure/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the API has no video for the requested ID
var ErrVideoNotFound = errors.New("video not found")

// Client represents YouTube API client
type Client struct {
	service *youtube.Service
}

// Config represents YouTube API configuration
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// Endpoint overrides the API base URL; empty means the public API
	Endpoint string
	Timeout  time.Duration
}

// NewYouTubeClient creates a client authorised by an OAuth2 refresh token.
// Access tokens are minted and refreshed by the oauth2 token source.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IYouTube, error) {
	if config == nil || config.ClientID == "" || config.RefreshToken == "" {
		return nil, fmt.Errorf("youtube client requires client id and refresh token")
	}
	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes: []string{
			youtube.YoutubeScope,
			youtube.YoutubeForceSslScope,
		},
		Endpoint: google.Endpoint,
	}

	// Token refreshes go through a bounded client too
	base := &http.Client{Timeout: config.Timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	httpClient := oauth2Config.Client(ctx, &oauth2.Token{RefreshToken: config.RefreshToken})
	httpClient.Timeout = config.Timeout

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}
	return NewYouTubeClientWithOptions(ctx, opts...)
}

// NewYouTubeClientWithOptions builds a client from raw API options
func NewYouTubeClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// ListRecentUploads retrieves the authenticated channel's latest uploads with
// their snippet and status, most recent first.
func (c *Client) ListRecentUploads(ctx context.Context, limit int64) ([]model.VideoSummary, error) {
	call := c.service.Search.List([]string{"id"}).
		ForMine(true).
		Type("video").
		Order("date")
	if limit > 0 {
		call = call.MaxResults(limit)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search uploads: %w", err)
	}

	var videoIDs []string
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return []model.VideoSummary{}, nil
	}

	videos, err := c.listVideos(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	// videos.list does not promise to echo the request order
	byID := make(map[string]model.VideoSummary, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	out := make([]model.VideoSummary, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// GetVideoDetails retrieves details for a specific video
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*model.VideoSummary, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}
	videos, err := c.listVideos(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}
	return &videos[0], nil
}

// UpdateVideo replaces the snippet and status of a video in one call
func (c *Client) UpdateVideo(ctx context.Context, payload *model.UpdatePayload) (*model.VideoSummary, error) {
	if payload == nil || payload.ID == "" {
		return nil, fmt.Errorf("video ID is required")
	}

	video := &youtube.Video{
		Id: payload.ID,
		Snippet: &youtube.VideoSnippet{
			Title:        payload.Title,
			Description:  payload.Description,
			CategoryId:   payload.CategoryID,
			ChannelTitle: payload.ChannelTitle,
			Tags:         payload.Tags,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           payload.Visibility.String(),
			SelfDeclaredMadeForKids: payload.MadeForKids,
			Embeddable:              payload.Embeddable,
			License:                 payload.License,
			// false values are dropped by omitempty unless forced
			ForceSendFields: []string{"SelfDeclaredMadeForKids", "Embeddable"},
		},
	}

	updated, err := c.service.Videos.Update([]string{"snippet", "status"}, video).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	summary := toVideoSummary(updated)
	return &summary, nil
}

func (c *Client) listVideos(ctx context.Context, ids []string) ([]model.VideoSummary, error) {
	response, err := c.service.Videos.List([]string{"snippet", "status"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}
	out := make([]model.VideoSummary, 0, len(response.Items))
	for _, video := range response.Items {
		out = append(out, toVideoSummary(video))
	}
	return out, nil
}

// toVideoSummary converts YouTube API video to our model
func toVideoSummary(video *youtube.Video) model.VideoSummary {
	summary := model.VideoSummary{ID: video.Id}
	if video.Snippet != nil {
		summary.Title = video.Snippet.Title
		summary.Description = video.Snippet.Description
		summary.CategoryID = video.Snippet.CategoryId
		summary.ChannelTitle = video.Snippet.ChannelTitle
		summary.Tags = video.Snippet.Tags
	}
	if video.Status != nil {
		visibility, err := model.ParseVisibility(video.Status.PrivacyStatus)
		if err != nil {
			logger.GetLogger().WithField("videoId", video.Id).WithField("error", err).Debug("unrecognised privacy status")
		}
		summary.Visibility = visibility
	}
	return summary
}
