package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"yt-autopublish/domain/model"
)

// Mock implementations
type MockYouTube struct {
	mock.Mock
}

func (m *MockYouTube) ListRecentUploads(ctx context.Context, limit int64) ([]model.VideoSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoSummary), args.Error(1)
}

func (m *MockYouTube) GetVideoDetails(ctx context.Context, videoID string) (*model.VideoSummary, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoSummary), args.Error(1)
}

func (m *MockYouTube) UpdateVideo(ctx context.Context, payload *model.UpdatePayload) (*model.VideoSummary, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoSummary), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessage(ctx context.Context, chatID, text string, richFormatting bool) error {
	args := m.Called(ctx, chatID, text, richFormatting)
	return args.Error(0)
}

type MockPublishAudit struct {
	mock.Mock
}

func (m *MockPublishAudit) Record(ctx context.Context, record *model.PublishRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockPublishEvents struct {
	mock.Mock
}

func (m *MockPublishEvents) Published(ctx context.Context, event *model.PublishedEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}
