package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yt-autopublish/domain/model"
	"yt-autopublish/domain/repository"
	"yt-autopublish/infrastructure/logger"

	"github.com/google/uuid"
)

var (
	// ErrListUploads means the hosting API could not list or fetch candidates
	ErrListUploads = errors.New("failed to list uploads")
	// ErrPublish means the single update call was rejected
	ErrPublish = errors.New("failed to publish video")
)

// Settings is the immutable configuration of a publishing run
type Settings struct {
	Lookback            int64
	CategoryID          string
	ChannelName         string
	TitlePrompt         string
	DescriptionPrompt   string
	FallbackDescription string
	HashtagBlock        string
	Tags                []string
	KeepExistingTags    bool
	Title               TitlePolicy
	TagBounds           TagNormalizer
	// CallTimeout bounds every outbound call; zero means no extra bound
	CallTimeout time.Duration
	// DryRun computes every decision without updating or notifying
	DryRun bool
	// VideoID, when set, replaces the upload scan with this single video
	VideoID string
}

// IPublishUseCase runs one selection-and-publish pass
type IPublishUseCase interface {
	Run(ctx context.Context) (*model.RunReport, error)
}

type PublishUseCase struct {
	youtube  repository.IYouTube
	textGen  repository.ITextGenerator
	notifier *Notifier
	audit    repository.IPublishAudit // optional
	events   repository.IPublishEvents // optional
	settings Settings
}

// NewPublishUseCase wires the run; textGen and notifier may be nil
func NewPublishUseCase(youtube repository.IYouTube, textGen repository.ITextGenerator, notifier *Notifier, settings Settings) *PublishUseCase {
	return &PublishUseCase{
		youtube:  youtube,
		textGen:  textGen,
		notifier: notifier,
		settings: settings,
	}
}

// WithAudit enables the write-only publish trail (fluent)
func (u *PublishUseCase) WithAudit(audit repository.IPublishAudit) *PublishUseCase {
	u.audit = audit
	return u
}

// WithEvents enables publication events (fluent)
func (u *PublishUseCase) WithEvents(events repository.IPublishEvents) *PublishUseCase {
	u.events = events
	return u
}

func (u *PublishUseCase) Run(ctx context.Context) (*model.RunReport, error) {
	report := &model.RunReport{RunID: uuid.NewString()}
	log := logger.GetLogger().WithField("runId", report.RunID)

	target, found, err := u.findTarget(ctx)
	if err != nil {
		report.Outcome = model.OutcomeFailed
		return report, err
	}
	if !found {
		report.Outcome = model.OutcomeNothingToPublish
		log.Info("Nothing to publish today")
		return report, nil
	}
	report.VideoID = target.ID
	report.OriginalTitle = target.Title
	log = log.WithField("videoId", target.ID)
	log.WithField("visibility", target.Visibility.String()).Info("Target video selected")

	title, replaced := u.settings.Title.Build(target.Title, u.generator(ctx, u.settings.TitlePrompt, target.Title))
	description := BuildDescription(u.generator(ctx, u.settings.DescriptionPrompt, title), u.settings.FallbackDescription, u.settings.HashtagBlock)

	var existing []string
	if u.settings.KeepExistingTags {
		existing = target.Tags
	}
	tags := u.settings.TagBounds.Merge(u.settings.Tags, existing)

	categoryID := u.settings.CategoryID
	if categoryID == "" {
		categoryID = target.CategoryID
	}

	report.Title = title
	report.TitleReplaced = replaced
	report.Tags = tags

	if u.settings.DryRun {
		report.Outcome = model.OutcomeDryRun
		log.WithField("title", title).WithField("tags", len(tags)).WithField("description", description).Info("Dry run, skipping update")
		u.record(ctx, report, nil)
		return report, nil
	}

	if _, err := u.Publish(ctx, target, title, description, tags, categoryID); err != nil {
		report.Outcome = model.OutcomeFailed
		u.record(ctx, report, err)
		return report, err
	}
	report.Outcome = model.OutcomePublished
	log.WithField("title", title).Info("Video is now public")

	report.Notified = u.notifier.Notify(ctx, target.ID, u.displayName(target))
	u.record(ctx, report, nil)
	u.announce(ctx, report)
	return report, nil
}

// Publish sends exactly one update making target public with the new metadata
func (u *PublishUseCase) Publish(ctx context.Context, target model.VideoSummary, title, description string, tags []string, categoryID string) (*model.VideoSummary, error) {
	payload := &model.UpdatePayload{
		ID:           target.ID,
		Title:        title,
		Description:  description,
		CategoryID:   categoryID,
		ChannelTitle: target.ChannelTitle,
		Tags:         tags,
		Visibility:   model.VisibilityPublic,
		MadeForKids:  false,
		Embeddable:   true,
		License:      model.LicenseStandard,
	}

	callCtx, cancel := u.callContext(ctx)
	defer cancel()
	updated, err := u.youtube.UpdateVideo(callCtx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPublish, target.ID, err)
	}
	return updated, nil
}

func (u *PublishUseCase) findTarget(ctx context.Context) (model.VideoSummary, bool, error) {
	callCtx, cancel := u.callContext(ctx)
	defer cancel()

	if u.settings.VideoID != "" {
		video, err := u.youtube.GetVideoDetails(callCtx, u.settings.VideoID)
		if err != nil {
			return model.VideoSummary{}, false, fmt.Errorf("%w: %v", ErrListUploads, err)
		}
		target, found := SelectTarget([]model.VideoSummary{*video}, 1)
		if !found {
			logger.GetLogger().WithField("videoId", video.ID).WithField("visibility", video.Visibility.String()).Info("Requested video is not awaiting publication")
		}
		return target, found, nil
	}

	uploads, err := u.youtube.ListRecentUploads(callCtx, u.settings.Lookback)
	if err != nil {
		return model.VideoSummary{}, false, fmt.Errorf("%w: %v", ErrListUploads, err)
	}
	target, found := SelectTarget(uploads, int(u.settings.Lookback))
	return target, found, nil
}

// generator binds a prompt template to the text service; nil when there is none
func (u *PublishUseCase) generator(ctx context.Context, template, title string) func() (string, error) {
	if u.textGen == nil || template == "" {
		return nil
	}
	prompt := strings.ReplaceAll(template, "{title}", title)
	return func() (string, error) {
		callCtx, cancel := u.callContext(ctx)
		defer cancel()
		return u.textGen.Generate(callCtx, prompt)
	}
}

func (u *PublishUseCase) displayName(target model.VideoSummary) string {
	if strings.TrimSpace(target.ChannelTitle) != "" {
		return target.ChannelTitle
	}
	return u.settings.ChannelName
}

func (u *PublishUseCase) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.settings.CallTimeout > 0 {
		return context.WithTimeout(ctx, u.settings.CallTimeout)
	}
	return context.WithCancel(ctx)
}

func (u *PublishUseCase) record(ctx context.Context, report *model.RunReport, runErr error) {
	if u.audit == nil {
		return
	}
	record := &model.PublishRecord{
		RunID:     report.RunID,
		VideoID:   report.VideoID,
		Title:     report.Title,
		Outcome:   report.Outcome,
		CreatedAt: time.Now().UTC(),
	}
	if runErr != nil {
		msg := runErr.Error()
		record.Error = &msg
	}
	callCtx, cancel := u.callContext(ctx)
	defer cancel()
	if err := u.audit.Record(callCtx, record); err != nil {
		logger.GetLogger().WithField("runId", report.RunID).WithField("error", err).Warn("Failed to write publish audit record")
	}
}

func (u *PublishUseCase) announce(ctx context.Context, report *model.RunReport) {
	if u.events == nil {
		return
	}
	event := &model.PublishedEvent{
		RunID:       report.RunID,
		VideoID:     report.VideoID,
		Title:       report.Title,
		URL:         model.WatchURL(report.VideoID),
		PublishedAt: time.Now().UTC(),
	}
	callCtx, cancel := u.callContext(ctx)
	defer cancel()
	if _, err := u.events.Published(callCtx, event); err != nil {
		logger.GetLogger().WithField("runId", report.RunID).WithField("error", err).Warn("Failed to publish event")
	}
}
