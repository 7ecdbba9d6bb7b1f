package main

import (
	"context"

	"yt-autopublish/domain/repository"
	"yt-autopublish/infrastructure/clients/telegram"
	"yt-autopublish/infrastructure/clients/textgen"
	youtubeclient "yt-autopublish/infrastructure/clients/youtube"
	"yt-autopublish/infrastructure/configuration"
	"yt-autopublish/infrastructure/logger"
	"yt-autopublish/infrastructure/persistence"
	"yt-autopublish/infrastructure/pubsub"
	"yt-autopublish/usecase"
)

// buildPublishUseCase connects the run to its collaborators. Audit and
// events are optional; when they cannot be reached the run continues without them.
func buildPublishUseCase(ctx context.Context, cfg *configuration.Config, settings usecase.Settings) (*usecase.PublishUseCase, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	youtubeClient, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		ClientID:     cfg.YouTube.ClientID,
		ClientSecret: cfg.YouTube.ClientSecret,
		RefreshToken: cfg.YouTube.RefreshToken,
		Endpoint:     cfg.YouTube.Endpoint,
		Timeout:      cfg.HTTP.Timeout(),
	})
	if err != nil {
		return nil, cleanup, err
	}

	textGen := textgen.NewTextGenClient(&textgen.Config{
		BaseURL: cfg.TextGen.BaseURL,
		Model:   cfg.TextGen.Model,
		Timeout: cfg.HTTP.Timeout(),
	})

	var messenger repository.IMessenger
	if cfg.TelegramEnabled() {
		messenger = telegram.NewTelegramClient(&telegram.Config{
			BaseURL:  cfg.Telegram.BaseURL,
			BotToken: cfg.Telegram.BotToken,
			Timeout:  cfg.HTTP.Timeout(),
		})
	} else {
		logger.GetLogger().Info("Telegram credentials not configured - notifications disabled")
	}
	notifier := usecase.NewNotifier(messenger, cfg.Telegram.ChatID, cfg.Publish.CategoryLabel, cfg.HTTP.Timeout())

	uc := usecase.NewPublishUseCase(youtubeClient, textGen, notifier, settings)

	if cfg.Audit.DSN != "" {
		db, err := persistence.NewPostgreSQLDB(ctx, cfg.Audit.DSN)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Audit database not available - continuing without publish audit")
		} else {
			cleanups = append(cleanups, func() { _ = db.Close() })
			if err := persistence.EnsurePublishAuditSchema(ctx, db); err != nil {
				logger.GetLogger().WithField("error", err).Error("failed ensuring publish audit schema")
			} else {
				uc = uc.WithAudit(persistence.NewPublishAuditRepository(db))
			}
		}
	}

	if cfg.Pubsub.ProjectID != "" && cfg.Pubsub.Topic != "" {
		client, err := pubsub.NewPubSub(ctx, cfg.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without publish events")
		} else {
			publisher := pubsub.NewEventPublisher(client, cfg.Pubsub.Topic)
			cleanups = append(cleanups, func() {
				publisher.Stop()
				_ = client.Close()
			})
			uc = uc.WithEvents(publisher)
		}
	}

	return uc, cleanup, nil
}
