package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"yt-autopublish/domain/model"
	"yt-autopublish/infrastructure/configuration"
	"yt-autopublish/infrastructure/logger"
	"yt-autopublish/usecase"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// errInterrupted is returned when the run is stopped by a signal
var errInterrupted = errors.New("interrupted")

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()
	os.Exit(exitCode(newApp().Run(os.Args)))
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "yt-autopublish",
		Usage: "publish the most recent private or unlisted upload with refreshed metadata",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file name without extension (default config or config-$ENV)",
				EnvVars: []string{"CONFIG_NAME"},
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "compute every decision without updating the video or notifying",
			},
			&cli.StringFlag{
				Name:  "video",
				Usage: "process this video ID instead of scanning recent uploads",
			},
		},
		Action: publishAction,
		// exit codes are decided by exitCode in main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func publishAction(c *cli.Context) error {
	// Load env from files (non-destructive; OS env still has precedence)
	if n := configuration.LoadEnvFromFile("config.env", ".env"); n > 0 {
		logger.GetLogger().WithField("count", n).Info("Loaded variables from env files")
	}

	cfg, err := configuration.Load(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, gctx := errgroup.WithContext(ctx)

	var report *model.RunReport
	g.Go(func() error {
		defer cancel()
		uc, cleanup, err := buildPublishUseCase(gctx, cfg, settingsFromConfig(cfg, c.Bool("dry-run"), c.String("video")))
		if err != nil {
			return err
		}
		defer cleanup()
		report, err = uc.Run(gctx)
		return err
	})
	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Application shutdown requested")
			return errInterrupted
		case <-gctx.Done():
			return nil
		}
	})

	err = g.Wait()
	if report != nil {
		logger.GetLogger().
			WithField("runId", report.RunID).
			WithField("outcome", report.Outcome).
			WithField("videoId", report.VideoID).
			WithField("titleReplaced", report.TitleReplaced).
			WithField("notified", report.Notified).
			Info("Run finished")
	}
	return err
}

// settingsFromConfig freezes the loaded configuration into run settings
func settingsFromConfig(cfg *configuration.Config, dryRun bool, videoID string) usecase.Settings {
	policy := usecase.DefaultTitlePolicy()
	policy.MinLength = cfg.Publish.TitleMinLength
	policy.MaxLength = cfg.Publish.TitleMaxLength
	if len(cfg.Publish.GenericTitleWords) > 0 {
		policy.GenericWords = append([]string(nil), cfg.Publish.GenericTitleWords...)
	}

	return usecase.Settings{
		Lookback:            cfg.YouTube.Lookback,
		CategoryID:          cfg.Publish.CategoryID,
		ChannelName:         cfg.Publish.ChannelName,
		TitlePrompt:         cfg.TextGen.TitlePrompt,
		DescriptionPrompt:   cfg.TextGen.DescriptionPrompt,
		FallbackDescription: cfg.TextGen.FallbackDescription,
		HashtagBlock:        cfg.Publish.HashtagBlock,
		Tags:                append([]string(nil), cfg.Publish.Tags...),
		KeepExistingTags:    cfg.Publish.KeepExistingTags,
		Title:               policy,
		TagBounds: usecase.TagNormalizer{
			Min:    cfg.Publish.MinTags,
			Max:    cfg.Publish.MaxTags,
			Filler: append([]string(nil), cfg.Publish.FillerTags...),
		},
		CallTimeout: cfg.HTTP.Timeout(),
		DryRun:      dryRun,
		VideoID:     videoID,
	}
}

// exitCode maps a run error to the process exit status
func exitCode(err error) int {
	var exitCoder cli.ExitCoder
	switch {
	case err == nil:
		return 0
	case errors.Is(err, configuration.ErrMissingCredential), errors.Is(err, configuration.ErrInvalidConfig):
		logger.GetLogger().WithField("error", err).Error("Configuration error")
		return 2
	case errors.Is(err, errInterrupted), errors.Is(err, context.Canceled):
		logger.GetLogger().WithField("error", err).Warn("Run interrupted")
		return 130
	case errors.Is(err, usecase.ErrListUploads), errors.Is(err, usecase.ErrPublish):
		logger.GetLogger().WithField("error", err).Error("Publishing run failed")
		return 1
	case errors.As(err, &exitCoder):
		if code := exitCoder.ExitCode(); code != 0 {
			return code
		}
		return 1
	default:
		logger.GetLogger().WithField("error", err).Error("Unexpected error")
		return 1
	}
}
