package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yt-autopublish/domain/model"
	"yt-autopublish/domain/repository"
	"yt-autopublish/infrastructure/logger"
)

// Notifier announces a published video to the operator chat
type Notifier struct {
	messenger     repository.IMessenger
	chatID        string
	categoryLabel string
	timeout       time.Duration
}

// NewNotifier returns a notifier; a nil messenger or empty chat ID turns it into a no-op
func NewNotifier(messenger repository.IMessenger, chatID, categoryLabel string, timeout time.Duration) *Notifier {
	return &Notifier{messenger: messenger, chatID: chatID, categoryLabel: categoryLabel, timeout: timeout}
}

// Notify sends the announcement and reports whether it was delivered.
// Failures are logged and never returned.
func (n *Notifier) Notify(ctx context.Context, videoID, displayName string) bool {
	if n == nil || n.messenger == nil || n.chatID == "" {
		logger.GetLogger().WithField("videoId", videoID).Info("Messaging credentials missing, skipping notification")
		return false
	}
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	text := RenderNotification(model.NotificationMessage{ChannelDisplayName: displayName, VideoID: videoID}, n.categoryLabel)
	if err := n.messenger.SendMessage(ctx, n.chatID, text, true); err != nil {
		logger.GetLogger().WithField("videoId", videoID).WithField("error", err).Warn("Failed to send notification")
		return false
	}
	logger.GetLogger().WithField("videoId", videoID).Info("Notification sent")
	return true
}

var markdownStripper = strings.NewReplacer("*", "", "_", "", "`", "", "[", "", "]", "")

// RenderNotification renders the fixed Markdown announcement
func RenderNotification(msg model.NotificationMessage, categoryLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📢 *%s*\n\n", markdownStripper.Replace(msg.ChannelDisplayName))
	b.WriteString("✅ Successful! The video is now public.\n")
	if categoryLabel != "" {
		fmt.Fprintf(&b, "📂 Category: %s\n", markdownStripper.Replace(categoryLabel))
	}
	// IDs may contain underscores, which legacy Markdown reads as italics
	fmt.Fprintf(&b, "\n🔗 %s", strings.ReplaceAll(model.WatchURL(msg.VideoID), "_", `\_`))
	return b.String()
}
