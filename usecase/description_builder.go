package usecase

import (
	"strings"

	"yt-autopublish/infrastructure/logger"
)

// BuildDescription always asks for a fresh description, falls back to a fixed
// sentence, then appends the hashtag block after one blank line.
func BuildDescription(generate func() (string, error), fallback, hashtagBlock string) string {
	var text string
	if generate != nil {
		generated, err := generate()
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Description generation failed, using fallback")
		} else {
			text = strings.TrimSpace(generated)
		}
	}
	if text == "" {
		text = fallback
	}
	if strings.TrimSpace(hashtagBlock) == "" {
		return text
	}
	return text + "\n\n" + hashtagBlock
}
