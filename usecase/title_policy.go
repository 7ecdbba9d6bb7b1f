package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"yt-autopublish/infrastructure/logger"
)

// DefaultDatePattern matches an ISO date anywhere in a title
var DefaultDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// TitlePolicy decides whether an existing title looks like a raw camera or
// upload filename and sanitizes generated replacements.
type TitlePolicy struct {
	MinLength    int
	GenericWords []string
	DatePattern  *regexp.Regexp
	MaxLength    int
	Ellipsis     string
}

func DefaultTitlePolicy() TitlePolicy {
	return TitlePolicy{
		MinLength:    5,
		GenericWords: []string{"untitled", "upload", "new video", "my video"},
		DatePattern:  DefaultDatePattern,
		MaxLength:    70,
		Ellipsis:     "...",
	}
}

// ShouldReplace reports whether no human appears to have named the video
func (p TitlePolicy) ShouldReplace(title string) bool {
	if utf8.RuneCountInString(title) < p.MinLength {
		return true
	}
	lower := strings.ToLower(title)
	for _, word := range p.GenericWords {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	if !strings.ContainsFunc(title, unicode.IsSpace) {
		return true
	}
	if p.DatePattern != nil && p.DatePattern.MatchString(title) {
		return true
	}
	return false
}

// Build returns the title to publish and whether it was replaced. A failed
// or empty generation keeps the current title.
func (p TitlePolicy) Build(current string, generate func() (string, error)) (string, bool) {
	if generate == nil || !p.ShouldReplace(current) {
		return current, false
	}
	generated, err := generate()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Title generation failed, keeping original title")
		return current, false
	}
	title := p.Sanitize(generated)
	if title == "" {
		logger.GetLogger().Warn("Title generation returned nothing usable, keeping original title")
		return current, false
	}
	return title, true
}

var quoteStripper = strings.NewReplacer(`"`, "", "'", "")

// Sanitize removes quotes and cuts the title to MaxLength runes
func (p TitlePolicy) Sanitize(s string) string {
	s = strings.TrimSpace(quoteStripper.Replace(s))
	return truncateRunes(s, p.MaxLength, p.Ellipsis)
}

func truncateRunes(s string, max int, ellipsis string) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	marker := []rune(ellipsis)
	if len(marker) >= max {
		return string(runes[:max])
	}
	return string(runes[:max-len(marker)]) + ellipsis
}
