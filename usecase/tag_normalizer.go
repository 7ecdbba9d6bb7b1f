package usecase

import (
	"strings"
	"unicode"
)

// TagNormalizer bounds a tag list to [Min, Max] entries.
// Duplicates are detected case-sensitively; "Learning" and "learning" both survive.
type TagNormalizer struct {
	Min    int
	Max    int
	Filler []string
}

func (n TagNormalizer) Normalize(configured []string) []string {
	return n.Merge(configured, nil)
}

// Merge normalizes the configured tags followed by extra ones, e.g. the
// tags already present on the video.
func (n TagNormalizer) Merge(configured, extra []string) []string {
	candidates := expandTags(configured)
	candidates = append(candidates, extra...)

	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	add := func(tag string) {
		if strings.TrimSpace(tag) == "" {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	for _, tag := range candidates {
		add(tag)
	}
	for _, tag := range n.Filler {
		if len(out) >= n.Min {
			break
		}
		add(tag)
	}
	if n.Max > 0 && len(out) > n.Max {
		out = out[:n.Max]
	}
	return out
}

// expandTags splits a single "#a #b #c" entry that was meant to be a list
func expandTags(configured []string) []string {
	if len(configured) != 1 || !strings.ContainsFunc(strings.TrimSpace(configured[0]), unicode.IsSpace) {
		return append([]string(nil), configured...)
	}
	fields := strings.Fields(configured[0])
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if tag := strings.TrimPrefix(f, "#"); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
