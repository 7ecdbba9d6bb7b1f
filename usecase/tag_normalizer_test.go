package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"yt-autopublish/usecase"
)

var filler = []string{"shorts", "viral", "trending", "motivation", "explore", "youtube", "daily", "inspiration", "life", "success"}

func assertUnique(t *testing.T, tags []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
}

func TestTagNormalizer_SplitsBlobAndPads(t *testing.T) {
	n := usecase.TagNormalizer{Min: 8, Max: 30, Filler: filler}

	tags := n.Normalize([]string{"#a #b #c"})

	assert.Equal(t, []string{"a", "b", "c"}, tags[:3])
	assert.GreaterOrEqual(t, len(tags), 8)
	assert.LessOrEqual(t, len(tags), 30)
	assertUnique(t, tags)
	assert.Equal(t, []string{"a", "b", "c", "shorts", "viral", "trending", "motivation", "explore"}, tags)
}

func TestTagNormalizer_TruncatesToMax(t *testing.T) {
	n := usecase.TagNormalizer{Min: 8, Max: 30, Filler: filler}
	input := make([]string, 40)
	for i := range input {
		input[i] = fmt.Sprintf("tag%02d", i)
	}

	tags := n.Normalize(input)

	assert.Len(t, tags, 30)
	assert.Equal(t, input[:30], tags)
}

func TestTagNormalizer_CaseSensitiveDedup(t *testing.T) {
	n := usecase.TagNormalizer{Min: 0, Max: 30}

	tags := n.Normalize([]string{"Learning", "learning", "Learning", "go", "", "go"})

	assert.Equal(t, []string{"Learning", "learning", "go"}, tags)
}

func TestTagNormalizer_FillerSkipsExisting(t *testing.T) {
	n := usecase.TagNormalizer{Min: 4, Max: 30, Filler: []string{"viral", "shorts", "daily", "life"}}

	tags := n.Normalize([]string{"viral", "cats"})

	assert.Equal(t, []string{"viral", "cats", "shorts", "daily"}, tags)
}

func TestTagNormalizer_FillerExhausted(t *testing.T) {
	n := usecase.TagNormalizer{Min: 8, Max: 30, Filler: []string{"one", "two"}}

	assert.Equal(t, []string{"x", "one", "two"}, n.Normalize([]string{"x"}))
}

func TestTagNormalizer_MultiElementListUsedAsGiven(t *testing.T) {
	n := usecase.TagNormalizer{Min: 0, Max: 30}

	tags := n.Normalize([]string{"#a b", "c"})

	assert.Equal(t, []string{"#a b", "c"}, tags)
}

func TestTagNormalizer_MergeExisting(t *testing.T) {
	n := usecase.TagNormalizer{Min: 0, Max: 4}

	tags := n.Merge([]string{"#a #b"}, []string{"b", "old", "older", "oldest"})

	assert.Equal(t, []string{"a", "b", "old", "older"}, tags)
}
