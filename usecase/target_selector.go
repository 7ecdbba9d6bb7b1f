package usecase

import "yt-autopublish/domain/model"

// SelectTarget returns the first upload still waiting for publication.
// At most limit items are considered (limit <= 0 considers all of them).
// The bool is false when nothing qualifies, which is a normal outcome.
func SelectTarget(uploads []model.VideoSummary, limit int) (model.VideoSummary, bool) {
	if limit > 0 && len(uploads) > limit {
		uploads = uploads[:limit]
	}
	for _, video := range uploads {
		if awaitingPublication(video.Visibility) {
			return video, true
		}
	}
	return model.VideoSummary{}, false
}

func awaitingPublication(v model.Visibility) bool {
	switch v {
	case model.VisibilityPrivate, model.VisibilityUnlisted:
		return true
	case model.VisibilityPublic, model.VisibilityUnknown:
		return false
	default:
		return false
	}
}
