package repository

import (
	"context"

	"yt-autopublish/domain/model"
)

// IPublishAudit persists a write-only trail of publishing runs
type IPublishAudit interface {
	Record(ctx context.Context, record *model.PublishRecord) error
}

// IPublishEvents broadcasts successful publications to downstream consumers
type IPublishEvents interface {
	Published(ctx context.Context, event *model.PublishedEvent) (string, error)
}
