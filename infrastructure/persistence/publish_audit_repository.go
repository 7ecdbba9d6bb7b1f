package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"yt-autopublish/domain/model"
	"yt-autopublish/infrastructure/logger"
)

// EnsurePublishAuditSchema creates the publish_runs table if not exists
func EnsurePublishAuditSchema(ctx context.Context, db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS publish_runs (
        id BIGSERIAL PRIMARY KEY,
        run_id TEXT NOT NULL,
        video_id TEXT NOT NULL,
        title TEXT NOT NULL,
        outcome TEXT NOT NULL,
        error_message TEXT,
        created_at TIMESTAMPTZ NOT NULL
    )`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create publish_runs table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_publish_runs_video_id ON publish_runs(video_id)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_publish_runs_video_id")
	}
	return nil
}

// PublishAuditRepository appends one row per run that selected a video
type PublishAuditRepository struct{ db *sql.DB }

func NewPublishAuditRepository(db *sql.DB) *PublishAuditRepository {
	return &PublishAuditRepository{db: db}
}

// Record inserts the row and fills in its ID and CreatedAt
func (r *PublishAuditRepository) Record(ctx context.Context, record *model.PublishRecord) error {
	if r.db == nil || record == nil {
		return nil
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	var errMsg sql.NullString
	if record.Error != nil {
		errMsg = sql.NullString{String: *record.Error, Valid: true}
	}
	q := `INSERT INTO publish_runs (run_id, video_id, title, outcome, error_message, created_at)
          VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	row := r.db.QueryRowContext(ctx, q, record.RunID, record.VideoID, record.Title, string(record.Outcome), errMsg, record.CreatedAt)
	if err := row.Scan(&record.ID); err != nil {
		return fmt.Errorf("insert publish_runs: %w", err)
	}
	return nil
}
