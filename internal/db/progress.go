package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// GetProgress returns the stored playback position in seconds for a
// (user, video) pair, or 0 when none has been saved.
func (db *DatabaseConnection) GetProgress(ctx context.Context, userID, videoID int32) (int32, error) {
	var seconds int32
	err := db.QueryRow(ctx, `
		SELECT progress_seconds FROM userprogress
		WHERE user_id = $1 AND video_id = $2
	`, userID, videoID).Scan(&seconds)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return seconds, nil
}

// UpsertProgress overwrites the playback position for a (user, video) pair.
// One row per pair; no history.
func (db *DatabaseConnection) UpsertProgress(ctx context.Context, userID, videoID, seconds int32) error {
	_, err := db.Exec(ctx, `
		INSERT INTO userprogress (user_id, video_id, progress_seconds, last_watched_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, video_id)
		DO UPDATE SET progress_seconds = EXCLUDED.progress_seconds, last_watched_at = now()
	`, userID, videoID, seconds)
	return err
}
