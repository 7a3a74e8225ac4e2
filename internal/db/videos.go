package db

import (
	"context"
	"fmt"
)

// GetVideo fetches a video row by its local ID. Returns pgx.ErrNoRows when
// absent.
func (db *DatabaseConnection) GetVideo(ctx context.Context, id int32) (*Video, error) {
	row := db.QueryRow(ctx, `
		SELECT id, youtube_id, title, thumbnail_url, duration_iso, channel_title, playlist_id, created_at
		FROM videos
		WHERE id = $1
	`, id)

	var v Video
	err := row.Scan(&v.ID, &v.YouTubeID, &v.Title, &v.ThumbnailURL, &v.DurationISO, &v.ChannelTitle, &v.PlaylistID, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVideo removes a video and the user's progress rows for it. The two
// statements run in one transaction.
func (db *DatabaseConnection) DeleteVideo(ctx context.Context, userID, videoID int32) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM userprogress WHERE video_id = $1 AND user_id = $2`, videoID, userID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	return tx.Commit(ctx)
}

// insertVideo inserts one video row, treating an upstream-ID conflict as a
// no-op. Returns true when a row was actually inserted.
func insertVideo(ctx context.Context, q querier, v videoInsert) (bool, error) {
	row := q.QueryRow(ctx, `
		INSERT INTO videos (youtube_id, title, thumbnail_url, duration_iso, channel_title, playlist_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (youtube_id) DO NOTHING
		RETURNING id
	`, v.YouTubeID, v.Title, textOrNull(v.ThumbnailURL), textOrNull(v.DurationISO), textOrNull(v.ChannelTitle), v.PlaylistID)

	var id int32
	if err := row.Scan(&id); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type videoInsert struct {
	YouTubeID    string
	Title        string
	ThumbnailURL string
	DurationISO  string
	ChannelTitle string
	PlaylistID   any // int32 or nil for standalone videos
}
