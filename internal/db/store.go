package db

import (
	"context"
	"fmt"

	"youtopia.dev/youtopia/internal/library"
)

// This file adapts DatabaseConnection to library.Store, keeping the
// transactional batch operations next to the SQL they depend on.

var _ library.Store = (*DatabaseConnection)(nil)

// CreateVideo inserts a standalone video; an upstream-ID conflict reports
// created=false instead of an error.
func (db *DatabaseConnection) CreateVideo(ctx context.Context, v library.NewVideo) (bool, error) {
	return insertVideo(ctx, db.Pool, videoInsert{
		YouTubeID:    v.YouTubeID,
		Title:        v.Title,
		ThumbnailURL: v.ThumbnailURL,
		DurationISO:  v.DurationISO,
		ChannelTitle: v.ChannelTitle,
		PlaylistID:   nil,
	})
}

// CreatePlaylist inserts a playlist row; conflict on the upstream ID reports
// created=false.
func (db *DatabaseConnection) CreatePlaylist(ctx context.Context, p library.NewPlaylist) (int32, bool, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO playlists (youtube_playlist_id, title, thumbnail_url, channel_title)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (youtube_playlist_id) DO NOTHING
		RETURNING id
	`, p.YouTubePlaylistID, p.Title, textOrNull(p.ThumbnailURL), textOrNull(p.ChannelTitle))

	var id int32
	if err := row.Scan(&id); err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

// AddPlaylistVideos inserts a playlist's member videos in one transaction,
// skipping members whose upstream ID is already stored.
func (db *DatabaseConnection) AddPlaylistVideos(ctx context.Context, playlistID int32, videos []library.NewVideo) (int, error) {
	if len(videos) == 0 {
		return 0, nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, v := range videos {
		ok, err := insertVideo(ctx, tx, videoInsert{
			YouTubeID:    v.YouTubeID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			DurationISO:  v.DurationISO,
			ChannelTitle: v.ChannelTitle,
			PlaylistID:   playlistID,
		})
		if err != nil {
			return 0, fmt.Errorf("insert video %s: %w", v.YouTubeID, err)
		}
		if ok {
			inserted++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// Playlists lists all stored playlists for the sync run.
func (db *DatabaseConnection) Playlists(ctx context.Context) ([]library.PlaylistRef, error) {
	rows, err := db.Query(ctx, `SELECT id, youtube_playlist_id, title FROM playlists`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []library.PlaylistRef
	for rows.Next() {
		var p library.PlaylistRef
		if err := rows.Scan(&p.ID, &p.YouTubeID, &p.Title); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

// PlaylistVideoIDs returns the upstream IDs already stored for a playlist.
func (db *DatabaseConnection) PlaylistVideoIDs(ctx context.Context, playlistID int32) ([]string, error) {
	rows, err := db.Query(ctx, `SELECT youtube_id FROM videos WHERE playlist_id = $1`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddDiscoveredVideos inserts newly discovered playlist members together with
// their notifications in one transaction. A notification is written only for
// a video row that was actually inserted, so a re-run cannot duplicate
// notifications for videos it already holds.
func (db *DatabaseConnection) AddDiscoveredVideos(ctx context.Context, playlist library.PlaylistRef, userID int32, videos []library.NewVideo) (int, error) {
	if len(videos) == 0 {
		return 0, nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, v := range videos {
		ok, err := insertVideo(ctx, tx, videoInsert{
			YouTubeID:    v.YouTubeID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			DurationISO:  v.DurationISO,
			ChannelTitle: v.ChannelTitle,
			PlaylistID:   playlist.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("insert video %s: %w", v.YouTubeID, err)
		}
		if !ok {
			continue
		}

		message := library.NotificationMessage(v.Title, playlist.Title)
		if _, err := tx.Exec(ctx, `
			INSERT INTO notifications (user_id, message) VALUES ($1, $2)
		`, userID, message); err != nil {
			return 0, fmt.Errorf("insert notification: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// BatchDelete removes a mixed set of videos and playlists inside a single
// transaction. Any failure, including an unrecognized kind, rolls the whole
// batch back.
func (db *DatabaseConnection) BatchDelete(ctx context.Context, userID int32, items []library.DeleteItem) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		switch item.Type {
		case "video":
			if _, err := tx.Exec(ctx, `DELETE FROM userprogress WHERE video_id = $1 AND user_id = $2`, item.ID, userID); err != nil {
				return fmt.Errorf("delete progress for video %d: %w", item.ID, err)
			}
			if _, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, item.ID); err != nil {
				return fmt.Errorf("delete video %d: %w", item.ID, err)
			}
		case "playlist":
			if _, err := tx.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, item.ID); err != nil {
				return fmt.Errorf("delete playlist %d: %w", item.ID, err)
			}
		default:
			return fmt.Errorf("%w: unsupported item type %q", library.ErrInvalidInput, item.Type)
		}
	}

	return tx.Commit(ctx)
}
