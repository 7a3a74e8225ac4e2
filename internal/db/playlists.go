package db

import (
	"context"
	"fmt"
)

// GetPlaylist fetches a playlist row by its local ID. Returns pgx.ErrNoRows
// when absent.
func (db *DatabaseConnection) GetPlaylist(ctx context.Context, id int32) (*Playlist, error) {
	row := db.QueryRow(ctx, `
		SELECT id, youtube_playlist_id, title, thumbnail_url, channel_title, created_at
		FROM playlists
		WHERE id = $1
	`, id)

	var p Playlist
	err := row.Scan(&p.ID, &p.YouTubePlaylistID, &p.Title, &p.ThumbnailURL, &p.ChannelTitle, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlaylistVideos lists a playlist's member videos, oldest first.
func (db *DatabaseConnection) GetPlaylistVideos(ctx context.Context, playlistID int32) ([]Video, error) {
	rows, err := db.Query(ctx, `
		SELECT id, youtube_id, title, thumbnail_url, duration_iso, channel_title, playlist_id, created_at
		FROM videos
		WHERE playlist_id = $1
		ORDER BY created_at ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []Video{}
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.YouTubeID, &v.Title, &v.ThumbnailURL, &v.DurationISO, &v.ChannelTitle, &v.PlaylistID, &v.CreatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// DeletePlaylist removes a playlist. Member videos and their progress rows go
// with it via ON DELETE CASCADE.
func (db *DatabaseConnection) DeletePlaylist(ctx context.Context, id int32) error {
	if _, err := db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}
