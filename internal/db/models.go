package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Video is a row of the videos table.
type Video struct {
	ID           int32       `json:"id"`
	YouTubeID    string      `json:"youtube_id"`
	Title        string      `json:"title"`
	ThumbnailURL pgtype.Text `json:"thumbnail_url"`
	DurationISO  pgtype.Text `json:"duration_iso"`
	ChannelTitle pgtype.Text `json:"channel_title"`
	PlaylistID   pgtype.Int4 `json:"playlist_id"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Playlist is a row of the playlists table.
type Playlist struct {
	ID                int32       `json:"id"`
	YouTubePlaylistID string      `json:"youtube_playlist_id"`
	Title             string      `json:"title"`
	ThumbnailURL      pgtype.Text `json:"thumbnail_url"`
	ChannelTitle      pgtype.Text `json:"channel_title"`
	CreatedAt         time.Time   `json:"created_at"`
}

// Notification is a row of the notifications table.
type Notification struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// LibraryItem is one entry of the combined library listing: either a
// standalone video or a playlist, newest first.
type LibraryItem struct {
	ID              int32       `json:"id"`
	Title           string      `json:"title"`
	ThumbnailURL    pgtype.Text `json:"thumbnail_url"`
	ChannelTitle    pgtype.Text `json:"channel_title"`
	CreatedAt       time.Time   `json:"created_at"`
	FirstVideoID    pgtype.Int4 `json:"first_video_id"`
	DurationISO     pgtype.Text `json:"duration_iso"`
	ProgressSeconds pgtype.Int4 `json:"progress_seconds"`
	Type            string      `json:"type"`
}
