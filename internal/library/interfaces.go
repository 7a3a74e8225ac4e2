package library

import (
	"context"

	"youtopia.dev/youtopia/internal/ytapi"
)

// Catalog is the slice of the upstream video catalog the workflows need.
// Implemented by ytapi.Client.
type Catalog interface {
	Video(ctx context.Context, id string) (*ytapi.Video, error)
	Videos(ctx context.Context, ids []string) ([]ytapi.Video, error)
	Playlist(ctx context.Context, id string) (*ytapi.Playlist, error)
	PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error)
}

// NewVideo carries the metadata persisted for a video row.
type NewVideo struct {
	YouTubeID    string
	Title        string
	ThumbnailURL string
	DurationISO  string
	ChannelTitle string
}

// NewPlaylist carries the metadata persisted for a playlist row.
type NewPlaylist struct {
	YouTubePlaylistID string
	Title             string
	ThumbnailURL      string
	ChannelTitle      string
}

// PlaylistRef identifies a stored playlist for the sync run.
type PlaylistRef struct {
	ID        int32
	YouTubeID string
	Title     string
}

// DeleteItem is one entry of a batch-delete request.
type DeleteItem struct {
	ID   int32  `json:"id"`
	Type string `json:"type"`
}

// Store is the persistence surface the workflows run against.
// Implemented by the db package.
type Store interface {
	// CreateVideo inserts a standalone video. created is false when a row
	// with the same upstream ID already exists (conflict, not an error).
	CreateVideo(ctx context.Context, v NewVideo) (created bool, err error)

	// CreatePlaylist inserts a playlist. created is false on conflict, in
	// which case id is undefined.
	CreatePlaylist(ctx context.Context, p NewPlaylist) (id int32, created bool, err error)

	// AddPlaylistVideos inserts member videos for a playlist inside one
	// transaction, skipping upstream-ID conflicts. Returns rows inserted.
	AddPlaylistVideos(ctx context.Context, playlistID int32, videos []NewVideo) (int, error)

	// Playlists lists every stored playlist.
	Playlists(ctx context.Context) ([]PlaylistRef, error)

	// PlaylistVideoIDs returns the upstream IDs of the videos already
	// stored for a playlist.
	PlaylistVideoIDs(ctx context.Context, playlistID int32) ([]string, error)

	// AddDiscoveredVideos inserts newly discovered member videos plus one
	// notification per row actually inserted, all in one transaction.
	// Returns rows inserted.
	AddDiscoveredVideos(ctx context.Context, playlist PlaylistRef, userID int32, videos []NewVideo) (int, error)

	// BatchDelete removes the given videos and playlists in one
	// all-or-nothing transaction.
	BatchDelete(ctx context.Context, userID int32, items []DeleteItem) error
}
