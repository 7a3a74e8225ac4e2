// Package library implements the ingestion and sync workflows: turning a
// pasted URL into stored rows and reconciling stored playlists against their
// live upstream membership.
package library

import (
	"context"
	"fmt"
	"log/slog"

	"youtopia.dev/youtopia/internal/videourl"
	"youtopia.dev/youtopia/internal/ytapi"
)

// AddResult reports what an ingestion created.
type AddResult struct {
	Kind  videourl.Kind
	Title string
	// VideoCount is the number of member videos stored for a playlist add.
	VideoCount int
}

// Ingestor adds videos and playlists to the library from pasted URLs.
type Ingestor struct {
	store   Store
	catalog Catalog
}

func NewIngestor(store Store, catalog Catalog) *Ingestor {
	return &Ingestor{store: store, catalog: catalog}
}

// AddURL classifies a submitted URL and ingests it. Duplicate items surface
// as *AlreadyExistsError; unrecognized URLs as ErrInvalidInput; catalog
// misses as ytapi.ErrNotFound.
func (ing *Ingestor) AddURL(ctx context.Context, rawURL string) (*AddResult, error) {
	kind, upstreamID, err := videourl.Classify(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch kind {
	case videourl.KindPlaylist:
		return ing.addPlaylist(ctx, upstreamID)
	default:
		return ing.addVideo(ctx, upstreamID)
	}
}

func (ing *Ingestor) addVideo(ctx context.Context, videoID string) (*AddResult, error) {
	video, err := ing.catalog.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	created, err := ing.store.CreateVideo(ctx, NewVideo{
		YouTubeID:    video.ID,
		Title:        video.Title,
		ThumbnailURL: video.ThumbnailURL,
		DurationISO:  video.DurationISO,
		ChannelTitle: video.ChannelTitle,
	})
	if err != nil {
		return nil, fmt.Errorf("store video: %w", err)
	}
	if !created {
		return nil, &AlreadyExistsError{Kind: videourl.KindVideo, Title: video.Title}
	}

	slog.Info("video added", "youtube_id", video.ID, "title", video.Title)
	return &AddResult{Kind: videourl.KindVideo, Title: video.Title}, nil
}

func (ing *Ingestor) addPlaylist(ctx context.Context, playlistID string) (*AddResult, error) {
	playlist, err := ing.catalog.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	rowID, created, err := ing.store.CreatePlaylist(ctx, NewPlaylist{
		YouTubePlaylistID: playlist.ID,
		Title:             playlist.Title,
		ThumbnailURL:      playlist.ThumbnailURL,
		ChannelTitle:      playlist.ChannelTitle,
	})
	if err != nil {
		return nil, fmt.Errorf("store playlist: %w", err)
	}
	if !created {
		// Existing playlist: leave its members alone.
		return nil, &AlreadyExistsError{Kind: videourl.KindPlaylist, Title: playlist.Title}
	}

	memberIDs, err := ing.catalog.PlaylistVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	videos, err := ing.fetchVideos(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	inserted, err := ing.store.AddPlaylistVideos(ctx, rowID, videos)
	if err != nil {
		return nil, fmt.Errorf("store playlist videos: %w", err)
	}

	slog.Info("playlist added",
		"youtube_playlist_id", playlist.ID,
		"title", playlist.Title,
		"videos", inserted)
	return &AddResult{Kind: videourl.KindPlaylist, Title: playlist.Title, VideoCount: inserted}, nil
}

func (ing *Ingestor) fetchVideos(ctx context.Context, ids []string) ([]NewVideo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	metadata, err := ing.catalog.Videos(ctx, ids)
	if err != nil {
		return nil, err
	}

	videos := make([]NewVideo, 0, len(metadata))
	for _, v := range metadata {
		videos = append(videos, NewVideo{
			YouTubeID:    v.ID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			DurationISO:  v.DurationISO,
			ChannelTitle: v.ChannelTitle,
		})
	}
	return videos, nil
}

var _ Catalog = (*ytapi.Client)(nil)
