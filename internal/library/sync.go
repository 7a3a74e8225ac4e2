package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Syncer reconciles every stored playlist against its live upstream
// membership, storing videos that appeared since the last run and emitting a
// notification for each one.
type Syncer struct {
	store   Store
	catalog Catalog
}

func NewSyncer(store Store, catalog Catalog) *Syncer {
	return &Syncer{store: store, catalog: catalog}
}

// Run processes all stored playlists sequentially and returns the total
// number of newly discovered videos. A failure in any playlist aborts the
// run; there is no per-playlist isolation.
func (s *Syncer) Run(ctx context.Context, userID int32) (int, error) {
	runID := uuid.New()
	log := slog.With("sync_run", runID.String())
	log.Info("starting playlist sync")

	playlists, err := s.store.Playlists(ctx)
	if err != nil {
		return 0, fmt.Errorf("list playlists: %w", err)
	}

	total := 0
	for _, playlist := range playlists {
		inserted, err := s.syncPlaylist(ctx, playlist, userID)
		if err != nil {
			return total, fmt.Errorf("sync playlist %q: %w", playlist.Title, err)
		}
		total += inserted
	}

	log.Info("playlist sync finished", "playlists", len(playlists), "new_videos", total)
	return total, nil
}

func (s *Syncer) syncPlaylist(ctx context.Context, playlist PlaylistRef, userID int32) (int, error) {
	upstreamIDs, err := s.catalog.PlaylistVideoIDs(ctx, playlist.YouTubeID)
	if err != nil {
		return 0, err
	}

	storedIDs, err := s.store.PlaylistVideoIDs(ctx, playlist.ID)
	if err != nil {
		return 0, err
	}

	newIDs := missingFrom(upstreamIDs, storedIDs)
	if len(newIDs) == 0 {
		return 0, nil
	}
	slog.Info("new videos found", "playlist", playlist.Title, "count", len(newIDs))

	metadata, err := s.catalog.Videos(ctx, newIDs)
	if err != nil {
		return 0, err
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

	return s.store.AddDiscoveredVideos(ctx, playlist, userID, videos)
}

// missingFrom returns the members of upstream not present in stored.
// Set semantics; duplicates in upstream collapse to one entry.
func missingFrom(upstream, stored []string) []string {
	known := make(map[string]struct{}, len(stored))
	for _, id := range stored {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range upstream {
		if _, ok := known[id]; ok {
			continue
		}
		known[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}

// NotificationMessage is the text stored for a newly discovered video.
func NotificationMessage(videoTitle, playlistTitle string) string {
	return fmt.Sprintf("New video %q was added to your %q playlist.", videoTitle, playlistTitle)
}
