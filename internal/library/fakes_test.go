package library

import (
	"context"
	"fmt"

	"youtopia.dev/youtopia/internal/ytapi"
)

// fakeCatalog serves canned upstream metadata.
type fakeCatalog struct {
	videos        map[string]ytapi.Video
	playlists     map[string]ytapi.Playlist
	playlistItems map[string][]string
}

func (f *fakeCatalog) Video(ctx context.Context, id string) (*ytapi.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, fmt.Errorf("video %q: %w", id, ytapi.ErrNotFound)
	}
	return &v, nil
}

func (f *fakeCatalog) Videos(ctx context.Context, ids []string) ([]ytapi.Video, error) {
	var out []ytapi.Video
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Playlist(ctx context.Context, id string) (*ytapi.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, fmt.Errorf("playlist %q: %w", id, ytapi.ErrNotFound)
	}
	return &p, nil
}

func (f *fakeCatalog) PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	return f.playlistItems[playlistID], nil
}

// memStore is an in-memory Store with the same conflict semantics as the
// Postgres implementation.
type memStore struct {
	videos        map[string]NewVideo // keyed by upstream ID
	videoPlaylist map[string]int32    // upstream ID -> owning playlist row
	playlists     []PlaylistRef
	notifications []string
	batchDeletes  [][]DeleteItem
	nextID        int32
}

func newMemStore() *memStore {
	return &memStore{
		videos:        map[string]NewVideo{},
		videoPlaylist: map[string]int32{},
	}
}

func (m *memStore) CreateVideo(ctx context.Context, v NewVideo) (bool, error) {
	if _, ok := m.videos[v.YouTubeID]; ok {
		return false, nil
	}
	m.videos[v.YouTubeID] = v
	return true, nil
}

func (m *memStore) CreatePlaylist(ctx context.Context, p NewPlaylist) (int32, bool, error) {
	for _, existing := range m.playlists {
		if existing.YouTubeID == p.YouTubePlaylistID {
			return 0, false, nil
		}
	}
	m.nextID++
	m.playlists = append(m.playlists, PlaylistRef{
		ID:        m.nextID,
		YouTubeID: p.YouTubePlaylistID,
		Title:     p.Title,
	})
	return m.nextID, true, nil
}

func (m *memStore) AddPlaylistVideos(ctx context.Context, playlistID int32, videos []NewVideo) (int, error) {
	inserted := 0
	for _, v := range videos {
		if _, ok := m.videos[v.YouTubeID]; ok {
			continue
		}
		m.videos[v.YouTubeID] = v
		m.videoPlaylist[v.YouTubeID] = playlistID
		inserted++
	}
	return inserted, nil
}

func (m *memStore) Playlists(ctx context.Context) ([]PlaylistRef, error) {
	return m.playlists, nil
}

func (m *memStore) PlaylistVideoIDs(ctx context.Context, playlistID int32) ([]string, error) {
	var ids []string
	for id, owner := range m.videoPlaylist {
		if owner == playlistID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) AddDiscoveredVideos(ctx context.Context, playlist PlaylistRef, userID int32, videos []NewVideo) (int, error) {
	inserted := 0
	for _, v := range videos {
		if _, ok := m.videos[v.YouTubeID]; ok {
			continue
		}
		m.videos[v.YouTubeID] = v
		m.videoPlaylist[v.YouTubeID] = playlist.ID
		m.notifications = append(m.notifications, NotificationMessage(v.Title, playlist.Title))
		inserted++
	}
	return inserted, nil
}

func (m *memStore) BatchDelete(ctx context.Context, userID int32, items []DeleteItem) error {
	m.batchDeletes = append(m.batchDeletes, items)
	return nil
}
