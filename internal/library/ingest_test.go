package library

import (
	"testing"

	"github.com/stretchr/testify/require"
	"youtopia.dev/youtopia/internal/videourl"
	"youtopia.dev/youtopia/internal/ytapi"
)

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		videos: map[string]ytapi.Video{
			"vidA": {ID: "vidA", Title: "Alpha", DurationISO: "PT2M30S", ChannelTitle: "Chan"},
			"vidB": {ID: "vidB", Title: "Beta", DurationISO: "PT10M", ChannelTitle: "Chan"},
			"vidC": {ID: "vidC", Title: "Gamma", DurationISO: "PT33S", ChannelTitle: "Chan"},
		},
		playlists: map[string]ytapi.Playlist{
			"PLx": {ID: "PLx", Title: "Mix", ChannelTitle: "Chan"},
		},
		playlistItems: map[string][]string{
			"PLx": {"vidA", "vidB"},
		},
	}
}

func TestAddURL_Video_CreatedThenAlreadyExists(t *testing.T) {
	store := newMemStore()
	ing := NewIngestor(store, testCatalog())

	res, err := ing.AddURL(t.Context(), "https://youtu.be/vidA")
	require.NoError(t, err)
	require.Equal(t, videourl.KindVideo, res.Kind)
	require.Equal(t, "Alpha", res.Title)
	require.Len(t, store.videos, 1)

	_, err = ing.AddURL(t.Context(), "https://www.youtube.com/watch?v=vidA")
	require.ErrorIs(t, err, ErrAlreadyExists)

	var dup *AlreadyExistsError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Alpha", dup.Title)

	// Exactly one row for the upstream ID.
	require.Len(t, store.videos, 1)
}

func TestAddURL_Video_NotFoundUpstream(t *testing.T) {
	ing := NewIngestor(newMemStore(), testCatalog())

	_, err := ing.AddURL(t.Context(), "https://youtu.be/missing")
	require.ErrorIs(t, err, ytapi.ErrNotFound)
}

func TestAddURL_InvalidURL(t *testing.T) {
	ing := NewIngestor(newMemStore(), testCatalog())

	_, err := ing.AddURL(t.Context(), "https://vimeo.com/12345")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ing.AddURL(t.Context(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddURL_Playlist_IngestsMembers(t *testing.T) {
	store := newMemStore()
	ing := NewIngestor(store, testCatalog())

	res, err := ing.AddURL(t.Context(), "https://www.youtube.com/playlist?list=PLx")
	require.NoError(t, err)
	require.Equal(t, videourl.KindPlaylist, res.Kind)
	require.Equal(t, "Mix", res.Title)
	require.Equal(t, 2, res.VideoCount)
	require.Len(t, store.videos, 2)
	require.Len(t, store.playlists, 1)
}

func TestAddURL_Playlist_DuplicateLeavesMembersAlone(t *testing.T) {
	store := newMemStore()
	ing := NewIngestor(store, testCatalog())

	_, err := ing.AddURL(t.Context(), "https://www.youtube.com/playlist?list=PLx")
	require.NoError(t, err)

	videosBefore := len(store.videos)

	_, err = ing.AddURL(t.Context(), "https://www.youtube.com/playlist?list=PLx")
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.Len(t, store.videos, videosBefore)
	require.Len(t, store.playlists, 1)
}

func TestAddURL_Playlist_MemberConflictSkipped(t *testing.T) {
	store := newMemStore()
	ing := NewIngestor(store, testCatalog())

	// vidA is already in the library as a standalone video.
	_, err := ing.AddURL(t.Context(), "https://youtu.be/vidA")
	require.NoError(t, err)

	res, err := ing.AddURL(t.Context(), "https://www.youtube.com/playlist?list=PLx")
	require.NoError(t, err)
	require.Equal(t, 1, res.VideoCount)
	require.Len(t, store.videos, 2)
}
