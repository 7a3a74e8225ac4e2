package ytapi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

func TestBestThumbnail_Ladder(t *testing.T) {
	require.Equal(t, "", bestThumbnail(nil))
	require.Equal(t, "", bestThumbnail(&youtube.ThumbnailDetails{}))

	details := &youtube.ThumbnailDetails{
		Default: &youtube.Thumbnail{Url: "default.jpg"},
		Medium:  &youtube.Thumbnail{Url: "medium.jpg"},
		High:    &youtube.Thumbnail{Url: "high.jpg"},
	}
	require.Equal(t, "high.jpg", bestThumbnail(details))

	details.Maxres = &youtube.Thumbnail{Url: "maxres.jpg"}
	require.Equal(t, "maxres.jpg", bestThumbnail(details))

	require.Equal(t, "default.jpg", bestThumbnail(&youtube.ThumbnailDetails{
		Default: &youtube.Thumbnail{Url: "default.jpg"},
	}))
}

func TestWrapAPIError(t *testing.T) {
	err := wrapAPIError("videos.list", &googleapi.Error{Code: 404})
	require.ErrorIs(t, err, ErrNotFound)

	err = wrapAPIError("videos.list", &googleapi.Error{Code: 503})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(t.Context(), "")
	require.Error(t, err)
}
