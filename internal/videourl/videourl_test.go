package videourl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVideoID_CommonShapes(t *testing.T) {
	for _, raw := range []string{
		"https://www.youtube.com/watch?v=ggLajT7aMMk",
		"https://www.youtube.com/watch?v=ggLajT7aMMk&t=123s&si=abc",
		"https://m.youtube.com/watch?v=ggLajT7aMMk",
		"youtu.be/ggLajT7aMMk",
		"https://youtu.be/ggLajT7aMMk?t=120",
		"https://youtube.com/embed/ggLajT7aMMk",
		"https://youtube.com/v/ggLajT7aMMk",
		"https://youtube.com/shorts/ggLajT7aMMk?feature=share",
		"https://youtube.com/live/ggLajT7aMMk",
	} {
		id, err := ExtractVideoID(raw)
		require.NoError(t, err, raw)
		require.Equal(t, "ggLajT7aMMk", id, raw)
	}
}

func TestExtractVideoID_Rejections(t *testing.T) {
	for _, raw := range []string{
		"",
		"https://example.com/watch?v=ggLajT7aMMk",
		"https://youtube.com/",
		"https://youtu.be/",
		"not a url at all",
	} {
		_, err := ExtractVideoID(raw)
		require.ErrorIs(t, err, ErrNotRecognized, raw)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	id, err := ExtractPlaylistID("https://www.youtube.com/playlist?list=PLabc123")
	require.NoError(t, err)
	require.Equal(t, "PLabc123", id)

	// A watch URL with a list param is not a playlist add.
	_, err = ExtractPlaylistID("https://www.youtube.com/watch?v=ggLajT7aMMk&list=PLabc123")
	require.ErrorIs(t, err, ErrNotRecognized)

	_, err = ExtractPlaylistID("https://www.youtube.com/playlist")
	require.ErrorIs(t, err, ErrNotRecognized)
}

func TestClassify(t *testing.T) {
	kind, id, err := Classify("https://www.youtube.com/playlist?list=PLabc123")
	require.NoError(t, err)
	require.Equal(t, KindPlaylist, kind)
	require.Equal(t, "PLabc123", id)

	kind, id, err = Classify("https://youtu.be/ggLajT7aMMk")
	require.NoError(t, err)
	require.Equal(t, KindVideo, kind)
	require.Equal(t, "ggLajT7aMMk", id)

	_, _, err = Classify("https://vimeo.com/12345")
	require.ErrorIs(t, err, ErrNotRecognized)
}
