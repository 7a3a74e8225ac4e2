// Package videourl classifies user-submitted YouTube URLs and extracts the
// upstream video or playlist identifier from them.
package videourl

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotRecognized is returned when a URL matches neither a playlist nor a
// single-video pattern.
var ErrNotRecognized = errors.New("not a recognized youtube url")

// Kind is the classification of a submitted URL.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// Well-known YouTube host aliases. Keep this conservative: only hosts that
// are truly the same site from a user perspective.
var youtubeHosts = map[string]struct{}{
	"youtube.com":       {},
	"www.youtube.com":   {},
	"m.youtube.com":     {},
	"music.youtube.com": {},
	"youtu.be":          {},
}

// Classify decides whether a URL is a playlist add or a single-video add and
// returns the extracted upstream ID for it. A URL that carries a "list" query
// parameter on a playlist page wins over any video ID present in the same URL.
func Classify(raw string) (Kind, string, error) {
	if id, err := ExtractPlaylistID(raw); err == nil {
		return KindPlaylist, id, nil
	}
	id, err := ExtractVideoID(raw)
	if err != nil {
		return "", "", err
	}
	return KindVideo, id, nil
}

// ExtractPlaylistID pulls the playlist ID out of a playlist URL, i.e. one
// whose path is /playlist and which carries a "list" query parameter.
func ExtractPlaylistID(raw string) (string, error) {
	u, err := parseYouTubeURL(raw)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(u.Path, "/playlist") {
		return "", ErrNotRecognized
	}
	id := strings.TrimSpace(u.Query().Get("list"))
	if id == "" {
		return "", ErrNotRecognized
	}
	return id, nil
}

// ExtractVideoID extracts the video ID from any of the common YouTube URL
// shapes: watch?v=, youtu.be/, /embed/, /v/, /shorts/ and /live/.
func ExtractVideoID(raw string) (string, error) {
	u, err := parseYouTubeURL(raw)
	if err != nil {
		return "", err
	}

	if normalizeHost(u.Host) == "youtu.be" {
		if id := firstPathSegment(u.Path); id != "" {
			return id, nil
		}
		return "", ErrNotRecognized
	}

	if id := strings.TrimSpace(u.Query().Get("v")); id != "" {
		return id, nil
	}

	for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
		if strings.HasPrefix(u.Path, prefix) {
			if id := firstPathSegment(strings.TrimPrefix(u.Path, prefix)); id != "" {
				return id, nil
			}
		}
	}

	return "", ErrNotRecognized
}

func parseYouTubeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNotRecognized
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrNotRecognized
	}
	if u.Scheme == "" {
		// Best effort: treat schemeless input as https.
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return nil, ErrNotRecognized
		}
	}

	if _, ok := youtubeHosts[normalizeHost(u.Host)]; !ok {
		return nil, ErrNotRecognized
	}
	return u, nil
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if i := strings.IndexByte(h, ':'); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSuffix(h, ".")
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
