// Package ytapi wraps the YouTube Data API v3 calls the library needs:
// video and playlist metadata lookup and playlist membership listing.
package ytapi

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var (
	// ErrNotFound means the catalog has no item with the requested ID.
	ErrNotFound = errors.New("not found on youtube")
	// ErrUnavailable means the remote call itself failed.
	ErrUnavailable = errors.New("youtube api unavailable")
)

// batchSize is the Data API page limit for videos.list ID batches and
// playlistItems.list pages.
const batchSize = 50

// Video is the metadata the library stores for a single video.
type Video struct {
	ID           string
	Title        string
	ThumbnailURL string
	DurationISO  string
	ChannelTitle string
}

// Playlist is the metadata the library stores for a playlist.
type Playlist struct {
	ID           string
	Title        string
	ThumbnailURL string
	ChannelTitle string
}

type Client struct {
	service *youtube.Service
}

// NewClient builds an API-key authenticated Data API client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{service: service}, nil
}

// Video resolves metadata for a single video ID.
func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	videos, err := c.Videos(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("video %q: %w", id, ErrNotFound)
	}
	return &videos[0], nil
}

// Videos resolves metadata for a set of video IDs, batching videos.list calls
// at the API's 50-ID limit. IDs the catalog no longer knows are silently
// absent from the result; only transport faults error out.
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	out := make([]Video, 0, len(ids))

	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))

		resp, err := c.service.Videos.
			List([]string{"snippet", "contentDetails"}).
			Id(ids[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapAPIError("videos.list", err)
		}

		for _, item := range resp.Items {
			v := Video{ID: item.Id}
			if item.Snippet != nil {
				v.Title = item.Snippet.Title
				v.ChannelTitle = item.Snippet.ChannelTitle
				v.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
			}
			if item.ContentDetails != nil {
				v.DurationISO = item.ContentDetails.Duration
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Playlist resolves metadata for a playlist ID.
func (c *Client) Playlist(ctx context.Context, id string) (*Playlist, error) {
	resp, err := c.service.Playlists.
		List([]string{"snippet"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("playlists.list", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("playlist %q: %w", id, ErrNotFound)
	}

	item := resp.Items[0]
	p := &Playlist{ID: item.Id}
	if item.Snippet != nil {
		p.Title = item.Snippet.Title
		p.ChannelTitle = item.Snippet.ChannelTitle
		p.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
	}
	return p, nil
}

// PlaylistVideoIDs lists the full membership of a playlist, following
// NextPageToken until the playlist is exhausted.
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string

	pageToken := ""
	for {
		resp, err := c.service.PlaylistItems.
			List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(batchSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapAPIError("playlistItems.list", err)
		}

		for _, item := range resp.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// bestThumbnail walks the thumbnail ladder highest-resolution first.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

func wrapAPIError(call string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return fmt.Errorf("%s: %w", call, ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", call, err, ErrUnavailable)
}
