// Package transcript proxies transcript requests to the local AI service.
// The response body is forwarded to the caller verbatim.
package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:5001"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch asks the AI service for a video's transcript and returns the raw
// response body and status code. Non-2xx responses are returned as-is so the
// caller can forward the service's own error payload.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]byte, int, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, 0, fmt.Errorf("videoID is required")
	}

	payload, err := json.Marshal(map[string]string{"videoId": videoID})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/get-transcript", bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("transcript service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read transcript response: %w", err)
	}

	return body, resp.StatusCode, nil
}
