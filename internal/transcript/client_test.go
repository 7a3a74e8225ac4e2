package transcript

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetch_ForwardsBodyAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/get-transcript", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ggLajT7aMMk", req["videoId"])

		w.WriteHeader(200)
		w.Write([]byte(`{"transcript":"hello"}`))
	}))
	defer srv.Close()

	body, status, err := NewClient(srv.URL).Fetch(t.Context(), "ggLajT7aMMk")
	require.NoError(t, err)
	require.Equal(t, 200, status)
	require.JSONEq(t, `{"transcript":"hello"}`, string(body))
}

func TestFetch_ForwardsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(503)
		w.Write([]byte(`{"error":"model loading"}`))
	}))
	defer srv.Close()

	body, status, err := NewClient(srv.URL).Fetch(t.Context(), "ggLajT7aMMk")
	require.NoError(t, err)
	require.Equal(t, 503, status)
	require.JSONEq(t, `{"error":"model loading"}`, string(body))
}

func TestFetch_RequiresVideoID(t *testing.T) {
	_, _, err := NewClient("").Fetch(t.Context(), "  ")
	require.Error(t, err)
}
