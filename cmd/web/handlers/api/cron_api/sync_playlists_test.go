package cron_api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubSyncer struct {
	count int
	err   error
	runs  int
}

func (s *stubSyncer) Run(ctx context.Context, userID int32) (int, error) {
	s.runs++
	return s.count, s.err
}

func doSync(t *testing.T, syncer *stubSyncer, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/sync-playlists", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	err := HandleSyncPlaylists(syncer, "topsecret", 1)(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec
}

func TestHandleSyncPlaylists_WrongSecret(t *testing.T) {
	syncer := &stubSyncer{}

	for _, header := range []string{"", "Bearer wrong", "topsecret", "Basic topsecret"} {
		rec := doSync(t, syncer, header)
		require.Equal(t, 401, rec.Code, "header %q", header)
	}

	// No sync run, so no writes could have happened.
	require.Zero(t, syncer.runs)
}

func TestHandleSyncPlaylists_Success(t *testing.T) {
	syncer := &stubSyncer{count: 3}

	rec := doSync(t, syncer, "Bearer topsecret")
	require.Equal(t, 200, rec.Code)
	require.Equal(t, 1, syncer.runs)
	require.Contains(t, rec.Body.String(), "Sync completed. 3 new videos added.")
	require.Contains(t, rec.Body.String(), `"count":3`)
}

func TestHandleSyncPlaylists_RunFailure(t *testing.T) {
	syncer := &stubSyncer{err: errors.New("upstream down")}

	rec := doSync(t, syncer, "Bearer topsecret")
	require.Equal(t, 500, rec.Code)
	require.Contains(t, rec.Body.String(), "Cron job failed.")
}

func TestBearerMatches(t *testing.T) {
	require.True(t, bearerMatches("Bearer s3cret", "s3cret"))
	require.False(t, bearerMatches("Bearer s3cret ", "s3cret"))
	require.False(t, bearerMatches("bearer s3cret", "s3cret"))
	require.False(t, bearerMatches("s3cret", "s3cret"))
	require.False(t, bearerMatches("Bearer ", ""))
	require.False(t, bearerMatches(strings.Repeat("a", 100), "s3cret"))
}
