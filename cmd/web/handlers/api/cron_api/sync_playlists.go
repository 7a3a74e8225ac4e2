// package cron_api hosts the externally scheduled triggers.
package cron_api

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
)

// SyncRunner runs one full playlist reconciliation pass and reports the
// number of newly discovered videos.
type SyncRunner interface {
	Run(ctx context.Context, userID int32) (int, error)
}

// HandleSyncPlaylists triggers a playlist sync run. The caller must present
// the shared cron secret as a bearer token.
func HandleSyncPlaylists(syncer SyncRunner, secret string, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !bearerMatches(c.Request().Header.Get(echo.HeaderAuthorization), secret) {
			return c.String(401, "Unauthorized")
		}

		count, err := syncer.Run(c.Request().Context(), userID)
		if err != nil {
			slog.Error("playlist sync failed", "error", err)
			return common.Message(c, 500, "Cron job failed.")
		}

		return c.JSON(200, map[string]any{
			"message": fmt.Sprintf("Sync completed. %d new videos added.", count),
			"count":   count,
		})
	}
}

func bearerMatches(header, secret string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}
