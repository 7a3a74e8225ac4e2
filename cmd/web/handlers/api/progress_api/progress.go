// package progress_api tracks per-video playback position.
package progress_api

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
)

// Store is the slice of the persistence layer the progress handlers need.
// Implemented by db.DatabaseConnection.
type Store interface {
	GetProgress(ctx context.Context, userID, videoID int32) (int32, error)
	UpsertProgress(ctx context.Context, userID, videoID, seconds int32) error
}

// HandleGet returns the saved playback position for a video, 0 when none.
func HandleGet(store Store, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := common.RequireIDParam(c, "videoId")
		if err != nil {
			return err
		}

		seconds, err := store.GetProgress(c.Request().Context(), userID, videoID)
		if err != nil {
			slog.Error("get progress failed", "video_id", videoID, "error", err)
			return common.Message(c, 500, "Failed to get progress.")
		}

		return c.JSON(200, map[string]int32{"progress_seconds": seconds})
	}
}

// HandleSave upserts the playback position on every player tick.
func HandleSave(store Store, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			VideoID         int32 `json:"videoId"`
			ProgressSeconds int32 `json:"progressSeconds"`
		}
		if err := c.Bind(&req); err != nil {
			return common.Message(c, 400, "Invalid request payload.")
		}
		if req.VideoID <= 0 {
			return common.Message(c, 400, "videoId is required.")
		}
		if req.ProgressSeconds < 0 {
			return common.Message(c, 400, "progressSeconds must be >= 0.")
		}

		err := store.UpsertProgress(c.Request().Context(), userID, req.VideoID, req.ProgressSeconds)
		if err != nil {
			slog.Error("save progress failed", "video_id", req.VideoID, "error", err)
			return common.Message(c, 500, "Failed to save progress.")
		}

		return common.Message(c, 200, "Progress saved.")
	}
}
