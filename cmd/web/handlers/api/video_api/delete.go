package video_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
)

// HandleDelete removes a video and the user's progress rows for it.
func HandleDelete(dbc *db.DatabaseConnection, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}

		if err := dbc.DeleteVideo(c.Request().Context(), userID, id); err != nil {
			slog.Error("delete video failed", "video_id", id, "error", err)
			return common.Message(c, 500, "Failed to remove video")
		}

		return common.Message(c, 200, "Video removed successfully")
	}
}
