// package video_api provides single-video fetch and delete handlers.
package video_api

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
)

// HandleGet returns a single video row.
func HandleGet(dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}

		video, err := dbc.GetVideo(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.Message(c, 404, "Video not found.")
			}
			slog.Error("fetch video failed", "video_id", id, "error", err)
			return common.Message(c, 500, "Failed to fetch video.")
		}

		return c.JSON(200, video)
	}
}
