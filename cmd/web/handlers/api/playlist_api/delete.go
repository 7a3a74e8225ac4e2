package playlist_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
)

// HandleDelete removes a playlist. Member videos and progress rows cascade.
func HandleDelete(dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}

		if err := dbc.DeletePlaylist(c.Request().Context(), id); err != nil {
			slog.Error("delete playlist failed", "playlist_id", id, "error", err)
			return common.Message(c, 500, "Failed to remove playlist")
		}

		return common.Message(c, 200, "Playlist removed successfully")
	}
}
