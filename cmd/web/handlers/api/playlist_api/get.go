// package playlist_api provides playlist detail and delete handlers.
package playlist_api

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
	"youtopia.dev/youtopia/pkg/utils/format"
)

type playlistVideo struct {
	db.Video
	DurationDisplay string `json:"duration_display,omitempty"`
}

// HandleGet returns a playlist and its member videos, oldest first.
func HandleGet(dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		playlist, err := dbc.GetPlaylist(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.Message(c, 404, "Playlist not found")
			}
			slog.Error("fetch playlist failed", "playlist_id", id, "error", err)
			return common.Message(c, 500, "Failed to fetch playlist")
		}

		videos, err := dbc.GetPlaylistVideos(ctx, id)
		if err != nil {
			slog.Error("fetch playlist videos failed", "playlist_id", id, "error", err)
			return common.Message(c, 500, "Failed to fetch playlist")
		}

		out := make([]playlistVideo, 0, len(videos))
		for _, v := range videos {
			entry := playlistVideo{Video: v}
			if v.DurationISO.Valid {
				entry.DurationDisplay = format.ISODuration(v.DurationISO.String)
			}
			out = append(out, entry)
		}

		return c.JSON(200, map[string]any{
			"playlist": playlist,
			"videos":   out,
		})
	}
}
