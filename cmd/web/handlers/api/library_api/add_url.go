// package library_api provides handlers for the combined library surface:
// URL ingestion, the library listing and batch deletion.
package library_api

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/library"
	"youtopia.dev/youtopia/internal/videourl"
	"youtopia.dev/youtopia/internal/ytapi"
)

// HandleAddURL ingests a pasted video or playlist URL.
func HandleAddURL(ing *library.Ingestor) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			URL string `json:"url"`
		}
		if err := c.Bind(&req); err != nil {
			return common.Message(c, 400, "Invalid request payload.")
		}
		if strings.TrimSpace(req.URL) == "" {
			return common.Message(c, 400, "URL is required.")
		}

		res, err := ing.AddURL(c.Request().Context(), req.URL)
		if err != nil {
			var dup *library.AlreadyExistsError
			switch {
			case errors.As(err, &dup):
				if dup.Kind == videourl.KindPlaylist {
					return common.Message(c, 409, fmt.Sprintf("Playlist %q is already in your library.", dup.Title))
				}
				return common.Message(c, 409, fmt.Sprintf("Video %q is already in your library.", dup.Title))
			case errors.Is(err, library.ErrInvalidInput):
				return common.Message(c, 400, "Invalid YouTube URL")
			case errors.Is(err, ytapi.ErrNotFound):
				return common.Message(c, 404, "Video not found on YouTube.")
			default:
				slog.Error("add-url failed", "error", err)
				return common.Message(c, 500, "An error occurred while adding the URL.")
			}
		}

		if res.Kind == videourl.KindPlaylist {
			return common.Message(c, 200, fmt.Sprintf("Playlist %q added successfully!", res.Title))
		}
		return common.Message(c, 200, "Video added successfully!")
	}
}
