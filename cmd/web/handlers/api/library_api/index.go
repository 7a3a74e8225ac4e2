package library_api

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
	"youtopia.dev/youtopia/pkg/utils/format"
)

type libraryItem struct {
	db.LibraryItem
	DurationDisplay string `json:"duration_display,omitempty"`
}

// HandleIndex returns the combined library listing, optionally filtered by a
// case-insensitive title search.
func HandleIndex(dbc *db.DatabaseConnection, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		search := strings.TrimSpace(c.QueryParam("search"))

		items, err := dbc.ListLibrary(c.Request().Context(), userID, search)
		if err != nil {
			slog.Error("library listing failed", "error", err)
			return common.Message(c, 500, "Failed to fetch library")
		}

		out := make([]libraryItem, 0, len(items))
		for _, item := range items {
			entry := libraryItem{LibraryItem: item}
			if item.DurationISO.Valid {
				entry.DurationDisplay = format.ISODuration(item.DurationISO.String)
			}
			out = append(out, entry)
		}

		return c.JSON(200, out)
	}
}
