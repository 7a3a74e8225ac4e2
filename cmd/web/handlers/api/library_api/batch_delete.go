package library_api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/library"
)

// HandleBatchDelete removes a selection of videos and playlists in one
// all-or-nothing transaction.
func HandleBatchDelete(store library.Store, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			Items []library.DeleteItem `json:"items"`
		}
		if err := c.Bind(&req); err != nil {
			return common.Message(c, 400, "Invalid request payload.")
		}
		if len(req.Items) == 0 {
			return common.Message(c, 400, "No items selected for deletion.")
		}

		err := library.BatchDelete(c.Request().Context(), store, userID, req.Items)
		if err != nil {
			if errors.Is(err, library.ErrInvalidInput) {
				return common.Message(c, 400, "Invalid request payload.")
			}
			slog.Error("batch delete failed", "error", err)
			return common.Message(c, 500, "Failed to remove items.")
		}

		return common.Message(c, 200, fmt.Sprintf("%d item(s) removed successfully.", len(req.Items)))
	}
}
