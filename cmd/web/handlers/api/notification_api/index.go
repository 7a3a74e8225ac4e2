// package notification_api lists sync notifications for the user.
package notification_api

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/db"
)

// listLimit caps the notification feed at the most recent entries.
const listLimit = 15

type notification struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Age       string    `json:"age"`
}

// HandleIndex returns the user's latest notifications, newest first.
func HandleIndex(dbc *db.DatabaseConnection, userID int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := dbc.ListNotifications(c.Request().Context(), userID, listLimit)
		if err != nil {
			slog.Error("list notifications failed", "error", err)
			return common.Message(c, 500, "Failed to fetch notifications")
		}

		out := make([]notification, 0, len(rows))
		for _, n := range rows {
			out = append(out, notification{
				ID:        n.ID,
				UserID:    n.UserID,
				Message:   n.Message,
				CreatedAt: n.CreatedAt,
				Age:       humanize.Time(n.CreatedAt),
			})
		}

		return c.JSON(200, out)
	}
}
