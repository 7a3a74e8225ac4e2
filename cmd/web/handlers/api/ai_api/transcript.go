// package ai_api proxies transcript requests to the local AI service.
package ai_api

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"youtopia.dev/youtopia/cmd/web/handlers/common"
	"youtopia.dev/youtopia/internal/transcript"
)

// HandleTranscript forwards a transcript request and returns the AI
// service's response verbatim.
func HandleTranscript(client *transcript.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			VideoID string `json:"videoId"`
		}
		if err := c.Bind(&req); err != nil {
			return common.Message(c, 400, "Invalid request payload.")
		}
		if strings.TrimSpace(req.VideoID) == "" {
			return common.Message(c, 400, "Video ID is required")
		}

		body, status, err := client.Fetch(c.Request().Context(), req.VideoID)
		if err != nil {
			slog.Error("transcript fetch failed", "video_id", req.VideoID, "error", err)
			return common.Message(c, 500, "Failed to connect to the AI service.")
		}

		return c.Blob(status, echo.MIMEApplicationJSON, body)
	}
}
