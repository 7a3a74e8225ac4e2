package common

import (
	"github.com/labstack/echo/v4"
)

// Message writes the `{"message": ...}` body every non-listing endpoint
// responds with.
func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}
