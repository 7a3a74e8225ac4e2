package common

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RequireIDParam extracts a positive integer route parameter or returns a
// 400 error.
func RequireIDParam(c echo.Context, param string) (int32, error) {
	n, err := strconv.ParseInt(c.Param(param), 10, 32)
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return int32(n), nil
}
