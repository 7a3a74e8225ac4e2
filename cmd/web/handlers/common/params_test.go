package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func paramContext(value string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(value)
	return c
}

func TestRequireIDParam(t *testing.T) {
	id, err := RequireIDParam(paramContext("42"), "id")
	require.NoError(t, err)
	require.Equal(t, int32(42), id)

	for _, bad := range []string{"", "abc", "-1", "0", "4.2", "99999999999999"} {
		_, err := RequireIDParam(paramContext(bad), "id")
		require.Error(t, err, bad)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, 400, httpErr.Code)
	}
}
