package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// idParam parses a positive integer path parameter, failing the request with
// a 400 when it is missing or malformed.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
