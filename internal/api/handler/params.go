package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// intParam parses an integer path parameter. Non-integer values are treated
// as unroutable, matching an {id:int} route constraint, so the caller gets a
// 404 rather than a 400.
func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return v, nil
}
