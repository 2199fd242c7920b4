package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Wire formats for the date and time fields of events and event requests.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func parseUint(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// pageParams reads the ?page and ?limit query parameters. Missing or
// malformed values come back as zero; the service layer applies the
// defaults and the upper bound.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must match the format "+dateLayout)
	}
	return t, nil
}
