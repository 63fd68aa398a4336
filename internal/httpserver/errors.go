package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/service"
)

var errInvalidID = errors.New("id is not a non-negative integer")

// parseID accepts plain digits that fit the INT id columns.
func parseID(c echo.Context) (int, error) {
	s := c.Param("id")
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return int(id), nil
}

// fail logs err under event and converts it to the matching HTTP error.
// notFound is the client message for a missing entity, internal the one
// for persistence failures.
func fail(l *slog.Logger, event string, err error, notFound, internal string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		l.Warn(event, "status", http.StatusNotFound, "reason", notFound, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		l.Error(event, "status", http.StatusInternalServerError, "reason", internal, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, internal)
	}
}

func badID(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", "id is not a non-negative integer", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "id is not a non-negative integer")
}

func badBody(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}

func missingID(l *slog.Logger, event string) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", "id is required")
	return echo.NewHTTPError(http.StatusBadRequest, "id is required")
}
