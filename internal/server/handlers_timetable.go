package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/models"
)

func (s *Server) getTimetable(c echo.Context) error {
	timetable, err := s.store.GetTimetable(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timetable)
}

// saveTimetable replaces the whole week. The body is the timetable itself,
// keyed by weekday name.
func (s *Server) saveTimetable(c echo.Context) error {
	timetable := make(models.Timetable)
	if err := c.Bind(&timetable); err != nil {
		return err
	}
	for day := range timetable {
		if !models.IsWeekday(day) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown day: %s", day))
		}
	}

	if err := s.store.SaveTimetable(c.Request().Context(), currentUserID(c), timetable); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timetable)
}
