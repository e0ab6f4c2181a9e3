package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/attendance"
	"github.com/campuscompass/compass/internal/models"
)

type markAttendanceRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Subject string `json:"subject" validate:"required"`
	Present *bool  `json:"present" validate:"required"`
}

func (s *Server) markAttendance(c echo.Context) error {
	req := new(markAttendanceRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	record := &models.AttendanceRecord{
		UserID:  currentUserID(c),
		Date:    req.Date,
		Subject: req.Subject,
		Present: *req.Present,
	}
	if err := s.store.MarkAttendance(c.Request().Context(), record); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

func (s *Server) listAttendance(c echo.Context) error {
	records, err := s.store.ListAttendance(c.Request().Context(),
		currentUserID(c), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) attendanceSummary(c echo.Context) error {
	records, err := s.store.ListAttendance(c.Request().Context(),
		currentUserID(c), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attendance.Summarize(records))
}
