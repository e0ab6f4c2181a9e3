package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/models"
)

type createTaskRequest struct {
	Text     string `json:"text" validate:"required"`
	Reminder int64  `json:"reminder" validate:"omitempty,gt=0"`
}

// updateTaskRequest carries partial updates; nil fields are left unchanged.
type updateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Reminder  *int64  `json:"reminder"`
}

func (s *Server) createTask(c echo.Context) error {
	req := new(createTaskRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	task := &models.Task{
		UserID:   currentUserID(c),
		Text:     req.Text,
		Reminder: req.Reminder,
	}
	if err := s.store.CreateTask(c.Request().Context(), task); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.store.ListTasks(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) updateTask(c echo.Context) error {
	req := new(updateTaskRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	task, err := s.store.GetTask(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return err
	}
	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Reminder != nil {
		task.Reminder = *req.Reminder
	}

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	if err := s.store.DeleteTask(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
