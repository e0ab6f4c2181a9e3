package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/auth"
	"github.com/campuscompass/compass/internal/models"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) register(c echo.Context) error {
	req := new(registerRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.authenticator.Register(c.Request().Context(), req.Name, req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: user, Token: token})
}

func (s *Server) login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.authenticator.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user, Token: token})
}

func (s *Server) currentUser(c echo.Context) error {
	user, err := s.store.GetUserByID(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	if user == nil {
		// valid token for an account that no longer exists
		return auth.ErrInvalidToken
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.store.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
