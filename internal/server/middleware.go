package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/auth"
)

const (
	// userIDKey is the echo context key for the authenticated user ID.
	userIDKey = "user_id"
	// usernameKey is the echo context key for the authenticated username.
	usernameKey = "username"
)

// currentUserID extracts the authenticated user ID from the request context.
// Returns empty string on un-authed routes.
func currentUserID(c echo.Context) string {
	uid, _ := c.Get(userIDKey).(string)
	return uid
}

// requireAuth validates the Bearer JWT and stores the user identity in the
// request context. The identity travels with the request; there is no
// session global.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return auth.ErrMissingToken
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return auth.ErrInvalidToken
		}

		claims, err := s.jwt.Validate(parts[1])
		if err != nil {
			return err
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(usernameKey, claims.Username)
		return next(c)
	}
}

// requestLogger logs every request with structured fields.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			status, _ = errorStatus(err)
		}

		logFn := slog.Info
		if status >= http.StatusInternalServerError {
			logFn = slog.Error
		} else if status >= http.StatusBadRequest {
			logFn = slog.Warn
		}
		logFn("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"user_id", currentUserID(c),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
