package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/auth"
	"github.com/campuscompass/compass/internal/ledger"
	"github.com/campuscompass/compass/internal/storage"
)

// errorStatus maps a domain error to the HTTP status and response payload it
// should produce. Shared by the error handler and the middleware that reports
// request status.
func errorStatus(err error) (int, interface{}) {
	var echoErr *echo.HTTPError
	var verr *ledger.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &echoErr):
		return echoErr.Code, echoErr.Message
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			fields[f.Field] = f.Error
		}
		return http.StatusBadRequest, fields
	case errors.As(err, &fieldErrs):
		fields := make(map[string]string, len(fieldErrs))
		for _, f := range fieldErrs {
			fields[f.Field()] = "failed " + f.Tag() + " validation"
		}
		return http.StatusBadRequest, fields
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, auth.ErrUsernameExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// httpErrorHandler maps domain errors to HTTP responses in one place so the
// handlers can return them untranslated.
func httpErrorHandler(err error, c echo.Context) {
	code, message := errorStatus(err)
	if code == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	} else if fields, ok := message.(map[string]string); ok {
		message = echo.Map{"fields": fields}
	}

	if !c.Response().Committed {
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, message)
		}
		if werr != nil {
			slog.Error("failed to write error response", "error", werr)
		}
	}
}
