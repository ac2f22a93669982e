// Package fakegateway reproduces the remote helpdesk backend's HTTP surface
// for local development and integration tests: the same paths, query
// parameters, response envelopes, and bearer-token discipline the hosted
// backend uses.
package fakegateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/fakegateway/handler"
	"github.com/faveomobile/helpdesk-client/internal/fakegateway/middleware"
	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
)

// NewRouter builds the Echo instance with every backend route registered.
func NewRouter(directory store.Directory, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("fakegateway"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(directory, jwtSecret)
	userHandler := handler.NewUserHandler(directory)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Credential routes (no token required) ---
	e.POST("/v3/api/login", authHandler.Login)
	e.POST("/v3/user/create/api", authHandler.Register)
	e.POST("/api/password/email", authHandler.ForgotPassword)

	// --- Directory routes (bearer token required) ---
	e.GET("/v3/user-export-data", userHandler.Export, authMiddleware)
	e.GET("/v3/api/get-user/view/:id", userHandler.View, authMiddleware)

	// --- Operational endpoints ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// newHTTPErrorHandler renders every uncaught error as the backend's
// {"message": ...} envelope, logging unexpected ones without leaking details.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, map[string]string{"message": fmt.Sprintf("%v", he.Message)})
			return
		}

		switch {
		case errors.Is(err, store.ErrNotFound):
			_ = c.JSON(http.StatusNotFound, map[string]string{"message": "user not found"})
		case errors.Is(err, store.ErrExists):
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": "This email address is already registered."})
		case errors.Is(err, store.ErrBadCredentials):
			_ = c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		default:
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		}
	}
}
