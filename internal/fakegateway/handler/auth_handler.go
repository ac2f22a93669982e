package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
)

// AuthHandler serves the credential endpoints. All inputs arrive as query
// parameters, matching the hosted backend's contract.
type AuthHandler struct {
	directory store.Directory
	jwtSecret string
}

func NewAuthHandler(directory store.Directory, jwtSecret string) *AuthHandler {
	return &AuthHandler{directory: directory, jwtSecret: jwtSecret}
}

// Login handles POST /v3/api/login?email=..&password=..
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid parameters"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, messageResponse{Message: err.Error()})
	}

	user, err := h.directory.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid credentials"})
		}
		return err
	}

	token, err := issueToken(user, h.jwtSecret)
	if err != nil {
		return err
	}

	var resp loginResponse
	resp.Data.Token = token
	resp.Data.User = toPayload(user)
	return c.JSON(http.StatusOK, resp)
}

// Register handles POST /v3/user/create/api with the fixed
// scenario/category/panel parameters.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid parameters"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, messageResponse{Message: err.Error()})
	}

	if _, err := h.directory.CreateRequester(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		if errors.Is(err, store.ErrExists) {
			return c.JSON(http.StatusUnprocessableEntity, messageResponse{Message: "This email address is already registered."})
		}
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Account created successfully."})
}

// ForgotPassword handles POST /api/password/email?email=..
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid parameters"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, messageResponse{Message: err.Error()})
	}

	// The hosted backend does not reveal whether the address exists.
	return c.JSON(http.StatusOK, messageResponse{Message: "We have e-mailed your password reset link!"})
}
