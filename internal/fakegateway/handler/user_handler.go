package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
)

// UserHandler serves the authenticated directory endpoints.
type UserHandler struct {
	directory store.Directory
}

func NewUserHandler(directory store.Directory) *UserHandler {
	return &UserHandler{directory: directory}
}

// Export handles GET /v3/user-export-data — the paginated role-filtered
// directory listing. Role filters arrive as indexed parameters
// (roles[0]=user&roles[1]=agent).
func (h *UserHandler) Export(c echo.Context) error {
	roles := []string{}
	for i := 0; ; i++ {
		r := c.QueryParam("roles[" + strconv.Itoa(i) + "]")
		if r == "" {
			break
		}
		roles = append(roles, r)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	users, err := h.directory.List(c.Request().Context(), store.ListQuery{
		Roles:    roles,
		SortDesc: c.QueryParam("sort-order") != "asc",
		Limit:    limit,
		Page:     page,
		Query:    c.QueryParam("search-query"),
	})
	if err != nil {
		return err
	}

	var resp exportResponse
	resp.Data.Data = make([]userPayload, 0, len(users))
	for i := range users {
		resp.Data.Data = append(resp.Data.Data, *toPayload(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// View handles GET /v3/api/get-user/view/:id — single-record lookup.
func (h *UserHandler) View(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "user not found"})
	}

	user, err := h.directory.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, viewResponse{Data: toPayload(user)})
}
