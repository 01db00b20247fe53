package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/ports"
)

// AdminUserHandler exposes user management to admins.
type AdminUserHandler struct {
	service ports.UserService
}

func NewAdminUserHandler(service ports.UserService) *AdminUserHandler {
	return &AdminUserHandler{service: service}
}

// List handles GET /admin/users. Optional query parameters: department,
// active (true/false).
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        department  query     string  false  "Filter by department"
// @Param        active      query     bool    false  "Filter by active flag"
// @Success      200         {array}   userResponse
// @Failure      403         {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	filter := ports.UserFilter{Department: c.QueryParam("department")}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be true or false")
		}
		filter.Active = &active
	}

	users, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Create handles POST /admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Password:   req.Password,
		Role:       req.Role,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /admin/users/:id.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Partial patch"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [put]
func (h *AdminUserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		Active:     req.Active,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /admin/users/:id. Deleting one's own account is
// rejected.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  deleteUserResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), caller); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteUserResponse{Success: true, Message: "user deleted"})
}
