package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplabs/shop-api/internal/api/metrics"
	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

type userRegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=3,max=20"`
	// Role is accepted but ignored; self-registered accounts are always employees.
	Role string `json:"role"`
}

type userUpdateRequest struct {
	ID       int    `json:"id"`
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=3,max=20"`
	Role     string `json:"role" validate:"required,oneof=manager employee"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// UserHandler handles HTTP requests for user accounts and login.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users. Manager only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Register handles POST /v1/users. Open to anonymous callers; the role is
// forced to employee server-side and the password is never echoed back.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRegisterRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req userRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /v1/users/:id. Manager only; full replace with the same
// path/body id rule as categories.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      userUpdateRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// Same ordering as category updates: the path/body id rule is decided
	// before payload validation.
	if req.ID != id {
		return domain.ErrUserNotFound
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Login handles POST /v1/users/login.
//
// @Summary      Authenticate and receive a token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{User: user, Token: token})
}
