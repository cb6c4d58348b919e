// Package httphandler contains the REST boundary of the admin API.
package httphandler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	userapp "github.com/lllypuk/userdeck/internal/application/user"
	"github.com/lllypuk/userdeck/internal/domain/errs"
	"github.com/lllypuk/userdeck/internal/domain/user"
	"github.com/lllypuk/userdeck/internal/infrastructure/httpserver"
)

// Boundary error messages; part of the external contract.
const (
	msgInvalidQuery  = "Invalid query parameters"
	msgInvalidUserID = "Invalid user ID"
	msgInvalidBody   = "Invalid user data"
	msgEmailExists   = "Email already exists"
	msgUserNotFound  = "User not found"
)

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Email      string  `json:"email"      validate:"required"`
	Role       string  `json:"role"       validate:"required"`
	Status     string  `json:"status"     validate:"required"`
	LastLogin  *string `json:"lastLogin"`
	DateJoined string  `json:"dateJoined" validate:"required"`
}

// UpdateUserRequest is the body of PUT /api/users/:id. Every field is
// optional; absent fields are left untouched.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
	LastLogin  *string `json:"lastLogin"`
	DateJoined *string `json:"dateJoined"`
}

// UserResponse represents a user record in API responses.
type UserResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	LastLogin  *string `json:"lastLogin"`
	DateJoined string  `json:"dateJoined"`
}

// UsersListResponse is the envelope of GET /api/users.
type UsersListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// UserService defines the interface for user operations.
// Declared on the consumer side per project guidelines.
type UserService interface {
	// ListUsers runs the filter/search/pagination pipeline.
	ListUsers(ctx context.Context, query userapp.ListUsersQuery) (userapp.UsersListResult, error)

	// GetUser gets a user by ID.
	GetUser(ctx context.Context, query userapp.GetUserQuery) (userapp.Result, error)

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, cmd userapp.CreateUserCommand) (userapp.Result, error)

	// UpdateUser partially updates a user.
	UpdateUser(ctx context.Context, cmd userapp.UpdateUserCommand) (userapp.Result, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, cmd userapp.DeleteUserCommand) error
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers user routes with the router.
func (h *UserHandler) RegisterRoutes(r *httpserver.Router) {
	r.API().GET("/users", h.List)
	r.API().GET("/users/:id", h.Get)
	r.API().POST("/users", h.Create)
	r.API().PUT("/users/:id", h.Update)
	r.API().DELETE("/users/:id", h.Delete)
}

// List handles GET /api/users.
// Bound-checks page/pageSize before the store is touched; malformed values
// never reach the pipeline.
func (h *UserHandler) List(c echo.Context) error {
	query := userapp.ListUsersQuery{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Role:   c.QueryParam("role"),
	}

	page, ok := parsePagingParam(c.QueryParam("page"), userapp.DefaultPage)
	if !ok || page < 1 {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidQuery)
	}
	pageSize, ok := parsePagingParam(c.QueryParam("pageSize"), userapp.DefaultPageSize)
	if !ok || pageSize < 1 || pageSize > userapp.MaxPageSize {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidQuery)
	}
	query.Page = page
	query.PageSize = pageSize

	result, err := h.userService.ListUsers(c.Request().Context(), query)
	if err != nil {
		return handleUserError(c, err)
	}

	return httpserver.RespondOK(c, toListResponse(result))
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidUserID)
	}

	result, err := h.userService.GetUser(c.Request().Context(), userapp.GetUserQuery{UserID: id})
	if err != nil {
		return handleUserError(c, err)
	}

	return httpserver.RespondOK(c, ToUserResponse(result.User))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
	}
	if valErr := c.Validate(&req); valErr != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
	}

	status, err := user.ParseStatus(req.Status)
	if err != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
	}

	cmd := userapp.CreateUserCommand{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Status:     status,
		LastLogin:  req.LastLogin,
		DateJoined: req.DateJoined,
	}

	result, err := h.userService.CreateUser(c.Request().Context(), cmd)
	if err != nil {
		return handleUserError(c, err)
	}

	return httpserver.RespondCreated(c, ToUserResponse(result.User))
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidUserID)
	}

	var req UpdateUserRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
	}

	patch := user.Patch{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		LastLogin:  req.LastLogin,
		DateJoined: req.DateJoined,
	}
	if req.Status != nil {
		status, parseErr := user.ParseStatus(*req.Status)
		if parseErr != nil {
			return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
		}
		patch.Status = &status
	}

	result, err := h.userService.UpdateUser(c.Request().Context(), userapp.UpdateUserCommand{
		UserID: id,
		Patch:  patch,
	})
	if err != nil {
		return handleUserError(c, err)
	}

	return httpserver.RespondOK(c, ToUserResponse(result.User))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidUserID)
	}

	if err := h.userService.DeleteUser(c.Request().Context(), userapp.DeleteUserCommand{UserID: id}); err != nil {
		return handleUserError(c, err)
	}

	return httpserver.RespondNoContent(c)
}

// Helper functions

func parseUserID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// parsePagingParam coerces an optional query parameter into an int,
// falling back to def when absent.
func parsePagingParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func handleUserError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		return httpserver.RespondMessage(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, userapp.ErrEmailAlreadyExists):
		return httpserver.RespondMessage(c, http.StatusConflict, msgEmailExists)
	case errors.Is(err, errs.ErrInvalidInput):
		return httpserver.RespondMessage(c, http.StatusBadRequest, msgInvalidBody)
	default:
		return httpserver.RespondError(c, err)
	}
}

// ToUserResponse converts a domain User to UserResponse.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       u.Role(),
		Status:     string(u.Status()),
		LastLogin:  u.LastLogin(),
		DateJoined: u.DateJoined(),
	}
}

func toListResponse(result userapp.UsersListResult) UsersListResponse {
	users := make([]UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, ToUserResponse(u))
	}
	return UsersListResponse{
		Users:      users,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
}
