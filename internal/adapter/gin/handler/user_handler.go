package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "rest-user-service/internal/domain/user"
	"rest-user-service/internal/usecase/user"
	apperrors "rest-user-service/pkg/errors"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse represents the HTTP projection of a user. The name fields
// serialize as null when unset; full_name and email are derived on read.
type UserResponse struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func toResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName,
		Email:     u.Email,
	}
}

// ListUsers handles GET /user/
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{})
	if err != nil {
		h.log.Error("ListUsers failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	// An empty store is an empty array, not null and not an error
	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, toResponse(u))
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /user/. On success the body is empty and the
// assigned id is not returned; callers re-fetch to learn it.
func (h *UserHandler) CreateUser(c *gin.Context) {
	incoming, err := DecodeFields(c.Request)
	if err != nil {
		h.log.Warn("invalid create user request", zap.Error(err))
		h.handleError(c, err)
		return
	}

	fields, err := domain.FieldsFromMap(incoming)
	if err != nil {
		h.log.Warn("create user field mismatch", zap.Error(err))
		h.handleError(c, err)
		return
	}

	if _, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{Fields: fields}); err != nil {
		h.log.Error("CreateUser failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// GetUser handles GET /user/:id/
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.log.Warn("GetUser failed", zap.Int64("id", id), zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(resp.User))
}

// DeleteUser handles DELETE /user/:id/
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.log.Warn("DeleteUser failed", zap.Int64("id", id), zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// userID parses the id path parameter, writing the error response itself
// when the value is not an integer.
func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid user id", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User id must be an integer"})
		return 0, false
	}
	return id, true
}

// handleError converts taxonomy errors to HTTP responses. Every failure
// carries a free-text message; the status comes from the error kind, and
// today every kind reports 400.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), ErrorResponse{Error: err.Error()})
}
