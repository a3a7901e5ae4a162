package handler

import (
	"context"
	"net/http"

	"pitchside_backend/internal/users/transport"
	"pitchside_backend/platform/httpkit"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest = "invalid request"
	msgInvalidUserID  = "Invalid user id"
)

// UserService is the service surface the HTTP layer depends on.
type UserService interface {
	Register(ctx context.Context, req transport.RegisterRequest) (transport.UserResponse, error)
	Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error)
	List(ctx context.Context) ([]transport.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (transport.UserResponse, error)
	Update(ctx context.Context, callerID, targetID uuid.UUID, req transport.UpdateUserRequest) (transport.UpdatedUserResponse, error)
	Delete(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) error
}

type Handler struct {
	svc      UserService
	validate *validator.Validator
}

func New(svc UserService, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, users)
}

// Protected echoes the identity resolved from the bearer token. The frontend
// uses it to check whether a stored token is still valid.
func (h *Handler) Protected(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	httpkit.OK(c, gin.H{
		"message": "This is a protected route",
		"user": gin.H{
			"id":    id.UserID().String(),
			"email": id.Email(),
			"role":  id.Role(),
		},
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidUserID, nil)
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), targetID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, user)
}

func (h *Handler) Update(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidUserID, nil)
		return
	}

	var req transport.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id.UserID(), targetID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidUserID, nil)
		return
	}

	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id.UserID(), id.Role(), targetID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "User deleted successfully"})
}

// Me returns the authenticated user's own record.
func (h *Handler) Me(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, user)
}
