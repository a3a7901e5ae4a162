package handler

import (
	"context"
	"net/http"

	"pitchside_backend/internal/squads/transport"
	"pitchside_backend/platform/httpkit"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SquadService is the service surface the HTTP layer depends on.
type SquadService interface {
	Save(ctx context.Context, userID uuid.UUID, req transport.SaveSquadRequest) (transport.SquadResponse, error)
	MySquads(ctx context.Context, userID uuid.UUID) ([]transport.SquadResponse, error)
	Delete(ctx context.Context, userID, squadID uuid.UUID) error
}

type Handler struct {
	svc      SquadService
	validate *validator.Validator
}

func New(svc SquadService, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) Save(c *gin.Context) {
	var req transport.SaveSquadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
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

	squad, err := h.svc.Save(c.Request.Context(), id.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, gin.H{
		"message": "Squad saved successfully",
		"squad":   squad,
	})
}

func (h *Handler) MySquads(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	squads, err := h.svc.MySquads(c.Request.Context(), id.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, squads)
}

func (h *Handler) Delete(c *gin.Context) {
	squadID, err := uuid.Parse(c.Param("squadId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid squad id", nil)
		return
	}

	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id.UserID(), squadID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "Squad deleted successfully"})
}
