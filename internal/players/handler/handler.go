package handler

import (
	"context"
	"net/http"
	"strconv"

	"pitchside_backend/internal/players/transport"
	"pitchside_backend/platform/httpkit"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest    = "invalid request"
	msgInvalidPlayerID   = "Invalid player id"
	msgInvalidPagination = "Page and limit must be positive numbers."
)

// PlayerService is the service surface the HTTP layer depends on.
type PlayerService interface {
	List(ctx context.Context, page, limit int) (transport.PlayerListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (transport.Player, error)
	Top5(ctx context.Context) ([]transport.CompetitionGroup, error)
	LookupInternalID(ctx context.Context, playerID int64) (string, error)
	BySubPositions(ctx context.Context, raw string) ([]transport.Player, error)
	Filter(ctx context.Context, params transport.FilterParams) ([]transport.Player, error)
	Search(ctx context.Context, query, sortOrder string, page, limit int) (transport.SearchResponse, error)
	SearchSort(ctx context.Context, query, sortOrder string) ([]transport.Player, error)
	CreatePlayer(ctx context.Context, req transport.PlayerRequest) (transport.Player, error)
	AllPlayers(ctx context.Context) ([]transport.Player, error)
	GetByPlayerID(ctx context.Context, playerID int64) (transport.Player, error)
	UpdatePlayer(ctx context.Context, playerID int64, req transport.PlayerRequest) (transport.Player, error)
	DeletePlayer(ctx context.Context, playerID int64) error
}

type Handler struct {
	svc      PlayerService
	validate *validator.Validator
}

func New(svc PlayerService, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) List(c *gin.Context) {
	page, pageOK := intQuery(c, "page", 1)
	limit, limitOK := intQuery(c, "limit", 10)
	if !pageOK || !limitOK {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPagination, nil)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), page, limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) Top5(c *gin.Context) {
	groups, err := h.svc.Top5(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, groups)
}

func (h *Handler) Filter(c *gin.Context) {
	params := transport.FilterParams{
		SubPosition: c.Query("sub_position"),
		Name:        c.Query("Name"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
	}

	if raw := c.Query("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
			return
		}
		params.Age = &age
	}
	if raw := c.Query("XGBoost_predicted_values"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
			return
		}
		params.XGBoostPredictedValues = &value
	}

	players, err := h.svc.Filter(c.Request.Context(), params)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, players)
}

func (h *Handler) BySubPosition(c *gin.Context) {
	players, err := h.svc.BySubPositions(c.Request.Context(), c.Param("sub_position"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, players)
}

// LookupInternalID translates an external player_id into the internal id.
func (h *Handler) LookupInternalID(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("player_id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPlayerID, nil)
		return
	}

	id, err := h.svc.LookupInternalID(c.Request.Context(), playerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"_id": id})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPlayerID, nil)
		return
	}

	player, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, player)
}

func (h *Handler) Search(c *gin.Context) {
	page, pageOK := intQuery(c, "page", 1)
	limit, limitOK := intQuery(c, "limit", 10)
	if !pageOK || !limitOK || page < 1 || limit < 1 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPagination, nil)
		return
	}

	resp, err := h.svc.Search(c.Request.Context(), c.Query("query"), c.Query("sort"), page, limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// SearchSort returns the searched and sorted set without pagination.
func (h *Handler) SearchSort(c *gin.Context) {
	players, err := h.svc.SearchSort(c.Request.Context(), c.Query("query"), c.Query("sort"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, players)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	player, err := h.svc.CreatePlayer(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, gin.H{
		"message": "Player created successfully",
		"player":  player,
	})
}

func (h *Handler) All(c *gin.Context) {
	players, err := h.svc.AllPlayers(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, players)
}

func (h *Handler) GetByPlayerID(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPlayerID, nil)
		return
	}

	player, err := h.svc.GetByPlayerID(c.Request.Context(), playerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, player)
}

func (h *Handler) Update(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPlayerID, nil)
		return
	}

	var req transport.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	player, err := h.svc.UpdatePlayer(c.Request.Context(), playerID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{
		"message": "Player updated successfully",
		"player":  player,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPlayerID, nil)
		return
	}

	if err := h.svc.DeletePlayer(c.Request.Context(), playerID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "Player deleted successfully"})
}

// intQuery parses a positive-integer query param, falling back to def when
// it is absent. A non-numeric value reports failure rather than a default.
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
