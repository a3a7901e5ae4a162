package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"pitchside_backend/internal/articles/transport"
	"pitchside_backend/platform/httpkit"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgInvalidArticleID = "Invalid article id"
)

// ArticleService is the service surface the HTTP layer depends on.
type ArticleService interface {
	Create(ctx context.Context, creatorID uuid.UUID, req transport.ArticleRequest, file *multipart.FileHeader) (transport.ArticleResponse, error)
	List(ctx context.Context, page, limit int) (transport.ArticleListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (transport.ArticleDetailResponse, error)
	Update(ctx context.Context, callerID, id uuid.UUID, req transport.ArticleRequest) (transport.ArticleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	svc      ArticleService
	validate *validator.Validator
}

func New(svc ArticleService, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Create accepts multipart form data. A "photo" file part takes precedence
// over the photo text field.
func (h *Handler) Create(c *gin.Context) {
	var req transport.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	// Absent file is fine; the photo field stays as sent.
	file, err := c.FormFile("photo")
	if err != nil {
		file = nil
	}

	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	article, err := h.svc.Create(c.Request.Context(), id.UserID(), req, file)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Article created successfully",
		"article": article,
	})
}

func (h *Handler) List(c *gin.Context) {
	page, pageOK := intQuery(c, "page", 1)
	limit, limitOK := intQuery(c, "limit", 10)
	if !pageOK || !limitOK || page < 1 || limit < 1 {
		httpkit.Error(c, http.StatusBadRequest, "Page and limit must be positive numbers.", nil)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), page, limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidArticleID, nil)
		return
	}

	article, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{
		"success": true,
		"article": article,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidArticleID, nil)
		return
	}

	var req transport.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	article, err := h.svc.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{
		"success": true,
		"message": "Article updated successfully",
		"article": article,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidArticleID, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{
		"success": true,
		"message": "Article deleted successfully",
	})
}

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
