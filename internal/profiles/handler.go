package profiles

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dhruv40689/resume-builder/internal/enhance"
	"github.com/Dhruv40689/resume-builder/internal/render"
	"github.com/Dhruv40689/resume-builder/internal/shared/server/middleware"
	"github.com/Dhruv40689/resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.create)
	rg.POST("/profiles/manual", h.createManual)
	rg.GET("/profiles", h.list)
	rg.GET("/profiles/current", h.current)
	rg.GET("/profiles/:id", h.get)
	rg.POST("/profiles/:id/score", h.score)
	rg.POST("/profiles/:id/enhance", h.enhance)
	rg.GET("/profiles/:id/export", h.export)
}

// create accepts either a multipart file upload or a JSON body with raw
// resume text.
func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.createFromUpload(c, userID)
		return
	}

	var req CreateFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	rec, err := h.Svc.CreateFromText(c.Request.Context(), userID, req.Text, strings.TrimSpace(req.FileName))
	if err != nil {
		h.respondCreateError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) createFromUpload(c *gin.Context, userID string) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	rec, err := h.Svc.CreateFromUpload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrMalformedResume):
		respond.Error(c, http.StatusUnprocessableEntity, "malformed_resume", "unable to parse resume content", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create profile", nil)
	}
}

func (h *Handler) createManual(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ManualProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name plus email or phone are required", nil)
		return
	}

	rec, err := h.Svc.CreateManual(c.Request.Context(), userID, req.ToProfile())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create profile", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list profiles", nil)
		return
	}

	resp := make([]ProfileResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) score(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ScoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	rec, err := h.Svc.Score(c.Request.Context(), userID, c.Param("id"), strings.TrimSpace(req.JobDescription), strings.TrimSpace(req.TargetRole))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toScoreResponse(rec))
}

func (h *Handler) enhance(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req EnhanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	rec, err := h.Svc.Enhance(c.Request.Context(), userID, c.Param("id"), enhance.Options{
		TargetRole:     strings.TrimSpace(req.TargetRole),
		JobDescription: strings.TrimSpace(req.JobDescription),
	})
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	data, fileName, err := h.Svc.Export(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, render.DocxMimeType, data)
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
}
