package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"propfolio/internal/models"
	"propfolio/internal/repository"
	"propfolio/internal/service"
)

type CatalogHandler struct {
	Repo    repository.Repository
	Catalog *service.CatalogService
}

func (h *CatalogHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/catalog")
	g.GET("/firms", h.listFirms)
	g.POST("/firms", h.createFirm)
	g.DELETE("/firms/:id", h.deleteFirm)
	g.GET("/stages", h.listStages)
	g.POST("/stages", h.createStage)
	g.DELETE("/stages/:id", h.deleteStage)
	g.GET("/sizes", h.listSizes)
	g.POST("/sizes", h.createSize)
	g.DELETE("/sizes/:id", h.deleteSize)
	g.GET("/statuses", h.listStatuses)
	g.POST("/statuses", h.createStatus)
	g.DELETE("/statuses/:id", h.deleteStatus)
	g.GET("/types", h.listTypes)
	g.POST("/types", h.createType)
	g.DELETE("/types/:id", h.deleteType)
	g.POST("/types/import", h.importTypes)
}

func (h *CatalogHandler) listFirms(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListFirms(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *CatalogHandler) createFirm(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	item := &models.Firm{Name: strings.TrimSpace(req.Name), Type: strings.TrimSpace(req.Type)}
	if err := h.Repo.CreateFirm(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *CatalogHandler) deleteFirm(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, id uint64) error {
		return h.Repo.DeleteFirm(ctx.Request.Context(), id)
	})
}

func (h *CatalogHandler) listStages(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListStages(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *CatalogHandler) createStage(c *gin.Context) {
	h.createNamed(c, func(ctx *gin.Context, name string) (any, error) {
		item := &models.AccountStage{Name: name}
		return item, h.Repo.CreateStage(ctx.Request.Context(), item)
	})
}

func (h *CatalogHandler) deleteStage(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, id uint64) error {
		return h.Repo.DeleteStage(ctx.Request.Context(), id)
	})
}

func (h *CatalogHandler) listSizes(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListSizes(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *CatalogHandler) createSize(c *gin.Context) {
	h.createNamed(c, func(ctx *gin.Context, name string) (any, error) {
		item := &models.AccountSize{Name: name}
		return item, h.Repo.CreateSize(ctx.Request.Context(), item)
	})
}

func (h *CatalogHandler) deleteSize(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, id uint64) error {
		return h.Repo.DeleteSize(ctx.Request.Context(), id)
	})
}

func (h *CatalogHandler) listStatuses(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListStatuses(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// createStatus accepts both label shapes: {"label":"Active"} and
// {"label":{"name":"Active","color":"emerald"}}.
func (h *CatalogHandler) createStatus(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req struct {
		Label models.Label `json:"label"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Label.Name == "" {
		Error(c, http.StatusBadRequest, "label name required", nil)
		return
	}
	item := &models.AccountStatusEntry{Label: req.Label}
	if err := h.Repo.CreateStatus(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *CatalogHandler) deleteStatus(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, id uint64) error {
		return h.Repo.DeleteStatus(ctx.Request.Context(), id)
	})
}

func (h *CatalogHandler) listTypes(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListAccountTypes(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *CatalogHandler) createType(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req struct {
		Group  string         `json:"group"`
		Phase  string         `json:"phase"`
		Name   string         `json:"name"`
		Color  string         `json:"color"`
		Config datatypes.JSON `json:"config"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	if req.Group == "" {
		req.Group = service.LegacyTypeGroup
	}
	item := &models.AccountType{
		ID:        uuid.NewString(),
		GroupName: req.Group,
		Phase:     req.Phase,
		Name:      strings.TrimSpace(req.Name),
		Color:     req.Color,
		Config:    req.Config,
	}
	if err := h.Repo.CreateAccountType(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *CatalogHandler) deleteType(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	if err := h.Repo.DeleteAccountType(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": c.Param("id")}, nil)
}

// @Summary Import account types from a legacy catalog export
// @Tags catalog
// @Success 200 {object} map[string]any
// @Router /api/v1/catalog/types/import [post]
func (h *CatalogHandler) importTypes(c *gin.Context) {
	if h.Catalog == nil {
		Error(c, http.StatusInternalServerError, "catalog service unavailable", nil)
		return
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	n, err := h.Catalog.ImportLegacyTypes(c.Request.Context(), raw)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"imported": n}, nil)
}

func (h *CatalogHandler) createNamed(c *gin.Context, create func(*gin.Context, string) (any, error)) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	item, err := create(c, name)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *CatalogHandler) deleteByID(c *gin.Context, del func(*gin.Context, uint64) error) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := del(c, id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
