package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propfolio/internal/repository"
	"propfolio/internal/service"
)

type StatsHandler struct {
	Repo  repository.Repository
	Stats *service.StatsService
}

func (h *StatsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/stats")
	g.GET("/overview", h.overview)
	g.GET("/charts", h.charts)
	g.GET("/phases", h.phases)
	g.GET("/history", h.history)
}

// @Summary Dashboard KPI totals plus per-firm rollups
// @Tags stats
// @Param category query string false "Category filter, All means everything"
// @Param firms query string false "Comma separated firm names"
// @Param stages query string false "Comma separated account stages"
// @Param from query string false "Inclusive start date YYYY-MM-DD"
// @Param to query string false "Inclusive end date YYYY-MM-DD"
// @Success 200 {object} map[string]any
// @Router /api/v1/stats/overview [get]
func (h *StatsHandler) overview(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "stats service unavailable", nil)
		return
	}
	f := filterFromQuery(c)
	stats, err := h.Stats.Overview(c.Request.Context(), f)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	rollups, err := h.Stats.FirmRollups(c.Request.Context(), f)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"totals": stats, "firms": rollups}, nil)
}

// @Summary Positive-only chart series for payouts, costs and margins
// @Tags stats
// @Success 200 {object} map[string]any
// @Router /api/v1/stats/charts [get]
func (h *StatsHandler) charts(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "stats service unavailable", nil)
		return
	}
	stats, err := h.Stats.Charts(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, stats, nil)
}

// @Summary Per firm+stage phase pipeline projection
// @Tags stats
// @Success 200 {object} map[string]any
// @Router /api/v1/stats/phases [get]
func (h *StatsHandler) phases(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "stats service unavailable", nil)
		return
	}
	proj, err := h.Stats.Phases(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, proj, nil)
}

// @Summary Historical KPI snapshots taken by the cron job
// @Tags stats
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Page size, default 100"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]any
// @Router /api/v1/stats/history [get]
func (h *StatsHandler) history(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListSnapshotsParams{
		Limit:  intQuery(c, "limit", 100),
		Offset: intQuery(c, "offset", 0),
	}
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			Error(c, http.StatusBadRequest, "invalid since", nil)
			return
		}
		params.Since = &t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			Error(c, http.StatusBadRequest, "invalid until", nil)
			return
		}
		params.Until = &t
	}
	items, err := h.Repo.ListStatsSnapshots(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
