package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propfolio/internal/models"
	"propfolio/internal/repository"
)

type AccountHandler struct {
	Repo repository.Repository
}

func (h *AccountHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/accounts")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.POST("/:id/records", h.addRecord)
	g.DELETE("/:id/records/:seq", h.removeRecord)
	g.POST("/:id/payouts", h.addPayout)
	g.DELETE("/:id/payouts/:seq", h.removePayout)
}

type accountRequest struct {
	Date          string          `json:"date"`
	Firm          string          `json:"firm"`
	Category      string          `json:"category"`
	AccountStage  string          `json:"accountStage"`
	Phase         models.Label    `json:"phase"`
	Size          string          `json:"size"`
	BaseCost      decimal.Decimal `json:"baseCost"`
	AccountStatus models.Label    `json:"accountStatus"`
	Notes         string          `json:"notes"`
}

// @Summary List accounts
// @Tags accounts
// @Param category query string false "asset category, All for no filter"
// @Param firms query string false "comma separated firm names"
// @Param stages query string false "comma separated stage names"
// @Param from query string false "creation date lower bound (ISO)"
// @Param to query string false "creation date upper bound (ISO)"
// @Param orderBy query string false "sort column (date, firm, category, account_stage, size, base_cost, created_at)"
// @Param asc query bool false "ascending sort, default descending"
// @Success 200 {object} map[string]any
// @Router /api/v1/accounts [get]
func (h *AccountHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 0)
	offset := intQuery(c, "offset", 0)
	f := filterFromQuery(c)
	params := repository.ListAccountsParams{
		Firms:  f.Firms,
		Stages: f.Stages,
		Limit:  limit,
		Offset: offset,
	}
	if f.Category != "" && !strings.EqualFold(f.Category, "All") {
		params.Category = &f.Category
	}
	if f.From != "" {
		params.From = &f.From
	}
	if f.To != "" {
		params.To = &f.To
	}
	params.OrderBy = strings.TrimSpace(c.Query("orderBy"))
	if raw := c.Query("asc"); raw != "" {
		asc := raw == "1" || strings.EqualFold(raw, "true")
		params.Asc = &asc
	}
	items, err := h.Repo.ListAccounts(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountAccounts(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Create account
// @Tags accounts
// @Success 200 {object} map[string]any
// @Router /api/v1/accounts [post]
func (h *AccountHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Date == "" {
		Error(c, http.StatusBadRequest, "date required", nil)
		return
	}
	item := &models.Account{
		ID:            uuid.NewString(),
		Date:          req.Date,
		Firm:          req.Firm,
		Category:      req.Category,
		AccountStage:  req.AccountStage,
		Phase:         req.Phase,
		Size:          req.Size,
		BaseCost:      req.BaseCost,
		AccountStatus: req.AccountStatus,
		Notes:         req.Notes,
	}
	if err := h.Repo.CreateAccount(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *AccountHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	item, err := h.Repo.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *AccountHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := c.Param("id")
	existing, err := h.Repo.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Account{
		ID:            id,
		Date:          req.Date,
		Firm:          req.Firm,
		Category:      req.Category,
		AccountStage:  req.AccountStage,
		Phase:         req.Phase,
		Size:          req.Size,
		BaseCost:      req.BaseCost,
		AccountStatus: req.AccountStatus,
		Notes:         req.Notes,
	}
	if err := h.Repo.UpdateAccount(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	updated, err := h.Repo.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, updated, nil)
}

func (h *AccountHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	if err := h.Repo.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": c.Param("id")}, nil)
}

type recordRequest struct {
	Date      string          `json:"date"`
	Status    models.Label    `json:"status"`
	Type      models.Label    `json:"type"`
	Number    string          `json:"number"`
	ExtraCost decimal.Decimal `json:"extraCost"`
	Notes     string          `json:"notes"`
}

// @Summary Append a status-change record
// @Tags accounts
// @Success 200 {object} map[string]any
// @Router /api/v1/accounts/{id}/records [post]
func (h *AccountHandler) addRecord(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Date == "" {
		Error(c, http.StatusBadRequest, "date required", nil)
		return
	}
	item := &models.AccountRecord{
		Date:      req.Date,
		Status:    req.Status,
		Type:      req.Type,
		Number:    req.Number,
		ExtraCost: req.ExtraCost,
		Notes:     req.Notes,
	}
	if err := h.Repo.AddAccountRecord(c.Request.Context(), c.Param("id"), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *AccountHandler) removeRecord(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	seq := intParam(c, "seq")
	if seq < 0 {
		Error(c, http.StatusBadRequest, "invalid seq", nil)
		return
	}
	if err := h.Repo.DeleteAccountRecord(c.Request.Context(), c.Param("id"), seq); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": seq}, nil)
}

type payoutRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ArrivalDate string          `json:"arrivalDate"`
	Arrived     string          `json:"arrived"`
	Notes       string          `json:"notes"`
}

// @Summary Append a payout
// @Tags accounts
// @Success 200 {object} map[string]any
// @Router /api/v1/accounts/{id}/payouts [post]
func (h *AccountHandler) addPayout(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req payoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Date == "" {
		Error(c, http.StatusBadRequest, "date required", nil)
		return
	}
	switch req.Arrived {
	case "", models.ArrivedYes, models.ArrivedNo:
	default:
		Error(c, http.StatusBadRequest, "arrived must be 是, 否 or empty", nil)
		return
	}
	item := &models.Payout{
		Date:        req.Date,
		Amount:      req.Amount,
		ArrivalDate: req.ArrivalDate,
		Arrived:     req.Arrived,
		Notes:       req.Notes,
	}
	if err := h.Repo.AddPayout(c.Request.Context(), c.Param("id"), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *AccountHandler) removePayout(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	seq := intParam(c, "seq")
	if seq < 0 {
		Error(c, http.StatusBadRequest, "invalid seq", nil)
		return
	}
	if err := h.Repo.DeletePayout(c.Request.Context(), c.Param("id"), seq); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": seq}, nil)
}
