package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"propfolio/internal/engine"
)

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

// intParam parses a numeric path segment; -1 flags an invalid value.
func intParam(c *gin.Context, key string) int {
	val := strings.TrimSpace(c.Param(key))
	if val == "" {
		return -1
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 0 {
		return -1
	}
	return i
}

func csvQuery(c *gin.Context, key string) []string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if val := strings.TrimSpace(item); val != "" {
			out = append(out, val)
		}
	}
	return out
}

// filterFromQuery maps the dashboard's filter bar query params onto an engine
// filter: ?category=Futures&firms=Apex,FTMO&stages=...&from=...&to=...
func filterFromQuery(c *gin.Context) engine.Filter {
	return engine.Filter{
		Category: strings.TrimSpace(c.Query("category")),
		Firms:    csvQuery(c, "firms"),
		Stages:   csvQuery(c, "stages"),
		From:     strings.TrimSpace(c.Query("from")),
		To:       strings.TrimSpace(c.Query("to")),
	}
}

func paginationMeta(limit, offset int, total int64) map[string]any {
	if limit <= 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	hasNext := int64(offset+limit) < total
	return map[string]any{
		"limit":    limit,
		"offset":   offset,
		"total":    total,
		"has_next": hasNext,
	}
}
