package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListImports 列出最近的导入日志
// GET /api/imports?limit=20
func (h *Handler) ListImports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.store.ListImportLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": logs})
}
