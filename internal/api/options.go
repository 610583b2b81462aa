package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// optionDomains URL 段到参考数据域的映射
var optionDomains = map[string]model.ReferenceDomain{
	"customers":   model.DomainCustomer,
	"entities":    model.DomainEntity,
	"entities-gr": model.DomainEntityGroup,
	"deal-types":  model.DomainDealType,
	"verticals":   model.DomainVertical,
	"horizontals": model.DomainHorizontal,
}

// ListOptions 列出某参考数据域的 (id, name) 选项
// GET /api/options/:domain
func (h *Handler) ListOptions(c *gin.Context) {
	segment := c.Param("domain")

	// 员工表结构不同，单独处理
	if segment == "employees" {
		options, err := h.store.ListEmployeeOptions()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, options)
		return
	}

	domain, ok := optionDomains[segment]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "未知的参考数据域"})
		return
	}

	options, err := h.store.ListReferenceOptions(domain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}
