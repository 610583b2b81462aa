package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已有数据
	CurrentSession string `json:"currentSession"` // 最近一次导入的财年标签
	ProjectCount   int    `json:"projectCount"`
	ResourceCount  int    `json:"resourceCount"`
	CustomerCount  int    `json:"customerCount"`
	RevenueRows    int    `json:"revenueRows"` // 当前财年的收入行数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	session, err := h.store.GetCurrentSession()
	if err != nil {
		session = ""
	}

	projectCount, err := h.store.CountProjects()
	if err != nil {
		projectCount = 0
	}
	resourceCount, err := h.store.CountResources()
	if err != nil {
		resourceCount = 0
	}
	customerCount, err := h.store.CountReference(model.DomainCustomer)
	if err != nil {
		customerCount = 0
	}

	revenueRows := 0
	if session != "" {
		if n, err := h.store.CountRevenue(session); err == nil {
			revenueRows = n
		}
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    projectCount > 0,
		CurrentSession: session,
		ProjectCount:   projectCount,
		ResourceCount:  resourceCount,
		CustomerCount:  customerCount,
		RevenueRows:    revenueRows,
	})
}
