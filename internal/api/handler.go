package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sadanand-mindteck/revenye-max/internal/store"
)

// Handler API 处理器
type Handler struct {
	store          *store.Store
	defaultSession string // 未指定 session 时的兜底财年标签
	maxUploadBytes int64
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, defaultSession string, maxUploadMB int) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}
	return &Handler{
		store:          store,
		defaultSession: defaultSession,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/upload", h.Upload)
	router.POST("/upload/headers", h.InspectHeaders)
	router.GET("/imports", h.ListImports)

	// 参考数据选项（下拉框用）
	router.GET("/options/:domain", h.ListOptions)
}
