package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sadanand-mindteck/revenye-max/internal/importer"
	"github.com/sadanand-mindteck/revenye-max/internal/parser"
)

// Upload 上传工作簿并执行导入
// POST /api/upload
// multipart 三部分：file（工作簿）、session（财年标签，如 "2025-26"）、
// mappedHeaders（JSON 对象：逻辑字段名 → 列字母）
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "文件超过大小限制"})
		return
	}

	session := c.PostForm("session")
	if session == "" {
		session = h.defaultSession
	}

	// 映射表由调用方确认后原样信任，不回验表头
	var mapping parser.ColumnMapping
	if err := json.Unmarshal([]byte(c.PostForm("mappedHeaders")), &mapping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mappedHeaders 格式错误"})
		return
	}

	data, err := readUploadedFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取文件失败"})
		return
	}

	// 工作簿解码失败是整个上传的致命错误，立即报告，不做部分处理
	wb, err := parser.OpenWorkbook(data)
	if err != nil {
		if errors.Is(err, parser.ErrMalformedWorkbook) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logID, err := h.store.CreateImportLog(fileHeader.Filename, session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := importer.NewIngestor(h.store).Run(wb, mapping, session)

	status := "completed"
	if report.ProcessedRows == 0 && report.FailedRows > 0 {
		status = "failed"
	}
	if err := h.store.CompleteImportLog(logID, report.TotalRows, report.ProcessedRows,
		report.SkippedRows, report.FailedRows, status, ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 记住最近一次导入的财年标签
	if session != "" {
		_ = h.store.SetCurrentSession(session)
	}

	c.JSON(http.StatusOK, report)
}

// InspectHeaders 读取表头行，供操作员确认字段映射
// POST /api/upload/headers
func (h *Handler) InspectHeaders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	data, err := readUploadedFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取文件失败"})
		return
	}

	wb, err := parser.OpenWorkbook(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sheet":   wb.SheetName,
		"headers": wb.HeaderColumns(),
	})
}

// readUploadedFile 把上传文件读入内存
func readUploadedFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
