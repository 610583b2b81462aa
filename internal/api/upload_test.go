package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
	"github.com/sadanand-mindteck/revenye-max/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "revdash.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	router := gin.New()
	NewHandler(st, "2025-26", 32).RegisterRoutes(router.Group("/api"))
	return router, st
}

// uploadBody 构造 multipart 上传请求体
func uploadBody(t *testing.T, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "forecast.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(file); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func buildWorkbookBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestUpload_MalformedWorkbookIsBadRequest(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	body, contentType := uploadBody(t, []byte("not a workbook"), map[string]string{
		"session":       "2025-26",
		"mappedHeaders": `{"MS/PS":"A"}`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
}

func TestUpload_BadMappingIsBadRequest(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	workbook := buildWorkbookBytes(t, [][]string{{"MS/PS"}})
	body, contentType := uploadBody(t, workbook, map[string]string{
		"session":       "2025-26",
		"mappedHeaders": "not json",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
}

func TestUpload_ReportEchoesSessionAndLogsImport(t *testing.T) {
	t.Parallel()

	router, st := newTestRouter(t)

	if _, err := st.CreateReference(st.DB(), model.DomainEntityGroup, "Group A"); err != nil {
		t.Fatalf("seed entity group: %v", err)
	}
	if _, err := st.CreateReference(st.DB(), model.DomainDealType, "T&M"); err != nil {
		t.Fatalf("seed deal type: %v", err)
	}

	workbook := buildWorkbookBytes(t, [][]string{
		{"MS/PS", "Customer Name", "Project Name", "GR Entity", "Deal Type", "EEENNN", "Apr"},
		{"MS", "Acme Corp", "Apollo", "Group A", "T&M", "EE", "1200"},
	})
	mapping, _ := json.Marshal(map[string]string{
		"MS/PS":         "A",
		"Customer Name": "B",
		"Project Name":  "C",
		"GR Entity":     "D",
		"Deal Type":     "E",
		"EEENNN":        "F",
		"Apr":           "G",
	})
	body, contentType := uploadBody(t, workbook, map[string]string{
		"session":       "2026-27",
		"mappedHeaders": string(mapping),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var report model.IngestReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Session != "2026-27" {
		t.Fatalf("session = %q, want echo of posted value", report.Session)
	}
	if report.ProcessedRows != 1 {
		t.Fatalf("processed = %d, report: %+v", report.ProcessedRows, report)
	}

	// 上传完成后 session 记入配置，导入留痕
	session, err := st.GetCurrentSession()
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if session != "2026-27" {
		t.Fatalf("stored session = %q", session)
	}
	logs, err := st.ListImportLogs(10)
	if err != nil {
		t.Fatalf("list imports: %v", err)
	}
	if len(logs) != 1 || logs[0].Status != "completed" {
		t.Fatalf("import logs = %+v", logs)
	}
}

func TestInspectHeaders_ReturnsHeaderRow(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	workbook := buildWorkbookBytes(t, [][]string{
		{"MS/PS", "Customer Name", "Project Name"},
	})
	body, contentType := uploadBody(t, workbook, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/headers", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Sheet   string            `json:"sheet"`
		Headers map[string]string `json:"headers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Headers["A"] != "MS/PS" || resp.Headers["B"] != "Customer Name" {
		t.Fatalf("headers = %v", resp.Headers)
	}
}
