package model

import "time"

// RowOutcome 单行处理结果类型
type RowOutcome string

const (
	OutcomeCreatedProject RowOutcome = "created-project"
	OutcomeReusedProject  RowOutcome = "reused-project"
	OutcomeRevenueWritten RowOutcome = "revenue-written"
	OutcomeResourceLinked RowOutcome = "resource-linked"
	OutcomeSkipped        RowOutcome = "skipped"
	OutcomeFailed         RowOutcome = "failed"
)

// 行级跳过原因
const (
	SkipUnknownRowType       = "unknown-row-type"
	SkipMissingCustomerName  = "missing-customer-name"
	SkipMissingProjectName   = "missing-project-name"
	SkipUnknownEntityGroup   = "unknown-entity-group"
	SkipUnknownDealType      = "unknown-deal-type"
	SkipInvalidCustomerType  = "invalid-customer-type"
	SkipMissingFinancialYear = "missing-financial-year"
	SkipMissingResourceName  = "missing-resource-name"
)

// RowResult 单行处理结果
type RowResult struct {
	RowNo    int          `json:"rowNo"`
	Outcomes []RowOutcome `json:"outcomes,omitempty"`
	Skipped  bool         `json:"skipped"`
	Reason   string       `json:"reason,omitempty"` // skipped/failed 时的原因
}

// IngestReport 导入报告，随响应返回给调用方
type IngestReport struct {
	Session       string             `json:"session"` // 回显的财年标签
	TotalRows     int                `json:"totalRows"`
	ProcessedRows int                `json:"processedRows"`
	SkippedRows   int                `json:"skippedRows"`
	FailedRows    int                `json:"failedRows"`
	Outcomes      map[RowOutcome]int `json:"outcomes"`
	SkipReasons   []string           `json:"skipReasons,omitempty"`
	Duration      time.Duration      `json:"duration"`
	Rows          []RowResult        `json:"rows,omitempty"`
}
