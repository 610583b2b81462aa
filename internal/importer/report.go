package importer

import (
	"fmt"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// recordRow 把单行结果累积进导入报告
func recordRow(report *model.IngestReport, result model.RowResult) {
	report.Rows = append(report.Rows, result)

	switch {
	case result.Skipped:
		report.SkippedRows++
		report.Outcomes[model.OutcomeSkipped]++
		report.SkipReasons = append(report.SkipReasons,
			fmt.Sprintf("row %d: %s", result.RowNo, result.Reason))
	case result.Reason != "":
		report.FailedRows++
		report.Outcomes[model.OutcomeFailed]++
		report.SkipReasons = append(report.SkipReasons,
			fmt.Sprintf("row %d: %s", result.RowNo, result.Reason))
	default:
		report.ProcessedRows++
		for _, outcome := range result.Outcomes {
			report.Outcomes[outcome]++
		}
	}
}
