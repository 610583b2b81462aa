package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbookBytes 生成内存中的 xlsx 文件
func buildWorkbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

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

func TestOpenWorkbook_MalformedBytes(t *testing.T) {
	t.Parallel()

	_, err := OpenWorkbook([]byte("definitely not a workbook"))
	if !errors.Is(err, ErrMalformedWorkbook) {
		t.Fatalf("expected ErrMalformedWorkbook, got %v", err)
	}
}

func TestWorkbook_CellAddressing(t *testing.T) {
	t.Parallel()

	data := buildWorkbookBytes(t, [][]interface{}{
		{"MS/PS", "Customer Name", "Apr"},
		{"MS", "Globex", 1000},
	})

	wb, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}

	if wb.RowCount() != 2 {
		t.Fatalf("unexpected row count: %d", wb.RowCount())
	}
	if got := wb.Cell(2, "A"); got != "MS" {
		t.Fatalf("Cell(2, A) = %q", got)
	}
	if got := wb.Cell(2, "B"); got != "Globex" {
		t.Fatalf("Cell(2, B) = %q", got)
	}
	// 越界和非法列字母返回空串
	if got := wb.Cell(3, "A"); got != "" {
		t.Fatalf("out-of-range row = %q", got)
	}
	if got := wb.Cell(2, "ZZ"); got != "" {
		t.Fatalf("unused column = %q", got)
	}
	if got := wb.Cell(2, "1A"); got != "" {
		t.Fatalf("invalid column letter = %q", got)
	}
}

func TestWorkbook_HeaderColumns(t *testing.T) {
	t.Parallel()

	data := buildWorkbookBytes(t, [][]interface{}{
		{"MS/PS", "", "Project Name"},
	})

	wb, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}

	headers := wb.HeaderColumns()
	if headers["A"] != "MS/PS" {
		t.Fatalf("header A = %q", headers["A"])
	}
	if headers["C"] != "Project Name" {
		t.Fatalf("header C = %q", headers["C"])
	}
	if _, ok := headers["B"]; ok {
		t.Fatalf("empty header should be absent")
	}
}

func TestColumnMapping_ValueAt(t *testing.T) {
	t.Parallel()

	data := buildWorkbookBytes(t, [][]interface{}{
		{"MS/PS", "Customer Name"},
		{"PS", " Initech "},
	})

	wb, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}

	mapping := ColumnMapping{
		FieldMSPS:         "A",
		FieldCustomerName: "B",
	}

	if got := mapping.ValueAt(wb, 2, FieldMSPS); got != "PS" {
		t.Fatalf("ValueAt MS/PS = %q", got)
	}
	if got := mapping.TextAt(wb, 2, FieldCustomerName); got != "Initech" {
		t.Fatalf("TextAt customer = %q", got)
	}
	// 未映射字段返回空，零副作用
	if got := mapping.ValueAt(wb, 2, FieldProjectName); got != "" {
		t.Fatalf("unmapped field = %q", got)
	}
	if got := mapping.NumberAt(wb, 2, FieldBillRate); got != nil {
		t.Fatalf("unmapped number = %v", *got)
	}
}
