package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedWorkbook 工作簿无法解析或不含工作表
// 整个上传级别的致命错误，不做部分处理
var ErrMalformedWorkbook = errors.New("malformed workbook")

// Workbook 已解码的工作簿：仅第一个工作表，按行号 + 列字母寻址
type Workbook struct {
	SheetName string
	rows      [][]string
}

// OpenWorkbook 从字节缓冲解码工作簿
func OpenWorkbook(data []byte) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no worksheet found", ErrMalformedWorkbook)
	}

	// 只读第一个工作表
	sheetName := sheets[0]
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}

	return &Workbook{
		SheetName: sheetName,
		rows:      rows,
	}, nil
}

// RowCount 工作表行数（含表头块）
func (w *Workbook) RowCount() int {
	return len(w.rows)
}

// Cell 取指定行（1 起始）和列字母的单元格值，越界或列字母非法返回 ""
func (w *Workbook) Cell(rowNo int, column string) string {
	if rowNo < 1 || rowNo > len(w.rows) {
		return ""
	}
	colNo, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return ""
	}
	row := w.rows[rowNo-1]
	if colNo > len(row) {
		return ""
	}
	return row[colNo-1]
}

// HeaderColumns 返回表头行的 列字母 → 表头文本 对
// 供操作员在上传前手工确认字段映射使用
func (w *Workbook) HeaderColumns() map[string]string {
	headers := make(map[string]string)
	if len(w.rows) == 0 {
		return headers
	}
	for i, value := range w.rows[0] {
		text := ToText(value)
		if text == "" {
			continue
		}
		letter, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		headers[letter] = text
	}
	return headers
}
