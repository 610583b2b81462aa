package parser

// ColumnMapping 逻辑字段名 → 列字母 的映射表
// 由调用方在上传前确认后传入，一次上传内不可变；不回验表头
type ColumnMapping map[string]string

// Column 取逻辑字段映射到的列字母，未映射返回 ""
func (m ColumnMapping) Column(field string) string {
	return m[field]
}

// Mapped 判断逻辑字段是否已映射
func (m ColumnMapping) Mapped(field string) bool {
	return m[field] != ""
}

// ValueAt 取某行上某逻辑字段的原始单元格值
// 字段未映射时返回 ""，无解析、无副作用
func (m ColumnMapping) ValueAt(w *Workbook, rowNo int, field string) string {
	column := m[field]
	if column == "" {
		return ""
	}
	return w.Cell(rowNo, column)
}

// TextAt 取某行上某逻辑字段的规范化文本
func (m ColumnMapping) TextAt(w *Workbook, rowNo int, field string) string {
	return ToText(m.ValueAt(w, rowNo, field))
}

// NumberAt 取某行上某逻辑字段的数值，空或非数值返回 nil
func (m ColumnMapping) NumberAt(w *Workbook, rowNo int, field string) *float64 {
	return ToNumber(m.ValueAt(w, rowNo, field))
}
