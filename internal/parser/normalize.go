package parser

import (
	"strconv"
	"strings"
)

// 源数据用自由文本哨兵表达语义：
// "tbh" 表示角色有意空缺，"new" 表示有意新建实体。
// 哨兵识别集中在这里，管线其余部分只处理 id 和布尔标志。

// ToText 规范化单元格文本：去除首尾空白，空单元格返回 ""
func ToText(value string) string {
	return strings.TrimSpace(value)
}

// ToNumber 解析数值单元格：去除千分位后解析
// 空值或无法解析时返回 nil（不是零，是否取零由调用方决定）
func ToNumber(value string) *float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "") // 移除千分位
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// IsToBeHired 判断文本是否为 TBH（to be hired）哨兵
// 大小写不敏感的子串匹配，如 "TBH - Pending"
func IsToBeHired(value string) bool {
	return strings.Contains(strings.ToLower(value), "tbh")
}

// HasNewMarker 判断文本是否带 "new" 标记（有意新建）
func HasNewMarker(value string) bool {
	return strings.Contains(strings.ToLower(value), "new")
}
