package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将提示框文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 按字符测量断行，支持中文和英文混合文本；单个字符超宽时强制成行。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, r := range textStr {
		candidate := current + string(r)
		if MeasureTextWidth(candidate, font) > maxWidth && current != "" {
			lines = append(lines, strings.TrimSpace(current))
			current = string(r)
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, strings.TrimSpace(current))
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// RuneCount 返回文本的字符数（多字节安全）
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
