package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 形式的颜色字符串
// 省略 Alpha 时视为不透明（0xFF）
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("hex color must be 6 or 8 digits, got %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xFF,
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
