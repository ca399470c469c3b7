package geom

import (
	"math"
	"testing"
)

// TestSanitize 测试样式清洗规则
func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    Style
		expected Style
	}{
		{
			"向下取整",
			Style{"a": 3.7, "c": -1.2},
			Style{"a": 3, "c": -2},
		},
		{
			"删除 NaN 字段",
			Style{"a": 3.7, "b": math.NaN(), "c": -1.2},
			Style{"a": 3, "c": -2},
		},
		{
			"删除 Inf 字段",
			Style{"top": math.Inf(1), "left": 10},
			Style{"left": 10},
		},
		{
			"整数值保持不变",
			Style{"top": 100, "bottom": 0},
			Style{"top": 100, "bottom": 0},
		},
		{
			"空样式",
			Style{},
			Style{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Sanitize() 字段数 = %d, 期望 %d", len(result), len(tt.expected))
			}
			for key, want := range tt.expected {
				got, ok := result[key]
				if !ok {
					t.Errorf("缺少字段 %q", key)
					continue
				}
				if got != want {
					t.Errorf("字段 %q = %v, 期望 %v", key, got, want)
				}
			}
		})
	}
}

// TestSanitizeIdempotent 测试清洗的幂等性
// 对已清洗的样式再次清洗应该得到相同结果
func TestSanitizeIdempotent(t *testing.T) {
	input := Style{"a": 3.7, "b": math.NaN(), "c": -1.2, "d": 42}
	once := Sanitize(input)
	twice := Sanitize(once)

	if len(once) != len(twice) {
		t.Fatalf("二次清洗字段数变化: %d -> %d", len(once), len(twice))
	}
	for key, v := range once {
		if twice[key] != v {
			t.Errorf("字段 %q 二次清洗后变化: %v -> %v", key, v, twice[key])
		}
	}
}

// TestSanitizeDoesNotMutateInput 测试清洗不修改输入
func TestSanitizeDoesNotMutateInput(t *testing.T) {
	input := Style{"a": 3.7}
	_ = Sanitize(input)
	if input["a"] != 3.7 {
		t.Errorf("输入被修改: a = %v", input["a"])
	}
}

// TestSanitizeRect 测试矩形清洗
func TestSanitizeRect(t *testing.T) {
	tests := []struct {
		name     string
		input    Rect
		expected Rect
	}{
		{"小数向下取整", Rect{X: 1.9, Y: -0.5, Width: 10.1, Height: 20}, Rect{X: 1, Y: -1, Width: 10, Height: 20}},
		{"NaN 退化为 0", Rect{X: math.NaN(), Y: 5, Width: 10, Height: 10}, Rect{X: 0, Y: 5, Width: 10, Height: 10}},
		{"零矩形", Rect{}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeRect(tt.input); got != tt.expected {
				t.Errorf("SanitizeRect(%+v) = %+v, 期望 %+v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestRectContains 测试点包含判断
func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"内部点", 50, 30, true},
		{"左上角（含）", 10, 10, true},
		{"右下角（不含）", 110, 60, false},
		{"左侧外部", 5, 30, false},
		{"下方外部", 50, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, 期望 %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

// TestRectInset 测试矩形扩展（负值向外）
func TestRectInset(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 50, Height: 40}
	expanded := r.Inset(-5)
	expected := Rect{X: 95, Y: 95, Width: 60, Height: 50}
	if expanded != expected {
		t.Errorf("Inset(-5) = %+v, 期望 %+v", expanded, expected)
	}
}
