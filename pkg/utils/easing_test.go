package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证"开始快，结束慢"的特性
	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if EaseOutCubic(p) <= EaseLinear(p) {
				t.Errorf("EaseOutCubic(%v) 应该大于线性值（开始快）", p)
			}
		}
	})
}

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.5}, // 对称曲线中点为 0.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestEasingByName 测试缓动名称查找
func TestEasingByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"linear", true},
		{"easeOutCubic", true},
		{"easeInOutCubic", true},
		{"easeOutQuad", true},
		{"easeInQuad", true},
		{"easeOutExpo", true},
		{"bounce", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := EasingByName(tt.name)
			if ok != tt.found {
				t.Fatalf("EasingByName(%q) ok = %v, 期望 %v", tt.name, ok, tt.found)
			}
			if ok && fn == nil {
				t.Errorf("EasingByName(%q) 返回 nil 函数", tt.name)
			}
		})
	}
}

// TestEaseOutCubicWithLerp 测试缓动函数与插值结合使用
// 模拟高亮框从旧目标滑向新目标的实际场景
func TestEaseOutCubicWithLerp(t *testing.T) {
	startTop, targetTop := 420.0, 96.0

	for _, progress := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		eased := EaseOutCubic(progress)
		top := Lerp(startTop, targetTop, eased)

		if progress == 0.0 && math.Abs(top-startTop) > 0.001 {
			t.Errorf("进度 0.0 时应该在起点 %v, 实际 %v", startTop, top)
		}
		if progress == 1.0 && math.Abs(top-targetTop) > 0.001 {
			t.Errorf("进度 1.0 时应该在终点 %v, 实际 %v", targetTop, top)
		}
		if top < targetTop-0.001 || top > startTop+0.001 {
			t.Errorf("位置 %v 超出范围 [%v, %v]", top, targetTop, startTop)
		}
	}
}
