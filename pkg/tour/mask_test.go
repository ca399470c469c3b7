package tour

import (
	"testing"

	"github.com/decker502/spotlight/pkg/geom"
)

// TestCutoutBands 测试高亮窗口四周的矩形拆分
func TestCutoutBands(t *testing.T) {
	viewport := geom.Rect{Width: 400, Height: 800}

	tests := []struct {
		name   string
		window geom.Rect
		count  int
	}{
		{
			name:   "窗口在视口内部_四块",
			window: geom.Rect{X: 100, Y: 200, Width: 50, Height: 50},
			count:  4,
		},
		{
			name:   "窗口贴左上角_两块",
			window: geom.Rect{X: 0, Y: 0, Width: 50, Height: 50},
			count:  2,
		},
		{
			name:   "窗口覆盖整个视口_零块",
			window: geom.Rect{X: 0, Y: 0, Width: 400, Height: 800},
			count:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := CutoutBands(viewport, tt.window)
			if len(bands) != tt.count {
				t.Fatalf("分块数 = %d, 期望 %d", len(bands), tt.count)
			}
			// 不变式：任何分块都不与窗口重叠
			for _, band := range bands {
				if overlaps(band, tt.window) {
					t.Errorf("分块 %+v 与窗口 %+v 重叠", band, tt.window)
				}
			}
			// 不变式：分块面积 + 窗口面积 = 视口面积
			total := tt.window.Width * tt.window.Height
			for _, band := range bands {
				total += band.Width * band.Height
			}
			if total != viewport.Width*viewport.Height {
				t.Errorf("总覆盖面积 = %v, 期望 %v", total, viewport.Width*viewport.Height)
			}
		})
	}
}

func overlaps(a, b geom.Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// TestMaskState_Animation 测试窗口形状动画的推进
func TestMaskState_Animation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Easing = "linear"
	cfg.AnimationDuration = 1.0
	cfg.AnimateMask = true
	viewport := geom.Rect{Width: 400, Height: 800}

	m := newMaskState(cfg)

	// 首个窗口直接落位
	first := geom.Rect{X: 10, Y: 20, Width: 100, Height: 40}
	m.Publish(first, viewport)
	if m.Window() != first {
		t.Fatalf("首个窗口应直接落位, 实际 %+v", m.Window())
	}
	if m.moving {
		t.Error("首个窗口不应进入动画")
	}

	// 第二个窗口缓动过去
	second := geom.Rect{X: 110, Y: 120, Width: 200, Height: 80}
	m.Publish(second, viewport)
	if !m.moving {
		t.Fatal("第二个窗口应进入动画")
	}

	m.Update(0.5)
	mid := m.Window()
	if mid.X != 60 || mid.Y != 70 || mid.Width != 150 || mid.Height != 60 {
		t.Errorf("中点窗口 = %+v, 期望 {60 70 150 60}", mid)
	}

	m.Update(0.6)
	if m.Window() != second {
		t.Errorf("终点窗口 = %+v, 期望精确落位 %+v", m.Window(), second)
	}
	if m.moving {
		t.Error("到达终点后不应仍在动画中")
	}
}

// TestMaskState_AnimationDisabled 测试关闭形状动画时每次发布都瞬移
func TestMaskState_AnimationDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.AnimateMask = false
	viewport := geom.Rect{Width: 400, Height: 800}

	m := newMaskState(cfg)
	m.Publish(geom.Rect{X: 10, Y: 20, Width: 100, Height: 40}, viewport)

	second := geom.Rect{X: 110, Y: 120, Width: 200, Height: 80}
	m.Publish(second, viewport)
	if m.Window() != second {
		t.Errorf("关闭动画时应瞬移, 实际 %+v", m.Window())
	}
}

// TestMaskState_Reset 测试结束引导后的窗口清除
func TestMaskState_Reset(t *testing.T) {
	cfg := testConfig(t)
	viewport := geom.Rect{Width: 400, Height: 800}

	m := newMaskState(cfg)
	m.Publish(geom.Rect{X: 10, Y: 20, Width: 100, Height: 40}, viewport)
	m.Reset()

	if m.active {
		t.Error("Reset 后不应有有效窗口")
	}
	// 重新发布：当作首个窗口直接落位
	next := geom.Rect{X: 50, Y: 60, Width: 80, Height: 30}
	m.Publish(next, viewport)
	if m.Window() != next || m.moving {
		t.Error("Reset 后的首个窗口应直接落位")
	}
}
