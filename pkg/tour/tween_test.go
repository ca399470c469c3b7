package tour

import (
	"testing"

	"github.com/decker502/spotlight/pkg/utils"
)

// TestOffsetTween_Snap 测试瞬移：两条通道立即到位
func TestOffsetTween_Snap(t *testing.T) {
	tw := NewOffsetTween(0.4, utils.EaseLinear)

	tw.Snap(100, 50)

	if tw.VerticalOffset() != 100 {
		t.Errorf("VerticalOffset = %v, 期望 100", tw.VerticalOffset())
	}
	if tw.StepIndicatorLeft() != 50 {
		t.Errorf("StepIndicatorLeft = %v, 期望 50", tw.StepIndicatorLeft())
	}
	if tw.Animating() {
		t.Error("瞬移后不应处于动画中")
	}
}

// TestOffsetTween_AnimateTo 测试缓动：按时长线性推进并精确落点
func TestOffsetTween_AnimateTo(t *testing.T) {
	tw := NewOffsetTween(1.0, utils.EaseLinear)
	tw.Snap(0, 0)

	tw.AnimateTo(100, 200)
	if !tw.Animating() {
		t.Fatal("AnimateTo 后应处于动画中")
	}
	// 启动是 fire-and-forget：当前值尚未变化
	if tw.VerticalOffset() != 0 {
		t.Errorf("启动后未推进时 VerticalOffset = %v, 期望 0", tw.VerticalOffset())
	}

	tw.Update(0.5)
	if tw.VerticalOffset() != 50 {
		t.Errorf("中点 VerticalOffset = %v, 期望 50", tw.VerticalOffset())
	}
	if tw.StepIndicatorLeft() != 100 {
		t.Errorf("中点 StepIndicatorLeft = %v, 期望 100", tw.StepIndicatorLeft())
	}

	// 越过终点：精确落在目标值而不是插值近似
	tw.Update(0.7)
	if tw.VerticalOffset() != 100 || tw.StepIndicatorLeft() != 200 {
		t.Errorf("终点 = (%v, %v), 期望 (100, 200)", tw.VerticalOffset(), tw.StepIndicatorLeft())
	}
	if tw.Animating() {
		t.Error("到达终点后不应仍在动画中")
	}
}

// TestOffsetTween_ZeroDuration 测试零时长退化为瞬移
func TestOffsetTween_ZeroDuration(t *testing.T) {
	tw := NewOffsetTween(0, utils.EaseLinear)
	tw.AnimateTo(42, 24)

	if tw.VerticalOffset() != 42 || tw.StepIndicatorLeft() != 24 {
		t.Errorf("零时长应立即到位, 实际 (%v, %v)", tw.VerticalOffset(), tw.StepIndicatorLeft())
	}
	if tw.Animating() {
		t.Error("零时长不应进入动画状态")
	}
}

// TestOffsetTween_Retarget 测试动画中途重定向：从当前插值位置出发
func TestOffsetTween_Retarget(t *testing.T) {
	tw := NewOffsetTween(1.0, utils.EaseLinear)
	tw.Snap(0, 0)
	tw.AnimateTo(100, 100)
	tw.Update(0.5) // 到 50

	tw.AnimateTo(0, 0) // 掉头
	tw.Update(0.5)     // 新动画的中点：从 50 回到 25
	if tw.VerticalOffset() != 25 {
		t.Errorf("重定向中点 VerticalOffset = %v, 期望 25", tw.VerticalOffset())
	}
}
