package tour

import "testing"

// TestVisibilityState_Lifecycle 测试一次完整引导周期中的派生可见性
func TestVisibilityState_Lifecycle(t *testing.T) {
	v := NewVisibilityState()

	// 初始：全灭
	if v.ModalVisible() || v.ContentVisible() {
		t.Error("初始状态不应有任何可见性")
	}

	// 激活：遮罩可见，内容等待首次定位
	if !v.SetTourActive(true) {
		t.Error("首次激活应报告状态变化")
	}
	if !v.ModalVisible() {
		t.Error("激活后遮罩应可见")
	}
	if v.ContentVisible() {
		t.Error("首次定位落地前内容不应可见")
	}

	// 定位落地：内容可见
	v.MarkPlaced()
	if !v.ContentVisible() {
		t.Error("定位落地后内容应可见")
	}

	// 结束：完整重置
	v.SetTourActive(false)
	if v.ModalVisible() || v.ContentVisible() {
		t.Error("结束后不应有任何可见性")
	}
	if v.HasPlacement() {
		t.Error("结束应清除定位标记")
	}

	// 再次激活：内容重新等待首次定位（不能闪现旧位置）
	v.SetTourActive(true)
	if v.ContentVisible() {
		t.Error("再次激活后内容应重新等待定位")
	}
}

// TestVisibilityState_Idempotent 测试重复设置同一状态是无操作
func TestVisibilityState_Idempotent(t *testing.T) {
	v := NewVisibilityState()

	v.SetTourActive(true)
	v.MarkPlaced()

	if v.SetTourActive(true) {
		t.Error("重复激活不应报告状态变化")
	}
	if !v.ContentVisible() {
		t.Error("重复激活不应清除已有定位")
	}
}
