package tour

import "github.com/decker502/spotlight/pkg/geom"

// Step 引导步骤的目标控件
//
// Measure 返回控件当前在视口本地坐标系中的矩形。控件未挂载或暂不可测量
// 时返回 ok=false，布局驱动的定位路径会把它当作良性无操作。
// Ebitengine 中控件矩形与帧循环同线程，测量是同步操作。
type Step interface {
	Measure() (rect geom.Rect, ok bool)
}

// Sequencer 步骤序列控制器（外部协作方）
//
// 决定哪一步处于激活状态、何时前进/后退/结束，定位引擎只消费它的
// 当前状态，从不反向控制步骤顺序。
type Sequencer interface {
	// CurrentStep 返回当前激活步骤，没有时返回 nil
	CurrentStep() Step
	// IsFirstStep 当前是否为第一步
	IsFirstStep() bool
	// IsLastStep 当前是否为最后一步
	IsLastStep() bool
	// GoToNext 前进到下一步
	GoToNext()
	// GoToPrevious 回到上一步
	GoToPrevious()
	// Stop 结束引导
	Stop()
	// Visible 引导是否处于激活状态
	Visible() bool
}
