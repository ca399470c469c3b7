// Package tour 实现聚光灯式引导覆盖层的定位与动画引擎
//
// 引擎职责：等待视口与目标的权威测量，计算提示框/箭头/步骤序号/遮罩的
// 一致布局，决定内容何时可以安全显示，并以瞬移或缓动两种方式驱动
// 相邻两次定位之间的过渡。遮罩形状如何绘制、提示框内容长什么样、
// 当前是第几步，都由外部协作方负责（见 MaskRenderer / TooltipRenderer /
// Sequencer 接口）。
package tour

import (
	"image/color"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/geom"
)

// VerticalPosition 提示框相对目标的垂直位置
type VerticalPosition string

const (
	// PositionTop 提示框在目标上方（目标位于视口下半部时）
	PositionTop VerticalPosition = "top"
	// PositionBottom 提示框在目标下方（目标位于视口上半部时）
	PositionBottom VerticalPosition = "bottom"
)

// PlacementResult 一次定位计算的完整结果
// 每次步骤切换时重新计算并整体替换，计算后不再修改
type PlacementResult struct {
	// VerticalPosition 提示框的垂直侧
	VerticalPosition VerticalPosition

	// TooltipStyle 提示框的部分盒子样式
	// 垂直方向只有 top 或 bottom 之一，水平方向 left 和 right 同时存在
	TooltipStyle geom.Style

	// ArrowStyle 箭头的部分盒子样式（垂直锚点镜像提示框，水平锚点对准目标中心）
	ArrowStyle geom.Style

	// ArrowPointingUp 箭头是否朝上（提示框在目标下方时朝上指向目标）
	ArrowPointingUp bool

	// ArrowColor 箭头填充色（按朝向从配置中选取）
	ArrowColor color.RGBA

	// StepIndicatorLeft 步骤序号标记的水平偏移
	// 始终位于 [0, viewportWidth-diameter] 区间内
	StepIndicatorLeft float64

	// MaskRect 高亮窗口矩形（目标尺寸不变，原点钳制为非负）
	MaskRect geom.Rect

	// VerticalOffset 动画驱动的垂直标量目标值（高亮窗口顶边）
	// 步骤序号与高亮窗口的滑动动画都以它为垂直基准
	VerticalOffset float64
}

// CalculatePlacement 纯函数：根据目标矩形、视口与配置推导完整定位结果
//
// 参数：
//   - target: 清洗后的目标矩形（已含高亮留白）
//   - viewport: 当前视口布局（调用方保证宽度非零）
//   - cfg: 已 Resolve 的配置
//   - statusBarInset: 系统状态栏高度；状态栏隐藏时从目标纵坐标中扣除
//
// 零尺寸目标会产生退化但结构完整的结果（宽高为 0，无除零风险）。
func CalculatePlacement(target, viewport geom.Rect, cfg *config.TourConfig, statusBarInset float64) PlacementResult {
	// 1. 状态栏隐藏时，目标坐标系整体上移状态栏高度
	if !cfg.StatusBarVisible && statusBarInset > 0 {
		target.Y -= statusBarInset
	}

	margin := cfg.Margin
	arrowSize := cfg.ArrowSize
	diameter := cfg.StepIndicatorDiameter
	radius := cfg.StepIndicatorRadius()

	// 2. 步骤序号水平偏移：优先放在目标左边缘外侧，
	//    放不下时翻到右边缘外侧并钳制在视口内
	indicatorLeft := target.X - radius
	if indicatorLeft < 0 {
		indicatorLeft = target.X + target.Width - radius
		if indicatorLeft > viewport.Width-diameter {
			indicatorLeft = viewport.Width - diameter
		}
	}
	indicatorLeft = clamp(indicatorLeft, 0, viewport.Width-diameter)

	// 3. 垂直侧选择：目标垂直中心到底边的距离严格大于到顶边的距离时
	//    提示框放下方，其余情况（包括相等）一律放上方
	relativeToTop := target.CenterY()
	relativeToBottom := viewport.Height - target.CenterY()
	position := PositionTop
	if relativeToBottom > relativeToTop {
		position = PositionBottom
	}

	// 4. 提示框锚点：水平方向恒定占满视口减去两侧间距，不跟随目标
	tooltipStyle := geom.Style{
		geom.StyleLeft:  margin,
		geom.StyleRight: margin,
	}
	// 5. 箭头水平锚点对准目标中心
	arrowStyle := geom.Style{
		geom.StyleRight: viewport.Width - (target.X + target.Width/2 + arrowSize),
	}

	pointingUp := false
	switch position {
	case PositionBottom:
		tooltipTop := target.Y + target.Height + margin + margin/2
		tooltipStyle[geom.StyleTop] = tooltipTop
		arrowStyle[geom.StyleTop] = tooltipTop - 2*arrowSize
		pointingUp = true
	case PositionTop:
		tooltipBottom := viewport.Height - (target.Y - margin)
		tooltipStyle[geom.StyleBottom] = tooltipBottom
		arrowStyle[geom.StyleBottom] = tooltipBottom - 2*arrowSize + margin/2
	}

	// 6. 遮罩矩形：目标尺寸不变，原点钳制为非负
	//    （部分滚出屏幕的目标不能剪出负原点的洞）
	maskRect := geom.SanitizeRect(geom.Rect{
		X:      maxf(target.X, 0),
		Y:      maxf(target.Y, 0),
		Width:  target.Width,
		Height: target.Height,
	})

	// 7. 所有数值字段经过清洗后返回
	return PlacementResult{
		VerticalPosition:  position,
		TooltipStyle:      geom.Sanitize(tooltipStyle),
		ArrowStyle:        geom.Sanitize(arrowStyle),
		ArrowPointingUp:   pointingUp,
		ArrowColor:        cfg.ArrowRGBA(pointingUp),
		StepIndicatorLeft: floorf(indicatorLeft),
		MaskRect:          maskRect,
		VerticalOffset:    maskRect.Y,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func floorf(v float64) float64 {
	s := geom.Sanitize(geom.Style{"v": v})
	if fv, ok := s["v"]; ok {
		return fv
	}
	return 0
}
