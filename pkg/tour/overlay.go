package tour

import (
	"fmt"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/frame"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Options 覆盖层的可编程选项（配置文件表达不了的部分）
type Options struct {
	// Font 提示框与步骤徽标字体，nil 时退化为调试字体
	Font *text.GoTextFace
	// ClipPath path-cut 模式的自定义剪裁路径（单位坐标，随高亮窗口缩放）
	ClipPath []geom.Point
	// Tooltip 自定义提示框渲染器，nil 用默认实现
	Tooltip TooltipRenderer
	// StepIndicator 自定义步骤徽标渲染器，nil 用默认实现
	StepIndicator StepIndicatorRenderer
	// Mask 自定义遮罩渲染器，nil 按 overlayMode 选择默认实现
	Mask MaskRenderer
}

// tooltipHeightMeasurer 能根据正文估算自身高度的提示框渲染器
// 默认实现支持；自定义渲染器不支持时覆盖层用固定高度兜底
type tooltipHeightMeasurer interface {
	MeasureHeight(body string, maxWidth float64) float64
}

// fallbackTooltipHeight 渲染器无法估算高度时的兜底值
const fallbackTooltipHeight = 96.0

// Overlay 聚光灯引导覆盖层
//
// 把定位引擎、步骤序列、遮罩与渲染器装配成一个可直接嵌入
// ebiten 帧循环的对象：宿主在 Update 里喂帧、在 Draw 里出图，
// 布局变化时调 SetViewport，其余交互（点击前进、返回手势）由
// 覆盖层按配置处理。
type Overlay struct {
	cfg        *config.TourConfig
	sched      *frame.Scheduler
	controller *PlacementController
	manager    *Manager

	mask      MaskRenderer
	tooltip   TooltipRenderer
	indicator StepIndicatorRenderer

	viewport geom.Rect
}

// NewOverlay 创建覆盖层
//
// 参数：
//   - cfg: 配置（内部会 Resolve，零值字段回填默认值）
//   - manager: 步骤序列管理器
//   - opts: 可编程选项，可为 nil
func NewOverlay(cfg *config.TourConfig, manager *Manager, opts *Options) (*Overlay, error) {
	if manager == nil {
		return nil, fmt.Errorf("new overlay: manager is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if _, err := cfg.Resolve(); err != nil {
		return nil, fmt.Errorf("new overlay: %w", err)
	}
	if opts == nil {
		opts = &Options{}
	}

	sched := frame.NewScheduler()
	o := &Overlay{
		cfg:        cfg,
		sched:      sched,
		controller: NewPlacementController(sched, cfg, manager),
		manager:    manager,
		mask:       opts.Mask,
		tooltip:    opts.Tooltip,
		indicator:  opts.StepIndicator,
	}
	if o.mask == nil {
		o.mask = NewMaskRenderer(cfg, opts.ClipPath)
	}
	if o.tooltip == nil {
		o.tooltip = NewDefaultTooltipRenderer(opts.Font)
	}
	if o.indicator == nil {
		o.indicator = NewDefaultStepIndicatorRenderer(opts.Font)
	}

	o.controller.SetOnPublish(func(result *PlacementResult) {
		o.mask.Publish(result.MaskRect, o.viewport)
	})
	manager.SetOnStepChange(func(step *TourStep, index int) {
		o.controller.SetTourActive(true)
		o.moveToStep(step)
	})
	manager.SetOnStop(func(completed bool) {
		o.controller.SetTourActive(false)
		o.mask.Reset()
	})
	return o, nil
}

// DefaultConfig 返回带全部默认值的配置（config 包的再导出，少一个 import）
func DefaultConfig() *config.TourConfig {
	return config.DefaultTourConfig()
}

// Controller 返回定位控制器（高级用法/测试）
func (o *Overlay) Controller() *PlacementController {
	return o.controller
}

// Manager 返回步骤序列管理器
func (o *Overlay) Manager() *Manager {
	return o.manager
}

// Start 从第一步开始引导
func (o *Overlay) Start() error {
	return o.manager.Start()
}

// Stop 中途结束引导
func (o *Overlay) Stop() {
	o.manager.Stop()
}

// SetViewport 宿主布局事件入口
// 视口尺寸变化时记录新布局并重新定位当前步骤
func (o *Overlay) SetViewport(width, height float64) {
	rect := geom.Rect{Width: width, Height: height}
	if rect == o.viewport {
		return
	}
	o.viewport = rect
	o.controller.HandleLayout(rect)
}

// moveToStep 测量步骤目标并下发移动命令
func (o *Overlay) moveToStep(step *TourStep) {
	rect, ok := step.Target.Measure()
	if !ok {
		// 目标尚不可测量，等下一次布局事件重试
		return
	}
	o.controller.AnimateMove(rect.Inset(-o.cfg.TargetPadding))
}

// Update 推进覆盖层（宿主每帧调用，dt 单位为秒）
func (o *Overlay) Update(dt float64) {
	o.sched.Update()
	o.controller.Update(dt)
	o.mask.Update(dt)

	if !o.manager.Visible() {
		return
	}
	o.handleInput()
}

// handleInput 处理点击与返回手势
func (o *Overlay) handleInput() {
	if utils.IsBackJustPressed() {
		switch o.cfg.BackBehavior {
		case config.BackBehaviorStop:
			o.manager.Stop()
		case config.BackBehaviorPrev:
			o.manager.GoToPrevious()
		}
		return
	}

	tapped, x, y := utils.IsJustTouchedOrClicked()
	if !tapped || !o.controller.Visibility().ContentVisible() {
		return
	}
	pt := geom.Point{X: float64(x), Y: float64(y)}
	if rect, ok := o.tooltipRect(); ok && rect.Contains(pt.X, pt.Y) {
		// 点提示框：前进（最后一步收尾结束）
		o.manager.GoToNext()
		return
	}
	if o.cfg.AdvanceOnOutsideTap {
		o.manager.GoToNext()
	}
}

// tooltipRect 把当前定位样式换算成提示框矩形
func (o *Overlay) tooltipRect() (geom.Rect, bool) {
	placement := o.controller.Placement()
	if placement == nil {
		return geom.Rect{}, false
	}
	style := placement.TooltipStyle

	left := style[geom.StyleLeft]
	width := o.viewport.Width - left - style[geom.StyleRight]
	if width <= 0 {
		return geom.Rect{}, false
	}

	height := fallbackTooltipHeight
	if m, ok := o.tooltip.(tooltipHeightMeasurer); ok {
		if step := o.manager.CurrentTourStep(); step != nil {
			height = m.MeasureHeight(step.Text, width)
		}
	}

	var top float64
	if v, ok := style[geom.StyleTop]; ok {
		top = v
	} else if v, ok := style[geom.StyleBottom]; ok {
		top = o.viewport.Height - v - height
	} else {
		return geom.Rect{}, false
	}
	return geom.Rect{X: left, Y: top, Width: width, Height: height}, true
}

// arrowBox 把当前箭头样式换算成外接盒
func (o *Overlay) arrowBox(placement *PlacementResult) (geom.Rect, bool) {
	style := placement.ArrowStyle
	size := 2 * o.cfg.ArrowSize

	right, ok := style[geom.StyleRight]
	if !ok {
		return geom.Rect{}, false
	}
	left := o.viewport.Width - right - size

	var top float64
	if v, ok := style[geom.StyleTop]; ok {
		top = v
	} else if v, ok := style[geom.StyleBottom]; ok {
		top = o.viewport.Height - v - size
	} else {
		return geom.Rect{}, false
	}
	return geom.Rect{X: left, Y: top, Width: size, Height: size}, true
}

// Draw 绘制覆盖层（宿主在自己的场景之后调用）
func (o *Overlay) Draw(screen *ebiten.Image) {
	vis := o.controller.Visibility()
	if !vis.ModalVisible() {
		return
	}
	o.mask.Draw(screen)

	if !vis.ContentVisible() {
		return
	}
	placement := o.controller.Placement()
	step := o.manager.CurrentTourStep()
	if placement == nil || step == nil {
		return
	}

	if rect, ok := o.tooltipRect(); ok {
		o.tooltip.Draw(screen, TooltipState{
			Text:        step.Text,
			StepIndex:   o.manager.StepIndex(),
			StepCount:   o.manager.StepCount(),
			IsFirst:     o.manager.IsFirstStep(),
			IsLast:      o.manager.IsLastStep(),
			Labels:      o.cfg.Labels,
			TooltipRect: rect,
		})
	}

	if box, ok := o.arrowBox(placement); ok {
		DrawArrow(screen, box, placement.ArrowPointingUp, placement.ArrowColor)
	}

	radius := o.cfg.StepIndicatorRadius()
	o.indicator.Draw(screen,
		o.controller.Tween().StepIndicatorLeft(),
		o.controller.Tween().VerticalOffset()-radius,
		o.cfg.StepIndicatorDiameter,
		o.manager.StepIndex(), o.manager.StepCount())
}
