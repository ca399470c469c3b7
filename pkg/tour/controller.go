package tour

import (
	"fmt"
	"log"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/frame"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/utils"
)

// PlacementController 定位控制器（编排器）
//
// 对外唯一的命令式入口是 AnimateMove：每次调用依序完成
// 挂载 -> 单帧延迟 -> 视口测量 -> 定位计算 -> 动画启动 -> 状态发布。
// 返回的 Promise 在状态发布后立即完成，从不等待动画走完——调用方
// 得到的保证只是"新目标已被接受、渲染已被触发"。
//
// 并发模型：快速连续调用之间没有取消；每次调用持有一个单调递增的
// 序号，只有仍是最新序号的调用才会发布结果（"最后请求者胜"），
// 过期调用跳过发布但仍然完成自己的 Promise。
type PlacementController struct {
	sched     *frame.Scheduler
	measurer  *ViewportMeasurer
	tween     *OffsetTween
	visible   *VisibilityState
	cfg       *config.TourConfig
	sequencer Sequencer

	seq        uint64 // 已签发的最新序号
	isAnimated bool   // 首次定位之后为 true，后续移动做缓动
	placement  *PlacementResult

	// statusBarInset 定位计算使用的状态栏高度，默认取平台值，测试可注入
	statusBarInset float64

	// onPublish 每次定位结果发布后的通知（渲染层订阅）
	onPublish func(*PlacementResult)
}

// NewPlacementController 创建定位控制器
//
// 参数：
//   - sched: 宿主帧调度器
//   - cfg: 已 Resolve 的配置
//   - sequencer: 步骤序列控制器，布局驱动路径用它测量当前步骤；可为 nil
func NewPlacementController(sched *frame.Scheduler, cfg *config.TourConfig, sequencer Sequencer) *PlacementController {
	easing, ok := utils.EasingByName(cfg.Easing)
	if !ok {
		log.Printf("[PlacementController] Unknown easing %q, falling back to linear", cfg.Easing)
		easing = utils.EaseLinear
	}
	return &PlacementController{
		sched:          sched,
		measurer:       NewViewportMeasurer(),
		tween:          NewOffsetTween(cfg.AnimationDuration, easing),
		visible:        NewVisibilityState(),
		cfg:            cfg,
		sequencer:      sequencer,
		statusBarInset: utils.StatusBarHeight(),
	}
}

// SetOnPublish 注册定位结果发布回调
func (c *PlacementController) SetOnPublish(fn func(*PlacementResult)) {
	c.onPublish = fn
}

// Measurer 返回视口测量器（宿主布局事件写入用）
func (c *PlacementController) Measurer() *ViewportMeasurer {
	return c.measurer
}

// Tween 返回标量通道组（渲染层读取当前插值用）
func (c *PlacementController) Tween() *OffsetTween {
	return c.tween
}

// Visibility 返回可见性状态机
func (c *PlacementController) Visibility() *VisibilityState {
	return c.visible
}

// Placement 返回最近发布的定位结果，尚未发布时为 nil
func (c *PlacementController) Placement() *PlacementResult {
	return c.placement
}

// SetTourActive 切换引导激活状态
// 关闭时丢弃已存储的定位并重置动画标志，下次激活的首次定位重新瞬移
func (c *PlacementController) SetTourActive(active bool) {
	if !c.visible.SetTourActive(active) {
		return
	}
	if !active {
		c.placement = nil
		c.isAnimated = false
		log.Printf("[PlacementController] Tour deactivated, state reset")
	}
}

// AnimateMove 把覆盖层移动到新的目标矩形
//
// 序列：
//  1. 标记容器已挂载（幂等）
//  2. 推迟到下一帧再开始，避免与刚请求的挂载竞争
//  3. 等待视口测量（有界超时）
//  4. 计算定位；isAnimated 标志决定缓动还是瞬移
//  5. 立即发布样式与遮罩矩形（不等动画完成）
//  6. 发布即完成 Promise
//  7. 首次调用之后 isAnimated 置 true
//
// 测量超时以包装 ErrMeasureTimeout 的错误完成 Promise。
func (c *PlacementController) AnimateMove(target geom.Rect) *frame.Promise {
	c.seq++
	seq := c.seq
	c.visible.MountContainer()

	p := frame.NewPromise()
	c.sched.Post(func() {
		c.measurer.AwaitLayout(c.sched, c.cfg.MeasureTimeoutFrames).Then(func(err error) {
			if err != nil {
				p.Reject(fmt.Errorf("animate move: %w", err))
				return
			}
			c.publish(seq, target, p)
		})
	})
	return p
}

// publish 发布一次定位结果
// 过期序号与已卸载容器都跳过发布（存活检查），但 Promise 照常完成，
// 保证每次 AnimateMove 恰好产生一次完成通知。
func (c *PlacementController) publish(seq uint64, target geom.Rect, p *frame.Promise) {
	if seq != c.seq {
		log.Printf("[PlacementController] Dropping stale placement (seq %d < %d)", seq, c.seq)
		p.Resolve()
		return
	}
	if !c.visible.ContainerMounted() {
		log.Printf("[PlacementController] Container unmounted, skipping publication")
		p.Resolve()
		return
	}

	result := CalculatePlacement(target, c.measurer.Latest(), c.cfg, c.statusBarInset)
	c.placement = &result

	if c.isAnimated {
		c.tween.AnimateTo(result.VerticalOffset, result.StepIndicatorLeft)
	} else {
		c.tween.Snap(result.VerticalOffset, result.StepIndicatorLeft)
	}

	c.visible.MarkPlaced()
	if c.onPublish != nil {
		c.onPublish(c.placement)
	}

	// 首次定位之后的移动才做缓动
	c.isAnimated = true

	// 发布即完成；动画在后台由帧循环推进
	p.Resolve()
}

// HandleLayout 布局驱动的定位入口
//
// 宿主容器自身的布局事件到达时调用：记录最新视口，测量当前激活步骤，
// 将其矩形向四周扩展固定留白后转发给 AnimateMove。
// 没有激活步骤或步骤不可测量时是良性无操作。
func (c *PlacementController) HandleLayout(container geom.Rect) {
	c.measurer.SetLayout(container)

	if c.sequencer == nil || !c.sequencer.Visible() {
		return
	}
	step := c.sequencer.CurrentStep()
	if step == nil {
		return
	}
	rect, ok := step.Measure()
	if !ok {
		log.Printf("[PlacementController] Current step not measurable, ignoring layout event")
		return
	}
	c.AnimateMove(rect.Inset(-c.cfg.TargetPadding))
}

// Update 推进动画（宿主每帧调用）
func (c *PlacementController) Update(dt float64) {
	c.tween.Update(dt)
}
