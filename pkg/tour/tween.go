package tour

import "github.com/decker502/spotlight/pkg/utils"

// OffsetTween 两条长期存活的可插值标量通道
//
// 通道一：verticalOffset（高亮窗口顶边，步骤序号的垂直基准）
// 通道二：stepIndicatorLeft（步骤序号的水平偏移）
//
// 两条通道共享一次动画的时长与缓动曲线，同时启动、独立推进，
// 除此之外没有任何同步屏障。启动动画对调用方是 fire-and-forget：
// Snap/AnimateTo 立即返回，实际位移由宿主帧循环调用 Update 推进。
type OffsetTween struct {
	duration float64
	easing   utils.EasingFunc

	vertical  scalarChannel
	indicator scalarChannel
}

// scalarChannel 单条标量通道的插值状态
type scalarChannel struct {
	current   float64
	from      float64
	to        float64
	elapsed   float64
	animating bool
}

// NewOffsetTween 创建标量通道组
//
// 参数：
//   - duration: 动画时长（秒），<=0 时 AnimateTo 退化为 Snap
//   - easing: 缓动函数，nil 时使用线性
func NewOffsetTween(duration float64, easing utils.EasingFunc) *OffsetTween {
	if easing == nil {
		easing = utils.EaseLinear
	}
	return &OffsetTween{
		duration: duration,
		easing:   easing,
	}
}

// Snap 两条通道立即跳到新值（首次定位使用：从未定义的旧状态做动画会很怪）
func (t *OffsetTween) Snap(vertical, indicatorLeft float64) {
	t.vertical = scalarChannel{current: vertical, to: vertical}
	t.indicator = scalarChannel{current: indicatorLeft, to: indicatorLeft}
}

// AnimateTo 两条通道从当前值缓动到新值
// 两条动画同时启动；调用立即返回，不等待任何一条完成
func (t *OffsetTween) AnimateTo(vertical, indicatorLeft float64) {
	if t.duration <= 0 {
		t.Snap(vertical, indicatorLeft)
		return
	}
	t.vertical.start(vertical)
	t.indicator.start(indicatorLeft)
}

func (c *scalarChannel) start(to float64) {
	c.from = c.current
	c.to = to
	c.elapsed = 0
	c.animating = true
}

// Update 推进动画（宿主每帧调用，dt 为秒）
func (t *OffsetTween) Update(dt float64) {
	t.vertical.update(dt, t.duration, t.easing)
	t.indicator.update(dt, t.duration, t.easing)
}

func (c *scalarChannel) update(dt, duration float64, easing utils.EasingFunc) {
	if !c.animating {
		return
	}
	c.elapsed += dt
	progress := c.elapsed / duration
	if progress >= 1 {
		c.current = c.to
		c.animating = false
		return
	}
	c.current = utils.Lerp(c.from, c.to, easing(progress))
}

// VerticalOffset 返回垂直通道当前值
func (t *OffsetTween) VerticalOffset() float64 {
	return t.vertical.current
}

// StepIndicatorLeft 返回步骤序号通道当前值
func (t *OffsetTween) StepIndicatorLeft() float64 {
	return t.indicator.current
}

// Animating 是否有通道仍在动画中
func (t *OffsetTween) Animating() bool {
	return t.vertical.animating || t.indicator.animating
}
