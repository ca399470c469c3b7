package tour

import (
	"errors"
	"fmt"

	"github.com/decker502/spotlight/pkg/frame"
	"github.com/decker502/spotlight/pkg/geom"
)

// ErrMeasureTimeout 视口在限定帧数内始终报告零宽度
var ErrMeasureTimeout = errors.New("tour: layout measurement timed out")

// ViewportMeasurer 视口测量器
//
// 宿主的首轮布局可能报告零尺寸，覆盖层必须等到第一个非零宽度的布局
// 之后才能计算定位。布局事件通过 SetLayout 同步写入（独立于渲染周期，
// 避免读到过期值），AwaitLayout 逐帧轮询最新值直到宽度非零。
type ViewportMeasurer struct {
	latest geom.Rect
}

// NewViewportMeasurer 创建视口测量器
func NewViewportMeasurer() *ViewportMeasurer {
	return &ViewportMeasurer{}
}

// SetLayout 记录最新观察到的视口布局
// 由宿主的布局事件回调同步调用
func (m *ViewportMeasurer) SetLayout(layout geom.Rect) {
	m.latest = layout
}

// Latest 返回最近一次观察到的视口布局
// 宽度为 0 表示宿主还没有完成过一轮有效布局
func (m *ViewportMeasurer) Latest() geom.Rect {
	return m.latest
}

// AwaitLayout 等待视口报告非零宽度的布局
//
// 通过帧调度器逐帧协作轮询，成功后 Promise 以 nil 完成，调用方随后
// 用 Latest 读取权威布局。超过 timeoutFrames 帧仍为零宽度时以
// ErrMeasureTimeout 失败（宿主永不布局的已知隐患由此收敛为有界错误）。
// timeoutFrames <= 0 表示不设上限。
func (m *ViewportMeasurer) AwaitLayout(s *frame.Scheduler, timeoutFrames int) *frame.Promise {
	p := frame.NewPromise()
	s.Poll(func() bool {
		return m.latest.Width != 0
	}, timeoutFrames, func(err error) {
		if err != nil {
			p.Reject(fmt.Errorf("%w: %v", ErrMeasureTimeout, err))
			return
		}
		p.Resolve()
	})
	return p
}
