package tour

import (
	"image"
	"image/color"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MaskRenderer 遮罩渲染策略
//
// 两种实现由配置的 overlayMode 选择：rect-cut 用四块矩形拼出高亮窗口，
// path-cut 用矢量路径剪出窗口（支持自定义剪裁路径）。
// 引擎只负责把清洗后的遮罩矩形发布给策略；窗口形状怎么画是策略自己的事。
type MaskRenderer interface {
	// Publish 发布新的高亮窗口矩形与视口
	Publish(mask, viewport geom.Rect)
	// Update 推进遮罩自身的形状动画（若启用）
	Update(dt float64)
	// Draw 绘制遮罩
	Draw(screen *ebiten.Image)
	// Reset 清除当前窗口状态（引导结束时调用）
	Reset()
}

// NewMaskRenderer 根据配置选择遮罩渲染策略
// clipPath 仅 path-cut 模式使用，非空时覆盖矩形窗口几何
func NewMaskRenderer(cfg *config.TourConfig, clipPath []geom.Point) MaskRenderer {
	base := newMaskState(cfg)
	if cfg.OverlayMode == config.OverlayModePathCut {
		return &PathCutMask{maskState: base, clipPath: clipPath}
	}
	return &RectCutMask{maskState: base}
}

// maskState 两种策略共享的窗口状态与形状动画
//
// 窗口矩形的形状动画独立于引擎的两条标量通道：它是纯展示层行为，
// 由 animateMask 配置开关，复用同一套时长与缓动参数。
type maskState struct {
	backdrop color.RGBA
	animate  bool
	duration float64
	easing   utils.EasingFunc

	viewport geom.Rect
	current  geom.Rect
	from     geom.Rect
	target   geom.Rect
	elapsed  float64
	active   bool // 是否已有有效窗口
	moving   bool
}

func newMaskState(cfg *config.TourConfig) maskState {
	easing, ok := utils.EasingByName(cfg.Easing)
	if !ok {
		easing = utils.EaseLinear
	}
	return maskState{
		backdrop: cfg.BackdropRGBA(),
		animate:  cfg.AnimateMask,
		duration: cfg.AnimationDuration,
		easing:   easing,
	}
}

func (m *maskState) Publish(mask, viewport geom.Rect) {
	m.viewport = viewport
	if !m.active || !m.animate || m.duration <= 0 {
		// 首个窗口直接落位，不做从无到有的形状动画
		m.current = mask
		m.target = mask
		m.active = true
		m.moving = false
		return
	}
	m.from = m.current
	m.target = mask
	m.elapsed = 0
	m.moving = true
}

func (m *maskState) Update(dt float64) {
	if !m.moving {
		return
	}
	m.elapsed += dt
	progress := m.elapsed / m.duration
	if progress >= 1 {
		m.current = m.target
		m.moving = false
		return
	}
	e := m.easing(progress)
	m.current = geom.Rect{
		X:      utils.Lerp(m.from.X, m.target.X, e),
		Y:      utils.Lerp(m.from.Y, m.target.Y, e),
		Width:  utils.Lerp(m.from.Width, m.target.Width, e),
		Height: utils.Lerp(m.from.Height, m.target.Height, e),
	}
}

func (m *maskState) Reset() {
	m.active = false
	m.moving = false
	m.current = geom.Rect{}
	m.target = geom.Rect{}
}

// Window 返回当前（可能在动画中的）高亮窗口矩形
func (m *maskState) Window() geom.Rect {
	return m.current
}

// RectCutMask 矩形拼接遮罩
// 在高亮窗口四周绘制四块背景色矩形（上横条、左竖条、右竖条、下横条）
type RectCutMask struct {
	maskState
}

// CutoutBands 计算高亮窗口四周的四块矩形
// 导出为纯函数便于测试；窗口完全覆盖视口时返回空切片
func CutoutBands(viewport, window geom.Rect) []geom.Rect {
	var bands []geom.Rect
	// 上横条
	if window.Y > 0 {
		bands = append(bands, geom.Rect{X: 0, Y: 0, Width: viewport.Width, Height: window.Y})
	}
	// 左竖条
	if window.X > 0 {
		bands = append(bands, geom.Rect{X: 0, Y: window.Y, Width: window.X, Height: window.Height})
	}
	// 右竖条
	if right := window.X + window.Width; right < viewport.Width {
		bands = append(bands, geom.Rect{X: right, Y: window.Y, Width: viewport.Width - right, Height: window.Height})
	}
	// 下横条
	if bottom := window.Y + window.Height; bottom < viewport.Height {
		bands = append(bands, geom.Rect{X: 0, Y: bottom, Width: viewport.Width, Height: viewport.Height - bottom})
	}
	return bands
}

// Draw 绘制遮罩（无有效窗口时整屏覆盖）
func (m *RectCutMask) Draw(screen *ebiten.Image) {
	if !m.active {
		vector.DrawFilledRect(screen, 0, 0, float32(m.viewport.Width), float32(m.viewport.Height), m.backdrop, false)
		return
	}
	for _, band := range CutoutBands(m.viewport, m.current) {
		vector.DrawFilledRect(screen,
			float32(band.X), float32(band.Y),
			float32(band.Width), float32(band.Height),
			m.backdrop, false)
	}
}

// PathCutMask 矢量路径遮罩
// 外圈矩形加内圈窗口子路径，按奇偶规则填充，窗口成为镂空。
// clipPath 非空时用自定义多边形（随窗口平移缩放）替代矩形窗口。
type PathCutMask struct {
	maskState
	clipPath []geom.Point
}

// Draw 绘制遮罩
func (m *PathCutMask) Draw(screen *ebiten.Image) {
	var path vector.Path

	// 外圈：整个视口
	path.MoveTo(0, 0)
	path.LineTo(float32(m.viewport.Width), 0)
	path.LineTo(float32(m.viewport.Width), float32(m.viewport.Height))
	path.LineTo(0, float32(m.viewport.Height))
	path.Close()

	if m.active {
		m.appendWindowPath(&path)
	}

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(m.backdrop.R) / 255
	g := float32(m.backdrop.G) / 255
	b := float32(m.backdrop.B) / 255
	a := float32(m.backdrop.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleEvenOdd,
		AntiAlias: true,
	}
	screen.DrawTriangles(vs, is, whiteFillImage(), op)
}

// appendWindowPath 追加窗口子路径（奇偶规则下成为镂空）
func (m *PathCutMask) appendWindowPath(path *vector.Path) {
	w := m.current
	if len(m.clipPath) >= 3 {
		// 自定义剪裁路径以单位坐标定义，映射到当前窗口
		first := m.clipPath[0]
		path.MoveTo(float32(w.X+first.X*w.Width), float32(w.Y+first.Y*w.Height))
		for _, pt := range m.clipPath[1:] {
			path.LineTo(float32(w.X+pt.X*w.Width), float32(w.Y+pt.Y*w.Height))
		}
		path.Close()
		return
	}
	path.MoveTo(float32(w.X), float32(w.Y))
	path.LineTo(float32(w.X+w.Width), float32(w.Y))
	path.LineTo(float32(w.X+w.Width), float32(w.Y+w.Height))
	path.LineTo(float32(w.X), float32(w.Y+w.Height))
	path.Close()
}

// whiteSubImage 矢量填充用的 1x1 白色纹理（ebiten 三角形绘制惯例）
// 惰性创建：只在真正进入渲染路径时分配，测试二进制不触碰图形资源
var whiteSubImage *ebiten.Image

func whiteFillImage() *ebiten.Image {
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
