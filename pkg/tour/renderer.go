package tour

import (
	"fmt"
	"image/color"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TooltipState 一次提示框渲染所需的全部信息
type TooltipState struct {
	Text        string        // 当前步骤的说明文案
	StepIndex   int           // 当前步骤下标（0 起）
	StepCount   int           // 步骤总数
	IsFirst     bool          // 是否第一步（隐藏"上一步"）
	IsLast      bool          // 是否最后一步（"下一步"换成"完成"）
	Labels      config.Labels // 按钮文案
	TooltipRect geom.Rect     // 提示框矩形（视口本地坐标）
}

// TooltipRenderer 提示框渲染策略（宿主可替换）
type TooltipRenderer interface {
	Draw(screen *ebiten.Image, state TooltipState)
}

// StepIndicatorRenderer 步骤指示徽标渲染策略（宿主可替换）
type StepIndicatorRenderer interface {
	// Draw 绘制徽标，(left, top) 为徽标外接矩形左上角
	Draw(screen *ebiten.Image, left, top, diameter float64, stepIndex, stepCount int)
}

// 默认提示框配色，与项目其他 UI 面板一致
var (
	tooltipBackgroundColor = color.RGBA{R: 255, G: 255, B: 204, A: 255} // 浅黄
	tooltipBorderColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	tooltipTextColor       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	tooltipLinkColor       = color.RGBA{R: 60, G: 60, B: 180, A: 255}
)

// DefaultTooltipRenderer 默认提示框
//
// 浅黄底、黑色 1px 边框，上方正文、下方一行操作文案
// （上一步 / 下一步 / 跳过 / 完成）。字体可选：未提供时退化为调试字体。
type DefaultTooltipRenderer struct {
	font    *text.GoTextFace
	padding float64
}

// NewDefaultTooltipRenderer 创建默认提示框
// font 可为 nil，此时用 ebitenutil 调试字体渲染（仅支持 ASCII）
func NewDefaultTooltipRenderer(font *text.GoTextFace) *DefaultTooltipRenderer {
	return &DefaultTooltipRenderer{font: font, padding: 8}
}

// MeasureHeight 估算给定正文在指定宽度下的提示框总高度
// 覆盖层用它把"top/bottom + 左右边距"的定位样式换算成具体矩形
func (r *DefaultTooltipRenderer) MeasureHeight(body string, maxWidth float64) float64 {
	lineHeight := r.lineHeight()
	lineCount := 1
	if r.font != nil {
		lineCount = len(utils.WrapText(body, r.font, maxWidth-r.padding*2))
	}
	// 正文 + 行距 + 操作行
	return r.padding*2 + float64(lineCount)*lineHeight + lineHeight + 6
}

// Draw 绘制提示框
func (r *DefaultTooltipRenderer) Draw(screen *ebiten.Image, state TooltipState) {
	rect := state.TooltipRect
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}

	// 背景
	vector.DrawFilledRect(screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		tooltipBackgroundColor, false)
	// 边框
	vector.StrokeRect(screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		1, tooltipBorderColor, false)

	// 正文
	bodyX := rect.X + r.padding
	bodyY := rect.Y + r.padding
	bodyWidth := rect.Width - r.padding*2
	r.drawBody(screen, state.Text, bodyX, bodyY, bodyWidth)

	// 操作行：左侧"跳过/上一步"，右侧"下一步/完成"
	actions := r.actionLine(state)
	actionY := rect.Y + rect.Height - r.padding - r.lineHeight()
	r.drawText(screen, actions, bodyX, actionY, tooltipLinkColor)
}

// actionLine 拼装底部操作文案
func (r *DefaultTooltipRenderer) actionLine(state TooltipState) string {
	var left, right string
	if state.IsLast {
		right = state.Labels.Finish
	} else {
		right = state.Labels.Next
	}
	if state.IsFirst {
		left = state.Labels.Skip
	} else {
		left = state.Labels.Previous + "  " + state.Labels.Skip
	}
	progress := fmt.Sprintf("%d/%d", state.StepIndex+1, state.StepCount)
	return left + "  " + progress + "  " + right
}

func (r *DefaultTooltipRenderer) lineHeight() float64 {
	if r.font == nil {
		return 16
	}
	metrics := r.font.Metrics()
	return metrics.HAscent + metrics.HDescent
}

// drawBody 渲染正文（按提示框宽度换行）
func (r *DefaultTooltipRenderer) drawBody(screen *ebiten.Image, body string, x, y, maxWidth float64) {
	if r.font == nil {
		ebitenutil.DebugPrintAt(screen, body, int(x), int(y))
		return
	}
	lines := utils.WrapText(body, r.font, maxWidth)
	lineHeight := r.lineHeight()
	for i, line := range lines {
		r.drawText(screen, line, x, y+float64(i)*lineHeight, tooltipTextColor)
	}
}

func (r *DefaultTooltipRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.RGBA) {
	if r.font == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.font, op)
}

// DefaultStepIndicatorRenderer 默认步骤徽标：实心圆加 "N/M" 文本
type DefaultStepIndicatorRenderer struct {
	font       *text.GoTextFace
	background color.RGBA
	foreground color.RGBA
}

// NewDefaultStepIndicatorRenderer 创建默认步骤徽标
func NewDefaultStepIndicatorRenderer(font *text.GoTextFace) *DefaultStepIndicatorRenderer {
	return &DefaultStepIndicatorRenderer{
		font:       font,
		background: color.RGBA{R: 0, G: 0, B: 0, A: 230},
		foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Draw 绘制徽标
func (r *DefaultStepIndicatorRenderer) Draw(screen *ebiten.Image, left, top, diameter float64, stepIndex, stepCount int) {
	radius := diameter / 2
	cx := left + radius
	cy := top + radius
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), r.background, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 1, r.foreground, true)

	label := fmt.Sprintf("%d/%d", stepIndex+1, stepCount)
	if r.font == nil {
		ebitenutil.DebugPrintAt(screen, label, int(cx)-8, int(cy)-8)
		return
	}
	width, _ := text.Measure(label, r.font, 0)
	metrics := r.font.Metrics()
	lineHeight := metrics.HAscent + metrics.HDescent
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-width/2, cy-lineHeight/2)
	op.ColorScale.ScaleWithColor(r.foreground)
	text.Draw(screen, label, r.font, op)
}

// DrawArrow 绘制指向高亮目标的三角箭头
//
// box 为箭头外接盒（边长 2*arrowSize 的正方形），pointingUp 决定箭头
// 朝向：提示框在目标下方时箭头朝上，反之朝下。
func DrawArrow(screen *ebiten.Image, box geom.Rect, pointingUp bool, clr color.RGBA) {
	var path vector.Path
	if pointingUp {
		// 顶点在上边中点，底边在下
		path.MoveTo(float32(box.X+box.Width/2), float32(box.Y))
		path.LineTo(float32(box.X+box.Width), float32(box.Y+box.Height))
		path.LineTo(float32(box.X), float32(box.Y+box.Height))
	} else {
		// 顶点在下边中点，底边在上
		path.MoveTo(float32(box.X), float32(box.Y))
		path.LineTo(float32(box.X+box.Width), float32(box.Y))
		path.LineTo(float32(box.X+box.Width/2), float32(box.Y+box.Height))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteFillImage(), op)
}
