// Package geom 提供遮罩引导系统使用的基础几何类型
//
// 所有坐标均为视口本地坐标（左上角为原点，向右 X 增大，向下 Y 增大）。
package geom

import "math"

// Rect 轴对齐矩形
// 经过 Sanitize 处理后，所有字段都是有限的整数值，Width/Height >= 0
type Rect struct {
	X      float64 // 左上角 X 坐标
	Y      float64 // 左上角 Y 坐标
	Width  float64 // 宽度
	Height float64 // 高度
}

// IsZero 判断矩形是否为零值
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// Contains 判断点 (x, y) 是否在矩形内部（含左/上边界，不含右/下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// CenterY 返回矩形垂直中心坐标
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Inset 返回四边各向内收缩 d 的矩形（d 为负时向外扩展）
// 用于将步骤控件的实测矩形扩展出固定的高亮留白
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}

// Style 部分约束的盒子样式
// 键为边名（"top"/"bottom"/"left"/"right"），值为到视口对应边的距离（像素）
// 缺失的键表示该边不受约束，消费方不得将缺失视为 0
type Style map[string]float64

// 样式键名
const (
	StyleTop    = "top"
	StyleBottom = "bottom"
	StyleLeft   = "left"
	StyleRight  = "right"
)

// Get 读取样式字段
// 返回值和字段是否存在；缺失字段返回 (0, false)
func (s Style) Get(key string) (float64, bool) {
	v, ok := s[key]
	return v, ok
}

// Sanitize 清洗样式字段，保证可安全用于渲染
//
// 规则：
//  1. 每个数值向下取整（math.Floor），消除相邻遮罩/提示框边缘的亚像素缝隙
//  2. 非有限值（NaN/Inf）的字段整体删除——失效的测量值不能以 0 的形式
//     污染下游，缺失字段语义为"该边不受约束"
//
// 纯函数、全函数、幂等：对已清洗的样式再次清洗是无操作
func Sanitize(s Style) Style {
	out := make(Style, len(s))
	for key, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[key] = math.Floor(v)
	}
	return out
}

// SanitizeRect 清洗矩形的所有字段
// 非有限字段退化为 0（矩形不允许缺边），其余字段向下取整
func SanitizeRect(r Rect) Rect {
	return Rect{
		X:      floorOrZero(r.X),
		Y:      floorOrZero(r.Y),
		Width:  floorOrZero(r.Width),
		Height: floorOrZero(r.Height),
	}
}

func floorOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Floor(v)
}
