// Package utils 提供遮罩引导系统的通用工具函数
package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数控制高亮区域与步骤序号在两次定位之间的过渡速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于高亮框滑向新目标的动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值；t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easingsByName 配置文件中缓动名称到函数的映射
var easingsByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutQuad":    EaseOutQuad,
	"easeInQuad":     EaseInQuad,
	"easeOutExpo":    EaseOutExpo,
}

// EasingByName 根据名称查找缓动函数
// 未知名称返回 (nil, false)，由调用方决定回退策略
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easingsByName[name]
	return fn, ok
}
