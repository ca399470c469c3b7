// Package config 提供遮罩引导系统的配置结构与默认值
//
// 配置的解析遵循"显式默认值 + 单次合并"的原则：每个覆盖层实例在创建时
// 解析一次完整配置，运行期不再读取任何全局默认值。
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// 覆盖层遮罩渲染模式
const (
	// OverlayModePathCut 使用矢量路径剪出高亮窗口（支持自定义剪裁路径）
	OverlayModePathCut = "path-cut"
	// OverlayModeRectCut 使用四块矩形拼出高亮窗口（默认，最快）
	OverlayModeRectCut = "rect-cut"
)

// 返回手势行为
const (
	// BackBehaviorNoop 忽略返回手势
	BackBehaviorNoop = "noop"
	// BackBehaviorStop 返回手势结束整个引导
	BackBehaviorStop = "stop"
	// BackBehaviorPrev 返回手势回到上一步
	BackBehaviorPrev = "prev"
)

// 默认视觉常量
const (
	// DefaultMargin 提示框与目标/视口边缘的间距（像素）
	DefaultMargin = 13.0
	// DefaultArrowSize 指示箭头的半宽（像素）
	DefaultArrowSize = 6.0
	// DefaultStepIndicatorDiameter 步骤序号圆形标记的直径（像素）
	DefaultStepIndicatorDiameter = 28.0
	// DefaultAnimationDuration 位移动画时长（秒）
	DefaultAnimationDuration = 0.4
	// DefaultEasing 位移动画缓动曲线名称
	DefaultEasing = "easeInOutCubic"
	// DefaultMeasureTimeoutFrames 等待视口测量的最大帧数（60fps 下约 10 秒）
	DefaultMeasureTimeoutFrames = 600
	// DefaultTargetPadding 步骤控件实测矩形四周扩展的高亮留白（像素）
	DefaultTargetPadding = 4.0
)

// Labels 提示框按钮文案
type Labels struct {
	Finish   string `yaml:"finish"`   // 最后一步的完成按钮
	Next     string `yaml:"next"`     // 下一步按钮
	Previous string `yaml:"previous"` // 上一步按钮
	Skip     string `yaml:"skip"`     // 跳过按钮
}

// TourConfig 引导覆盖层配置
//
// 所有字段都有默认值，零值字段在 Resolve 时回填。
// 可编程字段（渲染器、自定义剪裁路径、字体）不在此结构中，
// 由 tour.Options 在代码中提供。
type TourConfig struct {
	// Easing 位移动画缓动曲线名称（见 utils.EasingByName）
	Easing string `yaml:"easing"`
	// AnimationDuration 位移动画时长（秒）
	AnimationDuration float64 `yaml:"animationDuration"`
	// OverlayMode 遮罩渲染模式："path-cut" 或 "rect-cut"
	OverlayMode string `yaml:"overlayMode"`
	// AnimateMask 高亮窗口形状本身是否在两次定位之间做动画
	AnimateMask bool `yaml:"animateMask"`
	// StatusBarVisible 系统状态栏当前是否可见
	// 状态栏隐藏时定位计算会从目标纵坐标中扣除状态栏高度（仅移动端）
	StatusBarVisible bool `yaml:"statusBarVisible"`
	// BackdropColor 遮罩背景色（#RRGGBB 或 #RRGGBBAA）
	BackdropColor string `yaml:"backdropColor"`
	// ArrowColor 箭头默认填充色
	ArrowColor string `yaml:"arrowColor"`
	// ArrowColorUp 箭头朝上（提示框在目标下方）时的填充色，为空时用 ArrowColor
	ArrowColorUp string `yaml:"arrowColorUp"`
	// ArrowColorDown 箭头朝下（提示框在目标上方）时的填充色，为空时用 ArrowColor
	ArrowColorDown string `yaml:"arrowColorDown"`
	// ArrowSize 箭头半宽（像素）
	ArrowSize float64 `yaml:"arrowSize"`
	// Margin 提示框间距（像素）
	Margin float64 `yaml:"margin"`
	// StepIndicatorDiameter 步骤序号标记直径（像素）
	StepIndicatorDiameter float64 `yaml:"stepIndicatorDiameter"`
	// Labels 按钮文案
	Labels Labels `yaml:"labels"`
	// AdvanceOnOutsideTap 点击遮罩是否前进到下一步（最后一步则结束引导）
	AdvanceOnOutsideTap bool `yaml:"advanceOnOutsideTap"`
	// BackBehavior 返回手势行为："noop"、"stop" 或 "prev"
	BackBehavior string `yaml:"backBehavior"`
	// MeasureTimeoutFrames 等待视口测量的最大帧数，<=0 使用默认值
	MeasureTimeoutFrames int `yaml:"measureTimeoutFrames"`
	// TargetPadding 步骤控件实测矩形的对称扩展留白（像素）
	TargetPadding float64 `yaml:"targetPadding"`
}

// DefaultTourConfig 返回带全部默认值的配置
func DefaultTourConfig() *TourConfig {
	return &TourConfig{
		Easing:                DefaultEasing,
		AnimationDuration:     DefaultAnimationDuration,
		OverlayMode:           OverlayModeRectCut,
		AnimateMask:           true,
		StatusBarVisible:      true,
		BackdropColor:         "#000000B3",
		ArrowColor:            "#FFFFFF",
		ArrowSize:             DefaultArrowSize,
		Margin:                DefaultMargin,
		StepIndicatorDiameter: DefaultStepIndicatorDiameter,
		Labels: Labels{
			Finish:   "完成",
			Next:     "下一步",
			Previous: "上一步",
			Skip:     "跳过",
		},
		AdvanceOnOutsideTap:  false,
		BackBehavior:         BackBehaviorNoop,
		MeasureTimeoutFrames: DefaultMeasureTimeoutFrames,
		TargetPadding:        DefaultTargetPadding,
	}
}

// Resolve 校验配置并回填零值字段的默认值
// 返回配置本身，便于链式调用
func (c *TourConfig) Resolve() (*TourConfig, error) {
	def := DefaultTourConfig()

	if c.Easing == "" {
		c.Easing = def.Easing
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = def.AnimationDuration
	}
	if c.OverlayMode == "" {
		c.OverlayMode = def.OverlayMode
	}
	if c.OverlayMode != OverlayModePathCut && c.OverlayMode != OverlayModeRectCut {
		return nil, fmt.Errorf("invalid overlayMode %q", c.OverlayMode)
	}
	if c.BackdropColor == "" {
		c.BackdropColor = def.BackdropColor
	}
	if c.ArrowColor == "" {
		c.ArrowColor = def.ArrowColor
	}
	// 朝上/朝下箭头色默认都取箭头色
	if c.ArrowColorUp == "" {
		c.ArrowColorUp = c.ArrowColor
	}
	if c.ArrowColorDown == "" {
		c.ArrowColorDown = c.ArrowColor
	}
	if c.ArrowSize <= 0 {
		c.ArrowSize = def.ArrowSize
	}
	if c.Margin <= 0 {
		c.Margin = def.Margin
	}
	if c.StepIndicatorDiameter <= 0 {
		c.StepIndicatorDiameter = def.StepIndicatorDiameter
	}
	if c.Labels.Finish == "" {
		c.Labels.Finish = def.Labels.Finish
	}
	if c.Labels.Next == "" {
		c.Labels.Next = def.Labels.Next
	}
	if c.Labels.Previous == "" {
		c.Labels.Previous = def.Labels.Previous
	}
	if c.Labels.Skip == "" {
		c.Labels.Skip = def.Labels.Skip
	}
	if c.BackBehavior == "" {
		c.BackBehavior = def.BackBehavior
	}
	switch c.BackBehavior {
	case BackBehaviorNoop, BackBehaviorStop, BackBehaviorPrev:
	default:
		return nil, fmt.Errorf("invalid backBehavior %q", c.BackBehavior)
	}
	if c.MeasureTimeoutFrames <= 0 {
		c.MeasureTimeoutFrames = def.MeasureTimeoutFrames
	}
	if c.TargetPadding <= 0 {
		c.TargetPadding = def.TargetPadding
	}

	// 颜色字符串必须可解析，提前失败好于渲染时静默黑块
	for _, s := range []string{c.BackdropColor, c.ArrowColor, c.ArrowColorUp, c.ArrowColorDown} {
		if _, err := ParseHexColor(s); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
	}

	return c, nil
}

// LoadTourConfig 从 YAML 文件加载配置并回填默认值
//
// 参数：
//   - path: 配置文件路径（如 "assets/config/tour.yaml"）
//
// 返回：
//   - *TourConfig: 解析并合并默认值后的配置
//   - error: 文件读取或解析失败时返回错误
func LoadTourConfig(path string) (*TourConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour config: %w", err)
	}

	cfg := &TourConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tour config: %w", err)
	}

	return cfg.Resolve()
}

// BackdropRGBA 返回解析后的遮罩背景色
// 必须在 Resolve 之后调用（Resolve 已保证颜色可解析）
func (c *TourConfig) BackdropRGBA() color.RGBA {
	clr, _ := ParseHexColor(c.BackdropColor)
	return clr
}

// ArrowRGBA 返回指定方向的箭头填充色
// pointingUp 为 true 表示箭头朝上（提示框在目标下方）
func (c *TourConfig) ArrowRGBA(pointingUp bool) color.RGBA {
	s := c.ArrowColorDown
	if pointingUp {
		s = c.ArrowColorUp
	}
	clr, _ := ParseHexColor(s)
	return clr
}

// StepIndicatorRadius 返回步骤序号标记的半径
func (c *TourConfig) StepIndicatorRadius() float64 {
	return c.StepIndicatorDiameter / 2
}
