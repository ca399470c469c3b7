// 定位计算验证工具
//
// 无窗口运行：给定视口与目标矩形，打印完整的定位结果，
// 用于排查提示框/箭头/步骤序号/遮罩的几何问题。
//
// 用法示例：
//
//	go run ./cmd/verify_placement -viewport 400x800 -target 20,20,100,40
//	go run ./cmd/verify_placement -viewport 400x800 -target 20,700,100,40 -status-bar-hidden
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/tour"
)

var (
	viewportFlag    = flag.String("viewport", "400x800", "视口尺寸，格式 WxH")
	targetFlag      = flag.String("target", "20,20,100,40", "目标矩形，格式 x,y,w,h")
	configPath      = flag.String("config", "", "引导配置文件路径（YAML），为空使用默认配置")
	statusBarHidden = flag.Bool("status-bar-hidden", false, "状态栏隐藏（坐标整体上移状态栏高度）")
	statusBarInset  = flag.Float64("status-bar-inset", 24, "状态栏高度（像素）")
	padding         = flag.Bool("padding", false, "先按配置的高亮留白扩展目标矩形")
)

func main() {
	flag.Parse()

	viewport, err := parseViewport(*viewportFlag)
	if err != nil {
		log.Fatalf("解析视口失败: %v", err)
	}
	target, err := parseRect(*targetFlag)
	if err != nil {
		log.Fatalf("解析目标矩形失败: %v", err)
	}

	cfg := config.DefaultTourConfig()
	if *configPath != "" {
		cfg, err = config.LoadTourConfig(*configPath)
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
	} else if _, err := cfg.Resolve(); err != nil {
		log.Fatalf("配置解析失败: %v", err)
	}
	cfg.StatusBarVisible = !*statusBarHidden

	if *padding {
		target = target.Inset(-cfg.TargetPadding)
	}

	result := tour.CalculatePlacement(target, viewport, cfg, *statusBarInset)

	fmt.Printf("视口: %gx%g  目标: {%g, %g, %g, %g}\n\n",
		viewport.Width, viewport.Height,
		target.X, target.Y, target.Width, target.Height)
	fmt.Printf("垂直侧:        %s\n", result.VerticalPosition)
	fmt.Printf("提示框样式:    %s\n", formatStyle(result.TooltipStyle))
	fmt.Printf("箭头样式:      %s (朝上=%v)\n", formatStyle(result.ArrowStyle), result.ArrowPointingUp)
	fmt.Printf("步骤序号 left: %g\n", result.StepIndicatorLeft)
	fmt.Printf("遮罩矩形:      {%g, %g, %g, %g}\n",
		result.MaskRect.X, result.MaskRect.Y, result.MaskRect.Width, result.MaskRect.Height)
	fmt.Printf("垂直动画目标:  %g\n", result.VerticalOffset)

	// 不变式自检
	failures := 0
	if result.StepIndicatorLeft < 0 || result.StepIndicatorLeft > viewport.Width-cfg.StepIndicatorDiameter {
		fmt.Printf("\n[FAIL] 步骤序号超出视口: %g\n", result.StepIndicatorLeft)
		failures++
	}
	if result.MaskRect.X < 0 || result.MaskRect.Y < 0 {
		fmt.Printf("\n[FAIL] 遮罩原点为负: {%g, %g}\n", result.MaskRect.X, result.MaskRect.Y)
		failures++
	}
	if failures > 0 {
		os.Exit(1)
	}
	fmt.Println("\n不变式检查通过")
}

// parseViewport 解析 "WxH" 格式的视口尺寸
func parseViewport(s string) (geom.Rect, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return geom.Rect{}, fmt.Errorf("期望 WxH 格式, 实际 %q", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("宽度无效: %w", err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("高度无效: %w", err)
	}
	return geom.Rect{Width: w, Height: h}, nil
}

// parseRect 解析 "x,y,w,h" 格式的矩形
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("期望 x,y,w,h 格式, 实际 %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("字段 %d 无效: %w", i, err)
		}
		vals[i] = v
	}
	return geom.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// formatStyle 按固定键序打印部分盒子样式
func formatStyle(style geom.Style) string {
	var parts []string
	for _, key := range []string{geom.StyleTop, geom.StyleBottom, geom.StyleLeft, geom.StyleRight} {
		if v, ok := style.Get(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%g", key, v))
		}
	}
	if len(parts) == 0 {
		return "(空)"
	}
	return strings.Join(parts, " ")
}
