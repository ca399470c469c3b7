// Package demo 提供引导系统的演示场景
//
// 该包将演示逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 cmd/demo 调用 NewGame()，移动端通过 mobile/mobile.go 调用。
package demo

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/spotlight/pkg/config"
	"github.com/decker502/spotlight/pkg/geom"
	"github.com/decker502/spotlight/pkg/progress"
	"github.com/decker502/spotlight/pkg/tour"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 演示场景的逻辑分辨率
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// Options 演示场景启动配置
type Options struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 引导配置文件路径（YAML），为空使用默认配置
	ConfigPath string
	// Replay 忽略已完成记录，重新播放引导
	Replay bool
}

// widget 模拟宿主应用里的一个控件
type widget struct {
	rect  geom.Rect
	label string
	clr   color.RGBA
}

// Measure 实现 tour.Step
func (w *widget) Measure() (geom.Rect, bool) {
	return w.rect, true
}

// Game 演示游戏，实现 ebiten.Game 接口
type Game struct {
	widgets []*widget
	overlay *tour.Overlay
	manager *tour.Manager
	prog    *progress.Manager
	replay  bool
}

// NewGame 创建演示游戏实例
func NewGame(opts Options) (*Game, error) {
	if !opts.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	widgets := []*widget{
		{
			rect:  geom.Rect{X: 40, Y: 60, Width: 120, Height: 48},
			label: "Menu",
			clr:   color.RGBA{R: 80, G: 140, B: 220, A: 255},
		},
		{
			rect:  geom.Rect{X: 180, Y: 360, Width: 200, Height: 120},
			label: "Content",
			clr:   color.RGBA{R: 90, G: 180, B: 110, A: 255},
		},
		{
			rect:  geom.Rect{X: 340, Y: 700, Width: 100, Height: 56},
			label: "Settings",
			clr:   color.RGBA{R: 210, G: 130, B: 80, A: 255},
		},
	}

	cfg := tour.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := config.LoadTourConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.AdvanceOnOutsideTap = true
	cfg.BackBehavior = config.BackBehaviorPrev

	prog := progress.NewManager("spotlight_demo")
	manager := tour.NewManager("demo", prog)

	steps := []struct {
		name  string
		text  string
		order int
		ref   *widget
	}{
		{"menu", "这里是主菜单入口，所有功能从这里开始。", 1, widgets[0]},
		{"content", "内容区域会展示当前选中的项目。", 2, widgets[1]},
		{"settings", "在设置里可以调整偏好，引导到此结束。", 3, widgets[2]},
	}
	for _, s := range steps {
		if err := manager.Register(&tour.TourStep{
			Name:   s.name,
			Text:   s.text,
			Order:  s.order,
			Target: s.ref,
		}); err != nil {
			return nil, err
		}
	}

	overlay, err := tour.NewOverlay(cfg, manager, nil)
	if err != nil {
		return nil, err
	}

	return &Game{
		widgets: widgets,
		overlay: overlay,
		manager: manager,
		prog:    prog,
		replay:  opts.Replay,
	}, nil
}

// Update 实现 ebiten.Game
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.manager.Visible() {
		if g.prog.IsCompleted("demo") && !g.replay {
			log.Println("[Demo] Tour already completed, use -replay to run again")
		} else if err := g.overlay.Start(); err != nil {
			log.Printf("[Demo] Failed to start tour: %v", err)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.overlay.Update(dt)
	return nil
}

// Draw 实现 ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 245, G: 245, B: 240, A: 255})

	for _, w := range g.widgets {
		vector.DrawFilledRect(screen,
			float32(w.rect.X), float32(w.rect.Y),
			float32(w.rect.Width), float32(w.rect.Height),
			w.clr, false)
		ebitenutil.DebugPrintAt(screen, w.label, int(w.rect.X)+6, int(w.rect.Y)+6)
	}

	if !g.manager.Visible() {
		ebitenutil.DebugPrintAt(screen, "Press Space to start the tour", 10, ScreenHeight-24)
	}

	g.overlay.Draw(screen)
}

// Layout 实现 ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.SetViewport(float64(ScreenWidth), float64(ScreenHeight))
	return ScreenWidth, ScreenHeight
}
