// 聚光灯引导演示程序
//
// 用三个模拟控件演示完整的引导流程：遮罩镂空、提示框、箭头、
// 步骤序号与两次定位之间的滑动动画。
//
// 操作：
//   - Space: 开始引导
//   - 点击提示框或遮罩: 下一步（最后一步结束）
//   - Esc: 回到上一步
package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/spotlight/pkg/demo"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "引导配置文件路径（YAML），为空使用默认配置")
	replay     = flag.Bool("replay", false, "忽略已完成记录，重新播放引导")
)

func main() {
	flag.Parse()

	game, err := demo.NewGame(demo.Options{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Replay:     *replay,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(demo.ScreenWidth, demo.ScreenHeight)
	ebiten.SetWindowTitle("Spotlight Tour Demo")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
