//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 演示包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.spotlight -o build/android/spotlight.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Spotlight.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/spotlight/pkg/demo"
)

func init() {
	game, err := demo.NewGame(demo.Options{
		Verbose: true, // Enable verbose logging for debugging
	})
	if err != nil {
		log.Fatalf("演示初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(game)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
