//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 SPOTLIGHT_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("SPOTLIGHT_MOBILE_EMULATE") == "1"
}

// StatusBarHeight 返回系统状态栏高度（逻辑像素）
// 桌面端没有遮挡画面的系统状态栏，返回 0
func StatusBarHeight() float64 {
	if IsMobile() {
		return mobileStatusBarHeight
	}
	return 0
}

// mobileStatusBarHeight 移动模拟模式下使用的状态栏高度
// Android 常见状态栏高度为 24dp，这里取其逻辑像素近似值
const mobileStatusBarHeight = 24.0
