//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// StatusBarHeight 返回系统状态栏高度（逻辑像素）
// 移动端状态栏可能遮挡覆盖层顶部，定位计算需要把它从目标坐标中扣除
func StatusBarHeight() float64 {
	return mobileStatusBarHeight
}

const mobileStatusBarHeight = 24.0
