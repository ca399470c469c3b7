package tour

// VisibilityState 可见性状态机
//
// 三个独立布尔事实的组合：引导是否激活、容器是否已挂载、是否已有
// 有效定位。派生状态把"引导想要显示"和"已经有东西可显示"解耦，
// 避免首次挂载时在原点闪现一个未定位的提示框。
type VisibilityState struct {
	tourActive       bool // 引导是否激活（外部步骤控制器的 visible）
	containerMounted bool // 覆盖层容器是否已挂载
	hasPlacement     bool // 是否已有有效的定位结果
}

// NewVisibilityState 创建初始全灭的状态机
func NewVisibilityState() *VisibilityState {
	return &VisibilityState{}
}

// SetTourActive 切换引导激活状态
//
// false -> true：挂载容器；hasPlacement 保持 false，等首次定位落地。
// true -> false：完整重置——定位标记清除、容器卸载。
// 返回状态是否发生了变化（重复设置同一状态是无操作）。
func (v *VisibilityState) SetTourActive(active bool) bool {
	if v.tourActive == active {
		return false
	}
	v.tourActive = active
	if active {
		v.containerMounted = true
	} else {
		v.hasPlacement = false
		v.containerMounted = false
	}
	return true
}

// MountContainer 挂载容器（已挂载时为无操作）
func (v *VisibilityState) MountContainer() {
	v.containerMounted = true
}

// MarkPlaced 标记首次（或最新一次）定位已落地
func (v *VisibilityState) MarkPlaced() {
	v.hasPlacement = true
}

// TourActive 引导是否激活
func (v *VisibilityState) TourActive() bool {
	return v.tourActive
}

// ContainerMounted 容器是否已挂载
func (v *VisibilityState) ContainerMounted() bool {
	return v.containerMounted
}

// HasPlacement 是否已有有效定位
func (v *VisibilityState) HasPlacement() bool {
	return v.hasPlacement
}

// ModalVisible 覆盖层（遮罩背景）是否应该显示
func (v *VisibilityState) ModalVisible() bool {
	return v.containerMounted && v.tourActive
}

// ContentVisible 内容（提示框/箭头/步骤序号）是否应该显示
// 在首次定位落地之前始终为 false
func (v *VisibilityState) ContentVisible() bool {
	return v.hasPlacement && v.containerMounted
}
