package tour

import (
	"fmt"
	"log"
	"sort"

	"github.com/decker502/spotlight/pkg/progress"
)

// TourStep 一条已注册的引导步骤
type TourStep struct {
	Name   string // 步骤名（注册表键，需唯一）
	Text   string // 提示框正文
	Order  int    // 排序序号，小的在前
	Target Step   // 高亮目标控件
}

// Manager 引导序列管理器
//
// 维护步骤注册表与当前位置，实现 Sequencer 供定位引擎消费。
// 可选挂接进度存储：每次步骤切换记录位置，走完最后一步标记完成。
// 与帧循环同线程使用，无内部锁。
type Manager struct {
	id       string
	steps    []*TourStep
	current  int // steps 下标，-1 表示未激活
	visible  bool
	progress *progress.Manager

	// onStepChange 步骤切换回调（含 Start 进入第一步）
	onStepChange func(step *TourStep, index int)
	// onStop 引导结束回调，completed 表示是否走完最后一步
	onStop func(completed bool)
}

// NewManager 创建引导序列管理器
//
// 参数：
//   - id: 引导标识（进度存储的键）
//   - prog: 进度管理器，可为 nil（不持久化）
func NewManager(id string, prog *progress.Manager) *Manager {
	return &Manager{
		id:       id,
		current:  -1,
		progress: prog,
	}
}

// SetOnStepChange 注册步骤切换回调
func (m *Manager) SetOnStepChange(fn func(step *TourStep, index int)) {
	m.onStepChange = fn
}

// SetOnStop 注册结束回调
func (m *Manager) SetOnStop(fn func(completed bool)) {
	m.onStop = fn
}

// Register 注册一条步骤
// 同名步骤覆盖旧注册；注册后按 Order 重新排序
func (m *Manager) Register(step *TourStep) error {
	if step == nil || step.Name == "" {
		return fmt.Errorf("register step: name is required")
	}
	if step.Target == nil {
		return fmt.Errorf("register step %q: target is required", step.Name)
	}
	for i, existing := range m.steps {
		if existing.Name == step.Name {
			m.steps[i] = step
			m.sortSteps()
			return nil
		}
	}
	m.steps = append(m.steps, step)
	m.sortSteps()
	return nil
}

// Unregister 注销指定步骤
// 引导进行中注销当前步骤时位置顺延（已是最后一步则结束引导）
func (m *Manager) Unregister(name string) {
	for i, step := range m.steps {
		if step.Name != name {
			continue
		}
		m.steps = append(m.steps[:i], m.steps[i+1:]...)
		if !m.visible {
			return
		}
		if m.current > i {
			m.current--
		} else if m.current >= len(m.steps) {
			m.stop(true)
		} else if m.current == i {
			m.notifyStepChange()
		}
		return
	}
}

func (m *Manager) sortSteps() {
	sort.SliceStable(m.steps, func(i, j int) bool {
		return m.steps[i].Order < m.steps[j].Order
	})
}

// Start 从第一步开始引导
// 已在进行中或没有已注册步骤时报错
func (m *Manager) Start() error {
	return m.StartFrom(0)
}

// StartFrom 从指定下标开始引导（续播用）
func (m *Manager) StartFrom(index int) error {
	if m.visible {
		return fmt.Errorf("tour %q already running", m.id)
	}
	if len(m.steps) == 0 {
		return fmt.Errorf("tour %q has no registered steps", m.id)
	}
	if index < 0 || index >= len(m.steps) {
		index = 0
	}
	m.visible = true
	m.current = index
	log.Printf("[Tour] Starting tour %q at step %d/%d", m.id, index+1, len(m.steps))
	m.notifyStepChange()
	return nil
}

// Stop 中途结束引导（不标记完成）
func (m *Manager) Stop() {
	if !m.visible {
		return
	}
	m.stop(false)
}

// GoToNext 前进到下一步；已是最后一步时结束引导并标记完成
func (m *Manager) GoToNext() {
	if !m.visible {
		return
	}
	if m.current+1 >= len(m.steps) {
		m.stop(true)
		return
	}
	m.current++
	m.notifyStepChange()
}

// GoToPrevious 回到上一步；已是第一步时无操作
func (m *Manager) GoToPrevious() {
	if !m.visible || m.current <= 0 {
		return
	}
	m.current--
	m.notifyStepChange()
}

func (m *Manager) stop(completed bool) {
	m.visible = false
	m.current = -1
	if m.progress != nil {
		if completed {
			if err := m.progress.MarkCompleted(m.id); err != nil {
				log.Printf("[Tour] Warning: failed to persist completion: %v", err)
			}
		}
	}
	log.Printf("[Tour] Tour %q stopped (completed=%v)", m.id, completed)
	if m.onStop != nil {
		m.onStop(completed)
	}
}

func (m *Manager) notifyStepChange() {
	if m.progress != nil {
		if err := m.progress.MarkStep(m.id, m.current); err != nil {
			log.Printf("[Tour] Warning: failed to persist step: %v", err)
		}
	}
	if m.onStepChange != nil {
		m.onStepChange(m.steps[m.current], m.current)
	}
}

// Visible 引导是否进行中
func (m *Manager) Visible() bool {
	return m.visible
}

// CurrentStep 当前激活步骤的目标控件，未激活时为 nil
func (m *Manager) CurrentStep() Step {
	if ts := m.CurrentTourStep(); ts != nil {
		return ts.Target
	}
	return nil
}

// CurrentTourStep 当前激活的完整步骤记录，未激活时为 nil
func (m *Manager) CurrentTourStep() *TourStep {
	if !m.visible || m.current < 0 || m.current >= len(m.steps) {
		return nil
	}
	return m.steps[m.current]
}

// IsFirstStep 当前是否为第一步
func (m *Manager) IsFirstStep() bool {
	return m.current == 0
}

// IsLastStep 当前是否为最后一步
func (m *Manager) IsLastStep() bool {
	return m.visible && m.current == len(m.steps)-1
}

// StepIndex 当前步骤下标（0 起），未激活时为 -1
func (m *Manager) StepIndex() int {
	return m.current
}

// StepCount 已注册步骤总数
func (m *Manager) StepCount() int {
	return len(m.steps)
}
