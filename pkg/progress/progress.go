// Package progress 提供引导完成进度的跨平台持久化
//
// 已经看完的引导不应该在下次启动时再弹出来。进度通过 gdata 存储
// （桌面端落在用户配置目录，Android 落在应用数据目录），序列化格式
// 与项目其他配置保持一致（YAML）。
package progress

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/spotlight/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	progressObject = "tours"
)

// TourRecord 单个引导的进度记录
type TourRecord struct {
	Completed   bool      `yaml:"completed"`   // 是否已完整看完
	CompletedAt time.Time `yaml:"completedAt"` // 完成时间
	LastStep    int       `yaml:"lastStep"`    // 最后停留的步骤下标（中途退出时用于续播）
}

// Manager 引导进度管理器
//
// gdataManager 可为 nil（降级模式）：所有查询返回零值记录，
// 保存调用静默成功，引导每次都会重新显示。
type Manager struct {
	gdataManager *gdata.Manager
}

// NewManager 创建进度管理器
//
// 参数：
//   - appName: gdata 应用名（决定桌面端的存储目录名）
//
// 返回：
//   - *Manager: 管理器实例；gdata 初始化失败时进入降级模式，不返回错误
func NewManager(appName string) *Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Progress] Warning: storage dir not ready: %v (falling back to in-memory)", err)
		return &Manager{}
	}

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Progress] Warning: gdata unavailable: %v (falling back to in-memory)", err)
		return &Manager{}
	}
	return &Manager{gdataManager: m}
}

// NewManagerWithGdata 用已有的 gdata Manager 创建进度管理器（测试/共享存储用）
func NewManagerWithGdata(g *gdata.Manager) *Manager {
	return &Manager{gdataManager: g}
}

// Load 读取指定引导的进度记录
// 无存储、无记录或记录损坏时返回零值记录
func (m *Manager) Load(tourID string) TourRecord {
	if m.gdataManager == nil {
		return TourRecord{}
	}
	if !m.gdataManager.ObjectPropExists(progressObject, tourID) {
		return TourRecord{}
	}

	data, err := m.gdataManager.LoadObjectProp(progressObject, tourID)
	if err != nil {
		log.Printf("[Progress] Warning: failed to load record for %q: %v", tourID, err)
		return TourRecord{}
	}

	var rec TourRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		log.Printf("[Progress] Warning: corrupt record for %q: %v", tourID, err)
		return TourRecord{}
	}
	return rec
}

// IsCompleted 指定引导是否已完整看完
func (m *Manager) IsCompleted(tourID string) bool {
	return m.Load(tourID).Completed
}

// MarkCompleted 标记指定引导已完成
func (m *Manager) MarkCompleted(tourID string) error {
	rec := m.Load(tourID)
	rec.Completed = true
	rec.CompletedAt = time.Now()
	return m.save(tourID, rec)
}

// MarkStep 记录指定引导最后停留的步骤下标
func (m *Manager) MarkStep(tourID string, stepIndex int) error {
	rec := m.Load(tourID)
	rec.LastStep = stepIndex
	return m.save(tourID, rec)
}

// Reset 清除指定引导的进度（下次重新显示）
func (m *Manager) Reset(tourID string) error {
	return m.save(tourID, TourRecord{})
}

func (m *Manager) save(tourID string, rec TourRecord) error {
	// 降级模式：无法持久化，但不报错
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal tour record: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(progressObject, tourID, data); err != nil {
		return fmt.Errorf("failed to save tour record: %w", err)
	}
	return nil
}
