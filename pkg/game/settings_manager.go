package game

import (
	"fmt"
	"log"

	"github.com/decker502/florodoro/pkg/plants"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 全局应用设置
type Settings struct {
	// 番茄钟设置
	StudyMinutes int `yaml:"studyMinutes"` // 单次学习时长（分钟）
	BreakMinutes int `yaml:"breakMinutes"` // 单次休息时长（分钟）
	Cycles       int `yaml:"cycles"`       // 学习/休息循环次数

	// 提醒设置
	SoundEnabled bool    `yaml:"soundEnabled"` // 提示音开关
	SoundVolume  float64 `yaml:"soundVolume"`  // 提示音音量 0.0 ~ 1.0
	PopupEnabled bool    `yaml:"popupEnabled"` // 桌面通知开关

	// Overstudy 模式：学习计时结束后不自动切休息，继续累计超时学习
	Overstudy bool `yaml:"overstudy"`

	// 参与随机抽取的植物品种；为空列表时学习期间不种植物
	EnabledPlants []string `yaml:"enabledPlants"`
}

// DefaultSettings 返回默认设置（Classic 预设 + 全部品种启用）
func DefaultSettings() *Settings {
	enabled := make([]string, 0, len(plants.DefaultKinds))
	for _, kind := range plants.DefaultKinds {
		enabled = append(enabled, string(kind))
	}
	return &Settings{
		StudyMinutes: 25,
		BreakMinutes: 5,
		Cycles:       4,
		SoundEnabled: true,
		SoundVolume:  0.85,
		PopupEnabled: true,
		Overstudy:    false,
		EnabledPlants: enabled,
	}
}

// SettingsManager 设置管理器
// 负责应用设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings      // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings Settings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回：
//   - *Settings: 当前设置实例
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetStudyMinutes 设置学习时长（1 ~ 180 分钟）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetStudyMinutes(minutes int) {
	sm.settings.StudyMinutes = clampMinutes(minutes)
}

// SetBreakMinutes 设置休息时长（1 ~ 180 分钟）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetBreakMinutes(minutes int) {
	sm.settings.BreakMinutes = clampMinutes(minutes)
}

// SetCycles 设置循环次数（至少 1）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetCycles(cycles int) {
	if cycles < 1 {
		cycles = 1
	}
	sm.settings.Cycles = cycles
}

// SetSoundVolume 设置提示音音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置提示音开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetPopupEnabled 设置桌面通知开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPopupEnabled(enabled bool) {
	sm.settings.PopupEnabled = enabled
}

// SetOverstudy 设置 overstudy 模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetOverstudy(enabled bool) {
	sm.settings.Overstudy = enabled
}

// ApplyPreset 应用一个番茄钟预设并立即持久化
func (sm *SettingsManager) ApplyPreset(p Preset) error {
	sm.settings.StudyMinutes = clampMinutes(p.StudyMinutes)
	sm.settings.BreakMinutes = clampMinutes(p.BreakMinutes)
	sm.SetCycles(p.Cycles)
	return sm.Save()
}

// EnabledKinds 返回启用的植物品种（过滤掉未知的名字）
func (sm *SettingsManager) EnabledKinds() []plants.Kind {
	var kinds []plants.Kind
	for _, name := range sm.settings.EnabledPlants {
		kind := plants.Kind(name)
		for _, known := range plants.DefaultKinds {
			if kind == known {
				kinds = append(kinds, kind)
				break
			}
		}
	}
	return kinds
}

// TogglePlant 启用/禁用一个植物品种
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) TogglePlant(kind plants.Kind) {
	for i, name := range sm.settings.EnabledPlants {
		if name == string(kind) {
			sm.settings.EnabledPlants = append(
				sm.settings.EnabledPlants[:i], sm.settings.EnabledPlants[i+1:]...)
			return
		}
	}
	sm.settings.EnabledPlants = append(sm.settings.EnabledPlants, string(kind))
}

// clampMinutes 将时长限制在 1 ~ 180 分钟（与界面 spinbox 的范围一致）
func clampMinutes(minutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > 180 {
		return 180
	}
	return minutes
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
