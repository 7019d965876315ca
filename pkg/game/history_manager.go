package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/decker502/florodoro/pkg/plants"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// StudyRecord 一次完成的学习记录
type StudyRecord struct {
	Date    time.Time      `yaml:"date"`            // 学习结束时刻
	Minutes float64        `yaml:"minutes"`         // 实际学习时长（分钟），overstudy 时可超过设定值
	Plant   *plants.Record `yaml:"plant,omitempty"` // 本次种下的植物，禁用种植时为 nil
}

// BreakRecord 一次完成的休息记录
type BreakRecord struct {
	Date    time.Time `yaml:"date"`    // 休息结束时刻
	Minutes float64   `yaml:"minutes"` // 休息时长（分钟）
}

// HistoryData 持久化的历史数据
type HistoryData struct {
	Studies []StudyRecord `yaml:"studies"`
	Breaks  []BreakRecord `yaml:"breaks"`
}

// 存储路径常量
const (
	historyObject   = "history"
	historyProperty = "global"
)

// HistoryManager 历史记录管理器
//
// 职责：
//   - 记录完成的学习和休息
//   - 保存每次学习种下的植物结构参数，供统计页回放
//   - 提供总时长、植物数、按星期分布等统计口径
//
// 架构说明：
//   - 数据经 gdata 持久化（YAML 格式，与项目其他配置文件保持一致）
//   - 由 GameState 持有，场景层通过它读写历史
type HistoryManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	data         *HistoryData   // 当前历史数据
}

// NewHistoryManager 创建历史记录管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *HistoryManager: 历史记录管理器实例
//   - error: 如果加载失败返回错误（不影响创建）
func NewHistoryManager(gdataManager *gdata.Manager) (*HistoryManager, error) {
	hm := &HistoryManager{
		gdataManager: gdataManager,
		data:         &HistoryData{},
	}

	if err := hm.Load(); err != nil {
		// 历史损坏不是致命错误，从空历史开始
		log.Printf("[HistoryManager] Warning: Failed to load history: %v (starting empty)", err)
	}

	return hm, nil
}

// Load 从 gdata 加载历史数据
func (hm *HistoryManager) Load() error {
	if hm.gdataManager == nil {
		hm.data = &HistoryData{}
		return nil
	}

	if !hm.gdataManager.ObjectPropExists(historyObject, historyProperty) {
		hm.data = &HistoryData{}
		return nil
	}

	raw, err := hm.gdataManager.LoadObjectProp(historyObject, historyProperty)
	if err != nil {
		hm.data = &HistoryData{}
		return fmt.Errorf("failed to load history: %w", err)
	}

	var loaded HistoryData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		hm.data = &HistoryData{}
		return fmt.Errorf("failed to unmarshal history: %w", err)
	}

	hm.data = &loaded
	log.Printf("[HistoryManager] History loaded: %d studies, %d breaks",
		len(hm.data.Studies), len(hm.data.Breaks))
	return nil
}

// Save 保存历史数据到 gdata
func (hm *HistoryManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(hm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(historyObject, historyProperty, raw); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// AddStudy 记录一次完成的学习并立即保存
//
// 参数：
//   - date: 学习结束时刻
//   - minutes: 实际学习时长（分钟）
//   - plant: 本次种下的植物记录，可为 nil
func (hm *HistoryManager) AddStudy(date time.Time, minutes float64, plant *plants.Record) error {
	hm.data.Studies = append(hm.data.Studies, StudyRecord{
		Date:    date,
		Minutes: minutes,
		Plant:   plant,
	})
	return hm.Save()
}

// AddBreak 记录一次完成的休息并立即保存
func (hm *HistoryManager) AddBreak(date time.Time, minutes float64) error {
	hm.data.Breaks = append(hm.data.Breaks, BreakRecord{
		Date:    date,
		Minutes: minutes,
	})
	return hm.Save()
}

// TotalStudyMinutes 学习总时长（分钟）
func (hm *HistoryManager) TotalStudyMinutes() float64 {
	var total float64
	for _, s := range hm.data.Studies {
		total += s.Minutes
	}
	return total
}

// TotalBreakMinutes 休息总时长（分钟）
func (hm *HistoryManager) TotalBreakMinutes() float64 {
	var total float64
	for _, b := range hm.data.Breaks {
		total += b.Minutes
	}
	return total
}

// PlantsGrown 种下的植物总数（不含禁用种植的学习）
func (hm *HistoryManager) PlantsGrown() int {
	count := 0
	for _, s := range hm.data.Studies {
		if s.Plant != nil {
			count++
		}
	}
	return count
}

// Studies 返回按日期升序排列的学习记录副本
func (hm *HistoryManager) Studies() []StudyRecord {
	studies := make([]StudyRecord, len(hm.data.Studies))
	copy(studies, hm.data.Studies)
	sort.SliceStable(studies, func(i, j int) bool {
		return studies[i].Date.Before(studies[j].Date)
	})
	return studies
}

// WeekdayMinutes 按星期统计学习时长，索引 0 为周一
func (hm *HistoryManager) WeekdayMinutes() [7]float64 {
	var minutes [7]float64
	for _, s := range hm.data.Studies {
		// time.Weekday 以周日为 0，转成周一为 0
		day := (int(s.Date.Weekday()) + 6) % 7
		minutes[day] += s.Minutes
	}
	return minutes
}
