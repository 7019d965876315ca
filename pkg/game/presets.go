package game

import (
	"fmt"

	"github.com/decker502/florodoro/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Preset 一组番茄钟时长配置
type Preset struct {
	Name         string `yaml:"name"`         // 预设名称
	StudyMinutes int    `yaml:"studyMinutes"` // 学习时长（分钟）
	BreakMinutes int    `yaml:"breakMinutes"` // 休息时长（分钟）
	Cycles       int    `yaml:"cycles"`       // 循环次数
}

// presetsFile 嵌入的预设配置
type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets 从嵌入的 data/presets.yaml 加载番茄钟预设
//
// 返回：
//   - []Preset: 预设列表，顺序与配置文件一致
//   - error: 如果读取或解析失败返回错误
func LoadPresets() ([]Preset, error) {
	raw, err := embedded.ReadFile("data/presets.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return parsePresets(raw)
}

// parsePresets 解析预设 YAML 并校验字段
func parsePresets(raw []byte) ([]Preset, error) {
	var file presetsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("presets file contains no presets")
	}

	for _, p := range file.Presets {
		if p.StudyMinutes < 1 || p.BreakMinutes < 1 || p.Cycles < 1 {
			return nil, fmt.Errorf("invalid preset %q: durations and cycles must be positive", p.Name)
		}
	}

	return file.Presets, nil
}
