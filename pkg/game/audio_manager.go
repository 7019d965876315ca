package game

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"

	internalaudio "github.com/decker502/florodoro/internal/audio"
)

// 提示音 ID
const (
	// ChimeStudyDone 学习计时结束提示音
	ChimeStudyDone = "study_done"
	// ChimeBreakDone 休息计时结束提示音
	ChimeBreakDone = "break_done"
)

// 内置提示音的基频（Hz）
var chimeFrequencies = map[string]float64{
	ChimeStudyDone: 880,
	ChimeBreakDone: 660,
}

// AudioManager 提示音管理器
//
// 职责：
//   - 管理计时结束提示音的加载和播放
//   - 应用 SettingsManager 中的音量和开关设置
//
// 提示音来源有两级：用户配置目录下的同名 .au 文件优先，
// 找不到或解码失败时退回内置合成的铃声。
type AudioManager struct {
	audioContext    *audio.Context           // ebiten 音频上下文
	settingsManager *SettingsManager         // 设置管理器，可为 nil
	players         map[string]*audio.Player // 提示音播放器缓存（ID -> 播放器）
	configDir       string                   // 自定义提示音目录
}

// NewAudioManager 创建提示音管理器
//
// 参数：
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 提示音管理器实例
func NewAudioManager(sm *SettingsManager) *AudioManager {
	// 音频上下文是进程级单例，重复创建会 panic
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(internalaudio.ClipSampleRate)
	}

	configDir := ""
	if dir, err := os.UserConfigDir(); err == nil {
		configDir = filepath.Join(dir, "florodoro", "sounds")
	}

	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
		configDir:       configDir,
	}
}

// PlayChime 播放提示音
//
// 参数：
//   - chimeID: 提示音 ID（ChimeStudyDone 或 ChimeBreakDone）
//
// 返回：
//   - bool: 是否成功播放（提示音被禁用时返回 false）
func (am *AudioManager) PlayChime(chimeID string) bool {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
	}

	player := am.getPlayer(chimeID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind chime %s: %v", chimeID, err)
	}
	player.Play()
	return true
}

// getPlayer 获取或构建提示音播放器
func (am *AudioManager) getPlayer(chimeID string) *audio.Player {
	if player, exists := am.players[chimeID]; exists {
		return player
	}

	clip := am.loadClip(chimeID)
	if clip == nil {
		return nil
	}

	player, err := am.audioContext.NewPlayer(clip.Reader())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", chimeID, err)
		return nil
	}
	am.players[chimeID] = player
	return player
}

// loadClip 按优先级加载提示音：用户自定义 .au 文件 > 内置合成铃声
func (am *AudioManager) loadClip(chimeID string) *internalaudio.Clip {
	if am.configDir != "" {
		path := filepath.Join(am.configDir, chimeID+".au")
		if file, err := os.Open(path); err == nil {
			defer file.Close()
			clip, err := internalaudio.DecodeAU(file)
			if err == nil {
				log.Printf("[AudioManager] Using custom chime: %s", path)
				return clip
			}
			log.Printf("[AudioManager] Warning: Failed to decode %s: %v (using built-in)", path, err)
		}
	}

	freq, ok := chimeFrequencies[chimeID]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown chime: %s", chimeID)
		return nil
	}
	return internalaudio.SynthesizeChime(freq)
}

// volume 读取提示音音量设置
func (am *AudioManager) volume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.85 // 默认值
}
