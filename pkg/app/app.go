// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：创建存储、设置、历史、
// 提示音等管理器，注册场景，并实现 ebiten.Game 接口。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/florodoro/pkg/game"
	"github.com/decker502/florodoro/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 启用调试模式：计时器加速运行（1 秒当 1 分钟）
	Debug bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	game.GetGameState().DebugMode = cfg.Debug
	if cfg.Debug {
		log.Printf("[App] Debug mode: timers run at 60x speed")
	}

	// 打开跨平台持久化存储；失败时降级为仅内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "florodoro"})
	if err != nil {
		log.Printf("[App] Warning: Persistent storage unavailable: %v (settings and history will not be saved)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	historyManager, err := game.NewHistoryManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	audioManager := game.NewAudioManager(settingsManager)
	log.Printf("[App] Managers initialized")

	// 预设加载失败不致命，只是数字键不可用
	presets, err := game.LoadPresets()
	if err != nil {
		log.Printf("[App] Warning: Failed to load presets: %v", err)
	}

	// 创建场景并注册
	sceneManager := game.NewSceneManager()
	timerScene := scenes.NewTimerScene(sceneManager, settingsManager, historyManager, audioManager, presets)
	statsScene := scenes.NewStatsScene(sceneManager, historyManager, settingsManager)
	sceneManager.Register("timer", timerScene)
	sceneManager.Register("stats", statsScene)
	sceneManager.SwitchByName("timer")

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.WindowWidth, scenes.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", scenes.WindowWidth, scenes.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.WindowWidth, scenes.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
