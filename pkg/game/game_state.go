package game

// GameState 存储全局应用状态
// 这是一个单例，用于管理跨场景共享的状态数据
type GameState struct {
	// 番茄钟循环：剩余的学习/休息轮数，休息结束时递减
	CyclesLeft int

	// 调试模式：计时器加速运行（1 秒当 1 分钟），方便手工验证
	DebugMode bool
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个应用生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// StartCycles 按设置的循环次数重置循环计数
func (gs *GameState) StartCycles(cycles int) {
	if cycles < 1 {
		cycles = 1
	}
	gs.CyclesLeft = cycles
}

// FinishBreak 休息结束时递减循环计数
// 返回是否还有剩余循环（有则应自动进入下一轮学习）
func (gs *GameState) FinishBreak() bool {
	if gs.CyclesLeft > 0 {
		gs.CyclesLeft--
	}
	return gs.CyclesLeft > 0
}

// TimeScale 计时器速率：调试模式下 1 秒真实时间当 1 分钟
func (gs *GameState) TimeScale() float64 {
	if gs.DebugMode {
		return 60
	}
	return 1
}
