package game

import (
	"math"
	"time"
)

// Phase 计时器阶段
type Phase int

const (
	// PhaseIdle 空闲，没有计时
	PhaseIdle Phase = iota
	// PhaseStudy 学习中
	PhaseStudy
	// PhaseBreak 休息中
	PhaseBreak
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseStudy:
		return "STUDY"
	case PhaseBreak:
		return "BREAK"
	default:
		return "IDLE"
	}
}

// SessionEvent 一次 Update 产生的阶段事件
type SessionEvent int

const (
	// SessionEventNone 无事件
	SessionEventNone SessionEvent = iota
	// SessionEventStudyFinished 学习计时走完（overstudy 模式下首次越过终点时触发一次）
	SessionEventStudyFinished
	// SessionEventBreakFinished 休息计时走完
	SessionEventBreakFinished
)

// Session 番茄钟会话状态机
//
// 驱动方式：场景每帧用真实流逝时间调用 Update，
// 状态切换（开始学习、开始休息、重置）由场景根据事件和按键触发。
//
// 计时约定：总秒数为 分钟 × 60 + 0.99，保证界面上的整分显示
// 从设定值本身开始倒数而不是少一秒。
type Session struct {
	phase  Phase
	paused bool

	minutes      float64 // 当前阶段的设定时长（分钟）
	totalSeconds float64 // 当前阶段总秒数
	elapsed      float64 // 已计时秒数

	overstudy bool // 学习结束后不停表，继续累计

	startedAt time.Time // 当前阶段开始时刻
}

// NewSession 创建空闲状态的会话
func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

// StartStudy 开始一段学习
//
// 参数：
//   - minutes: 学习时长（分钟）
//   - overstudy: 是否启用 overstudy 模式
func (s *Session) StartStudy(minutes float64, overstudy bool) {
	s.phase = PhaseStudy
	s.paused = false
	s.minutes = minutes
	s.totalSeconds = minutes*60 + 0.99
	s.elapsed = 0
	s.overstudy = overstudy
	s.startedAt = time.Now()
}

// StartBreak 开始一段休息
func (s *Session) StartBreak(minutes float64) {
	s.phase = PhaseBreak
	s.paused = false
	s.minutes = minutes
	s.totalSeconds = minutes*60 + 0.99
	s.elapsed = 0
	s.overstudy = false
	s.startedAt = time.Now()
}

// Reset 回到空闲状态
func (s *Session) Reset() {
	s.phase = PhaseIdle
	s.paused = false
	s.elapsed = 0
	s.totalSeconds = 0
	s.minutes = 0
}

// TogglePause 暂停/继续计时，空闲状态下无效
func (s *Session) TogglePause() {
	if s.phase == PhaseIdle {
		return
	}
	s.paused = !s.paused
}

// Update 推进计时器
//
// 参数：
//   - deltaTime: 距上帧的真实秒数
//
// 返回：
//   - SessionEvent: 本帧触发的阶段事件
//
// 学习阶段走完时：overstudy 模式下计时继续并只在首次越线时返回
// SessionEventStudyFinished；普通模式下会话回到空闲。
// 休息阶段走完时会话回到空闲并返回 SessionEventBreakFinished。
func (s *Session) Update(deltaTime float64) SessionEvent {
	if s.phase == PhaseIdle || s.paused {
		return SessionEventNone
	}

	before := s.elapsed
	s.elapsed += deltaTime

	switch s.phase {
	case PhaseStudy:
		if before < s.totalSeconds && s.elapsed >= s.totalSeconds {
			if s.overstudy {
				return SessionEventStudyFinished
			}
			s.phase = PhaseIdle
			s.paused = false
			return SessionEventStudyFinished
		}
	case PhaseBreak:
		if s.elapsed >= s.totalSeconds {
			s.phase = PhaseIdle
			s.paused = false
			return SessionEventBreakFinished
		}
	}
	return SessionEventNone
}

// Phase 当前阶段
func (s *Session) Phase() Phase {
	return s.phase
}

// Paused 是否处于暂停
func (s *Session) Paused() bool {
	return s.paused
}

// Overstudying 学习计时已越过终点且仍在继续
func (s *Session) Overstudying() bool {
	return s.phase == PhaseStudy && s.overstudy && s.elapsed >= s.totalSeconds
}

// Leftover 剩余秒数，overstudy 越线后为负值
func (s *Session) Leftover() float64 {
	if s.phase == PhaseIdle {
		return 0
	}
	return s.totalSeconds - s.elapsed
}

// Fraction 当前阶段完成比例，范围 [0, 1]
func (s *Session) Fraction() float64 {
	if s.phase == PhaseIdle || s.totalSeconds <= 0 {
		return 0
	}
	return math.Min(s.elapsed/s.totalSeconds, 1)
}

// StudyMinutes 实际学习时长（分钟），overstudy 时按已计时的秒数折算
func (s *Session) StudyMinutes() float64 {
	if s.overstudy && s.elapsed > s.totalSeconds {
		return s.elapsed / 60
	}
	return s.minutes
}

// PhaseMinutes 当前阶段的设定时长（分钟）
func (s *Session) PhaseMinutes() float64 {
	return s.minutes
}

// StartedAt 当前阶段的开始时刻
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}
