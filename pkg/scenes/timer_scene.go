package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/decker502/florodoro/pkg/canvas"
	"github.com/decker502/florodoro/pkg/game"
	"github.com/decker502/florodoro/pkg/plants"
	"github.com/decker502/florodoro/pkg/utils"
)

const (
	// WindowWidth is the logical width of the application window in pixels.
	WindowWidth = 800
	// WindowHeight is the logical height of the application window in pixels.
	WindowHeight = 600
)

// Timer scene palette.
var (
	backgroundColor = color.RGBA{250, 250, 245, 255}
	textColor       = color.RGBA{60, 60, 60, 255}
	breakColor      = color.RGBA{39, 119, 255, 255}
	overstudyColor  = color.RGBA{200, 60, 60, 255}
	hintColor       = color.RGBA{160, 160, 160, 255}
)

// TimerScene is the main pomodoro screen: a countdown clock with the
// current plant growing underneath it as the study progresses.
//
// Controls:
//   - S: start studying
//   - B: start a break (ends an overstudy session)
//   - Space: pause/resume
//   - R: reset
//   - Tab: statistics
//   - 1..n: apply duration preset
//   - Up/Down: adjust study minutes, Left/Right: adjust break minutes
type TimerScene struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	historyManager  *game.HistoryManager
	audioManager    *game.AudioManager
	session         *game.Session
	presets         []game.Preset
	rng             *rand.Rand

	surface *canvas.EbitenSurface
	plant   plants.Plant

	totalCycles int // cycle count the current chain started with
}

// NewTimerScene creates the timer scene.
//
// Parameters:
//   - sm: scene manager used to switch to the statistics scene
//   - settings: settings manager (durations, sound, enabled plants)
//   - history: history manager studies and breaks are recorded to
//   - am: audio manager for the end-of-phase chimes
//   - presets: duration presets bound to the number keys
func NewTimerScene(sm *game.SceneManager, settings *game.SettingsManager,
	history *game.HistoryManager, am *game.AudioManager, presets []game.Preset) *TimerScene {
	return &TimerScene{
		sceneManager:    sm,
		settingsManager: settings,
		historyManager:  history,
		audioManager:    am,
		session:         game.NewSession(),
		presets:         presets,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		surface:         canvas.NewEbitenSurface(nil),
	}
}

// Update advances the timer and handles keyboard input.
func (s *TimerScene) Update(deltaTime float64) {
	s.handleInput()

	scaled := deltaTime * game.GetGameState().TimeScale()
	switch s.session.Update(scaled) {
	case game.SessionEventStudyFinished:
		s.onStudyFinished()
	case game.SessionEventBreakFinished:
		s.onBreakFinished()
	}

	// The plant's age is the elapsed study time in minutes
	if s.plant != nil && s.session.Phase() == game.PhaseStudy {
		s.plant.SetAge(s.elapsedMinutes())
	}
}

// handleInput processes the scene's key bindings.
func (s *TimerScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.sceneManager.SwitchByName("stats")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && s.session.Phase() != game.PhaseStudy {
		s.startStudy()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.startBreak()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.reset()
	}

	// Duration presets on the number keys
	for i, preset := range s.presets {
		if i >= 9 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			if err := s.settingsManager.ApplyPreset(preset); err != nil {
				log.Printf("[TimerScene] Warning: Failed to apply preset %s: %v", preset.Name, err)
			}
		}
	}

	// Duration tweaks only make sense while idle
	if s.session.Phase() == game.PhaseIdle {
		settings := s.settingsManager.GetSettings()
		changed := false
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			s.settingsManager.SetStudyMinutes(settings.StudyMinutes + 5)
			changed = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			s.settingsManager.SetStudyMinutes(settings.StudyMinutes - 5)
			changed = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			s.settingsManager.SetBreakMinutes(settings.BreakMinutes + 1)
			changed = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			s.settingsManager.SetBreakMinutes(settings.BreakMinutes - 1)
			changed = true
		}
		if changed {
			if err := s.settingsManager.Save(); err != nil {
				log.Printf("[TimerScene] Warning: Failed to save settings: %v", err)
			}
		}
	}
}

// startStudy begins a study phase, growing a fresh random plant.
func (s *TimerScene) startStudy() {
	state := game.GetGameState()
	settings := s.settingsManager.GetSettings()

	// Starting a new chain resets the cycle count; ending a break
	// early instead consumes the cycle the break belonged to
	if state.CyclesLeft == 0 {
		state.StartCycles(settings.Cycles)
		s.totalCycles = settings.Cycles
	} else if s.session.Phase() == game.PhaseBreak && s.session.Leftover() > 0 {
		if !state.FinishBreak() {
			s.reset()
			return
		}
	}

	s.plant = s.spawnPlant()
	s.session.StartStudy(float64(settings.StudyMinutes), settings.Overstudy)
	log.Printf("[TimerScene] Study started: %d min, cycle %s", settings.StudyMinutes, s.cycleLabel())
}

// startBreak begins a break phase. During overstudy this is how a
// study session ends, so the study is saved first with its exact
// duration.
func (s *TimerScene) startBreak() {
	if s.session.Phase() == game.PhaseStudy && s.session.Overstudying() {
		s.saveStudy(false)
	}
	settings := s.settingsManager.GetSettings()
	s.session.StartBreak(float64(settings.BreakMinutes))
	log.Printf("[TimerScene] Break started: %d min", settings.BreakMinutes)
}

// reset stops the timer and shrinks the plant back to age zero.
func (s *TimerScene) reset() {
	s.session.Reset()
	game.GetGameState().CyclesLeft = 0
	s.totalCycles = 0
	if s.plant != nil {
		s.plant.SetAge(0)
	}
}

// onStudyFinished handles the study countdown reaching zero.
func (s *TimerScene) onStudyFinished() {
	s.audioManager.PlayChime(game.ChimeStudyDone)
	s.notify("Studying finished, take a break!")

	// In overstudy mode the timer keeps going; the study is saved
	// when the user starts the break themselves
	if !s.settingsManager.GetSettings().Overstudy {
		s.saveStudy(true)
		settings := s.settingsManager.GetSettings()
		s.session.StartBreak(float64(settings.BreakMinutes))
	}
}

// onBreakFinished handles the break countdown reaching zero.
func (s *TimerScene) onBreakFinished() {
	settings := s.settingsManager.GetSettings()
	if err := s.historyManager.AddBreak(time.Now(), float64(settings.BreakMinutes)); err != nil {
		log.Printf("[TimerScene] Warning: Failed to record break: %v", err)
	}

	s.audioManager.PlayChime(game.ChimeBreakDone)
	s.notify("Break is over!")

	if game.GetGameState().FinishBreak() {
		s.startStudy()
	} else {
		s.reset()
	}
}

// saveStudy records the finished study together with its plant.
// With rounded set, the duration is truncated to whole minutes, since
// the leftover fraction of a normal study is a tiny number.
func (s *TimerScene) saveStudy(rounded bool) {
	minutes := s.elapsedMinutes()
	if rounded {
		minutes = float64(int(minutes))
	}

	var record *plants.Record
	if s.plant != nil {
		record = s.plant.Record()
	}
	if err := s.historyManager.AddStudy(time.Now(), minutes, record); err != nil {
		log.Printf("[TimerScene] Warning: Failed to record study: %v", err)
	}
}

// spawnPlant picks a random enabled species, or nil when the user
// disabled them all.
func (s *TimerScene) spawnPlant() plants.Plant {
	kinds := s.settingsManager.EnabledKinds()
	if len(kinds) == 0 {
		return nil
	}
	kind := kinds[s.rng.Intn(len(kinds))]
	plant, err := plants.New(kind, s.rng)
	if err != nil {
		log.Printf("[TimerScene] Warning: Failed to create plant: %v", err)
		return nil
	}
	plant.SetAge(0)
	return plant
}

// elapsedMinutes is the time the current phase has been running, in minutes.
func (s *TimerScene) elapsedMinutes() float64 {
	return (s.session.PhaseMinutes()*60 + 0.99 - s.session.Leftover()) / 60
}

// notify shows a desktop notification, if enabled. zenity blocks on
// some platforms, so it runs off the update loop.
func (s *TimerScene) notify(message string) {
	if !s.settingsManager.GetSettings().PopupEnabled {
		return
	}
	go func() {
		if err := zenity.Notify(message, zenity.Title("Florodoro"), zenity.InfoIcon); err != nil {
			log.Printf("[TimerScene] Warning: Failed to show notification: %v", err)
		}
	}()
}

// cycleLabel formats the "current/total" cycle counter.
// Empty when cycles are not in use (a single-cycle chain).
func (s *TimerScene) cycleLabel() string {
	state := game.GetGameState()
	if s.totalCycles <= 1 || s.session.Phase() != game.PhaseStudy {
		return ""
	}
	current := s.totalCycles - state.CyclesLeft + 1
	return strconv.Itoa(current) + "/" + strconv.Itoa(s.totalCycles)
}

// Draw renders the plant, the clock and the status labels.
func (s *TimerScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Plant behind the clock, rendered over the full window
	if s.plant != nil && s.session.Phase() != game.PhaseIdle {
		s.surface.Reset(screen)
		plants.Draw(s.plant, s.surface, WindowWidth, WindowHeight)
	}

	clockColor := textColor
	label := ""
	switch s.session.Phase() {
	case game.PhaseStudy:
		label = "STUDY"
		if s.session.Overstudying() {
			clockColor = overstudyColor
		}
	case game.PhaseBreak:
		label = "BREAK"
		clockColor = breakColor
	}

	if s.session.Phase() == game.PhaseIdle {
		settings := s.settingsManager.GetSettings()
		utils.DrawPixelText(screen, "FLORODORO", WindowWidth/2, 80, 6, textColor, utils.AlignCenter)
		utils.DrawPixelText(screen,
			"STUDY "+strconv.Itoa(settings.StudyMinutes)+" BREAK "+strconv.Itoa(settings.BreakMinutes)+" CYCLES "+strconv.Itoa(settings.Cycles),
			WindowWidth/2, 150, 3, hintColor, utils.AlignCenter)
		utils.DrawPixelText(screen, "S TO STUDY, B TO BREAK, TAB FOR STATS",
			WindowWidth/2, 190, 2, hintColor, utils.AlignCenter)
		return
	}

	utils.DrawPixelText(screen, utils.FormatClock(s.session.Leftover()),
		WindowWidth/2, 60, 8, clockColor, utils.AlignCenter)
	utils.DrawPixelText(screen, label, WindowWidth/2, 140, 3, clockColor, utils.AlignCenter)

	if cycles := s.cycleLabel(); cycles != "" {
		utils.DrawPixelText(screen, cycles, WindowWidth-20, 20, 3, hintColor, utils.AlignRight)
	}
	if s.session.Paused() {
		utils.DrawPixelText(screen, "PAUSED", WindowWidth/2, 180, 3, hintColor, utils.AlignCenter)
	}
}
