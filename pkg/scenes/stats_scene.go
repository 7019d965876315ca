package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/decker502/florodoro/pkg/canvas"
	"github.com/decker502/florodoro/pkg/game"
	"github.com/decker502/florodoro/pkg/plants"
	"github.com/decker502/florodoro/pkg/utils"
)

// Statistics scene layout. The left half is the study-time chart, the
// right half replays plants from the history.
const (
	chartLeft   = 40.0
	chartTop    = 120.0
	chartWidth  = 320.0
	chartHeight = 300.0

	plantPanelLeft = WindowWidth / 2
	exportSize     = 1000.0 // SVG export canvas, square
)

var (
	barColor      = color.RGBA{0, 119, 0, 255}
	barGridColor  = color.RGBA{220, 220, 215, 255}
	sliderColor   = color.RGBA{180, 180, 180, 255}
	sliderKnobClr = color.RGBA{60, 60, 60, 255}
)

var weekdayLabels = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// StatsScene shows study statistics and lets the user browse the
// plants they have grown, scrub each one through its growth with a
// slider, and export the current view as an SVG.
//
// Controls:
//   - Tab: back to the timer
//   - Left/Right: previous/next plant
//   - Up/Down: scrub the growth slider
//   - E: export the displayed plant as SVG
type StatsScene struct {
	sceneManager    *game.SceneManager
	historyManager  *game.HistoryManager
	settingsManager *game.SettingsManager

	surface *canvas.EbitenSurface

	studies    []game.StudyRecord // studies with a plant, date ascending
	index      int                // selected plant, -1 when there are none
	sliderFrac float64            // growth slider position [0, 1]
	plant      plants.Plant       // rebuilt from the selected record
	chartAnim  float64            // chart entry animation progress [0, 1]
}

// NewStatsScene creates the statistics scene.
func NewStatsScene(sm *game.SceneManager, history *game.HistoryManager,
	settings *game.SettingsManager) *StatsScene {
	s := &StatsScene{
		sceneManager:    sm,
		historyManager:  history,
		settingsManager: settings,
		surface:         canvas.NewEbitenSurface(nil),
		index:           -1,
		sliderFrac:      1,
	}
	s.Refresh()
	return s
}

// Refresh reloads the plant list from the history and jumps to the
// most recent plant. Called when the scene becomes visible.
func (s *StatsScene) Refresh() {
	s.studies = s.studies[:0]
	for _, study := range s.historyManager.Studies() {
		if study.Plant != nil {
			s.studies = append(s.studies, study)
		}
	}
	s.index = len(s.studies) - 1
	s.sliderFrac = 1
	s.chartAnim = 0
	s.rebuildPlant()
}

// rebuildPlant reconstructs the selected plant from its record.
func (s *StatsScene) rebuildPlant() {
	s.plant = nil
	if s.index < 0 || s.index >= len(s.studies) {
		return
	}
	plant, err := plants.FromRecord(s.studies[s.index].Plant)
	if err != nil {
		log.Printf("[StatsScene] Warning: Corrupt plant record %d: %v", s.index, err)
		return
	}
	s.plant = plant
}

// Update handles the browsing and scrubbing keys.
func (s *StatsScene) Update(deltaTime float64) {
	// Bars ease in over half a second after entering the scene
	s.chartAnim += deltaTime * 2
	if s.chartAnim > 1 {
		s.chartAnim = 1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.sceneManager.SwitchByName("timer")
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && s.index > 0 {
		s.index--
		s.sliderFrac = 1
		s.rebuildPlant()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && s.index < len(s.studies)-1 {
		s.index++
		s.sliderFrac = 1
		s.rebuildPlant()
	}

	// Holding the key scrubs smoothly
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.sliderFrac += deltaTime
		if s.sliderFrac > 1 {
			s.sliderFrac = 1
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.sliderFrac -= deltaTime
		if s.sliderFrac < 0 {
			s.sliderFrac = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.exportSVG()
	}

	s.applySliderAge()
}

// applySliderAge maps the slider position onto the plant's age.
// The slider covers growth progress, not time: full right is the
// plant exactly as grown, and the mapping goes through the growth
// curve so the middle of the slider is half the final size.
func (s *StatsScene) applySliderAge() {
	if s.plant == nil {
		return
	}
	duration := s.studies[s.index].Minutes

	s.plant.SetAge(duration)
	final := s.plant.GrowthCoefficient()

	if s.sliderFrac >= 1 {
		return
	}
	s.plant.SetAge(s.plant.InverseAgeCoefficient(s.sliderFrac * final))
}

// exportSVG renders the displayed plant at its current slider age to
// an SVG file picked by the user.
func (s *StatsScene) exportSVG() {
	if s.plant == nil {
		return
	}

	defaultName := fmt.Sprintf("%s-%s.svg",
		plants.KindName(s.plant.Kind()),
		s.studies[s.index].Date.Format("2006-01-02"))

	path, err := zenity.SelectFileSave(
		zenity.Title("Export plant as SVG"),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "SVG files", Patterns: []string{"*.svg"}}})
	if err != nil {
		if err != zenity.ErrCanceled {
			log.Printf("[StatsScene] Warning: File dialog failed: %v", err)
		}
		return
	}

	svg := canvas.NewSVGSurface(exportSize, exportSize)
	plants.Draw(s.plant, svg, exportSize, exportSize)
	if err := svg.WriteFile(path); err != nil {
		log.Printf("[StatsScene] Error: Failed to write SVG: %v", err)
		return
	}
	log.Printf("[StatsScene] Exported plant to %s", path)
}

// Draw renders the chart, the totals and the selected plant.
func (s *StatsScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	utils.DrawPixelText(screen, "STATISTICS", chartLeft, 30, 4, textColor, utils.AlignLeft)
	s.drawTotals(screen)
	s.drawWeekdayChart(screen)
	s.drawPlantPanel(screen)
}

// drawTotals renders the study/break/plants counters.
func (s *StatsScene) drawTotals(screen *ebiten.Image) {
	study := time.Duration(s.historyManager.TotalStudyMinutes() * float64(time.Minute))
	rest := time.Duration(s.historyManager.TotalBreakMinutes() * float64(time.Minute))

	lines := []string{
		fmt.Sprintf("STUDIED %s", formatTotal(study)),
		fmt.Sprintf("RESTED %s", formatTotal(rest)),
		fmt.Sprintf("PLANTS GROWN %d", s.historyManager.PlantsGrown()),
	}
	for i, line := range lines {
		utils.DrawPixelText(screen, line, chartLeft, 60+float64(i)*18, 2, textColor, utils.AlignLeft)
	}
}

// formatTotal renders a total duration as "12H 34M".
func formatTotal(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dM", m)
	}
	return fmt.Sprintf("%dH %dM", h, m)
}

// drawWeekdayChart renders the study minutes per weekday as a bar chart.
func (s *StatsScene) drawWeekdayChart(screen *ebiten.Image) {
	minutes := s.historyManager.WeekdayMinutes()

	max := 0.0
	for _, m := range minutes {
		if m > max {
			max = m
		}
	}

	barSlot := chartWidth / 7
	baseline := chartTop + chartHeight

	vector.StrokeLine(screen, float32(chartLeft), float32(baseline),
		float32(chartLeft+chartWidth), float32(baseline), 1, barGridColor, false)

	for i, m := range minutes {
		x := chartLeft + float64(i)*barSlot

		if max > 0 && m > 0 {
			h := chartHeight * (m / max) * utils.EaseOutCubic(s.chartAnim)
			vector.DrawFilledRect(screen,
				float32(x+barSlot*0.15), float32(baseline-h),
				float32(barSlot*0.7), float32(h), barColor, false)
		}

		utils.DrawPixelText(screen, weekdayLabels[i],
			x+barSlot/2, baseline+10, 1.5, hintColor, utils.AlignCenter)
	}
}

// drawPlantPanel renders the selected plant with its caption and the
// growth slider.
func (s *StatsScene) drawPlantPanel(screen *ebiten.Image) {
	if s.plant == nil {
		utils.DrawPixelText(screen, "NO PLANTS YET",
			plantPanelLeft+(WindowWidth-plantPanelLeft)/2, WindowHeight/2,
			3, hintColor, utils.AlignCenter)
		return
	}

	panel := screen.SubImage(image.Rect(plantPanelLeft, 0, WindowWidth, WindowHeight-60)).(*ebiten.Image)
	s.surface.Reset(panel)

	s.surface.Save()
	s.surface.Translate(plantPanelLeft, 0)
	plants.Draw(s.plant, s.surface, WindowWidth-plantPanelLeft, WindowHeight-60)
	s.surface.Restore()

	study := s.studies[s.index]
	// The pixel font only carries uppercase glyphs
	caption := fmt.Sprintf("%s (%d/%d) %s",
		strings.ToUpper(plants.KindName(s.plant.Kind())), s.index+1, len(s.studies),
		study.Date.Format("2006-01-02"))
	utils.DrawPixelText(screen, caption,
		plantPanelLeft+(WindowWidth-plantPanelLeft)/2, WindowHeight-50,
		2, textColor, utils.AlignCenter)

	// Growth slider
	sliderY := WindowHeight - 25.0
	sliderX0 := plantPanelLeft + 40.0
	sliderX1 := WindowWidth - 40.0
	vector.StrokeLine(screen, float32(sliderX0), float32(sliderY),
		float32(sliderX1), float32(sliderY), 2, sliderColor, false)
	knobX := utils.Lerp(sliderX0, sliderX1, s.sliderFrac)
	vector.DrawFilledCircle(screen, float32(knobX), float32(sliderY), 6, sliderKnobClr, false)
}
