package plants

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/florodoro/pkg/canvas"
)

// Leaf 一片叶子：沿花茎的锚点位置 + 尺寸抖动 + 朝向
type Leaf struct {
	// Position 叶片锚点在花茎上的弧长占比，[0.25, 0.40]·deficit
	Position float64 `yaml:"position"`
	// Size 叶片尺寸抖动，[0.9, 1.1]
	Size float64 `yaml:"size"`
	// Side 叶片朝向：±1，同时也是叶片的基础旋转量（弧度）
	Side float64 `yaml:"side"`
}

// Flower 基础花：弯曲的花茎加两片叶子
type Flower struct {
	base
	xLean     float64 // 花心横向偏移系数，符号决定花茎倒向哪边，幅度 [0.4, 1]
	stemWidth float64 // 花茎线宽，[3.5, 4]
	leaves    []Leaf

	// 最近一次绘制算出的花心坐标，CircularFlower 画花瓣时复用
	x, y float64
}

func newFlower(rng *rand.Rand) *Flower {
	f := &Flower{base: newBase(rng)}
	f.xLean = uniform(rng, 0.4, 1) * randomSign(rng)
	f.generateLeaves(rng, 2)
	f.stemWidth = uniform(rng, 3.5, 4)
	return f
}

// generateLeaves 抽取 count 片叶子；两片时强制一左一右
func (f *Flower) generateLeaves(rng *rand.Rand, count int) {
	f.leaves = make([]Leaf, count)
	for i := range f.leaves {
		side := randomSign(rng)
		if count == 2 {
			side = (float64(i) - 0.5) * 2
		}
		f.leaves[i] = Leaf{
			Position: uniform(rng, f.deficit*0.25, f.deficit*0.40),
			Size:     uniform(rng, 0.9, 1.1),
			Side:     side,
		}
	}
}

func (f *Flower) flowerCenterX(width float64) float64 {
	return width / 9 * f.xLean
}

func (f *Flower) flowerCenterY(height float64) float64 {
	return height / 2.5 * f.deficit
}

func (f *Flower) leafSize(width float64) float64 {
	return width / 7 * f.deficit
}

func (f *Flower) Kind() Kind {
	return KindFlower
}

func (f *Flower) Record() *Record {
	return &Record{
		Version:   RecordVersion,
		Kind:      KindFlower,
		Deficit:   f.deficit,
		XLean:     f.xLean,
		StemWidth: f.stemWidth,
		Leaves:    append([]Leaf(nil), f.leaves...),
	}
}

func (f *Flower) drawShape(s canvas.Surface, width, height float64) {
	sc := f.smoothGrowth()

	f.x = f.flowerCenterX(width) * sc
	f.y = f.flowerCenterY(height) * sc

	// 花茎：从根部到花心的二次曲线，控制点在 (0, 0.6y)
	stem := &canvas.Path{}
	stem.QuadTo(0, f.y*0.6, f.x, f.y)
	s.StrokePath(stem, f.stemWidth*sc, colorGreen)

	for _, leaf := range f.leaves {
		s.Save()

		// 锚定到花茎上的对应点，再按叶片朝向旋转
		anchor := stem.PointAtPercent(leaf.Position)
		s.Translate(anchor.X, anchor.Y)
		s.Rotate(degrees(leaf.Side))

		// 随花茎倾斜方向调整叶片角度；y=0（刚开始生长）时跳过，避免除零
		if f.y != 0 {
			s.Rotate(-degrees(math.Sin(f.x / f.y)))
		}

		// 镜像负侧的叶片，让两片叶子朝同一个视觉方向
		if leaf.Side < 0 {
			s.Scale(-1, 1)
		}

		// 叶片：一段二次曲线加一段三次曲线围成的水滴形
		ls := f.leafSize(width) * sc * sc * leaf.Size
		shape := &canvas.Path{}
		shape.QuadTo(0.4*ls, 0.5*ls, 0, ls)
		shape.CubicTo(0, 0.5*ls, -0.4*ls, 0.4*ls, 0, 0)
		s.FillPath(shape, colorGreen)

		s.Restore()
	}
}

// PetalShape 花瓣形状函数的标签
type PetalShape string

const (
	// PetalCircle 正圆花瓣
	PetalCircle PetalShape = "circle"
	// PetalTriangle 尖三角花瓣
	PetalTriangle PetalShape = "triangle"
	// PetalDip 中间带凹口的花瓣
	PetalDip PetalShape = "dip"
	// PetalRound 圆润但非正圆的花瓣
	PetalRound PetalShape = "round"
)

// petalShapeChoices 抽取顺序固定，保证同一随机源生成结果稳定
var petalShapeChoices = []PetalShape{PetalCircle, PetalTriangle, PetalDip, PetalRound}

// CircularFlower 完整的花：在基础花之上放射状排列若干花瓣加花心圆盘
type CircularFlower struct {
	Flower
	colorIndex  int        // petalPalette 下标
	petalCount  int        // 5~7；dip/round 形状固定为 5
	centerRatio float64    // 花心圆盘相对花瓣的缩小比例，[0.75, 0.85]
	shape       PetalShape // 花瓣形状
}

func newCircularFlower(rng *rand.Rand) *CircularFlower {
	f := &CircularFlower{Flower: *newFlower(rng)}
	f.colorIndex = rng.Intn(len(petalPalette))
	f.petalCount = 5 + rng.Intn(3)
	f.centerRatio = uniform(rng, 0.75, 0.85)
	f.shape = petalShapeChoices[rng.Intn(len(petalShapeChoices))]

	// dip 和 round 形状只有五瓣才好看
	if f.shape == PetalDip || f.shape == PetalRound {
		f.petalCount = 5
	}
	return f
}

func (f *CircularFlower) petalSize(width float64) float64 {
	return width / 9 * f.deficit
}

func (f *CircularFlower) Kind() Kind {
	return KindCircularFlower
}

func (f *CircularFlower) Record() *Record {
	r := f.Flower.Record()
	r.Kind = KindCircularFlower
	r.PetalColor = f.colorIndex
	r.PetalCount = f.petalCount
	r.CenterRatio = f.centerRatio
	r.PetalShape = f.shape
	return r
}

func (f *CircularFlower) drawShape(s canvas.Surface, width, height float64) {
	f.Flower.drawShape(s, width, height)

	s.Save()
	s.Translate(f.x, f.y)

	clr := petalPalette[f.colorIndex]
	petalSize := f.petalSize(width) * f.smoothGrowth()

	// 花瓣均匀分布一圈：每画一瓣就把坐标系转过一个等分角
	step := 360 / float64(f.petalCount)
	for i := 0; i < f.petalCount; i++ {
		drawPetal(s, f.shape, petalSize, clr)
		s.Rotate(step)
	}

	// 花心圆盘盖在花瓣交汇处
	petalSize *= f.centerRatio
	s.FillEllipse(canvas.Point{X: 0, Y: 0}, petalSize/2, petalSize/2, colorWhite)

	s.Restore()
}

// drawPetal 按形状标签绘制一片花瓣
// 四种形状都是固定控制点的参数化路径
func drawPetal(s canvas.Surface, shape PetalShape, size float64, clr color.Color) {
	switch shape {
	case PetalCircle:
		// 正圆：内切于 (0,0)-(size,size) 的方框
		s.FillEllipse(canvas.Point{X: size / 2, Y: size / 2}, size/2, size/2, clr)

	case PetalTriangle:
		size *= 1.5
		p := &canvas.Path{}
		p.QuadTo(0.9*size, 0.5*size, 0, size)
		p.QuadTo(-0.5*size, 0.4*size, 0, 0)
		s.FillPath(p, clr)

	case PetalRound:
		size *= 1.3
		p := &canvas.Path{}
		p.QuadTo(0.8*size, 0.9*size, 0, size)
		p.QuadTo(-0.8*size, 0.9*size, 0, 0)
		s.FillPath(p, clr)

	case PetalDip:
		size *= 1.2
		p := &canvas.Path{}
		p.QuadTo(size, 1.4*size, 0, size)
		p.QuadTo(-size, 1.4*size, 0, 0)
		s.FillPath(p, clr)
	}
}
