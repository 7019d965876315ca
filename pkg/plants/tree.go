package plants

import (
	"math"
	"math/rand"

	"github.com/decker502/florodoro/pkg/canvas"
)

// Branch 一根侧枝：沿主干的高度占比 + 伸出方向
type Branch struct {
	// Height 侧枝根部在主干上的高度占比，[0.45, 0.55]·deficit
	Height float64 `yaml:"height"`
	// Rotation 侧枝相对主干的旋转角（弧度）
	// 抽取方式是 ±acos(U(0.4, 0.6))：让余弦均匀分布，视觉上更自然
	Rotation float64 `yaml:"rotation"`
}

// Tree 基础树：三角形主干加 1~2 根侧枝
// 其余树种都在它之上叠加各自的树冠
type Tree struct {
	base
	branches []Branch
}

func newTree(rng *rand.Rand) *Tree {
	t := &Tree{base: newBase(rng)}
	t.generateBranches(rng, int(math.Round(uniform(rng, 1, 2))))
	return t
}

// generateBranches 抽取 count 根侧枝
// 两根时强制一左一右，一根时方向随机
func (t *Tree) generateBranches(rng *rand.Rand, count int) {
	t.branches = make([]Branch, count)
	for i := range t.branches {
		sign := randomSign(rng)
		if count == 2 {
			sign = (float64(i) - 0.5) * 2
		}
		t.branches[i] = Branch{
			Height:   uniform(rng, t.deficit*0.45, t.deficit*0.55),
			Rotation: sign * math.Acos(uniform(rng, 0.4, 0.6)),
		}
	}
}

// 主干和侧枝的基准尺寸
func (t *Tree) baseWidth(width float64) float64 {
	return width / 15 * t.deficit
}

func (t *Tree) baseHeight(height float64) float64 {
	return height / 1.7 * t.deficit
}

func (t *Tree) branchWidth(width float64) float64 {
	return width / 18 * t.deficit
}

func (t *Tree) branchHeight(height float64) float64 {
	return height / 2.7 * t.deficit
}

func (t *Tree) Kind() Kind {
	return KindTree
}

func (t *Tree) Record() *Record {
	return &Record{
		Version:  RecordVersion,
		Kind:     KindTree,
		Deficit:  t.deficit,
		Branches: append([]Branch(nil), t.branches...),
	}
}

func (t *Tree) drawShape(s canvas.Surface, width, height float64) {
	sc := t.smoothGrowth()
	slow := SmoothenCurve(t.slowGrowthCoefficient())

	// 主干：等腰三角形，底边在 y=0，顶点在主干高度
	s.FillPolygon([]canvas.Point{
		{X: -t.baseWidth(width) * sc, Y: 0},
		{X: t.baseWidth(width) * sc, Y: 0},
		{X: 0, Y: t.baseHeight(height) * sc},
	}, colorBrown)

	// 侧枝：小一号的三角形，越靠上的枝越短
	// 用滞后系数，让枝叶明显晚于主干长出来
	for _, branch := range t.branches {
		s.Save()
		s.Translate(0, t.baseHeight(height*branch.Height*sc))
		s.Rotate(degrees(branch.Rotation))

		shrink := 1 - branch.Height
		s.FillPolygon([]canvas.Point{
			{X: -t.branchWidth(width) * slow * shrink, Y: 0},
			{X: t.branchWidth(width) * slow * shrink, Y: 0},
			{X: 0, Y: t.branchHeight(height) * slow * shrink},
		}, colorBrown)

		s.Restore()
	}
}

// GreenTree 云杉：单层绿色三角树冠
type GreenTree struct {
	Tree
}

func newGreenTree(rng *rand.Rand) *GreenTree {
	return &GreenTree{Tree: *newTree(rng)}
}

func (t *GreenTree) greenWidth(width float64) float64 {
	return width / 3.2 * t.deficit
}

func (t *GreenTree) greenHeight(height float64) float64 {
	return height / 1.5 * t.deficit
}

// canopyOffset 树冠底边的高度，封顶在画布高度的 95%
func (t *GreenTree) canopyOffset(height float64) float64 {
	return math.Min(height*0.95, t.baseHeight(height*0.3*t.smoothGrowth()))
}

func (t *GreenTree) Kind() Kind {
	return KindGreenTree
}

func (t *GreenTree) Record() *Record {
	r := t.Tree.Record()
	r.Kind = KindGreenTree
	return r
}

func (t *GreenTree) drawShape(s canvas.Surface, width, height float64) {
	sc := t.smoothGrowth()
	offset := t.canopyOffset(height)

	// 树冠先画，主干和侧枝叠在上面
	s.FillPolygon([]canvas.Point{
		{X: -t.greenWidth(width) * sc, Y: offset},
		{X: t.greenWidth(width) * sc, Y: offset},
		{X: 0, Y: t.greenHeight(height)*sc + offset},
	}, colorGreen)

	t.Tree.drawShape(s, width, height)
}

// DoubleGreenTree 双层云杉：在 GreenTree 之上再叠一层更小的树冠
type DoubleGreenTree struct {
	GreenTree
}

func newDoubleGreenTree(rng *rand.Rand) *DoubleGreenTree {
	return &DoubleGreenTree{GreenTree: *newGreenTree(rng)}
}

func (t *DoubleGreenTree) secondGreenWidth(width float64) float64 {
	return width / 3.5 * t.deficit
}

func (t *DoubleGreenTree) secondGreenHeight(height float64) float64 {
	return height / 2.4 * t.deficit
}

func (t *DoubleGreenTree) Kind() Kind {
	return KindDoubleGreenTree
}

func (t *DoubleGreenTree) Record() *Record {
	r := t.Tree.Record()
	r.Kind = KindDoubleGreenTree
	return r
}

func (t *DoubleGreenTree) drawShape(s canvas.Surface, width, height float64) {
	sc := t.smoothGrowth()

	offset := t.baseHeight(height * 0.3 * sc)
	secondOffset := (t.greenHeight(height) - t.secondGreenHeight(height)) * sc

	// 上层树冠的宽度用 sc²，比下层长得更慢；顶点同样不许超过画布高度的 95%
	s.FillPolygon([]canvas.Point{
		{X: -t.secondGreenWidth(width) * sc * sc, Y: offset + secondOffset},
		{X: t.secondGreenWidth(width) * sc * sc, Y: offset + secondOffset},
		{X: 0, Y: math.Min(t.secondGreenHeight(height)*sc+offset+secondOffset, height*0.95)},
	}, colorGreen)

	t.GreenTree.drawShape(s, width, height)
}

// FruitCircle 果实圆：尺寸占比 + 在枝条上的位置占比
type FruitCircle struct {
	Size     float64 `yaml:"size"`     // [0.30, 0.37]·deficit
	Position float64 `yaml:"position"` // [0.9, 1]·deficit，沿枝条的插值位置
}

// OrangeTree 枫树：每根侧枝挂一个橙色果实圆，主干顶端一个更大的主圆
type OrangeTree struct {
	Tree
	circles []FruitCircle // 每根侧枝一个，最后一个是主圆
}

func newOrangeTree(rng *rand.Rand) *OrangeTree {
	t := &OrangeTree{Tree: *newTree(rng)}

	// 固定两根侧枝：配圆形果实时只有这样才好看
	t.generateBranches(rng, 2)

	t.circles = make([]FruitCircle, len(t.branches)+1)
	for i := range t.circles {
		t.circles[i] = FruitCircle{
			Size:     uniform(rng, t.deficit*0.30, t.deficit*0.37),
			Position: uniform(rng, t.deficit*0.9, t.deficit),
		}
	}
	return t
}

func (t *OrangeTree) Kind() Kind {
	return KindOrangeTree
}

func (t *OrangeTree) Record() *Record {
	r := t.Tree.Record()
	r.Kind = KindOrangeTree
	r.FruitCircles = append([]FruitCircle(nil), t.circles...)
	return r
}

func (t *OrangeTree) drawShape(s canvas.Surface, width, height float64) {
	sc := t.smoothGrowth()
	slowSC := SmoothenCurve(t.slowGrowthCoefficient())
	g := t.GrowthCoefficient()
	slowG := t.slowGrowthCoefficient()

	// 果实先画，枝干随后盖在上面（z 序：果实在枝条后面）
	for i, branch := range t.branches {
		s.Save()
		s.Translate(0, t.baseHeight(height*branch.Height*sc))
		s.Rotate(degrees(branch.Rotation))

		topOfBranch := t.branchHeight(height) * slowSC * (1 - branch.Height)
		circlePosition := topOfBranch * t.circles[i].Position
		r := (width + height) / 2 * t.circles[i].Size * slowG * (1 - branch.Height) * g

		s.FillEllipse(canvas.Point{X: 0, Y: circlePosition}, r, r, colorOrange)
		s.Restore()
	}

	// 主圆挂在主干顶端，固定放大 1.3 倍
	const mainCircleScale = 1.3
	topOfTrunk := t.baseHeight(height) * sc
	main := t.circles[len(t.circles)-1]
	circlePosition := topOfTrunk * main.Position
	lastBranch := t.branches[len(t.branches)-1]
	r := (width + height) / 2 * main.Size * g * (1 - lastBranch.Height) * mainCircleScale

	s.FillEllipse(canvas.Point{X: 0, Y: circlePosition}, r, r, colorOrange)

	t.Tree.drawShape(s, width, height)
}
