package plants

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/decker502/florodoro/pkg/canvas"
)

// Kind 植物品种标签（封闭集合）
type Kind string

const (
	KindTree            Kind = "tree"
	KindGreenTree       Kind = "green_tree"
	KindDoubleGreenTree Kind = "double_green_tree"
	KindOrangeTree      Kind = "orange_tree"
	KindFlower          Kind = "flower"
	KindCircularFlower  Kind = "circular_flower"
)

// DefaultKinds 学习时随机抽取的品种（基础 Tree/Flower 只作为组合基底）
var DefaultKinds = []Kind{
	KindGreenTree,
	KindDoubleGreenTree,
	KindOrangeTree,
	KindCircularFlower,
}

// KindName 品种的显示名称
func KindName(k Kind) string {
	switch k {
	case KindTree:
		return "Tree"
	case KindGreenTree:
		return "Spruce"
	case KindDoubleGreenTree:
		return "Double spruce"
	case KindOrangeTree:
		return "Maple"
	case KindFlower:
		return "Stem"
	case KindCircularFlower:
		return "Flower"
	}
	return string(k)
}

// Plant 一株可生长、可绘制的植物
//
// 所有随机结构参数在构造时抽取完毕，之后只有年龄可变。
// 同一实例不允许跨 goroutine 并发调用 SetAge 和 Draw。
type Plant interface {
	// Kind 返回品种标签
	Kind() Kind

	// SetAge 设置当前年龄（分钟）。不做范围检查：
	// 任何值在生长曲线下都有定义，负年龄由调用方自行负责。
	SetAge(minutes float64)

	// Age 返回当前年龄（分钟）
	Age() float64

	// GrowthCoefficient 返回当前归一化生长系数 [0, 1)
	GrowthCoefficient() float64

	// InverseAgeCoefficient 把目标生长系数反推为年龄（分钟）
	// y=1 返回 +Inf。用于历史面板的生长进度滑块。
	InverseAgeCoefficient(y float64) float64

	// Record 导出全部结构参数的可序列化记录
	Record() *Record

	// drawShape 在植物自身坐标系（原点在根部，y 轴向上）中绘制几何
	// 非导出：品种集合封闭在本包内
	drawShape(s canvas.Surface, width, height float64)
}

// Draw 把植物绘制到 surface 上
//
// 建立渲染坐标系：原点移到画布底部中心，翻转 y 轴让生长朝上；
// 非正方形画布取短边作为有效尺寸，植物不会被拉伸。
// 变换用 Save/Restore 包裹，不影响调用方后续绘制。
func Draw(p Plant, s canvas.Surface, width, height float64) {
	size := math.Min(width, height)

	s.Save()
	s.Translate(width/2, height)
	s.Scale(1, -1)
	p.drawShape(s, size, size)
	s.Restore()
}

// New 构造指定品种的植物，全部随机参数从 rng 一次性抽取
func New(kind Kind, rng *rand.Rand) (Plant, error) {
	switch kind {
	case KindTree:
		return newTree(rng), nil
	case KindGreenTree:
		return newGreenTree(rng), nil
	case KindDoubleGreenTree:
		return newDoubleGreenTree(rng), nil
	case KindOrangeTree:
		return newOrangeTree(rng), nil
	case KindFlower:
		return newFlower(rng), nil
	case KindCircularFlower:
		return newCircularFlower(rng), nil
	}
	return nil, fmt.Errorf("unknown plant kind: %q", kind)
}

// base 所有植物共有的状态：年龄和整体尺寸抖动
type base struct {
	age     float64
	deficit float64 // [0.9, 1]，每株植物固定的尺寸抖动
}

func newBase(rng *rand.Rand) base {
	return base{deficit: uniform(rng, 0.9, 1)}
}

func (b *base) SetAge(minutes float64) {
	b.age = minutes
}

func (b *base) Age() float64 {
	return b.age
}

func (b *base) GrowthCoefficient() float64 {
	return AgeCoefficient(b.age, ageScale, ageExponent)
}

func (b *base) InverseAgeCoefficient(y float64) float64 {
	return InverseAgeCoefficient(y, ageScale, ageExponent)
}

// slowGrowthCoefficient 立方衰减的生长系数
// 树冠等部位用它，让枝叶的生长明显滞后于主干
func (b *base) slowGrowthCoefficient() float64 {
	g := b.GrowthCoefficient()
	return g * g * g
}

// smoothGrowth 缓入缓出整形后的生长系数，绝大多数尺寸公式用它
func (b *base) smoothGrowth() float64 {
	return SmoothenCurve(b.GrowthCoefficient())
}

// uniform 从 [lo, hi) 均匀抽取
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randomSign 等概率返回 -1 或 +1
func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// degrees 弧度转角度
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
