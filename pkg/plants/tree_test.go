package plants

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/florodoro/pkg/canvas"
)

// orangeTreeFixture 参数已知的枫树，便于核对公式
func orangeTreeFixture(t *testing.T) *OrangeTree {
	t.Helper()
	p, err := FromRecord(&Record{
		Version: RecordVersion,
		Kind:    KindOrangeTree,
		Deficit: 0.95,
		Branches: []Branch{
			{Height: 0.46, Rotation: -1.1},
			{Height: 0.52, Rotation: 1.05},
		},
		FruitCircles: []FruitCircle{
			{Size: 0.31, Position: 0.92},
			{Size: 0.35, Position: 0.90},
			{Size: 0.33, Position: 0.95}, // 主圆
		},
	})
	if err != nil {
		t.Fatalf("FromRecord() error: %v", err)
	}
	return p.(*OrangeTree)
}

// TestOrangeTreeBranchCount 测试枫树固定为两根侧枝
func TestOrangeTreeBranchCount(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p, err := New(KindOrangeTree, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		ot := p.(*OrangeTree)
		if len(ot.branches) != 2 {
			t.Errorf("种子 %d: 侧枝数 = %d, 期望 2", seed, len(ot.branches))
		}
		if len(ot.circles) != 3 {
			t.Errorf("种子 %d: 果实圆数 = %d, 期望 3（每枝一个 + 主圆）", seed, len(ot.circles))
		}
	}
}

// TestOrangeTreeEllipses 场景：已知参数的枫树每次绘制产生
// 恰好 2 个侧枝果实椭圆 + 1 个主椭圆，主椭圆半径符合 1.3 倍公式
func TestOrangeTreeEllipses(t *testing.T) {
	tree := orangeTreeFixture(t)
	const width, height = 300.0, 300.0

	rec := drawToRecorder(tree, 20, width, height)

	ellipses := rec.OpsOfKind(canvas.OpFillEllipse)
	if len(ellipses) != 3 {
		t.Fatalf("椭圆数量 = %d, 期望 3", len(ellipses))
	}

	// 主椭圆最后画：r = ((w+h)/2) · size · g · (1 - 最后一根侧枝高度) · 1.3
	g := tree.GrowthCoefficient()
	lastBranch := tree.branches[len(tree.branches)-1]
	main := tree.circles[len(tree.circles)-1]
	wantR := (width + height) / 2 * main.Size * g * (1 - lastBranch.Height) * 1.3

	got := ellipses[len(ellipses)-1]
	if math.Abs(got.RX-wantR) > 1e-9 || math.Abs(got.RY-wantR) > 1e-9 {
		t.Errorf("主椭圆半径 = (%v, %v), 期望 %v", got.RX, got.RY, wantR)
	}
}

// TestOrangeTreeFruitBehindBranches 测试 z 序：果实先画，枝干后画
func TestOrangeTreeFruitBehindBranches(t *testing.T) {
	tree := orangeTreeFixture(t)
	rec := drawToRecorder(tree, 20, 300, 300)

	firstPolygon := -1
	lastEllipse := -1
	for i, op := range rec.Ops {
		switch op.Kind {
		case canvas.OpFillPolygon:
			if firstPolygon == -1 {
				firstPolygon = i
			}
		case canvas.OpFillEllipse:
			lastEllipse = i
		}
	}

	if firstPolygon == -1 || lastEllipse == -1 {
		t.Fatal("缺少多边形或椭圆指令")
	}
	if lastEllipse > firstPolygon {
		t.Error("果实椭圆必须全部画在枝干多边形之前（后画的会覆盖先画的）")
	}
}

// TestDoubleGreenTreeCanopyCap 场景：任意年龄和画布组合下，
// 上层树冠顶点的世界坐标高度都不超过画布有效高度的 95%
func TestDoubleGreenTreeCanopyCap(t *testing.T) {
	p, err := New(KindDoubleGreenTree, rand.New(rand.NewSource(17)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ages := []float64{0, 1, 5, 15, 40, 120, 1e6}
	canvases := [][2]float64{{300, 300}, {400, 300}, {300, 500}, {1000, 1000}}

	for _, c := range canvases {
		width, height := c[0], c[1]
		size := math.Min(width, height)
		for _, age := range ages {
			rec := drawToRecorder(p, age, width, height)

			// 上层树冠是本品种第一个画出的多边形
			polygons := rec.OpsOfKind(canvas.OpFillPolygon)
			if len(polygons) == 0 {
				t.Fatal("没有画出树冠")
			}
			inner := polygons[0]

			// 记录器给出的是设备坐标；世界高度 = 画布高度 - 设备 y
			for _, pt := range inner.Points {
				worldY := height - pt.Y
				if worldY > size*0.95+1e-9 {
					t.Errorf("画布 %vx%v 年龄 %v: 树冠顶点高度 %v 超过上限 %v",
						width, height, age, worldY, size*0.95)
				}
			}
		}
	}
}

// TestTreeBranchRotationRange 测试侧枝旋转角落在 ±acos 抽取的合法范围
func TestTreeBranchRotationRange(t *testing.T) {
	// acos(0.6) ≈ 0.927, acos(0.4) ≈ 1.159
	lo, hi := math.Acos(0.6), math.Acos(0.4)
	for seed := int64(0); seed < 50; seed++ {
		p, _ := New(KindTree, rand.New(rand.NewSource(seed)))
		tree := p.(*Tree)
		if n := len(tree.branches); n < 1 || n > 2 {
			t.Fatalf("种子 %d: 侧枝数 %d 超出 1~2", seed, n)
		}
		for _, b := range tree.branches {
			abs := math.Abs(b.Rotation)
			if abs < lo-1e-9 || abs > hi+1e-9 {
				t.Errorf("种子 %d: 旋转角 %v 超出 [%v, %v]", seed, abs, lo, hi)
			}
			if b.Height < 0.45*0.9-1e-9 || b.Height > 0.55+1e-9 {
				t.Errorf("种子 %d: 侧枝高度 %v 超出范围", seed, b.Height)
			}
		}
	}
}

// TestTwoBranchesOppositeSides 测试两根侧枝必然一左一右
func TestTwoBranchesOppositeSides(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		p, _ := New(KindOrangeTree, rand.New(rand.NewSource(seed)))
		tree := p.(*OrangeTree)
		if tree.branches[0].Rotation*tree.branches[1].Rotation >= 0 {
			t.Errorf("种子 %d: 两根侧枝朝向同侧 (%v, %v)",
				seed, tree.branches[0].Rotation, tree.branches[1].Rotation)
		}
	}
}
