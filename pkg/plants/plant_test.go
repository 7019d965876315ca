package plants

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/decker502/florodoro/pkg/canvas"
)

// drawToRecorder 在指定年龄把植物画到记录器上
func drawToRecorder(p Plant, age, width, height float64) *canvas.Recorder {
	p.SetAge(age)
	rec := canvas.NewRecorder()
	Draw(p, rec, width, height)
	return rec
}

// TestNewAllKinds 测试所有品种都能构造并绘制
func TestNewAllKinds(t *testing.T) {
	kinds := []Kind{
		KindTree, KindGreenTree, KindDoubleGreenTree,
		KindOrangeTree, KindFlower, KindCircularFlower,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			p, err := New(kind, rand.New(rand.NewSource(42)))
			if err != nil {
				t.Fatalf("New(%q) error: %v", kind, err)
			}
			if p.Kind() != kind {
				t.Errorf("Kind() = %q, 期望 %q", p.Kind(), kind)
			}

			rec := drawToRecorder(p, 10, 300, 300)
			if len(rec.Ops) == 0 {
				t.Error("绘制没有产生任何指令")
			}
		})
	}
}

// TestNewUnknownKind 测试未知品种返回错误
func TestNewUnknownKind(t *testing.T) {
	if _, err := New("bonsai", rand.New(rand.NewSource(1))); err == nil {
		t.Error("New(\"bonsai\") 应该返回错误")
	}
}

// TestDeterminism 测试同一实例同一年龄重绘输出完全一致
func TestDeterminism(t *testing.T) {
	for _, kind := range DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			p, err := New(kind, rand.New(rand.NewSource(7)))
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			first := drawToRecorder(p, 12.5, 300, 300)
			second := drawToRecorder(p, 12.5, 300, 300)

			if !reflect.DeepEqual(first.Ops, second.Ops) {
				t.Error("同一年龄两次绘制的指令序列不一致")
			}
		})
	}
}

// TestSeedDeterminism 测试相同种子构造出的两株植物参数一致
func TestSeedDeterminism(t *testing.T) {
	for _, kind := range DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			p1, _ := New(kind, rand.New(rand.NewSource(99)))
			p2, _ := New(kind, rand.New(rand.NewSource(99)))
			if !reflect.DeepEqual(p1.Record(), p2.Record()) {
				t.Error("相同种子生成的结构参数不一致")
			}
		})
	}
}

// TestSetAgeIdempotent 测试重复设置同一年龄不改变后续绘制
func TestSetAgeIdempotent(t *testing.T) {
	p, _ := New(KindCircularFlower, rand.New(rand.NewSource(3)))

	p.SetAge(8)
	first := drawToRecorder(p, 8, 300, 300)
	p.SetAge(8)
	p.SetAge(8)
	second := drawToRecorder(p, 8, 300, 300)

	if !reflect.DeepEqual(first.Ops, second.Ops) {
		t.Error("重复 SetAge 后绘制结果发生了变化")
	}
}

// TestAgeZeroNoNaN 测试年龄为 0 时所有品种绘制都不产生 NaN 坐标
// 花类在 y=0 时会触发除零保护分支
func TestAgeZeroNoNaN(t *testing.T) {
	kinds := []Kind{
		KindTree, KindGreenTree, KindDoubleGreenTree,
		KindOrangeTree, KindFlower, KindCircularFlower,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			p, err := New(kind, rand.New(rand.NewSource(11)))
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			rec := drawToRecorder(p, 0, 300, 300)
			for _, op := range rec.Ops {
				for _, pt := range op.Points {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
						t.Fatalf("%s 指令包含 NaN 坐标", op.Kind)
					}
				}
				if math.IsNaN(op.Center.X) || math.IsNaN(op.Center.Y) ||
					math.IsNaN(op.RX) || math.IsNaN(op.RY) {
					t.Fatalf("%s 椭圆参数包含 NaN", op.Kind)
				}
			}
		})
	}
}

// TestGreenTreeAgeZero 场景：GreenTree 年龄 0 画到 300x300
// 期望主干和树冠三角形都接近零尺寸，但不报错
func TestGreenTreeAgeZero(t *testing.T) {
	p, err := New(KindGreenTree, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	rec := drawToRecorder(p, 0, 300, 300)

	polygons := rec.OpsOfKind(canvas.OpFillPolygon)
	if len(polygons) == 0 {
		t.Fatal("没有画出任何三角形")
	}

	// 年龄 0 时生长系数为 0，所有顶点应收缩在底部中心 (150, 300) 附近
	for _, op := range polygons {
		for _, pt := range op.Points {
			if math.Abs(pt.X-150) > 1 || math.Abs(pt.Y-300) > 1 {
				t.Errorf("年龄 0 的顶点 (%v, %v) 偏离底部中心", pt.X, pt.Y)
			}
		}
	}
}

// TestDrawSaveRestoreBalanced 测试绘制前后变换栈平衡
func TestDrawSaveRestoreBalanced(t *testing.T) {
	for _, kind := range DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			p, _ := New(kind, rand.New(rand.NewSource(21)))
			rec := drawToRecorder(p, 20, 300, 300)

			saves := rec.CountKind(canvas.OpSave)
			restores := rec.CountKind(canvas.OpRestore)
			if saves != restores {
				t.Errorf("Save(%d) 和 Restore(%d) 不配对", saves, restores)
			}
		})
	}
}

// TestNonSquareCanvasNotStretched 测试非正方形画布按短边渲染，植物不被拉伸
func TestNonSquareCanvasNotStretched(t *testing.T) {
	rec1 := canvas.NewRecorder()
	rec2 := canvas.NewRecorder()

	p, _ := New(KindGreenTree, rand.New(rand.NewSource(13)))
	p.SetAge(30)

	Draw(p, rec1, 300, 300)
	Draw(p, rec2, 500, 300) // 更宽的画布，短边一致

	ops1 := rec1.OpsOfKind(canvas.OpFillPolygon)
	ops2 := rec2.OpsOfKind(canvas.OpFillPolygon)
	if len(ops1) != len(ops2) {
		t.Fatalf("图形数量不一致: %d vs %d", len(ops1), len(ops2))
	}

	// 宽画布上的图形只是整体右移 (500-300)/2 = 100，形状不变
	for i := range ops1 {
		for j := range ops1[i].Points {
			want := ops1[i].Points[j]
			got := ops2[i].Points[j]
			if math.Abs(got.X-(want.X+100)) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
				t.Fatalf("顶点 %d/%d 被拉伸: (%v,%v) vs (%v,%v)",
					i, j, want.X, want.Y, got.X, got.Y)
			}
		}
	}
}
