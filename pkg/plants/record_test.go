package plants

import (
	"math/rand"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestRecordRoundTrip 测试记录经 YAML 序列化往返后重建的植物与原株绘制一致
func TestRecordRoundTrip(t *testing.T) {
	for _, kind := range DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			original, err := New(kind, rand.New(rand.NewSource(31)))
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			data, err := yaml.Marshal(original.Record())
			if err != nil {
				t.Fatalf("yaml.Marshal() error: %v", err)
			}

			var decoded Record
			if err := yaml.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("yaml.Unmarshal() error: %v", err)
			}

			rebuilt, err := FromRecord(&decoded)
			if err != nil {
				t.Fatalf("FromRecord() error: %v", err)
			}

			if rebuilt.Kind() != original.Kind() {
				t.Errorf("品种 = %q, 期望 %q", rebuilt.Kind(), original.Kind())
			}
			if !reflect.DeepEqual(rebuilt.Record(), original.Record()) {
				t.Error("重建后的结构参数与原株不一致")
			}

			// 同一年龄下两株必须画出完全相同的指令序列
			first := drawToRecorder(original, 18, 300, 300)
			second := drawToRecorder(rebuilt, 18, 300, 300)
			if !reflect.DeepEqual(first.Ops, second.Ops) {
				t.Error("重建后的植物绘制结果与原株不一致")
			}
		})
	}
}

// TestFromRecordValidation 测试损坏记录的校验
func TestFromRecordValidation(t *testing.T) {
	tests := []struct {
		name   string
		record *Record
	}{
		{"空记录", nil},
		{"未知品种", &Record{Kind: "cactus", Deficit: 0.95}},
		{"无侧枝的树", &Record{Kind: KindGreenTree, Deficit: 0.95}},
		{"果实圆数量不匹配", &Record{
			Kind:         KindOrangeTree,
			Deficit:      0.95,
			Branches:     []Branch{{Height: 0.5, Rotation: 1}},
			FruitCircles: []FruitCircle{{Size: 0.3, Position: 0.95}},
		}},
		{"无叶的花", &Record{Kind: KindCircularFlower, Deficit: 0.95}},
		{"花瓣颜色越界", &Record{
			Kind:        KindCircularFlower,
			Deficit:     0.95,
			XLean:       0.5,
			StemWidth:   3.6,
			Leaves:      []Leaf{{Position: 0.3, Size: 1, Side: 1}},
			PetalColor:  9,
			PetalCount:  5,
			CenterRatio: 0.8,
			PetalShape:  PetalCircle,
		}},
		{"未知花瓣形状", &Record{
			Kind:        KindCircularFlower,
			Deficit:     0.95,
			XLean:       0.5,
			StemWidth:   3.6,
			Leaves:      []Leaf{{Position: 0.3, Size: 1, Side: 1}},
			PetalColor:  1,
			PetalCount:  5,
			CenterRatio: 0.8,
			PetalShape:  "star",
		}},
		{"花瓣数为零", &Record{
			Kind:        KindCircularFlower,
			Deficit:     0.95,
			XLean:       0.5,
			StemWidth:   3.6,
			Leaves:      []Leaf{{Position: 0.3, Size: 1, Side: 1}},
			PetalColor:  1,
			PetalCount:  0,
			CenterRatio: 0.8,
			PetalShape:  PetalCircle,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRecord(tt.record); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

// TestRecordVersionTagged 测试导出记录带版本号和品种标签
func TestRecordVersionTagged(t *testing.T) {
	p, _ := New(KindCircularFlower, rand.New(rand.NewSource(4)))
	r := p.Record()

	if r.Version != RecordVersion {
		t.Errorf("Version = %d, 期望 %d", r.Version, RecordVersion)
	}
	if r.Kind != KindCircularFlower {
		t.Errorf("Kind = %q, 期望 %q", r.Kind, KindCircularFlower)
	}
	if r.Deficit < 0.9 || r.Deficit > 1 {
		t.Errorf("Deficit = %v, 超出 [0.9, 1]", r.Deficit)
	}
}
