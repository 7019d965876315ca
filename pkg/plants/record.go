package plants

import "fmt"

// RecordVersion 当前记录格式版本
const RecordVersion = 1

// Record 植物的全部结构参数，按品种打标签的显式记录
//
// 替代"序列化活对象"的做法：历史文件里存的是这份纯数据，
// 反序列化后用 FromRecord 重建出参数完全一致的植物实例，
// 在任意年龄重绘都与原来那株一模一样。
type Record struct {
	Version int     `yaml:"version"`
	Kind    Kind    `yaml:"kind"`
	Deficit float64 `yaml:"deficit"`

	// 树类参数
	Branches     []Branch      `yaml:"branches,omitempty"`
	FruitCircles []FruitCircle `yaml:"fruitCircles,omitempty"`

	// 花类参数
	XLean       float64    `yaml:"xLean,omitempty"`
	StemWidth   float64    `yaml:"stemWidth,omitempty"`
	Leaves      []Leaf     `yaml:"leaves,omitempty"`
	PetalColor  int        `yaml:"petalColor,omitempty"`
	PetalCount  int        `yaml:"petalCount,omitempty"`
	CenterRatio float64    `yaml:"centerRatio,omitempty"`
	PetalShape  PetalShape `yaml:"petalShape,omitempty"`
}

// FromRecord 从记录重建植物实例
//
// 只校验结构完整性（品种、必需参数组是否存在），
// 数值范围默认可信：记录由本包自己导出。
func FromRecord(r *Record) (Plant, error) {
	if r == nil {
		return nil, fmt.Errorf("plant record is nil")
	}

	switch r.Kind {
	case KindTree:
		t, err := treeFromRecord(r)
		if err != nil {
			return nil, err
		}
		return t, nil

	case KindGreenTree:
		t, err := treeFromRecord(r)
		if err != nil {
			return nil, err
		}
		return &GreenTree{Tree: *t}, nil

	case KindDoubleGreenTree:
		t, err := treeFromRecord(r)
		if err != nil {
			return nil, err
		}
		return &DoubleGreenTree{GreenTree: GreenTree{Tree: *t}}, nil

	case KindOrangeTree:
		t, err := treeFromRecord(r)
		if err != nil {
			return nil, err
		}
		if len(r.FruitCircles) != len(r.Branches)+1 {
			return nil, fmt.Errorf("orange tree record has %d fruit circles for %d branches",
				len(r.FruitCircles), len(r.Branches))
		}
		return &OrangeTree{
			Tree:    *t,
			circles: append([]FruitCircle(nil), r.FruitCircles...),
		}, nil

	case KindFlower:
		return flowerFromRecord(r)

	case KindCircularFlower:
		f, err := flowerFromRecord(r)
		if err != nil {
			return nil, err
		}
		if r.PetalColor < 0 || r.PetalColor >= len(petalPalette) {
			return nil, fmt.Errorf("petal color index %d out of range", r.PetalColor)
		}
		if r.PetalCount <= 0 {
			return nil, fmt.Errorf("invalid petal count %d", r.PetalCount)
		}
		switch r.PetalShape {
		case PetalCircle, PetalTriangle, PetalDip, PetalRound:
		default:
			return nil, fmt.Errorf("unknown petal shape %q", r.PetalShape)
		}
		return &CircularFlower{
			Flower:      *f,
			colorIndex:  r.PetalColor,
			petalCount:  r.PetalCount,
			centerRatio: r.CenterRatio,
			shape:       r.PetalShape,
		}, nil
	}

	return nil, fmt.Errorf("unknown plant kind in record: %q", r.Kind)
}

func treeFromRecord(r *Record) (*Tree, error) {
	if len(r.Branches) == 0 {
		return nil, fmt.Errorf("tree record has no branches")
	}
	return &Tree{
		base:     base{deficit: r.Deficit},
		branches: append([]Branch(nil), r.Branches...),
	}, nil
}

func flowerFromRecord(r *Record) (*Flower, error) {
	if len(r.Leaves) == 0 {
		return nil, fmt.Errorf("flower record has no leaves")
	}
	f := &Flower{
		base:      base{deficit: r.Deficit},
		xLean:     r.XLean,
		stemWidth: r.StemWidth,
		leaves:    append([]Leaf(nil), r.Leaves...),
	}
	return f, nil
}
