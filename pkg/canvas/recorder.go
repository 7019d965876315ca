package canvas

import "image/color"

// OpKind 记录的指令类型
type OpKind string

const (
	OpFillPolygon OpKind = "fillPolygon"
	OpFillEllipse OpKind = "fillEllipse"
	OpFillPath    OpKind = "fillPath"
	OpStrokePath  OpKind = "strokePath"
	OpSave        OpKind = "save"
	OpRestore     OpKind = "restore"
	OpTranslate   OpKind = "translate"
	OpRotate      OpKind = "rotate"
	OpScale       OpKind = "scale"
)

// Op 一条被记录的绘图指令
//
// 绘制类指令的几何字段已经换算到设备坐标（当前矩阵应用之后），
// 变换类指令保留原始参数，方便测试断言旋转步长等不变量。
type Op struct {
	Kind   OpKind
	Points []Point     // fillPolygon: 变换后的顶点
	Center Point       // fillEllipse: 变换后的圆心
	RX, RY float64     // fillEllipse: 变换后的半径
	Path   *Path       // fillPath/strokePath: 变换后的路径
	Width  float64     // strokePath: 变换后的线宽
	Color  color.Color // 绘制颜色
	DX, DY float64     // translate 参数
	Angle  float64     // rotate 参数（角度）
	SX, SY float64     // scale 参数
}

// Recorder 记录所有 Surface 调用，用于测试和无头环境下检查几何
type Recorder struct {
	transformState
	Ops []Op
}

// NewRecorder 创建空的指令记录器
func NewRecorder() *Recorder {
	return &Recorder{transformState: newTransformState()}
}

// FillPolygon 实现 Surface 接口
func (r *Recorder) FillPolygon(points []Point, clr color.Color) {
	transformed := make([]Point, len(points))
	for i, p := range points {
		transformed[i] = r.current.apply(p)
	}
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: transformed, Color: clr})
}

// FillEllipse 实现 Surface 接口
func (r *Recorder) FillEllipse(center Point, rx, ry float64, clr color.Color) {
	sx, sy := r.current.scaleMagnitudes()
	r.Ops = append(r.Ops, Op{
		Kind:   OpFillEllipse,
		Center: r.current.apply(center),
		RX:     rx * sx,
		RY:     ry * sy,
		Color:  clr,
	})
}

// FillPath 实现 Surface 接口
func (r *Recorder) FillPath(path *Path, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Path: path.transformed(r.current), Color: clr})
}

// StrokePath 实现 Surface 接口
func (r *Recorder) StrokePath(path *Path, width float64, clr color.Color) {
	sx, _ := r.current.scaleMagnitudes()
	r.Ops = append(r.Ops, Op{
		Kind:  OpStrokePath,
		Path:  path.transformed(r.current),
		Width: width * sx,
		Color: clr,
	})
}

// Save 实现 Surface 接口
func (r *Recorder) Save() {
	r.transformState.Save()
	r.Ops = append(r.Ops, Op{Kind: OpSave})
}

// Restore 实现 Surface 接口
func (r *Recorder) Restore() {
	r.transformState.Restore()
	r.Ops = append(r.Ops, Op{Kind: OpRestore})
}

// Translate 实现 Surface 接口
func (r *Recorder) Translate(dx, dy float64) {
	r.transformState.Translate(dx, dy)
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, DX: dx, DY: dy})
}

// Rotate 实现 Surface 接口
func (r *Recorder) Rotate(degrees float64) {
	r.transformState.Rotate(degrees)
	r.Ops = append(r.Ops, Op{Kind: OpRotate, Angle: degrees})
}

// Scale 实现 Surface 接口
func (r *Recorder) Scale(sx, sy float64) {
	r.transformState.Scale(sx, sy)
	r.Ops = append(r.Ops, Op{Kind: OpScale, SX: sx, SY: sy})
}

// CountKind 返回指定类型指令的数量
func (r *Recorder) CountKind(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// OpsOfKind 返回指定类型的所有指令
func (r *Recorder) OpsOfKind(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
