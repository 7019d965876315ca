package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawTriangles 的纯白源图（ebiten 矢量绘制的标准做法：
// 用 3x3 白图中间的 1x1 子图避免边缘采样问题）
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface 把 Surface 绘图指令栅格化到 ebiten.Image
//
// 变换在 CPU 侧应用到几何控制点上，再交给 ebiten/vector 打三角形。
// 这样同一份植物几何代码可以无修改地输出到屏幕或 SVG。
type EbitenSurface struct {
	transformState
	dst *ebiten.Image
}

// NewEbitenSurface 创建渲染到 dst 的绘图表面
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		transformState: newTransformState(),
		dst:            dst,
	}
}

// Reset 复位变换栈，复用同一个 surface 绘制下一帧
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.current = identity()
	s.stack = s.stack[:0]
}

// FillPolygon 实现 Surface 接口
func (s *EbitenSurface) FillPolygon(points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var vp vector.Path
	p0 := s.current.apply(points[0])
	vp.MoveTo(float32(p0.X), float32(p0.Y))
	for _, p := range points[1:] {
		tp := s.current.apply(p)
		vp.LineTo(float32(tp.X), float32(tp.Y))
	}
	vp.Close()
	s.fill(&vp, clr)
}

// FillEllipse 实现 Surface 接口
// 椭圆用四段三次贝塞尔曲线逼近（kappa 常数法）
func (s *EbitenSurface) FillEllipse(center Point, rx, ry float64, clr color.Color) {
	const kappa = 0.5522847498307936

	c := s.current.apply(center)
	sx, sy := s.current.scaleMagnitudes()
	rx *= sx
	ry *= sy

	ox := rx * kappa
	oy := ry * kappa

	var vp vector.Path
	vp.MoveTo(float32(c.X+rx), float32(c.Y))
	vp.CubicTo(float32(c.X+rx), float32(c.Y+oy), float32(c.X+ox), float32(c.Y+ry), float32(c.X), float32(c.Y+ry))
	vp.CubicTo(float32(c.X-ox), float32(c.Y+ry), float32(c.X-rx), float32(c.Y+oy), float32(c.X-rx), float32(c.Y))
	vp.CubicTo(float32(c.X-rx), float32(c.Y-oy), float32(c.X-ox), float32(c.Y-ry), float32(c.X), float32(c.Y-ry))
	vp.CubicTo(float32(c.X+ox), float32(c.Y-ry), float32(c.X+rx), float32(c.Y-oy), float32(c.X+rx), float32(c.Y))
	vp.Close()
	s.fill(&vp, clr)
}

// FillPath 实现 Surface 接口
func (s *EbitenSurface) FillPath(path *Path, clr color.Color) {
	vp := s.vectorPath(path)
	s.fill(vp, clr)
}

// StrokePath 实现 Surface 接口
func (s *EbitenSurface) StrokePath(path *Path, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	sx, _ := s.current.scaleMagnitudes()
	vp := s.vectorPath(path)

	op := &vector.StrokeOptions{}
	op.Width = float32(width * sx)
	op.LineCap = vector.LineCapRound
	op.LineJoin = vector.LineJoinRound

	vs, is := vp.AppendVerticesAndIndicesForStroke(nil, nil, op)
	s.drawTriangles(vs, is, clr)
}

// vectorPath 把变换后的 Path 转成 ebiten 的 vector.Path
func (s *EbitenSurface) vectorPath(path *Path) *vector.Path {
	tp := path.transformed(s.current)
	var vp vector.Path
	vp.MoveTo(float32(tp.start.X), float32(tp.start.Y))
	for _, seg := range tp.segments {
		switch seg.kind {
		case segmentLine:
			vp.LineTo(float32(seg.to.X), float32(seg.to.Y))
		case segmentQuad:
			vp.QuadTo(float32(seg.c1.X), float32(seg.c1.Y), float32(seg.to.X), float32(seg.to.Y))
		case segmentCubic:
			vp.CubicTo(float32(seg.c1.X), float32(seg.c1.Y), float32(seg.c2.X), float32(seg.c2.Y),
				float32(seg.to.X), float32(seg.to.Y))
		}
	}
	return &vp
}

func (s *EbitenSurface) fill(vp *vector.Path, clr color.Color) {
	vs, is := vp.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, clr)
}

func (s *EbitenSurface) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}
