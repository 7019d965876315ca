package canvas

import "math"

// 路径段类型
type segmentKind int

const (
	segmentLine segmentKind = iota
	segmentQuad
	segmentCubic
)

// segment 一段路径：直线、二次或三次贝塞尔曲线
// 起点由前一段的终点（或路径起点）决定
type segment struct {
	kind       segmentKind
	c1, c2, to Point // 控制点与终点；直线只用 to，二次曲线用 c1+to
}

// Path 矢量路径
//
// 与 Qt 的 QPainterPath 一致：新路径的当前点是 (0, 0)，
// 第一段曲线从原点出发。花茎和叶片都依赖这一约定。
type Path struct {
	start    Point
	segments []segment
}

// MoveTo 设置路径起点（必须在添加任何段之前调用）
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{X: x, Y: y}
}

// LineTo 添加到 (x, y) 的直线段
func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, segment{kind: segmentLine, to: Point{X: x, Y: y}})
}

// QuadTo 添加二次贝塞尔曲线段，控制点 (cx, cy)，终点 (x, y)
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segments = append(p.segments, segment{
		kind: segmentQuad,
		c1:   Point{X: cx, Y: cy},
		to:   Point{X: x, Y: y},
	})
}

// CubicTo 添加三次贝塞尔曲线段
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segments = append(p.segments, segment{
		kind: segmentCubic,
		c1:   Point{X: c1x, Y: c1y},
		c2:   Point{X: c2x, Y: c2y},
		to:   Point{X: x, Y: y},
	})
}

// transformed 返回所有控制点经矩阵变换后的新路径
// 仿射变换把贝塞尔控制点映射为新曲线的控制点，结果是精确的
func (p *Path) transformed(m affine) *Path {
	out := &Path{start: m.apply(p.start), segments: make([]segment, len(p.segments))}
	for i, s := range p.segments {
		out.segments[i] = segment{
			kind: s.kind,
			c1:   m.apply(s.c1),
			c2:   m.apply(s.c2),
			to:   m.apply(s.to),
		}
	}
	return out
}

// 每段曲线弧长采样的细分数
const flattenSteps = 32

// PointAtPercent 返回路径上弧长占比为 t ∈ [0, 1] 处的点
//
// 叶片锚点需要沿花茎曲线均匀取点，所以按弧长而不是按参数取值
// （与 QPainterPath.pointAtPercent 的语义一致）。
func (p *Path) PointAtPercent(t float64) Point {
	if t <= 0 {
		return p.start
	}
	if len(p.segments) == 0 {
		return p.start
	}

	// 把路径打平成折线，累积各顶点的弧长
	points := p.flatten()
	total := 0.0
	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		total += distance(points[i-1], points[i])
		lengths[i] = total
	}

	if t >= 1 || total == 0 {
		return points[len(points)-1]
	}

	target := t * total
	for i := 1; i < len(points); i++ {
		if lengths[i] >= target {
			segLen := lengths[i] - lengths[i-1]
			if segLen == 0 {
				return points[i]
			}
			f := (target - lengths[i-1]) / segLen
			return Point{
				X: points[i-1].X + (points[i].X-points[i-1].X)*f,
				Y: points[i-1].Y + (points[i].Y-points[i-1].Y)*f,
			}
		}
	}
	return points[len(points)-1]
}

// flatten 把路径采样为折线顶点序列
func (p *Path) flatten() []Point {
	points := []Point{p.start}
	from := p.start
	for _, s := range p.segments {
		switch s.kind {
		case segmentLine:
			points = append(points, s.to)
		case segmentQuad:
			for i := 1; i <= flattenSteps; i++ {
				points = append(points, quadPoint(from, s.c1, s.to, float64(i)/flattenSteps))
			}
		case segmentCubic:
			for i := 1; i <= flattenSteps; i++ {
				points = append(points, cubicPoint(from, s.c1, s.c2, s.to, float64(i)/flattenSteps))
			}
		}
		from = s.to
	}
	return points
}

// quadPoint 二次贝塞尔曲线在参数 t 处的点
func quadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicPoint 三次贝塞尔曲线在参数 t 处的点
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
