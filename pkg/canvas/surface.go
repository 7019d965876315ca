// Package canvas 提供植物渲染所需的最小矢量绘图抽象
//
// 核心几何代码只依赖 Surface 接口，不关心最终输出目标。
// 当前有三种实现：
//   - EbitenSurface: 实时渲染到 ebiten.Image（游戏画面）
//   - SVGSurface: 导出为 SVG 矢量图文件
//   - Recorder: 记录绘图指令，用于测试和无头环境检查
package canvas

import (
	"image/color"
	"math"
)

// Point 二维坐标点
type Point struct {
	X float64
	Y float64
}

// Surface 矢量绘图表面
//
// 这是植物几何代码对任何渲染后端的最小能力要求：
// 填充多边形/椭圆/路径、描边路径、仿射变换栈。
//
// 坐标变换（Translate/Rotate/Scale）作用于其后的所有绘制调用，
// 必须用 Save/Restore 包裹局部变换，避免影响同级图形。
type Surface interface {
	// FillPolygon 按顶点顺序填充多边形
	FillPolygon(points []Point, clr color.Color)

	// FillEllipse 以 center 为中心填充椭圆，rx/ry 为两轴半径
	FillEllipse(center Point, rx, ry float64, clr color.Color)

	// FillPath 填充闭合路径（非零环绕规则）
	FillPath(path *Path, clr color.Color)

	// StrokePath 以指定线宽描边路径
	StrokePath(path *Path, width float64, clr color.Color)

	// Save 压入当前变换状态
	Save()
	// Restore 弹出最近一次 Save 的变换状态
	Restore()

	// Translate 平移坐标系
	Translate(dx, dy float64)
	// Rotate 旋转坐标系（角度制，正方向为坐标系的 x 轴转向 y 轴）
	Rotate(degrees float64)
	// Scale 缩放坐标系
	Scale(sx, sy float64)
}

// affine 2x3 仿射变换矩阵
//
// 点变换规则（与 SVG 的 matrix(a b c d e f) 一致）：
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type affine struct {
	a, b, c, d, e, f float64
}

// identity 返回单位矩阵
func identity() affine {
	return affine{a: 1, d: 1}
}

// apply 将矩阵应用于点
func (m affine) apply(p Point) Point {
	return Point{
		X: m.a*p.X + m.c*p.Y + m.e,
		Y: m.b*p.X + m.d*p.Y + m.f,
	}
}

// concat 返回 m·n：先应用 n，再应用 m
// 用于在当前矩阵之后叠加新的局部变换
func (m affine) concat(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

// scaleMagnitudes 返回矩阵对两个坐标轴的缩放幅度
// 用于变换椭圆半径和描边线宽（本项目的变换只含平移、旋转和 ±1 翻转）
func (m affine) scaleMagnitudes() (float64, float64) {
	return math.Hypot(m.a, m.b), math.Hypot(m.c, m.d)
}

// transformState 仿射变换栈，供各 Surface 实现嵌入复用
type transformState struct {
	current affine
	stack   []affine
}

func newTransformState() transformState {
	return transformState{current: identity()}
}

// Save 压栈当前矩阵
func (t *transformState) Save() {
	t.stack = append(t.stack, t.current)
}

// Restore 弹栈；栈为空时保持单位矩阵（与 Qt painter 行为一致，不报错）
func (t *transformState) Restore() {
	if len(t.stack) == 0 {
		t.current = identity()
		return
	}
	t.current = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate 叠加平移变换
func (t *transformState) Translate(dx, dy float64) {
	t.current = t.current.concat(affine{a: 1, d: 1, e: dx, f: dy})
}

// Rotate 叠加旋转变换（角度制）
func (t *transformState) Rotate(degrees float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	t.current = t.current.concat(affine{a: cos, b: sin, c: -sin, d: cos})
}

// Scale 叠加缩放变换
func (t *transformState) Scale(sx, sy float64) {
	t.current = t.current.concat(affine{a: sx, d: sy})
}
