package canvas

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
)

// SVGSurface 把 Surface 绘图指令序列化为 SVG 文档
//
// 所有几何在写入前就用当前变换矩阵展平成绝对坐标，
// 生成的 SVG 不含 transform 属性，任何查看器都能稳定渲染。
type SVGSurface struct {
	transformState
	width    int
	height   int
	elements []string
}

// NewSVGSurface 创建指定画布尺寸的 SVG 绘图表面
func NewSVGSurface(width, height int) *SVGSurface {
	return &SVGSurface{
		transformState: newTransformState(),
		width:          width,
		height:         height,
	}
}

// FillPolygon 实现 Surface 接口
func (s *SVGSurface) FillPolygon(points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		tp := s.current.apply(p)
		fmt.Fprintf(&b, "%.2f,%.2f", tp.X, tp.Y)
	}
	s.elements = append(s.elements,
		fmt.Sprintf(`<polygon points="%s" fill="%s"%s/>`, b.String(), svgColor(clr), svgOpacity(clr)))
}

// FillEllipse 实现 Surface 接口
func (s *SVGSurface) FillEllipse(center Point, rx, ry float64, clr color.Color) {
	c := s.current.apply(center)
	sx, sy := s.current.scaleMagnitudes()
	s.elements = append(s.elements,
		fmt.Sprintf(`<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s"%s/>`,
			c.X, c.Y, rx*sx, ry*sy, svgColor(clr), svgOpacity(clr)))
}

// FillPath 实现 Surface 接口
func (s *SVGSurface) FillPath(path *Path, clr color.Color) {
	s.elements = append(s.elements,
		fmt.Sprintf(`<path d="%s" fill="%s" fill-rule="nonzero"%s/>`,
			s.pathData(path), svgColor(clr), svgOpacity(clr)))
}

// StrokePath 实现 Surface 接口
func (s *SVGSurface) StrokePath(path *Path, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	sx, _ := s.current.scaleMagnitudes()
	s.elements = append(s.elements,
		fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"%s/>`,
			s.pathData(path), svgColor(clr), width*sx, svgOpacity(clr)))
}

// pathData 生成 SVG path 的 d 属性（绝对坐标）
func (s *SVGSurface) pathData(path *Path) string {
	tp := path.transformed(s.current)
	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", tp.start.X, tp.start.Y)
	for _, seg := range tp.segments {
		switch seg.kind {
		case segmentLine:
			fmt.Fprintf(&b, " L %.2f %.2f", seg.to.X, seg.to.Y)
		case segmentQuad:
			fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", seg.c1.X, seg.c1.Y, seg.to.X, seg.to.Y)
		case segmentCubic:
			fmt.Fprintf(&b, " C %.2f %.2f %.2f %.2f %.2f %.2f",
				seg.c1.X, seg.c1.Y, seg.c2.X, seg.c2.Y, seg.to.X, seg.to.Y)
		}
	}
	return b.String()
}

// WriteTo 把完整 SVG 文档写入 w
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		s.width, s.height, s.width, s.height)
	for _, el := range s.elements {
		b.WriteString("  ")
		b.WriteString(el)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// WriteFile 把 SVG 文档保存到指定文件
func (s *SVGSurface) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}

// ElementCount 返回已写入的图形元素数量
func (s *SVGSurface) ElementCount() int {
	return len(s.elements)
}

// svgColor 转换为 #rrggbb 形式
func svgColor(clr color.Color) string {
	r, g, b, _ := clr.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// svgOpacity 非完全不透明时输出 opacity 属性
func svgOpacity(clr color.Color) string {
	_, _, _, a := clr.RGBA()
	if a == 0xffff {
		return ""
	}
	return fmt.Sprintf(` opacity="%.3f"`, float64(a)/0xffff)
}
