package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 像素字体
// 5×7 点阵，每个字形用 7 行字符串描述，'#' 为实心像素。
// 用矢量矩形逐像素绘制，不依赖外部字体文件。

const (
	glyphCols = 5 // 字形宽度（像素）
	glyphRows = 7 // 字形高度（像素）
	glyphGap  = 1 // 字符间距（像素）
)

// 文本对齐方式
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

var pixelGlyphs = map[rune][glyphRows]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".####", "#....", "#....", "#....", "#....", "#....", ".####"},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".####", "#....", "#....", "#.###", "#...#", "#...#", ".###."},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
	'0': {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'2': {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	'3': {".###.", "#...#", "....#", "..##.", "....#", "#...#", ".###."},
	'4': {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	'6': {".###.", "#....", "#....", "####.", "#...#", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	'8': {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9': {".###.", "#...#", "#...#", ".####", "....#", "....#", ".###."},
	':': {".....", "..#..", "..#..", ".....", "..#..", "..#..", "....."},
	'-': {".....", ".....", ".....", "#####", ".....", ".....", "....."},
	'+': {".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."},
	'.': {".....", ".....", ".....", ".....", ".....", ".....", "..#.."},
	',': {".....", ".....", ".....", ".....", ".....", "..#..", ".#..."},
	'/': {"....#", "...#.", "...#.", "..#..", ".#...", ".#...", "#...."},
	'!': {"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."},
	'%': {"##..#", "##..#", "...#.", "..#..", ".#...", "#..##", "#..##"},
	'(': {"...#.", "..#..", ".#...", ".#...", ".#...", "..#..", "...#."},
	')': {".#...", "..#..", "...#.", "...#.", "...#.", "..#..", ".#..."},
}

// MeasurePixelText 计算文本的像素宽度
//
// 参数：
//   - text: 文本内容（支持的字符见 pixelGlyphs，空格占一个字宽）
//   - scale: 每个点阵像素的边长
func MeasurePixelText(text string, scale float64) float64 {
	count := 0
	for range text {
		count++
	}
	if count == 0 {
		return 0
	}
	return (float64(count*(glyphCols+glyphGap)) - glyphGap) * scale
}

// PixelTextHeight 文本行高
func PixelTextHeight(scale float64) float64 {
	return glyphRows * scale
}

// DrawPixelText 用点阵字体绘制一行文本
//
// 参数：
//   - dst: 绘制目标
//   - text: 文本内容，未知字符按空格处理
//   - x, y: 文本位置（左上角；居中/右对齐时为锚点）
//   - scale: 每个点阵像素的边长
//   - clr: 文本颜色
//   - align: 对齐方式（AlignLeft / AlignCenter / AlignRight）
func DrawPixelText(dst *ebiten.Image, text string, x, y, scale float64, clr color.Color, align string) {
	switch align {
	case AlignCenter:
		x -= MeasurePixelText(text, scale) / 2
	case AlignRight:
		x -= MeasurePixelText(text, scale)
	}

	advance := float64(glyphCols+glyphGap) * scale
	for _, char := range text {
		glyph, ok := pixelGlyphs[char]
		if ok {
			for row := 0; row < glyphRows; row++ {
				for col := 0; col < glyphCols; col++ {
					if glyph[row][col] != '#' {
						continue
					}
					vector.DrawFilledRect(dst,
						float32(x+float64(col)*scale), float32(y+float64(row)*scale),
						float32(scale), float32(scale), clr, false)
				}
			}
		}
		x += advance
	}
}
