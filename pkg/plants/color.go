package plants

import "image/color"

// 植物固定配色（与应用 logo 同源）
var (
	colorGreen  = color.RGBA{R: 0, G: 119, B: 0, A: 255}
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBrown  = color.RGBA{R: 77, G: 51, B: 0, A: 255}
	colorOrange = color.RGBA{R: 243, G: 148, B: 30, A: 255}
)

// petalPalette 花瓣可选的五种颜色
var petalPalette = []color.RGBA{
	{R: 139, G: 139, B: 255, A: 255}, // 蓝
	{R: 72, G: 178, B: 173, A: 255},  // 青绿
	{R: 255, G: 85, B: 85, A: 255},   // 红
	{R: 238, G: 168, B: 43, A: 255},  // 橙黄
	{R: 226, G: 104, B: 155, A: 255}, // 粉
}
