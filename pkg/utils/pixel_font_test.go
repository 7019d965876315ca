package utils

import "testing"

// TestMeasurePixelText 测试文本宽度计算
func TestMeasurePixelText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		scale float64
		want  float64
	}{
		{"空文本", "", 2, 0},
		{"单字符", "A", 1, 5},
		{"两字符", "AB", 1, 11}, // 5 + 1 + 5
		{"缩放", "A", 3, 15},
		{"计时器文本", "25:00", 1, 29}, // 5*5 + 4*1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeasurePixelText(tt.text, tt.scale); got != tt.want {
				t.Errorf("MeasurePixelText(%q, %v) = %v, 期望 %v", tt.text, tt.scale, got, tt.want)
			}
		})
	}
}

// TestPixelGlyphsWellFormed 测试所有字形都是 5×7 且只含合法字符
func TestPixelGlyphsWellFormed(t *testing.T) {
	for char, glyph := range pixelGlyphs {
		for row, line := range glyph {
			if len(line) != glyphCols {
				t.Errorf("字形 %q 第 %d 行宽度 = %d, 期望 %d", char, row, len(line), glyphCols)
			}
			for _, c := range line {
				if c != '#' && c != '.' {
					t.Errorf("字形 %q 包含非法字符 %q", char, c)
				}
			}
		}
	}
}

// TestPixelGlyphsCoverUI 测试界面用到的全部字符都有字形
func TestPixelGlyphsCoverUI(t *testing.T) {
	needed := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789:-+.,/!%()"
	for _, char := range needed {
		if _, ok := pixelGlyphs[char]; !ok {
			t.Errorf("缺少字形: %q", char)
		}
	}
}

// TestPixelTextHeight 测试行高
func TestPixelTextHeight(t *testing.T) {
	if got := PixelTextHeight(2); got != 14 {
		t.Errorf("PixelTextHeight(2) = %v, 期望 14", got)
	}
}
