package utils

import "testing"

// TestFormatClock 测试计时器文本的平滑显示规则
func TestFormatClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"只剩秒数", 42, "42"},
		{"零", 0, "0"},
		{"整分钟", 1500.99, "25:00"},
		{"分钟带秒", 61, "1:01"},
		{"补零秒", 65.4, "1:05"},
		{"一小时以上", 3900, "1:05:00"},
		{"小时补零分", 3661, "1:01:01"},
		{"负数越线", -75, "-1:15"},
		{"负数只剩秒", -9.5, "-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%v) = %q, 期望 %q", tt.seconds, got, tt.want)
			}
		})
	}
}
