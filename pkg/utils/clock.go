package utils

import (
	"fmt"
	"math"
)

// FormatClock 把剩余秒数格式化为计时器文本
//
// 显示规则（平滑计时器，没有的高位不显示）：
//   - 不足一分钟: "42"
//   - 不足一小时: "25:00"
//   - 一小时以上: "1:05:00"
//
// 负数（overstudy 越线后）带 "-" 前缀。
func FormatClock(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total / 60) % 60
	secs := total % 60

	if hours == 0 {
		if minutes == 0 {
			return fmt.Sprintf("%s%d", sign, secs)
		}
		return fmt.Sprintf("%s%d:%02d", sign, minutes, secs)
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, hours, minutes, secs)
}
