package clock

import (
	"fmt"
	"time"
)

const digitalLayout = "03:04:05 PM"

// DigitalTime 12 小时制数字时间，例如 "01:05:09 PM"
func DigitalTime(t time.Time) string {
	return t.Format(digitalLayout)
}

// FormatElapsed 把秒表时长格式化为 HH:MM:SS，小时数不按 24 取模
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	// 超过 24 小时继续累加（25:00:00），不回绕到 00
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
