package clock

import (
	"image/color"
	"math"
	"time"

	"AnalogClock/internal/models"
)

const fullTurn = 2 * math.Pi

// 默认表盘几何参数
const (
	CenterX          = 200
	CenterY          = 200
	FaceRadius       = 150
	HourHandLength   = 60
	MinuteHandLength = 90
	SecondHandLength = 100
)

var (
	hourColor   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	minuteColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	secondColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// DefaultFace 返回 400x450 画布使用的表盘
func DefaultFace() models.ClockFace {
	return models.ClockFace{
		Center: models.Point{X: CenterX, Y: CenterY},
		Radius: FaceRadius,
	}
}

// Angles 三根指针的角度，单位弧度，范围 [0, 2π)
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles 根据本地时间计算指针角度。
// 角度采用屏幕坐标系（0 为 3 点钟方向，y 轴向下所以顺时针递增），
// 减去 π/2 把零点移到 12 点钟方向。
func HandAngles(t time.Time) Angles {
	hour, minute, second := t.Clock()

	secondAngle := float64(second)/60*fullTurn - math.Pi/2
	minuteAngle := float64(minute)/60*fullTurn - math.Pi/2
	hourAngle := float64(hour%12)/12*fullTurn - math.Pi/2 +
		float64(minute)/60*(math.Pi/6)

	return Angles{
		Hour:   Normalize(hourAngle),
		Minute: Normalize(minuteAngle),
		Second: Normalize(secondAngle),
	}
}

// Normalize 把角度折算到 [0, 2π)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}

// Tip 返回从表盘中心出发、长度为 length 的线段终点
func Tip(face models.ClockFace, length, angle float64) models.Point {
	return models.Point{
		X: face.Center.X + length*math.Cos(angle),
		Y: face.Center.Y + length*math.Sin(angle),
	}
}

// LabelPosition 返回第 i 个小时刻度（1..12）在表盘圆周上的位置
func LabelPosition(face models.ClockFace, i int) models.Point {
	clockwise := float64(i) * math.Pi / 6
	return models.Point{
		X: face.Center.X + face.Radius*math.Sin(clockwise),
		Y: face.Center.Y - face.Radius*math.Cos(clockwise),
	}
}

// Hands 按绘制顺序（秒针、分针、时针）返回三根指针
func Hands(t time.Time) []models.Hand {
	a := HandAngles(t)
	return []models.Hand{
		{Kind: models.HandSecond, Angle: a.Second, Length: SecondHandLength, Color: secondColor},
		{Kind: models.HandMinute, Angle: a.Minute, Length: MinuteHandLength, Color: minuteColor},
		{Kind: models.HandHour, Angle: a.Hour, Length: HourHandLength, Color: hourColor},
	}
}
