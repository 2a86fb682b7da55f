package ui

import (
	"image/color"
	"strconv"
	"time"

	"AnalogClock/internal/clock"
	"AnalogClock/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// 画布尺寸与文字位置
const (
	CanvasWidth  = 400
	CanvasHeight = 450

	digitalY   = 370
	stopwatchY = 420

	labelTextSize   = 12
	digitalTextSize = 14
	handStroke      = 2
	dialStroke      = 2
)

var (
	backgroundColor = color.White
	inkColor        = color.Black
)

// ClockFace 表盘渲染器，保留所有画布对象并在每次刷新时更新
type ClockFace struct {
	container *fyne.Container
	face      models.ClockFace

	background    *canvas.Rectangle
	dial          *canvas.Circle
	labels        []*canvas.Text
	hands         map[models.HandKind]*canvas.Line
	digitalText   *canvas.Text
	stopwatchText *canvas.Text
}

func NewClockFace(face models.ClockFace) *ClockFace {
	f := &ClockFace{
		face:  face,
		hands: make(map[models.HandKind]*canvas.Line, 3),
	}

	f.background = canvas.NewRectangle(backgroundColor)

	// 表盘圆圈
	f.dial = canvas.NewCircle(color.Transparent)
	f.dial.StrokeColor = inkColor
	f.dial.StrokeWidth = dialStroke

	objects := []fyne.CanvasObject{f.background, f.dial}

	// 1-12 小时刻度
	for i := 1; i <= 12; i++ {
		label := canvas.NewText(strconv.Itoa(i), inkColor)
		label.TextSize = labelTextSize
		label.TextStyle = fyne.TextStyle{Bold: true}
		f.labels = append(f.labels, label)
		objects = append(objects, label)
	}

	// 指针按秒针、分针、时针的顺序叠放
	for _, h := range clock.Hands(time.Time{}) {
		line := canvas.NewLine(h.Color)
		line.StrokeWidth = handStroke
		f.hands[h.Kind] = line
		objects = append(objects, line)
	}

	f.digitalText = canvas.NewText("", inkColor)
	f.digitalText.TextSize = digitalTextSize

	f.stopwatchText = canvas.NewText("", inkColor)
	f.stopwatchText.TextSize = digitalTextSize
	f.stopwatchText.Hide()

	objects = append(objects, f.digitalText, f.stopwatchText)

	size := fyne.NewSize(CanvasWidth, CanvasHeight)
	f.container = container.New(newCanvasLayout(size, f.background), objects...)

	f.drawDial()
	return f
}

func (f *ClockFace) Container() *fyne.Container {
	return f.container
}

// drawDial 绘制静态部分：圆圈和刻度
func (f *ClockFace) drawDial() {
	c, r := f.face.Center, f.face.Radius
	f.dial.Position1 = fyne.NewPos(float32(c.X-r), float32(c.Y-r))
	f.dial.Position2 = fyne.NewPos(float32(c.X+r), float32(c.Y+r))
	f.dial.Refresh()

	for i, label := range f.labels {
		centerText(label, clock.LabelPosition(f.face, i+1))
	}
}

// Render 根据时钟读数和秒表状态重绘表盘；同一读数重复调用结果相同
func (f *ClockFace) Render(now time.Time, sw *clock.Stopwatch) {
	f.drawDial()

	center := fyne.NewPos(float32(f.face.Center.X), float32(f.face.Center.Y))
	for _, h := range clock.Hands(now) {
		tip := clock.Tip(f.face, h.Length, h.Angle)
		line := f.hands[h.Kind]
		line.StrokeColor = h.Color
		line.Position1 = center
		line.Position2 = fyne.NewPos(float32(tip.X), float32(tip.Y))
		line.Refresh()
	}

	f.digitalText.Text = clock.DigitalTime(now)
	centerText(f.digitalText, models.Point{X: f.face.Center.X, Y: digitalY})

	if sw != nil && sw.Visible() {
		f.stopwatchText.Text = "Stopwatch: " + sw.Display()
		centerText(f.stopwatchText, models.Point{X: f.face.Center.X, Y: stopwatchY})
		f.stopwatchText.Show()
	} else {
		f.stopwatchText.Text = ""
		f.stopwatchText.Hide()
	}
}

// centerText 把文字中心放到 p
func centerText(t *canvas.Text, p models.Point) {
	size := t.MinSize()
	t.Resize(size)
	t.Move(fyne.NewPos(float32(p.X)-size.Width/2, float32(p.Y)-size.Height/2))
	t.Refresh()
}
