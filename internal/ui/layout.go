package ui

import (
	"fyne.io/fyne/v2"
)

// canvasLayout 保持固定的绘图区域，子对象使用绝对坐标；
// 只有背景会随容器大小伸展。
type canvasLayout struct {
	size       fyne.Size
	background fyne.CanvasObject
}

func newCanvasLayout(size fyne.Size, background fyne.CanvasObject) *canvasLayout {
	return &canvasLayout{
		size:       size,
		background: background,
	}
}

func (l *canvasLayout) Layout(_ []fyne.CanvasObject, containerSize fyne.Size) {
	if l.background == nil {
		return
	}
	l.background.Move(fyne.NewPos(0, 0))
	l.background.Resize(containerSize.Max(l.size))
}

func (l *canvasLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return l.size
}
