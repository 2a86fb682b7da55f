package models

import (
	"image/color"
)

// Point 表示画布上的一个坐标
type Point struct {
	X float64
	Y float64
}

// ClockFace 描述表盘几何，创建后不再修改
type ClockFace struct {
	Center Point
	Radius float64
}

type HandKind int

const (
	HandHour HandKind = iota
	HandMinute
	HandSecond
)

// Hand 每次刷新时根据当前时间重新计算
type Hand struct {
	Kind   HandKind
	Angle  float64 // 弧度，屏幕坐标系，0 指向 3 点钟方向
	Length float64
	Color  color.Color
}
