package clock

import (
	"math"
	"testing"
	"time"

	"AnalogClock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func at(hour, minute, second int) time.Time {
	return time.Date(2024, time.March, 10, hour, minute, second, 0, time.Local)
}

func TestHandAnglesAtThreeOClock(t *testing.T) {
	a := HandAngles(at(3, 0, 0))

	assert.InDelta(t, 0, a.Hour, eps)
	assert.InDelta(t, 3*math.Pi/2, a.Minute, eps)
	assert.InDelta(t, 3*math.Pi/2, a.Second, eps)
}

func TestHourHandPointsUpAtMidnightAndNoon(t *testing.T) {
	face := DefaultFace()
	for _, ts := range []time.Time{at(0, 0, 0), at(12, 0, 0)} {
		a := HandAngles(ts)
		assert.InDelta(t, 3*math.Pi/2, a.Hour, eps)

		tip := Tip(face, HourHandLength, a.Hour)
		assert.InDelta(t, face.Center.X, tip.X, 1e-6)
		assert.InDelta(t, face.Center.Y-HourHandLength, tip.Y, 1e-6)
	}
}

func TestHourHandCreep(t *testing.T) {
	// 每过一小时时针前进 30°，分钟按比例推进
	base := HandAngles(at(3, 0, 0)).Hour
	half := HandAngles(at(3, 30, 0)).Hour
	next := HandAngles(at(4, 0, 0)).Hour

	assert.InDelta(t, math.Pi/12, half-base, eps)
	assert.InDelta(t, math.Pi/6, next-base, eps)
	assert.Less(t, HandAngles(at(3, 59, 0)).Hour, next)
}

func TestHandAnglesRange(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			for s := 0; s < 60; s += 11 {
				a := HandAngles(at(h, m, s))
				for _, v := range []float64{a.Hour, a.Minute, a.Second} {
					assert.GreaterOrEqual(t, v, 0.0)
					assert.Less(t, v, 2*math.Pi)
				}
			}
		}
	}
}

func TestHandAnglesIgnoreDate(t *testing.T) {
	a := HandAngles(time.Date(2020, time.January, 1, 9, 41, 7, 0, time.Local))
	b := HandAngles(time.Date(2031, time.July, 19, 9, 41, 7, 999, time.Local))
	assert.Equal(t, a, b)
}

func TestTipDirections(t *testing.T) {
	face := DefaultFace()

	tests := []struct {
		name  string
		ts    time.Time
		wantX float64
		wantY float64
	}{
		{"minute at quarter past", at(10, 15, 0), CenterX + MinuteHandLength, CenterY},
		{"minute at half past", at(10, 30, 0), CenterX, CenterY + MinuteHandLength},
		{"minute at quarter to", at(10, 45, 0), CenterX - MinuteHandLength, CenterY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := Tip(face, MinuteHandLength, HandAngles(tt.ts).Minute)
			assert.InDelta(t, tt.wantX, tip.X, 1e-6)
			assert.InDelta(t, tt.wantY, tip.Y, 1e-6)
		})
	}
}

func TestLabelPosition(t *testing.T) {
	face := DefaultFace()

	twelve := LabelPosition(face, 12)
	assert.InDelta(t, CenterX, twelve.X, 1e-6)
	assert.InDelta(t, CenterY-FaceRadius, twelve.Y, 1e-6)

	three := LabelPosition(face, 3)
	assert.InDelta(t, CenterX+FaceRadius, three.X, 1e-6)
	assert.InDelta(t, CenterY, three.Y, 1e-6)

	six := LabelPosition(face, 6)
	assert.InDelta(t, CenterX, six.X, 1e-6)
	assert.InDelta(t, CenterY+FaceRadius, six.Y, 1e-6)
}

func TestHands(t *testing.T) {
	hands := Hands(at(3, 0, 0))
	require.Len(t, hands, 3)

	assert.Equal(t, models.HandSecond, hands[0].Kind)
	assert.Equal(t, float64(SecondHandLength), hands[0].Length)
	assert.Equal(t, secondColor, hands[0].Color)

	assert.Equal(t, models.HandMinute, hands[1].Kind)
	assert.Equal(t, float64(MinuteHandLength), hands[1].Length)

	assert.Equal(t, models.HandHour, hands[2].Kind)
	assert.Equal(t, float64(HourHandLength), hands[2].Length)
	assert.InDelta(t, 0, hands[2].Angle, eps)
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 3*math.Pi/2, Normalize(-math.Pi/2), eps)
	assert.InDelta(t, 0, Normalize(2*math.Pi), eps)
	assert.InDelta(t, math.Pi, Normalize(5*math.Pi), eps)
}
