package ui

import (
	"AnalogClock/internal/clock"
	"AnalogClock/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	labelStart      = "Start"
	labelStop       = "Stop"
	labelReset      = "Reset Stopwatch"
	labelFullscreen = "Toggle Fullscreen"
)

// Controls 秒表与全屏按钮
type Controls struct {
	container        *fyne.Container
	startButton      *widget.Button
	resetButton      *widget.Button
	fullscreenButton *widget.Button

	stopwatch *clock.Stopwatch
	window    fyne.Window
	onChange  func() // 秒表状态变化后立即重绘
	log       zerolog.Logger
}

func NewControls(window fyne.Window, sw *clock.Stopwatch, onChange func(), log zerolog.Logger) *Controls {
	c := &Controls{
		stopwatch: sw,
		window:    window,
		onChange:  onChange,
		log:       log,
	}

	c.startButton = widget.NewButtonWithIcon(labelStart, theme.MediaPlayIcon(), c.toggleStopwatch)
	c.startButton.Importance = widget.HighImportance

	c.resetButton = widget.NewButtonWithIcon(labelReset, theme.MediaReplayIcon(), c.resetStopwatch)
	c.resetButton.Importance = widget.MediumImportance

	c.fullscreenButton = widget.NewButtonWithIcon(labelFullscreen, theme.ViewFullScreenIcon(), c.toggleFullscreen)
	c.fullscreenButton.Importance = widget.MediumImportance

	c.container = container.NewCenter(container.NewHBox(
		c.startButton,
		c.resetButton,
		c.fullscreenButton,
	))

	return c
}

func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) toggleStopwatch() {
	state := c.stopwatch.Toggle()
	c.updateStartButton(state)
	c.log.Info().Stringer("state", state).Msg("stopwatch toggled")
	c.changed()
}

func (c *Controls) resetStopwatch() {
	c.stopwatch.Reset()
	c.updateStartButton(c.stopwatch.State())
	c.log.Info().Msg("stopwatch reset")
	c.changed()
}

func (c *Controls) toggleFullscreen() {
	fullscreen := !c.window.FullScreen()
	c.window.SetFullScreen(fullscreen)
	c.log.Debug().Bool("fullscreen", fullscreen).Msg("fullscreen toggled")
}

func (c *Controls) updateStartButton(state models.StopwatchState) {
	if state == models.StateRunning {
		c.startButton.SetIcon(theme.MediaPauseIcon())
		c.startButton.SetText(labelStop)
	} else {
		c.startButton.SetIcon(theme.MediaPlayIcon())
		c.startButton.SetText(labelStart)
	}
}

func (c *Controls) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
