package ui

import (
	"context"
	"time"

	"AnalogClock/internal/chime"
	"AnalogClock/internal/clock"
	"AnalogClock/internal/config"
	"AnalogClock/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type MainWindow struct {
	window    fyne.Window
	face      *ClockFace
	controls  *Controls
	stopwatch *clock.Stopwatch
	chime     *chime.Chime
	clock     clockwork.Clock
	config    *config.Config
	log       zerolog.Logger
	cancel    context.CancelFunc
	done      <-chan struct{} // 刷新 goroutine 退出后关闭
}

func NewMainWindow(app fyne.App, cfg *config.Config, clk clockwork.Clock, log zerolog.Logger) *MainWindow {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	w := &MainWindow{
		window:    app.NewWindow(cfg.App.Name),
		face:      NewClockFace(clock.DefaultFace()),
		stopwatch: clock.NewStopwatch(clk),
		chime:     chime.New(cfg.Chime, logger.Component(log, "chime")),
		clock:     clk,
		config:    cfg,
		log:       logger.Component(log, "ui"),
	}
	w.controls = NewControls(w.window, w.stopwatch, w.refresh, w.log)
	w.setup()
	return w
}

func (w *MainWindow) setup() {
	content := container.NewBorder(
		nil, w.controls.Container(), nil, nil,
		w.face.Container(),
	)

	w.window.SetContent(content)
	w.window.Resize(fyne.NewSize(float32(w.config.App.WindowWidth), float32(w.config.App.WindowHeight)))
	w.window.SetFullScreen(w.config.App.Fullscreen)
	w.window.SetOnClosed(w.Stop)
}

// Start 立即绘制一帧，然后按配置的间隔刷新，窗口关闭时停止
func (w *MainWindow) Start() {
	if w.cancel != nil {
		return
	}

	w.refresh()

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.done = clock.Repeat(ctx, w.clock, w.config.Clock.TickInterval, func(time.Time) {
		fyne.Do(func() {
			// 排队期间窗口可能已经关闭
			if ctx.Err() != nil {
				return
			}
			w.refresh()
		})
	})

	w.log.Info().
		Dur("tick_interval", w.config.Clock.TickInterval).
		Bool("hourly_chime", w.chime.Enabled()).
		Msg("clock started")
}

// Stop 停止刷新，可重复调用
func (w *MainWindow) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	w.cancel = nil
	w.log.Info().Msg("clock stopped")
}

// refresh 在 UI 线程上执行
func (w *MainWindow) refresh() {
	now := w.clock.Now()
	w.face.Render(now, w.stopwatch)
	w.chime.Observe(now)
}

func (w *MainWindow) Show() {
	w.Start()
	w.window.ShowAndRun()
}
