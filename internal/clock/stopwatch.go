package clock

import (
	"time"

	"AnalogClock/internal/models"

	"github.com/jonboulle/clockwork"
)

// Stopwatch 简单的开始/停止/重置秒表，只在 UI 线程上使用
type Stopwatch struct {
	clock   clockwork.Clock
	state   models.StopwatchState
	started bool          // 是否记录了开始时间
	start   time.Time     // 开始时间
	frozen  time.Duration // 停止时冻结的时长
}

// NewStopwatch 创建秒表，clk 为 nil 时使用系统时钟
func NewStopwatch(clk clockwork.Clock) *Stopwatch {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Stopwatch{
		clock: clk,
		state: models.StateStopped,
	}
}

// Start 开始计时，已在运行时不做任何事
func (s *Stopwatch) Start() {
	if s.state == models.StateRunning {
		return
	}
	s.state = models.StateRunning
	s.started = true
	s.start = s.clock.Now()
	s.frozen = 0
}

// Stop 停止计时并冻结当前时长
func (s *Stopwatch) Stop() {
	if s.state != models.StateRunning {
		return
	}
	s.frozen = s.elapsedSince(s.clock.Now())
	s.state = models.StateStopped
}

// Toggle 切换运行状态，返回切换后的状态
func (s *Stopwatch) Toggle() models.StopwatchState {
	if s.state == models.StateRunning {
		s.Stop()
	} else {
		s.Start()
	}
	return s.state
}

// Reset 回到停止状态并清除开始时间
func (s *Stopwatch) Reset() {
	s.state = models.StateStopped
	s.started = false
	s.start = time.Time{}
	s.frozen = 0
}

func (s *Stopwatch) State() models.StopwatchState {
	return s.state
}

func (s *Stopwatch) Running() bool {
	return s.state == models.StateRunning
}

// Visible 是否需要显示秒表文本：运行中或停止后尚未重置
func (s *Stopwatch) Visible() bool {
	return s.started
}

// Elapsed 运行中返回 now - start，否则返回冻结值；从未开始时为 0
func (s *Stopwatch) Elapsed() time.Duration {
	if s.state == models.StateRunning {
		return s.elapsedSince(s.clock.Now())
	}
	return s.frozen
}

// Display 返回 HH:MM:SS，未显示时返回空字符串
func (s *Stopwatch) Display() string {
	if !s.Visible() {
		return ""
	}
	return FormatElapsed(s.Elapsed())
}

func (s *Stopwatch) elapsedSince(now time.Time) time.Duration {
	d := now.Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}
