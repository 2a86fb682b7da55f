package chime

import (
	"math"
	"sync"
	"time"

	"AnalogClock/internal/config"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
)

// SampleRate 报时音的采样率
const SampleRate = beep.SampleRate(44100)

// 扬声器是进程级设备，只初始化一次
var (
	audioOnce sync.Once
	audioErr  error
)

func initAudio() error {
	audioOnce.Do(func() {
		audioErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	return audioErr
}

func speakerPlay(s beep.Streamer) error {
	if err := initAudio(); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Chime 在整点时播放提示音
type Chime struct {
	cfg      config.ChimeConfig
	enabled  bool
	play     func(beep.Streamer) error
	log      zerolog.Logger
	primed   bool
	lastHour int
}

func New(cfg config.ChimeConfig, log zerolog.Logger) *Chime {
	return &Chime{
		cfg:     cfg,
		enabled: cfg.Hourly,
		play:    speakerPlay,
		log:     log,
	}
}

func (c *Chime) Enabled() bool {
	return c.enabled
}

// Observe 记录一次时钟读数，跨越整点时播放提示音。
// 第一次调用只用于初始化，返回值表示本次是否报时。
func (c *Chime) Observe(t time.Time) bool {
	hour := t.Hour()
	if !c.primed {
		c.primed = true
		c.lastHour = hour
		return false
	}
	if hour == c.lastHour {
		return false
	}
	c.lastHour = hour

	if !c.enabled {
		return false
	}

	if err := c.play(c.Tone()); err != nil {
		c.log.Warn().Err(err).Msg("audio unavailable, hourly chime disabled")
		c.enabled = false
		return false
	}

	c.log.Debug().Int("hour", hour).Msg("hourly chime")
	return true
}

// Tone 生成一段带线性衰减的正弦波
func (c *Chime) Tone() beep.Streamer {
	total := SampleRate.N(c.cfg.Duration)
	step := c.cfg.Frequency / float64(SampleRate)
	pos := 0

	sine := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			envelope := 1 - float64(pos)/float64(total)
			if envelope < 0 {
				envelope = 0
			}
			v := envelope * math.Sin(2*math.Pi*step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})

	return &effects.Volume{
		Streamer: beep.Take(total, sine),
		Base:     2,
		Volume:   c.cfg.Volume,
		Silent:   false,
	}
}
