package logger

import (
	"io"
	"os"
	"strings"

	"AnalogClock/internal/config"

	"github.com/rs/zerolog"
)

// EnvLogLevel 覆盖配置中的日志级别
const EnvLogLevel = "LOG_LEVEL"

// New 根据配置创建 logger，默认输出到 stderr
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

func NewWithWriter(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	level := ParseLevel(cfg.Level)
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = ParseLevel(env)
	}

	if !cfg.JSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel 无法识别的级别按 info 处理
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component 返回带 component 字段的子 logger
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
