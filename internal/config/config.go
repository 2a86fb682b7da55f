package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath 指定配置文件路径的环境变量
const EnvConfigPath = "ANALOG_CLOCK_CONFIG"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	App   AppConfig   `yaml:"app"`
	Clock ClockConfig `yaml:"clock"`
	Chime ChimeConfig `yaml:"chime"`
	Log   LogConfig   `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Fullscreen   bool   `yaml:"fullscreen"`
}

type ClockConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// ChimeConfig 整点报时
type ChimeConfig struct {
	Hourly    bool          `yaml:"hourly"`
	Volume    float64       `yaml:"volume"` // 以 2 为底的音量增益，0 为原始音量
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Analog Clock",
			Version:      "1.0.0",
			WindowWidth:  400,
			WindowHeight: 450,
		},
		Clock: ClockConfig{
			TickInterval: time.Second,
		},
		Chime: ChimeConfig{
			Hourly:    false,
			Volume:    0,
			Frequency: 880,
			Duration:  400 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	if c.App.WindowWidth <= 0 || c.App.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.App.WindowWidth, c.App.WindowHeight)
	}
	if c.Clock.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.Clock.TickInterval)
	}
	if c.Chime.Frequency <= 0 {
		return fmt.Errorf("%w: chime frequency must be positive, got %v", ErrInvalidConfig, c.Chime.Frequency)
	}
	if c.Chime.Duration <= 0 {
		return fmt.Errorf("%w: chime duration must be positive, got %s", ErrInvalidConfig, c.Chime.Duration)
	}
	return nil
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager 从默认路径加载配置，文件不存在时使用默认值
func NewManager() (*Manager, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewManagerWithPath(configPath)
}

func NewManagerWithPath(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	if err := manager.loadConfig(); err != nil {
		return nil, err
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	config := DefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		m.config = config
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", m.configPath, err)
	}

	// 未出现在文件中的字段保留默认值
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config %s: %w", m.configPath, err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

// DefaultPath 优先使用环境变量，否则为用户目录下的 .analog-clock/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}

	return filepath.Join(homeDir, ".analog-clock", "config.yaml"), nil
}
