package main

import (
	"AnalogClock/internal/config"
	"AnalogClock/internal/logger"
	"AnalogClock/internal/ui"

	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
)

func main() {
	// 加载配置，失败时用默认日志配置报告错误
	configManager, err := config.NewManager()
	if err != nil {
		log := logger.New(config.DefaultConfig().Log)
		log.Fatal().Err(err).Msg("load config")
	}

	cfg := configManager.GetConfig()
	log := logger.New(cfg.Log)
	log.Info().
		Str("config", configManager.Path()).
		Str("version", cfg.App.Version).
		Msg("starting")

	myApp := app.New()

	mainWindow := ui.NewMainWindow(myApp, cfg, clockwork.NewRealClock(), log)
	mainWindow.Show()

	log.Info().Msg("exited")
}
