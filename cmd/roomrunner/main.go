package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/driver"
	"github.com/automoto/roomrunner/maps"
	"github.com/automoto/roomrunner/scenes"
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	mapPath := flag.String("map", "", "Room map to play (.bin, .txt or .tmx); empty plays the bundled demo")
	configPath := flag.String("config", "", "TOML file overriding the default tunables")
	debug := flag.Bool("debug", false, "Draw hitboxes and frame stats")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "Log format (console or json)")
	flag.Parse()

	log, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("load config", zap.Error(err))
		}
		config.Apply(f)
	}
	if *debug {
		config.C.Debug = true
	}

	data, err := readMap(*mapPath)
	if err != nil {
		log.Fatal("read map", zap.Error(err))
	}

	scene, err := scenes.NewPlatformerScene(data, driver.PlayerTexture(), log)
	if err != nil {
		log.Fatal("start scene", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("roomrunner")
	ebiten.SetTPS(config.C.TPS)

	log.Info("starting",
		zap.String("map", mapName(*mapPath)),
		zap.Int("rooms", len(scene.Level().Rooms())),
		zap.Int("tps", config.C.TPS),
	)
	if err := ebiten.RunGame(driver.NewGame(scene, driver.DefaultBindings(), log)); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}

func readMap(path string) ([]byte, error) {
	if path == "" {
		return leveldata.ReadMapFile(maps.FS, maps.Demo)
	}
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return leveldata.ReadMapFile(os.DirFS(dir), filepath.ToSlash(name))
}

func mapName(path string) string {
	if path == "" {
		return "demo"
	}
	return path
}

func newLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
