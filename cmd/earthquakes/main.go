package main

import (
	"fmt"
	"os"

	"earthquake-explorer/internal/config"
	"earthquake-explorer/internal/graphics"
	"earthquake-explorer/internal/logger"
)

const windowTitle = "Earthquakes"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, ".env: %v\n", err)
	}
	log := logger.New(logger.DefaultPath)
	prefs, err := config.Load(config.PrefsPath)
	if err != nil {
		log.Logf("prefs: %v", err)
	}
	prefs = config.ApplyEnv(prefs, os.Getenv)

	a := newApp(log, prefs)
	defer a.close()

	graphics.Run(graphics.Options{
		Title:      windowTitle,
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
		OnResize: func(w, h int) {
			log.Logf("window resized to %dx%d", w, h)
		},
		OnExit: a.scene.Unload,
	}, a.update, a.draw)
}
