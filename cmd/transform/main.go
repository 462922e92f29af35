package main

import (
	"os"

	"transform-demo/internal/app"
	"transform-demo/internal/engineconfig"
	"transform-demo/internal/env"
	"transform-demo/internal/fonts"
	"transform-demo/internal/graphics"
	"transform-demo/internal/logger"
	"transform-demo/internal/terminal"
)

const windowTitle = "3D Transformation Demo"

func main() {
	envErr := env.Load(env.DefaultFile)

	logPath := logger.LogFilePath
	if p := os.Getenv("TRANSFORM_LOG"); p != "" {
		logPath = p
	}
	log := logger.NewAt(logPath)
	if envErr != nil {
		log.Log(envErr.Error())
	}

	cfgPath := engineconfig.Path()
	prefs, err := engineconfig.Load(cfgPath)
	if err != nil {
		log.Log(err.Error())
	}

	renderer := &graphics.Renderer{}
	a := app.New(prefs, cfgPath, log, renderer.Measure)
	term := terminal.New(log, a.Commands)

	var feed app.ConfigFeed
	if w, err := engineconfig.Watch(cfgPath); err == nil {
		defer w.Close()
		feed = app.ConfigFeed{Updates: w.Updates, Errors: w.Errors}
	} else {
		log.Logf("not watching %s: %v", cfgPath, err)
	}

	setup := func() {
		if prefs.Font == "" {
			return
		}
		path, err := fonts.Find(prefs.Font, fonts.BaseDirs())
		if err != nil || !renderer.LoadFont(path) {
			log.Logf("font %q not found, using default", prefs.Font)
			return
		}
		term.SetFont(renderer.Font())
	}

	update := func() bool {
		a.Poll(&feed)
		term.Update()
		return a.HandleKeys(graphics.PressedKeys(), term.IsOpen())
	}

	draw := func() {
		w, h := graphics.ScreenSize()
		renderer.Draw(a.Frame(graphics.FPS(), w, h), a.Scene.Camera)
		term.Draw()
	}

	graphics.Run(graphics.Window{
		Width:  prefs.WindowWidth,
		Height: prefs.WindowHeight,
		Title:  windowTitle,
	}, setup, update, draw)
}
