package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"earthquake-explorer/internal/assets"
	"earthquake-explorer/internal/commands"
	"earthquake-explorer/internal/config"
	"earthquake-explorer/internal/debug"
	"earthquake-explorer/internal/geom"
	"earthquake-explorer/internal/logger"
	"earthquake-explorer/internal/rumble"
	"earthquake-explorer/internal/scene"
	"earthquake-explorer/internal/terminal"
	"earthquake-explorer/internal/tour"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// orbitSpeed is radians of camera orbit per pixel of mouse drag.
	orbitSpeed = 0.005
	// zoomStep is the fractional distance change per wheel notch.
	zoomStep = 0.1
)

// modeKeys maps number-row and keypad keys to the mode key they select.
var modeKeys = []struct {
	key  int32
	mode rune
}{
	{rl.KeyOne, '1'}, {rl.KeyTwo, '2'}, {rl.KeyThree, '3'}, {rl.KeyFour, '4'},
	{rl.KeyKp1, '1'}, {rl.KeyKp2, '2'}, {rl.KeyKp3, '3'}, {rl.KeyKp4, '4'},
}

// app owns the per-frame loop: input, the tour state, and everything drawn from it.
type app struct {
	log       *logger.Logger
	prefs     config.Prefs
	prefsPath string

	controller *tour.Controller
	animator   *tour.Animator
	state      tour.State

	scene   *scene.Scene
	reg     *commands.Registry
	term    *terminal.Terminal
	overlay *debug.Debug

	// pendingYaw and pendingPitch hold dragged orbit not yet applied, in radians.
	pendingYaw, pendingPitch float32

	gate    *rumble.Gate
	player  *rumble.Player
	watcher *config.Watcher
}

func newApp(log *logger.Logger, prefs config.Prefs) *app {
	seed := uint64(time.Now().UnixNano())
	motion, err := tour.ParseMotion(prefs.Motion)
	if err != nil {
		log.Logf("prefs: %v", err)
	}
	presets, err := tour.LoadPresets(prefs.TourPath)
	if err != nil {
		log.Logf("tour presets: %v", err)
	}

	a := &app{
		log:        log,
		prefs:      prefs,
		prefsPath:  config.PrefsPath,
		controller: tour.NewController(presets),
		animator:   tour.NewAnimator(rand.New(rand.NewPCG(seed, seed>>1)), motion),
		state:      tour.NewState(),
		scene: scene.New(log, assets.NewLocator(), scene.Options{
			EarthTexture:   prefs.EarthTexture,
			CaptionFont:    prefs.CaptionFont,
			MaxTextureSize: prefs.MaxTextureSize,
		}),
		overlay: debug.New(),
		gate:    &rumble.Gate{},
	}
	a.overlay.ShowFPS = prefs.ShowFPS
	a.overlay.ShowMemAlloc = prefs.ShowMemAlloc
	a.reg = commands.NewRegistry(log.Log)
	a.registerCommands()
	a.term = terminal.New(log, a.reg)

	if prefs.Audio {
		if err := a.setAudio(true); err != nil {
			log.Logf("audio: %v", err)
		}
	}
	a.watchPresets()
	log.Logf("%d modes loaded, motion %s", len(presets.Modes), motion)
	return a
}

func (a *app) watchPresets() {
	if a.prefs.TourPath == "" {
		return
	}
	if _, err := os.Stat(filepath.Dir(a.prefs.TourPath)); err != nil {
		return
	}
	w, err := config.Watch(a.prefs.TourPath, func(err error) {
		a.log.Logf("watch %s: %v", a.prefs.TourPath, err)
	})
	if err != nil {
		a.log.Logf("tour presets: %v", err)
		return
	}
	a.watcher = w
}

// reloadPresets rereads the tour file. A missing, unset or undecodable file keeps the presets already in use.
func (a *app) reloadPresets() error {
	if err := a.controller.Reload(a.prefs.TourPath); err != nil {
		return err
	}
	a.log.Logf("tour presets reloaded from %s", a.prefs.TourPath)
	return nil
}

func (a *app) selectMode(key rune) {
	next, ok := a.controller.ApplyKey(a.state, key)
	if !ok {
		return
	}
	if !next.PanelsReady {
		a.log.Logf("key %c ignored: captions still loading", key)
		return
	}
	a.state = next
	a.log.Logf("mode %s", a.state.Mode)
}

func (a *app) setAudio(on bool) error {
	a.prefs.Audio = on
	if a.player == nil {
		if !on {
			return nil
		}
		p, err := rumble.Start(a.gate, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 7)))
		if err != nil {
			a.prefs.Audio = false
			return err
		}
		a.player = p
		return nil
	}
	a.player.SetMuted(!on)
	return nil
}

// update runs once per frame before drawing.
func (a *app) update(dt float32) {
	a.scene.Update()
	if !a.state.PanelsReady && a.scene.PanelsReady() {
		a.state = a.state.WithPanelsReady()
		if font, ok := a.scene.CaptionFont(); ok {
			a.term.SetFont(font)
			a.overlay.SetFont(font)
		}
	}
	if a.watcher != nil {
		select {
		case <-a.watcher.Changed():
			if err := a.reloadPresets(); err != nil {
				a.log.Logf("tour presets: %v", err)
			}
		default:
		}
	}

	a.term.Update()
	if !a.term.IsOpen() {
		for _, mk := range modeKeys {
			if rl.IsKeyPressed(mk.key) {
				a.selectMode(mk.mode)
			}
		}
		a.orbit(dt)
	}

	a.state = a.animator.Tick(a.state, dt)
	a.gate.Set(a.state.Shaking)
}

// orbit queues mouse drag as pending orbit and applies a damped share of it each frame, so the camera glides to a stop.
func (a *app) orbit(dt float32) {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		a.pendingYaw -= d.X * orbitSpeed
		a.pendingPitch += d.Y * orbitSpeed
	}
	var dYaw, dPitch float32
	dYaw, a.pendingYaw = geom.Damp(a.pendingYaw, dt)
	dPitch, a.pendingPitch = geom.Damp(a.pendingPitch, dt)
	zoom := float32(1)
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		zoom = max(0.5, 1-wheel*zoomStep)
	}
	if dYaw == 0 && dPitch == 0 && zoom == 1 {
		return
	}
	a.state = tour.Orbit(a.state, dYaw, dPitch, zoom)
}

func (a *app) draw() {
	a.scene.Draw(a.state)
	a.term.Draw()
	a.overlay.Draw(a.state)
}

func (a *app) close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.player != nil {
		a.player.Close()
	}
}
