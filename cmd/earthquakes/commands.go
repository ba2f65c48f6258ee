package main

import (
	"errors"
	"flag"
	"fmt"

	"earthquake-explorer/internal/commands"
	"earthquake-explorer/internal/config"
	"earthquake-explorer/internal/tour"
)

// registerCommands adds the console commands. Each one reports through the registry's output (the log).
func (a *app) registerCommands() {
	r := a.reg
	r.Register("mode", "mode <1-4>", "switch the scene like the number keys", nil, func(args []string) error {
		if len(args) != 1 || len([]rune(args[0])) != 1 {
			return errors.New("usage: mode <1-4>")
		}
		key := []rune(args[0])[0]
		if _, ok := tour.ModeForKey(key); !ok {
			return fmt.Errorf("no mode on key %q", args[0])
		}
		a.selectMode(key)
		return nil
	})
	r.Register("fps", "fps on|off", "toggle the FPS counter", nil, func(args []string) error {
		on, err := commands.OnOff(args)
		if err != nil {
			return err
		}
		a.overlay.ShowFPS = on
		a.prefs.ShowFPS = on
		return nil
	})
	r.Register("mem", "mem on|off", "toggle the heap counter", nil, func(args []string) error {
		on, err := commands.OnOff(args)
		if err != nil {
			return err
		}
		a.overlay.ShowMemAlloc = on
		a.prefs.ShowMemAlloc = on
		return nil
	})
	r.Register("state", "state on|off", "toggle the scene state overlay", nil, func(args []string) error {
		on, err := commands.OnOff(args)
		if err != nil {
			return err
		}
		a.overlay.ShowState = on
		return nil
	})
	r.Register("motion", "motion delta|frame", "scale arrow speed by frame time or by frame count", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: motion delta|frame")
		}
		m, err := tour.ParseMotion(args[0])
		if err != nil {
			return err
		}
		a.animator.SetMotion(m)
		a.prefs.Motion = m.String()
		r.Printf("motion %s", m)
		return nil
	})
	r.Register("audio", "audio on|off", "toggle the rumble while the Earth shakes", nil, func(args []string) error {
		on, err := commands.OnOff(args)
		if err != nil {
			return err
		}
		return a.setAudio(on)
	})
	r.Register("reload", "reload", "reread the tour presets file", nil, func([]string) error {
		return a.reloadPresets()
	})

	saveFlags := flag.NewFlagSet("save", flag.ContinueOnError)
	savePath := saveFlags.String("path", a.prefsPath, "prefs file to write")
	r.Register("save", "save [-path file]", "write the current preferences", saveFlags, func([]string) error {
		path := *savePath
		// Flag values persist between runs of the same FlagSet; a plain save goes back to the default file.
		*savePath = a.prefsPath
		if err := config.Save(path, a.prefs); err != nil {
			return fmt.Errorf("save prefs: %w", err)
		}
		r.Printf("prefs saved to %s", path)
		return nil
	})
}
