package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
)

// PrefsPath is the viewer preferences file, relative to the process working directory.
const PrefsPath = "config/viewer.json"

// Prefs holds viewer-only preferences (window, overlays, motion model, asset choices). Persisted across runs.
// Scene state is never persisted; every run starts from the intro view.
type Prefs struct {
	Fullscreen     bool   `json:"fullscreen"`
	WindowWidth    int    `json:"window_width"`
	WindowHeight   int    `json:"window_height"`
	TargetFPS      int    `json:"target_fps"`
	ShowFPS        bool   `json:"show_fps"`
	ShowMemAlloc   bool   `json:"show_memalloc"`
	Motion         string `json:"motion"` // "delta" or "frame"
	Audio          bool   `json:"audio"`
	EarthTexture   string `json:"earth_texture"` // file name or search term under assets/textures
	CaptionFont    string `json:"caption_font"`  // file name or search term under assets/fonts
	MaxTextureSize int    `json:"max_texture_size"`
	TourPath       string `json:"tour_path"` // optional YAML override of the mode presets
}

// Default returns default preferences (windowed 1280x720 at 60 fps, overlays off, delta-time motion).
func Default() Prefs {
	return Prefs{
		WindowWidth:    1280,
		WindowHeight:   720,
		TargetFPS:      60,
		Motion:         "delta",
		EarthTexture:   "earthmap",
		CaptionFont:    "regular",
		MaxTextureSize: 4096,
		TourPath:       "config/tour.yaml",
	}
}

// Merge returns base with every non-zero field of over copied onto it.
// Zero values in over (false, 0, "") mean "not set" and leave base untouched.
func Merge(base, over Prefs) Prefs {
	out := base
	if err := copier.CopyWithOption(&out, &over, copier.Option{IgnoreEmpty: true}); err != nil {
		return base
	}
	return out
}

// Load reads preferences from path and merges them over Default(). A missing file returns Default() and no error.
// A file that cannot be parsed returns Default() and the parse error so the caller can log it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return Merge(Default(), p), nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
