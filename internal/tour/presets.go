package tour

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"earthquake-explorer/internal/geom"
	"earthquake-explorer/internal/tween"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// Transition configures the camera move started by every mode switch.
type Transition struct {
	Duration float32     `yaml:"duration"` // seconds
	Curve    tween.Curve `yaml:"curve"`
}

// Preset is the target configuration of one mode.
type Preset struct {
	Mode      Mode
	Camera    CameraPose
	Shake     bool
	Highlight ArrowHighlight
	Panel     Panel // the only panel left in view
	PanelPose PanelPose
}

// Presets is the full mode table plus the shared transition settings.
type Presets struct {
	Transition Transition
	Modes      map[Mode]Preset
}

// presetFile is the on-disk YAML layout (see presets.yaml).
type presetFile struct {
	Transition Transition    `yaml:"transition"`
	Modes      []presetEntry `yaml:"modes"`
}

type presetEntry struct {
	Key    int `yaml:"key"`
	Camera struct {
		Position [3]float32 `yaml:"position"`
		Target   [3]float32 `yaml:"target"`
	} `yaml:"camera"`
	Shake         bool           `yaml:"shake"`
	Highlight     ArrowHighlight `yaml:"highlight"`
	Panel         Panel          `yaml:"panel"`
	PanelPosition [3]float32     `yaml:"panel_position"`
	PanelYaw      float32        `yaml:"panel_yaw"`
}

func vec(a [3]float32) geom.Vec3 {
	return geom.V3(a[0], a[1], a[2])
}

// DefaultPresets returns the built-in mode table.
func DefaultPresets() Presets {
	p, err := DecodePresets(bytes.NewReader(defaultPresetsYAML))
	if err != nil {
		panic("tour: embedded presets.yaml is invalid: " + err.Error())
	}
	return p
}

// DecodePresets reads a YAML mode table from r and validates it: every key 1-4 must appear exactly once
// and the transition duration must not be negative.
func DecodePresets(r io.Reader) (Presets, error) {
	var f presetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Presets{}, fmt.Errorf("decode presets: %w", err)
	}
	if f.Transition.Duration < 0 {
		return Presets{}, fmt.Errorf("transition duration %v is negative", f.Transition.Duration)
	}
	out := Presets{Transition: f.Transition, Modes: make(map[Mode]Preset, len(Modes))}
	for _, e := range f.Modes {
		if e.Key < 1 || e.Key > len(Modes) {
			return Presets{}, fmt.Errorf("preset key %d is not one of 1-4", e.Key)
		}
		m := Mode(e.Key)
		if _, dup := out.Modes[m]; dup {
			return Presets{}, fmt.Errorf("preset key %d defined twice", e.Key)
		}
		out.Modes[m] = Preset{
			Mode:      m,
			Camera:    CameraPose{Position: vec(e.Camera.Position), Target: vec(e.Camera.Target)},
			Shake:     e.Shake,
			Highlight: e.Highlight,
			Panel:     e.Panel,
			PanelPose: PanelPose{
				Position: vec(e.PanelPosition),
				Rotation: geom.V3(0, geom.Deg(e.PanelYaw), 0),
			},
		}
	}
	for _, m := range Modes {
		if _, ok := out.Modes[m]; !ok {
			return Presets{}, fmt.Errorf("no preset for key %c", m.Key())
		}
	}
	return out, nil
}

// LoadPresets reads the mode table from path. An empty path or a missing file yields DefaultPresets
// with a nil error; a file that exists but does not decode returns DefaultPresets and the error.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPresets(), nil
		}
		return DefaultPresets(), fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()
	p, err := DecodePresets(f)
	if err != nil {
		return DefaultPresets(), fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ErrNoPresetsFile is returned by Controller.Reload when no presets file is configured.
var ErrNoPresetsFile = errors.New("no presets file configured")

// Reload replaces the controller's mode table with the one in path. When path is empty, missing, or does not
// decode, the table in use is kept and the error says why; a removed file never falls back to the defaults.
func (c *Controller) Reload(path string) error {
	if path == "" {
		return ErrNoPresetsFile
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()
	p, err := DecodePresets(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.SetPresets(p)
	return nil
}
