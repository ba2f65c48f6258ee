package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "viewer.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "motion": "frame", "target_fps": 0}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, "frame", p.Motion)
	assert.Equal(t, 60, p.TargetFPS, "zero keeps the default")
	assert.Equal(t, Default().WindowWidth, p.WindowWidth)
	assert.Equal(t, Default().EarthTexture, p.EarthTexture)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": tru`), 0644))
	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "viewer.json")
	want := Default()
	want.ShowFPS = true
	want.Fullscreen = true
	want.CaptionFont = "Inter-Regular.ttf"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMerge(t *testing.T) {
	base := Default()
	got := Merge(base, Prefs{Motion: "frame", WindowWidth: 800})
	assert.Equal(t, "frame", got.Motion)
	assert.Equal(t, 800, got.WindowWidth)
	assert.Equal(t, base.WindowHeight, got.WindowHeight)
	assert.Equal(t, "delta", base.Motion, "base is not modified")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTexture:    "8081_earthmap4k.jpg",
		EnvMotion:     "frame",
		EnvFullscreen: "true",
	}
	got := ApplyEnv(Default(), func(k string) string { return env[k] })
	assert.Equal(t, "8081_earthmap4k.jpg", got.EarthTexture)
	assert.Equal(t, "frame", got.Motion)
	assert.True(t, got.Fullscreen)
	assert.Equal(t, Default().CaptionFont, got.CaptionFont)
	assert.Equal(t, Default().TourPath, got.TourPath)

	got = ApplyEnv(Default(), func(string) string { return "" })
	assert.Equal(t, Default(), got)
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"  KEY = value  ", "KEY", "value", true},
		{`KEY="quoted value"`, "KEY", "quoted value", true},
		{"KEY='single'", "KEY", "single", true},
		{"export KEY=1", "KEY", "1", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=value", "", "", false},
		{"novalue", "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := parseEnvLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.key, key, tt.line)
		assert.Equal(t, tt.value, value, tt.line)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# viewer\nEQ_TEST_FRESH=fresh\nEQ_TEST_SET=from-file\n"), 0644))
	t.Setenv("EQ_TEST_SET", "from-env")
	t.Setenv("EQ_TEST_FRESH", "")
	require.NoError(t, os.Unsetenv("EQ_TEST_FRESH"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "fresh", os.Getenv("EQ_TEST_FRESH"))
	assert.Equal(t, "from-env", os.Getenv("EQ_TEST_SET"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestWatchSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	w, err := Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("modes: []"), 0644))

	select {
	case <-w.Changed():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after writing the watched file")
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "tour.yaml"), nil)
	assert.Error(t, err)
}
