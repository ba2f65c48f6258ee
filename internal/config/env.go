package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override preferences.
const (
	EnvTexture    = "EARTHQUAKES_TEXTURE"
	EnvFont       = "EARTHQUAKES_FONT"
	EnvMotion     = "EARTHQUAKES_MOTION"
	EnvTour       = "EARTHQUAKES_TOUR"
	EnvFullscreen = "EARTHQUAKES_FULLSCREEN"
)

// LoadDotEnv reads path (e.g. ".env") and sets an environment variable for each KEY=VALUE line that is
// not already set, so the real environment wins. Empty lines and lines starting with # are skipped;
// surrounding quotes are removed from values. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// ApplyEnv returns p with overrides taken from getenv (os.Getenv in production).
// Unset or empty variables leave p unchanged; EARTHQUAKES_FULLSCREEN accepts strconv.ParseBool values.
func ApplyEnv(p Prefs, getenv func(string) string) Prefs {
	over := Prefs{
		EarthTexture: getenv(EnvTexture),
		CaptionFont:  getenv(EnvFont),
		Motion:       getenv(EnvMotion),
		TourPath:     getenv(EnvTour),
	}
	if v := getenv(EnvFullscreen); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Fullscreen = b
		}
	}
	return Merge(p, over)
}
