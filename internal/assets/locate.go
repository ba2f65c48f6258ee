package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned (wrapped) when no asset file matches a search.
var ErrNotFound = errors.New("asset not found")

// Kind is a class of asset: the subdirectory it lives in and the file extensions that count.
type Kind struct {
	Dir  string
	Exts []string
}

var (
	Fonts    = Kind{Dir: "fonts", Exts: []string{".ttf", ".otf"}}
	Textures = Kind{Dir: "textures", Exts: []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"}}
)

func (k Kind) matchesExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range k.Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Locator finds asset files under a list of root directories.
// Roots are tried in order so assets resolve whether the binary runs from the repo root or from cmd/earthquakes.
type Locator struct {
	Roots []string
}

// NewLocator returns a locator rooted at assets/ and ../../assets/.
func NewLocator() Locator {
	return Locator{Roots: []string{"assets", "../../assets"}}
}

// BaseDirs returns the candidate directories for kind k, one per root.
func (l Locator) BaseDirs(k Kind) []string {
	dirs := make([]string, 0, len(l.Roots))
	for _, root := range l.Roots {
		dirs = append(dirs, filepath.Join(root, k.Dir))
	}
	return dirs
}

// Scan returns relative paths (forward slashes) of every file of kind k under dir.
// A missing dir yields no paths and no error.
func (k Kind) Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !k.matchesExt(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// SearchCandidates returns the search terms to try in order: the term itself, then its stem without extension,
// then the part before the first dash. "Inter-Regular.ttf" -> ["Inter-Regular.ttf", "Inter-Regular", "Inter"].
func SearchCandidates(search string) []string {
	search = strings.TrimSpace(search)
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	add(search)
	base := filepath.Base(filepath.ToSlash(search))
	add(strings.TrimSuffix(base, filepath.Ext(base)))
	if i := strings.Index(base, "-"); i > 0 {
		add(base[:i])
	}
	return out
}

// Find resolves search to a file of kind k. An existing path is returned as is; otherwise every base dir is scanned
// and the first file whose path contains a search candidate wins, preferring one with "regular" in its name.
// The error wraps ErrNotFound when nothing matches.
func (l Locator) Find(k Kind, search string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", fmt.Errorf("%s: empty search: %w", k.Dir, ErrNotFound)
	}
	if info, err := os.Stat(search); err == nil && !info.IsDir() {
		return filepath.Clean(search), nil
	}
	for _, dir := range l.BaseDirs(k) {
		full := filepath.Join(dir, search)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			return full, nil
		}
	}
	for _, term := range SearchCandidates(search) {
		if path, ok := l.match(k, normalizeForMatch(term)); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s %q: %w", k.Dir, search, ErrNotFound)
}

func (l Locator) match(k Kind, norm string) (string, bool) {
	if norm == "" {
		return "", false
	}
	var candidates []string
	for _, dir := range l.BaseDirs(k) {
		list, err := k.Scan(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(c)), "regular") {
			return c, true
		}
	}
	return candidates[0], true
}
