package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func testLocator(t *testing.T) (Locator, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fonts", "Inter", "Inter-Bold.ttf"), []byte("bold"))
	writeFile(t, filepath.Join(root, "fonts", "Inter", "Inter-Regular.ttf"), []byte("regular"))
	writeFile(t, filepath.Join(root, "fonts", "README.md"), []byte("not a font"))
	writeFile(t, filepath.Join(root, "textures", "8081_earthmap4k.jpg"), []byte("jpg"))
	return Locator{Roots: []string{filepath.Join(root, "missing"), root}}, root
}

func TestScan(t *testing.T) {
	_, root := testLocator(t)
	list, err := Fonts.Scan(filepath.Join(root, "fonts"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf"}, list)

	list, err = Fonts.Scan(filepath.Join(root, "nope"))
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	loc, root := testLocator(t)

	path, err := loc.Find(Fonts, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fonts", "Inter", "Inter-Regular.ttf"), path, "regular preferred")

	path, err = loc.Find(Fonts, "Inter/Inter-Bold.ttf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fonts", "Inter", "Inter-Bold.ttf"), path)

	path, err = loc.Find(Fonts, "Inter-Black.ttf")
	require.NoError(t, err, "falls back to the family name")
	assert.Equal(t, filepath.Join(root, "fonts", "Inter", "Inter-Regular.ttf"), path)

	path, err = loc.Find(Textures, "earth map")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "textures", "8081_earthmap4k.jpg"), path)

	_, err = loc.Find(Textures, "moon")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = loc.Find(Fonts, "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchCandidates(t *testing.T) {
	assert.Equal(t, []string{"Inter-Regular.ttf", "Inter-Regular", "Inter"}, SearchCandidates("Inter-Regular.ttf"))
	assert.Equal(t, []string{"regular"}, SearchCandidates("regular"))
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter-Bold", "Inter"}, SearchCandidates("Inter/Inter-Bold.ttf"))
}

func TestLoadAsync(t *testing.T) {
	loc, _ := testLocator(t)

	var res Result
	select {
	case res = <-loc.LoadAsync(Fonts, "regular"):
	case <-time.After(2 * time.Second):
		t.Fatal("load did not complete")
	}
	require.NoError(t, res.Err)
	assert.Equal(t, []byte("regular"), res.Data)

	res = <-loc.LoadAsync(Fonts, "comic sans")
	assert.ErrorIs(t, res.Err, ErrNotFound)
	assert.Nil(t, res.Data)
}

func TestPoll(t *testing.T) {
	ch := make(chan Result, 1)
	_, ok := Poll(ch)
	assert.False(t, ok)

	ch <- Result{Path: "a"}
	res, ok := Poll(ch)
	assert.True(t, ok)
	assert.Equal(t, "a", res.Path)

	close(ch)
	_, ok = Poll(ch)
	assert.False(t, ok, "a closed channel has nothing more to deliver")
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareTextureKeepsLeftHalf(t *testing.T) {
	img, err := PrepareTexture(encodePNG(t, 64, 32), 0)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	b := img.Bounds()
	for _, p := range []image.Point{b.Min, {b.Max.X - 1, b.Max.Y - 1}} {
		r, _, bl, _ := img.At(p.X, p.Y).RGBA()
		assert.Equal(t, uint32(0xffff), r, "left half is red at %v", p)
		assert.Zero(t, bl)
	}
}

func TestPrepareTextureResizes(t *testing.T) {
	img, err := PrepareTexture(encodePNG(t, 256, 64), 64)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestPrepareTextureErrors(t *testing.T) {
	_, err := PrepareTexture([]byte("not an image"), 0)
	assert.Error(t, err)

	_, err = PrepareTexture(encodePNG(t, 1, 1), 0)
	assert.Error(t, err)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{400, 100, 200, 200, 50},
		{100, 400, 200, 50, 200},
		{5000, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		w, h := FitWithin(tt.w, tt.h, tt.max)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}
