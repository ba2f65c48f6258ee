package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"earthquake-explorer/internal/tour"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// captionFontPx is the raster size of the caption font. Panels scale it to their world glyph size.
	captionFontPx = 64
	// captionLineGap is extra space between caption lines, as a fraction of the line height.
	captionLineGap = 0.25
	captionSpacing = 1
)

// panel is one caption baked into a texture, with its size in world units.
type panel struct {
	tex           rl.Texture2D
	width, height float32
	anchor        tour.Anchor
}

type captions struct {
	font   rl.Font
	panels [tour.PanelCount]panel
}

// buildCaptions loads the font from data and bakes every caption into a texture. Runs on the main thread.
func buildCaptions(path string, data []byte) (*captions, error) {
	ext := strings.ToLower(filepath.Ext(path))
	font := rl.LoadFontFromMemory(ext, data, captionFontPx, nil)
	if !rl.IsFontValid(font) {
		return nil, fmt.Errorf("load font %s: invalid font data", path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	c := &captions{font: font}
	for p := tour.Panel(0); p < tour.PanelCount; p++ {
		built, err := bakeCaption(font, tour.Captions[p])
		if err != nil {
			c.unload()
			return nil, fmt.Errorf("caption %s: %w", p, err)
		}
		c.panels[p] = built
	}
	return c, nil
}

// bakeCaption renders each line separately and stacks them on a transparent image, left aligned.
func bakeCaption(font rl.Font, caption tour.Caption) (panel, error) {
	lines := strings.Split(caption.Text, "\n")
	lineHeight := float32(captionFontPx) * (1 + captionLineGap)
	var width float32
	for _, line := range lines {
		width = max(width, rl.MeasureTextEx(font, line, captionFontPx, captionSpacing).X)
	}
	imgW := int(width) + 1
	imgH := int(lineHeight*float32(len(lines))) + 1
	canvas := rl.GenImageColor(imgW, imgH, rl.Blank)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		img := rl.ImageTextEx(font, line, captionFontPx, captionSpacing, rl.White)
		src := rl.NewRectangle(0, 0, float32(img.Width), float32(img.Height))
		dst := rl.NewRectangle(0, float32(i)*lineHeight, float32(img.Width), float32(img.Height))
		rl.ImageDraw(canvas, img, src, dst, rl.White)
		rl.UnloadImage(img)
	}
	tex := rl.LoadTextureFromImage(canvas)
	rl.UnloadImage(canvas)
	if !rl.IsTextureValid(tex) {
		return panel{}, fmt.Errorf("upload %dx%d texture failed", imgW, imgH)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	// GlyphSize is the world height of one line of letters.
	scale := caption.GlyphSize / captionFontPx
	return panel{
		tex:    tex,
		width:  float32(imgW) * scale,
		height: float32(imgH) * scale,
		anchor: caption.Anchor,
	}, nil
}

// draw draws caption p as a textured quad at pose. Must be called inside BeginMode3D.
func (c *captions) draw(p tour.Panel, pose tour.PanelPose) {
	pn := c.panels[p]
	left, top := float32(0), float32(0)
	if pn.anchor == tour.AnchorCenter {
		left, top = -pn.width/2, pn.height/2
	}
	right, bottom := left+pn.width, top-pn.height

	rl.PushMatrix()
	rl.Translatef(pose.Position.X, pose.Position.Y, pose.Position.Z)
	rl.Rotatef(pose.Rotation.X*rl.Rad2deg, 1, 0, 0)
	rl.Rotatef(pose.Rotation.Y*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(pose.Rotation.Z*rl.Rad2deg, 0, 0, 1)

	rl.SetTexture(pn.tex.ID)
	rl.Begin(rl.Quads)
	rl.Color4ub(255, 255, 255, 255)
	rl.Normal3f(0, 0, 1)
	rl.TexCoord2f(0, 0)
	rl.Vertex3f(left, top, 0)
	rl.TexCoord2f(0, 1)
	rl.Vertex3f(left, bottom, 0)
	rl.TexCoord2f(1, 1)
	rl.Vertex3f(right, bottom, 0)
	rl.TexCoord2f(1, 0)
	rl.Vertex3f(right, top, 0)
	rl.End()
	rl.SetTexture(0)

	rl.PopMatrix()
}

func (c *captions) unload() {
	for i := range c.panels {
		if c.panels[i].tex.ID != 0 {
			rl.UnloadTexture(c.panels[i].tex)
			c.panels[i] = panel{}
		}
	}
	rl.UnloadFont(c.font)
}
