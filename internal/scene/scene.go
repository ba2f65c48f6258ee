package scene

import (
	"image"
	"image/color"

	"earthquake-explorer/internal/assets"
	"earthquake-explorer/internal/geom"
	"earthquake-explorer/internal/logger"
	"earthquake-explorer/internal/tour"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Geometry of the cut-away Earth, in world units.
const (
	earthRadius  = 15
	mantleRadius = 14
	coreRadius   = 5
	// crustInset keeps the brown crust disc just behind the orange mantle disc so they do not z-fight.
	crustInset   = 0.01
	arrowRadius  = 0.5
	arrowHeight  = 1
	arrowSlices  = 4
	sphereRings  = 32
	sphereSlices = 64
	discSides    = 64
	cameraFovy   = 75
)

var (
	crustColor  = rl.NewColor(0x67, 0x33, 0x00, 255)
	mantleColor = rl.NewColor(0xFF, 0x82, 0x13, 255)
	coreColor   = rl.NewColor(0xFF, 0xCE, 0x00, 255)
	// untexturedEarth is used when the Earth map failed to load.
	untexturedEarth = rl.NewColor(40, 90, 160, 255)

	tierColors = map[tour.Tier]color.RGBA{
		tour.TierRed:       rl.NewColor(0xFF, 0x00, 0x00, 255),
		tour.TierOrange:    rl.NewColor(0xFF, 0x38, 0x00, 255),
		tour.TierYellow:    rl.NewColor(0xFF, 0xCE, 0x00, 255),
		tour.TierLightBlue: rl.NewColor(0x00, 0x94, 0xFF, 255),
		tour.TierBlue:      rl.NewColor(0x00, 0x0A, 0xFF, 255),
	}
)

// Part names in the mesh cache.
const (
	partEarth  = "earth"
	partCrust  = "crust"
	partMantle = "mantle"
	partCore   = "core"
	partArrow  = "arrow"
)

// Options selects the assets the scene loads.
type Options struct {
	EarthTexture   string // search term under assets/textures
	CaptionFont    string // search term under assets/fonts
	MaxTextureSize int
}

type preparedTexture struct {
	path string
	img  *image.RGBA
	err  error
}

// Scene draws a tour.State: the cut-away Earth, the heat arrows and the caption panels.
// Asset bytes load in the background from New; GPU resources are created on the main thread in Update and Draw
// once the window exists and the bytes have arrived.
type Scene struct {
	Camera rl.Camera3D

	log   *logger.Logger
	parts *parts

	textureCh   chan preparedTexture
	hasEarthTex bool

	fontCh   <-chan assets.Result
	captions *captions
}

// New starts loading the Earth texture and the caption font and returns a scene with the startup camera.
func New(log *logger.Logger, loc assets.Locator, opts Options) *Scene {
	s := &Scene{
		log:       log,
		parts:     newParts(),
		textureCh: make(chan preparedTexture, 1),
		fontCh:    loc.LoadAsync(assets.Fonts, opts.CaptionFont),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera(tour.NewState())

	go func() {
		r := <-loc.LoadAsync(assets.Textures, opts.EarthTexture)
		if r.Err != nil {
			s.textureCh <- preparedTexture{err: r.Err}
			return
		}
		img, err := assets.PrepareTexture(r.Data, opts.MaxTextureSize)
		s.textureCh <- preparedTexture{path: r.Path, img: img, err: err}
	}()
	return s
}

// PanelsReady reports whether every caption panel has been built. Mode switches are ignored until it does.
func (s *Scene) PanelsReady() bool {
	return s.captions != nil
}

// CaptionFont returns the loaded caption font. ok is false until the captions are ready.
func (s *Scene) CaptionFont() (font rl.Font, ok bool) {
	if s.captions == nil {
		return rl.Font{}, false
	}
	return s.captions.font, true
}

// Update polls background loads and uploads finished ones to the GPU. Call once per frame on the main thread.
func (s *Scene) Update() {
	s.ensureParts()
	select {
	case t := <-s.textureCh:
		s.uploadTexture(t)
	default:
	}
	if s.fontCh == nil {
		return
	}
	if r, ok := assets.Poll(s.fontCh); ok {
		s.fontCh = nil
		if r.Err != nil {
			s.log.Logf("caption font: %v", r.Err)
			return
		}
		c, err := buildCaptions(r.Path, r.Data)
		if err != nil {
			s.log.Logf("caption font: %v", err)
			return
		}
		s.captions = c
		s.log.Logf("captions ready (%s)", r.Path)
	}
}

func (s *Scene) uploadTexture(t preparedTexture) {
	if t.err != nil {
		s.log.Logf("earth texture: %v", t.err)
		return
	}
	img := rl.NewImageFromImage(t.img)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		s.log.Logf("earth texture: upload of %s failed", t.path)
		return
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	s.hasEarthTex = true
	s.parts.setTexture(partEarth, tex)
	s.log.Logf("earth texture loaded (%s, %dx%d)", t.path, tex.Width, tex.Height)
}

// ensureParts generates the meshes once, after the window/OpenGL context exists.
func (s *Scene) ensureParts() {
	s.parts.ensure(partEarth, func() rl.Mesh { return rl.GenMeshHemiSphere(earthRadius, sphereRings, sphereSlices) }, untexturedEarth)
	s.parts.ensure(partCrust, func() rl.Mesh { return rl.GenMeshPoly(discSides, earthRadius) }, crustColor)
	s.parts.ensure(partMantle, func() rl.Mesh { return rl.GenMeshPoly(discSides, mantleRadius) }, mantleColor)
	s.parts.ensure(partCore, func() rl.Mesh { return rl.GenMeshSphere(coreRadius, sphereRings, sphereSlices) }, coreColor)
	s.parts.ensure(partArrow, func() rl.Mesh { return rl.GenMeshCone(arrowRadius, arrowHeight, arrowSlices) }, coreColor)
}

func (s *Scene) syncCamera(st tour.State) {
	s.Camera.Position = toRL(st.Camera.Position)
	s.Camera.Target = toRL(st.Camera.Target)
}

// Draw renders st. Call between BeginDrawing and EndDrawing, before 2D overlays.
func (s *Scene) Draw(st tour.State) {
	s.ensureParts()
	s.syncCamera(st)

	rl.BeginMode3D(s.Camera)
	rl.DisableBackfaceCulling()

	earthTint := untexturedEarth
	if s.hasEarthTex {
		earthTint = rl.White
	}
	shake := rl.MatrixTranslate(st.EarthOffset.X, st.EarthOffset.Y, 0)
	// The hemisphere mesh opens toward -Y; turn it so the cut face looks down +Z at the camera.
	s.parts.draw(partEarth, earthTint, rl.MatrixMultiply(rl.MatrixRotateX(-rl.Pi/2), shake))
	s.parts.draw(partCrust, crustColor, rl.MatrixMultiply(rl.MatrixRotateX(rl.Pi/2),
		rl.MatrixMultiply(rl.MatrixTranslate(0, 0, -crustInset), shake)))
	s.parts.draw(partMantle, mantleColor, rl.MatrixRotateX(rl.Pi/2))
	s.parts.draw(partCore, coreColor, rl.MatrixIdentity())

	for _, a := range st.CoreArrows {
		s.drawArrow(a, coreColor)
	}
	for i, a := range st.ConvectionArrows {
		s.drawArrow(a, tierColors[tour.ConvectionArrowTier(i)])
	}

	if s.captions != nil {
		for _, p := range st.VisiblePanels() {
			s.captions.draw(p, st.Panels[p])
		}
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

func (s *Scene) drawArrow(a tour.Arrow, c color.RGBA) {
	if a.Opacity <= 0 {
		return
	}
	c.A = uint8(a.Opacity * 255)
	// Cone meshes have their base at the origin; centre them first so rotation happens about the middle.
	m := rl.MatrixMultiply(rl.MatrixTranslate(0, -arrowHeight/2.0, 0), eulerXYZ(a.Rotation))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(a.Position.X, a.Position.Y, a.Position.Z))
	s.parts.draw(partArrow, c, m)
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	if s.captions != nil {
		s.captions.unload()
		s.captions = nil
	}
	// Unloading the earth material frees its bound texture too.
	s.parts.unload()
	s.hasEarthTex = false
}

// eulerXYZ builds the rotation for intrinsic X-then-Y-then-Z Euler angles, which applies Z first to the vertex.
func eulerXYZ(r geom.Vec3) rl.Matrix {
	m := rl.MatrixMultiply(rl.MatrixRotateZ(r.Z), rl.MatrixRotateY(r.Y))
	return rl.MatrixMultiply(m, rl.MatrixRotateX(r.X))
}

func toRL(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
