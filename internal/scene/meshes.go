package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// part is a mesh and the material it is drawn with.
type part struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// parts maps part names to mesh+material. Meshes are generated on first use
// so GPU resources are allocated after the window/OpenGL context exists.
type parts struct {
	cache map[string]part
}

func newParts() *parts {
	return &parts{cache: make(map[string]part)}
}

// ensure returns the named part, generating its mesh with gen and a default material tinted c on first call.
func (p *parts) ensure(name string, gen func() rl.Mesh, c color.RGBA) part {
	if cached, ok := p.cache[name]; ok {
		return cached
	}
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	created := part{mesh: gen(), mtl: mtl}
	p.cache[name] = created
	return created
}

// setTexture binds tex as the albedo map of the named part. The tint is reset to white so the texture shows unmodified.
func (p *parts) setTexture(name string, tex rl.Texture2D) {
	cached, ok := p.cache[name]
	if !ok {
		return
	}
	rl.SetMaterialTexture(&cached.mtl, rl.MapAlbedo, tex)
	if albedo := cached.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
}

// draw draws the named part with transform, tinting it c. The part must already exist.
func (p *parts) draw(name string, c color.RGBA, transform rl.Matrix) {
	cached, ok := p.cache[name]
	if !ok {
		return
	}
	if albedo := cached.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	rl.DrawMesh(cached.mesh, cached.mtl, transform)
}

// unload frees every mesh and material.
func (p *parts) unload() {
	for name, cached := range p.cache {
		rl.UnloadMesh(&cached.mesh)
		rl.UnloadMaterial(cached.mtl)
		delete(p.cache, name)
	}
}
