package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// propertyKind distinguishes the typed slots a material exposes.
type propertyKind uint8

const (
	propFloat propertyKind = iota
	propColor
	propTexture
)

// Material wraps a Kage shader with a declared set of named, typed
// properties. A property must be declared before it can be read or written;
// the Try accessors return false for unknown names (or a name declared with
// a different type) without mutating anything.
type Material struct {
	shader *ebiten.Shader

	kinds    map[string]propertyKind
	floats   map[string]float64
	colors   map[string]Color
	textures map[string]*ebiten.Image
	texSlots map[string]int

	// Persistent per-color float32 buffers stored in the uniforms map once
	// at declare time (avoids a per-frame slice escape, same trick as the
	// built-in filters).
	colorBufs map[string]*[4]float32
	uniforms  map[string]any
	shaderOp  ebiten.DrawRectShaderOptions
}

// NewMaterial creates a material around the given shader with no properties
// declared.
func NewMaterial(shader *ebiten.Shader) *Material {
	return &Material{
		shader:    shader,
		kinds:     make(map[string]propertyKind),
		floats:    make(map[string]float64),
		colors:    make(map[string]Color),
		textures:  make(map[string]*ebiten.Image),
		texSlots:  make(map[string]int),
		colorBufs: make(map[string]*[4]float32),
		uniforms:  make(map[string]any),
	}
}

// DeclareFloat declares a float property with a default value. The name
// must match a float uniform in the shader source.
func (m *Material) DeclareFloat(name string, def float64) *Material {
	m.kinds[name] = propFloat
	m.floats[name] = def
	return m
}

// DeclareColor declares a color property with a default value. The name
// must match a vec4 uniform in the shader source.
func (m *Material) DeclareColor(name string, def Color) *Material {
	m.kinds[name] = propColor
	m.colors[name] = def
	buf := &[4]float32{}
	m.colorBufs[name] = buf
	m.uniforms[name] = buf[:]
	return m
}

// DeclareTexture declares a texture property bound to the given shader image
// slot. Slot 0 is the source image filled by Apply; user textures use slots
// 1-3.
func (m *Material) DeclareTexture(name string, slot int) *Material {
	m.kinds[name] = propTexture
	m.texSlots[name] = slot
	m.textures[name] = nil
	return m
}

// --- Safe accessors ---

// TryGetFloat returns the float property's value, or (0, false) if name is
// not a declared float property.
func (m *Material) TryGetFloat(name string) (float64, bool) {
	if m.kinds[name] != propFloat {
		return 0, false
	}
	v, ok := m.floats[name]
	return v, ok
}

// TrySetFloat sets the float property and returns true, or returns false
// without mutation if name is not a declared float property.
func (m *Material) TrySetFloat(name string, v float64) bool {
	if _, ok := m.floats[name]; !ok || m.kinds[name] != propFloat {
		return false
	}
	m.floats[name] = v
	return true
}

// TryGetColor returns the color property's value, or (Color{}, false) if
// name is not a declared color property.
func (m *Material) TryGetColor(name string) (Color, bool) {
	if m.kinds[name] != propColor {
		return Color{}, false
	}
	v, ok := m.colors[name]
	return v, ok
}

// TrySetColor sets the color property and returns true, or returns false
// without mutation if name is not a declared color property.
func (m *Material) TrySetColor(name string, v Color) bool {
	if _, ok := m.colors[name]; !ok || m.kinds[name] != propColor {
		return false
	}
	m.colors[name] = v
	return true
}

// TryGetTexture returns the texture property's value, or (nil, false) if
// name is not a declared texture property.
func (m *Material) TryGetTexture(name string) (*ebiten.Image, bool) {
	if m.kinds[name] != propTexture {
		return nil, false
	}
	v, ok := m.textures[name]
	return v, ok
}

// TrySetTexture sets the texture property and returns true, or returns
// false without mutation if name is not a declared texture property.
func (m *Material) TrySetTexture(name string, img *ebiten.Image) bool {
	if _, ok := m.textures[name]; !ok || m.kinds[name] != propTexture {
		return false
	}
	m.textures[name] = img
	return true
}

// --- Submission ---

// Apply renders src into dst through the material's shader with the current
// property values as uniforms. Colors are premultiplied, matching the
// convention of the shader filters. No-op if the material has no shader.
func (m *Material) Apply(src, dst *ebiten.Image) {
	if m.shader == nil {
		return
	}
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	for name, v := range m.floats {
		m.uniforms[name] = float32(v)
	}
	for name, c := range m.colors {
		buf := m.colorBufs[name]
		buf[0] = float32(c.R * c.A)
		buf[1] = float32(c.G * c.A)
		buf[2] = float32(c.B * c.A)
		buf[3] = float32(c.A)
	}
	bounds := src.Bounds()
	m.shaderOp.Images[0] = src
	for name, img := range m.textures {
		slot := m.texSlots[name]
		if slot >= 1 && slot < len(m.shaderOp.Images) {
			m.shaderOp.Images[slot] = img
		}
	}
	m.shaderOp.Uniforms = m.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), m.shader, &m.shaderOp)
}
