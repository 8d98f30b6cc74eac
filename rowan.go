package rowan

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens at shader submission time (see Material.Apply).
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and anchor
// fractions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Axis selects a layout axis for size operations.
type Axis uint8

const (
	AxisHorizontal Axis = iota // width / X axis
	AxisVertical               // height / Y axis
)

// --- Layer registry ---

// Layers are shared, name-addressed render/collision groups. The registry is
// package-global (rowan is single-threaded, like the rest of the scene API).
var layerNames = map[string]int{
	"Default": 0,
	"UI":      5,
}

// RegisterLayer maps a layer name to an index. Re-registering a name
// overwrites the previous index.
func RegisterLayer(name string, index int) {
	layerNames[name] = index
}

// LayerIndex returns the index registered for name, or (0, false) if the
// name is unknown.
func LayerIndex(name string) (int, bool) {
	idx, ok := layerNames[name]
	return idx, ok
}
