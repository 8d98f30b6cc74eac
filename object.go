package rowan

// --- ID counter ---

// objectIDCounter is a plain counter; rowan is single-threaded.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// --- Object ---

// Object is the scene element every helper in this package operates on.
// A single flat struct covers plain containers and anchored UI rectangles;
// the rect capability is an optional attachment queried via Rect.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Object
	children []*Object

	// Transform (local)
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Alpha    float64

	// Grouping
	Layer int

	// Optional anchored-rectangle capability.
	rect *RectTransform

	// Attached components, in attachment order.
	components []Component

	// Activation callbacks (nil by default; zero cost when unused).
	// SetActive fires these on every call; TrySetActive only on a real change.
	OnActivate   func()
	OnDeactivate func()

	active    bool
	destroyed bool
}

// objectDefaults sets the common default field values shared by all constructors.
func objectDefaults(o *Object) {
	o.ID = nextObjectID()
	o.ScaleX = 1
	o.ScaleY = 1
	o.Alpha = 1
	o.active = true
}

// New creates an active object with identity transform and no rect.
func New(name string) *Object {
	o := &Object{Name: name}
	objectDefaults(o)
	return o
}

// NewRect creates an object with an attached RectTransform stretched to its
// parent (anchors 0..1, zero offsets).
func NewRect(name string) *Object {
	o := New(name)
	o.rect = newRectTransform()
	return o
}

// Rect returns the object's RectTransform, or nil if it has none.
// Layout setters treat a nil rect as "not a rectangle" and do nothing.
func (o *Object) Rect() *RectTransform {
	return o.rect
}

// EnsureRect returns the object's RectTransform, attaching a default one
// first if the object has none.
func (o *Object) EnsureRect() *RectTransform {
	if o.rect == nil {
		o.rect = newRectTransform()
	}
	return o.rect
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *Object) AddChild(child *Object) {
	if child == nil {
		panic("rowan: cannot add nil child")
	}
	if isAncestor(child, o) {
		panic("rowan: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = o
	o.children = append(o.children, child)
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *Object) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.removeChildByPtr(o)
	o.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *Object) ChildAt(index int) *Object {
	return o.children[index]
}

// --- Sibling order ---

// SiblingIndex returns this object's position among its parent's children,
// or -1 if it has no parent.
func (o *Object) SiblingIndex() int {
	if o.Parent == nil {
		return -1
	}
	for i, c := range o.Parent.children {
		if c == o {
			return i
		}
	}
	return -1
}

// SetSiblingIndex moves this object to the given position among its parent's
// children. The index is clamped into range. No-op if the object has no parent.
func (o *Object) SetSiblingIndex(index int) {
	p := o.Parent
	if p == nil {
		return
	}
	nc := len(p.children)
	if index < 0 {
		index = 0
	}
	if index >= nc {
		index = nc - 1
	}
	oldIndex := o.SiblingIndex()
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(p.children[oldIndex:], p.children[oldIndex+1:index+1])
	} else {
		copy(p.children[index+1:], p.children[index:oldIndex])
	}
	p.children[index] = o
}

// SetAsFirstSibling moves this object to index 0 among its siblings.
func (o *Object) SetAsFirstSibling() {
	o.SetSiblingIndex(0)
}

// SetAsLastSibling moves this object to the last index among its siblings.
func (o *Object) SetAsLastSibling() {
	if o.Parent == nil {
		return
	}
	o.SetSiblingIndex(len(o.Parent.children) - 1)
}

// SetParent reparents this object. When worldSpace is true, the local
// position is rewritten so the object's world position is unchanged by the
// reparent. Passing a nil parent detaches the object.
func (o *Object) SetParent(parent *Object, worldSpace bool) {
	var wx, wy float64
	if worldSpace {
		wx, wy = o.WorldPosition()
	}
	if parent == nil {
		o.RemoveFromParent()
	} else {
		parent.AddChild(o)
	}
	if worldSpace {
		if parent == nil {
			o.X, o.Y = wx, wy
			return
		}
		inv := invertAffine(worldTransform(parent))
		o.X, o.Y = transformPoint(inv, wx, wy)
	}
}

// --- Activation ---

// IsActive returns the object's own active flag (not the hierarchy state).
func (o *Object) IsActive() bool {
	return o.active
}

// SetActive stores the active flag and fires the matching activation
// callback, whether or not the value changed.
func (o *Object) SetActive(active bool) {
	o.active = active
	if active {
		if o.OnActivate != nil {
			o.OnActivate()
		}
	} else if o.OnDeactivate != nil {
		o.OnDeactivate()
	}
}

// TrySetActive sets the active flag only if it differs from the current
// value, avoiding a redundant activation callback. Reports whether the flag
// changed.
func (o *Object) TrySetActive(active bool) bool {
	if o.active == active {
		return false
	}
	o.SetActive(active)
	return true
}

// --- Layer ---

// SetLayerByName assigns the object to the layer registered under name.
// Returns false and leaves the layer unchanged if the name is unknown.
func (o *Object) SetLayerByName(name string) bool {
	idx, ok := LayerIndex(name)
	if !ok {
		return false
	}
	o.Layer = idx
	return true
}

// --- Destruction ---

// Destroy removes this object from its parent, marks it as destroyed, and
// recursively destroys all descendants. Components are detached.
func (o *Object) Destroy() {
	if o.destroyed {
		return
	}
	o.RemoveFromParent()
	o.destroy()
}

func (o *Object) destroy() {
	o.destroyed = true
	o.ID = 0
	for _, child := range o.children {
		child.Parent = nil
		child.destroy()
	}
	o.children = nil
	o.Parent = nil
	o.rect = nil
	o.components = nil
	o.OnActivate = nil
	o.OnDeactivate = nil
}

// IsDestroyed returns true if this object has been destroyed.
func (o *Object) IsDestroyed() bool {
	return o.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of obj.
func isAncestor(candidate, obj *Object) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
