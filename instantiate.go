package rowan

import "reflect"

// Clone deep-copies this object and its descendants. The root clone's name
// gets a " (clone)" suffix so spawned trees stay distinguishable in scene
// dumps; the Instantiate helpers below strip that back to the source name.
// Components are copied field-by-field and re-attached to the clone;
// activation callbacks are not carried over.
func (o *Object) Clone() *Object {
	c := o.cloneTree()
	c.Name = o.Name + " (clone)"
	return c
}

func (o *Object) cloneTree() *Object {
	c := &Object{
		Name:     o.Name,
		X:        o.X,
		Y:        o.Y,
		Rotation: o.Rotation,
		ScaleX:   o.ScaleX,
		ScaleY:   o.ScaleY,
		Alpha:    o.Alpha,
		Layer:    o.Layer,
		active:   o.active,
	}
	c.ID = nextObjectID()
	if o.rect != nil {
		rectCopy := *o.rect
		c.rect = &rectCopy
	}
	for _, comp := range o.components {
		c.components = append(c.components, cloneComponent(comp, c))
	}
	for _, child := range o.children {
		cc := child.cloneTree()
		cc.Parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// cloneComponent copies a component's exported state onto a fresh instance
// attached to owner. The embedded BaseComponent plumbing is re-pointed at
// the new owner; the enabled flag is preserved.
func cloneComponent(src Component, owner *Object) Component {
	v := reflect.ValueOf(src).Elem()
	dst := reflect.New(v.Type())
	dst.Elem().Set(v)
	c := dst.Interface().(Component)
	c.attach(owner)
	c.setEnabledFlag(src.enabledFlag())
	return c
}

// Instantiate clones src with no parent. Unlike the raw Clone primitive,
// the clone's name is guaranteed to equal the source's name.
func Instantiate(src *Object) *Object {
	c := src.Clone()
	c.Name = src.Name
	return c
}

// InstantiateIn clones src under parent. When worldSpace is true, the
// clone's local position is rewritten so it keeps the source's world
// position under the new parent.
func InstantiateIn(src *Object, parent *Object, worldSpace bool) *Object {
	c := Instantiate(src)
	if parent != nil {
		wx, wy := src.WorldPosition()
		parent.AddChild(c)
		if worldSpace {
			inv := invertAffine(worldTransform(parent))
			c.X, c.Y = transformPoint(inv, wx, wy)
		}
	}
	return c
}

// InstantiateAt clones src at the given world position and rotation,
// optionally under parent (nil for no parent).
func InstantiateAt(src *Object, pos Vec2, rot float64, parent *Object) *Object {
	c := Instantiate(src)
	if parent != nil {
		parent.AddChild(c)
		c.X, c.Y = transformPoint(invertAffine(worldTransform(parent)), pos.X, pos.Y)
	} else {
		c.X, c.Y = pos.X, pos.Y
	}
	c.Rotation = rot
	return c
}
