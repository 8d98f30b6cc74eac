package rowan

import "reflect"

// Component is the interface for behaviors attached to an Object.
// Embed BaseComponent to satisfy it:
//
//	type Spinner struct {
//	    rowan.BaseComponent
//	    Speed float64
//	}
//
//	spinner := rowan.Ensure[Spinner](obj)
type Component interface {
	// Owner returns the object this component is attached to, or nil.
	Owner() *Object

	attach(*Object)
	enabledFlag() bool
	setEnabledFlag(bool)
}

// BaseComponent provides the owner and enabled plumbing every component needs.
type BaseComponent struct {
	owner   *Object
	enabled bool
}

// Owner returns the object this component is attached to, or nil if the
// component has not been added to an object.
func (b *BaseComponent) Owner() *Object { return b.owner }

// Enabled returns the component's enabled flag.
func (b *BaseComponent) Enabled() bool { return b.enabled }

func (b *BaseComponent) attach(o *Object) {
	b.owner = o
	b.enabled = true
}

func (b *BaseComponent) enabledFlag() bool     { return b.enabled }
func (b *BaseComponent) setEnabledFlag(v bool) { b.enabled = v }

// Optional lifecycle hooks. SetEnabled calls these on real state changes.
type enableHook interface{ OnEnable() }
type disableHook interface{ OnDisable() }

// --- Object component storage ---

// AddComponent attaches c to this object and returns it. The component is
// enabled on attach. Panics if c is already attached to an object.
func (o *Object) AddComponent(c Component) Component {
	if c.Owner() != nil {
		panic("rowan: component is already attached")
	}
	c.attach(o)
	o.components = append(o.components, c)
	if h, ok := c.(enableHook); ok {
		h.OnEnable()
	}
	return c
}

// Components returns the attached components in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (o *Object) Components() []Component {
	return o.components
}

// --- Generic add-or-get ---

// Ensure returns the object's existing component of type T, or attaches and
// returns a new one. It never creates a duplicate: two Ensure calls for the
// same type return the identical pointer.
func Ensure[T any, PT interface {
	Component
	*T
}](o *Object) PT {
	if existing, ok := Find[T, PT](o); ok {
		return existing
	}
	c := PT(new(T))
	o.AddComponent(c)
	return c
}

// Find returns the object's component of type T, or (nil, false) if none is
// attached.
func Find[T any, PT interface {
	Component
	*T
}](o *Object) (PT, bool) {
	for _, c := range o.components {
		if existing, ok := c.(PT); ok {
			return existing, true
		}
	}
	return nil, false
}

// EnsureType is the non-generic form of Ensure for callers holding a
// reflect.Type. t may be the struct type or the pointer type; the pointer
// type must implement Component. Returns nil if it does not.
func EnsureType(o *Object, t reflect.Type) Component {
	if t == nil {
		return nil
	}
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	for _, c := range o.components {
		if reflect.TypeOf(c) == t {
			return c
		}
	}
	created, ok := reflect.New(t.Elem()).Interface().(Component)
	if !ok {
		return nil
	}
	o.AddComponent(created)
	return created
}

// --- Component state helpers ---

// Missing reports whether c is absent: a nil reference (including a typed
// nil pointer stored in the interface), an unattached component, or a
// component whose owning object has been destroyed.
func Missing(c Component) bool {
	if c == nil {
		return true
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	o := c.Owner()
	return o == nil || o.IsDestroyed()
}

// SetEnabled sets the component's enabled flag, firing OnEnable/OnDisable
// hooks on real state changes only. No-op when c is missing.
func SetEnabled(c Component, enabled bool) {
	if Missing(c) {
		return
	}
	if c.enabledFlag() == enabled {
		return
	}
	c.setEnabledFlag(enabled)
	if enabled {
		if h, ok := c.(enableHook); ok {
			h.OnEnable()
		}
	} else if h, ok := c.(disableHook); ok {
		h.OnDisable()
	}
}

// Restart disables and re-enables the component so its OnEnable hook runs
// again. A component that was already disabled ends up enabled.
func Restart(c Component) {
	SetEnabled(c, false)
	SetEnabled(c, true)
}
