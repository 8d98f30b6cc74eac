package rowan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Blueprint is a declarative YAML description of an object tree. Load one
// with LoadBlueprint, build it once with Build, and clone the result with
// Instantiate per spawn.
//
//	name: hud
//	layer: UI
//	rect:
//	  anchor_max: {x: 1, y: 1}
//	children:
//	  - name: health_bar
//	    rect:
//	      anchor_min: {x: 0, y: 1}
//	      anchor_max: {x: 0, y: 1}
//	      offset_max: {x: 200, y: 24}
type Blueprint struct {
	Name      string        `yaml:"name"`
	Active    *bool         `yaml:"active"`
	Layer     string        `yaml:"layer"`
	Transform TransformSpec `yaml:"transform"`
	Rect      *RectSpec     `yaml:"rect"`
	Children  []Blueprint   `yaml:"children"`
}

// TransformSpec carries the local transform fields of a blueprint node.
// Omitted scale and alpha default to 1.
type TransformSpec struct {
	Position Vec2     `yaml:"position"`
	Rotation float64  `yaml:"rotation"`
	Scale    *Vec2    `yaml:"scale"`
	Alpha    *float64 `yaml:"alpha"`
}

// RectSpec carries the anchored-rectangle fields of a blueprint node.
// An omitted pivot defaults to the center.
type RectSpec struct {
	AnchorMin Vec2  `yaml:"anchor_min"`
	AnchorMax Vec2  `yaml:"anchor_max"`
	OffsetMin Vec2  `yaml:"offset_min"`
	OffsetMax Vec2  `yaml:"offset_max"`
	Pivot     *Vec2 `yaml:"pivot"`
}

// LoadBlueprint parses a YAML blueprint.
func LoadBlueprint(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("rowan: unmarshal blueprint: %w", err)
	}
	if bp.Name == "" {
		return nil, fmt.Errorf("rowan: blueprint has no name")
	}
	return &bp, nil
}

// Build constructs the object tree the blueprint describes.
func (b *Blueprint) Build() *Object {
	o := New(b.Name)

	o.X = b.Transform.Position.X
	o.Y = b.Transform.Position.Y
	o.Rotation = b.Transform.Rotation
	if b.Transform.Scale != nil {
		o.ScaleX = b.Transform.Scale.X
		o.ScaleY = b.Transform.Scale.Y
	}
	if b.Transform.Alpha != nil {
		o.Alpha = *b.Transform.Alpha
	}

	if b.Layer != "" {
		o.SetLayerByName(b.Layer)
	}

	if b.Rect != nil {
		r := o.EnsureRect()
		r.AnchorMin = b.Rect.AnchorMin
		r.AnchorMax = b.Rect.AnchorMax
		r.OffsetMin = b.Rect.OffsetMin
		r.OffsetMax = b.Rect.OffsetMax
		if b.Rect.Pivot != nil {
			r.Pivot = *b.Rect.Pivot
		}
	}

	for i := range b.Children {
		o.AddChild(b.Children[i].Build())
	}

	if b.Active != nil && !*b.Active {
		o.SetActive(false)
	}

	return o
}
