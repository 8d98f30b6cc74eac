package rowan

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform computes the object's local affine matrix from its transform
// properties. Returns [a, b, c, d, tx, ty].
//
// Composition order: Scale -> Rotate -> Translate(X, Y).
func localTransform(o *Object) [6]float64 {
	sin, cos := math.Sincos(o.Rotation)
	return [6]float64{
		cos * o.ScaleX,
		sin * o.ScaleX,
		-sin * o.ScaleY,
		cos * o.ScaleY,
		o.X,
		o.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldTransform walks the parent chain and composes the object's world
// matrix. The tree stays small in helper-layer use, so no dirty caching.
func worldTransform(o *Object) [6]float64 {
	local := localTransform(o)
	if o.Parent == nil {
		return local
	}
	return multiplyAffine(worldTransform(o.Parent), local)
}

// WorldPosition returns the object's origin in world space.
func (o *Object) WorldPosition() (x, y float64) {
	m := worldTransform(o)
	return m[4], m[5]
}

// WorldToLocal converts a world-space point to this object's local coordinate space.
func (o *Object) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(worldTransform(o))
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (o *Object) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(worldTransform(o), lx, ly)
}
