package geom

import "math"

// Axes is the number of spatial axes boxes and vectors are defined over.
const Axes = 3

// Vector is an immutable 3-component coordinate value.
type Vector struct {
	X, Y, Z float64
}

// V creates a vector from its components.
func V(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// At returns the component for axis 0, 1 or 2.
func (v Vector) At(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geom: axis out of range")
}

// Add returns the componentwise sum v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Min returns the componentwise minimum of v and w.
func (v Vector) Min(w Vector) Vector {
	return Vector{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

// Max returns the componentwise maximum of v and w.
func (v Vector) Max(w Vector) Vector {
	return Vector{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Equal reports exact componentwise equality.
func (v Vector) Equal(w Vector) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// EqualWithEpsilon reports componentwise equality up to epsilon.
func (v Vector) EqualWithEpsilon(w Vector, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon &&
		math.Abs(v.Y-w.Y) <= epsilon &&
		math.Abs(v.Z-w.Z) <= epsilon
}

// LessEq reports whether v ≤ w on every axis.
func (v Vector) LessEq(w Vector) bool {
	return v.X <= w.X && v.Y <= w.Y && v.Z <= w.Z
}

// IsFinite reports whether all components are finite numbers (no NaN, no Inf).
func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
