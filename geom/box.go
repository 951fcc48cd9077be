package geom

// Box is an immutable axis-aligned bounding box given by min/max corner
// vectors. The zero value Box{} is the canonical empty box.
//
// Boxes are closed on all faces: a point on a face is contained, and two
// boxes touching at a face overlap.
type Box struct {
	min, max Vector
	// nonEmpty tags boxes constructed with valid corners; the zero value
	// stays the one canonical empty representation.
	nonEmpty bool
}

// Empty returns the canonical empty box.
//
// Empty is the identity for Union, contains nothing and overlaps nothing.
func Empty() Box {
	return Box{}
}

// New creates a box from min/max corners.
//
// Non-finite coordinates are rejected with ErrNonFinite. Corners that do not
// satisfy min ≤ max on every axis denote no volume at all and collapse to the
// canonical empty box.
func New(min, max Vector) (Box, error) {
	if !min.IsFinite() || !max.IsFinite() {
		return Box{}, ErrNonFinite
	}
	if !min.LessEq(max) {
		return Box{}, nil
	}
	return Box{min: min, max: max, nonEmpty: true}, nil
}

// FromCenter creates a box from a center point and half-extents per axis.
//
// Negative extent components collapse to the empty box, as with New.
func FromCenter(center, extents Vector) (Box, error) {
	return New(center.Sub(extents), center.Add(extents))
}

// Min returns the minimum corner. The empty box has the zero vector.
func (b Box) Min() Vector {
	return b.min
}

// Max returns the maximum corner. The empty box has the zero vector.
func (b Box) Max() Vector {
	return b.max
}

// IsEmpty reports whether b is the empty box.
func (b Box) IsEmpty() bool {
	return !b.nonEmpty
}

// Equal reports structural equality. All empty boxes are equal.
func (b Box) Equal(c Box) bool {
	if b.IsEmpty() || c.IsEmpty() {
		return b.IsEmpty() && c.IsEmpty()
	}
	return b.min.Equal(c.min) && b.max.Equal(c.max)
}

// Union returns the smallest box containing both b and c.
//
// The empty box is the union identity.
func (b Box) Union(c Box) Box {
	if b.IsEmpty() {
		return c
	}
	if c.IsEmpty() {
		return b
	}
	return Box{
		min:      b.min.Min(c.min),
		max:      b.max.Max(c.max),
		nonEmpty: true,
	}
}

// ContainsPoint reports whether point p lies within b, faces included.
func (b Box) ContainsPoint(p Vector) bool {
	if b.IsEmpty() {
		return false
	}
	return b.min.LessEq(p) && p.LessEq(b.max)
}

// Contains reports whether c lies completely within b, faces included.
//
// The empty box contains nothing, and no box contains the empty box.
func (b Box) Contains(c Box) bool {
	if b.IsEmpty() || c.IsEmpty() {
		return false
	}
	return b.min.LessEq(c.min) && c.max.LessEq(b.max)
}

// Overlaps reports whether b and c share at least one point.
//
// Boxes touching at a face or edge overlap. The empty box overlaps nothing.
func (b Box) Overlaps(c Box) bool {
	if b.IsEmpty() || c.IsEmpty() {
		return false
	}
	return b.min.X <= c.max.X && b.max.X >= c.min.X &&
		b.min.Y <= c.max.Y && b.max.Y >= c.min.Y &&
		b.min.Z <= c.max.Z && b.max.Z >= c.min.Z
}

// Volume returns the product of the per-axis extents.
//
// Degenerate boxes (zero extent on some axis) and the empty box have
// volume 0.
func (b Box) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}
	d := b.max.Sub(b.min)
	return d.X * d.Y * d.Z
}
