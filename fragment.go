package skeletrace

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Fragment is an ordered polyline over integer pixel coordinates,
// produced by ChunkToFragments and joined across seams by Merge.
type Fragment struct {
	pts []Point
}

// NewFragment creates a fragment from the given points, in order.
func NewFragment(pts ...Point) *Fragment {
	f := &Fragment{pts: make([]Point, len(pts))}
	copy(f.pts, pts)
	return f
}

// Len returns the number of points in the fragment.
func (f *Fragment) Len() int { return len(f.pts) }

// Points returns the fragment's points. The returned slice aliases the
// fragment's internal storage and must not be retained across further
// mutation of f.
func (f *Fragment) Points() []Point { return f.pts }

// First returns the fragment's first point.
func (f *Fragment) First() Point { return f.pts[0] }

// Last returns the fragment's last point.
func (f *Fragment) Last() Point { return f.pts[len(f.pts)-1] }

// SetFirst replaces the fragment's first point.
func (f *Fragment) SetFirst(p Point) { f.pts[0] = p }

// Append adds p after the fragment's last point.
func (f *Fragment) Append(p Point) { f.pts = append(f.pts, p) }

// Prepend adds p before the fragment's first point.
func (f *Fragment) Prepend(p Point) {
	f.pts = append([]Point{p}, f.pts...)
}

// Extend appends other's points after the fragment's last point.
func (f *Fragment) Extend(other *Fragment) {
	f.pts = append(f.pts, other.pts...)
}

// PrependFragment inserts other's points before the fragment's first point.
func (f *Fragment) PrependFragment(other *Fragment) {
	f.pts = append(append([]Point{}, other.pts...), f.pts...)
}

// Reverse reverses the fragment's point order in place.
func (f *Fragment) Reverse() {
	for i, j := 0, len(f.pts)-1; i < j; i, j = i+1, j-1 {
		f.pts[i], f.pts[j] = f.pts[j], f.pts[i]
	}
}
