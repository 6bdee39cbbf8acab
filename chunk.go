package skeletrace

// ChunkToFragments produces fragments for a small chunk (x, y, w, h) of
// a thinned raster by walking its boundary clockwise and connecting
// each outgoing stroke crossing to a representative interior point.
//
// Chunks of width or height <= 2 have no usable interior or boundary
// transitions and return nil. Trace reaches such a chunk only when the
// region it was given is itself narrower than 3 pixels, since its seam
// splits leave both children at least 3 pixels across.
func ChunkToFragments(buf []byte, width, height, x, y, w, h int) []*Fragment {
	if w <= 2 || h <= 2 {
		return nil
	}

	cx, cy := x+w/2, y+h/2
	boundary := boundaryWalk(x, y, w, h)

	var fragments []*Fragment
	on := false
	var li, lj int
	for _, c := range boundary {
		i, j := c.row, c.col
		cur := Foreground(buf[i*width+j])
		switch {
		case cur && !on:
			fragments = append(fragments, NewFragment(Point{X: j, Y: i}, Point{X: cx, Y: cy}))
		case !cur && on:
			last := fragments[len(fragments)-1]
			entry := last.First()
			last.SetFirst(Point{X: (entry.X + lj) / 2, Y: (entry.Y + li) / 2})
		}
		li, lj = i, j
		on = cur
	}

	switch {
	case len(fragments) == 2:
		joined := NewFragment(fragments[0].First(), fragments[1].First())
		return []*Fragment{joined}
	case len(fragments) >= 3:
		centroid := centroidPixel(buf, width, x, y, w, h)
		for _, f := range fragments {
			f.pts[f.Len()-1] = centroid
		}
	}
	return fragments
}

type boundaryCoord struct{ row, col int }

// boundaryWalk enumerates the 2w+2h-4 boundary pixels of (x, y, w, h)
// clockwise, starting at (y, x): top row left-to-right, right column
// top-to-bottom, bottom row right-to-left, left column bottom-to-top.
func boundaryWalk(x, y, w, h int) []boundaryCoord {
	coords := make([]boundaryCoord, 0, 2*w+2*h-4)
	for j := x; j < x+w; j++ {
		coords = append(coords, boundaryCoord{row: y, col: j})
	}
	for i := y + 1; i < y+h; i++ {
		coords = append(coords, boundaryCoord{row: i, col: x + w - 1})
	}
	for j := x + w - 2; j >= x; j-- {
		coords = append(coords, boundaryCoord{row: y + h - 1, col: j})
	}
	for i := y + h - 2; i >= y+1; i-- {
		coords = append(coords, boundaryCoord{row: i, col: x})
	}
	return coords
}

// centroidPixel picks the interior pixel of (x, y, w, h) with the
// largest 3x3 foreground box-sum, breaking ties by Manhattan distance
// to the chunk's center (nearer wins).
func centroidPixel(buf []byte, width, x, y, w, h int) Point {
	best := Point{X: x + w/2, Y: y + h/2}
	bestSum := -1
	bestDist := 0
	cx, cy := x+w/2, y+h/2

	for py := y + 1; py < y+h-1; py++ {
		for px := x + 1; px < x+w-1; px++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if Foreground(buf[(py+dy)*width+(px+dx)]) {
						sum++
					}
				}
			}
			dist := absInt(px-cx) + absInt(py-cy)
			if sum > bestSum || (sum == bestSum && dist < bestDist) {
				bestSum = sum
				bestDist = dist
				best = Point{X: px, Y: py}
			}
		}
	}
	return best
}
