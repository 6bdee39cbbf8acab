package skeletrace

// MarkSubIteration runs one Zhang–Suen sub-iteration over the window
// (winX, winY, winW, winH) of an image of size (width, height), setting
// the removal marker on every pixel that satisfies the sub-iteration's
// survival rules. iter selects which neighbor triples must be
// background: 0 for the first sub-iteration, 1 for the second.
//
// The loop range is clamped to [max(winY,1), min(winY+winH,height-1))
// x [max(winX,1), min(winX+winW,width-1)) so every examined pixel's
// eight neighbors lie inside the image; the outer 1-pixel border is
// never examined or modified. Only the marker bit of in-range bytes is
// altered.
//
// MarkSubIteration reports whether it newly set at least one marker.
func MarkSubIteration(buf []byte, width, height, winX, winY, winW, winH, iter int) bool {
	yStart := maxInt(winY, 1)
	yEnd := minInt(winY+winH, height-1)
	xStart := maxInt(winX, 1)
	xEnd := minInt(winX+winW, width-1)

	changed := false
	for y := yStart; y < yEnd; y++ {
		row := y * width
		for x := xStart; x < xEnd; x++ {
			idx := row + x
			b := buf[idx]
			if Marker(b) {
				continue
			}
			if !Foreground(b) {
				continue
			}
			if survives(buf, width, x, y, iter) {
				buf[idx] = Mark(b)
				changed = true
			}
		}
	}
	return changed
}

// survives evaluates the Zhang–Suen predicate for the foreground pixel
// at (x, y), which must have all eight neighbors in range. It assumes
// p1 (the center pixel) is already known foreground.
func survives(buf []byte, width, x, y, iter int) bool {
	p2 := fg(buf, width, x, y-1)
	p3 := fg(buf, width, x+1, y-1)
	p4 := fg(buf, width, x+1, y)
	p5 := fg(buf, width, x+1, y+1)
	p6 := fg(buf, width, x, y+1)
	p7 := fg(buf, width, x-1, y+1)
	p8 := fg(buf, width, x-1, y)
	p9 := fg(buf, width, x-1, y-1)

	neighbors := [8]int{p2, p3, p4, p5, p6, p7, p8, p9}

	b := p2 + p3 + p4 + p5 + p6 + p7 + p8 + p9
	if b < 2 || b > 6 {
		return false
	}

	a := 0
	for i := 0; i < 8; i++ {
		cur := neighbors[i]
		next := neighbors[(i+1)%8]
		if cur == 0 && next == 1 {
			a++
		}
	}
	if a != 1 {
		return false
	}

	var m1, m2 int
	if iter == 0 {
		m1 = p2 * p4 * p6
		m2 = p4 * p6 * p8
	} else {
		m1 = p2 * p4 * p8
		m2 = p2 * p6 * p8
	}
	return m1 == 0 && m2 == 0
}

// fg returns the foreground bit at (x, y) as 0 or 1. The caller must
// ensure (x, y) is in range; MarkSubIteration's clamped loop range
// guarantees this for every neighbor of an examined center pixel.
func fg(buf []byte, width, x, y int) int {
	if Foreground(buf[y*width+x]) {
		return 1
	}
	return 0
}
