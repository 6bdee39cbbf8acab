package skeletrace

// Merge drains fragments from c1 into c0, concatenating any fragment in
// c1 whose endpoint touches the seam at seamCoordinate onto a matching
// fragment in c0, and appending the rest verbatim to the returned slice.
// c0's fragments are mutated in place. The c1 slice itself is not
// modified, but a c1 fragment spliced in reversed order is reversed in
// place.
//
// dir selects which coordinate is compared against seamCoordinate:
// SeamHorizontal compares X, SeamVertical compares Y — see Trace's
// seam/merge-direction mapping for why this is the inverse of the
// seam's own row/column orientation.
func Merge(c0, c1 []*Fragment, seamCoordinate int, dir SeamDirection) []*Fragment {
	if len(c0) == 0 {
		return c1
	}
	if len(c1) == 0 {
		return c0
	}

	consumed := make([]bool, len(c1))
	for i := len(c1) - 1; i >= 0; i-- {
		if tryMerge(c0, c1[i], seamCoordinate, dir) {
			consumed[i] = true
		}
	}

	for i, frag := range c1 {
		if !consumed[i] {
			c0 = append(c0, frag)
		}
	}
	return c0
}

func axis(p Point, dir SeamDirection) int {
	if dir == SeamHorizontal {
		return p.X
	}
	return p.Y
}

func offAxis(p Point, dir SeamDirection) int {
	if dir == SeamHorizontal {
		return p.Y
	}
	return p.X
}

type mergeMode int

const (
	modeAppendLastFirst  mergeMode = iota // c0.last  <-> c1.first, append
	modeAppendLastLast                     // c0.last  <-> c1.last,  reverse c1 then append
	modePrependFirstFirst                  // c0.first <-> c1.first, reverse c1 then prepend
	modePrependFirstLast                   // c0.first <-> c1.last,  prepend
)

// tryMerge attempts, in fixed mode order, to splice frag onto some
// fragment in c0 at seamCoordinate. It mutates the matching c0 fragment
// in place and reports whether a merge occurred.
func tryMerge(c0 []*Fragment, frag *Fragment, seamCoordinate int, dir SeamDirection) bool {
	for _, mode := range [4]mergeMode{modeAppendLastFirst, modeAppendLastLast, modePrependFirstFirst, modePrependFirstLast} {
		var c1End Point
		switch mode {
		case modeAppendLastFirst, modePrependFirstFirst:
			c1End = frag.First()
		default:
			c1End = frag.Last()
		}
		if axis(c1End, dir) != seamCoordinate {
			continue
		}

		bestIdx := -1
		bestOffDiff := 0
		for j, c0Frag := range c0 {
			var c0End Point
			switch mode {
			case modeAppendLastFirst, modeAppendLastLast:
				c0End = c0Frag.Last()
			default:
				c0End = c0Frag.First()
			}
			if absInt(axis(c0End, dir)-seamCoordinate) > 1 {
				continue
			}
			offDiff := absInt(offAxis(c0End, dir) - offAxis(c1End, dir))
			if bestIdx == -1 || offDiff < bestOffDiff {
				bestIdx, bestOffDiff = j, offDiff
			}
		}
		if bestIdx == -1 || bestOffDiff >= 4 {
			continue
		}

		target := c0[bestIdx]
		switch mode {
		case modeAppendLastFirst:
			target.Extend(frag)
		case modeAppendLastLast:
			frag.Reverse()
			target.Extend(frag)
		case modePrependFirstFirst:
			frag.Reverse()
			target.PrependFragment(frag)
		case modePrependFirstLast:
			target.PrependFragment(frag)
		}
		return true
	}
	return false
}
