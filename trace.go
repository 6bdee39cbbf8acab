package skeletrace

import (
	"log/slog"
	"math"
)

// SeamDirection identifies which axis a tracer seam runs along.
type SeamDirection int

const (
	// SeamHorizontal is a row seam splitting a chunk into a top and
	// bottom half.
	SeamHorizontal SeamDirection = iota
	// SeamVertical is a column seam splitting a chunk into a left and
	// right half.
	SeamVertical
)

// TraceImage traces the whole image (buf, width, height) with the given
// chunk size and recursion-depth cap, a convenience wrapper around Trace
// for the common case of tracing an entire thinned raster.
func TraceImage(buf []byte, width, height, chunkSize, maxIter int, opts ...TraceOption) []*Fragment {
	return Trace(buf, width, height, 0, 0, width, height, chunkSize, maxIter, opts...)
}

// Trace recursively selects a horizontal or vertical seam through
// (x, y, w, h) minimizing foreground pixel count along the seam,
// recurses on the two children, and merges their fragments across the
// seam. Recursion bottoms out at chunks no larger than chunkSize in
// both dimensions, which are handed to ChunkToFragments. maxIter bounds
// recursion depth as a safety cap; Trace returns nil once it is spent.
func Trace(buf []byte, width, height, x, y, w, h, chunkSize, maxIter int, opts ...TraceOption) []*Fragment {
	o := defaultTraceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return trace(buf, width, height, x, y, w, h, chunkSize, maxIter, o.logger)
}

func trace(buf []byte, width, height, x, y, w, h, chunkSize, maxIter int, log *slog.Logger) []*Fragment {
	if maxIter == 0 {
		log.Warn("trace recursion cap reached", slog.Int("x", x), slog.Int("y", y), slog.Int("w", w), slog.Int("h", h))
		return nil
	}
	if w <= chunkSize && h <= chunkSize {
		return ChunkToFragments(buf, width, height, x, y, w, h)
	}

	seam, ok := selectSeam(buf, width, height, x, y, w, h, chunkSize)
	if !ok {
		log.Warn("no valid seam, falling back to chunk leaf", slog.Int("x", x), slog.Int("y", y), slog.Int("w", w), slog.Int("h", h))
		return ChunkToFragments(buf, width, height, x, y, w, h)
	}

	var (
		ax, ay, aw, ah int
		bx, by, bw, bh int
		mergeDir       SeamDirection
	)
	if seam.dir == SeamHorizontal {
		mi := seam.coord
		ax, ay, aw, ah = x, y, w, mi-y
		bx, by, bw, bh = x, mi, w, y+h-mi
		// A horizontal (row) seam stacks its children vertically; the
		// shared border is a horizontal line, so matching endpoints
		// compare Y, which Merge selects via SeamVertical.
		mergeDir = SeamVertical
	} else {
		mj := seam.coord
		ax, ay, aw, ah = x, y, mj-x, h
		bx, by, bw, bh = mj, y, x+w-mj, h
		// A vertical (column) seam arranges its children side by
		// side; the shared border is a vertical line, so matching
		// endpoints compare X, which Merge selects via SeamHorizontal.
		mergeDir = SeamHorizontal
	}

	var fragsA, fragsB []*Fragment
	if hasForeground(buf, width, ax, ay, aw, ah) {
		fragsA = trace(buf, width, height, ax, ay, aw, ah, chunkSize, maxIter-1, log)
	}
	if hasForeground(buf, width, bx, by, bw, bh) {
		fragsB = trace(buf, width, height, bx, by, bw, bh, chunkSize, maxIter-1, log)
	}

	log.Debug("trace split chunk",
		slog.Int("x", x), slog.Int("y", y), slog.Int("w", w), slog.Int("h", h),
		slog.Int("seam", seam.coord))

	return Merge(fragsA, fragsB, seam.coord, mergeDir)
}

type seamCandidate struct {
	valid      bool
	dir        SeamDirection
	coord      int
	score      int
	centrality int
}

// selectSeam attempts both seam orientations and returns the one with
// minimum foreground score along the seam, ties broken by nearness to
// the chunk's centerline. It reports ok=false if neither orientation
// finds a candidate with an all-background boundary guard.
func selectSeam(buf []byte, width, height, x, y, w, h, chunkSize int) (seamCandidate, bool) {
	best := seamCandidate{score: width + height, centrality: math.MaxInt}

	if h > chunkSize {
		for i := y + 3; i < y+h-3; i++ {
			if !bgAt(buf, width, i, x) || !bgAt(buf, width, i-1, x) ||
				!bgAt(buf, width, i, x+w-1) || !bgAt(buf, width, i-1, x+w-1) {
				continue
			}
			s := 0
			for j := x; j < x+w; j++ {
				s += fg(buf, width, j, i) + fg(buf, width, j, i-1)
			}
			centrality := absInt(i - (y + h/2))
			if s < best.score || (s == best.score && centrality < best.centrality) {
				best = seamCandidate{valid: true, dir: SeamHorizontal, coord: i, score: s, centrality: centrality}
			}
		}
	}

	if w > chunkSize {
		for j := x + 3; j < x+w-3; j++ {
			if !bgAt(buf, width, y, j) || !bgAt(buf, width, y+h-1, j) ||
				!bgAt(buf, width, y, j-1) || !bgAt(buf, width, y+h-1, j-1) {
				continue
			}
			s := 0
			for i := y; i < y+h; i++ {
				s += fg(buf, width, j, i) + fg(buf, width, j-1, i)
			}
			centrality := absInt(j - (x + w/2))
			if s < best.score || (s == best.score && centrality < best.centrality) {
				best = seamCandidate{valid: true, dir: SeamVertical, coord: j, score: s, centrality: centrality}
			}
		}
	}

	return best, best.valid
}

// bgAt reports whether (row, col) is background; row/col are given in
// (i, j) = (row, col) form to match the seam boundary-guard cells.
func bgAt(buf []byte, width, row, col int) bool {
	return !Foreground(buf[row*width+col])
}

func hasForeground(buf []byte, width, x, y, w, h int) bool {
	for yy := y; yy < y+h; yy++ {
		row := yy * width
		for xx := x; xx < x+w; xx++ {
			if Foreground(buf[row+xx]) {
				return true
			}
		}
	}
	return false
}
