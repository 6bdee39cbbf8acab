package skeletrace

import "testing"

func TestTraceMaxIterZeroReturnsNil(t *testing.T) {
	const w, h = 20, 20
	buf := make([]byte, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			buf[y*w+x] = 1
		}
	}
	if got := Trace(buf, w, h, 0, 0, w, h, 3, 0); got != nil {
		t.Errorf("maxIter=0: got %d fragments, want nil", len(got))
	}
}

func TestTraceImageSmallImageIsSingleChunk(t *testing.T) {
	const w, h = 5, 5
	buf := make([]byte, w*h)
	for x := 0; x < w; x++ {
		buf[2*w+x] = 1
	}

	frags := TraceImage(buf, w, h, 10, 999)
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	ends := map[Point]bool{frags[0].First(): true, frags[0].Last(): true}
	if !ends[(Point{0, 2})] || !ends[(Point{4, 2})] {
		t.Errorf("endpoints = %v, %v; want (0,2) and (4,2)", frags[0].First(), frags[0].Last())
	}
}

// A full-height vertical stroke blocks every candidate seam column with
// its own foreground pixels (the boundary guard at row 0 always sees a
// foreground cell on the line), so selectSeam finds no valid candidate
// and Trace falls back to treating the whole region as a single
// ChunkToFragments leaf even though it exceeds chunkSize.
func TestTraceFallsBackWhenNoValidSeam(t *testing.T) {
	const w, h = 7, 3
	buf := make([]byte, w*h)
	for y := 0; y < h; y++ {
		buf[y*w+3] = 1
	}

	frags := TraceImage(buf, w, h, 3, 999)
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	f := frags[0]
	if f.Len() != 2 {
		t.Fatalf("fragment has %d points, want 2", f.Len())
	}
	ends := map[Point]bool{f.First(): true, f.Last(): true}
	if !ends[(Point{3, 0})] || !ends[(Point{3, 2})] {
		t.Errorf("endpoints = %v, %v; want (3,0) and (3,2)", f.First(), f.Last())
	}
}

func TestTraceEmptyImageProducesNoFragments(t *testing.T) {
	const w, h = 16, 16
	buf := make([]byte, w*h)
	frags := TraceImage(buf, w, h, 4, 999)
	if len(frags) != 0 {
		t.Errorf("got %d fragments for an empty image, want 0", len(frags))
	}
}
