package skeletrace

import (
	"reflect"
	"testing"
)

func TestMergeEmptySides(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{0, 0}, Point{1, 1})}
	if got := Merge(c0, nil, 5, SeamHorizontal); !reflect.DeepEqual(got, c0) {
		t.Errorf("Merge(c0, nil) = %v, want c0 unchanged", got)
	}
	c1 := []*Fragment{NewFragment(Point{0, 0}, Point{1, 1})}
	if got := Merge(nil, c1, 5, SeamHorizontal); !reflect.DeepEqual(got, c1) {
		t.Errorf("Merge(nil, c1) = %v, want c1 unchanged", got)
	}
}

func TestMergeAppendLastFirst(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{0, 10}, Point{5, 10})}
	c1 := []*Fragment{NewFragment(Point{5, 11}, Point{9, 11})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 1 {
		t.Fatalf("got %d fragments, want 1", len(got))
	}
	want := []Point{{0, 10}, {5, 10}, {5, 11}, {9, 11}}
	if !reflect.DeepEqual(got[0].Points(), want) {
		t.Errorf("merged points = %v, want %v", got[0].Points(), want)
	}
}

func TestMergeAppendLastLast(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{0, 10}, Point{5, 10})}
	c1 := []*Fragment{NewFragment(Point{9, 11}, Point{5, 11})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 1 {
		t.Fatalf("got %d fragments, want 1", len(got))
	}
	want := []Point{{0, 10}, {5, 10}, {5, 11}, {9, 11}}
	if !reflect.DeepEqual(got[0].Points(), want) {
		t.Errorf("merged points = %v, want %v", got[0].Points(), want)
	}
}

func TestMergePrependFirstFirst(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{5, 10}, Point{9, 10})}
	c1 := []*Fragment{NewFragment(Point{5, 11}, Point{1, 11})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 1 {
		t.Fatalf("got %d fragments, want 1", len(got))
	}
	want := []Point{{1, 11}, {5, 11}, {5, 10}, {9, 10}}
	if !reflect.DeepEqual(got[0].Points(), want) {
		t.Errorf("merged points = %v, want %v", got[0].Points(), want)
	}
}

func TestMergePrependFirstLast(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{5, 10}, Point{9, 10})}
	c1 := []*Fragment{NewFragment(Point{1, 11}, Point{5, 11})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 1 {
		t.Fatalf("got %d fragments, want 1", len(got))
	}
	want := []Point{{1, 11}, {5, 11}, {5, 10}, {9, 10}}
	if !reflect.DeepEqual(got[0].Points(), want) {
		t.Errorf("merged points = %v, want %v", got[0].Points(), want)
	}
}

// A fragment whose endpoints never land near the seam is appended
// verbatim rather than spliced onto anything in c0.
func TestMergeNoMatchAppendsVerbatim(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{0, 0}, Point{1, 0})}
	c1 := []*Fragment{NewFragment(Point{40, 40}, Point{41, 41})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 2 {
		t.Fatalf("got %d fragments, want 2", len(got))
	}
	if got[0] != c0[0] || got[1] != c1[0] {
		t.Errorf("fragments were not preserved verbatim")
	}
}

// An off-axis gap of 4 or more pixels disqualifies an otherwise
// axis-matching candidate.
func TestMergeOffAxisToleranceExceeded(t *testing.T) {
	c0 := []*Fragment{NewFragment(Point{0, 10}, Point{5, 10})}
	c1 := []*Fragment{NewFragment(Point{5, 20}, Point{9, 20})}

	got := Merge(c0, c1, 5, SeamHorizontal)
	if len(got) != 2 {
		t.Fatalf("got %d fragments, want 2 (no merge should occur)", len(got))
	}
}
