// Package skeletrace thins large binary raster images to a one-pixel-wide
// skeleton using a tiled, convergence-driven Zhang–Suen pass, then
// vectorizes the skeleton into polyline fragments with a divide-and-conquer
// tracer.
//
// The package operates on a caller-owned, row-major byte buffer (see
// the provider subpackage for memory-mapped and file-backed sources) and
// never allocates a shadow copy of the image: each pixel byte carries both
// its current foreground state and a transient removal marker (see
// [Foreground], [Marker], [Mark], [CommitByte]).
//
// Typical use:
//
//	if err := skeletrace.Thin(buf, width, height, 256, 256); err != nil {
//		log.Fatal(err)
//	}
//	fragments := skeletrace.TraceImage(buf, width, height, 10, 999)
package skeletrace
