package skeletrace

// Commit applies CommitByte to every pixel in the window
// [winY, winY+winH) x [winX, winX+winW), clamped to the image bounds
// (width, height). Unlike MarkSubIteration there is no 1-pixel border
// clamp: commit is a local operation that only reads the byte it
// writes. Commit is idempotent.
func Commit(buf []byte, width, height, winX, winY, winW, winH int) {
	yStart := maxInt(winY, 0)
	yEnd := minInt(winY+winH, height)
	xStart := maxInt(winX, 0)
	xEnd := minInt(winX+winW, width)

	for y := yStart; y < yEnd; y++ {
		row := y * width
		for x := xStart; x < xEnd; x++ {
			idx := row + x
			buf[idx] = CommitByte(buf[idx])
		}
	}
}
