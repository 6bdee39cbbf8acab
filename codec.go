package skeletrace

// Pixel byte layout: bit 0 is the foreground mask (1 = ink), bit 1 is
// the transient removal marker set during a Zhang–Suen sub-iteration
// and cleared by CommitByte. All other bits are never consulted.
const (
	foregroundBit = 1 << 0
	markerBit     = 1 << 1
)

// Foreground reports whether b's foreground bit is set.
func Foreground(b byte) bool {
	return b&foregroundBit != 0
}

// Marker reports whether b's removal marker is set.
func Marker(b byte) bool {
	return b&markerBit != 0
}

// Mark sets b's removal marker, leaving the foreground bit untouched.
func Mark(b byte) byte {
	return b | markerBit
}

// CommitByte clears the foreground bit wherever the marker is set and
// zeroes the marker, so the result is always 0 or 1. It is idempotent:
// applying it to its own output leaves the byte unchanged.
func CommitByte(b byte) byte {
	fg := b & foregroundBit
	mk := (b & markerBit) >> 1
	return fg &^ mk
}
