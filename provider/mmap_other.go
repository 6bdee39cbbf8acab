//go:build !unix

package provider

import "errors"

// ErrUnsupportedPlatform is returned by the mmap backend on platforms
// without a POSIX mmap(2) (e.g. plain Windows builds without the unix
// build tag). Use the memory backend there instead.
var ErrUnsupportedPlatform = errors.New("provider: mmap backend requires a unix target")

func openMmapUnsupported(Options) (Provider, error) {
	return nil, ErrUnsupportedPlatform
}

func init() {
	Register("mmap", openMmapUnsupported)
}
