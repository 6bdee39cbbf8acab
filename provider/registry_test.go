package provider

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOpenUnknownBackend(t *testing.T) {
	c := qt.New(t)
	_, err := Open("does-not-exist", Options{})
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(errors.Is(err, ErrBackendNotFound), qt.IsTrue)
}

func TestRegisterOverwritesExistingName(t *testing.T) {
	c := qt.New(t)
	calls := 0
	Register("test-overwrite", func(Options) (Provider, error) {
		calls++
		return NewMemory(1, 1, 1, 1), nil
	})
	Register("test-overwrite", func(Options) (Provider, error) {
		calls += 100
		return NewMemory(2, 2, 1, 1), nil
	})

	p, err := Open("test-overwrite", Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(p.Width(), qt.Equals, 2)
	c.Assert(calls, qt.Equals, 100)
}

func TestBackendsIncludesBuiltins(t *testing.T) {
	c := qt.New(t)
	names := Backends()
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	c.Assert(seen["memory"], qt.IsTrue)
	c.Assert(seen["mmap"], qt.IsTrue)
	c.Assert(seen["tiff"], qt.IsTrue)
}
