//go:build unix

package provider

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mmapProvider memory-maps a file and exposes it as a Provider. This is
// the concrete backend for the "memory-mapped pixel buffer" the core
// is built around: the core never copies the image, and mmapProvider
// never issues a sync until Flush is called.
type mmapProvider struct {
	file                  *os.File
	data                  []byte
	width, height         int
	tileWidth, tileHeight int
}

// OpenMmap opens opts.Path for read-write and maps it MAP_SHARED. The
// file's size must equal opts.Width * opts.Height.
func OpenMmap(opts Options) (Provider, error) {
	f, err := os.OpenFile(opts.Path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("provider: open %s: %w", opts.Path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("provider: stat %s: %w", opts.Path, err)
	}
	size := opts.Width * opts.Height
	if int64(size) != info.Size() {
		f.Close()
		return nil, ErrSizeMismatch
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("provider: mmap %s: %w", opts.Path, err)
	}

	return &mmapProvider{
		file: f, data: data,
		width: opts.Width, height: opts.Height,
		tileWidth: opts.TileWidth, tileHeight: opts.TileHeight,
	}, nil
}

func (p *mmapProvider) Bytes() []byte   { return p.data }
func (p *mmapProvider) Width() int      { return p.width }
func (p *mmapProvider) Height() int     { return p.height }
func (p *mmapProvider) TileWidth() int  { return p.tileWidth }
func (p *mmapProvider) TileHeight() int { return p.tileHeight }

// Flush calls msync(MS_SYNC) so the durability contract (the provider
// is asked to flush the buffer after the engine returns) is met without
// relying on page eviction timing.
func (p *mmapProvider) Flush() error {
	if p.data == nil {
		return nil
	}
	return unix.Msync(p.data, unix.MS_SYNC)
}

func (p *mmapProvider) Close() error {
	if p.data == nil {
		return nil
	}
	err := unix.Munmap(p.data)
	p.data = nil
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	Register("mmap", OpenMmap)
}
