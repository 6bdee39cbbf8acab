package provider

// MemoryProvider is an in-process Provider backed by a plain []byte.
// It is the default backend: no file or memory mapping involved, which
// makes it the natural choice for tests and for rasters small enough
// to fit comfortably in the process heap.
type MemoryProvider struct {
	data                  []byte
	width, height         int
	tileWidth, tileHeight int
}

// NewMemory allocates a zeroed width x height raster.
func NewMemory(width, height, tileWidth, tileHeight int) *MemoryProvider {
	return &MemoryProvider{
		data:       make([]byte, width*height),
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
	}
}

// NewMemoryFromBytes wraps an existing buffer without copying it.
// len(data) must equal width*height.
func NewMemoryFromBytes(data []byte, width, height, tileWidth, tileHeight int) *MemoryProvider {
	return &MemoryProvider{
		data:       data,
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
	}
}

func (p *MemoryProvider) Bytes() []byte   { return p.data }
func (p *MemoryProvider) Width() int      { return p.width }
func (p *MemoryProvider) Height() int     { return p.height }
func (p *MemoryProvider) TileWidth() int  { return p.tileWidth }
func (p *MemoryProvider) TileHeight() int { return p.tileHeight }
func (p *MemoryProvider) Flush() error    { return nil }
func (p *MemoryProvider) Close() error    { return nil }

func init() {
	Register("memory", func(opts Options) (Provider, error) {
		return NewMemory(opts.Width, opts.Height, opts.TileWidth, opts.TileHeight), nil
	})
}
