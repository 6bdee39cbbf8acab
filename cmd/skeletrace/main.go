// Command skeletrace thins a binary raster and traces its skeleton into
// polyline fragments, writing one CSV line per fragment vertex.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/gogpu/skeletrace"
	"github.com/gogpu/skeletrace/provider"
)

func main() {
	var (
		input     = flag.String("input", "", "path to the backing raster file")
		backend   = flag.String("backend", "mmap", "provider backend: mmap or tiff")
		width     = flag.Int("width", 0, "raster width in pixels (mmap backend only)")
		height    = flag.Int("height", 0, "raster height in pixels (mmap backend only)")
		tileW     = flag.Int("tile-w", 256, "thinning tile width")
		tileH     = flag.Int("tile-h", 256, "thinning tile height")
		chunkSize = flag.Int("chunk-size", 10, "tracer recursion leaf size")
		maxIter   = flag.Int("max-iter", 999, "tracer recursion depth cap")
		output    = flag.String("output", "fragments.csv", "output CSV path")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("skeletrace: -input is required")
	}

	p, err := provider.Open(*backend, provider.Options{
		Path:       *input,
		Width:      *width,
		Height:     *height,
		TileWidth:  *tileW,
		TileHeight: *tileH,
	})
	if err != nil {
		log.Fatalf("skeletrace: opening raster: %v", err)
	}
	defer p.Close()

	if err := skeletrace.Thin(p.Bytes(), p.Width(), p.Height(), p.TileWidth(), p.TileHeight()); err != nil {
		log.Fatalf("skeletrace: thinning: %v", err)
	}
	if err := p.Flush(); err != nil {
		log.Fatalf("skeletrace: flushing raster: %v", err)
	}

	fragments := skeletrace.TraceImage(p.Bytes(), p.Width(), p.Height(), *chunkSize, *maxIter)

	if err := writeCSV(*output, fragments); err != nil {
		log.Fatalf("skeletrace: writing %s: %v", *output, err)
	}

	log.Printf("skeletrace: wrote %d fragments to %s\n", len(fragments), *output)
}

func writeCSV(path string, fragments []*skeletrace.Fragment) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	for id, frag := range fragments {
		fragID := strconv.Itoa(id)
		for _, pt := range frag.Points() {
			if err := w.Write([]string{fragID, strconv.Itoa(pt.X), strconv.Itoa(pt.Y)}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
