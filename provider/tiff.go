package provider

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/tiff"
)

// OpenTIFF decodes a single-band (Geo)TIFF from opts.Path and returns a
// MemoryProvider over its binarized samples. TIFF is the natural
// real-world format for the georeferenced rasters the core is designed
// around; golang.org/x/image/tiff is the ecosystem decoder for it.
//
// Each decoded sample is binarized to the core's foreground convention
// (bit 0 of each output byte) by taking the low bit of its gray value;
// opts.Width and opts.Height are ignored and derived from the image.
func OpenTIFF(opts Options) (Provider, error) {
	f, err := os.Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("provider: open %s: %w", opts.Path, err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("provider: decode tiff %s: %w", opts.Path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	mp := NewMemory(width, height, opts.TileWidth, opts.TileHeight)
	data := mp.Bytes()

	gray, isGray := img.(*image.Gray)
	for y := 0; y < height; y++ {
		row := y * width
		srcY := bounds.Min.Y + y
		for x := 0; x < width; x++ {
			srcX := bounds.Min.X + x
			var sample uint8
			if isGray {
				sample = gray.GrayAt(srcX, srcY).Y
			} else {
				sample = color.GrayModel.Convert(img.At(srcX, srcY)).(color.Gray).Y
			}
			data[row+x] = sample & 1
		}
	}

	return mp, nil
}

func init() {
	Register("tiff", OpenTIFF)
}
