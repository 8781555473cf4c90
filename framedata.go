package tim2

const (
	swizzleTileWidth  = 16
	swizzleTileHeight = 8
)

// FrameData is the decoded pixel payload of a frame. When Indexed is true,
// Indices holds one byte per pixel; otherwise Pixels holds one true-color
// sample per pixel. The Indexed tag (rather than a nil-slice check) is
// what discriminates the variant, so a zero-length frame still reports
// the right kind.
type FrameData struct {
	Indexed bool
	Indices []byte
	Pixels  []Pixel
}

// Len reports the pixel count represented by this FrameData.
func (d FrameData) Len() int {
	if d.Indexed {
		return len(d.Indices)
	}
	return len(d.Pixels)
}

// readFrameData reads header.ImageSize bytes and shapes them into indices
// or true-color pixels, then applies the conditional tile unswizzle.
func readFrameData(c *cursor, header FrameHeader) (FrameData, error) {
	slice, err := c.take(int(header.ImageSize))
	if err != nil {
		return FrameData{}, err
	}

	if header.PaletteSize > 0 {
		indices := unpackIndices(slice, header.Bpp)

		if header.NeedsUnswizzle() {
			indices = unswizzle(indices, header.Width, header.Height)
		}

		return FrameData{Indexed: true, Indices: indices}, nil
	}

	pixelSize := int(header.Bpp) / 8
	pixels, err := decodeColors(slice, pixelSize)
	if err != nil {
		return FrameData{}, err
	}

	if header.NeedsUnswizzle() {
		pixels = unswizzle(pixels, header.Width, header.Height)
	}

	return FrameData{Pixels: pixels}, nil
}

// unpackIndices shapes a raw byte slice into one index per pixel. For
// bpp==4, each source byte holds two indices: the high nibble first, then
// the low nibble. For bpp==8, bytes pass through unchanged.
func unpackIndices(slice []byte, bpp uint8) []byte {
	if bpp != 4 {
		return append([]byte(nil), slice...)
	}

	result := make([]byte, 0, len(slice)*2)
	for _, b := range slice {
		result = append(result, (b&0xF0)>>4, b&0x0F)
	}

	return result
}

// unswizzle reverses the hardware's 16x8 tile deinterleave, writing tiles
// in row-major order into scan-line order. The source cursor advances once
// per tile cell regardless of whether the destination coordinate is in
// bounds; running past the end of src is tolerated silently (remaining
// writes are skipped), matching the source's tolerance of malformed
// trailing padding.
func unswizzle[T any](src []T, w, h int) []T {
	result := make([]T, len(src))
	i := 0

	for y := 0; y < h; y += swizzleTileHeight {
		for x := 0; x < w; x += swizzleTileWidth {
			for tileY := y; tileY < y+swizzleTileHeight; tileY++ {
				for tileX := x; tileX < x+swizzleTileWidth; tileX++ {
					if tileX < w && tileY < h {
						if dst := tileY*w + tileX; i < len(src) && dst < len(result) {
							result[dst] = src[i]
						}
					}
					i++
				}
			}
		}
	}

	return result
}
