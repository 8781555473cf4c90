package tim2

import "github.com/pkg/errors"

// Palette is an ordered list of Pixel, one per color entry.
type Palette = []Pixel

const (
	linearizeColorCount  = 8
	linearizeBlockCount  = 2
	linearizeStripeCount = 2
)

// readPalettes reads header.PaletteSize bytes and splits them into N
// palettes of header.ColorEntryCount entries each, applying CLUT
// linearization where the hardware requires it. Returns nil if the frame
// declares no palette.
func readPalettes(c *cursor, header FrameHeader) ([]Palette, error) {
	if header.PaletteSize == 0 {
		return nil, nil
	}

	buf, err := c.take(int(header.PaletteSize))
	if err != nil {
		return nil, err
	}

	colorSize := header.ColorSampleSize()
	entrySize := int(header.ColorEntryCount) * colorSize
	if entrySize == 0 || int(header.PaletteSize)%entrySize != 0 {
		return nil, errors.Errorf("tim2: palette_size %d not divisible by per-palette size %d", header.PaletteSize, entrySize)
	}
	count := int(header.PaletteSize) / entrySize

	palettes := make([]Palette, 0, count)
	for i := 0; i < count; i++ {
		start := i * entrySize
		entry := buf[start : start+entrySize]

		palette, err := decodeColors(entry, colorSize)
		if err != nil {
			return nil, err
		}

		if header.Bpp == 8 && !header.IsLinearPalette() {
			linearizePalette(palette)
		}

		palettes = append(palettes, palette)
	}

	return palettes, nil
}

// linearizePalette undoes the hardware's block/stripe CLUT storage
// in-place so that entry i is the color referenced by index i.
//
// Reproduces the source transform exactly, including the asymmetric
// stripe*STRIPE_COUNT*COLOR_COUNT term — see SPEC_FULL's Open Questions.
func linearizePalette(palette []Pixel) {
	original := append([]Pixel(nil), palette...)
	partCount := len(palette) / 32

	i := 0
	for part := 0; part < partCount; part++ {
		for block := 0; block < linearizeBlockCount; block++ {
			for stripe := 0; stripe < linearizeStripeCount; stripe++ {
				for color := 0; color < linearizeColorCount; color++ {
					i1 := part * linearizeColorCount * linearizeStripeCount * linearizeBlockCount
					i2 := block * linearizeColorCount
					i3 := stripe * linearizeStripeCount * linearizeColorCount

					palette[i] = original[i1+i2+i3+color]
					i++
				}
			}
		}
	}
}
