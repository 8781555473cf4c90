package tim2

// GetPixels resolves the frame's data to a flat Pixel array: indexed
// frames are looked up against palette 0, true-color frames pass through.
func (f *Frame) GetPixels() []Pixel {
	if f.data.Indexed {
		palette := f.palettes[0]
		result := make([]Pixel, len(f.data.Indices))

		for i, idx := range f.data.Indices {
			result[i] = palette[idx]
		}

		return result
	}

	return f.data.Pixels
}

// ToRaw materializes a tightly packed RGBA8888 byte buffer. When colorKey
// is non-nil, pixels equal to it are forced fully transparent.
func (f *Frame) ToRaw(colorKey *Pixel) []byte {
	pixels := f.GetPixels()
	result := make([]byte, 0, len(pixels)*4)

	for _, p := range pixels {
		alpha := p.A
		if colorKey != nil && p.Equal(*colorKey) {
			alpha = 0
		}

		result = append(result, p.R, p.G, p.B, alpha)
	}

	return result
}
