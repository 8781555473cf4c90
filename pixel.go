package tim2

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Pixel is four 8-bit channels. Equality is component-wise.
type Pixel struct {
	R, G, B, A uint8
}

// Equal reports component-wise equality.
func (p Pixel) Equal(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B && p.A == o.A
}

// PixelFormat tags the pixel layout a frame was decoded from.
type PixelFormat int

const (
	Indexed4 PixelFormat = iota
	Indexed8
	Abgr1555
	Rgb888
	Rgba8888
)

func (f PixelFormat) String() string {
	switch f {
	case Indexed4:
		return "Indexed4"
	case Indexed8:
		return "Indexed8"
	case Abgr1555:
		return "Abgr1555"
	case Rgb888:
		return "Rgb888"
	case Rgba8888:
		return "Rgba8888"
	default:
		return "Unknown"
	}
}

// expand5to8 widens a 5-bit channel sample to 8 bits the way the hardware's
// ABGR1555 format does: x<<3 | x>>2.
func expand5to8(x uint16) uint8 {
	return uint8(x<<3 | x>>2)
}

// decodePixel decodes one Pixel from a color sample of size 2, 3, or 4
// bytes, per the fixed color-sample layouts in the TIM2 format.
func decodePixel(sample []byte) (Pixel, error) {
	switch len(sample) {
	case 2:
		v := binary.LittleEndian.Uint16(sample)
		a := uint8(v>>15) & 0x1
		b := (v >> 10) & 0x1F
		g := (v >> 5) & 0x1F
		r := v & 0x1F

		alpha := uint8(0)
		if a != 0 {
			alpha = 255
		}

		return Pixel{
			R: expand5to8(r),
			G: expand5to8(g),
			B: expand5to8(b),
			A: alpha,
		}, nil
	case 3:
		return Pixel{R: sample[0], G: sample[1], B: sample[2], A: 255}, nil
	case 4:
		return Pixel{R: sample[0], G: sample[1], B: sample[2], A: sample[3]}, nil
	default:
		return Pixel{}, errors.Wrapf(ErrInvalidColorSampleSize, "size %d", len(sample))
	}
}

// decodeColors decodes buf into len(buf)/colorSize pixels using decodePixel.
func decodeColors(buf []byte, colorSize int) ([]Pixel, error) {
	count := len(buf) / colorSize
	result := make([]Pixel, 0, count)

	for i := 0; i < count; i++ {
		start := i * colorSize
		p, err := decodePixel(buf[start : start+colorSize])
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, nil
}
