package tim2

import "github.com/pkg/errors"

const frameHeaderSize = 48

// FrameHeader carries the fixed per-frame fields plus any trailing
// user-data captured when header_size exceeds the fixed 48 bytes.
type FrameHeader struct {
	TotalSize        uint32
	PaletteSize      uint32
	ImageSize        uint32
	HeaderSize       uint16
	ColorEntryCount  uint16
	Paletted         uint8 // legacy flag, unused for dispatch
	MipmapCount      uint8
	ClutFormat       uint8
	Bpp              uint8 // normalized: 4, 8, 16, 24, or 32
	Width            int
	Height           int
	GsTex0           uint64
	GsTex1           uint64
	GsRegs           uint32
	GsTexClut        uint32
	UserData         []byte
}

// bppFromCode maps the header's raw bpp_code byte to a normalized bit depth.
func bppFromCode(code uint8) (uint8, error) {
	switch code {
	case 1:
		return 16, nil
	case 2:
		return 24, nil
	case 3:
		return 32, nil
	case 4:
		return 4, nil
	case 5:
		return 8, nil
	default:
		return 0, errors.Wrapf(ErrInvalidBppFormat, "code %d", code)
	}
}

func readFrameHeader(c *cursor) (FrameHeader, error) {
	var h FrameHeader
	var err error

	if h.TotalSize, err = c.u32le(); err != nil {
		return h, err
	}
	if h.PaletteSize, err = c.u32le(); err != nil {
		return h, err
	}
	if h.ImageSize, err = c.u32le(); err != nil {
		return h, err
	}
	if h.HeaderSize, err = c.u16le(); err != nil {
		return h, err
	}
	if h.ColorEntryCount, err = c.u16le(); err != nil {
		return h, err
	}
	if h.Paletted, err = c.u8(); err != nil {
		return h, err
	}
	if h.MipmapCount, err = c.u8(); err != nil {
		return h, err
	}
	if h.ClutFormat, err = c.u8(); err != nil {
		return h, err
	}

	bppCode, err := c.u8()
	if err != nil {
		return h, err
	}
	if h.Bpp, err = bppFromCode(bppCode); err != nil {
		return h, err
	}

	width, err := c.u16le()
	if err != nil {
		return h, err
	}
	h.Width = int(width)

	height, err := c.u16le()
	if err != nil {
		return h, err
	}
	h.Height = int(height)

	if h.GsTex0, err = c.u64le(); err != nil {
		return h, err
	}
	if h.GsTex1, err = c.u64le(); err != nil {
		return h, err
	}
	if h.GsRegs, err = c.u32le(); err != nil {
		return h, err
	}
	if h.GsTexClut, err = c.u32le(); err != nil {
		return h, err
	}

	userDataSize := int(h.HeaderSize) - frameHeaderSize
	if userDataSize > 0 {
		ud, err := c.take(userDataSize)
		if err != nil {
			return h, err
		}
		h.UserData = append([]byte(nil), ud...)
	}

	if h.PaletteSize > 0 && h.Bpp > 8 {
		return h, ErrTrueColorAndPaletteFound
	}

	return h, nil
}

// IsLinearPalette reports whether the hardware's CLUT is stored linearly
// (no block/stripe permutation needed during palette decode).
func (h FrameHeader) IsLinearPalette() bool {
	return h.ClutFormat&0x80 != 0
}

// ColorSampleSize returns the byte width of one color sample.
func (h FrameHeader) ColorSampleSize() int {
	if h.Bpp > 8 {
		return int(h.Bpp) / 8
	}
	return int(h.ClutFormat&0x07) + 1
}

// PixelFormat derives the tagged pixel format from the normalized bit depth.
func (h FrameHeader) PixelFormat() (PixelFormat, error) {
	switch h.Bpp {
	case 4:
		return Indexed4, nil
	case 8:
		return Indexed8, nil
	case 16:
		return Abgr1555, nil
	case 24:
		return Rgb888, nil
	case 32:
		return Rgba8888, nil
	default:
		return 0, errors.Wrapf(ErrInvalidBpp, "%d", h.Bpp)
	}
}

// NeedsUnswizzle reports whether bit 55 of gs_tex_0 requests the 16x8 tile
// deinterleave during pixel-data decode.
func (h FrameHeader) NeedsUnswizzle() bool {
	return h.GsTex0&(1<<55) != 0
}
