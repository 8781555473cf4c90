package tim2

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
)

// buildFrameHeaderBytes assembles a 48-byte frame header with its fields in
// on-disk order, multi-byte fields little-endian.
func buildFrameHeaderBytes(totalSize, paletteSize, imageSize uint32, headerSize, colorEntryCount uint16, paletted, mipmapCount, clutFormat, bppCode uint8, width, height uint16, gsTex0, gsTex1 uint64, gsRegs, gsTexClut uint32) []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], totalSize)
	binary.LittleEndian.PutUint32(buf[4:8], paletteSize)
	binary.LittleEndian.PutUint32(buf[8:12], imageSize)
	binary.LittleEndian.PutUint16(buf[12:14], headerSize)
	binary.LittleEndian.PutUint16(buf[14:16], colorEntryCount)
	buf[16] = paletted
	buf[17] = mipmapCount
	buf[18] = clutFormat
	buf[19] = bppCode
	binary.LittleEndian.PutUint16(buf[20:22], width)
	binary.LittleEndian.PutUint16(buf[22:24], height)
	binary.LittleEndian.PutUint64(buf[24:32], gsTex0)
	binary.LittleEndian.PutUint64(buf[32:40], gsTex1)
	binary.LittleEndian.PutUint32(buf[40:44], gsRegs)
	binary.LittleEndian.PutUint32(buf[44:48], gsTexClut)
	return buf
}

func TestReadFrameHeaderBasic(t *testing.T) {
	buf := buildFrameHeaderBytes(64, 0, 16, 48, 0, 0, 1, 0, 3, 2, 2, 0, 0, 0, 0)
	c := newCursor(buf)

	h, err := readFrameHeader(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Bpp != 32 {
		t.Fatalf("expected bpp 32, got %d", h.Bpp)
	}
	if h.Width != 2 || h.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", h.Width, h.Height)
	}
	if len(h.UserData) != 0 {
		t.Fatalf("expected no user data, got %d bytes", len(h.UserData))
	}
}

func TestReadFrameHeaderUserData(t *testing.T) {
	buf := buildFrameHeaderBytes(64, 0, 16, 52, 0, 0, 1, 0, 3, 2, 2, 0, 0, 0, 0)
	buf = append(buf, []byte{0xAA, 0xBB, 0xCC, 0xDD}...)
	c := newCursor(buf)

	h, err := readFrameHeader(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.UserData) != 4 || h.UserData[0] != 0xAA {
		t.Fatalf("got user data %v", h.UserData)
	}
}

func TestReadFrameHeaderInvalidBpp(t *testing.T) {
	buf := buildFrameHeaderBytes(64, 0, 16, 48, 0, 0, 1, 0, 9, 2, 2, 0, 0, 0, 0)
	c := newCursor(buf)

	if _, err := readFrameHeader(c); !errors.Is(err, ErrInvalidBppFormat) {
		t.Fatalf("expected ErrInvalidBppFormat, got %v", err)
	}
}

func TestReadFrameHeaderTrueColorAndPalette(t *testing.T) {
	buf := buildFrameHeaderBytes(64, 32, 16, 48, 8, 0, 1, 0, 3, 2, 2, 0, 0, 0, 0)
	c := newCursor(buf)

	if _, err := readFrameHeader(c); !errors.Is(err, ErrTrueColorAndPaletteFound) {
		t.Fatalf("expected ErrTrueColorAndPaletteFound, got %v", err)
	}
}

func TestFrameHeaderPredicates(t *testing.T) {
	h := FrameHeader{Bpp: 8, ClutFormat: 0x02}
	if h.IsLinearPalette() {
		t.Fatalf("expected non-linear palette")
	}
	if got := h.ColorSampleSize(); got != 3 {
		t.Fatalf("expected color sample size 3, got %d", got)
	}

	h2 := FrameHeader{Bpp: 32}
	if got := h2.ColorSampleSize(); got != 4 {
		t.Fatalf("expected color sample size 4, got %d", got)
	}

	h3 := FrameHeader{GsTex0: 1 << 55}
	if !h3.NeedsUnswizzle() {
		t.Fatalf("expected NeedsUnswizzle true")
	}
}

func TestFrameHeaderPixelFormat(t *testing.T) {
	cases := []struct {
		bpp  uint8
		want PixelFormat
	}{
		{4, Indexed4},
		{8, Indexed8},
		{16, Abgr1555},
		{24, Rgb888},
		{32, Rgba8888},
	}

	for _, tc := range cases {
		h := FrameHeader{Bpp: tc.bpp}
		got, err := h.PixelFormat()
		if err != nil {
			t.Fatalf("unexpected error for bpp %d: %v", tc.bpp, err)
		}
		if got != tc.want {
			t.Errorf("bpp %d: got %v, want %v", tc.bpp, got, tc.want)
		}
	}
}
