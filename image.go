package tim2

import (
	"os"

	"github.com/pkg/errors"
)

const containerIdentifier uint32 = 0x54494D32 // "TIM2", big-endian

// ImageHeader carries the 16-byte container header fields.
type ImageHeader struct {
	Identifier uint32
	Version    uint16
	FrameCount int
}

// Image owns a container header and the ordered frames it declares.
type Image struct {
	header ImageHeader
	frames []Frame
}

func readImageHeader(c *cursor) (ImageHeader, error) {
	var h ImageHeader
	var err error

	if h.Identifier, err = c.u32be(); err != nil {
		return h, err
	}
	if h.Identifier != containerIdentifier {
		return h, errors.Wrapf(ErrInvalidIdentifier, "0x%08x", h.Identifier)
	}

	if h.Version, err = c.u16le(); err != nil {
		return h, err
	}

	count, err := c.u16le()
	if err != nil {
		return h, err
	}
	h.FrameCount = int(count)

	if _, err := c.take(8); err != nil { // reserved, discarded
		return h, err
	}

	return h, nil
}

// Parse decodes a TIM2 container from an in-memory byte buffer.
func Parse(buf []byte) (*Image, error) {
	c := newCursor(buf)

	header, err := readImageHeader(c)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, header.FrameCount)
	for i := 0; i < header.FrameCount; i++ {
		frame, err := readFrame(c)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		frames = append(frames, frame)
	}

	return &Image{header: header, frames: frames}, nil
}

// Load reads path fully into memory and parses it as a TIM2 container.
func Load(path string) (*Image, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "reading %q: %v", path, err)
	}

	return Parse(buf)
}

// FrameCount returns the number of frames in the container.
func (img *Image) FrameCount() int { return len(img.frames) }

// Frame returns the frame at index i.
func (img *Image) Frame(i int) *Frame { return &img.frames[i] }

// Header returns the container's parsed header.
func (img *Image) Header() ImageHeader { return img.header }
