// Command tim2preview opens a window showing a single decoded TIM2 frame.
// It stands in for the GL/GLFW preview window described in the decoder's
// specification: it consumes Frame.ToRaw() through the public decoder
// surface and performs no decoding of its own.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"

	"github.com/travistrue2008/tim2-go"
)

var colorKey = tim2.Pixel{R: 0, G: 255, B: 0, A: 255}

type previewGame struct {
	img *ebiten.Image
}

func (g *previewGame) Update() error {
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%dx%d", g.img.Bounds().Dx(), g.img.Bounds().Dy()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	bounds := g.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// toNRGBA converts a frame's raw RGBA8888 buffer into a stdlib image,
// optionally nearest-neighbour scaled, as a debug-dump path independent of
// any GL/SDL windowing backend.
func toNRGBA(raw []byte, width, height, scale int) *image.NRGBA {
	src := &image.NRGBA{
		Pix:    raw,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func main() {
	frameIndex := flag.Int("frame", 0, "frame index to preview")
	scale := flag.Int("scale", 1, "nearest-neighbour integer upscale factor")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [-frame N] [-scale N] <path-to-tim2-file>", os.Args[0])
	}

	path := flag.Arg(0)

	img, err := tim2.Load(path)
	if err != nil {
		log.Fatalf("loading %s: %v", path, err)
	}
	if *frameIndex >= img.FrameCount() {
		log.Fatalf("frame %d out of range (container has %d frames)", *frameIndex, img.FrameCount())
	}

	frame := img.Frame(*frameIndex)
	raw := frame.ToRaw(&colorKey)
	nrgba := toNRGBA(raw, frame.Width(), frame.Height(), *scale)

	eimg := ebiten.NewImageFromImage(nrgba)

	ebiten.SetWindowSize(nrgba.Bounds().Dx(), nrgba.Bounds().Dy())
	ebiten.SetWindowTitle(fmt.Sprintf("tim2preview: %s [frame %d]", path, *frameIndex))

	if err := ebiten.RunGame(&previewGame{img: eimg}); err != nil {
		log.Fatal(err)
	}
}
