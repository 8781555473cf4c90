// Command tim2info loads a TIM2 container and prints one line per frame:
// its dimensions, pixel format, and mipmap flag. It exercises only the
// decoder — no rendering, no GPU upload.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/travistrue2008/tim2-go"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <path-to-tim2-file>", os.Args[0])
	}

	img, err := tim2.Load(os.Args[1])
	if err != nil {
		log.Fatalf("loading %s: %v", os.Args[1], err)
	}

	fmt.Printf("%s: %d frame(s)\n", os.Args[1], img.FrameCount())

	for i := 0; i < img.FrameCount(); i++ {
		f := img.Frame(i)

		format, err := f.Format()
		if err != nil {
			log.Fatalf("frame %d: %v", i, err)
		}

		fmt.Printf("frame[%d]: %dx%d %s mipmaps=%v palettes=%d\n",
			i, f.Width(), f.Height(), format, f.HasMipmaps(), len(f.Palettes()))
	}
}
