// Command mkimages writes a small tree of sample images for trying the
// converter end to end.
package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
)

var dir = flag.String("dir", "example", "directory to create sample images in")

func main() {
	flag.Parse()

	for _, sub := range []string{"icons", "logos", "backgrounds"} {
		if err := os.MkdirAll(filepath.Join(*dir, sub), 0755); err != nil {
			log.Fatal(err)
		}
	}

	icon := imaging.New(32, 32, color.White)
	icon = imaging.Paste(icon, imaging.New(16, 16, color.NRGBA{B: 255, A: 255}), image.Pt(8, 8))
	save(icon, filepath.Join(*dir, "icons", "test_icon.png"))

	save(imaging.New(64, 32, color.NRGBA{R: 255, A: 255}), filepath.Join(*dir, "logos", "company_logo.png"))

	grad := imaging.New(128, 64, color.Black)
	for x := 0; x < 128; x++ {
		c := uint8(255 * x / 128)
		for y := 0; y < 64; y++ {
			grad.Set(x, y, color.NRGBA{R: c, G: c / 2, B: 255 - c, A: 255})
		}
	}
	save(grad, filepath.Join(*dir, "backgrounds", "gradient.png"))
}

func save(img image.Image, path string) {
	if err := imaging.Save(img, path); err != nil {
		log.Fatal(err)
	}
	log.Printf("created %s", path)
}
