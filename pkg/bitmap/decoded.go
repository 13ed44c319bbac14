package bitmap

import (
	"image"

	"github.com/disintegration/imaging"
)

// Decoded is an image normalized for encoding: three bytes per pixel
// (R, G, B), row-major, left-to-right, top-to-bottom. Alpha has already
// been dropped by Normalize.
type Decoded struct {
	Width  int
	Height int
	Pix    []uint8
}

// Normalize flattens any decoded image into an RGB buffer. Alpha is
// discarded rather than composited: a transparent pixel keeps whatever
// color bytes it carried. Going through non-premultiplied NRGBA keeps
// those bytes intact.
func Normalize(src image.Image) *Decoded {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()

	d := &Decoded{
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	d.Pix = make([]uint8, 0, 3*d.Width*d.Height)

	for y := 0; y < d.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*d.Width]
		for x := 0; x < d.Width; x++ {
			d.Pix = append(d.Pix, row[4*x], row[4*x+1], row[4*x+2])
		}
	}

	return d
}
