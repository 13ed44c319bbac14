package bitmap

import (
	"github.com/pkg/errors"
)

// ErrInvalidPixel reports a malformed pixel buffer: non-positive
// dimensions or a byte count that does not match them.
var ErrInvalidPixel = errors.New("invalid pixel buffer")

// Encode converts a normalized RGB image into a flat RGB565 sequence, one
// uint16 per pixel in source order. The output length always equals
// Width*Height and no padding or byte swapping is applied.
func Encode(src *Decoded) ([]uint16, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidPixel, "bad dimensions %dx%d", src.Width, src.Height)
	}
	if len(src.Pix) != 3*src.Width*src.Height {
		return nil, errors.Wrapf(ErrInvalidPixel, "buffer has %d bytes, want %d", len(src.Pix), 3*src.Width*src.Height)
	}

	out := make([]uint16, 0, src.Width*src.Height)
	for i := 0; i < len(src.Pix); i += 3 {
		out = append(out, uint16(ToRGB565(src.Pix[i], src.Pix[i+1], src.Pix[i+2])))
	}

	return out, nil
}
