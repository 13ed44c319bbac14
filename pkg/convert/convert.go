package convert

import (
	"path/filepath"

	"github.com/spf13/afero"

	"img2c/pkg/bitmap"
	"img2c/pkg/cheader"
)

// File converts one source image into header text.
func File(fs afero.Fs, path string) (string, error) {
	img, err := Decode(fs, path)
	if err != nil {
		return "", err
	}

	pixels, err := bitmap.Encode(img)
	if err != nil {
		return "", err
	}

	return cheader.Emit(filepath.Base(path), img.Width, img.Height, pixels)
}

// Bytes converts an in-memory image into header text, naming identifiers
// after the given source filename.
func Bytes(source string, bs []byte) (string, error) {
	img, err := DecodeBytes(bs)
	if err != nil {
		return "", err
	}

	pixels, err := bitmap.Encode(img)
	if err != nil {
		return "", err
	}

	return cheader.Emit(source, img.Width, img.Height, pixels)
}
