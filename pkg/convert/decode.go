package convert

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"img2c/pkg/bitmap"
)

var supportedExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff"}

// Supported reports whether the file's extension belongs to a decodable
// image format. The check is case-insensitive.
func Supported(path string) bool {
	return lo.Contains(supportedExts, strings.ToLower(filepath.Ext(path)))
}

// Decode reads one image file and normalizes it to an RGB buffer.
func Decode(fs afero.Fs, path string) (*bitmap.Decoded, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return bitmap.Normalize(img), nil
}

// DecodeBytes decodes an in-memory image, e.g. one just downloaded.
func DecodeBytes(bs []byte) (*bitmap.Decoded, error) {
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	return bitmap.Normalize(img), nil
}
