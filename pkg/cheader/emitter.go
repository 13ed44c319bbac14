package cheader

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrDimensionMismatch reports that the declared width*height does not
// match the supplied pixel count.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Emit renders the full header document for one image: a comment block,
// the width/height macros, the pixel array and a descriptor struct that
// firmware can hand to a draw routine directly. source is the image's
// base filename; its extension is stripped before deriving identifiers.
// Dimensions must fit the struct's uint16_t fields. Lines end with \n and
// hex literals are lowercase, zero-padded to four digits.
func Emit(source string, width, height int, pixels []uint16) (string, error) {
	if width < 1 || width > math.MaxUint16 || height < 1 || height > math.MaxUint16 {
		return "", errors.Wrapf(ErrDimensionMismatch, "dimensions %dx%d out of uint16 range", width, height)
	}
	if width*height != len(pixels) {
		return "", errors.Wrapf(ErrDimensionMismatch, "%dx%d declared, %d pixels", width, height, len(pixels))
	}

	id := NewIdent(strings.TrimSuffix(source, filepath.Ext(source)))

	var sb strings.Builder

	fmt.Fprintf(&sb, "/*\n")
	fmt.Fprintf(&sb, " * Generated from: %s\n", source)
	fmt.Fprintf(&sb, " * Image size: %dx%d pixels\n", width, height)
	fmt.Fprintf(&sb, " * Format: RGB565\n")
	fmt.Fprintf(&sb, " */\n\n")

	fmt.Fprintf(&sb, "#pragma once\n")
	fmt.Fprintf(&sb, "#include <stdint.h>\n\n")

	fmt.Fprintf(&sb, "#define %s_WIDTH  %d\n", id.Macro, width)
	fmt.Fprintf(&sb, "#define %s_HEIGHT %d\n\n", id.Macro, height)

	fmt.Fprintf(&sb, "const uint16_t %s_data[%d] = {\n", id.Base, len(pixels))
	for y := 0; y < height; y++ {
		sb.WriteString("    ")
		for x := 0; x < width; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0x%04x", pixels[y*width+x])
		}
		if y < height-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "};\n\n")

	fmt.Fprintf(&sb, "typedef struct {\n")
	fmt.Fprintf(&sb, "    const uint16_t* data;\n")
	fmt.Fprintf(&sb, "    uint16_t width;\n")
	fmt.Fprintf(&sb, "    uint16_t height;\n")
	fmt.Fprintf(&sb, "} %s_t;\n\n", id.Base)

	fmt.Fprintf(&sb, "const %s_t %s = {\n", id.Base, id.Base)
	fmt.Fprintf(&sb, "    .data = %s_data,\n", id.Base)
	fmt.Fprintf(&sb, "    .width = %s_WIDTH,\n", id.Macro)
	fmt.Fprintf(&sb, "    .height = %s_HEIGHT\n", id.Macro)
	fmt.Fprintf(&sb, "};\n")

	return sb.String(), nil
}
