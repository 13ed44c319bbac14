package cheader

import (
	"strings"
)

// guardPrefix keeps identifiers valid when a filename stem sanitizes to
// something C rejects, e.g. "123icon".
const guardPrefix = "img_"

// Ident holds the C names derived from a source filename stem.
type Ident struct {
	Base  string // lowercase identifier, e.g. "company_logo"
	Macro string // uppercase macro prefix, e.g. "COMPANY_LOGO"
}

// NewIdent sanitizes a filename stem into C names. The stem is lowercased,
// every character outside [a-z0-9_] becomes an underscore, and trailing
// underscores left over from replacement are trimmed. An empty result
// falls back to "img"; one starting with a digit gets the img_ prefix.
func NewIdent(stem string) Ident {
	var sb strings.Builder
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	base := strings.TrimRight(sb.String(), "_")
	if base == "" {
		base = "img"
	} else if base[0] >= '0' && base[0] <= '9' {
		base = guardPrefix + base
	}

	return Ident{
		Base:  base,
		Macro: strings.ToUpper(base),
	}
}
