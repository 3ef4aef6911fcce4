package slug

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make folds input into a lowercase, dash-separated token. Letters and
// digits of any script survive NFKC folding; everything else collapses into
// a single dash.
func Make(input string) string {
	s := norm.NFKC.String(strings.ToLower(strings.TrimSpace(input)))
	var b strings.Builder
	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}

// FromPath slugs the base name of a file without its extension.
func FromPath(path string) string {
	base := filepath.Base(path)
	return Make(strings.TrimSuffix(base, filepath.Ext(base)))
}
