// Package textnorm canonicalizes piece names the same way the tracker app
// does on import, so names typed with typographic quotes or stray
// whitespace in the spreadsheet collapse onto a single piece.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var quoteReplacer = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"\u201B", "'",
	"\u02BC", "'",
	"\u02C8", "'",
	"\u02CA", "'",
	"\u0060", "'",
	"\u00B4", "'",
	"\u201C", "\"",
	"\u201D", "\"",
	"\u201E", "\"",
	"\u201A", "'",
)

// PieceName returns the canonical form of a piece name.
func PieceName(s string) string {
	out := norm.NFKD.String(s)
	out = strings.TrimSpace(out)
	out = whitespaceRE.ReplaceAllString(out, " ")
	out = strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.C) {
			return -1
		}
		return r
	}, out)
	out = quoteReplacer.Replace(out)
	return norm.NFC.String(out)
}
