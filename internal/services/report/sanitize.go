package report

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// markdownStripper removes the literal emphasis markers models habitually
// emit. The PDF core fonts have no rich-text styling, so "**" and heading
// hashes would otherwise render verbatim.
var markdownStripper = strings.NewReplacer(
	"**", "",
	"### ", "",
	"## ", "",
)

// Sanitize prepares model output for the PDF core fonts: markdown emphasis
// markers are stripped, then every rune outside the Latin-1 range is
// replaced with '?'. Rendering never fails on exotic characters — they
// degrade to substitution markers instead.
//
// The text is round-tripped through the ISO 8859-1 charmap: encoding with
// substitution flattens unsupported runes, decoding restores valid UTF-8
// for the rest of the pipeline.
func Sanitize(text string) string {
	cleaned := markdownStripper.Replace(text)

	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	latin1, _, err := transform.String(enc, cleaned)
	if err != nil {
		// ReplaceUnsupported makes the encoder total, so this is not
		// expected; fall back to dropping non-ASCII outright.
		return strings.Map(func(r rune) rune {
			if r > 127 {
				return '?'
			}
			return r
		}, cleaned)
	}

	// The charmap encoder substitutes unsupported runes with the ASCII SUB
	// control byte; swap it for a visible marker before decoding back.
	latin1 = strings.ReplaceAll(latin1, "\x1a", "?")

	utf8Text, _, err := transform.String(charmap.ISO8859_1.NewDecoder(), latin1)
	if err != nil {
		return latin1
	}
	return utf8Text
}
