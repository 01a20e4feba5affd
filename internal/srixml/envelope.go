// Package srixml extracts invoice records from SRI comprobante documents.
// Payloads arrive in three envelope shapes and with inconsistent tag casing,
// so extraction is deliberately tolerant: plain text scanning instead of a
// strict XML parse.
package srixml

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Shape identifies which of the three envelope encodings a payload uses.
// Exactly one shape applies to any given payload.
type Shape int

const (
	// ShapeCDATA is a wrapper element whose inner document is CDATA-escaped.
	ShapeCDATA Shape = iota
	// ShapeEntityEscaped is a wrapper whose inner markup is HTML-entity-escaped.
	ShapeEntityEscaped
	// ShapeRaw is a payload that already is the document.
	ShapeRaw
)

var cdataRe = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

// DetectShape probes the payload for its envelope encoding. Entity escaping
// is signaled by a literal escaped '<' sequence.
func DetectShape(payload string) Shape {
	if cdataRe.MatchString(payload) {
		return ShapeCDATA
	}
	if strings.Contains(payload, "&lt;") {
		return ShapeEntityEscaped
	}
	return ShapeRaw
}

// Unwrap converts a payload in any of the three envelope shapes into plain
// markup. Entity decoding reverses &lt; &gt; &amp; and both quote spellings.
func Unwrap(payload string) string {
	switch DetectShape(payload) {
	case ShapeCDATA:
		return cdataRe.FindStringSubmatch(payload)[1]
	case ShapeEntityEscaped:
		return html.UnescapeString(payload)
	default:
		return payload
	}
}
