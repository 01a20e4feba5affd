// Package parts walks the nested MIME part trees of retrieved messages and
// decodes attachment payloads.
package parts

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Body references the downloadable content of a leaf part.
type Body struct {
	AttachmentID string
}

// Part is one node of a message's MIME tree. Any field may be absent.
type Part struct {
	Filename string
	MimeType string
	Body     *Body
	Parts    []*Part
}

// HasAttachment reports whether the part carries downloadable content.
func (p *Part) HasAttachment() bool {
	return p.Body != nil && p.Body.AttachmentID != ""
}

// IsXML reports whether the part looks like an XML document, judged by
// filename extension or declared media type.
func (p *Part) IsXML() bool {
	if strings.HasSuffix(strings.ToLower(p.Filename), ".xml") {
		return true
	}
	return strings.Contains(strings.ToLower(p.MimeType), "xml")
}

// Flatten walks the part tree depth-first in document order and returns
// the leaf parts that carry both a filename and a body reference. Nil
// nodes and missing subtrees contribute nothing.
func Flatten(root *Part) []*Part {
	var leaves []*Part
	var walk func(p *Part)
	walk = func(p *Part) {
		if p == nil {
			return
		}
		if p.Filename != "" && p.HasAttachment() {
			leaves = append(leaves, p)
		}
		for _, child := range p.Parts {
			walk(child)
		}
	}
	walk(root)
	return leaves
}

// DecodeAttachment decodes attachment content delivered as URL-safe base64
// text. The transport substitutes '+' with '-' and '/' with '_', so those
// substitutions must be reversed before standard base64 decoding; padding
// is restored when stripped.
func DecodeAttachment(data string) (string, error) {
	normalized := strings.ReplaceAll(data, "-", "+")
	normalized = strings.ReplaceAll(normalized, "_", "/")
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return "", fmt.Errorf("error decoding attachment data: %w", err)
	}
	return string(decoded), nil
}
