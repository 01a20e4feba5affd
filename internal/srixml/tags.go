package srixml

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	tagReMu sync.Mutex
	tagRe   = map[string]*regexp.Regexp{}
)

// tagPattern compiles (and caches) the lookup pattern for one tag name.
// Matching is case-insensitive and ignores attributes on the opening tag.
func tagPattern(tag string) *regexp.Regexp {
	tagReMu.Lock()
	defer tagReMu.Unlock()

	if re, ok := tagRe[tag]; ok {
		return re
	}
	quoted := regexp.QuoteMeta(tag)
	re := regexp.MustCompile(fmt.Sprintf(`(?is)<\s*%s(?:\s[^>]*)?>(.*?)</\s*%s\s*>`, quoted, quoted))
	tagRe[tag] = re
	return re
}

// TagValue returns the trimmed text content of the first occurrence of the
// given tag, or an empty string if the tag is absent.
func TagValue(doc, tag string) string {
	m := tagPattern(tag).FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// TagValues returns the trimmed text content of every occurrence of the
// given tag, in document order.
func TagValues(doc, tag string) []string {
	var values []string
	for _, m := range tagPattern(tag).FindAllStringSubmatch(doc, -1) {
		values = append(values, strings.TrimSpace(m[1]))
	}
	return values
}

// FirstTagValue tries each tag name in order and returns the first
// non-empty value found.
func FirstTagValue(doc string, tags ...string) string {
	for _, tag := range tags {
		if v := TagValue(doc, tag); v != "" {
			return v
		}
	}
	return ""
}
