package sourcemaps

import (
	"encoding/base64"
	"regexp"
)

// Both comment syntaxes are recognized on read regardless of which one the
// file's own kind would use for writing.
var (
	lineCommentRx  = regexp.MustCompile(`(?m)^[ \t]*//#[ \t]?sourceMappingURL=([^\s'"]+)[ \t]*\r?$`)
	blockCommentRx = regexp.MustCompile(`(?m)^[ \t]*/\*#[ \t]?sourceMappingURL=([^\s'"]+)[ \t]*\*/[ \t]*\r?$`)

	dataURIRx = regexp.MustCompile(`^data:application/json(?:;charset=[^;,]+)?;base64,(.*)$`)
)

// ScanComment locates a source map reference comment in content. On a match
// it returns the comment's value (a data: URI or a path to a .map file) and
// the content with the comment and the newline that introduced it removed.
// Without a match it returns content unchanged and ok false. When the same
// syntax appears more than once the last occurrence wins.
func ScanComment(content []byte) (value string, rest []byte, ok bool) {
	best := []int(nil)
	for _, rx := range []*regexp.Regexp{lineCommentRx, blockCommentRx} {
		matches := rx.FindAllSubmatchIndex(content, -1)
		if matches == nil {
			continue
		}
		m := matches[len(matches)-1]
		if best == nil || m[0] > best[0] {
			best = m
		}
	}
	if best == nil {
		return "", content, false
	}

	value = string(content[best[2]:best[3]])

	start, end := best[0], best[1]
	if start > 0 && content[start-1] == '\n' {
		start--
		if start > 0 && content[start-1] == '\r' {
			start--
		}
	}
	if end < len(content) && content[end] == '\n' {
		end++
	}

	rest = append([]byte(nil), content[:start]...)
	rest = append(rest, content[end:]...)
	return value, rest, true
}

// decodeDataURI extracts and decodes the JSON payload of an inline map value.
// It returns nil, false if value is not an inline map data URI; a data URI
// whose base64 payload is corrupt yields nil, true and is treated by the
// caller as no map found.
func decodeDataURI(value string) (data []byte, isDataURI bool) {
	m := dataURIRx.FindStringSubmatch(value)
	if m == nil {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(m[1])
	if err != nil {
		return nil, true
	}
	return data, true
}
