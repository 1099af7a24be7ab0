package thinking

import (
	"slices"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// tag is a recognized opening or closing delimiter found in a message
type tag struct {
	name       string
	start, end int // byte offsets, end is one past the closing '>'
	closing    bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Keywords which open (and close) a reasoning span
	Openers = []string{"thought", "thinking", "think", "thought_chain"}

	// Keywords which close a reasoning span
	Closers = append(slices.Clone(Openers), "response", "answer")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Strip removes reasoning markup from a message so the remainder can be
// spoken. Complete spans are removed wherever they occur. When an opener and a
// closer are present but never pair up, everything after the first closing tag
// is returned. An unterminated opener leaves the message untouched.
func Strip(text string) string {
	if text == "" {
		return ""
	}

	tags := scan(text)

	// Remove all complete spans
	if spans := complete(tags); len(spans) > 0 {
		var b strings.Builder
		pos := 0
		for _, span := range spans {
			b.WriteString(text[pos:span[0]])
			pos = span[1]
		}
		b.WriteString(text[pos:])
		return strings.TrimSpace(b.String())
	}

	// Opener and closer present, but not as a pair
	var opener, closer *tag
	for i := range tags {
		switch {
		case tags[i].closing && closer == nil:
			closer = &tags[i]
		case !tags[i].closing && opener == nil:
			opener = &tags[i]
		}
	}
	if opener != nil && closer != nil {
		return strings.TrimSpace(text[closer.end:])
	}

	// Unterminated or no markup
	return text
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// complete returns the [start,end) ranges of every opener which is closed by
// the nearest following closer of the same keyword, leftmost first. Tags inside
// a matched span are not considered.
func complete(tags []tag) [][2]int {
	var spans [][2]int
	for i := 0; i < len(tags); i++ {
		open := tags[i]
		if open.closing {
			continue
		}
		for j := i + 1; j < len(tags); j++ {
			if tags[j].closing && tags[j].name == open.name {
				spans = append(spans, [2]int{open.start, tags[j].end})
				i = j
				break
			}
		}
	}
	return spans
}

// scan returns recognized tags in order of appearance
func scan(text string) []tag {
	var tags []tag
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		if t, ok := parse(text, i); ok {
			tags = append(tags, t)
			i = t.end - 1
		}
	}
	return tags
}

// parse reads a tag starting at the '<' at offset i. The keyword must be
// followed by whitespace, '/' or '>', and anything up to the next '>' is
// treated as attributes.
func parse(text string, i int) (tag, bool) {
	t := tag{start: i}
	j := i + 1
	if j < len(text) && text[j] == '/' {
		t.closing = true
		j++
	}

	// Keyword
	k := j
	for k < len(text) && isNameChar(text[k]) {
		k++
	}
	if k == j || k == len(text) {
		return t, false
	}
	t.name = text[j:k]
	if t.closing {
		if !slices.Contains(Closers, t.name) {
			return t, false
		}
	} else if !slices.Contains(Openers, t.name) {
		return t, false
	}

	// Delimiter after the keyword
	switch text[k] {
	case '>', '/', ' ', '\t', '\n', '\r', '\f', '\v':
	default:
		return t, false
	}

	// Attributes, up to the end of the tag
	end := strings.IndexByte(text[k:], '>')
	if end < 0 {
		return t, false
	}
	t.end = k + end + 1
	return t, true
}

func isNameChar(c byte) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
