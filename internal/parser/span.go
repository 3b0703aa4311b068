package parser

import "strings"

// Span is a half-open byte range [Start, End) of the scanned text
type Span struct {
	Start int
	End   int
}

// Text returns the spanned substring of content
func (s Span) Text(content string) string {
	return content[s.Start:s.End]
}

type scanState int

const (
	stateCode scanState = iota
	stateString
	stateEscape
	stateLineComment
	stateBlockComment
)

// MatchingClose returns the index of the delimiter that closes the one at
// openIdx. Delimiters inside string literals and comments are ignored.
func MatchingClose(content string, openIdx int, open, close byte) (int, bool) {
	if openIdx < 0 || openIdx >= len(content) || content[openIdx] != open {
		return -1, false
	}

	depth := 0
	state := stateCode

	for i := openIdx; i < len(content); i++ {
		c := content[i]

		switch state {
		case stateString:
			switch c {
			case '\\':
				state = stateEscape
			case '"':
				state = stateCode
			}
			continue
		case stateEscape:
			state = stateString
			continue
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			}
			continue
		case stateBlockComment:
			if c == '*' && i+1 < len(content) && content[i+1] == '/' {
				state = stateCode
				i++
			}
			continue
		}

		switch {
		case c == '"':
			state = stateString
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			state = stateLineComment
			i++
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			state = stateBlockComment
			i++
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}

// BlockBody returns the span strictly between the delimiter at openIdx and
// its matching close
func BlockBody(content string, openIdx int, open, close byte) (Span, bool) {
	closeIdx, ok := MatchingClose(content, openIdx, open, close)
	if !ok {
		return Span{}, false
	}
	return Span{Start: openIdx + 1, End: closeIdx}, true
}

// BraceBody is BlockBody for curly braces
func BraceBody(content string, openIdx int) (Span, bool) {
	return BlockBody(content, openIdx, '{', '}')
}

// SplitTopLevel splits s on commas that are not nested inside (), <> or []
// and not inside string literals. The '>' of a function arrow "->" does not
// close a level.
func SplitTopLevel(s string) []string {
	var parts []string
	depth := 0
	state := stateCode
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case stateString:
			switch c {
			case '\\':
				state = stateEscape
			case '"':
				state = stateCode
			}
			continue
		case stateEscape:
			state = stateString
			continue
		}

		switch c {
		case '"':
			state = stateString
		case '(', '<', '[':
			depth++
		case ')', ']':
			depth--
		case '>':
			if i > 0 && s[i-1] == '-' {
				continue
			}
			depth--
		case ',':
			if depth == 0 {
				parts = appendTrimmed(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, part string) []string {
	trimmed := strings.TrimSpace(part)
	if trimmed == "" {
		return parts
	}
	return append(parts, trimmed)
}
