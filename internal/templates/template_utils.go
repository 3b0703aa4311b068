package templates

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Indent prefixes every non-empty line of s with n spaces
func Indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// Lower is a full lowercase, used for environment keys and modifiers
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper is a full uppercase, used for section titles
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Capitalize upper-cases the first letter and keeps the rest
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first letter and keeps the rest
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Join joins items with sep; the argument order suits template pipelines
func Join(items []string, sep string) string {
	return strings.Join(items, sep)
}

// ComponentName normalizes user input into a component name by trimming it
// and capitalizing the first letter
func ComponentName(input string) string {
	return Capitalize(strings.TrimSpace(input))
}
