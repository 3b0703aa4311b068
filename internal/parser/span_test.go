package parser

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingClose(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		found   bool
	}{
		{"flat", "{ a }", 4, true},
		{"nested", "{ { } }", 6, true},
		{"brace in string", `{ "}" }`, 6, true},
		{"escaped quote in string", `{ "\"}" }`, 8, true},
		{"brace in line comment", "{ // }\n}", 7, true},
		{"brace in block comment", "{ /* } */ }", 10, true},
		{"unbalanced", "{ {", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchingClose(tt.content, 0, '{', '}')
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchingClose_WrongOpen(t *testing.T) {
	_, ok := MatchingClose("x{}", 0, '{', '}')
	assert.False(t, ok)

	_, ok = MatchingClose("{}", 5, '{', '}')
	assert.False(t, ok)
}

func TestBraceBody(t *testing.T) {
	content := "extension X { static func a() { if b { } } }"
	open := strings.Index(content, "{")

	span, ok := BraceBody(content, open)
	require.True(t, ok)
	assert.Equal(t, " static func a() { if b { } } ", span.Text(content))
}

// naiveBody takes everything up to the first closing brace
var naiveBody = regexp.MustCompile(`extension\s+\w+Style\s+where[^{]*\{([^}]*)\}`)

func TestBraceBody_NestedBlocksOutrunNaiveMatch(t *testing.T) {
	content := `
extension BadgeStyle where Self == BaseBadgeStyle {
    static func contentA(_ color: ColorName) -> Self {
        if color == .none { return .init(color: .contentA) }
        return .init(color: color)
    }
    // } not the end
    static func highlightA(_ color: ColorName) -> Self { .init(color: color) }
}
`
	naive := naiveBody.FindStringSubmatch(content)
	require.NotNil(t, naive)
	assert.NotContains(t, naive[1], "highlightA")

	functions := ExtractStyleFunctions(content, "Badge")
	require.Len(t, functions, 2)
	assert.Equal(t, "contentA", functions[0].Name)
	assert.Equal(t, "highlightA", functions[1].Name)
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple",
			input: "a: Int, b: String",
			want:  []string{"a: Int", "b: String"},
		},
		{
			name:  "closure with arrow",
			input: "action: @escaping (Int, String) -> Void, title: String",
			want:  []string{"action: @escaping (Int, String) -> Void", "title: String"},
		},
		{
			name:  "generic dictionary",
			input: "values: Binding<[String: Int]>, flag: Bool",
			want:  []string{"values: Binding<[String: Int]>", "flag: Bool"},
		},
		{
			name:  "nested generics",
			input: "map: Dictionary<String, Array<Int>>, count: Int",
			want:  []string{"map: Dictionary<String, Array<Int>>", "count: Int"},
		},
		{
			name:  "comma in string default",
			input: `title: String = "a, b", size: Int`,
			want:  []string{`title: String = "a, b"`, "size: Int"},
		},
		{
			name:  "empty and trailing",
			input: " a: Int , ",
			want:  []string{"a: Int"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTopLevel(tt.input))
		})
	}
}
