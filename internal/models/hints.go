package models

// SnippetFunc renders a Swift snippet for a component. styleExpr is the
// expression the snippet should pass to the style modifier, or "" when the
// component has no scraped styles.
type SnippetFunc func(info *ComponentInfo, styleExpr string) string

// HintSource records where a registry entry came from
type HintSource string

const (
	SourceSeeded     HintSource = "seeded"
	SourceConfig     HintSource = "config"
	SourceDiscovered HintSource = "discovered"
	SourceFallback   HintSource = "fallback"
)

// Hints drives template selection for a component kind
type Hints struct {
	HasContentParam   bool
	IsButtonType      bool
	StyleModifierName string
	StyleTypeName     string
	StyleCaseTypeName string

	// Preview and Codegen override the generic snippets when set
	Preview SnippetFunc
	Codegen SnippetFunc

	DefaultStyleVariants []string
	ExampleContent       string

	// ContentStates are extra @State declarations, without indentation
	ContentStates []string
	// ContentControls are extra configuration controls, without indentation
	ContentControls []string
	// ContentArg is the state passed as the unlabeled content argument
	ContentArg string

	SeedInitParams []InitParam
	Kind           ComponentKind
	Source         HintSource
}

// Clone returns a copy whose slices can be modified independently
func (h Hints) Clone() Hints {
	h.DefaultStyleVariants = append([]string(nil), h.DefaultStyleVariants...)
	h.ContentStates = append([]string(nil), h.ContentStates...)
	h.ContentControls = append([]string(nil), h.ContentControls...)
	h.SeedInitParams = append([]InitParam(nil), h.SeedInitParams...)
	return h
}

// Styled appends `.modifier(styleExpr)` on its own line to a view expression.
// An empty styleExpr leaves call unchanged.
func Styled(call, modifier, styleExpr string) string {
	if styleExpr == "" || modifier == "" {
		return call
	}
	return call + "\n    ." + modifier + "(" + styleExpr + ")"
}
