package parser

import (
	"regexp"

	"github.com/kettlegym/zenithgen/internal/models"
)

var (
	styleFuncPattern = regexp.MustCompile(`static\s+func\s+(\w+)\s*\(\s*(?:_\s+)?(\w+)\s*:\s*(\w+)`)
	styleCaseEnum    = regexp.MustCompile(`enum\s+\w+StyleCase\b[^{]*\{`)
	casePattern      = regexp.MustCompile(`(?m)^\s*case\s+([A-Za-z_]\w*(?:\s*,\s*[A-Za-z_]\w*)*)`)
	caseNameSplitter = regexp.MustCompile(`\s*,\s*`)
)

// extensionForm is one of the extension headers a style block may use
type extensionForm struct {
	pattern func(component string) *regexp.Regexp
	native  bool
}

// extensionForms are tried in priority order; the first form that yields
// at least one factory function wins
var extensionForms = []extensionForm{
	{
		pattern: func(component string) *regexp.Regexp {
			q := regexp.QuoteMeta(component)
			return regexp.MustCompile(`extension\s+` + q + `Style\s+where\s+Self\s*==\s*Base` + q + `Style\b[^{]*\{`)
		},
	},
	{
		pattern: func(component string) *regexp.Regexp {
			return regexp.MustCompile(`extension\s+` + regexp.QuoteMeta(component) + `\b(?:\s*:[^{]*|\s+where[^{]*)?\s*\{`)
		},
		native: true,
	},
	{
		pattern: func(component string) *regexp.Regexp {
			return regexp.MustCompile(`extension\s+` + regexp.QuoteMeta(component) + `Style\b[^{]*\{`)
		},
	},
}

// ExtractStyleFunctions returns the style factory functions declared for a
// component, in source order. Overloads collapse onto their first
// declaration since a sample case can only call a function by name.
func ExtractStyleFunctions(content, component string) []models.StyleFunction {
	for _, form := range extensionForms {
		var functions []models.StyleFunction
		seen := make(map[string]bool)

		for _, loc := range form.pattern(component).FindAllStringIndex(content, -1) {
			body, ok := BraceBody(content, loc[1]-1)
			if !ok {
				continue
			}
			for _, fn := range functionsIn(body.Text(content), form.native) {
				if seen[fn.Name] {
					continue
				}
				seen[fn.Name] = true
				functions = append(functions, fn)
			}
		}

		if len(functions) > 0 {
			return functions
		}
	}

	return nil
}

func functionsIn(block string, native bool) []models.StyleFunction {
	var functions []models.StyleFunction
	for _, m := range styleFuncPattern.FindAllStringSubmatch(block, -1) {
		functions = append(functions, models.StyleFunction{
			Name:      m[1],
			ParamName: m[2],
			ParamType: m[3],
			IsNative:  native,
		})
	}
	return functions
}

// ExtractStyleCases returns the cases of the first *StyleCase enum in
// declaration order, without duplicates
func ExtractStyleCases(content string) []string {
	loc := styleCaseEnum.FindStringIndex(content)
	if loc == nil {
		return nil
	}

	body, ok := BraceBody(content, loc[1]-1)
	if !ok {
		return nil
	}

	var cases []string
	seen := make(map[string]bool)
	for _, m := range casePattern.FindAllStringSubmatch(body.Text(content), -1) {
		for _, name := range caseNameSplitter.Split(m[1], -1) {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			cases = append(cases, name)
		}
	}

	return cases
}

// ExtractStyles scrapes factory functions and falls back to StyleCase cases
// only when no function was found
func ExtractStyles(content, component string) ([]models.StyleFunction, []string) {
	if functions := ExtractStyleFunctions(content, component); len(functions) > 0 {
		return functions, nil
	}
	return nil, ExtractStyleCases(content)
}
