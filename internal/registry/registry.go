package registry

import (
	"sort"
	"strings"

	"github.com/kettlegym/zenithgen/internal/models"
)

// Registry maps component names to generation hints. It is built once per
// run by a Builder and never changes afterwards.
type Registry struct {
	entries map[string]models.Hints
}

var _ HintProvider = (*Registry)(nil)

// Get returns the hints for name. Unknown names get a fallback record whose
// names are derived from the component name.
func (r *Registry) Get(name string) models.Hints {
	if h, ok := r.entries[name]; ok {
		return h.Clone()
	}
	return fallbackHints(name)
}

// Has reports whether name was seeded, configured or discovered
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns every registered name in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesOfKind returns the sorted names registered with the given kind
func (r *Registry) NamesOfKind(kind models.ComponentKind) []string {
	var names []string
	for _, name := range r.Names() {
		if r.entries[name].Kind == kind {
			names = append(names, name)
		}
	}
	return names
}

// Size returns the number of registered components
func (r *Registry) Size() int {
	return len(r.entries)
}

// ExampleContent returns the example text shown in a component's sample
func (r *Registry) ExampleContent(name string) string {
	if h, ok := r.entries[name]; ok && h.ExampleContent != "" {
		return h.ExampleContent
	}
	if example, ok := exampleContent[name]; ok {
		return example
	}
	return DefaultExample
}

// UpdateFromAnalysis returns the hints for info.Name refined by what was
// scraped. The registry itself is not modified.
func (r *Registry) UpdateFromAnalysis(info *models.ComponentInfo) models.Hints {
	h := r.Get(info.Name)

	if info.Name == "Button" {
		h.IsButtonType = true
	}
	for _, p := range info.ActionParams() {
		if strings.Contains(p.Type, "Void") {
			h.IsButtonType = true
		}
	}

	if len(info.InitParams) > 0 {
		first := info.InitParams[0]
		if first.Label == "_" && strings.TrimSpace(first.Type) == "String" {
			h.HasContentParam = true
		}
	}

	switch {
	case len(info.StyleFunctions) > 0:
		variants := make([]string, 0, len(info.StyleFunctions))
		for _, f := range info.StyleFunctions {
			variants = append(variants, f.Name)
		}
		h.DefaultStyleVariants = variants
	case len(info.StyleCases) > 0:
		h.DefaultStyleVariants = append([]string(nil), info.StyleCases...)
	}

	if h.StyleTypeName == "" && info.HasStyles() {
		h.StyleTypeName = info.Name + "Style"
	}
	h.Kind = info.Kind

	return h
}

func fallbackHints(name string) models.Hints {
	return models.Hints{
		StyleModifierName: strings.ToLower(name) + "Style",
		StyleTypeName:     name + "Style",
		StyleCaseTypeName: name + "StyleCase",
		Kind:              models.CustomComponent,
		Source:            models.SourceFallback,
	}
}
