package registry

import (
	"strings"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/discovery"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// Builder collects registry entries in explicit initialization steps.
// Errors are accumulated and returned by Build.
type Builder struct {
	entries *utils.NameTable[models.Hints]
	errs    *errors.MultipleErrors
}

// NewBuilder creates an empty builder whose names must be UpperCamelCase
func NewBuilder() *Builder {
	return &Builder{
		entries: utils.NewNameTable[models.Hints]("component",
			utils.NotEmpty("component name"),
			utils.IsSwiftTypeName("component name"),
		),
		errs: errors.NewMultipleErrors(),
	}
}

// Seed adds the built-in SwiftUI kinds
func (b *Builder) Seed() *Builder {
	for name, h := range seeds() {
		h.Kind = models.NativeComponent
		h.Source = models.SourceSeeded
		b.put(name, h)
	}
	return b
}

// RegisterConfig adds or refines entries declared in the config file.
// Seeded snippets survive a config override.
func (b *Builder) RegisterConfig(components map[string]config.ComponentConfig) *Builder {
	for name, c := range components {
		base, ok := b.entries.Lookup(name)
		if !ok {
			base = fallbackHints(name)
		}
		b.put(name, applyConfig(base.Clone(), c))
	}
	return b
}

// Discover registers every discovered component that is not known yet
func (b *Builder) Discover(entries []discovery.Entry) *Builder {
	for _, e := range entries {
		if _, err := b.entries.PutIfAbsent(e.Name, discoveredHints(e)); err != nil {
			b.errs.Add(errors.Wrapf(errors.ValidationErrorCode, err, "cannot register discovered component '%s'", e.Name))
		}
	}
	return b
}

// Register adds or replaces a single entry. Empty style names are derived
// from the component name.
func (b *Builder) Register(name string, hints models.Hints) *Builder {
	fallback := fallbackHints(name)
	if hints.StyleModifierName == "" {
		hints.StyleModifierName = fallback.StyleModifierName
	}
	if hints.StyleTypeName == "" {
		hints.StyleTypeName = fallback.StyleTypeName
	}
	if hints.StyleCaseTypeName == "" {
		hints.StyleCaseTypeName = fallback.StyleCaseTypeName
	}
	if hints.Source == "" {
		hints.Source = models.SourceConfig
	}
	b.put(name, hints)
	return b
}

// Build returns the immutable registry or every error met while building
func (b *Builder) Build() (*Registry, error) {
	if err := b.errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return &Registry{entries: b.entries.Snapshot()}, nil
}

func (b *Builder) put(name string, hints models.Hints) {
	if err := b.entries.Put(name, hints); err != nil {
		b.errs.Add(errors.Wrapf(errors.ValidationErrorCode, err, "cannot register component '%s'", name))
	}
}

func applyConfig(h models.Hints, c config.ComponentConfig) models.Hints {
	h.HasContentParam = h.HasContentParam || c.HasContentParam
	h.IsButtonType = h.IsButtonType || c.IsButton

	if c.Example != "" {
		h.ExampleContent = c.Example
	}
	if c.StyleModifier != "" {
		h.StyleModifierName = c.StyleModifier
	}
	if c.StyleType != "" {
		h.StyleTypeName = c.StyleType
	}
	if c.StyleCaseType != "" {
		h.StyleCaseTypeName = c.StyleCaseType
	}
	if len(c.DefaultVariants) > 0 {
		h.DefaultStyleVariants = append([]string(nil), c.DefaultVariants...)
	}

	switch c.Kind {
	case "native":
		h.Kind = models.NativeComponent
	case "custom":
		h.Kind = models.CustomComponent
	}

	h.Source = models.SourceConfig
	return h
}

func discoveredHints(e discovery.Entry) models.Hints {
	h := fallbackHints(e.Name)
	if !e.HasStylesFile() {
		h.StyleTypeName = ""
	}

	_, known := exampleContent[e.Name]
	h.HasContentParam = known
	h.IsButtonType = strings.HasSuffix(e.Name, "Button")
	h.Kind = e.Kind
	h.Source = models.SourceDiscovered

	return h
}
