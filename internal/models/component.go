package models

import "strings"

// ComponentKind distinguishes SwiftUI-backed components from custom ones
type ComponentKind int

const (
	NativeComponent ComponentKind = iota
	CustomComponent
)

// String returns the directory segment used for the kind
func (k ComponentKind) String() string {
	if k == CustomComponent {
		return "Customs"
	}
	return "Natives"
}

// Property is a var/let declaration scraped from a component source file
type Property struct {
	Mutability string // "var" or "let"
	Name       string
	Type       string
	Default    string
}

// HasDefault reports whether the declaration carried an initial value
func (p Property) HasDefault() bool {
	return p.Default != ""
}

// IsInteger reports whether the declared type is an integer type
func (p Property) IsInteger() bool {
	return strings.Contains(p.Type, "Int")
}

// StyleFunction is a static style factory found on a style extension
type StyleFunction struct {
	Name      string
	ParamName string
	ParamType string
	IsNative  bool
}

// TakesColor reports whether the factory is parameterized by a ColorName
func (f StyleFunction) TakesColor() bool {
	return f.ParamType == "ColorName"
}

// InitParam is a single parameter of a public initializer
type InitParam struct {
	Label    string
	Name     string
	Type     string
	Default  string
	IsAction bool
}

// RoleAmbiguity records that more than one file matched a file role
type RoleAmbiguity struct {
	Role    string
	Chosen  string
	Ignored []string
}

// ComponentInfo collects everything scraped about a single component
type ComponentInfo struct {
	Name     string
	TypePath string
	Kind     ComponentKind
	Dir      string

	ViewPath   string
	ConfigPath string
	StylesPath string

	Properties        []Property
	EnumProperties    []Property
	TextProperties    []Property
	BoolProperties    []Property
	NumberProperties  []Property
	ClosureProperties []Property
	ComplexProperties []Property

	StyleFunctions []StyleFunction
	StyleCases     []string

	InitParams     []InitParam
	HasActionParam bool

	ComponentType string
	Ambiguities   []RoleAmbiguity
}

// NewComponentInfo creates an empty info for a located component
func NewComponentInfo(name, typePath string, kind ComponentKind, dir string) *ComponentInfo {
	return &ComponentInfo{
		Name:     name,
		TypePath: typePath,
		Kind:     kind,
		Dir:      dir,
	}
}

// HasStyles reports whether any style variant was scraped
func (c *ComponentInfo) HasStyles() bool {
	return len(c.StyleFunctions) > 0 || len(c.StyleCases) > 0
}

// ActionParams returns the closure-typed initializer parameters
func (c *ComponentInfo) ActionParams() []InitParam {
	var actions []InitParam
	for _, p := range c.InitParams {
		if p.IsAction {
			actions = append(actions, p)
		}
	}
	return actions
}

// SampleName returns the name of the generated sample view
func (c *ComponentInfo) SampleName() string {
	return c.Name + "Sample"
}
