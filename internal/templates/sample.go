package templates

import (
	"fmt"
	"strings"

	"github.com/kettlegym/zenithgen/internal/models"
)

// gridSection is one function row of the all-styles grid
type gridSection struct {
	Title string
	Cell  string
}

// sampleData is the data every sample fragment is rendered with
type sampleData struct {
	Name       string
	SampleName string

	States          []string
	ContentControls []string

	TextProperties   []models.Property
	BoolProperties   []models.Property
	NumberProperties []models.Property
	EnumProperties   []models.Property

	HasStyles     bool
	Functions     []models.StyleFunction
	FirstFunction string
	FunctionCases []string
	Cases         []string
	StyleType     string
	StyleCaseType string

	Grid     []gridSection
	CaseCell string

	Preview           string
	PreviewBackground string
	Codegen           string
}

const contentTextState = "contentText"

// RenderSample renders the interactive sample view for an analyzed component.
// example seeds the content state when hints do not declare one.
func RenderSample(info *models.ComponentInfo, hints models.Hints, example string) (string, error) {
	data := newSampleData(info, hints, example)

	names := []string{
		"sample-imports",
		"sample-struct-start",
		"sample-states",
		"sample-view-options",
		"sample-body",
		"sample-preview",
		"sample-configuration",
		"sample-codegen",
	}
	if len(data.Functions) > 0 {
		names = append(names, "sample-helper-selected-style")
	}
	if len(data.Cases) > 0 {
		names = append(names, "sample-helper-color-from-style")
	}
	names = append(names, "sample-helper-contrast-background", "sample-struct-end")
	if len(data.Functions) > 0 {
		names = append(names, "sample-style-function-enum")
	}

	return renderAll(data, names...)
}

func newSampleData(info *models.ComponentInfo, hints models.Hints, example string) sampleData {
	data := sampleData{
		Name:             info.Name,
		SampleName:       info.SampleName(),
		TextProperties:   info.TextProperties,
		BoolProperties:   info.BoolProperties,
		NumberProperties: info.NumberProperties,
		EnumProperties:   info.EnumProperties,
		StyleType:        orDefault(hints.StyleTypeName, info.Name+"Style"),
		StyleCaseType:    orDefault(hints.StyleCaseTypeName, info.Name+"StyleCase"),
	}

	for _, f := range info.StyleFunctions {
		if f.TakesColor() {
			data.Functions = append(data.Functions, f)
			data.FunctionCases = append(data.FunctionCases, fmt.Sprintf("%s = %q", f.Name, f.Name))
		}
	}
	if len(data.Functions) > 0 {
		data.FirstFunction = data.Functions[0].Name
	} else {
		data.Cases = info.StyleCases
	}
	data.HasStyles = len(data.Functions) > 0 || len(data.Cases) > 0

	contentArg := hints.ContentArg
	states := append([]string(nil), hints.ContentStates...)
	data.ContentControls = append([]string(nil), hints.ContentControls...)
	if hints.HasContentParam && contentArg == "" {
		contentArg = contentTextState
		states = append(states, fmt.Sprintf("@State private var %s = %q", contentTextState, orDefault(example, "Exemplo")))
		data.ContentControls = append(data.ContentControls, HorizontalTextField("Conteúdo", contentTextState))
	}

	declared := declaredStates(states)
	groups := []struct {
		kind  propertyKind
		props []models.Property
	}{
		{textProperty, info.TextProperties},
		{boolProperty, info.BoolProperties},
		{numberProperty, info.NumberProperties},
		{enumProperty, info.EnumProperties},
	}
	for _, g := range groups {
		for _, p := range g.props {
			if declared[p.Name] {
				continue
			}
			declared[p.Name] = true
			states = append(states, propertyState(p, g.kind))
		}
	}
	data.States = append(states, data.styleStates()...)

	previewExpr, codegenExpr := data.styleExpressions()
	data.PreviewBackground = data.previewBackground()

	preview := hints.Preview
	if preview == nil {
		preview = func(info *models.ComponentInfo, styleExpr string) string {
			return models.Styled(previewCall(info, hints, contentArg), hints.StyleModifierName, styleExpr)
		}
	}
	codegen := hints.Codegen
	if codegen == nil {
		codegen = func(info *models.ComponentInfo, styleExpr string) string {
			return models.Styled(codegenCall(info, hints, contentArg), hints.StyleModifierName, styleExpr)
		}
	}

	data.Preview = preview(info, previewExpr)
	data.Codegen = codegen(info, codegenExpr)

	for _, f := range data.Functions {
		data.Grid = append(data.Grid, gridSection{
			Title: f.Name,
			Cell:  preview(info, "."+f.Name+"(color)"),
		})
	}
	if len(data.Cases) > 0 {
		data.CaseCell = preview(info, "style.style()")
	}

	return data
}

func (d sampleData) styleStates() []string {
	switch {
	case len(d.Functions) > 0:
		return []string{
			"@State private var selectedColorName: ColorName = .contentA",
			fmt.Sprintf("@State private var selectedStyleFunction = %q", d.FirstFunction),
			"@State private var selectedBackgroundColor: ColorName = .backgroundA",
		}
	case len(d.Cases) > 0:
		return []string{fmt.Sprintf("@State private var selectedStyle = %s.%s", d.StyleCaseType, d.Cases[0])}
	}
	return nil
}

// styleExpressions returns the style argument for the live preview and the
// interpolated one for the generated code
func (d sampleData) styleExpressions() (string, string) {
	switch {
	case len(d.Functions) > 0:
		return "getSelected" + d.StyleType + "()",
			`.\(selectedStyleFunction)(.\(String(describing: selectedColorName)))`
	case len(d.Cases) > 0:
		return "selectedStyle.style()",
			d.StyleCaseType + `.\(String(describing: selectedStyle)).style()`
	}
	return "", ""
}

func (d sampleData) previewBackground() string {
	switch {
	case len(d.Functions) > 0:
		return "useContrastBackground ? getContrastBackground(for: selectedColorName) : colors.backgroundB.opacity(0.2)"
	case len(d.Cases) > 0:
		return "useContrastBackground ? getContrastBackground(for: getColorFromStyle(selectedStyle)) : colors.backgroundB.opacity(0.2)"
	}
	return "useContrastBackground ? colors.backgroundA : colors.backgroundB.opacity(0.2)"
}

type propertyKind int

const (
	textProperty propertyKind = iota
	boolProperty
	numberProperty
	enumProperty
)

// propertyState declares the @State backing a configurable property
func propertyState(p models.Property, kind propertyKind) string {
	if p.HasDefault() {
		return fmt.Sprintf("@State private var %s = %s", p.Name, p.Default)
	}

	switch kind {
	case textProperty:
		return fmt.Sprintf("@State private var %s = %q", p.Name, "Exemplo")
	case boolProperty:
		return fmt.Sprintf("@State private var %s = false", p.Name)
	case numberProperty:
		if p.IsInteger() {
			return fmt.Sprintf("@State private var %s = 0", p.Name)
		}
		return fmt.Sprintf("@State private var %s = 0.0", p.Name)
	}
	return fmt.Sprintf("@State private var %s: %s = %s", p.Name, p.Type, enumDefault(p.Type))
}

// enumDefault picks a plausible case for an enum-typed property
func enumDefault(typeName string) string {
	switch {
	case strings.Contains(typeName, "FontName"):
		return ".medium"
	case strings.Contains(typeName, "ColorName"):
		return ".highlightA"
	}
	segments := strings.Split(strings.TrimRight(typeName, "?!"), ".")
	return "." + strings.ToLower(segments[len(segments)-1])
}

// previewCall is the generic live call, e.g. `Badge(contentText, size: size)`
func previewCall(info *models.ComponentInfo, hints models.Hints, contentArg string) string {
	var args []string
	if hints.HasContentParam && contentArg != "" {
		args = append(args, contentArg)
	}
	for _, p := range configurable(info) {
		args = append(args, p.Name+": "+p.Name)
	}

	call := info.Name + "(" + strings.Join(args, ", ") + ")"
	if hints.IsButtonType {
		call += " {\n    print(\"" + info.Name + " acionado\")\n}"
	}
	return call
}

// codegenCall is previewCall with Swift interpolations of the current values
func codegenCall(info *models.ComponentInfo, hints models.Hints, contentArg string) string {
	var args []string
	if hints.HasContentParam && contentArg != "" {
		args = append(args, `"\(`+contentArg+`)"`)
	}
	for _, p := range info.TextProperties {
		args = append(args, p.Name+`: "\(`+p.Name+`)"`)
	}
	for _, p := range info.BoolProperties {
		args = append(args, p.Name+`: \(`+p.Name+`)`)
	}
	for _, p := range info.NumberProperties {
		args = append(args, p.Name+`: \(`+p.Name+`)`)
	}
	for _, p := range info.EnumProperties {
		args = append(args, p.Name+`: .\(String(describing: `+p.Name+`))`)
	}

	call := info.Name + "(" + strings.Join(args, ", ") + ")"
	if hints.IsButtonType {
		call += " {\n    // ação\n}"
	}
	return call
}

func configurable(info *models.ComponentInfo) []models.Property {
	var props []models.Property
	props = append(props, info.TextProperties...)
	props = append(props, info.BoolProperties...)
	props = append(props, info.NumberProperties...)
	props = append(props, info.EnumProperties...)
	return props
}

// declaredStates returns the names declared by `var <name>` in states
func declaredStates(states []string) map[string]bool {
	declared := make(map[string]bool)
	for _, s := range states {
		fields := strings.Fields(s)
		for i, f := range fields {
			if f == "var" && i+1 < len(fields) {
				declared[strings.TrimSuffix(fields[i+1], ":")] = true
				break
			}
		}
	}
	return declared
}

// HorizontalTextField is the rounded text field control bound to a sample
// state, padded to the sample's width
func HorizontalTextField(title, binding string) string {
	return "TextField(\"" + title + "\", text: $" + binding + ")\n" +
		"    .textFieldStyle(RoundedBorderTextFieldStyle())\n" +
		"    .padding(.horizontal)"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
