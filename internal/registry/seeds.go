package registry

import (
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/templates"
)

// exampleContent is the built-in name to example text table
var exampleContent = map[string]string{
	"Text":      "Exemplo de texto",
	"Button":    "Botão de Exemplo",
	"Toggle":    "Toggle de Exemplo",
	"TextField": "Digite aqui",
}

// DefaultExample is used when neither hints nor the built-in table know a name
const DefaultExample = "Exemplo"

// seeds are the SwiftUI-backed kinds every registry starts with
func seeds() map[string]models.Hints {
	return map[string]models.Hints{
		"Text": {
			HasContentParam:      true,
			StyleModifierName:    "textStyle",
			StyleTypeName:        "TextStyle",
			StyleCaseTypeName:    "TextStyleCase",
			DefaultStyleVariants: []string{"smallContentA"},
			ExampleContent:       exampleContent["Text"],
			ContentStates:        []string{`@State private var sampleText = "Exemplo de texto"`},
			ContentControls:      []string{templates.HorizontalTextField("Texto de exemplo", "sampleText")},
			ContentArg:           "sampleText",
			SeedInitParams: []models.InitParam{
				{Label: "_", Name: "content", Type: "String"},
			},
			Preview: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Text(sampleText)", "textStyle", styleExpr)
			},
			Codegen: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled(`Text("\(sampleText)")`, "textStyle", styleExpr)
			},
		},
		"Button": {
			HasContentParam:      true,
			IsButtonType:         true,
			StyleModifierName:    "buttonStyle",
			StyleTypeName:        "ButtonStyle",
			StyleCaseTypeName:    "ButtonStyleCase",
			DefaultStyleVariants: []string{"contentA", "highlightA", "backgroundD"},
			ExampleContent:       exampleContent["Button"],
			ContentStates:        []string{`@State private var buttonTitle = "Botão de Exemplo"`},
			ContentControls:      []string{templates.HorizontalTextField("Título do botão", "buttonTitle")},
			ContentArg:           "buttonTitle",
			SeedInitParams: []models.InitParam{
				{Label: "_", Name: "title", Type: "String"},
				{Name: "action", Type: "@escaping () -> Void", IsAction: true},
			},
			Preview: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Button(buttonTitle) {\n    print(\"Botão pressionado\")\n}", "buttonStyle", styleExpr)
			},
			Codegen: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Button(\"\\(buttonTitle)\") {\n    // ação\n}", "buttonStyle", styleExpr)
			},
		},
		"Toggle": {
			HasContentParam:      true,
			StyleModifierName:    "toggleStyle",
			StyleTypeName:        "ToggleStyle",
			StyleCaseTypeName:    "ToggleStyleCase",
			DefaultStyleVariants: []string{"mediumHighlightA"},
			ExampleContent:       exampleContent["Toggle"],
			ContentStates: []string{
				`@State private var toggleLabel = "Toggle de Exemplo"`,
				`@State private var isEnabled = false`,
			},
			ContentControls: []string{templates.HorizontalTextField("Rótulo", "toggleLabel")},
			ContentArg:      "toggleLabel",
			SeedInitParams: []models.InitParam{
				{Name: "isOn", Type: "Binding<Bool>"},
				{Name: "label", Type: "String"},
			},
			Preview: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Toggle(toggleLabel, isOn: $isEnabled)", "toggleStyle", styleExpr)
			},
			Codegen: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled(`Toggle("\(toggleLabel)", isOn: .constant(\(isEnabled)))`, "toggleStyle", styleExpr)
			},
		},
		"TextField": {
			HasContentParam:      true,
			StyleModifierName:    "textFieldStyle",
			StyleTypeName:        "TextFieldStyle",
			StyleCaseTypeName:    "TextFieldStyleCase",
			DefaultStyleVariants: []string{"contentA"},
			ExampleContent:       exampleContent["TextField"],
			ContentStates: []string{
				`@State private var textValue = ""`,
				`@State private var placeholder = "Digite aqui"`,
			},
			ContentControls: []string{templates.HorizontalTextField("Placeholder", "placeholder")},
			ContentArg:      "placeholder",
			SeedInitParams: []models.InitParam{
				{Name: "text", Type: "Binding<String>"},
				{Name: "placeholder", Type: "String"},
			},
			Preview: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("TextField(placeholder, text: $textValue)", "textFieldStyle", styleExpr)
			},
			Codegen: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled(`TextField("\(placeholder)", text: $text)`, "textFieldStyle", styleExpr)
			},
		},
		"Divider": {
			StyleModifierName:    "dividerStyle",
			StyleTypeName:        "DividerStyle",
			StyleCaseTypeName:    "DividerStyleCase",
			DefaultStyleVariants: []string{"contentA"},
			Preview: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Divider()", "dividerStyle", styleExpr)
			},
			Codegen: func(_ *models.ComponentInfo, styleExpr string) string {
				return models.Styled("Divider()", "dividerStyle", styleExpr)
			},
		},
	}
}
