package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/discovery"
	"github.com/kettlegym/zenithgen/internal/models"
)

func buildSeeded(t *testing.T) *Registry {
	t.Helper()
	r, err := NewBuilder().Seed().Build()
	require.NoError(t, err)
	return r
}

func TestRegistry_Seeded(t *testing.T) {
	r := buildSeeded(t)

	assert.Equal(t, []string{"Button", "Divider", "Text", "TextField", "Toggle"}, r.Names())
	assert.Equal(t, r.Names(), r.NamesOfKind(models.NativeComponent))
	assert.Empty(t, r.NamesOfKind(models.CustomComponent))

	button := r.Get("Button")
	assert.True(t, button.IsButtonType)
	assert.True(t, button.HasContentParam)
	assert.Equal(t, "buttonStyle", button.StyleModifierName)
	assert.Equal(t, []string{"contentA", "highlightA", "backgroundD"}, button.DefaultStyleVariants)
	assert.Equal(t, models.SourceSeeded, button.Source)
	require.NotNil(t, button.Preview)
	assert.Equal(t, "Button(buttonTitle) {\n    print(\"Botão pressionado\")\n}\n    .buttonStyle(getSelectedButtonStyle())",
		button.Preview(nil, "getSelectedButtonStyle()"))

	assert.Equal(t, []string{"TextField(\"Título do botão\", text: $buttonTitle)\n" +
		"    .textFieldStyle(RoundedBorderTextFieldStyle())\n" +
		"    .padding(.horizontal)"}, button.ContentControls)

	text := r.Get("Text")
	assert.Equal(t, "Text(sampleText)", text.Preview(nil, ""))
	assert.Equal(t, `Text("\(sampleText)")`+"\n    .textStyle(selectedStyle.style())", text.Codegen(nil, "selectedStyle.style()"))
}

func TestRegistry_GetFallback(t *testing.T) {
	r := buildSeeded(t)

	h := r.Get("Unknown")
	assert.False(t, r.Has("Unknown"))
	assert.Equal(t, "unknownStyle", h.StyleModifierName)
	assert.Equal(t, "UnknownStyle", h.StyleTypeName)
	assert.Equal(t, "UnknownStyleCase", h.StyleCaseTypeName)
	assert.Equal(t, models.SourceFallback, h.Source)
	assert.Nil(t, h.Preview)
}

func TestRegistry_GetReturnsCopies(t *testing.T) {
	r := buildSeeded(t)

	h := r.Get("Button")
	h.DefaultStyleVariants[0] = "mutated"
	assert.Equal(t, "contentA", r.Get("Button").DefaultStyleVariants[0])
}

func TestRegistry_ExampleContent(t *testing.T) {
	r, err := NewBuilder().Seed().
		RegisterConfig(map[string]config.ComponentConfig{"Chip": {Example: "Novo"}}).
		Build()
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{"Text", "Exemplo de texto"},
		{"Button", "Botão de Exemplo"},
		{"Toggle", "Toggle de Exemplo"},
		{"TextField", "Digite aqui"},
		{"Chip", "Novo"},
		{"Divider", "Exemplo"},
		{"Whatever", "Exemplo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ExampleContent(tt.name))
		})
	}
}

func TestBuilder_ConfigKeepsSeededSnippets(t *testing.T) {
	r, err := NewBuilder().Seed().
		RegisterConfig(map[string]config.ComponentConfig{
			"Text": {StyleModifier: "zenithText"},
			"Chip": {HasContentParam: true, StyleModifier: "chipStyle", Kind: "custom"},
		}).
		Build()
	require.NoError(t, err)

	text := r.Get("Text")
	assert.Equal(t, "zenithText", text.StyleModifierName)
	assert.NotNil(t, text.Preview)
	assert.Equal(t, models.SourceConfig, text.Source)

	chip := r.Get("Chip")
	assert.True(t, chip.HasContentParam)
	assert.Equal(t, "chipStyle", chip.StyleModifierName)
	assert.Equal(t, "ChipStyle", chip.StyleTypeName)
	assert.Equal(t, models.CustomComponent, chip.Kind)
}

func TestBuilder_Discover(t *testing.T) {
	entries := []discovery.Entry{
		{Name: "Button", Kind: models.NativeComponent, Files: []string{"ButtonView.swift"}},
		{Name: "IconButton", Kind: models.CustomComponent, Files: []string{"IconButton.swift", "IconButtonStyles.swift"}},
		{Name: "Badge", Kind: models.CustomComponent, Files: []string{"Badge.swift"}},
	}

	r, err := NewBuilder().Seed().Discover(entries).Build()
	require.NoError(t, err)

	assert.Equal(t, models.SourceSeeded, r.Get("Button").Source)

	icon := r.Get("IconButton")
	assert.Equal(t, models.SourceDiscovered, icon.Source)
	assert.True(t, icon.IsButtonType)
	assert.Equal(t, "IconButtonStyle", icon.StyleTypeName)
	assert.Equal(t, "iconbuttonStyle", icon.StyleModifierName)

	badge := r.Get("Badge")
	assert.False(t, badge.IsButtonType)
	assert.False(t, badge.HasContentParam)
	assert.Empty(t, badge.StyleTypeName)
	assert.Equal(t, []string{"Badge", "IconButton"}, r.NamesOfKind(models.CustomComponent))
}

func TestBuilder_RegisterValidation(t *testing.T) {
	_, err := NewBuilder().Register("lowercase", models.Hints{}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowercase")

	_, err = NewBuilder().Register("", models.Hints{}).Build()
	require.Error(t, err)

	r, err := NewBuilder().Register("Card", models.Hints{IsButtonType: true}).Build()
	require.NoError(t, err)
	assert.Equal(t, "cardStyle", r.Get("Card").StyleModifierName)
	assert.Equal(t, models.SourceConfig, r.Get("Card").Source)
}

func TestRegistry_UpdateFromAnalysis(t *testing.T) {
	r := buildSeeded(t)

	t.Run("action parameter makes it button-like", func(t *testing.T) {
		info := models.NewComponentInfo("Chip", "Components/Customs", models.CustomComponent, "")
		info.InitParams = []models.InitParam{
			{Label: "_", Name: "title", Type: "String"},
			{Name: "action", Type: "@escaping () -> Void", IsAction: true},
		}
		info.StyleFunctions = []models.StyleFunction{{Name: "contentA"}, {Name: "highlightA"}}

		h := r.UpdateFromAnalysis(info)
		assert.True(t, h.IsButtonType)
		assert.True(t, h.HasContentParam)
		assert.Equal(t, []string{"contentA", "highlightA"}, h.DefaultStyleVariants)
		assert.Equal(t, models.CustomComponent, h.Kind)

		again := r.UpdateFromAnalysis(info)
		assert.Equal(t, h.DefaultStyleVariants, again.DefaultStyleVariants)
		assert.False(t, r.Has("Chip"))
	})

	t.Run("cases become variants", func(t *testing.T) {
		info := models.NewComponentInfo("Card", "Components/Customs", models.CustomComponent, "")
		info.StyleCases = []string{"primary", "secondary"}

		h := r.UpdateFromAnalysis(info)
		assert.False(t, h.IsButtonType)
		assert.False(t, h.HasContentParam)
		assert.Equal(t, []string{"primary", "secondary"}, h.DefaultStyleVariants)
	})

	t.Run("stored variants kept without styles", func(t *testing.T) {
		info := models.NewComponentInfo("Button", "BaseElements/Natives", models.NativeComponent, "")

		h := r.UpdateFromAnalysis(info)
		assert.True(t, h.IsButtonType)
		assert.Equal(t, []string{"contentA", "highlightA", "backgroundD"}, h.DefaultStyleVariants)
	})
}
