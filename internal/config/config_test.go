package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join(".", ZenithMarker), cfg.ComponentsRoot())
	assert.Equal(t, filepath.Join("Packages/ZenithSample/ZenithSample", "ZenithSampleView.swift"), cfg.SampleIndexPath())
	assert.Equal(t, "BaseElements/Natives", cfg.CategoryPath(models.NativeComponent))
	assert.Equal(t, filepath.Join(ZenithMarker, "Components/Customs"), cfg.CategoryDir(models.CustomComponent))
	assert.Equal(t,
		filepath.Join("Packages/ZenithSample/ZenithSample", "Components/Customs", "Badge", "BadgeSample.swift"),
		cfg.SamplePath("Components/Customs", "Badge"))
	assert.Empty(t, cfg.Source())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
root: /work/app
cache_size: 32
exclude: ["**/Legacy/**"]
build:
  target: samples
components:
  Chip:
    has_content_param: true
    example: Novo
    style_modifier: chipStyle
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/work/app", cfg.Root)
	assert.Equal(t, 32, cfg.CacheSize)
	assert.Equal(t, []string{"**/Legacy/**"}, cfg.Exclude)
	assert.Equal(t, "make", cfg.Build.Tool)
	assert.Equal(t, "samples", cfg.Build.Target)
	assert.Equal(t, "BaseElements/Natives", cfg.NativeDir)
	assert.Equal(t, []string{"body", "colors", "fonts", "themeConfigurator"}, cfg.IgnoredProperties)
	assert.Equal(t, path, cfg.Source())

	require.Contains(t, cfg.Components, "Chip")
	chip := cfg.Components["Chip"]
	assert.True(t, chip.HasContentParam)
	assert.Equal(t, "Novo", chip.Example)
	assert.Equal(t, "chipStyle", chip.StyleModifier)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("root: [unterminated"), 0644))
	_, err = Load(broken)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty native dir", func(c *Config) { c.NativeDir = "" }, "native_dir"},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }, "cache_size"},
		{"lowercase component", func(c *Config) {
			c.Components = map[string]ComponentConfig{"chip": {}}
		}, "components.chip"},
		{"unknown kind", func(c *Config) {
			c.Components = map[string]ComponentConfig{"Chip": {Kind: "hybrid"}}
		}, "components.Chip.kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestFindZenithRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ZenithMarker), 0755))
	nested := filepath.Join(root, "Scripts", "Generate")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindZenithRoot(nested, 4)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = FindZenithRoot(nested, 0)
	assert.True(t, errors.IsNotFound(err))
}

func TestValidate_LocatesFieldInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zenithgen.yaml")
	content := "root: .\n" +
		"components:\n" +
		"  Chip:\n" +
		"    example: Novo\n" +
		"  Badge:\n" +
		"    kind: hybrid\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)

	var genErr errors.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, errors.SourceLocation{File: path, Line: 6}, genErr.Location())
	assert.Contains(t, err.Error(), path+":6: invalid configuration")
}

func TestLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zenithgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build:\n  target: samples\ncomponents:\n  Chip: {}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	tests := []struct {
		field string
		line  int
	}{
		{"build.target", 2},
		{"build.tool", 1},
		{"components.Chip.kind", 4},
		{"native_dir", 0},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, errors.SourceLocation{File: path, Line: tt.line}, cfg.Location(tt.field))
		})
	}

	assert.True(t, Default().Location("root").IsEmpty())
}
