package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// DefaultFileName is looked up in the working directory when no -config
// flag is given
const DefaultFileName = ".zenithgen.yaml"

// ZenithMarker is the directory whose presence identifies the project root
const ZenithMarker = "Packages/Zenith/Sources/Zenith"

// Config represents the .zenithgen.yaml configuration.
type Config struct {
	Root              string                     `yaml:"root"`
	ComponentsPath    string                     `yaml:"components_path"`
	SamplesPath       string                     `yaml:"samples_path"`
	NativeDir         string                     `yaml:"native_dir"`
	CustomDir         string                     `yaml:"custom_dir"`
	SampleIndex       string                     `yaml:"sample_index"`
	IgnoredProperties []string                   `yaml:"ignored_properties"`
	Exclude           []string                   `yaml:"exclude"`
	CacheSize         int                        `yaml:"cache_size"`
	Build             BuildConfig                `yaml:"build"`
	Components        map[string]ComponentConfig `yaml:"components"`

	source string
	// lines maps dotted keys of the loaded file to their line numbers
	lines map[string]int
}

// BuildConfig names the build tool invocation run after scaffolding.
type BuildConfig struct {
	Tool   string `yaml:"tool"`
	Target string `yaml:"target"`
}

// ComponentConfig declares generation hints for a component by name.
type ComponentConfig struct {
	Kind            string   `yaml:"kind"`
	HasContentParam bool     `yaml:"has_content_param"`
	IsButton        bool     `yaml:"is_button"`
	Example         string   `yaml:"example"`
	StyleModifier   string   `yaml:"style_modifier"`
	StyleType       string   `yaml:"style_type"`
	StyleCaseType   string   `yaml:"style_case_type"`
	DefaultVariants []string `yaml:"default_variants"`
}

// Default returns a Config with the layout of a standard Zenith checkout.
func Default() *Config {
	return &Config{
		Root:              ".",
		ComponentsPath:    ZenithMarker,
		SamplesPath:       "Packages/ZenithSample/ZenithSample",
		NativeDir:         "BaseElements/Natives",
		CustomDir:         "Components/Customs",
		SampleIndex:       "ZenithSampleView.swift",
		IgnoredProperties: []string{"body", "colors", "fonts", "themeConfigurator"},
		Exclude:           []string{"**/Tests/**", "**/.build/**"},
		CacheSize:         256,
		Build: BuildConfig{
			Tool:   "make",
			Target: "generate",
		},
	}
}

// Load reads a configuration file from path. An empty path looks for
// DefaultFileName in the working directory and falls back to the defaults
// when it does not exist. Missing fields keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return Default(), nil
		}
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("config file", path).
				WithSuggestion("create " + DefaultFileName + " or omit -config to use the defaults")
		}
		return nil, errors.WrapConfigurationError(path, "read", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigurationError(path, "parse", err)
	}
	cfg.source = path

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil {
		cfg.lines = make(map[string]int)
		collectKeyLines(&doc, "", cfg.lines)
	}

	if cfg.Build.Tool == "" {
		cfg.Build.Tool = "make"
	}
	if cfg.Build.Target == "" {
		cfg.Build.Target = "generate"
	}

	return cfg, nil
}

// Source returns the file the configuration was loaded from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Validate checks that every path segment is set and that component
// overrides use valid names
func (c *Config) Validate() error {
	required := map[string]string{
		"root":            c.Root,
		"components_path": c.ComponentsPath,
		"samples_path":    c.SamplesPath,
		"native_dir":      c.NativeDir,
		"custom_dir":      c.CustomDir,
		"sample_index":    c.SampleIndex,
		"build.tool":      c.Build.Tool,
		"build.target":    c.Build.Target,
	}

	fields := make([]string, 0, len(required))
	for field := range required {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if err := utils.NotEmpty(field)(required[field]); err != nil {
			return c.invalid(field, err)
		}
	}

	if err := utils.Positive("cache_size")(c.CacheSize); err != nil {
		return c.invalid("cache_size", err)
	}

	for _, name := range c.ComponentNames() {
		field := "components." + name
		chain := utils.NewValidatorChain(utils.IsSwiftTypeName(field))
		if err := chain.Validate(name); err != nil {
			return c.invalid(field, err)
		}
		kind := c.Components[name].Kind
		if err := utils.IsOneOf(field+".kind", "", "native", "custom")(kind); err != nil {
			return c.invalid(field+".kind", err)
		}
	}

	return nil
}

func (c *Config) invalid(field string, cause error) error {
	return errors.Wrap(errors.ValidationErrorCode, "invalid configuration", cause).
		WithLocation(c.Location(field))
}

// Location returns where field is set in the loaded file. A field missing
// from the file points at its closest parent key, or at the file alone.
func (c *Config) Location(field string) errors.SourceLocation {
	if c.source == "" {
		return errors.SourceLocation{}
	}
	for key := field; key != ""; {
		if line, ok := c.lines[key]; ok {
			return errors.SourceLocation{File: c.source, Line: line}
		}
		i := strings.LastIndex(key, ".")
		if i < 0 {
			break
		}
		key = key[:i]
	}
	return errors.SourceLocation{File: c.source}
}

func collectKeyLines(node *yaml.Node, prefix string, lines map[string]int) {
	if node.Kind == yaml.DocumentNode {
		for _, child := range node.Content {
			collectKeyLines(child, prefix, lines)
		}
		return
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		lines[key] = node.Content[i].Line
		collectKeyLines(node.Content[i+1], key, lines)
	}
}

// ComponentNames returns the configured component overrides in sorted order
func (c *Config) ComponentNames() []string {
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComponentsRoot is the directory holding the native and custom trees
func (c *Config) ComponentsRoot() string {
	return filepath.Join(c.Root, c.ComponentsPath)
}

// SamplesRoot is the directory generated samples are written under
func (c *Config) SamplesRoot() string {
	return filepath.Join(c.Root, c.SamplesPath)
}

// CategoryPath is the category tag recorded on located components
func (c *Config) CategoryPath(kind models.ComponentKind) string {
	if kind == models.CustomComponent {
		return c.CustomDir
	}
	return c.NativeDir
}

// CategoryDir is the absolute directory of a category tree
func (c *Config) CategoryDir(kind models.ComponentKind) string {
	return filepath.Join(c.ComponentsRoot(), c.CategoryPath(kind))
}

// SampleIndexPath is the view that lists every sample
func (c *Config) SampleIndexPath() string {
	return filepath.Join(c.SamplesRoot(), c.SampleIndex)
}

// SamplePath is where the sample for a component of the given category lives
func (c *Config) SamplePath(typePath, name string) string {
	return filepath.Join(c.SamplesRoot(), typePath, name, name+"Sample.swift")
}

// FindZenithRoot walks up from start looking for the Zenith package
func FindZenithRoot(start string, maxLevels int) (string, error) {
	return utils.FindProjectRoot(start, ZenithMarker, maxLevels)
}
