package cli

import (
	"fmt"
	"strings"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/discovery"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/locator"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/parser"
	"github.com/kettlegym/zenithgen/internal/registry"
	"github.com/kettlegym/zenithgen/internal/templates"
	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

// SampleGenerator coordinates locate, analyze, render and write for samples
type SampleGenerator struct {
	cfg         *config.Config
	files       *fileops.FileOps
	registry    *registry.Registry
	locator     *locator.Locator
	analyzer    *parser.Analyzer
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// ListEntry is a registry name with its kind and where it came from
type ListEntry struct {
	Name   string
	Kind   models.ComponentKind
	Source models.HintSource
}

// BuildRegistry discovers the component trees and builds the type registry:
// seeds first, then config overrides, then discovered components.
func BuildRegistry(cfg *config.Config, diagnostics *utils.DiagnosticSystem) (*registry.Registry, int, error) {
	entries, err := discovery.New(cfg, diagnostics).Discover()
	if err != nil {
		return nil, 0, err
	}

	reg, err := registry.NewBuilder().
		Seed().
		RegisterConfig(cfg.Components).
		Discover(entries).
		Build()
	if err != nil {
		return nil, 0, err
	}

	diagnostics.Verbose("Registry holds %d components (%d discovered)", reg.Size(), len(entries))
	return reg, len(entries), nil
}

// NewSampleGenerator creates a sample generator over an already built registry
func NewSampleGenerator(cfg *config.Config, reg *registry.Registry, diagnostics *utils.DiagnosticSystem) *SampleGenerator {
	files := fileops.NewFileOps(cfg.CacheSize)
	return &SampleGenerator{
		cfg:         cfg,
		files:       files,
		registry:    reg,
		locator:     locator.New(cfg, files, diagnostics),
		analyzer:    parser.NewAnalyzer(files, diagnostics, cfg.IgnoredProperties),
		diagnostics: diagnostics,
		summary:     GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// Files returns the cached file reader, so watchers can invalidate entries
func (g *SampleGenerator) Files() *fileops.FileOps {
	return g.files
}

// GetSummary returns the generation summary
func (g *SampleGenerator) GetSummary() GenerationSummary {
	return g.summary
}

// Locate finds the component directory and file roles for name
func (g *SampleGenerator) Locate(name string) (*models.ComponentInfo, error) {
	return g.locator.Locate(name)
}

// Generate writes the sample view for a single component and returns its path
func (g *SampleGenerator) Generate(name string) (string, error) {
	info, err := g.locator.Locate(name)
	if err != nil {
		return "", err
	}

	g.analyzer.Analyze(info)
	g.analyzer.SeedInitParams(info, g.registry.Get(name).SeedInitParams)
	hints := g.registry.UpdateFromAnalysis(info)

	content, err := templates.RenderSample(info, hints, g.registry.ExampleContent(name))
	if err != nil {
		return "", err
	}

	path := g.cfg.SamplePath(info.TypePath, info.Name)
	if err := g.files.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}

	g.summary.SamplesGenerated++
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, path)
	g.diagnostics.Success("%s written to %s", info.SampleName(), path)

	return path, nil
}

// GenerateAll writes a sample for every native component in the registry.
// A failing component is reported and the batch continues.
func (g *SampleGenerator) GenerateAll() ([]string, error) {
	errs := errors.NewMultipleErrors()
	var paths []string

	names := g.registry.NamesOfKind(models.NativeComponent)
	g.diagnostics.Info("Generating samples for %d native components", len(names))

	for _, name := range names {
		path, err := g.Generate(name)
		if err != nil {
			g.diagnostics.Warn("Skipping %s: %v", name, err)
			g.summary.Failures++
			errs.Add(asGenError(err, name))
			continue
		}
		paths = append(paths, path)
	}

	return paths, errs.ErrOrNil()
}

// List returns every registry entry, sorted by name
func (g *SampleGenerator) List() []ListEntry {
	names := g.registry.Names()
	entries := make([]ListEntry, 0, len(names))
	for _, name := range names {
		h := g.registry.Get(name)
		entries = append(entries, ListEntry{Name: name, Kind: h.Kind, Source: h.Source})
	}
	return entries
}

// AutoRegister inserts `<Name>Sample()` into the sample index view. A missing
// index or insertion point is reported as a warning and leaves the file as is.
func (g *SampleGenerator) AutoRegister(name string) (bool, error) {
	updated, err := RegisterSample(g.files, g.cfg.SampleIndexPath(), name, g.diagnostics)
	if updated {
		g.summary.IndexUpdates++
	}
	return updated, err
}

// RegisterSample inserts name's sample call into the index file at indexPath
func RegisterSample(files *fileops.FileOps, indexPath, name string, diagnostics *utils.DiagnosticSystem) (bool, error) {
	if !files.IsFile(indexPath) {
		diagnostics.Warn("Sample index %s not found", indexPath)
		return false, nil
	}

	content, err := files.ReadFile(indexPath)
	if err != nil {
		return false, err
	}

	sampleCall := templates.ComponentName(name) + "Sample()"
	if containsLine(content, sampleCall) {
		diagnostics.Verbose("%s already listed in %s", sampleCall, indexPath)
		return false, nil
	}

	updated, ok := templates.InsertSampleIntoIndex(content, name)
	if !ok {
		diagnostics.Warn("No insertion point for %s in %s", sampleCall, indexPath)
		return false, nil
	}

	if err := files.WriteFile(indexPath, []byte(updated), 0o644); err != nil {
		return false, err
	}

	diagnostics.Success("%s registered in %s", sampleCall, indexPath)
	return true, nil
}

func asGenError(err error, name string) errors.GenError {
	if genErr, ok := err.(errors.GenError); ok {
		return genErr
	}
	return errors.Wrap(errors.UnknownErrorCode, fmt.Sprintf("cannot generate sample for '%s'", name), err)
}

func containsLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
