package cli

import (
	"path/filepath"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/templates"
	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

// ScaffoldRequest describes a component to create
type ScaffoldRequest struct {
	Name string
	Kind models.ComponentKind

	// Folder is the category folder, e.g. BaseElements or Components
	Folder string

	// Root is the project root the sample tree lives under
	Root string

	// ZenithPath is the sources directory the component goes under
	ZenithPath string
}

// ScaffoldResult lists what a scaffold run wrote
type ScaffoldResult struct {
	Name         string
	Kind         models.ComponentKind
	OutputDir    string
	Files        []string
	SamplePath   string
	IndexUpdated bool
}

// RelativeDir is the category path of the component, e.g. Components/Customs/Chip
func (r *ScaffoldResult) RelativeDir(folder string) string {
	return filepath.Join(folder, r.Kind.String(), r.Name)
}

// Scaffolder writes the files of a new component and registers its sample
type Scaffolder struct {
	cfg         *config.Config
	files       *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// NewScaffolder creates a scaffolder using cfg for sample locations
func NewScaffolder(cfg *config.Config, diagnostics *utils.DiagnosticSystem) *Scaffolder {
	return &Scaffolder{
		cfg:         cfg,
		files:       fileops.NewFileOps(cfg.CacheSize),
		diagnostics: diagnostics,
	}
}

// Scaffold writes the component files, then its sample, then updates the
// sample index. Writes are not rolled back: an error leaves the files
// written so far in place. A failing sample write is only a warning.
func (s *Scaffolder) Scaffold(req ScaffoldRequest) (*ScaffoldResult, error) {
	name := templates.ComponentName(req.Name)
	if err := utils.IsSwiftTypeName("component name")(name); err != nil {
		return nil, errors.Wrap(errors.ValidationErrorCode, "invalid component name", err)
	}
	if err := utils.NotEmpty("folder")(req.Folder); err != nil {
		return nil, errors.Wrap(errors.ValidationErrorCode, "invalid folder", err)
	}

	rendered, err := templates.RenderScaffold(name, req.Kind)
	if err != nil {
		return nil, err
	}

	result := &ScaffoldResult{
		Name:      name,
		Kind:      req.Kind,
		OutputDir: filepath.Join(req.ZenithPath, req.Folder, req.Kind.String(), name),
	}

	s.diagnostics.Subsection("Gerando arquivos do componente")
	for _, f := range rendered {
		path := filepath.Join(result.OutputDir, f.Name)
		if err := s.files.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return result, err
		}
		result.Files = append(result.Files, path)
		s.diagnostics.Progress("%s criado", f.Name)
	}

	s.diagnostics.Subsection("Configurando amostra para ZenithSample")
	sample, err := templates.RenderScaffoldSample(name, req.Kind)
	if err != nil {
		return result, err
	}

	samplesRoot := filepath.Join(req.Root, s.cfg.SamplesPath)
	samplePath := filepath.Join(samplesRoot, result.RelativeDir(req.Folder), sample.Name)
	if err := s.files.WriteFile(samplePath, []byte(sample.Content), 0o644); err != nil {
		s.diagnostics.Warn("O componente principal foi criado, mas o arquivo de amostra falhou: %v", err)
		return result, nil
	}
	result.SamplePath = samplePath
	s.diagnostics.Progress("%s criado em %s", sample.Name, result.RelativeDir(req.Folder))

	updated, err := RegisterSample(s.files, filepath.Join(samplesRoot, s.cfg.SampleIndex), name, s.diagnostics)
	if err != nil {
		s.diagnostics.Warn("%s não foi atualizado: %v", s.cfg.SampleIndex, err)
		return result, nil
	}
	result.IndexUpdated = updated

	return result, nil
}
