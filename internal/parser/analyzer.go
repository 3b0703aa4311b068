package parser

import (
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

// Analyzer fills a located ComponentInfo from its source files
type Analyzer struct {
	files       *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
	categorizer *Categorizer
}

// NewAnalyzer creates an analyzer; ignored lists property names that never
// become sample controls (nil uses the defaults)
func NewAnalyzer(files *fileops.FileOps, diagnostics *utils.DiagnosticSystem, ignored []string) *Analyzer {
	return &Analyzer{
		files:       files,
		diagnostics: diagnostics,
		categorizer: NewCategorizer(ignored),
	}
}

// Analyze scrapes properties, initializer parameters and styles. Unreadable
// files are reported and treated as absent.
func (a *Analyzer) Analyze(info *models.ComponentInfo) *models.ComponentInfo {
	if view := a.readSoft(info.ViewPath); view != "" {
		info.Properties = ExtractProperties(view)
		info.InitParams = ExtractInitParams(view)
	}
	a.categorizer.Apply(info)

	for _, p := range info.InitParams {
		if !p.IsAction {
			continue
		}
		info.HasActionParam = true
		if !a.hasClosure(info, p.Name) {
			info.ClosureProperties = append(info.ClosureProperties, models.Property{
				Mutability: "var",
				Name:       p.Name,
				Type:       p.Type,
				Default:    p.Default,
			})
		}
	}

	if styles := a.readSoft(info.StylesPath); styles != "" {
		info.StyleFunctions, info.StyleCases = ExtractStyles(styles, info.Name)
	}

	info.ComponentType = info.Name

	a.diagnostics.Verbose("%s: %d properties, %d init params, %d style functions, %d style cases",
		info.Name, len(info.Properties), len(info.InitParams), len(info.StyleFunctions), len(info.StyleCases))

	return info
}

// SeedInitParams uses params when the sources declared no public initializer
func (a *Analyzer) SeedInitParams(info *models.ComponentInfo, params []models.InitParam) {
	if len(info.InitParams) > 0 || len(params) == 0 {
		return
	}
	info.InitParams = append([]models.InitParam(nil), params...)
	for _, p := range params {
		if p.IsAction {
			info.HasActionParam = true
		}
	}
}

func (a *Analyzer) hasClosure(info *models.ComponentInfo, name string) bool {
	for _, p := range info.ClosureProperties {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (a *Analyzer) readSoft(path string) string {
	if path == "" {
		return ""
	}

	content, err := a.files.ReadFile(path)
	if err != nil {
		a.diagnostics.Warn("could not read %s: %v", path, err)
		return ""
	}
	return content
}
