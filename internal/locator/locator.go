package locator

import (
	"path/filepath"
	"strings"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

// Role names a source file a component is made of
type Role string

const (
	RoleView          Role = "View"
	RoleConfiguration Role = "Configuration"
	RoleStyles        Role = "Styles"
)

// roles are checked in this order and a file takes at most one role
var roles = []Role{RoleView, RoleConfiguration, RoleStyles}

// Locator finds a component's directory and assigns its files to roles
type Locator struct {
	cfg         *config.Config
	files       *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// New creates a locator for the trees described by cfg
func New(cfg *config.Config, files *fileops.FileOps, diagnostics *utils.DiagnosticSystem) *Locator {
	return &Locator{cfg: cfg, files: files, diagnostics: diagnostics}
}

// Locate searches the native tree and then the custom tree for name. The
// first existing directory fixes the category. Files are assigned in
// lexicographic order; later matches for a filled role are recorded as
// ambiguities and reported. name must be a single UpperCamelCase segment
// so it never resolves to the category directory itself or outside it.
func (l *Locator) Locate(name string) (*models.ComponentInfo, error) {
	if err := validName(name); err != nil {
		return nil, errors.Wrap(errors.ValidationErrorCode, "invalid component name", err).
			WithSuggestion("component names are UpperCamelCase folder names such as Button")
	}

	for _, kind := range []models.ComponentKind{models.NativeComponent, models.CustomComponent} {
		dir := filepath.Join(l.cfg.CategoryDir(kind), name)
		if !l.files.IsDir(dir) {
			continue
		}

		info := models.NewComponentInfo(name, l.cfg.CategoryPath(kind), kind, dir)
		if err := l.assignRoles(info); err != nil {
			return nil, err
		}
		return info, nil
	}

	return nil, errors.NotFound("component", name).
		WithContext("native_dir", l.cfg.CategoryDir(models.NativeComponent)).
		WithContext("custom_dir", l.cfg.CategoryDir(models.CustomComponent)).
		WithSuggestion("run samplegen -list to see the known components")
}

var validName = utils.NewValidatorChain(
	utils.NotEmpty("component name"),
	utils.IsSwiftTypeName("component name"),
).Validate

func (l *Locator) assignRoles(info *models.ComponentInfo) error {
	names, err := l.files.ListFiles(info.Dir)
	if err != nil {
		return err
	}

	assigned := make(map[Role]string)
	ignored := make(map[Role][]string)

	for _, file := range names {
		role, ok := RoleOf(info.Name, file)
		if !ok {
			continue
		}

		path := filepath.Join(info.Dir, file)
		if _, taken := assigned[role]; taken {
			ignored[role] = append(ignored[role], path)
			continue
		}
		assigned[role] = path
	}

	// A shell named exactly <Name>.swift is the view when no *View file exists
	if _, ok := assigned[RoleView]; !ok {
		shell := filepath.Join(info.Dir, info.Name+".swift")
		if l.files.IsFile(shell) {
			assigned[RoleView] = shell
		}
	}

	info.ViewPath = assigned[RoleView]
	info.ConfigPath = assigned[RoleConfiguration]
	info.StylesPath = assigned[RoleStyles]

	for _, role := range roles {
		if len(ignored[role]) == 0 {
			continue
		}
		info.Ambiguities = append(info.Ambiguities, models.RoleAmbiguity{
			Role:    string(role),
			Chosen:  assigned[role],
			Ignored: ignored[role],
		})
		l.diagnostics.Warn("%s: several %s files match, using %s and ignoring %s",
			info.Name, role, filepath.Base(assigned[role]), strings.Join(baseNames(ignored[role]), ", "))
	}

	if info.ViewPath == "" {
		l.diagnostics.Warn("%s: no view file found in %s", info.Name, info.Dir)
	}

	return nil
}

// RoleOf returns the role of file for the named component
func RoleOf(name, file string) (Role, bool) {
	for _, role := range roles {
		if strings.Contains(file, name+string(role)) {
			return role, true
		}
	}
	return "", false
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
