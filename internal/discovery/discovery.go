package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
)

const sourcePattern = "**/*.swift"

// Entry is a component directory found in one of the category trees
type Entry struct {
	Name     string
	Kind     models.ComponentKind
	TypePath string
	Dir      string
	// Files are the Swift sources below Dir, relative to it and sorted
	Files []string
}

// HasStylesFile reports whether the component ships a <Name>Styles.swift
func (e Entry) HasStylesFile() bool {
	for _, f := range e.Files {
		if filepath.Base(f) == e.Name+"Styles.swift" {
			return true
		}
	}
	return false
}

// Discoverer walks the native and custom trees once
type Discoverer struct {
	cfg         *config.Config
	diagnostics *utils.DiagnosticSystem
}

// New creates a discoverer for the trees described by cfg
func New(cfg *config.Config, diagnostics *utils.DiagnosticSystem) *Discoverer {
	return &Discoverer{cfg: cfg, diagnostics: diagnostics}
}

// Discover returns every component directory holding at least one Swift
// source, natives first, each kind sorted by name. Paths matching the
// configured exclude globs or the project .gitignore are skipped.
func (d *Discoverer) Discover() ([]Entry, error) {
	for _, pattern := range d.cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Validation("exclude pattern", pattern)
		}
	}

	gitignore := loadGitignore(d.cfg.Root)

	var entries []Entry
	for _, kind := range []models.ComponentKind{models.NativeComponent, models.CustomComponent} {
		found, err := d.walkCategory(kind, gitignore)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	d.diagnostics.Verbose("discovered %d components", len(entries))
	return entries, nil
}

func (d *Discoverer) walkCategory(kind models.ComponentKind, gitignore *ignore.GitIgnore) ([]Entry, error) {
	categoryDir := d.cfg.CategoryDir(kind)
	if info, err := os.Stat(categoryDir); err != nil || !info.IsDir() {
		d.diagnostics.Debug("skipping missing category %s", categoryDir)
		return nil, nil
	}

	byName := make(map[string]*Entry)

	err := filepath.WalkDir(categoryDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.excluded(path, gitignore) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(categoryDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if ok, _ := doublestar.Match(sourcePattern, rel); !ok {
			return nil
		}

		name, inner, nested := strings.Cut(rel, "/")
		if !nested {
			return nil
		}
		if err := utils.IsSwiftTypeName("component")(name); err != nil {
			d.diagnostics.Debug("skipping %s: %v", name, err)
			return nil
		}

		e, ok := byName[name]
		if !ok {
			e = &Entry{
				Name:     name,
				Kind:     kind,
				TypePath: d.cfg.CategoryPath(kind),
				Dir:      filepath.Join(categoryDir, name),
			}
			byName[name] = e
		}
		e.Files = append(e.Files, inner)
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("walk", categoryDir, err)
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		sort.Strings(e.Files)
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

func (d *Discoverer) excluded(path string, gitignore *ignore.GitIgnore) bool {
	if rel, err := filepath.Rel(d.cfg.ComponentsRoot(), path); err == nil {
		rel = filepath.ToSlash(rel)
		for _, pattern := range d.cfg.Exclude {
			if ok, _ := doublestar.PathMatch(pattern, rel); ok {
				return true
			}
		}
	}

	if gitignore != nil {
		if rel, err := filepath.Rel(d.cfg.Root, path); err == nil && gitignore.MatchesPath(filepath.ToSlash(rel)) {
			return true
		}
	}

	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(gitignorePath); err == nil {
		if gitignore, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			return gitignore
		}
	}

	return nil
}
