package cli

import (
	"os"
	"path/filepath"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// MaxRootSearchLevels bounds the upward search for the Zenith package
const MaxRootSearchLevels = 4

// Options holds the command-line settings shared by both binaries
type Options struct {
	// ConfigPath is the -config flag; empty looks for .zenithgen.yaml
	ConfigPath string

	// Root overrides the configured project root when set
	Root string

	Verbose bool
	Quiet   bool
}

// LoadConfig loads and validates the configuration for opts. Without an
// explicit root, a root that lacks the Zenith package is replaced by the
// nearest ancestor of the working directory that has it.
func LoadConfig(opts Options, diagnostics *utils.DiagnosticSystem) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if source := cfg.Source(); source != "" {
		diagnostics.Verbose("Using configuration %s", source)
	}

	if opts.Root != "" {
		cfg.Root = opts.Root
	} else if !isDir(cfg.ComponentsRoot()) {
		if wd, err := os.Getwd(); err == nil {
			if root, err := config.FindZenithRoot(wd, MaxRootSearchLevels); err == nil {
				diagnostics.Verbose("Found Zenith package under %s", root)
				cfg.Root = root
			}
		}
	}

	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
