package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/utils"
)

func TestLoadConfig(t *testing.T) {
	diag := utils.NewDiagnosticSystemWithWriters(utils.DiagnosticVerbose, &bytes.Buffer{}, &bytes.Buffer{})

	t.Run("root flag wins", func(t *testing.T) {
		root := t.TempDir()
		dir := t.TempDir()
		path := filepath.Join(dir, "zenithgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("root: /somewhere/else\ncache_size: 32\n"), 0644))

		cfg, err := LoadConfig(Options{ConfigPath: path, Root: root}, diag)
		require.NoError(t, err)
		assert.Equal(t, root, cfg.Root)
		assert.Equal(t, 32, cfg.CacheSize)
		assert.Equal(t, path, cfg.Source())
	})

	t.Run("relative root is made absolute", func(t *testing.T) {
		cfg, err := LoadConfig(Options{Root: "."}, diag)
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, wd, cfg.Root)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}, diag)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zenithgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("components:\n  bad name:\n    kind: custom\n"), 0644))

		_, err := LoadConfig(Options{ConfigPath: path, Root: t.TempDir()}, diag)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))

		var out, errOut bytes.Buffer
		NewDiagnosticReporterWithWriters(false, &out, &errOut).ReportError(err)
		assert.Contains(t, errOut.String(), "Location: "+path+":2")
	})
}
