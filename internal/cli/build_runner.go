package cli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// CommandResult is the captured outcome of an external command
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs name with args in dir. A non-zero exit is reported in
// the result; err is only set when the command could not run at all.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) (CommandResult, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, errors.WrapProcessError(name+" "+strings.Join(args, " "), dir, err)
	}
	return result, nil
}

// BuildRunner finds a Makefile with the configured target and runs it
type BuildRunner struct {
	build       config.BuildConfig
	run         CommandRunner
	diagnostics *utils.DiagnosticSystem
}

// NewBuildRunner creates a runner for the configured build tool and target
func NewBuildRunner(build config.BuildConfig, run CommandRunner, diagnostics *utils.DiagnosticSystem) *BuildRunner {
	if run == nil {
		run = ExecRunner
	}
	return &BuildRunner{build: build, run: run, diagnostics: diagnostics}
}

// Candidates returns the directories searched for a Makefile, in order: the
// parent of root, root itself and the working directory.
func (b *BuildRunner) Candidates(root string) []string {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" {
			return
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	add(filepath.Dir(filepath.Clean(root)))
	add(root)
	if wd, err := os.Getwd(); err == nil {
		add(wd)
	}
	return dirs
}

// FindMakefileDir returns the first candidate whose Makefile defines the
// target. Makefiles without it are reported as warnings.
func (b *BuildRunner) FindMakefileDir(ctx context.Context, root string) (string, error) {
	for _, dir := range b.Candidates(root) {
		if !hasMakefile(dir) {
			continue
		}

		result, err := b.run(ctx, dir, b.build.Tool, "-n", b.build.Target)
		if err != nil {
			return "", err
		}
		if result.ExitCode == 0 {
			return dir, nil
		}
		b.diagnostics.Warn("Makefile encontrado em '%s' mas não contém o target '%s'", dir, b.build.Target)
	}

	return "", errors.NotFound("Makefile target", b.build.Target).
		WithContext("root", root).
		WithSuggestion("add a '" + b.build.Target + "' target to the project Makefile")
}

// Run executes the target in the first qualifying directory. A failing
// target is reported with its stderr and does not return an error.
func (b *BuildRunner) Run(ctx context.Context, root string) (bool, error) {
	dir, err := b.FindMakefileDir(ctx, root)
	if err != nil {
		return false, err
	}

	command := b.build.Tool + " " + b.build.Target
	b.diagnostics.StartProgress("Executando '" + command + "' em " + dir)

	result, err := b.run(ctx, dir, b.build.Tool, b.build.Target)
	if err != nil {
		b.diagnostics.EndProgress(false, "")
		return false, err
	}

	if result.ExitCode != 0 {
		b.diagnostics.EndProgress(false, "")
		b.diagnostics.Warn("Erro ao executar '%s': %s", command, strings.TrimSpace(result.Stderr))
		return false, nil
	}

	b.diagnostics.EndProgress(true, "")
	if out := strings.TrimSpace(result.Stdout); out != "" {
		b.diagnostics.Verbose("%s", out)
	}
	return true, nil
}

func hasMakefile(dir string) bool {
	for _, name := range []string{"Makefile", "makefile"} {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
