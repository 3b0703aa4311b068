package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// scriptedPrompter replays answers in order. An exhausted script behaves
// like a closed terminal.
type scriptedPrompter struct {
	choices []int
	inputs  []string
	titles  []string
}

func (p *scriptedPrompter) Choose(title string, _ []string) (int, error) {
	p.titles = append(p.titles, title)
	if len(p.choices) == 0 {
		return 0, errors.Interrupted()
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c, nil
}

func (p *scriptedPrompter) Input(title string, _ ...string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.inputs) == 0 {
		return "", errors.Interrupted()
	}
	s := p.inputs[0]
	p.inputs = p.inputs[1:]
	return s, nil
}

func (p *scriptedPrompter) Pause(string) error {
	return nil
}

func newTestFlow(t *testing.T, cfg *config.Config, prompter Prompter, fake *fakeRunner, out *bytes.Buffer) *Flow {
	t.Helper()

	diag := utils.NewDiagnosticSystemWithWriters(utils.DiagnosticInfo, out, out)
	if fake == nil {
		fake = &fakeRunner{}
	}
	f := NewFlow(cfg, prompter, NewBuildRunner(cfg.Build, fake.run, diag), diag, out)
	f.SetWorkDir(t.TempDir())
	return f
}

func zenithProject(t *testing.T) *config.Config {
	cfg := writeProject(t, map[string]string{
		samples("ZenithSampleView.swift"): sampleIndex,
	})
	require.NoError(t, os.MkdirAll(cfg.ComponentsRoot(), 0755))
	return cfg
}

func TestFlow_GenerateComponent(t *testing.T) {
	cfg := zenithProject(t)
	prompter := &scriptedPrompter{
		// custom, Components, skip make
		choices: []int{1, 1, 1},
		inputs:  []string{"chip"},
	}
	var out bytes.Buffer

	result, err := newTestFlow(t, cfg, prompter, nil, &out).GenerateComponent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Chip", result.Name)
	assert.Equal(t, models.CustomComponent, result.Kind)
	assert.Equal(t, filepath.Join(cfg.ComponentsRoot(), "Components", "Customs", "Chip"), result.OutputDir)
	assert.Len(t, result.Files, 3)
	assert.True(t, result.IndexUpdated)
	assert.Contains(t, out.String(), "Componente Chip gerado com sucesso!")
	assert.Contains(t, prompter.titles, "Deseja executar 'make generate' para atualizar o projeto?")
}

func TestFlow_GenerateComponentCustomFolder(t *testing.T) {
	cfg := zenithProject(t)
	prompter := &scriptedPrompter{
		// native, other folder, skip make
		choices: []int{0, 2, 1},
		inputs:  []string{"Slider", "Controls"},
	}
	var out bytes.Buffer

	result, err := newTestFlow(t, cfg, prompter, nil, &out).GenerateComponent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ComponentsRoot(), "Controls", "Natives", "Slider"), result.OutputDir)
	assert.Len(t, result.Files, 2)
}

func TestFlow_GenerateComponentRunsMake(t *testing.T) {
	cfg := zenithProject(t)
	writeMakefile(t, cfg.Root)

	fake := &fakeRunner{hasTarget: map[string]bool{cfg.Root: true}}
	prompter := &scriptedPrompter{
		choices: []int{0, 0, 0},
		inputs:  []string{"Slider"},
	}
	var out bytes.Buffer

	_, err := newTestFlow(t, cfg, prompter, fake, &out).GenerateComponent(context.Background())
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, recordedCall{dir: cfg.Root, args: "make generate"}, fake.calls[1])
	assert.Contains(t, out.String(), "Comando 'make generate' executado com sucesso!")
}

func TestFlow_SimulatedFolder(t *testing.T) {
	cfg := config.Default()
	cfg.Root = t.TempDir()

	prompter := &scriptedPrompter{
		// native, BaseElements, simulated folder, skip make
		choices: []int{0, 0, 1, 1},
		inputs:  []string{"Badge"},
	}
	var out bytes.Buffer

	flow := newTestFlow(t, cfg, prompter, nil, &out)
	workDir := t.TempDir()
	flow.SetWorkDir(workDir)

	result, err := flow.GenerateComponent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workDir, SimulatedZenithDir, "BaseElements", "Natives", "Badge"), result.OutputDir)
	assert.Contains(t, out.String(), "Caminho Zenith não encontrado automaticamente.")
	for _, f := range result.Files {
		assert.FileExists(t, f)
	}
}

func TestFlow_ManualPath(t *testing.T) {
	manual := zenithProject(t)

	cfg := config.Default()
	cfg.Root = t.TempDir()

	t.Run("valid path", func(t *testing.T) {
		prompter := &scriptedPrompter{
			choices: []int{1, 1, 0, 1},
			inputs:  []string{"Chip", manual.Root},
		}
		var out bytes.Buffer

		result, err := newTestFlow(t, cfg, prompter, nil, &out).GenerateComponent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(manual.ComponentsRoot(), "Components", "Customs", "Chip"), result.OutputDir)
		assert.True(t, result.IndexUpdated)
	})

	t.Run("invalid path", func(t *testing.T) {
		prompter := &scriptedPrompter{
			choices: []int{1, 1, 0},
			inputs:  []string{"Chip", filepath.Join(manual.Root, "missing")},
		}
		var out bytes.Buffer

		_, err := newTestFlow(t, cfg, prompter, nil, &out).GenerateComponent(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestFlow_InvalidName(t *testing.T) {
	cfg := zenithProject(t)
	prompter := &scriptedPrompter{choices: []int{0}, inputs: []string{"   "}}
	var out bytes.Buffer

	_, err := newTestFlow(t, cfg, prompter, nil, &out).GenerateComponent(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))
}

func TestFlow_Run(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		cfg := zenithProject(t)
		prompter := &scriptedPrompter{choices: []int{1}}
		var out bytes.Buffer

		require.NoError(t, newTestFlow(t, cfg, prompter, nil, &out).Run(context.Background()))
		assert.Contains(t, out.String(), "GERADOR DE COMPONENTES SWIFT")
		assert.Contains(t, out.String(), "Saindo...")
	})

	t.Run("interrupt prints exit message", func(t *testing.T) {
		cfg := zenithProject(t)
		prompter := &scriptedPrompter{choices: []int{0, 0}}
		var out bytes.Buffer

		require.NoError(t, newTestFlow(t, cfg, prompter, nil, &out).Run(context.Background()))
		assert.Contains(t, out.String(), ExitMessage)
	})

	t.Run("generate then quit", func(t *testing.T) {
		cfg := zenithProject(t)
		prompter := &scriptedPrompter{
			choices: []int{0, 1, 0, 1, 1},
			inputs:  []string{"Chip"},
		}
		var out bytes.Buffer

		require.NoError(t, newTestFlow(t, cfg, prompter, nil, &out).Run(context.Background()))
		assert.FileExists(t, filepath.Join(cfg.ComponentsRoot(), "BaseElements", "Customs", "Chip", "Chip.swift"))
		assert.NotContains(t, out.String(), ExitMessage)
	})
}
