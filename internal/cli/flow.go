package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/kettlegym/zenithgen/internal/config"
	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
	"github.com/kettlegym/zenithgen/internal/utils"
)

// SimulatedZenithDir is created in the working directory when no Zenith
// package can be found
const SimulatedZenithDir = "Simulado_Zenith"

// ExitMessage is printed when the user aborts the interactive flow
const ExitMessage = "Programa encerrado pelo usuário."

var defaultFolders = []string{"BaseElements", "Components"}

// Flow drives the interactive component generator
type Flow struct {
	cfg         *config.Config
	prompter    Prompter
	scaffolder  *Scaffolder
	builder     *BuildRunner
	diagnostics *utils.DiagnosticSystem
	out         io.Writer
	workDir     string
}

// NewFlow creates the interactive flow. builder may be nil to use make.
func NewFlow(cfg *config.Config, prompter Prompter, builder *BuildRunner, diagnostics *utils.DiagnosticSystem, out io.Writer) *Flow {
	if builder == nil {
		builder = NewBuildRunner(cfg.Build, nil, diagnostics)
	}
	wd, _ := os.Getwd()
	return &Flow{
		cfg:         cfg,
		prompter:    prompter,
		scaffolder:  NewScaffolder(cfg, diagnostics),
		builder:     builder,
		diagnostics: diagnostics,
		out:         out,
		workDir:     wd,
	}
}

// SetWorkDir overrides the directory used for root search and the simulated folder
func (f *Flow) SetWorkDir(dir string) {
	f.workDir = dir
}

// Run shows the main menu until the user quits. Aborting any prompt ends
// the program with a clean message.
func (f *Flow) Run(ctx context.Context) error {
	for {
		f.printHeader()

		choice, err := f.prompter.Choose("Escolha uma opção:", []string{"Gerar novo componente", "Sair"})
		if err != nil {
			if errors.IsInterrupted(err) {
				fmt.Fprintln(f.out, ExitMessage)
				return nil
			}
			f.diagnostics.Error("%v", err)
			continue
		}

		if choice == 1 {
			f.diagnostics.Info("Saindo...")
			return nil
		}

		if _, err := f.GenerateComponent(ctx); err != nil {
			if errors.IsInterrupted(err) {
				fmt.Fprintln(f.out, ExitMessage)
				return nil
			}
			f.diagnostics.Error("%v", err)
		}

		if err := f.prompter.Pause("Pressione Enter para continuar..."); err != nil {
			if errors.IsInterrupted(err) {
				fmt.Fprintln(f.out, ExitMessage)
				return nil
			}
			return err
		}
	}
}

// GenerateComponent asks for the component details, writes its files and
// optionally runs the build target
func (f *Flow) GenerateComponent(ctx context.Context) (*ScaffoldResult, error) {
	kindChoice, err := f.prompter.Choose("Escolha o tipo de componente:", []string{"Nativo", "Customizado"})
	if err != nil {
		return nil, err
	}
	kind := models.NativeComponent
	if kindChoice == 1 {
		kind = models.CustomComponent
	}

	name, err := f.prompter.Input("Digite o nome do componente (ex: Button, Card, Avatar):")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("component name", "Nome de componente inválido!")
	}

	folder, err := f.chooseFolder()
	if err != nil {
		return nil, err
	}

	f.diagnostics.Info("Procurando diretório Zenith...")
	root, zenithPath, err := f.resolveZenithPath()
	if err != nil {
		return nil, err
	}

	result, err := f.scaffolder.Scaffold(ScaffoldRequest{
		Name:       name,
		Kind:       kind,
		Folder:     folder,
		Root:       root,
		ZenithPath: zenithPath,
	})
	if err != nil {
		return result, err
	}

	f.printSummary(result, folder)

	makeChoice, err := f.prompter.Choose(
		fmt.Sprintf("Deseja executar '%s %s' para atualizar o projeto?", f.cfg.Build.Tool, f.cfg.Build.Target),
		[]string{"Sim", "Não"},
	)
	if err != nil {
		return result, err
	}
	if makeChoice == 0 {
		if ok, err := f.builder.Run(ctx, root); err != nil {
			f.diagnostics.Error("%v", err)
		} else if ok {
			f.diagnostics.Success("Comando '%s %s' executado com sucesso!", f.cfg.Build.Tool, f.cfg.Build.Target)
		}
	}

	return result, nil
}

func (f *Flow) chooseFolder() (string, error) {
	options := append(append([]string(nil), defaultFolders...), "Outro diretório")
	choice, err := f.prompter.Choose("Onde deseja salvar o componente?", options)
	if err != nil {
		return "", err
	}
	if choice < len(defaultFolders) {
		return defaultFolders[choice], nil
	}

	folder, err := f.prompter.Input("Digite o nome da pasta para salvar:")
	if err != nil {
		return "", err
	}
	if folder == "" {
		return "", errors.Validation("folder", "Nome de pasta inválido!")
	}
	return folder, nil
}

// resolveZenithPath returns the project root and the Zenith sources
// directory, asking the user when neither the configured root nor an
// ancestor of the working directory holds the package
func (f *Flow) resolveZenithPath() (string, string, error) {
	if isDir(f.cfg.ComponentsRoot()) {
		return f.cfg.Root, f.cfg.ComponentsRoot(), nil
	}
	if root, err := config.FindZenithRoot(f.workDir, MaxRootSearchLevels); err == nil {
		return root, filepath.Join(root, f.cfg.ComponentsPath), nil
	}

	f.diagnostics.Warn("Caminho Zenith não encontrado automaticamente.")
	choice, err := f.prompter.Choose("O que deseja fazer?", []string{
		"Informar o caminho manualmente",
		"Criar em uma pasta simulada no diretório atual",
	})
	if err != nil {
		return "", "", err
	}

	if choice == 1 {
		f.diagnostics.Warn("Criando em pasta simulada...")
		return f.workDir, filepath.Join(f.workDir, SimulatedZenithDir), nil
	}

	root, err := f.prompter.Input(
		"Informe o caminho completo para a pasta raiz do projeto:",
		"Ex: /Users/seu_usuario/Projetos/MeuApp",
	)
	if err != nil {
		return "", "", err
	}

	zenithPath := filepath.Join(root, f.cfg.ComponentsPath)
	if !isDir(zenithPath) {
		return "", "", errors.NotFound("Zenith path", zenithPath).
			WithSuggestion("Caminho Zenith não encontrado ou inválido!")
	}
	return root, zenithPath, nil
}

func (f *Flow) printHeader() {
	header := color.New(color.FgMagenta, color.Bold)
	line := strings.Repeat("=", 54)
	header.Fprintln(f.out, line)
	header.Fprintln(f.out, "         GERADOR DE COMPONENTES SWIFT")
	header.Fprintln(f.out, line)
	fmt.Fprintln(f.out)
}

func (f *Flow) printSummary(result *ScaffoldResult, folder string) {
	kindLabel := "Nativo"
	if result.Kind == models.CustomComponent {
		kindLabel = "Customizado"
	}

	f.diagnostics.Success("Componente %s gerado com sucesso!", result.Name)
	f.diagnostics.Summary("Resumo", map[string]interface{}{
		"Localização do componente": result.OutputDir,
		"Tipo de componente":        kindLabel,
		"Pasta":                     result.RelativeDir(folder),
		"Amostra":                   orNone(result.SamplePath),
		"Índice atualizado":         result.IndexUpdated,
	})
}

func orNone(s string) string {
	if s == "" {
		return "não criada"
	}
	return s
}
