package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kettlegym/zenithgen/internal/cli"
	"github.com/kettlegym/zenithgen/internal/utils"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to the configuration file (defaults to ./.zenithgen.yaml when present)")
		rootFlag     = flag.String("root", "", "Project root holding Packages/Zenith (overrides the configuration)")
		registerFlag = flag.Bool("auto-register", false, "Insert the generated sample into the sample index view")
		listFlag     = flag.Bool("list", false, "List every known component with its source and exit")
		allFlag      = flag.Bool("all", false, "Generate samples for every native component")
		watchFlag    = flag.Bool("watch", false, "Regenerate the sample whenever the component sources change")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag    = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <ComponentName>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Zenith Sample Generator\n")
		fmt.Fprintf(os.Stderr, "Reads a component's Swift sources and writes an interactive sample view for the gallery app.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  ComponentName      Name of a component under BaseElements/Natives or Components/Customs\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s Button                   # Generate ButtonSample.swift\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -auto-register Chip      # Generate and add ChipSample() to the index\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -all                     # Generate every native sample\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -list                    # Show the known components\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -watch Badge             # Regenerate on every save\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -root ~/Projects/App Text # Use another project root\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if !*listFlag && !*allFlag && len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one component name is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	diagnostics := utils.NewDiagnosticsFromFlags(*quietFlag, *verboseFlag)
	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	diagnostics.Section("Zenith Sample Generator")

	cfg, err := cli.LoadConfig(cli.Options{
		ConfigPath: *configFlag,
		Root:       *rootFlag,
		Verbose:    *verboseFlag,
		Quiet:      *quietFlag,
	}, diagnostics)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Project root: %s", cfg.Root)
		diagnostics.List("Components: %s", cfg.ComponentsRoot())
		diagnostics.List("Samples: %s", cfg.SamplesRoot())
		if source := cfg.Source(); source != "" {
			diagnostics.List("Config file: %s", source)
		}
	}

	diagnostics.StartProgress("Discovering components")
	reg, discovered, err := cli.BuildRegistry(cfg, diagnostics)
	if err != nil {
		diagnostics.EndProgress(false, "")
		reporter.ReportError(err)
		os.Exit(1)
	}
	diagnostics.EndProgress(true, fmt.Sprintf("%d found", discovered))

	generator := cli.NewSampleGenerator(cfg, reg, diagnostics)

	switch {
	case *listFlag:
		diagnostics.Subsection("Known Components")
		for _, entry := range generator.List() {
			fmt.Printf("%-24s %-8s %s\n", entry.Name, entry.Kind, entry.Source)
		}
		return

	case *allFlag:
		diagnostics.Subsection("Sample Generation")
		paths, err := generator.GenerateAll()
		if err != nil {
			reporter.ReportError(err)
			// A batch only fails when nothing could be written
			if len(paths) == 0 {
				os.Exit(1)
			}
		}

	default:
		name := args[0]

		diagnostics.Subsection("Sample Generation")
		if _, err := generator.Generate(name); err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}

		if *registerFlag {
			if _, err := generator.AutoRegister(name); err != nil {
				reporter.ReportError(err)
				os.Exit(1)
			}
		}

		if *watchFlag {
			if err := watch(generator, name, diagnostics); err != nil {
				reporter.ReportError(err)
				os.Exit(1)
			}
		}
	}

	summary := generator.GetSummary()
	summary.ComponentsDiscovered = discovered
	if *quietFlag {
		return
	}

	diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Components discovered": summary.ComponentsDiscovered,
		"Samples generated":     summary.SamplesGenerated,
		"Index updates":         summary.IndexUpdates,
		"Failures":              summary.Failures,
	})

	if *verboseFlag {
		reporter.ReportSuccess(summary)
	}
}

// watch regenerates name's sample until SIGINT or SIGTERM
func watch(generator *cli.SampleGenerator, name string, diagnostics *utils.DiagnosticSystem) error {
	info, err := generator.Locate(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := cli.NewWatcher(info.Dir, generator.Files(), func() error {
		_, err := generator.Generate(name)
		return err
	}, diagnostics)

	return watcher.Run(ctx)
}
