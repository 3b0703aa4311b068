package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/kettlegym/zenithgen/internal/cli"
	"github.com/kettlegym/zenithgen/internal/utils"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to the configuration file (defaults to ./.zenithgen.yaml when present)")
		rootFlag    = flag.String("root", "", "Project root holding Packages/Zenith (overrides the configuration)")
		plainFlag   = flag.Bool("plain", false, "Read answers line by line instead of the interactive menus")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Zenith Component Generator\n")
		fmt.Fprintf(os.Stderr, "Asks for a component kind, name and folder, then writes its Swift files and gallery sample.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Interactive menus\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -plain < answers.txt     # Scripted answers, one per line\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -root ~/Projects/App     # Use another project root\n", os.Args[0])
	}

	flag.Parse()

	diagnostics := utils.NewDiagnosticsFromFlags(*quietFlag, *verboseFlag)
	reporter := cli.NewDiagnosticReporter(*verboseFlag)

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

	// The bubbletea menus read ctrl+c as a key; the line prompter relies on
	// the signal instead.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stdout, "\n"+cli.ExitMessage)
		os.Exit(0)
	}()

	prompter := cli.NewPrompter(*plainFlag, os.Stdin, os.Stdout)
	flow := cli.NewFlow(cfg, prompter, nil, diagnostics, os.Stdout)

	if err := flow.Run(context.Background()); err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}
}
