package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/kettlegym/zenithgen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return NewDiagnosticReporterWithWriters(verbose, os.Stdout, os.Stderr)
}

// NewDiagnosticReporterWithWriters creates a reporter writing to the given writers
func NewDiagnosticReporterWithWriters(verbose bool, out, errOut io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) {
		fmt.Fprintf(r.errOut, "\nERROR: %d components failed\n", multi.Count())
		fmt.Fprintf(r.errOut, "=========================\n")
		for _, e := range multi.Errors {
			fmt.Fprintf(r.errOut, "\n")
			r.reportGenError(e)
		}
		fmt.Fprintf(r.errOut, "\n")
		return
	}

	fmt.Fprintf(r.errOut, "\nERROR: Generation Failed\n")
	fmt.Fprintf(r.errOut, "========================\n\n")

	var genErr errors.GenError
	if stderrors.As(err, &genErr) {
		r.reportGenError(genErr)
	} else {
		fmt.Fprintf(r.errOut, "Message: %s\n", err.Error())
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportGenError reports an error with its context and suggestions
func (r *DiagnosticReporter) reportGenError(genErr errors.GenError) {
	fmt.Fprintf(r.errOut, "Type: %s\n", genErr.ErrorCode())
	fmt.Fprintf(r.errOut, "Message: %s\n", genErr.Error())

	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n", loc)
	}

	if ctx := genErr.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose {
		r.printErrorChain(genErr.Unwrap())
	}
}

// printContext prints context information sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.errOut, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), context[key])
	}
}

// formatContextKey converts snake_case keys to Title Case
func (r *DiagnosticReporter) formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, suggestion)
	}
}

func (r *DiagnosticReporter) printErrorChain(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(r.errOut, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.errOut, "   %d. %s\n", level, err.Error())
		err = stderrors.Unwrap(err)
		level++
	}
}

// ReportSuccess reports a finished run with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Fprintf(r.out, "\nGeneration Completed Successfully!\n")
	fmt.Fprintf(r.out, "==================================\n\n")

	if summary.ComponentsDiscovered > 0 {
		fmt.Fprintf(r.out, "Discovered %d components\n", summary.ComponentsDiscovered)
	}

	if summary.SamplesGenerated > 0 {
		fmt.Fprintf(r.out, "Generated %d samples\n", summary.SamplesGenerated)
	}

	if summary.IndexUpdates > 0 {
		fmt.Fprintf(r.out, "Registered %d samples in the index\n", summary.IndexUpdates)
	}

	if summary.Failures > 0 {
		fmt.Fprintf(r.out, "Skipped %d components\n", summary.Failures)
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Fprintf(r.out, "\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Fprintf(r.out, "  - %s\n", file)
		}
	}
}

// GenerationSummary contains information about a generation run
type GenerationSummary struct {
	ComponentsDiscovered int
	SamplesGenerated     int
	IndexUpdates         int
	Failures             int
	GeneratedFiles       []string
}
