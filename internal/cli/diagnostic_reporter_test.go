package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kettlegym/zenithgen/internal/errors"
)

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportWarning("This is a test warning")

	assert.Contains(t, errOut.String(), "! This is a test warning")
	assert.Empty(t, out.String())
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains []string
		excludes []string
	}{
		{
			name: "not found with context and suggestion",
			err: errors.NotFound("component", "Avatar").
				WithContext("native_dir", "/tmp/Natives").
				WithSuggestion("run samplegen -list to see the known components"),
			contains: []string{
				"ERROR: Generation Failed",
				"Type: NotFoundError",
				"Message: component 'Avatar' not found",
				"Context:",
				"   Kind: component",
				"   Native Dir: /tmp/Natives",
				"Suggestions:",
				"   1. run samplegen -list to see the known components",
			},
			excludes: []string{"Error Chain:"},
		},
		{
			name: "location",
			err: errors.New(errors.TemplateErrorCode, "bad template").
				WithLocation(errors.SourceLocation{File: "BadgeStyles.swift", Line: 12}),
			contains: []string{"Location: BadgeStyles.swift:12"},
		},
		{
			name:     "error chain when verbose",
			verbose:  true,
			err:      errors.WrapFileSystemError("write", "/tmp/x", stderrors.New("permission denied")),
			contains: []string{"Error Chain:", "   1. permission denied"},
		},
		{
			name:     "plain error",
			err:      stderrors.New("boom"),
			contains: []string{"ERROR: Generation Failed", "Message: boom"},
			excludes: []string{"Type:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			NewDiagnosticReporterWithWriters(tt.verbose, &out, &errOut).ReportError(tt.err)

			for _, want := range tt.contains {
				assert.Contains(t, errOut.String(), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, errOut.String(), unwanted)
			}
		})
	}
}

func TestDiagnosticReporter_ReportMultipleErrors(t *testing.T) {
	multi := errors.NewMultipleErrors()
	multi.Add(errors.NotFound("component", "Divider"))
	multi.Add(errors.NotFound("component", "Toggle"))

	var out, errOut bytes.Buffer
	NewDiagnosticReporterWithWriters(false, &out, &errOut).ReportError(multi)

	output := errOut.String()
	assert.Contains(t, output, "ERROR: 2 components failed")
	assert.Contains(t, output, "component 'Divider' not found")
	assert.Contains(t, output, "component 'Toggle' not found")
	assert.NotContains(t, output, "Generation Failed")
}

func TestDiagnosticReporter_ReportNil(t *testing.T) {
	var out, errOut bytes.Buffer
	NewDiagnosticReporterWithWriters(true, &out, &errOut).ReportError(nil)
	assert.Empty(t, errOut.String())
}

func TestDiagnosticReporter_ReportSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportSuccess(GenerationSummary{
		ComponentsDiscovered: 7,
		SamplesGenerated:     2,
		IndexUpdates:         1,
		GeneratedFiles:       []string{"/tmp/ButtonSample.swift", "/tmp/TextSample.swift"},
	})

	output := out.String()
	assert.Contains(t, output, "Generation Completed Successfully!")
	assert.Contains(t, output, "Discovered 7 components")
	assert.Contains(t, output, "Generated 2 samples")
	assert.Contains(t, output, "Registered 1 samples in the index")
	assert.Contains(t, output, "  - /tmp/TextSample.swift")
	assert.NotContains(t, output, "Skipped")
}

func TestFormatContextKey(t *testing.T) {
	r := NewDiagnosticReporterWithWriters(false, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, "Config Type", r.formatContextKey("config_type"))
	assert.Equal(t, "Path", r.formatContextKey("path"))
}
