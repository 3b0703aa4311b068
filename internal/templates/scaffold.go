package templates

import (
	"regexp"
	"strings"

	"github.com/kettlegym/zenithgen/internal/errors"
	"github.com/kettlegym/zenithgen/internal/models"
)

// SampleIndexMarker is the placeholder the sample index keeps for new entries
const SampleIndexMarker = "//AQUI{Component}"

// ScaffoldFile is a generated file, relative to the component directory
type ScaffoldFile struct {
	Name    string
	Content string
}

// ScaffoldData is the data the scaffold templates are rendered with
type ScaffoldData struct {
	Name   string
	Lower  string
	Upper  string
	Native bool
}

type scaffoldTemplate struct {
	name     string
	template string
}

// NewScaffoldData derives the template names for a component
func NewScaffoldData(name string, kind models.ComponentKind) ScaffoldData {
	name = ComponentName(name)
	return ScaffoldData{
		Name:   name,
		Lower:  Lower(name),
		Upper:  Upper(name),
		Native: kind == models.NativeComponent,
	}
}

// RenderScaffold renders the source files of a new component. Native
// components get a style configuration and styles; custom components also
// get the view itself.
func RenderScaffold(name string, kind models.ComponentKind) ([]ScaffoldFile, error) {
	data := NewScaffoldData(name, kind)
	if data.Name == "" {
		return nil, errors.Validation("component name", "cannot be empty")
	}

	files := []scaffoldTemplate{
		{data.Name + "StyleConfiguration.swift", "scaffold-style-configuration"},
	}
	if data.Native {
		files = append(files, scaffoldTemplate{data.Name + "Styles.swift", "scaffold-native-styles"})
	} else {
		files = append(files,
			scaffoldTemplate{data.Name + "Styles.swift", "scaffold-custom-styles"},
			scaffoldTemplate{data.Name + ".swift", "scaffold-custom-component"},
		)
	}

	out := make([]ScaffoldFile, 0, len(files))
	for _, f := range files {
		content, err := render(f.template, data)
		if err != nil {
			return nil, err
		}
		out = append(out, ScaffoldFile{Name: f.name, Content: content})
	}
	return out, nil
}

// RenderScaffoldSample renders the gallery entry of a new component
func RenderScaffoldSample(name string, kind models.ComponentKind) (ScaffoldFile, error) {
	data := NewScaffoldData(name, kind)
	if data.Name == "" {
		return ScaffoldFile{}, errors.Validation("component name", "cannot be empty")
	}

	content, err := render("scaffold-sample", data)
	if err != nil {
		return ScaffoldFile{}, err
	}
	return ScaffoldFile{Name: data.Name + "Sample.swift", Content: content}, nil
}

var sampleCallPattern = regexp.MustCompile(`(.*?Sample\(\))`)

const sampleIndent = "\n                "

// InsertSampleIntoIndex adds `<Name>Sample()` to the sample index. The entry
// goes before the marker when present, otherwise after the last sample call.
// It reports false when no insertion point exists.
func InsertSampleIntoIndex(content, name string) (string, bool) {
	call := ComponentName(name) + "Sample()"

	if strings.Contains(content, SampleIndexMarker) {
		return strings.Replace(content, SampleIndexMarker, call+sampleIndent+SampleIndexMarker, 1), true
	}

	matches := sampleCallPattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, false
	}

	end := matches[len(matches)-1][1]
	return content[:end] + sampleIndent + call + content[end:], true
}
