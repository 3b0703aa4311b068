package templates

import (
	"bytes"
	"text/template"

	"github.com/kettlegym/zenithgen/internal/errors"
)

var defaultRegistry = NewTemplateRegistry()

// templateFuncs are available to every registered template
var templateFuncs = template.FuncMap{
	"indent":     Indent,
	"lower":      Lower,
	"upper":      Upper,
	"capitalize": Capitalize,
	"lowerFirst": LowerFirst,
	"join":       Join,
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

// render executes a template from the default registry
func render(name string, data interface{}) (string, error) {
	templateStr, ok := defaultRegistry.Get(name)
	if !ok {
		return "", errors.NotFound("template", name)
	}
	return executeTemplate(name, templateStr, data)
}

// renderAll executes the named templates in order and concatenates them
func renderAll(data interface{}, names ...string) (string, error) {
	var buf bytes.Buffer
	for _, name := range names {
		out, err := render(name, data)
		if err != nil {
			return "", err
		}
		buf.WriteString(out)
	}
	return buf.String(), nil
}
