package parser

import (
	"regexp"
	"strings"

	"github.com/kettlegym/zenithgen/internal/models"
)

// propertyPattern matches single-line var/let declarations with an explicit type.
// Multi-line declarations and defaults containing braces are not understood.
var propertyPattern = regexp.MustCompile(`(var|let)\s+(\w+)\s*:\s*([^{=\n]+)(?:\s*=\s*([^{\n]+))?`)

// ExtractProperties returns every typed var/let declaration in source order
func ExtractProperties(content string) []models.Property {
	var properties []models.Property

	for _, m := range propertyPattern.FindAllStringSubmatch(content, -1) {
		properties = append(properties, models.Property{
			Mutability: m[1],
			Name:       m[2],
			Type:       strings.TrimSpace(m[3]),
			Default:    strings.TrimSpace(m[4]),
		})
	}

	return properties
}
