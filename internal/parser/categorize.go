package parser

import (
	"strings"

	"github.com/kettlegym/zenithgen/internal/models"
)

// DefaultIgnoredProperties are members every themed view declares and that
// never become sample controls
var DefaultIgnoredProperties = []string{"body", "colors", "fonts", "themeConfigurator"}

// Category is the bucket a property is sorted into
type Category int

const (
	CategoryNone Category = iota
	CategoryEnum
	CategoryText
	CategoryBool
	CategoryNumber
)

var numberTypes = []string{"Int", "Double", "CGFloat", "Float"}

// Categorize returns the bucket for a declared type. Rules are tried in
// order and the first match wins.
func Categorize(declaredType string) Category {
	t := strings.TrimSpace(declaredType)

	switch {
	case strings.Contains(t, "Case") || t == "FontName" || t == "ColorName":
		return CategoryEnum
	case strings.Contains(t, "String"):
		return CategoryText
	case strings.Contains(t, "Bool"):
		return CategoryBool
	}

	for _, n := range numberTypes {
		if strings.Contains(t, n) {
			return CategoryNumber
		}
	}

	return CategoryNone
}

// Categories is the partition of a property list
type Categories struct {
	Enum    []models.Property
	Text    []models.Property
	Bool    []models.Property
	Number  []models.Property
	Closure []models.Property
	Complex []models.Property
}

// Categorizer sorts properties into buckets, skipping ignored names
type Categorizer struct {
	ignored map[string]struct{}
}

// NewCategorizer creates a categorizer; a nil list uses DefaultIgnoredProperties
func NewCategorizer(ignored []string) *Categorizer {
	if ignored == nil {
		ignored = DefaultIgnoredProperties
	}

	set := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		set[name] = struct{}{}
	}
	return &Categorizer{ignored: set}
}

// IsIgnored reports whether the property name is excluded from generation
func (c *Categorizer) IsIgnored(name string) bool {
	_, ok := c.ignored[name]
	return ok
}

// Partition places every non-ignored property in exactly one bucket
func (c *Categorizer) Partition(properties []models.Property) Categories {
	var cats Categories

	for _, p := range properties {
		if c.IsIgnored(p.Name) {
			continue
		}

		switch Categorize(p.Type) {
		case CategoryEnum:
			cats.Enum = append(cats.Enum, p)
		case CategoryText:
			cats.Text = append(cats.Text, p)
		case CategoryBool:
			cats.Bool = append(cats.Bool, p)
		case CategoryNumber:
			cats.Number = append(cats.Number, p)
		default:
			if strings.Contains(p.Type, "->") {
				cats.Closure = append(cats.Closure, p)
			} else {
				cats.Complex = append(cats.Complex, p)
			}
		}
	}

	return cats
}

// Apply stores the partition of info.Properties on info
func (c *Categorizer) Apply(info *models.ComponentInfo) {
	cats := c.Partition(info.Properties)

	info.EnumProperties = cats.Enum
	info.TextProperties = cats.Text
	info.BoolProperties = cats.Bool
	info.NumberProperties = cats.Number
	info.ClosureProperties = cats.Closure
	info.ComplexProperties = cats.Complex
}
