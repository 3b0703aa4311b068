package registry

import "github.com/kettlegym/zenithgen/internal/models"

// HintProvider is the read side of the component type registry used by the
// sample generator
type HintProvider interface {
	Get(name string) models.Hints
	Has(name string) bool
	ExampleContent(name string) string
	UpdateFromAnalysis(info *models.ComponentInfo) models.Hints
}
