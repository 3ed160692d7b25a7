// ABOUTME: CatalogEntry model for workout suggestions.
// ABOUTME: Entries come from the remote catalog or the built-in fallback list.
package models

// CatalogEntry is one suggested exercise.
type CatalogEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Muscles     []string `json:"muscles,omitempty" yaml:"muscles,omitempty"`
	Equipment   []string `json:"equipment,omitempty" yaml:"equipment,omitempty"`
}
