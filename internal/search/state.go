package search

import (
	"alescout/internal/domain"
)

// State holds the loaded catalog, the committed search term and the
// filtered view derived from both. The derived list is cached and only
// recomputed after the catalog or the term changes.
type State struct {
	catalog    []domain.CatalogItem
	generation uint64
	term       string

	cached     []domain.CatalogItem
	cachedGen  uint64
	cachedTerm string
	cacheValid bool

	recomputes int
}

// NewState creates an empty search state
func NewState() *State {
	return &State{}
}

// SetCatalog replaces the catalog wholesale. The slice is treated as
// immutable from here on and must not be modified by the caller.
func (s *State) SetCatalog(items []domain.CatalogItem) {
	s.catalog = items
	s.generation++
}

// Catalog returns the current catalog
func (s *State) Catalog() []domain.CatalogItem {
	return s.catalog
}

// SetTerm commits a new search term
func (s *State) SetTerm(term string) {
	s.term = term
}

// Term returns the committed search term
func (s *State) Term() string {
	return s.term
}

// Results returns the items matching the committed term.
// The returned slice is shared with the cache; do not modify it.
func (s *State) Results() []domain.CatalogItem {
	if s.cacheValid && s.cachedGen == s.generation && s.cachedTerm == s.term {
		return s.cached
	}

	s.cached = Filter(s.catalog, s.term)
	s.cachedGen = s.generation
	s.cachedTerm = s.term
	s.cacheValid = true
	s.recomputes++
	return s.cached
}

// Recomputes reports how many times the filtered list was rebuilt
func (s *State) Recomputes() int {
	return s.recomputes
}
