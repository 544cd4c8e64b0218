package search

import (
	"strings"

	"alescout/internal/domain"
)

// IsBlank reports whether term is empty or whitespace only
func IsBlank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// Matches checks if name contains term, ignoring case.
// The term is used as typed; inner and outer whitespace is significant.
func Matches(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// Filter returns the items whose names match term, in catalog order.
// A blank term matches nothing.
func Filter(items []domain.CatalogItem, term string) []domain.CatalogItem {
	if IsBlank(term) {
		return nil
	}

	var out []domain.CatalogItem
	for _, item := range items {
		if Matches(item.Name, term) {
			out = append(out, item)
		}
	}
	return out
}
