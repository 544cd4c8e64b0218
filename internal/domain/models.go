package domain

// CatalogItem is one beverage as served by the upstream catalog endpoint
type CatalogItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price"` // already currency formatted upstream
	Image  string `json:"image"` // may be empty
	Rating Rating `json:"rating"`
}

// Rating is the aggregated user rating of an item.
// A missing rating object decodes to the zero value.
type Rating struct {
	Average float64 `json:"average"`
	Reviews int     `json:"reviews"`
}

// ImageOr returns the item's image URL, or fallback when none was supplied
func (i CatalogItem) ImageOr(fallback string) string {
	if i.Image == "" {
		return fallback
	}
	return i.Image
}
