package app

import (
	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

// Facets lists the values a client may filter or sort a catalog by. For
// street food the atmosphere axis is the venue type, for rentals the setting.
type Facets struct {
	Categories  []string `json:"categories"`
	Atmospheres []string `json:"atmospheres"`
	PriceRanges []string `json:"priceRanges"`
	Dietary     []string `json:"dietary"`
	Sorts       []string `json:"sorts"`
}

func newFacets[C, A ~string](categories []C, atmospheres []A) Facets {
	return Facets{
		Categories:  strs(categories),
		Atmospheres: strs(atmospheres),
		PriceRanges: strs(domain.PriceTiers()),
		Dietary:     strs(domain.DietaryTags()),
		Sorts:       strs(catalog.SortKeys()),
	}
}

func strs[S ~string](xs []S) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, string(x))
	}
	return out
}
