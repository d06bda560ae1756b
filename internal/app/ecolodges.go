package app

import (
	"slices"
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

// Eco-lodges reuse their category as the atmosphere axis through
// domain.EcoLodgeAtmospheres.
var ecoLodgeStrategy = catalog.Strategy[*domain.EcoLodge]{
	MatchesCategory: func(e *domain.EcoLodge, c string) bool { return string(e.Category) == c },
	MatchesAtmosphere: func(e *domain.EcoLodge, a string) bool {
		return slices.Contains(domain.EcoLodgeAtmospheres[e.Category], domain.Atmosphere(a))
	},
}

// ecoLodgeAtmospheres flattens the per-category table, first occurrence wins.
func ecoLodgeAtmospheres() []domain.Atmosphere {
	var out []domain.Atmosphere
	for _, c := range domain.EcoLodgeCategories {
		for _, a := range domain.EcoLodgeAtmospheres[c] {
			if !slices.Contains(out, a) {
				out = append(out, a)
			}
		}
	}
	return out
}

func NewEcoLodges(src domain.Source, cache domain.Cache, ttl time.Duration) *Service[*domain.EcoLodge] {
	s := newService(domain.KindEcoLodges, ecoLodgeStrategy, src, cache, ttl)
	s.facets = newFacets(domain.EcoLodgeCategories, ecoLodgeAtmospheres())
	return s
}
