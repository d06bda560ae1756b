package app

import (
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

var cafeStrategy = catalog.Strategy[*domain.Cafe]{
	MatchesCategory:   func(c *domain.Cafe, v string) bool { return string(c.Category) == v },
	MatchesAtmosphere: func(c *domain.Cafe, v string) bool { return string(c.Atmosphere) == v },
}

func NewCafes(src domain.Source, cache domain.Cache, ttl time.Duration) *Service[*domain.Cafe] {
	s := newService(domain.KindCafes, cafeStrategy, src, cache, ttl)
	s.facets = newFacets(domain.CafeCategories, domain.Atmospheres)
	return s
}
