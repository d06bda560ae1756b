package app

import (
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

// Hotels have no atmosphere axis, so any atmosphere facet excludes them.
var hotelStrategy = catalog.Strategy[*domain.Hotel]{
	MatchesCategory: func(h *domain.Hotel, c string) bool { return string(h.Category) == c },
}

func NewHotels(src domain.Source, cache domain.Cache, ttl time.Duration) *Service[*domain.Hotel] {
	s := newService(domain.KindHotels, hotelStrategy, src, cache, ttl)
	s.facets = newFacets(domain.HotelCategories, []domain.Atmosphere(nil))
	return s
}
