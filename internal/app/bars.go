package app

import (
	"slices"
	"strings"
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

var barStrategy = catalog.Strategy[*domain.Bar]{
	MatchesCategory:   func(b *domain.Bar, c string) bool { return string(b.Category) == c },
	MatchesAtmosphere: func(b *domain.Bar, a string) bool { return string(b.Atmosphere) == a },
}

type BarService struct {
	*Service[*domain.Bar]
}

func NewBars(src domain.Source, cache domain.Cache, ttl time.Duration) *BarService {
	s := newService(domain.KindBars, barStrategy, src, cache, ttl)
	s.refine = func(items []*domain.Bar, r Request) []*domain.Bar { return ServingAnyDrink(items, r.Drinks) }
	s.facets = newFacets(domain.BarCategories, domain.Atmospheres)
	return &BarService{Service: s}
}

// SearchServing narrows a shared search to bars pouring at least one of drinks.
func (s *BarService) SearchServing(q catalog.Query, drinks []string) []*domain.Bar {
	return ServingAnyDrink(s.Search(q), drinks)
}

// ServingAnyDrink keeps bars serving any of drinks. An empty list keeps everything.
func ServingAnyDrink(bars []*domain.Bar, drinks []string) []*domain.Bar {
	if len(drinks) == 0 {
		return bars
	}
	out := make([]*domain.Bar, 0, len(bars))
	for _, b := range bars {
		if slices.ContainsFunc(b.DrinkTypes, func(d string) bool {
			return slices.ContainsFunc(drinks, func(w string) bool { return strings.EqualFold(d, w) })
		}) {
			out = append(out, b)
		}
	}
	return out
}
