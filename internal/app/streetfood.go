package app

import (
	"strings"
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

var streetFoodStrategy = catalog.Strategy[*domain.StreetFood]{
	Description:       streetFoodDescription,
	MatchesCategory:   func(s *domain.StreetFood, c string) bool { return string(s.Category) == c },
	MatchesAtmosphere: func(s *domain.StreetFood, v string) bool { return string(s.VenueType) == v },
}

// streetFoodDescription appends the stall's specialties so searching for a dish
// finds the stalls selling it.
func streetFoodDescription(s *domain.StreetFood, loc domain.Locale) string {
	desc := domain.GetDescription(s, loc)
	specs := domain.GetSpecialties(s, loc)
	switch {
	case len(specs) == 0:
		return desc
	case desc == domain.NotAvailable:
		return strings.Join(specs, ", ")
	}
	return desc + " · " + strings.Join(specs, ", ")
}

type StreetFoodService struct {
	*Service[*domain.StreetFood]
}

func NewStreetFood(src domain.Source, cache domain.Cache, ttl time.Duration) *StreetFoodService {
	s := newService(domain.KindStreetFood, streetFoodStrategy, src, cache, ttl)
	s.facets = newFacets(domain.StreetFoodCategories, domain.VenueTypes)
	s.refine = func(items []*domain.StreetFood, r Request) []*domain.StreetFood {
		if !r.LocalFavorite {
			return items
		}
		return LocalFavorites(items)
	}
	return &StreetFoodService{Service: s}
}

// SearchLocalFavorites narrows a shared search to stalls locals vouch for.
func (s *StreetFoodService) SearchLocalFavorites(q catalog.Query) []*domain.StreetFood {
	return LocalFavorites(s.Search(q))
}

func LocalFavorites(items []*domain.StreetFood) []*domain.StreetFood {
	out := make([]*domain.StreetFood, 0, len(items))
	for _, it := range items {
		if it.LocalFavorite {
			out = append(out, it)
		}
	}
	return out
}
