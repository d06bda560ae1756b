package app

import (
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

var rentalStrategy = catalog.Strategy[*domain.Rental]{
	MatchesCategory:   func(r *domain.Rental, c string) bool { return string(r.Category) == c },
	MatchesAtmosphere: func(r *domain.Rental, s string) bool { return string(r.Setting) == s },
}

type RentalService struct {
	*Service[*domain.Rental]
}

func NewRentals(src domain.Source, cache domain.Cache, ttl time.Duration) *RentalService {
	s := newService(domain.KindRentals, rentalStrategy, src, cache, ttl)
	s.facets = newFacets(domain.RentalCategories, domain.RentalSettings)
	s.refine = func(items []*domain.Rental, r Request) []*domain.Rental { return ForGuests(items, r.Guests) }
	return &RentalService{Service: s}
}

func (s *RentalService) SearchForGuests(q catalog.Query, guests int) []*domain.Rental {
	return ForGuests(s.Search(q), guests)
}

// ForGuests keeps rentals sleeping at least guests people. guests <= 0 keeps everything.
func ForGuests(items []*domain.Rental, guests int) []*domain.Rental {
	if guests <= 0 {
		return items
	}
	out := make([]*domain.Rental, 0, len(items))
	for _, it := range items {
		if it.MaxGuests >= guests {
			out = append(out, it)
		}
	}
	return out
}
