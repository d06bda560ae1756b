package app

import (
	"strings"
	"time"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

var restaurantStrategy = catalog.Strategy[*domain.Restaurant]{
	MatchesCategory:   restaurantInCategory,
	MatchesAtmosphere: func(r *domain.Restaurant, a string) bool { return string(r.Atmosphere) == a },
}

// restaurantInCategory accepts the category id or, for listings that stored a
// display label, any label registered for that id.
func restaurantInCategory(r *domain.Restaurant, category string) bool {
	if r.Category == category {
		return true
	}
	labels, ok := domain.RestaurantCategoryLabels[domain.RestaurantCategory(category)]
	if !ok {
		return false
	}
	for _, l := range labels {
		if strings.EqualFold(strings.TrimSpace(r.Category), l) {
			return true
		}
	}
	return false
}

func NewRestaurants(src domain.Source, cache domain.Cache, ttl time.Duration) *Service[*domain.Restaurant] {
	s := newService(domain.KindRestaurants, restaurantStrategy, src, cache, ttl)
	s.facets = newFacets(domain.RestaurantCategories, domain.Atmospheres)
	return s
}
