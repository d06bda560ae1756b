package domain

// Kind names a catalog.
type Kind string

const (
	KindHotels      Kind = "hotels"
	KindRestaurants Kind = "restaurants"
	KindBars        Kind = "bars"
	KindCafes       Kind = "cafes"
	KindStreetFood  Kind = "street-food"
	KindEcoLodges   Kind = "eco-lodges"
	KindRentals     Kind = "rentals"
)

var Kinds = []Kind{
	KindHotels, KindRestaurants, KindBars, KindCafes, KindStreetFood, KindEcoLodges, KindRentals,
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
