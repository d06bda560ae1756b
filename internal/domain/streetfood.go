package domain

type StreetFoodCategory string

const (
	StreetTacos       StreetFoodCategory = "tacos"
	StreetTamales     StreetFoodCategory = "tamales"
	StreetElotes      StreetFoodCategory = "elotes"
	StreetQuesadillas StreetFoodCategory = "quesadillas"
	StreetTortas      StreetFoodCategory = "tortas"
	StreetSweets      StreetFoodCategory = "sweets"
)

var StreetFoodCategories = []StreetFoodCategory{
	StreetTacos, StreetTamales, StreetElotes, StreetQuesadillas, StreetTortas, StreetSweets,
}

type VenueType string

const (
	VenueStall  VenueType = "stall"
	VenueCart   VenueType = "cart"
	VenueMarket VenueType = "market"
	VenueTruck  VenueType = "truck"
)

var VenueTypes = []VenueType{VenueStall, VenueCart, VenueMarket, VenueTruck}

type StreetFood struct {
	BusinessEntity `yaml:",inline"`
	Category       StreetFoodCategory `json:"category" yaml:"category"`
	VenueType      VenueType          `json:"venueType" yaml:"venueType"`
	LocalFavorite  bool               `json:"localFavorite" yaml:"localFavorite"`
}
