package domain

type RestaurantCategory string

const (
	RestaurantMexican       RestaurantCategory = "mexican"
	RestaurantSeafood       RestaurantCategory = "seafood"
	RestaurantInternational RestaurantCategory = "international"
	RestaurantVegetarian    RestaurantCategory = "vegetarian"
	RestaurantFineDining    RestaurantCategory = "fine-dining"
	RestaurantFonda         RestaurantCategory = "fonda"
)

var RestaurantCategories = []RestaurantCategory{
	RestaurantMexican, RestaurantSeafood, RestaurantInternational,
	RestaurantVegetarian, RestaurantFineDining, RestaurantFonda,
}

// RestaurantCategoryLabels maps a category id to the display labels older
// listings stored instead of the id.
var RestaurantCategoryLabels = map[RestaurantCategory]LocalizedText{
	RestaurantMexican:       {LocaleES: "Mexicana", LocaleEN: "Mexican"},
	RestaurantSeafood:       {LocaleES: "Mariscos", LocaleEN: "Seafood"},
	RestaurantInternational: {LocaleES: "Internacional", LocaleEN: "International"},
	RestaurantVegetarian:    {LocaleES: "Vegetariana", LocaleEN: "Vegetarian"},
	RestaurantFineDining:    {LocaleES: "Alta cocina", LocaleEN: "Fine dining"},
	RestaurantFonda:         {LocaleES: "Fonda", LocaleEN: "Home-style"},
}

type Atmosphere string

const (
	AtmosphereCasual      Atmosphere = "casual"
	AtmosphereFamily      Atmosphere = "family"
	AtmosphereRomantic    Atmosphere = "romantic"
	AtmosphereUpscale     Atmosphere = "upscale"
	AtmosphereTraditional Atmosphere = "traditional"
	AtmosphereLively      Atmosphere = "lively"
	AtmosphereCozy        Atmosphere = "cozy"
	AtmosphereWork        Atmosphere = "work-friendly"
)

// Atmospheres is the shared atmosphere vocabulary of restaurants, bars and cafes.
var Atmospheres = []Atmosphere{
	AtmosphereCasual, AtmosphereFamily, AtmosphereRomantic, AtmosphereUpscale,
	AtmosphereTraditional, AtmosphereLively, AtmosphereCozy, AtmosphereWork,
}

type Restaurant struct {
	BusinessEntity `yaml:",inline"`
	// Category holds a RestaurantCategory id or, for older listings, one of its labels.
	Category     string     `json:"category" yaml:"category"`
	Atmosphere   Atmosphere `json:"atmosphere" yaml:"atmosphere"`
	Cuisine      []string   `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Reservations bool       `json:"reservations" yaml:"reservations"`
}
