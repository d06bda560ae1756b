package domain

type BarCategory string

const (
	BarClassic    BarCategory = "bar"
	BarPulqueria  BarCategory = "pulqueria"
	BarCantina    BarCategory = "cantina"
	BarMezcaleria BarCategory = "mezcaleria"
	BarRooftop    BarCategory = "rooftop"
	BarBrewery    BarCategory = "brewery"
	BarCocktail   BarCategory = "cocktail-bar"
)

var BarCategories = []BarCategory{
	BarClassic, BarPulqueria, BarCantina, BarMezcaleria, BarRooftop, BarBrewery, BarCocktail,
}

type Bar struct {
	BusinessEntity `yaml:",inline"`
	Category       BarCategory `json:"category" yaml:"category"`
	Atmosphere     Atmosphere  `json:"atmosphere" yaml:"atmosphere"`
	DrinkTypes     []string    `json:"drinkTypes,omitempty" yaml:"drinkTypes,omitempty"`
	LiveMusic      bool        `json:"liveMusic" yaml:"liveMusic"`
}
