package domain

type CafeCategory string

const (
	CafeSpecialty   CafeCategory = "specialty-coffee"
	CafeBakery      CafeCategory = "bakery-cafe"
	CafeTeaHouse    CafeCategory = "tea-house"
	CafeTraditional CafeCategory = "traditional"
	CafeBrunch      CafeCategory = "brunch"
)

var CafeCategories = []CafeCategory{CafeSpecialty, CafeBakery, CafeTeaHouse, CafeTraditional, CafeBrunch}

type Cafe struct {
	BusinessEntity `yaml:",inline"`
	Category       CafeCategory `json:"category" yaml:"category"`
	Atmosphere     Atmosphere   `json:"atmosphere" yaml:"atmosphere"`
	CoffeeOrigins  []string     `json:"coffeeOrigins,omitempty" yaml:"coffeeOrigins,omitempty"`
}
