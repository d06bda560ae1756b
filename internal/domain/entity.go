package domain

import (
	"slices"
	"strings"
)

// Locale is one of the two supported content languages.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// Locales lists every supported locale, Spanish first.
var Locales = []Locale{LocaleES, LocaleEN}

// ParseLocale maps a lang tag ("es", "es-MX", "EN") to a supported Locale.
// Anything else is reported as unsupported and callers fall back to English.
func ParseLocale(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "es") {
		return LocaleES, true
	}
	if strings.HasPrefix(s, "en") {
		return LocaleEN, true
	}
	return LocaleEN, false
}

// LocalizedText holds one string per locale.
type LocalizedText map[Locale]string

// LocalizedList holds one ordered list per locale.
type LocalizedList map[Locale][]string

// PriceRange is an ordinal price tier.
type PriceRange string

const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PriceLuxury    PriceRange = "$$$$"
)

var priceTiers = []PriceRange{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

// Rank returns the ordinal position of p ($ = 0). ok is false for anything
// that is not one of the four tiers.
func (p PriceRange) Rank() (int, bool) {
	i := slices.Index(priceTiers, p)
	return i, i >= 0
}

// PriceTiers lists the legal price tiers, cheapest first.
func PriceTiers() []PriceRange { return slices.Clone(priceTiers) }

func (p PriceRange) Valid() bool {
	_, ok := p.Rank()
	return ok
}

// Dietary is a closed set of dietary tags.
type Dietary string

const (
	Vegetarian Dietary = "vegetarian"
	Vegan      Dietary = "vegan"
	GlutenFree Dietary = "gluten-free"
	Organic    Dietary = "organic"
	Spicy      Dietary = "spicy"
)

var dietaryTags = []Dietary{Vegetarian, Vegan, GlutenFree, Organic, Spicy}

func (d Dietary) Valid() bool { return slices.Contains(dietaryTags, d) }

func DietaryTags() []Dietary { return slices.Clone(dietaryTags) }

// Coordinates are consumed by the map layer only.
type Coordinates struct {
	Lng float64 `json:"lng" yaml:"lng"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// BusinessEntity is the shape every catalog listing shares.
type BusinessEntity struct {
	ID          string        `json:"id" yaml:"id"`
	Slug        string        `json:"slug" yaml:"slug"`
	Name        LocalizedText `json:"name" yaml:"name"`
	Description LocalizedText `json:"description" yaml:"description"`
	Address     LocalizedText `json:"address" yaml:"address"`
	Hours       LocalizedText `json:"hours" yaml:"hours"`
	Specialties LocalizedList `json:"specialties,omitempty" yaml:"specialties,omitempty"`
	PriceRange  PriceRange    `json:"priceRange" yaml:"priceRange"`
	Rating      float64       `json:"rating" yaml:"rating"`
	ReviewCount int           `json:"reviewCount" yaml:"reviewCount"`
	Amenities   []string      `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	Dietary     []Dietary     `json:"dietary,omitempty" yaml:"dietary,omitempty"`
	Featured    bool          `json:"featured" yaml:"featured"`
	Verified    bool          `json:"verified" yaml:"verified"`
	Coordinates Coordinates   `json:"coordinates" yaml:"coordinates"`

	Delivery     bool `json:"delivery" yaml:"delivery"`
	Parking      bool `json:"parking" yaml:"parking"`
	WiFi         bool `json:"wifi" yaml:"wifi"`
	AcceptsCards bool `json:"acceptsCards" yaml:"acceptsCards"`
}

// Common lets every variant hand its shared fields to the query engine.
func (e *BusinessEntity) Common() *BusinessEntity { return e }

// HasDietary reports whether every tag in want is present.
func (e *BusinessEntity) HasDietary(want []Dietary) bool {
	for _, d := range want {
		if !slices.Contains(e.Dietary, d) {
			return false
		}
	}
	return true
}

// HasAmenities reports whether every tag in want is present.
func (e *BusinessEntity) HasAmenities(want []string) bool {
	for _, a := range want {
		if !slices.Contains(e.Amenities, a) {
			return false
		}
	}
	return true
}

// Entity is implemented by pointers to every variant.
type Entity interface {
	Common() *BusinessEntity
}
