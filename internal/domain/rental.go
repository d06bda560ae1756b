package domain

type RentalCategory string

const (
	RentalApartment RentalCategory = "apartment"
	RentalHouse     RentalCategory = "house"
	RentalVilla     RentalCategory = "villa"
	RentalCabin     RentalCategory = "cabin"
	RentalStudio    RentalCategory = "studio"
)

var RentalCategories = []RentalCategory{RentalApartment, RentalHouse, RentalVilla, RentalCabin, RentalStudio}

type RentalSetting string

const (
	SettingBeach       RentalSetting = "beach"
	SettingCity        RentalSetting = "city"
	SettingMountain    RentalSetting = "mountain"
	SettingCountryside RentalSetting = "countryside"
)

var RentalSettings = []RentalSetting{SettingBeach, SettingCity, SettingMountain, SettingCountryside}

type Rental struct {
	BusinessEntity `yaml:",inline"`
	Category       RentalCategory `json:"category" yaml:"category"`
	Setting        RentalSetting  `json:"setting" yaml:"setting"`
	Bedrooms       int            `json:"bedrooms" yaml:"bedrooms"`
	MaxGuests      int            `json:"maxGuests" yaml:"maxGuests"`
	MinNights      int            `json:"minNights,omitempty" yaml:"minNights,omitempty"`
}
