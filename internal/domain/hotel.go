package domain

type HotelCategory string

const (
	HotelBoutique HotelCategory = "boutique"
	HotelResort   HotelCategory = "resort"
	HotelEco      HotelCategory = "eco"
	HotelLuxury   HotelCategory = "luxury"
	HotelBudget   HotelCategory = "budget"
	HotelHostel   HotelCategory = "hostel"
	HotelBusiness HotelCategory = "business"
)

var HotelCategories = []HotelCategory{
	HotelBoutique, HotelResort, HotelEco, HotelLuxury, HotelBudget, HotelHostel, HotelBusiness,
}

// Hotel has no second classification axis.
type Hotel struct {
	BusinessEntity `yaml:",inline"`
	Category       HotelCategory `json:"category" yaml:"category"`
	Stars          int           `json:"stars,omitempty" yaml:"stars,omitempty"`
	Rooms          int           `json:"rooms,omitempty" yaml:"rooms,omitempty"`
	CheckIn        string        `json:"checkIn,omitempty" yaml:"checkIn,omitempty"`
	CheckOut       string        `json:"checkOut,omitempty" yaml:"checkOut,omitempty"`
}
