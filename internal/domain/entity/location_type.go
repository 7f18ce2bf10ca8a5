package entity

// LocationType is the closed category taxonomy for candidate sales locations.
// The values are the Thai labels the product has always stored; they double as
// the key into the OpenStreetMap tag mapping used by the external search.
type LocationType string

const (
	LocationTypeResidence  LocationType = "บ้านพักอาศัย"
	LocationTypeCommercial LocationType = "อาคารพาณิชย์"
	LocationTypeFactory    LocationType = "โรงงาน"
	LocationTypeMall       LocationType = "ห้างสรรพสินค้า"
	LocationTypeHotel      LocationType = "โรงแรม"
	LocationTypeSchool     LocationType = "โรงเรียน"
	LocationTypeHospital   LocationType = "โรงพยาบาล"
	LocationTypeOther      LocationType = "อื่นๆ"
)

// String returns the string representation of the LocationType.
func (t LocationType) String() string {
	return string(t)
}

// IsValid checks if the LocationType is one of the eight known categories.
func (t LocationType) IsValid() bool {
	switch t {
	case LocationTypeResidence, LocationTypeCommercial, LocationTypeFactory,
		LocationTypeMall, LocationTypeHotel, LocationTypeSchool,
		LocationTypeHospital, LocationTypeOther:
		return true
	default:
		return false
	}
}

// LocationTypes returns the fixed enumeration in display order.
func LocationTypes() []LocationType {
	return []LocationType{
		LocationTypeResidence,
		LocationTypeCommercial,
		LocationTypeFactory,
		LocationTypeMall,
		LocationTypeHotel,
		LocationTypeSchool,
		LocationTypeHospital,
		LocationTypeOther,
	}
}
