package places

import "solarad/internal/domain/entity"

// osmSelectors maps each location category to the OpenStreetMap tag
// selectors queried for it. Several selectors per category widen recall;
// the map source tags the same kind of building inconsistently.
var osmSelectors = map[entity.LocationType][]string{
	entity.LocationTypeResidence: {
		`["building"="apartments"]`,
		`["building"="residential"]`,
		`["landuse"="residential"]`,
	},
	entity.LocationTypeCommercial: {
		`["building"="office"]`,
		`["office"]`,
		`["building"="commercial"]`,
	},
	entity.LocationTypeFactory: {
		`["man_made"="works"]`,
		`["industrial"]`,
		`["landuse"="industrial"]`,
	},
	entity.LocationTypeMall: {
		`["shop"="mall"]`,
		`["shop"="department_store"]`,
		`["shop"="supermarket"]`,
	},
	entity.LocationTypeHotel: {
		`["tourism"="hotel"]`,
		`["tourism"="guest_house"]`,
		`["tourism"="motel"]`,
	},
	entity.LocationTypeSchool: {
		`["amenity"="school"]`,
		`["amenity"="university"]`,
		`["amenity"="college"]`,
	},
	entity.LocationTypeHospital: {
		`["amenity"="hospital"]`,
		`["amenity"="clinic"]`,
		`["healthcare"]`,
	},
	entity.LocationTypeOther: {
		`["amenity"="place_of_worship"]`,
		`["amenity"="community_centre"]`,
	},
}
