package places

import "strings"

// PlaceType identifies a place category. Autocomplete additionally accepts
// the collection types Cities and Regions, which group several concrete
// types and are serialized parenthesized.
type PlaceType string

const (
	PlaceTypeCities  PlaceType = "cities"
	PlaceTypeRegions PlaceType = "regions"

	PlaceTypeGeocode       PlaceType = "geocode"
	PlaceTypeAddress       PlaceType = "address"
	PlaceTypeEstablishment PlaceType = "establishment"

	PlaceTypeAirport     PlaceType = "airport"
	PlaceTypeBakery      PlaceType = "bakery"
	PlaceTypeBank        PlaceType = "bank"
	PlaceTypeBar         PlaceType = "bar"
	PlaceTypeCafe        PlaceType = "cafe"
	PlaceTypeGym         PlaceType = "gym"
	PlaceTypeHospital    PlaceType = "hospital"
	PlaceTypeLodging     PlaceType = "lodging"
	PlaceTypeMuseum      PlaceType = "museum"
	PlaceTypePark        PlaceType = "park"
	PlaceTypePharmacy    PlaceType = "pharmacy"
	PlaceTypeRestaurant  PlaceType = "restaurant"
	PlaceTypeSchool      PlaceType = "school"
	PlaceTypeSupermarket PlaceType = "supermarket"
)

// autocompleteValue renders the type for the autocomplete types parameter.
// The collection types are parenthesized on the wire, everything else is
// lowercased.
func (t PlaceType) autocompleteValue() string {
	switch t {
	case PlaceTypeCities, PlaceTypeRegions:
		return "(" + string(t) + ")"
	}
	return strings.ToLower(string(t))
}
