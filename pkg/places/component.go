package places

import "strings"

// Component is an address-component kind usable in component filters.
type Component string

const (
	ComponentRoute              Component = "route"
	ComponentLocality           Component = "locality"
	ComponentAdministrativeArea Component = "administrative_area"
	ComponentPostalCode         Component = "postal_code"
	ComponentCountry            Component = "country"
)

// ComponentFilter restricts results to places whose address component of
// the given kind matches Value. The kind is lowercased on the wire; the
// value passes through unmodified.
type ComponentFilter struct {
	Component Component
	Value     string
}

func (f ComponentFilter) queryValue() string {
	return strings.ToLower(string(f.Component)) + ":" + f.Value
}
