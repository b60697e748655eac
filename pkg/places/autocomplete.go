package places

import (
	"context"
	"strconv"
	"strings"
)

const (
	minRadiusMeters = 1
	maxRadiusMeters = 50000
)

// PlaceAutocompleteRequest describes a Place Autocomplete query. Input is
// required, everything else optional. Fields are never validated on
// assignment; QueryParams reports validation errors when the request is
// flattened.
type PlaceAutocompleteRequest struct {
	// Input is the text to return place predictions for.
	Input string

	// Offset is the caret position within Input, as text. When empty the
	// whole input is used.
	Offset string

	// SessionToken groups autocomplete requests for billing. See
	// NewSessionToken.
	SessionToken string

	// Location biases results toward this point.
	Location *LatLng

	// Radius is the bias distance in meters, between 1 and 50000.
	Radius *float64

	// StrictBounds restricts results to the Location/Radius region instead
	// of merely biasing toward it.
	StrictBounds bool

	// Language for the returned predictions, English when unset.
	Language Language

	// Types restricts predictions to the given place types.
	Types []PlaceType

	// Components restricts predictions by address components, e.g.
	// country:US.
	Components []ComponentFilter
}

// QueryParams validates the request and flattens it into ordered query
// parameters. The client's base parameters (API key) precede these on the
// wire.
func (r *PlaceAutocompleteRequest) QueryParams() ([]Param, error) {
	if r.Input == "" {
		return nil, &MissingFieldError{Field: "input"}
	}
	if err := validateRadius(r.Radius); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "input", Value: r.Input},
		{Key: "language", Value: r.Language.queryValue()},
	}
	if r.Offset != "" {
		params = append(params, Param{Key: "offset", Value: r.Offset})
	}
	if r.SessionToken != "" {
		params = append(params, Param{Key: "sessiontoken", Value: r.SessionToken})
	}
	params = appendLocationParams(params, r.Location, r.Radius)
	if r.StrictBounds {
		params = append(params, Param{Key: "strictbounds", Value: ""})
	}
	if len(r.Types) > 0 {
		values := make([]string, len(r.Types))
		for i, t := range r.Types {
			values[i] = t.autocompleteValue()
		}
		params = append(params, Param{Key: "types", Value: strings.Join(values, "|")})
	}
	if len(r.Components) > 0 {
		values := make([]string, len(r.Components))
		for i, f := range r.Components {
			values[i] = f.queryValue()
		}
		params = append(params, Param{Key: "components", Value: strings.Join(values, "|")})
	}

	return params, nil
}

// QueryAutocompleteRequest describes a Query Autocomplete request, which
// predicts full queries ("pizza near Paris") rather than places only.
type QueryAutocompleteRequest struct {
	Input    string
	Offset   string
	Location *LatLng
	Radius   *float64
	Language Language
}

// QueryParams validates the request and flattens it into ordered query
// parameters.
func (r *QueryAutocompleteRequest) QueryParams() ([]Param, error) {
	if r.Input == "" {
		return nil, &MissingFieldError{Field: "input"}
	}
	if err := validateRadius(r.Radius); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "input", Value: r.Input},
		{Key: "language", Value: r.Language.queryValue()},
	}
	if r.Offset != "" {
		params = append(params, Param{Key: "offset", Value: r.Offset})
	}
	params = appendLocationParams(params, r.Location, r.Radius)

	return params, nil
}

// validateRadius enforces the API's 1..50000 meter range on optional radius
// fields.
func validateRadius(radius *float64) error {
	if radius != nil && (*radius < minRadiusMeters || *radius > maxRadiusMeters) {
		return &OutOfRangeError{Field: "radius", Min: minRadiusMeters, Max: maxRadiusMeters}
	}
	return nil
}

// appendLocationParams appends the location and radius pairs shared by
// several request types, in that order.
func appendLocationParams(params []Param, location *LatLng, radius *float64) []Param {
	if location != nil {
		params = append(params, Param{Key: "location", Value: location.String()})
	}
	if radius != nil {
		params = append(params, Param{Key: "radius", Value: strconv.FormatFloat(*radius, 'f', -1, 64)})
	}
	return params
}

// PlaceAutocomplete returns place predictions for the partial text in req.
func (c *Client) PlaceAutocomplete(ctx context.Context, req *PlaceAutocompleteRequest) (*AutocompleteResponse, error) {
	var result AutocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QueryAutocomplete returns query predictions for the partial text in req.
func (c *Client) QueryAutocomplete(ctx context.Context, req *QueryAutocompleteRequest) (*AutocompleteResponse, error) {
	var result AutocompleteResponse
	if err := c.get(ctx, "/queryautocomplete/json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
