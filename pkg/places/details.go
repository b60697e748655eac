package places

import (
	"context"
	"strings"
)

// PlaceDetailsRequest fetches full details for one place by its place ID.
type PlaceDetailsRequest struct {
	// PlaceID identifies the place, typically taken from an autocomplete
	// prediction or search result.
	PlaceID string

	// Fields limits the response to the named fields. Empty means all.
	Fields []string

	// Language for the returned details, English when unset.
	Language Language

	// Region is a ccTLD region code biasing the results.
	Region string

	// SessionToken closes out the autocomplete session this details call
	// belongs to.
	SessionToken string
}

// QueryParams validates the request and flattens it into ordered query
// parameters.
func (r *PlaceDetailsRequest) QueryParams() ([]Param, error) {
	if r.PlaceID == "" {
		return nil, &MissingFieldError{Field: "place_id"}
	}

	params := []Param{
		{Key: "place_id", Value: r.PlaceID},
		{Key: "language", Value: r.Language.queryValue()},
	}
	if len(r.Fields) > 0 {
		params = append(params, Param{Key: "fields", Value: strings.Join(r.Fields, ",")})
	}
	if r.Region != "" {
		params = append(params, Param{Key: "region", Value: r.Region})
	}
	if r.SessionToken != "" {
		params = append(params, Param{Key: "sessiontoken", Value: r.SessionToken})
	}

	return params, nil
}

// PlaceDetails returns full details for the place identified by req.
func (c *Client) PlaceDetails(ctx context.Context, req *PlaceDetailsRequest) (*PlaceDetailsResponse, error) {
	var result PlaceDetailsResponse
	if err := c.get(ctx, "/details/json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
