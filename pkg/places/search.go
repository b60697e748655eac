package places

import (
	"context"
	"strconv"
	"strings"
)

// RankBy controls result ordering for Nearby Search.
type RankBy string

const (
	RankByProminence RankBy = "prominence"
	RankByDistance   RankBy = "distance"
)

// NearbySearchRequest searches for places around a location.
type NearbySearchRequest struct {
	// Location is the center of the search, required.
	Location *LatLng

	// Radius is the search distance in meters, between 1 and 50000.
	// Required unless RankBy is RankByDistance, in which case it must be
	// unset.
	Radius *float64

	// Keyword is a term matched against all place content.
	Keyword string

	// Type restricts results to one place type.
	Type PlaceType

	// Language for the returned results, English when unset.
	Language Language

	// MinPrice and MaxPrice restrict results by price level (0 to 4).
	MinPrice *int
	MaxPrice *int

	// OpenNow restricts results to places open at request time.
	OpenNow bool

	// RankBy orders results by prominence (default) or distance.
	RankBy RankBy

	// PageToken fetches the next page of a previous search.
	PageToken string
}

// QueryParams validates the request and flattens it into ordered query
// parameters.
func (r *NearbySearchRequest) QueryParams() ([]Param, error) {
	if r.Location == nil {
		return nil, &MissingFieldError{Field: "location"}
	}
	if r.RankBy == RankByDistance && r.Radius != nil {
		return nil, &ConflictingFieldsError{Field: "radius", Conflict: "rankby=distance"}
	}
	if r.RankBy != RankByDistance && r.Radius == nil {
		return nil, &MissingFieldError{Field: "radius"}
	}
	if err := validateRadius(r.Radius); err != nil {
		return nil, err
	}
	if err := validatePriceLevels(r.MinPrice, r.MaxPrice); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "location", Value: r.Location.String()},
	}
	if r.Radius != nil {
		params = append(params, Param{Key: "radius", Value: strconv.FormatFloat(*r.Radius, 'f', -1, 64)})
	}
	params = append(params, Param{Key: "language", Value: r.Language.queryValue()})
	if r.Keyword != "" {
		params = append(params, Param{Key: "keyword", Value: r.Keyword})
	}
	if r.Type != "" {
		params = append(params, Param{Key: "type", Value: strings.ToLower(string(r.Type))})
	}
	params = appendPriceParams(params, r.MinPrice, r.MaxPrice)
	if r.OpenNow {
		params = append(params, Param{Key: "opennow", Value: ""})
	}
	if r.RankBy != "" {
		params = append(params, Param{Key: "rankby", Value: string(r.RankBy)})
	}
	if r.PageToken != "" {
		params = append(params, Param{Key: "pagetoken", Value: r.PageToken})
	}

	return params, nil
}

// TextSearchRequest searches for places matching a free-text query.
type TextSearchRequest struct {
	// Query is the text to search for, required.
	Query string

	// Location and Radius bias results toward a region.
	Location *LatLng
	Radius   *float64

	// Type restricts results to one place type.
	Type PlaceType

	// Language for the returned results, English when unset.
	Language Language

	// MinPrice and MaxPrice restrict results by price level (0 to 4).
	MinPrice *int
	MaxPrice *int

	// OpenNow restricts results to places open at request time.
	OpenNow bool

	// Region is a ccTLD region code biasing the results.
	Region string

	// PageToken fetches the next page of a previous search.
	PageToken string
}

// QueryParams validates the request and flattens it into ordered query
// parameters.
func (r *TextSearchRequest) QueryParams() ([]Param, error) {
	if r.Query == "" {
		return nil, &MissingFieldError{Field: "query"}
	}
	if err := validateRadius(r.Radius); err != nil {
		return nil, err
	}
	if err := validatePriceLevels(r.MinPrice, r.MaxPrice); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "query", Value: r.Query},
		{Key: "language", Value: r.Language.queryValue()},
	}
	params = appendLocationParams(params, r.Location, r.Radius)
	if r.Type != "" {
		params = append(params, Param{Key: "type", Value: strings.ToLower(string(r.Type))})
	}
	params = appendPriceParams(params, r.MinPrice, r.MaxPrice)
	if r.OpenNow {
		params = append(params, Param{Key: "opennow", Value: ""})
	}
	if r.Region != "" {
		params = append(params, Param{Key: "region", Value: r.Region})
	}
	if r.PageToken != "" {
		params = append(params, Param{Key: "pagetoken", Value: r.PageToken})
	}

	return params, nil
}

func validatePriceLevels(minPrice, maxPrice *int) error {
	if minPrice != nil && (*minPrice < 0 || *minPrice > 4) {
		return &OutOfRangeError{Field: "minprice", Min: 0, Max: 4}
	}
	if maxPrice != nil && (*maxPrice < 0 || *maxPrice > 4) {
		return &OutOfRangeError{Field: "maxprice", Min: 0, Max: 4}
	}
	return nil
}

func appendPriceParams(params []Param, minPrice, maxPrice *int) []Param {
	if minPrice != nil {
		params = append(params, Param{Key: "minprice", Value: strconv.Itoa(*minPrice)})
	}
	if maxPrice != nil {
		params = append(params, Param{Key: "maxprice", Value: strconv.Itoa(*maxPrice)})
	}
	return params
}

// NearbySearch returns places around req.Location.
func (c *Client) NearbySearch(ctx context.Context, req *NearbySearchRequest) (*PlacesSearchResponse, error) {
	var result PlacesSearchResponse
	if err := c.get(ctx, "/nearbysearch/json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TextSearch returns places matching req.Query.
func (c *Client) TextSearch(ctx context.Context, req *TextSearchRequest) (*PlacesSearchResponse, error) {
	var result PlacesSearchResponse
	if err := c.get(ctx, "/textsearch/json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
