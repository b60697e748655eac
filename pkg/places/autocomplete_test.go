package places

import (
	"errors"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestPlaceAutocompleteRequest_MissingInput(t *testing.T) {
	tests := []struct {
		name string
		req  PlaceAutocompleteRequest
	}{
		{
			name: "empty request",
			req:  PlaceAutocompleteRequest{},
		},
		{
			name: "other fields set but no input",
			req: PlaceAutocompleteRequest{
				Language: LanguageFrench,
				Radius:   f64(500),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.QueryParams()
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("QueryParams() error = %v, want *MissingFieldError", err)
			}
			if missing.Field != "input" {
				t.Errorf("Field = %q, want %q", missing.Field, "input")
			}
		})
	}
}

func TestPlaceAutocompleteRequest_RadiusRange(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		wantErr   bool
		wantValue string
	}{
		{"below range", 0, true, ""},
		{"negative", -5, true, ""},
		{"above range", 50001, true, ""},
		{"lower bound", 1, false, "1"},
		{"upper bound", 50000, false, "50000"},
		{"middle", 25000, false, "25000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PlaceAutocompleteRequest{Input: "Sicili", Radius: f64(tt.radius)}
			params, err := req.QueryParams()

			if tt.wantErr {
				var outOfRange *OutOfRangeError
				if !errors.As(err, &outOfRange) {
					t.Fatalf("QueryParams() error = %v, want *OutOfRangeError", err)
				}
				if outOfRange.Field != "radius" || outOfRange.Min != 1 || outOfRange.Max != 50000 {
					t.Errorf("OutOfRangeError = %+v, want radius in [1, 50000]", outOfRange)
				}
				return
			}

			if err != nil {
				t.Fatalf("QueryParams() unexpected error: %v", err)
			}
			if got := paramValue(params, "radius"); got != tt.wantValue {
				t.Errorf("radius = %q, want %q", got, tt.wantValue)
			}
		})
	}
}

func TestPlaceAutocompleteRequest_LanguageDefault(t *testing.T) {
	req := PlaceAutocompleteRequest{Input: "Sicili"}
	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}
	if got := paramValue(params, "language"); got != "en" {
		t.Errorf("language = %q, want %q", got, "en")
	}

	req.Language = LanguageItalian
	params, err = req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}
	if got := paramValue(params, "language"); got != "it" {
		t.Errorf("language = %q, want %q", got, "it")
	}
}

func TestPlaceAutocompleteRequest_StrictBounds(t *testing.T) {
	req := PlaceAutocompleteRequest{Input: "Sicili", StrictBounds: true}
	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}
	if !hasParam(params, "strictbounds") {
		t.Fatal("strictbounds pair missing")
	}
	if got := paramValue(params, "strictbounds"); got != "" {
		t.Errorf("strictbounds = %q, want empty value", got)
	}

	req.StrictBounds = false
	params, _ = req.QueryParams()
	if hasParam(params, "strictbounds") {
		t.Error("strictbounds pair present for false flag")
	}
}

func TestPlaceAutocompleteRequest_Types(t *testing.T) {
	tests := []struct {
		name  string
		types []PlaceType
		want  string
	}{
		{"collection type parenthesized", []PlaceType{PlaceTypeCities}, "(cities)"},
		{"regions parenthesized", []PlaceType{PlaceTypeRegions}, "(regions)"},
		{"mixed", []PlaceType{PlaceTypeCities, PlaceTypeRestaurant}, "(cities)|restaurant"},
		{"plain types joined", []PlaceType{PlaceTypeRestaurant, PlaceTypeCafe}, "restaurant|cafe"},
		{"uppercase input lowercased", []PlaceType{PlaceType("Establishment")}, "establishment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PlaceAutocompleteRequest{Input: "Sicili", Types: tt.types}
			params, err := req.QueryParams()
			if err != nil {
				t.Fatalf("QueryParams() unexpected error: %v", err)
			}
			if got := paramValue(params, "types"); got != tt.want {
				t.Errorf("types = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceAutocompleteRequest_Components(t *testing.T) {
	req := PlaceAutocompleteRequest{
		Input: "Sicili",
		Components: []ComponentFilter{
			{Component: ComponentCountry, Value: "US"},
			{Component: ComponentPostalCode, Value: "94043"},
		},
	}
	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}
	// Kinds are lowercased, values pass through as-is.
	want := "country:US|postal_code:94043"
	if got := paramValue(params, "components"); got != want {
		t.Errorf("components = %q, want %q", got, want)
	}
}

func TestPlaceAutocompleteRequest_Ordering(t *testing.T) {
	req := PlaceAutocompleteRequest{
		Input:        "Sicili",
		Offset:       "3",
		SessionToken: "tok-1",
		Location:     &LatLng{Lat: 37.369, Lng: -122.0},
		Radius:       f64(500),
		StrictBounds: true,
		Types:        []PlaceType{PlaceTypeCities},
		Components:   []ComponentFilter{{Component: ComponentCountry, Value: "US"}},
	}

	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}

	wantKeys := []string{
		"input", "language", "offset", "sessiontoken", "location",
		"radius", "strictbounds", "types", "components",
	}
	if len(params) != len(wantKeys) {
		t.Fatalf("got %d params, want %d: %v", len(params), len(wantKeys), params)
	}
	for i, key := range wantKeys {
		if params[i].Key != key {
			t.Errorf("params[%d].Key = %q, want %q", i, params[i].Key, key)
		}
	}

	if got := paramValue(params, "location"); got != "37.369,-122" {
		t.Errorf("location = %q, want %q", got, "37.369,-122")
	}
	if got := paramValue(params, "radius"); got != "500" {
		t.Errorf("radius = %q, want %q", got, "500")
	}
}

func TestPlaceAutocompleteRequest_SettersNeverValidate(t *testing.T) {
	// Assigning an invalid radius must not fail until flatten time, and the
	// request is reusable once fixed.
	req := PlaceAutocompleteRequest{Input: "Sicili"}
	req.Radius = f64(90000)

	if _, err := req.QueryParams(); err == nil {
		t.Fatal("QueryParams() expected error for out-of-range radius")
	}

	req.Radius = f64(500)
	if _, err := req.QueryParams(); err != nil {
		t.Fatalf("QueryParams() unexpected error after fixing radius: %v", err)
	}
}

func TestQueryAutocompleteRequest_QueryParams(t *testing.T) {
	req := QueryAutocompleteRequest{
		Input:    "pizza near Paris",
		Location: &LatLng{Lat: 48.8566, Lng: 2.3522},
		Radius:   f64(1000),
	}
	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("QueryParams() unexpected error: %v", err)
	}

	wantKeys := []string{"input", "language", "location", "radius"}
	for i, key := range wantKeys {
		if params[i].Key != key {
			t.Errorf("params[%d].Key = %q, want %q", i, params[i].Key, key)
		}
	}

	empty := QueryAutocompleteRequest{}
	var missing *MissingFieldError
	if _, err := empty.QueryParams(); !errors.As(err, &missing) {
		t.Fatalf("QueryParams() error = %v, want *MissingFieldError", err)
	}
}

func paramValue(params []Param, key string) string {
	for _, p := range params {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

func hasParam(params []Param, key string) bool {
	for _, p := range params {
		if p.Key == key {
			return true
		}
	}
	return false
}
