package places

// responseMeta carries the envelope fields common to every Places API
// response.
type responseMeta struct {
	Status           string   `json:"status"`
	ErrorMessage     string   `json:"error_message,omitempty"`
	HTMLAttributions []string `json:"html_attributions,omitempty"`
	InfoMessages     []string `json:"info_messages,omitempty"`
}

func (m *responseMeta) meta() *responseMeta { return m }

// apiResponse is implemented by all response types so the client can check
// the API status after decoding.
type apiResponse interface {
	meta() *responseMeta
}

// AutocompleteResponse is the response to Place Autocomplete and Query
// Autocomplete requests.
type AutocompleteResponse struct {
	responseMeta
	Predictions []AutocompletePrediction `json:"predictions"`
}

// AutocompletePrediction is a single place or query prediction.
type AutocompletePrediction struct {
	Description          string                `json:"description"`
	PlaceID              string                `json:"place_id,omitempty"`
	Reference            string                `json:"reference,omitempty"`
	Types                []string              `json:"types,omitempty"`
	Terms                []PredictionTerm      `json:"terms,omitempty"`
	MatchedSubstrings    []MatchedSubstring    `json:"matched_substrings,omitempty"`
	StructuredFormatting *StructuredFormatting `json:"structured_formatting,omitempty"`
	DistanceMeters       int                   `json:"distance_meters,omitempty"`
}

// PredictionTerm is one section of a prediction's description.
type PredictionTerm struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

// MatchedSubstring locates the part of a prediction that matched the input.
type MatchedSubstring struct {
	Length int `json:"length"`
	Offset int `json:"offset"`
}

// StructuredFormatting splits a prediction into main and secondary text.
type StructuredFormatting struct {
	MainText                  string             `json:"main_text"`
	MainTextMatchedSubstrings []MatchedSubstring `json:"main_text_matched_substrings,omitempty"`
	SecondaryText             string             `json:"secondary_text,omitempty"`
}

// PlacesSearchResponse is the response to Nearby Search and Text Search
// requests.
type PlacesSearchResponse struct {
	responseMeta
	Results       []PlaceResult `json:"results"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// PlaceDetailsResponse is the response to a Place Details request.
type PlaceDetailsResponse struct {
	responseMeta
	Result PlaceDetails `json:"result"`
}

// PlaceResult is a single place as returned by the search endpoints.
type PlaceResult struct {
	BusinessStatus      string        `json:"business_status,omitempty"`
	FormattedAddress    string        `json:"formatted_address,omitempty"`
	Geometry            *Geometry     `json:"geometry,omitempty"`
	Icon                string        `json:"icon,omitempty"`
	IconBackgroundColor string        `json:"icon_background_color,omitempty"`
	IconMaskBaseURI     string        `json:"icon_mask_base_uri,omitempty"`
	Name                string        `json:"name"`
	OpeningHours        *OpeningHours `json:"opening_hours,omitempty"`
	Photos              []Photo       `json:"photos,omitempty"`
	PlaceID             string        `json:"place_id"`
	PlusCode            *PlusCode     `json:"plus_code,omitempty"`
	PriceLevel          int           `json:"price_level,omitempty"`
	Rating              float64       `json:"rating,omitempty"`
	Reference           string        `json:"reference,omitempty"`
	Types               []string      `json:"types,omitempty"`
	UserRatingsTotal    int           `json:"user_ratings_total,omitempty"`
	Vicinity            string        `json:"vicinity,omitempty"`
}

// PlaceDetails extends PlaceResult with the fields only the details
// endpoint returns.
type PlaceDetails struct {
	PlaceResult
	AddressComponents        []AddressComponent `json:"address_components,omitempty"`
	AdrAddress               string             `json:"adr_address,omitempty"`
	FormattedPhoneNumber     string             `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string             `json:"international_phone_number,omitempty"`
	Reviews                  []PlaceReview      `json:"reviews,omitempty"`
	URL                      string             `json:"url,omitempty"`
	UTCOffset                int                `json:"utc_offset,omitempty"`
	Website                  string             `json:"website,omitempty"`
}

// AddressComponent is one structured part of a place's address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// PlaceReview is a user review of a place.
type PlaceReview struct {
	AuthorName              string  `json:"author_name"`
	AuthorURL               string  `json:"author_url,omitempty"`
	Language                string  `json:"language,omitempty"`
	ProfilePhotoURL         string  `json:"profile_photo_url,omitempty"`
	Rating                  float64 `json:"rating"`
	RelativeTimeDescription string  `json:"relative_time_description,omitempty"`
	Text                    string  `json:"text,omitempty"`
	Time                    int64   `json:"time,omitempty"`
}

// Geometry is the location information of a place.
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
	Viewport *Bounds `json:"viewport,omitempty"`
}

// OpeningHours describes when a place is open.
type OpeningHours struct {
	OpenNow     bool     `json:"open_now,omitempty"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Period is a single opening period.
type Period struct {
	Open  *DayTime `json:"open,omitempty"`
	Close *DayTime `json:"close,omitempty"`
}

// DayTime is a specific day and time.
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// Photo is a place photo reference.
type Photo struct {
	Height           int      `json:"height"`
	HTMLAttributions []string `json:"html_attributions"`
	PhotoReference   string   `json:"photo_reference"`
	Width            int      `json:"width"`
}

// PlusCode is an Open Location Code for a place.
type PlusCode struct {
	CompoundCode string `json:"compound_code,omitempty"`
	GlobalCode   string `json:"global_code,omitempty"`
}
