package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/yzhogoliev/googleplaces/internal/cache"
	"github.com/yzhogoliev/googleplaces/internal/common"
	"github.com/yzhogoliev/googleplaces/pkg/places"
)

var (
	configPath     = flag.String("config", "", "Configuration file path (defaults to placesearch.toml when present)")
	locationFlag   = flag.String("location", "", "Bias location as \"lat,lng\"")
	radiusFlag     = flag.Float64("radius", 0, "Bias radius in meters (1-50000)")
	typesFlag      = flag.String("types", "", "Place type filters, e.g. \"cities\" or \"restaurant|cafe\"")
	componentsFlag = flag.String("components", "", "Component filters, e.g. \"country:US|postal_code:94043\"")
	languageFlag   = flag.String("language", "", "Language code for results")
	strictBounds   = flag.Bool("strict-bounds", false, "Restrict results to the location/radius region")
	sessionFlag    = flag.String("session", "", "Autocomplete session token (generated when empty)")
	noCache        = flag.Bool("no-cache", false, "Bypass the response cache")
	showVersion    = flag.Bool("version", false, "Print version information")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: placesearch [flags] <command> <query>

Commands:
  autocomplete <input>    Place predictions for partial text
  details <place-id>      Full details for one place
  nearby <keyword>        Places around -location
  text <query>            Free-text place search

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("placesearch version %s\n", common.Version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	command := args[0]
	query := strings.Join(args[1:], " ")

	// Startup order: config -> logger -> banner -> run.
	path := *configPath
	if path == "" {
		if _, err := os.Stat("placesearch.toml"); err == nil {
			path = "placesearch.toml"
		}
	}

	config, err := common.LoadConfig(path)
	if err != nil {
		// Use temporary logger for startup errors
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := common.SetupLogger(config)
	common.PrintBanner()

	opts := []places.ClientOption{
		places.WithLogger(logger),
		places.WithRateLimit(config.API.RateLimit),
		places.WithHTTPClient(&http.Client{Timeout: config.API.Timeout()}),
	}
	if config.API.BaseURL != "" {
		opts = append(opts, places.WithBaseURL(config.API.BaseURL))
	}
	client := places.NewClient(config.API.Key, opts...)

	var store *cache.Store
	if config.Cache.Enabled && !*noCache {
		store, err = cache.Open(config.Cache.Path, config.Cache.EntryTTL(), logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to open response cache")
		}
	}

	// Close the cache before exiting so badger releases its directory lock
	// even on a failed request.
	err = run(context.Background(), command, query, client, store, logger)
	if store != nil {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close response cache")
		}
	}
	if err != nil {
		logger.Error().Err(err).Str("command", command).Msg("Request failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, command, query string, client *places.Client, store *cache.Store, logger arbor.ILogger) error {
	switch command {
	case "autocomplete":
		return runAutocomplete(ctx, query, client, store, logger)
	case "details":
		return runDetails(ctx, query, client, store, logger)
	case "nearby":
		return runNearby(ctx, query, client, store, logger)
	case "text":
		return runText(ctx, query, client, store, logger)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runAutocomplete(ctx context.Context, input string, client *places.Client, store *cache.Store, logger arbor.ILogger) error {
	session := *sessionFlag
	if session == "" {
		session = places.NewSessionToken()
	}

	req := &places.PlaceAutocompleteRequest{
		Input:        input,
		SessionToken: session,
		Location:     parseLocation(*locationFlag),
		Radius:       parseRadius(*radiusFlag),
		StrictBounds: *strictBounds,
		Language:     places.Language(*languageFlag),
		Types:        parseTypes(*typesFlag),
		Components:   parseComponents(*componentsFlag),
	}

	var resp places.AutocompleteResponse
	hit, key, err := cacheGet(store, "/autocomplete/json", req, &resp)
	if err != nil {
		return err
	}
	if !hit {
		fresh, err := client.PlaceAutocomplete(ctx, req)
		if err != nil {
			return err
		}
		resp = *fresh
		cachePut(store, key, fresh, logger)
	}

	logger.Info().
		Str("input", input).
		Int("predictions", len(resp.Predictions)).
		Bool("cached", hit).
		Msg("Autocomplete completed")

	for _, p := range resp.Predictions {
		fmt.Printf("%s  %s\n", p.PlaceID, p.Description)
	}
	return nil
}

func runDetails(ctx context.Context, placeID string, client *places.Client, store *cache.Store, logger arbor.ILogger) error {
	req := &places.PlaceDetailsRequest{
		PlaceID:      placeID,
		Language:     places.Language(*languageFlag),
		SessionToken: *sessionFlag,
	}

	var resp places.PlaceDetailsResponse
	hit, key, err := cacheGet(store, "/details/json", req, &resp)
	if err != nil {
		return err
	}
	if !hit {
		fresh, err := client.PlaceDetails(ctx, req)
		if err != nil {
			return err
		}
		resp = *fresh
		cachePut(store, key, fresh, logger)
	}

	logger.Info().
		Str("place_id", placeID).
		Bool("cached", hit).
		Msg("Details completed")

	r := resp.Result
	fmt.Printf("%s\n", r.Name)
	if r.FormattedAddress != "" {
		fmt.Printf("  address: %s\n", r.FormattedAddress)
	}
	if r.FormattedPhoneNumber != "" {
		fmt.Printf("  phone:   %s\n", r.FormattedPhoneNumber)
	}
	if r.Website != "" {
		fmt.Printf("  website: %s\n", r.Website)
	}
	if r.Rating > 0 {
		fmt.Printf("  rating:  %.1f (%d ratings)\n", r.Rating, r.UserRatingsTotal)
	}
	return nil
}

func runNearby(ctx context.Context, keyword string, client *places.Client, store *cache.Store, logger arbor.ILogger) error {
	req := &places.NearbySearchRequest{
		Location: parseLocation(*locationFlag),
		Radius:   parseRadius(*radiusFlag),
		Keyword:  keyword,
		Type:     firstType(parseTypes(*typesFlag)),
		Language: places.Language(*languageFlag),
	}

	var resp places.PlacesSearchResponse
	hit, key, err := cacheGet(store, "/nearbysearch/json", req, &resp)
	if err != nil {
		return err
	}
	if !hit {
		fresh, err := client.NearbySearch(ctx, req)
		if err != nil {
			return err
		}
		resp = *fresh
		cachePut(store, key, fresh, logger)
	}

	printSearchResults(&resp, logger, "Nearby search", hit)
	return nil
}

func runText(ctx context.Context, query string, client *places.Client, store *cache.Store, logger arbor.ILogger) error {
	req := &places.TextSearchRequest{
		Query:    query,
		Location: parseLocation(*locationFlag),
		Radius:   parseRadius(*radiusFlag),
		Type:     firstType(parseTypes(*typesFlag)),
		Language: places.Language(*languageFlag),
	}

	var resp places.PlacesSearchResponse
	hit, key, err := cacheGet(store, "/textsearch/json", req, &resp)
	if err != nil {
		return err
	}
	if !hit {
		fresh, err := client.TextSearch(ctx, req)
		if err != nil {
			return err
		}
		resp = *fresh
		cachePut(store, key, fresh, logger)
	}

	printSearchResults(&resp, logger, "Text search", hit)
	return nil
}

func printSearchResults(resp *places.PlacesSearchResponse, logger arbor.ILogger, what string, cached bool) {
	logger.Info().
		Int("results", len(resp.Results)).
		Bool("cached", cached).
		Msg(what + " completed")

	for _, r := range resp.Results {
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		fmt.Printf("%s  %s  %s\n", r.PlaceID, r.Name, address)
	}
}

// cacheGet flattens the request and, when a store is configured, looks the
// response up by its endpoint and query (the API key is never part of the
// cache key). Validation errors surface here, before any network call.
func cacheGet(store *cache.Store, endpoint string, req interface {
	QueryParams() ([]places.Param, error)
}, out interface{}) (bool, string, error) {
	params, err := req.QueryParams()
	if err != nil {
		return false, "", err
	}
	key := cache.Key(endpoint, places.EncodeParams(params))
	if store == nil {
		return false, key, nil
	}
	hit, err := store.Get(key, out)
	if err != nil {
		return false, key, err
	}
	return hit, key, nil
}

func cachePut(store *cache.Store, key string, v interface{}, logger arbor.ILogger) {
	if store == nil {
		return
	}
	if err := store.Put(key, v); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache response")
	}
}

func parseLocation(s string) *places.LatLng {
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &places.LatLng{Lat: lat, Lng: lng}
}

func parseRadius(r float64) *float64 {
	if r == 0 {
		return nil
	}
	return &r
}

func parseTypes(s string) []places.PlaceType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	types := make([]places.PlaceType, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			types = append(types, places.PlaceType(p))
		}
	}
	return types
}

func parseComponents(s string) []places.ComponentFilter {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	filters := make([]places.ComponentFilter, 0, len(parts))
	for _, p := range parts {
		kv := strings.SplitN(p, ":", 2)
		if len(kv) != 2 {
			continue
		}
		filters = append(filters, places.ComponentFilter{
			Component: places.Component(strings.TrimSpace(kv[0])),
			Value:     strings.TrimSpace(kv[1]),
		})
	}
	return filters
}

func firstType(types []places.PlaceType) places.PlaceType {
	if len(types) == 0 {
		return ""
	}
	return types[0]
}
