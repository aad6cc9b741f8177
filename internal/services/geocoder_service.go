package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"roamio/pkg/memcache"
)

// GeoPoint is a resolved place. Cache entries are keyed on the exact
// place-name string plus the country bias.
type GeoPoint struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// GeocoderServiceInterface resolves a free-text place name to
// coordinates. A nil result means "not found" or a transport failure;
// both are soft failures the pipeline carries on from.
type GeocoderServiceInterface interface {
	Resolve(ctx context.Context, placeName string) *GeoPoint
}

const (
	geocodeTTL = 7 * 24 * time.Hour

	// The upstream usage policy allows one request per second for the
	// whole process, regardless of query.
	geocodeMinInterval = time.Second
)

type NominatimGeocoder struct {
	httpClient  *http.Client
	baseURL     string
	countryBias string
	cache       *memcache.Store[GeoPoint]
	limiter     *rate.Limiter
}

func NewNominatimGeocoder(cache *memcache.Store[GeoPoint], baseURL, countryBias string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimGeocoder{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		countryBias: countryBias,
		cache:       cache,
		limiter:     rate.NewLimiter(rate.Every(geocodeMinInterval), 1),
	}
}

func (g *NominatimGeocoder) Resolve(ctx context.Context, placeName string) *GeoPoint {
	query := placeName
	if g.countryBias != "" {
		query = placeName + ", " + g.countryBias
	}

	if point, ok := g.cache.Get(query); ok {
		return &point
	}

	if err := g.limiter.Wait(ctx); err != nil {
		log.Printf("geocode %q: rate limiter interrupted: %v", placeName, err)
		return nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		log.Printf("geocode %q: build request: %v", placeName, err)
		return nil
	}
	req.Header.Set("User-Agent", "roamio/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("geocode %q: %v", placeName, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode %q: bad status %s", placeName, resp.Status)
		return nil
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("geocode %q: decode: %v", placeName, err)
		return nil
	}
	if len(results) == 0 {
		// Misses are not cached, so a repeat lookup pays the courtesy
		// delay again.
		log.Printf("geocode %q: no results", placeName)
		return nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		log.Printf("geocode %q: bad coordinates %q,%q", placeName, results[0].Lat, results[0].Lon)
		return nil
	}

	point := GeoPoint{Latitude: lat, Longitude: lon, DisplayName: results[0].DisplayName}
	g.cache.Set(query, point, geocodeTTL)
	return &point
}
